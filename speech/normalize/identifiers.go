package normalize

import (
	"strings"
	"unicode"
)

// SplitIdentifier breaks a code identifier into word segments on
// case-class transitions and explicit separators:
// "parseHTTPResponse" → ["parse", "HTTP", "Response"],
// "snake_case" → ["snake", "case"].
func SplitIdentifier(s string) []string {
	var segments []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			segments = append(segments, string(cur))
			cur = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case unicode.IsUpper(r):
			// New segment on lower→upper, and on the last upper of an
			// acronym run followed by lowercase ("HTTPResponse").
			if i > 0 {
				prev := runes[i-1]
				next := rune(0)
				if i+1 < len(runes) {
					next = runes[i+1]
				}
				if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
					(unicode.IsUpper(prev) && unicode.IsLower(next)) {
					flush()
				}
			}
			cur = append(cur, r)
		case unicode.IsDigit(r):
			if i > 0 && !unicode.IsDigit(runes[i-1]) {
				flush()
			}
			cur = append(cur, r)
		default:
			if i > 0 && unicode.IsDigit(runes[i-1]) {
				flush()
			}
			cur = append(cur, r)
		}
	}
	flush()
	return segments
}

// identifierSpoken reads a code identifier segment by segment: each
// segment goes through the term table, the acronym rule or the
// phonetic fallback, digits are read as numbers.
func (s *Set) identifierSpoken(ident string) string {
	segments := SplitIdentifier(ident)
	if len(segments) < 2 {
		return s.englishToken(ident)
	}
	words := make([]string, 0, len(segments))
	for _, seg := range segments {
		words = append(words, s.englishToken(seg))
	}
	return strings.Join(words, " ")
}

// isAllCapsAcronym reports whether w should be spelled letter by
// letter. Any all-caps run of two or more letters qualifies;
// pronounceable ones are caught by the term table first.
func isAllCapsAcronym(w string) bool {
	n := 0
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
		n++
	}
	return n >= 2
}

// SpellAcronym spells an English acronym with hyphenated letter names:
// "API" → "эй-пи-ай".
func SpellAcronym(w string) string {
	var names []string
	for _, r := range strings.ToLower(w) {
		name, ok := letterNames[r]
		if !ok {
			return w
		}
		names = append(names, name)
	}
	return strings.Join(names, "-")
}
