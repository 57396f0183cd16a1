package words

import "strings"

// Alignment scoring. A candidate below scoreConfident does not advance
// the cursor; the transformed word is attributed to the last confident
// source word instead, so long one-to-many expansions (spelled-out
// acronyms, number words) stay attached to the token that produced them.
const (
	alignWindow    = 6
	scoreExact     = 100
	scoreTranslit  = 60
	scoreCursor    = 30
	scoreConfident = 50
)

// latinToCyrillic maps a Latin first letter to plausible Cyrillic
// prefixes of its Russian pronunciation.
var latinToCyrillic = map[byte][]string{
	'a': {"а", "э", "е"},
	'b': {"б"},
	'c': {"ц", "к", "с", "ч"},
	'd': {"д"},
	'e': {"е", "э", "и"},
	'f': {"ф"},
	'g': {"г", "дж", "ж"},
	'h': {"х", "г", "э", "а"},
	'i': {"и", "ай"},
	'j': {"дж", "ж", "й"},
	'k': {"к"},
	'l': {"л"},
	'm': {"м"},
	'n': {"н"},
	'o': {"о", "оу"},
	'p': {"п"},
	'q': {"к"},
	'r': {"р"},
	's': {"с", "ш"},
	't': {"т"},
	'u': {"у", "ю", "а"},
	'v': {"в"},
	'w': {"в", "у", "дабл"},
	'x': {"икс", "кс", "з"},
	'y': {"у", "й", "и"},
	'z': {"з"},
}

// digitToWordPrefix maps a leading digit to the Cyrillic prefixes of
// the number words it can open with.
var digitToWordPrefix = map[byte][]string{
	'0': {"ноль", "нол"},
	'1': {"один", "одн", "десят", "сто", "тысяч"},
	'2': {"дв"},
	'3': {"три", "тр"},
	'4': {"четыр"},
	'5': {"пят"},
	'6': {"шест"},
	'7': {"сем"},
	'8': {"восем", "восьм"},
	'9': {"девя"},
}

// WordMap maps transformed-word indices onto source-word indices.
// Built once per document, read-only afterward.
type WordMap struct {
	SourceWords      []Span
	TransformedWords []Span

	// one source-word index per transformed word
	mapping []int
}

// BuildWordMap tokenizes both texts and aligns them.
func BuildWordMap(original, transformed string) *WordMap {
	src := Tokenize(original)
	dst := Tokenize(transformed)
	return &WordMap{
		SourceWords:      src,
		TransformedWords: dst,
		mapping:          Align(src, dst),
	}
}

// SourceIndex returns the source-word index for transformed word i, or
// -1 when i is out of range or nothing was aligned.
func (m *WordMap) SourceIndex(i int) int {
	if i < 0 || i >= len(m.mapping) {
		return -1
	}
	return m.mapping[i]
}

// SourceSpan returns the source word span for transformed word i.
func (m *WordMap) SourceSpan(i int) (Span, bool) {
	idx := m.SourceIndex(i)
	if idx < 0 || idx >= len(m.SourceWords) {
		return Span{}, false
	}
	return m.SourceWords[idx], true
}

// Align maps each transformed word to a source word. For each
// transformed word it searches a fixed lookahead window of unconsumed
// source words; a confident match advances the cursor past the matched
// word, an unconfident one reuses the last confident index without
// guessing forward.
func Align(src, dst []Span) []int {
	mapping := make([]int, len(dst))
	if len(src) == 0 {
		for i := range mapping {
			mapping[i] = -1
		}
		return mapping
	}

	cursor := 0
	lastConfident := 0
	for i, d := range dst {
		best, bestScore := -1, 0
		limit := cursor + alignWindow
		if limit > len(src) {
			limit = len(src)
		}
		for j := cursor; j < limit; j++ {
			score := matchScore(src[j].Text, d.Text, j == cursor)
			if score > bestScore {
				best, bestScore = j, score
			}
		}

		if bestScore >= scoreConfident {
			mapping[i] = best
			lastConfident = best
			cursor = best + 1
		} else {
			mapping[i] = lastConfident
		}
	}
	return mapping
}

// matchScore rates how plausibly dst is the spoken form of src.
func matchScore(src, dst string, atCursor bool) int {
	score := 0
	if atCursor {
		score = scoreCursor
	}

	if strings.EqualFold(src, dst) {
		return score + scoreExact
	}
	if translitPlausible(src, dst) {
		return score + scoreTranslit
	}
	return score
}

// translitPlausible checks first-letter phonetic correspondence. Each
// hyphen-separated part of the source word is tried independently so a
// compound identifier still matches the expansion of any of its parts.
func translitPlausible(src, dst string) bool {
	dst = strings.ToLower(dst)
	for _, part := range strings.Split(strings.ToLower(src), "-") {
		if part == "" {
			continue
		}
		if partPlausible(part, dst) {
			return true
		}
	}
	return false
}

func partPlausible(part, dst string) bool {
	c := part[0]
	switch {
	case c >= 'a' && c <= 'z':
		for _, prefix := range latinToCyrillic[c] {
			if strings.HasPrefix(dst, prefix) {
				return true
			}
		}
	case c >= '0' && c <= '9':
		for _, prefix := range digitToWordPrefix[c] {
			if strings.HasPrefix(dst, prefix) {
				return true
			}
		}
	}
	// Cyrillic source words pass through normalization verbatim, so the
	// exact-match rule already covers them.
	return false
}
