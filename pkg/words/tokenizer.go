// Package words provides word-boundary tokenization and a coarse
// heuristic aligner between source and rewritten text. It is the
// fallback used when the exact character-level map is unavailable or
// when only word granularity is needed.
package words

import "unicode"

// Span is a maximal run of word-constituent characters and its rune
// offsets in the text it was cut from.
type Span struct {
	Text  string
	Start int // rune offset, inclusive
	End   int // rune offset, exclusive
}

// isWordRune reports whether r belongs inside a word span. Hyphens are
// deliberately not included: an embedded hyphen acts as a separator, so
// "Terminal-Bench" tokenizes as two words.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' || r == '’'
}

// Tokenize splits text into word spans. Punctuation and whitespace are
// excluded from spans.
func Tokenize(text string) []Span {
	var spans []Span
	runes := []rune(text)

	start := -1
	for i, r := range runes {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			spans = append(spans, Span{Text: string(runes[start:i]), Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Text: string(runes[start:]), Start: start, End: len(runes)})
	}
	return spans
}
