package speech

import (
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
)

// Chunk bounds for synthesis. Lengths are rune counts of the
// normalized text.
const (
	DefaultChunkLen = 300
	MinChunkLen     = 50
	MaxChunkLen     = 2000
)

// Chunk is one bounded piece of normalized text handed to synthesis.
// Start is the rune offset of the piece in the normalized text, so
// word positions inside a chunk project straight through the
// character map.
type Chunk struct {
	Text  string
	Start int
}

type span struct {
	start, end int
}

// SplitChunks splits normalized text into pieces no longer than
// maxLen runes, breaking at sentence boundaries first, then clause
// boundaries, then word boundaries. A single word longer than maxLen
// is kept whole; text is never cut mid-word.
func SplitChunks(text string, maxLen int) []Chunk {
	if maxLen <= 0 {
		maxLen = DefaultChunkLen
	}
	runes := []rune(text)

	var pieces []span
	for _, s := range sentenceSpans(runes) {
		if s.end-s.start <= maxLen {
			pieces = append(pieces, s)
			continue
		}
		for _, c := range clauseSpans(runes, s) {
			if c.end-c.start <= maxLen {
				pieces = append(pieces, c)
				continue
			}
			pieces = append(pieces, packWords(wordSpans(runes, c), maxLen)...)
		}
	}

	var chunks []Chunk
	var cur span
	have := false
	flush := func() {
		if have {
			chunks = append(chunks, Chunk{Text: string(runes[cur.start:cur.end]), Start: cur.start})
			have = false
		}
	}
	for _, p := range pieces {
		if have && p.end-cur.start <= maxLen {
			cur.end = p.end
			continue
		}
		flush()
		cur = p
		have = true
	}
	flush()

	for i, c := range chunks {
		log.Debug("chunk split",
			"index", i,
			"start", c.Start,
			"len", len([]rune(c.Text)),
			"preview", runewidth.Truncate(c.Text, 32, "…"))
	}
	return chunks
}

// sentenceSpans partitions the text at sentence-ending punctuation
// followed by whitespace, trimming surrounding whitespace from each
// span.
func sentenceSpans(runes []rune) []span {
	var out []span
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		end := i + 1
		for end < len(runes) && (runes[end] == '.' || runes[end] == '!' || runes[end] == '?') {
			end++
		}
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			i = end - 1
			continue
		}
		if s, ok := trimSpan(runes, span{start, end}); ok {
			out = append(out, s)
		}
		start = end
		i = end - 1
	}
	if s, ok := trimSpan(runes, span{start, len(runes)}); ok {
		out = append(out, s)
	}
	return out
}

// clauseSpans partitions a sentence at clause punctuation followed by
// whitespace.
func clauseSpans(runes []rune, s span) []span {
	var out []span
	start := s.start
	for i := s.start; i < s.end; i++ {
		r := runes[i]
		if r != ',' && r != ';' && r != ':' {
			continue
		}
		if i+1 < s.end && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if c, ok := trimSpan(runes, span{start, i + 1}); ok {
			out = append(out, c)
		}
		start = i + 1
	}
	if c, ok := trimSpan(runes, span{start, s.end}); ok {
		out = append(out, c)
	}
	return out
}

// wordSpans partitions a clause at whitespace.
func wordSpans(runes []rune, s span) []span {
	var out []span
	start := -1
	for i := s.start; i < s.end; i++ {
		if unicode.IsSpace(runes[i]) {
			if start >= 0 {
				out = append(out, span{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, span{start, s.end})
	}
	return out
}

// packWords greedily joins word spans into pieces within maxLen. An
// oversized single word becomes a piece of its own.
func packWords(word []span, maxLen int) []span {
	var out []span
	var cur span
	have := false
	for _, w := range word {
		if have && w.end-cur.start <= maxLen {
			cur.end = w.end
			continue
		}
		if have {
			out = append(out, cur)
		}
		cur = w
		have = true
	}
	if have {
		out = append(out, cur)
	}
	return out
}

func trimSpan(runes []rune, s span) (span, bool) {
	for s.start < s.end && unicode.IsSpace(runes[s.start]) {
		s.start++
	}
	for s.end > s.start && unicode.IsSpace(runes[s.end-1]) {
		s.end--
	}
	return s, s.start < s.end
}
