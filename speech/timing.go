package speech

import (
	"github.com/xilec/ruvox/pkg/textmap"
	"github.com/xilec/ruvox/pkg/words"
)

// WordTimestamp is the record a player consumes: one per recognized
// word of the normalized text, ordered by time, with the source span
// responsible for the word.
type WordTimestamp struct {
	Word        string
	StartSec    float64
	EndSec      float64
	OriginalPos textmap.Range
}

// EstimateTimestamps spreads each chunk's audio duration across the
// chunk's words proportionally to their rune length, then projects
// every word back into source coordinates through the character map.
// Chunks without a matching duration are skipped; cm may be nil when
// only timing is needed.
func EstimateTimestamps(chunks []Chunk, durations []float64, cm *textmap.CharMap) []WordTimestamp {
	var out []WordTimestamp
	offset := 0.0
	for i, chunk := range chunks {
		if i >= len(durations) {
			break
		}
		total := durations[i]

		spans := words.Tokenize(chunk.Text)
		length := 0
		for _, w := range spans {
			length += w.End - w.Start
		}
		if length == 0 {
			offset += total
			continue
		}

		t := offset
		for _, w := range spans {
			d := total * float64(w.End-w.Start) / float64(length)
			ts := WordTimestamp{
				Word:     w.Text,
				StartSec: t,
				EndSec:   t + d,
			}
			if cm != nil {
				ts.OriginalPos = cm.OriginalRange(chunk.Start+w.Start, chunk.Start+w.End)
			}
			out = append(out, ts)
			t += d
		}
		offset += total
	}
	return out
}
