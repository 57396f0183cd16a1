// Package textmap applies ordered text substitutions while keeping an
// exact character-level mapping back to the untouched source text.
//
// All positions in this package are rune offsets, not byte offsets:
// normalized Russian output mixes Cyrillic and Latin, and consumers
// highlight characters, not bytes.
package textmap

import (
	"regexp"
	"sort"
)

// Replacement is a single accepted rewrite in source coordinates.
// Immutable once recorded.
type Replacement struct {
	OrigStart int    // rune offset into the source text, inclusive
	OrigEnd   int    // rune offset into the source text, exclusive
	New       string // literal text that replaced the span

	newLen int // rune length of New
}

// Tracker mutates a working buffer through a sequence of substitutions
// and can materialize the final text plus its source mapping on demand.
//
// A Tracker is single-use: create one per document, run the passes,
// then build the map.
type Tracker struct {
	source []rune
	buffer []rune

	// reps is kept ordered by OrigStart. Source ranges never overlap,
	// so the order is total; insertion keeps every later walk linear.
	reps []Replacement
}

// NewTracker starts tracking replacements against the given source text.
func NewTracker(text string) *Tracker {
	src := []rune(text)
	buf := make([]rune, len(src))
	copy(buf, src)
	return &Tracker{source: src, buffer: buf}
}

// Text returns the current state of the working buffer.
func (t *Tracker) Text() string {
	return string(t.buffer)
}

// Len returns the rune length of the working buffer.
func (t *Tracker) Len() int {
	return len(t.buffer)
}

// Replacements returns the accepted replacements ordered by source
// start.
func (t *Tracker) Replacements() []Replacement {
	out := make([]Replacement, len(t.reps))
	copy(out, t.reps)
	return out
}

// ToSource converts a buffer position to a source position. A position
// inside the output of a replacement maps to the start of the original
// span that replacement consumed.
func (t *Tracker) ToSource(pos int) int {
	delta := 0
	for _, r := range t.reps {
		cur := r.OrigStart + delta
		if pos < cur {
			return pos - delta
		}
		if pos < cur+r.newLen {
			return r.OrigStart
		}
		delta += r.newLen - (r.OrigEnd - r.OrigStart)
	}
	return pos - delta
}

// sourceRange converts a non-empty buffer span [start, end) to source
// coordinates. The end is derived from the last included character so a
// span that stops right before deleted source text does not swallow it.
func (t *Tracker) sourceRange(start, end int) (int, int) {
	return t.ToSource(start), t.ToSource(end-1) + 1
}

// Replace attempts to substitute the buffer span [start, end) with new.
// It returns false without recording anything when the candidate is
// rejected:
//
//  1. any character of the span lies inside the output of an
//     already-applied replacement, or
//  2. the candidate's source range overlaps an existing replacement's
//     source range (first writer wins, no merging).
//
// Rejection is silent by contract: later broad passes must not re-touch
// freshly inserted text, and conflicting matches are simply dropped.
func (t *Tracker) Replace(start, end int, new string) bool {
	if start < 0 || end > len(t.buffer) || start >= end {
		return false
	}

	delta := 0
	for _, r := range t.reps {
		cur := r.OrigStart + delta
		if start < cur+r.newLen && end > cur {
			return false
		}
		delta += r.newLen - (r.OrigEnd - r.OrigStart)
	}

	origStart, origEnd := t.sourceRange(start, end)
	i := sort.Search(len(t.reps), func(k int) bool {
		return t.reps[k].OrigStart >= origStart
	})
	// With reps sorted and disjoint, only the two neighbors can overlap
	// the candidate's source range.
	if i < len(t.reps) && t.reps[i].OrigStart < origEnd {
		return false
	}
	if i > 0 && t.reps[i-1].OrigEnd > origStart {
		return false
	}

	t.reps = append(t.reps, Replacement{})
	copy(t.reps[i+1:], t.reps[i:])
	t.reps[i] = Replacement{
		OrigStart: origStart,
		OrigEnd:   origEnd,
		New:       new,
		newLen:    len([]rune(new)),
	}

	next := make([]rune, 0, start+len([]rune(new))+len(t.buffer)-end)
	next = append(next, t.buffer[:start]...)
	next = append(next, []rune(new)...)
	next = append(next, t.buffer[end:]...)
	t.buffer = next
	return true
}

// ReplaceAllFunc runs one pattern pass over the current buffer. Matches
// are located on a snapshot of the buffer and applied right to left so
// earlier match positions stay valid. fn receives the matched text;
// returning the match unchanged skips it without recording anything.
func (t *Tracker) ReplaceAllFunc(re *regexp.Regexp, fn func(match string) string) {
	s := string(t.buffer)
	locs := re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return
	}
	b2r := RuneOffsets(s)
	for i := len(locs) - 1; i >= 0; i-- {
		match := s[locs[i][0]:locs[i][1]]
		out := fn(match)
		if out == match {
			continue
		}
		t.Replace(b2r[locs[i][0]], b2r[locs[i][1]], out)
	}
}

// ReplaceAllSubmatchFunc is ReplaceAllFunc with capture groups. fn
// receives the full match followed by each group (empty string for
// groups that did not participate).
func (t *Tracker) ReplaceAllSubmatchFunc(re *regexp.Regexp, fn func(groups []string) string) {
	s := string(t.buffer)
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return
	}
	b2r := RuneOffsets(s)
	for i := len(locs) - 1; i >= 0; i-- {
		loc := locs[i]
		groups := make([]string, len(loc)/2)
		for g := 0; g < len(loc); g += 2 {
			if loc[g] >= 0 {
				groups[g/2] = s[loc[g]:loc[g+1]]
			}
		}
		out := fn(groups)
		if out == groups[0] {
			continue
		}
		t.Replace(b2r[loc[0]], b2r[loc[1]], out)
	}
}

// BuildMap materializes the final text and the dense transformed→source
// mapping. Every rune produced by one replacement shares that
// replacement's source range; the map never attempts a finer alignment
// inside a replacement.
func (t *Tracker) BuildMap() *CharMap {
	var out []rune
	var m []Range

	i := 0
	for _, r := range t.reps {
		for ; i < r.OrigStart; i++ {
			out = append(out, t.source[i])
			m = append(m, Range{Start: i, End: i + 1})
		}
		for _, c := range r.New {
			out = append(out, c)
			m = append(m, Range{Start: r.OrigStart, End: r.OrigEnd})
		}
		i = r.OrigEnd
	}
	for ; i < len(t.source); i++ {
		out = append(out, t.source[i])
		m = append(m, Range{Start: i, End: i + 1})
	}

	return &CharMap{
		Original:    string(t.source),
		Transformed: string(out),
		Map:         m,
	}
}

// RuneOffsets builds a byte-offset→rune-offset table for s, with one
// trailing entry for len(s). Only offsets that fall on rune boundaries
// are meaningful; regexp match indices always do.
func RuneOffsets(s string) []int {
	table := make([]int, len(s)+1)
	ri := 0
	for bi := range s {
		table[bi] = ri
		ri++
	}
	table[len(s)] = ri
	return table
}
