package textmap

// Range is a half-open span of rune offsets into the original text.
type Range struct {
	Start int
	End   int
}

// CharMap is a dense transformed→source mapping: one entry per rune of
// Transformed.
//
// Invariants:
//   - len(Map) == rune length of Transformed
//   - every entry satisfies 0 <= Start <= End <= rune length of Original
//   - unchanged stretches map rune i to (i, i+1)
//   - all runes produced by one expansion share a single range
type CharMap struct {
	Original    string
	Transformed string
	Map         []Range
}

// ToOriginal returns the source range responsible for the transformed
// rune at pos. Out-of-bounds positions clamp to the nearest entry; an
// empty map yields the zero range.
func (m *CharMap) ToOriginal(pos int) Range {
	if len(m.Map) == 0 {
		return Range{}
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.Map) {
		pos = len(m.Map) - 1
	}
	return m.Map[pos]
}

// OriginalRange projects the transformed span [start, end) onto the
// source text, covering every source range touched by the span.
func (m *CharMap) OriginalRange(start, end int) Range {
	if len(m.Map) == 0 || start >= end {
		return Range{}
	}
	if start < 0 {
		start = 0
	}
	if end > len(m.Map) {
		end = len(m.Map)
	}
	if start >= end {
		return Range{}
	}
	out := m.Map[start]
	for _, r := range m.Map[start+1 : end] {
		if r.Start < out.Start {
			out.Start = r.Start
		}
		if r.End > out.End {
			out.End = r.End
		}
	}
	return out
}
