package textmap

import (
	"regexp"
	"testing"
)

// checkInvariants verifies the CharMap contract against its source text.
func checkInvariants(t *testing.T, m *CharMap) {
	t.Helper()

	transformed := []rune(m.Transformed)
	original := []rune(m.Original)

	if len(m.Map) != len(transformed) {
		t.Fatalf("len(Map) = %d, want %d (one entry per transformed rune)", len(m.Map), len(transformed))
	}
	for i, r := range m.Map {
		if r.Start < 0 || r.Start > r.End || r.End > len(original) {
			t.Errorf("Map[%d] = (%d,%d) out of bounds for original of length %d", i, r.Start, r.End, len(original))
		}
	}
}

func TestTrackerNoReplacements(t *testing.T) {
	tr := NewTracker("привет мир")
	m := tr.BuildMap()

	checkInvariants(t, m)
	if m.Transformed != "привет мир" {
		t.Errorf("Transformed = %q, want input unchanged", m.Transformed)
	}
	for i, r := range m.Map {
		if r.Start != i || r.End != i+1 {
			t.Errorf("Map[%d] = (%d,%d), want identity (%d,%d)", i, r.Start, r.End, i, i+1)
		}
	}
}

func TestTrackerEmptyInput(t *testing.T) {
	tr := NewTracker("")
	m := tr.BuildMap()

	checkInvariants(t, m)
	if m.Transformed != "" || len(m.Map) != 0 {
		t.Errorf("empty input: Transformed = %q, len(Map) = %d, want empty", m.Transformed, len(m.Map))
	}
}

func TestTrackerExpansion(t *testing.T) {
	t.Run("acronym alone", func(t *testing.T) {
		tr := NewTracker("API")
		if !tr.Replace(0, 3, "эй-пи-ай") {
			t.Fatal("replacement rejected")
		}
		m := tr.BuildMap()

		checkInvariants(t, m)
		if m.Transformed != "эй-пи-ай" {
			t.Fatalf("Transformed = %q", m.Transformed)
		}
		for i, r := range m.Map {
			if r.Start != 0 || r.End != 3 {
				t.Errorf("Map[%d] = (%d,%d), want (0,3)", i, r.Start, r.End)
			}
		}
	})

	t.Run("acronym in context", func(t *testing.T) {
		tr := NewTracker("Hello NVIDIA world")
		if !tr.Replace(6, 12, "энвидиа") {
			t.Fatal("replacement rejected")
		}
		m := tr.BuildMap()

		checkInvariants(t, m)
		if m.Transformed != "Hello энвидиа world" {
			t.Fatalf("Transformed = %q", m.Transformed)
		}
		// Expansion runes occupy transformed positions 6..12.
		for i := 6; i < 13; i++ {
			if m.Map[i] != (Range{Start: 6, End: 12}) {
				t.Errorf("Map[%d] = %v, want (6,12)", i, m.Map[i])
			}
		}
		if got := m.OriginalRange(6, 13); got != (Range{Start: 6, End: 12}) {
			t.Errorf("OriginalRange(expansion) = %v, want (6,12)", got)
		}
		if got := m.OriginalRange(13, 19); got != (Range{Start: 12, End: 18}) {
			t.Errorf("OriginalRange(tail) = %v, want (12,18)", got)
		}
	})
}

func TestTrackerContraction(t *testing.T) {
	tr := NewTracker("очень  длинный") // double space collapses
	if !tr.Replace(5, 7, " ") {
		t.Fatal("replacement rejected")
	}
	m := tr.BuildMap()

	checkInvariants(t, m)
	if m.Transformed != "очень длинный" {
		t.Fatalf("Transformed = %q", m.Transformed)
	}
	if m.Map[5] != (Range{Start: 5, End: 7}) {
		t.Errorf("collapsed space maps to %v, want (5,7)", m.Map[5])
	}
	if m.Map[6] != (Range{Start: 7, End: 8}) {
		t.Errorf("first rune after collapse maps to %v, want (7,8)", m.Map[6])
	}
}

func TestTrackerDeletion(t *testing.T) {
	tr := NewTracker("## Заголовок")
	if !tr.Replace(0, 3, "") {
		t.Fatal("deletion rejected")
	}
	m := tr.BuildMap()

	checkInvariants(t, m)
	if m.Transformed != "Заголовок" {
		t.Fatalf("Transformed = %q", m.Transformed)
	}
	if m.Map[0] != (Range{Start: 3, End: 4}) {
		t.Errorf("Map[0] = %v, want (3,4)", m.Map[0])
	}
}

func TestTrackerRejection(t *testing.T) {
	t.Run("source overlap keeps first writer", func(t *testing.T) {
		tr := NewTracker("abcdef")
		if !tr.Replace(1, 4, "X") {
			t.Fatal("first replacement rejected")
		}
		// Source range of "Xe" overlaps [1,4): must be dropped.
		if tr.Replace(1, 3, "Y") {
			t.Error("overlapping replacement accepted, want rejection")
		}
		m := tr.BuildMap()
		checkInvariants(t, m)
		if m.Transformed != "aXef" {
			t.Errorf("Transformed = %q, want %q", m.Transformed, "aXef")
		}
	})

	t.Run("inside replacement output", func(t *testing.T) {
		tr := NewTracker("API call")
		tr.Replace(0, 3, "эй-пи-ай")
		// "пи" sits inside freshly inserted text.
		if tr.Replace(3, 5, "ZZ") {
			t.Error("replacement inside inserted text accepted, want rejection")
		}
	})

	t.Run("later disjoint replacement accepted", func(t *testing.T) {
		tr := NewTracker("one two three")
		if !tr.Replace(8, 13, "три") {
			t.Fatal("tail replacement rejected")
		}
		if !tr.Replace(0, 3, "один") {
			t.Fatal("head replacement rejected after tail edit")
		}
		m := tr.BuildMap()
		checkInvariants(t, m)
		if m.Transformed != "один two три" {
			t.Errorf("Transformed = %q", m.Transformed)
		}
	})
}

func TestTrackerOutOfOrderReplacements(t *testing.T) {
	tr := NewTracker("aa bb cc dd")
	if !tr.Replace(9, 11, "4") {
		t.Fatal("tail replacement rejected")
	}
	if !tr.Replace(0, 2, "1") {
		t.Fatal("head replacement rejected")
	}
	if !tr.Replace(2, 4, "2") {
		t.Fatal("middle replacement rejected")
	}
	// Overlaps the output of the middle replacement.
	if tr.Replace(2, 5, "X") {
		t.Error("replacement over inserted text accepted, want rejection")
	}
	if !tr.Replace(4, 6, "3") {
		t.Fatal("replacement between existing edits rejected")
	}

	if got := tr.Text(); got != "1 2 3 4" {
		t.Fatalf("Text() = %q", got)
	}

	want := []Range{{0, 2}, {3, 5}, {6, 8}, {9, 11}}
	reps := tr.Replacements()
	if len(reps) != len(want) {
		t.Fatalf("len(Replacements()) = %d, want %d", len(reps), len(want))
	}
	for i, r := range reps {
		if r.OrigStart != want[i].Start || r.OrigEnd != want[i].End {
			t.Errorf("Replacements()[%d] = (%d,%d), want (%d,%d)",
				i, r.OrigStart, r.OrigEnd, want[i].Start, want[i].End)
		}
	}

	m := tr.BuildMap()
	checkInvariants(t, m)
	if m.Transformed != "1 2 3 4" {
		t.Errorf("Transformed = %q", m.Transformed)
	}
}

func TestToSource(t *testing.T) {
	tr := NewTracker("Hello NVIDIA world")
	tr.Replace(6, 12, "энвидиа") // 6 runes -> 7 runes, delta +1

	tests := []struct {
		name string
		pos  int
		want int
	}{
		{"before replacement", 2, 2},
		{"start of replacement output", 6, 6},
		{"inside replacement output", 10, 6},
		{"after replacement", 14, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.ToSource(tt.pos); got != tt.want {
				t.Errorf("ToSource(%d) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestReplaceAllFunc(t *testing.T) {
	t.Run("cyrillic offsets", func(t *testing.T) {
		tr := NewTracker("скорость 100 процентов")
		re := regexp.MustCompile(`\d+`)
		tr.ReplaceAllFunc(re, func(string) string { return "сто" })

		m := tr.BuildMap()
		checkInvariants(t, m)
		if m.Transformed != "скорость сто процентов" {
			t.Errorf("Transformed = %q", m.Transformed)
		}
		if m.Map[9] != (Range{Start: 9, End: 12}) {
			t.Errorf("number expansion maps to %v, want (9,12)", m.Map[9])
		}
	})

	t.Run("does not re-touch inserted text", func(t *testing.T) {
		tr := NewTracker("x 42 y")
		tr.ReplaceAllFunc(regexp.MustCompile(`\d+`), func(string) string { return "сорок два" })
		// A later broad pass matching everything must skip the insertion.
		tr.ReplaceAllFunc(regexp.MustCompile(`сорок`), func(string) string { return "BROKEN" })

		if got := tr.Text(); got != "x сорок два y" {
			t.Errorf("Text() = %q, inserted text was re-touched", got)
		}
	})

	t.Run("multiple matches right to left", func(t *testing.T) {
		tr := NewTracker("1 и 2 и 3")
		tr.ReplaceAllFunc(regexp.MustCompile(`\d`), func(s string) string {
			switch s {
			case "1":
				return "один"
			case "2":
				return "два"
			}
			return "три"
		})
		if got := tr.Text(); got != "один и два и три" {
			t.Errorf("Text() = %q", got)
		}
		m := tr.BuildMap()
		checkInvariants(t, m)
	})
}

func TestReplaceAllSubmatchFunc(t *testing.T) {
	tr := NewTracker("размер 25%")
	re := regexp.MustCompile(`(\d+)%`)
	tr.ReplaceAllSubmatchFunc(re, func(g []string) string {
		return g[1] + " процентов"
	})
	if got := tr.Text(); got != "размер 25 процентов" {
		t.Errorf("Text() = %q", got)
	}
}
