package render

import "testing"

func TestAlignBold(t *testing.T) {
	m := NewMarkdownPositionMapper()
	rendered := m.Align("Some **bold** text")

	if rendered != "Some bold text" {
		t.Fatalf("Align = %q, want %q", rendered, "Some bold text")
	}

	start, end, ok := m.GetRenderedRange(7, 11) // "bold" in source
	if !ok {
		t.Fatal("GetRenderedRange(7,11) not ok")
	}
	if start != 5 || end != 9 {
		t.Errorf("GetRenderedRange(7,11) = (%d,%d), want (5,9)", start, end)
	}
}

func TestAlignHeading(t *testing.T) {
	m := NewMarkdownPositionMapper()
	rendered := m.Align("# Заголовок\n\nТекст")

	if rendered != "Заголовок\n\nТекст" {
		t.Fatalf("Align = %q", rendered)
	}

	// "Текст" occupies source runes 13..18.
	start, end, ok := m.GetRenderedRange(13, 18)
	if !ok {
		t.Fatal("GetRenderedRange(13,18) not ok")
	}
	if start != 11 || end != 16 {
		t.Errorf("GetRenderedRange(13,18) = (%d,%d), want (11,16)", start, end)
	}
}

func TestAlignLink(t *testing.T) {
	m := NewMarkdownPositionMapper()
	rendered := m.Align("[текст](http://x.ru) конец")

	if rendered != "текст конец" {
		t.Fatalf("Align = %q", rendered)
	}

	start, end, ok := m.GetRenderedRange(1, 6) // "текст" in source
	if !ok {
		t.Fatal("GetRenderedRange(1,6) not ok")
	}
	if start != 0 || end != 5 {
		t.Errorf("GetRenderedRange(1,6) = (%d,%d), want (0,5)", start, end)
	}
}

func TestGetRenderedRangeNoSurvivor(t *testing.T) {
	m := NewMarkdownPositionMapper()
	m.Align("Some **bold** text")

	// The opening "**" never renders.
	if _, _, ok := m.GetRenderedRange(5, 7); ok {
		t.Error("GetRenderedRange over pure markup reported ok, want suppression")
	}
}

func TestGetRenderedRangeSlidesInward(t *testing.T) {
	m := NewMarkdownPositionMapper()
	m.Align("Some **bold** text")

	// Boundaries on the markers slide inward to the surviving "bold".
	start, end, ok := m.GetRenderedRange(5, 13)
	if !ok {
		t.Fatal("GetRenderedRange(5,13) not ok")
	}
	if start != 5 || end != 9 {
		t.Errorf("GetRenderedRange(5,13) = (%d,%d), want (5,9)", start, end)
	}
}

func TestGetRenderedRangeOutOfBounds(t *testing.T) {
	m := NewMarkdownPositionMapper()
	m.Align("текст")

	if _, _, ok := m.GetRenderedRange(10, 20); ok {
		t.Error("out-of-bounds range reported ok")
	}
	if _, _, ok := m.GetRenderedRange(3, 3); ok {
		t.Error("empty range reported ok")
	}

	start, end, ok := m.GetRenderedRange(-5, 3)
	if !ok || start != 0 || end != 3 {
		t.Errorf("clamped range = (%d,%d,%v), want (0,3,true)", start, end, ok)
	}
}

func TestAlignEmpty(t *testing.T) {
	m := NewMarkdownPositionMapper()
	if got := m.Align(""); got != "" {
		t.Errorf("Align(\"\") = %q, want empty", got)
	}
	if _, _, ok := m.GetRenderedRange(0, 1); ok {
		t.Error("empty document range reported ok")
	}
}
