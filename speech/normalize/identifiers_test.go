package normalize

import (
	"reflect"
	"sort"
	"testing"
)

func TestSplitIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"parseHTTPResponse", []string{"parse", "HTTP", "Response"}},
		{"snake_case", []string{"snake", "case"}},
		{"kebab-case", []string{"kebab", "case"}},
		{"SCREAMING_CASE", []string{"SCREAMING", "CASE"}},
		{"getUser2", []string{"get", "User", "2"}},
		{"simple", []string{"simple"}},
		{"fmt.Println", []string{"fmt", "Println"}},
	}
	for _, tt := range tests {
		if got := SplitIdentifier(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSpellAcronym(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"API", "эй-пи-ай"},
		{"HTTP", "эйч-ти-ти-пи"},
		{"GPU", "джи-пи-ю"},
	}
	for _, tt := range tests {
		if got := SpellAcronym(tt.in); got != tt.want {
			t.Errorf("SpellAcronym(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransliteratorWord(t *testing.T) {
	tr := NewTransliterator(nil)
	tests := []struct {
		in   string
		want string
	}{
		{"foobar", "фубар"},
		{"café", "кафе"},
		{"chat", "чат"},
		{"sharp", "шарп"},
	}
	for _, tt := range tests {
		if got := tr.Word(tt.in); got != tt.want {
			t.Errorf("Word(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransliteratorDiagnostics(t *testing.T) {
	var sunk []string
	tr := NewTransliterator(func(w string) { sunk = append(sunk, w) })

	tr.Word("Foobar")
	tr.Word("foobar")
	tr.Word("qux")

	if len(sunk) != 2 {
		t.Fatalf("sink called %d times, want 2: %v", len(sunk), sunk)
	}

	got := tr.UnknownWords()
	sort.Strings(got)
	want := []string{"foobar", "qux"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnknownWords() = %v, want %v", got, want)
	}

	tr.Reset()
	if len(tr.UnknownWords()) != 0 {
		t.Error("Reset did not clear the unknown-word set")
	}
}
