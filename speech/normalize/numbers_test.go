package normalize

import "testing"

func TestPluralForm(t *testing.T) {
	tests := []struct {
		n    int64
		want Form
	}{
		{0, FormMany},
		{1, FormOne},
		{2, FormFew},
		{4, FormFew},
		{5, FormMany},
		{11, FormMany},
		{12, FormMany},
		{14, FormMany},
		{19, FormMany},
		{21, FormOne},
		{22, FormFew},
		{25, FormMany},
		{100, FormMany},
		{101, FormOne},
		{111, FormMany},
		{-3, FormFew},
	}
	for _, tt := range tests {
		if got := PluralForm(tt.n); got != tt.want {
			t.Errorf("PluralForm(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		n    int64
		g    Gender
		want string
	}{
		{0, Masculine, "ноль"},
		{1, Masculine, "один"},
		{1, Feminine, "одна"},
		{2, Feminine, "две"},
		{2, Masculine, "два"},
		{17, Masculine, "семнадцать"},
		{42, Masculine, "сорок два"},
		{100, Masculine, "сто"},
		{192, Masculine, "сто девяносто два"},
		{1000, Masculine, "одна тысяча"},
		{2500, Masculine, "две тысячи пятьсот"},
		{1000000, Masculine, "один миллион"},
		{-7, Masculine, "минус семь"},
	}
	for _, tt := range tests {
		if got := NumberToWords(tt.n, tt.g); got != tt.want {
			t.Errorf("NumberToWords(%d, %v) = %q, want %q", tt.n, tt.g, got, tt.want)
		}
	}
}

func TestNormalizeFloat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3.14", "три точка один четыре"},
		{"1,5", "один запятая пять"},
		{"0.5", "ноль точка пять"},
		{"abc", "abc"},
		{"10.", "10."},
	}
	for _, tt := range tests {
		if got := NormalizeFloat(tt.in); got != tt.want {
			t.Errorf("NormalizeFloat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDigitsToWords(t *testing.T) {
	if got := DigitsToWords("404"); got != "четыре ноль четыре" {
		t.Errorf("DigitsToWords(404) = %q", got)
	}
	if got := DigitsToWords("x4"); got != "x4" {
		t.Errorf("DigitsToWords(x4) = %q, want unchanged", got)
	}
}

func TestGenitive(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{2, "двух"},
		{5, "пяти"},
		{8, "восьми"},
		{10, "десяти"},
		{20, "двадцати"},
		{40, "сорока"},
		{100, "ста"},
	}
	for _, tt := range tests {
		if got := GenitiveNumber(tt.n, Masculine); got != tt.want {
			t.Errorf("GenitiveNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestOrdinalGenitive(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "первого"},
		{5, "пятого"},
		{20, "двадцатого"},
		{25, "двадцать пятого"},
		{31, "тридцать первого"},
	}
	for _, tt := range tests {
		if got := OrdinalGenitive(tt.n); got != tt.want {
			t.Errorf("OrdinalGenitive(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestYearOrdinalGenitive(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1999, "тысяча девятьсот девяносто девятого"},
		{2025, "две тысячи двадцать пятого"},
		{2024, "две тысячи двадцать четвёртого"},
		{2000, "двухтысячного"},
		{1941, "тысяча девятьсот сорок первого"},
		{1900, "тысяча девятисотого"},
	}
	for _, tt := range tests {
		if got := YearOrdinalGenitive(tt.year); got != tt.want {
			t.Errorf("YearOrdinalGenitive(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestOrdinalNeuter(t *testing.T) {
	if got := OrdinalNeuter(1); got != "первое" {
		t.Errorf("OrdinalNeuter(1) = %q", got)
	}
	if got := OrdinalNeuter(21); got != "двадцать первое" {
		t.Errorf("OrdinalNeuter(21) = %q", got)
	}
}
