package normalize

import (
	"strconv"
	"strings"
)

// Gender selects the grammatical gender of Russian number words, which
// must agree with the counted noun: "два байта" but "две минуты".
type Gender int

const (
	Masculine Gender = iota
	Feminine
	Neuter
)

// Form is the noun form selected by a quantity.
type Form int

const (
	FormOne  Form = iota // nominative singular: 1, 21, 101
	FormFew              // genitive singular: 2-4, 22-24
	FormMany             // genitive plural: 0, 5-20, 11-19, 25-30
)

// PluralForm applies the last-two-digits rule: 11-19 always take the
// genitive plural, otherwise the last digit decides.
func PluralForm(n int64) Form {
	if n < 0 {
		n = -n
	}
	if last2 := n % 100; last2 >= 11 && last2 <= 19 {
		return FormMany
	}
	switch n % 10 {
	case 1:
		return FormOne
	case 2, 3, 4:
		return FormFew
	}
	return FormMany
}

// Plural picks the noun form agreeing with n.
func Plural(n int64, one, few, many string) string {
	switch PluralForm(n) {
	case FormOne:
		return one
	case FormFew:
		return few
	}
	return many
}

var (
	onesMasculine = []string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	onesFeminine  = []string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	onesNeuter    = []string{"", "одно", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}

	teens = []string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
		"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"}

	tens = []string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят",
		"шестьдесят", "семьдесят", "восемьдесят", "девяносто"}

	hundreds = []string{"", "сто", "двести", "триста", "четыреста", "пятьсот",
		"шестьсот", "семьсот", "восемьсот", "девятьсот"}

	digitWords = []string{"ноль", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
)

// scales are the short-scale group names above thousands. Thousands are
// feminine, the rest masculine.
var scales = []struct {
	one, few, many string
	gender         Gender
}{
	{"тысяча", "тысячи", "тысяч", Feminine},
	{"миллион", "миллиона", "миллионов", Masculine},
	{"миллиард", "миллиарда", "миллиардов", Masculine},
	{"триллион", "триллиона", "триллионов", Masculine},
}

func onesFor(g Gender) []string {
	switch g {
	case Feminine:
		return onesFeminine
	case Neuter:
		return onesNeuter
	}
	return onesMasculine
}

// tripleWords spells a number 1..999.
func tripleWords(n int, g Gender) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	rest := n % 100
	switch {
	case rest >= 10 && rest < 20:
		parts = append(parts, teens[rest-10])
	case rest > 0:
		if t := rest / 10; t > 0 {
			parts = append(parts, tens[t])
		}
		if o := rest % 10; o > 0 {
			parts = append(parts, onesFor(g)[o])
		}
	}
	return strings.Join(parts, " ")
}

// NumberToWords spells a cardinal number in Russian with the requested
// gender for the final (units) group.
func NumberToWords(n int64, g Gender) string {
	if n == 0 {
		return "ноль"
	}
	var parts []string
	if n < 0 {
		parts = append(parts, "минус")
		n = -n
	}

	// Split into thousand groups, highest first.
	var groups []int
	for n > 0 {
		groups = append(groups, int(n%1000))
		n /= 1000
	}
	for i := len(groups) - 1; i >= 0; i-- {
		group := groups[i]
		if group == 0 {
			continue
		}
		if i == 0 {
			parts = append(parts, tripleWords(group, g))
			continue
		}
		scale := scales[i-1]
		parts = append(parts, tripleWords(group, scale.gender))
		parts = append(parts, Plural(int64(group), scale.one, scale.few, scale.many))
	}
	return strings.Join(parts, " ")
}

// NormalizeNumber converts a decimal integer string to words. Malformed
// input is returned unchanged.
func NormalizeNumber(s string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return s
	}
	return NumberToWords(n, Masculine)
}

// NormalizeFloat reads "3.14" as the integer part in words, a spoken
// separator, then the fraction digit by digit. A decimal comma is
// spoken as "запятая", a dot as "точка". Malformed input is returned
// unchanged.
func NormalizeFloat(s string) string {
	sep := "."
	sepWord := "точка"
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		sep = ","
		sepWord = "запятая"
	}
	intPart, frac, found := strings.Cut(s, sep)
	if !found || frac == "" {
		return s
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	words := []string{NumberToWords(n, Masculine), sepWord}
	for _, c := range frac {
		if c < '0' || c > '9' {
			return s
		}
		words = append(words, digitWords[c-'0'])
	}
	return strings.Join(words, " ")
}

// DigitsToWords reads a digit string one digit at a time ("404" →
// "четыре ноль четыре"). Non-digit input is returned unchanged.
func DigitsToWords(s string) string {
	var words []string
	for _, c := range s {
		if c < '0' || c > '9' {
			return s
		}
		words = append(words, digitWords[c-'0'])
	}
	if len(words) == 0 {
		return s
	}
	return strings.Join(words, " ")
}
