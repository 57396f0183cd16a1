package normalize

import "strings"

// cardinalGenitive rewrites individual cardinal number words into the
// genitive case. Words not in the table fall back to the "ь"→"и"
// suffix rule (пять→пяти, двадцать→двадцати); anything else passes
// through unchanged.
var cardinalGenitive = map[string]string{
	"ноль":        "нуля",
	"один":        "одного",
	"одна":        "одной",
	"одно":        "одного",
	"два":         "двух",
	"две":         "двух",
	"три":         "трёх",
	"четыре":      "четырёх",
	"восемь":      "восьми",
	"сорок":       "сорока",
	"девяносто":   "девяноста",
	"сто":         "ста",
	"двести":      "двухсот",
	"триста":      "трёхсот",
	"четыреста":   "четырёхсот",
	"пятьсот":     "пятисот",
	"шестьсот":    "шестисот",
	"семьсот":     "семисот",
	"восемьсот":   "восьмисот",
	"девятьсот":   "девятисот",
	"пятьдесят":   "пятидесяти",
	"шестьдесят":  "шестидесяти",
	"семьдесят":   "семидесяти",
	"восемьдесят": "восьмидесяти",
	"тысяча":      "тысячи",
	"тысячи":      "тысяч",
	"тысяч":       "тысяч",
	"миллион":     "миллиона",
	"миллиона":    "миллионов",
	"миллионов":   "миллионов",
	"миллиард":    "миллиарда",
	"миллиарда":   "миллиардов",
	"миллиардов":  "миллиардов",
}

// CardinalGenitive converts a spelled-out cardinal into the genitive
// case, word by word.
func CardinalGenitive(words string) string {
	parts := strings.Fields(words)
	for i, w := range parts {
		if g, ok := cardinalGenitive[w]; ok {
			parts[i] = g
			continue
		}
		if strings.HasSuffix(w, "ь") {
			parts[i] = strings.TrimSuffix(w, "ь") + "и"
		}
	}
	return strings.Join(parts, " ")
}

// GenitiveNumber spells n directly in the genitive case.
func GenitiveNumber(n int64, g Gender) string {
	return CardinalGenitive(NumberToWords(n, g))
}

// ordinalGenitive covers 1..20 plus the round values needed for days
// and years; larger ordinals compose a cardinal prefix with one of
// these as the final word.
var ordinalGenitive = map[int]string{
	1: "первого", 2: "второго", 3: "третьего", 4: "четвёртого",
	5: "пятого", 6: "шестого", 7: "седьмого", 8: "восьмого",
	9: "девятого", 10: "десятого", 11: "одиннадцатого",
	12: "двенадцатого", 13: "тринадцатого", 14: "четырнадцатого",
	15: "пятнадцатого", 16: "шестнадцатого", 17: "семнадцатого",
	18: "восемнадцатого", 19: "девятнадцатого", 20: "двадцатого",
	30: "тридцатого", 40: "сорокового", 50: "пятидесятого",
	60: "шестидесятого", 70: "семидесятого", 80: "восьмидесятого",
	90: "девяностого",
	100: "сотого", 200: "двухсотого", 300: "трёхсотого",
	400: "четырёхсотого", 500: "пятисотого", 600: "шестисотого",
	700: "семисотого", 800: "восьмисотого", 900: "девятисотого",
	1000: "тысячного", 2000: "двухтысячного", 3000: "трёхтысячного",
}

// OrdinalGenitive spells n (1..99) as a genitive ordinal, the form
// used for days of the month.
func OrdinalGenitive(n int) string {
	if w, ok := ordinalGenitive[n]; ok {
		return w
	}
	if n > 20 && n < 100 {
		t, o := n/10*10, n%10
		if o != 0 {
			return tens[n/10] + " " + ordinalGenitive[o]
		}
		return ordinalGenitive[t]
	}
	return NumberToWords(int64(n), Neuter)
}

// YearOrdinalGenitive spells a year as a genitive ordinal:
// 1999 → "тысяча девятьсот девяносто девятого",
// 2025 → "две тысячи двадцать пятого",
// 2000 → "двухтысячного".
func YearOrdinalGenitive(year int) string {
	if year <= 0 || year > 9999 {
		return OrdinalGenitive(year)
	}
	if w, ok := ordinalGenitive[year]; ok {
		return w
	}

	var parts []string
	if th := year / 1000; th > 0 {
		rest := year % 1000
		if rest == 0 {
			// Round millennium handled by the table above; anything
			// else lands here only for 4000+.
			return NumberToWords(int64(year), Masculine)
		}
		if th == 1 {
			parts = append(parts, "тысяча")
		} else {
			parts = append(parts, tripleWords(th, Feminine), Plural(int64(th), "тысяча", "тысячи", "тысяч"))
		}
		year = rest
	}

	if h := year / 100; h > 0 {
		rest := year % 100
		if rest == 0 {
			parts = append(parts, ordinalGenitive[h*100])
			return strings.Join(parts, " ")
		}
		parts = append(parts, hundreds[h])
		year = rest
	}

	switch {
	case year <= 20:
		parts = append(parts, ordinalGenitive[year])
	case year%10 == 0:
		parts = append(parts, ordinalGenitive[year])
	default:
		parts = append(parts, tens[year/10], ordinalGenitive[year%10])
	}
	return strings.Join(parts, " ")
}

// ordinalNeuter covers the list-marker ordinals ("первое", "второе").
var ordinalNeuter = map[int]string{
	1: "первое", 2: "второе", 3: "третье", 4: "четвёртое",
	5: "пятое", 6: "шестое", 7: "седьмое", 8: "восьмое",
	9: "девятое", 10: "десятое", 11: "одиннадцатое",
	12: "двенадцатое", 13: "тринадцатое", 14: "четырнадцатое",
	15: "пятнадцатое", 16: "шестнадцатое", 17: "семнадцатое",
	18: "восемнадцатое", 19: "девятнадцатое", 20: "двадцатое",
	30: "тридцатое",
}

// OrdinalNeuter spells n as a nominative neuter ordinal, used for
// ordered-list markers.
func OrdinalNeuter(n int) string {
	if w, ok := ordinalNeuter[n]; ok {
		return w
	}
	if n > 20 && n < 100 && n%10 != 0 {
		if o, ok := ordinalNeuter[n%10]; ok {
			return tens[n/10] + " " + o
		}
	}
	return NumberToWords(int64(n), Neuter)
}
