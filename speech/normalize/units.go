package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// unit describes a counted noun: its three declension forms and the
// gender the number word must agree with.
type unit struct {
	one, few, many string
	gender         Gender
}

var sizeUnits = map[string]unit{
	"б":   {"байт", "байта", "байт", Masculine},
	"b":   {"байт", "байта", "байт", Masculine},
	"кб":  {"килобайт", "килобайта", "килобайт", Masculine},
	"kb":  {"килобайт", "килобайта", "килобайт", Masculine},
	"кбит": {"килобит", "килобита", "килобит", Masculine},
	"мб":  {"мегабайт", "мегабайта", "мегабайт", Masculine},
	"mb":  {"мегабайт", "мегабайта", "мегабайт", Masculine},
	"гб":  {"гигабайт", "гигабайта", "гигабайт", Masculine},
	"gb":  {"гигабайт", "гигабайта", "гигабайт", Masculine},
	"тб":  {"терабайт", "терабайта", "терабайт", Masculine},
	"tb":  {"терабайт", "терабайта", "терабайт", Masculine},
	"kib": {"кибибайт", "кибибайта", "кибибайт", Masculine},
	"mib": {"мебибайт", "мебибайта", "мебибайт", Masculine},
	"gib": {"гибибайт", "гибибайта", "гибибайт", Masculine},
}

var (
	percentUnit = unit{"процент", "процента", "процентов", Masculine}
	hourUnit    = unit{"час", "часа", "часов", Masculine}
	minuteUnit  = unit{"минута", "минуты", "минут", Feminine}
	secondUnit  = unit{"секунда", "секунды", "секунд", Feminine}
	msUnit      = unit{"миллисекунда", "миллисекунды", "миллисекунд", Feminine}
)

// countWithUnit spells "n <unit>" with number gender and noun form
// agreeing.
func countWithUnit(n int64, u unit) string {
	return NumberToWords(n, u.gender) + " " + Plural(n, u.one, u.few, u.many)
}

// fractionalWithUnit handles non-integer quantities, which always take
// the genitive singular: "два точка пять гигабайта".
func fractionalWithUnit(spoken string, u unit) string {
	return spoken + " " + u.few
}

var (
	percentRe = regexp.MustCompile(`^(\d+)(?:([.,])(\d+))?\s?%$`)
	sizeRe    = regexp.MustCompile(`^(\d+)(?:([.,])(\d+))?\s?([A-Za-zА-Яа-я]+)$`)
)

// NormalizePercentage converts "25%" to "двадцать пять процентов".
// Malformed input is returned unchanged.
func NormalizePercentage(s string) string {
	m := percentRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	if m[3] != "" {
		spoken := NormalizeFloat(m[1] + m[2] + m[3])
		return fractionalWithUnit(spoken, percentUnit)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return s
	}
	return countWithUnit(n, percentUnit)
}

// NormalizeSize converts "10 МБ" to "десять мегабайт". The unit picks
// the gender of the number word. Unknown units and malformed numbers
// are returned unchanged.
func NormalizeSize(s string) string {
	m := sizeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	u, ok := sizeUnits[strings.ToLower(m[4])]
	if !ok {
		return s
	}
	if m[3] != "" {
		return fractionalWithUnit(NormalizeFloat(m[1]+m[2]+m[3]), u)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return s
	}
	return countWithUnit(n, u)
}
