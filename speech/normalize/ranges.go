package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var rangeRe = regexp.MustCompile(`^(\d+)\s?[-–—]\s?(\d+)$`)

// yearLike reports whether n reads naturally as a year.
func yearLike(s string) bool {
	if len(s) != 4 {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1000 && n <= 2999
}

// NormalizeRange converts "10-20" (hyphen, en or em dash) to
// "от десяти до двадцати". A pair of 4-digit year-like numbers takes
// the ordinal-genitive year form: "1941-1945" →
// "от тысяча девятьсот сорок первого до тысяча девятьсот сорок пятого".
// Anything else is returned unchanged.
func NormalizeRange(s string) string {
	m := rangeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}

	if yearLike(m[1]) && yearLike(m[2]) {
		from, _ := strconv.Atoi(m[1])
		to, _ := strconv.Atoi(m[2])
		return "от " + YearOrdinalGenitive(from) + " до " + YearOrdinalGenitive(to)
	}

	from, err1 := strconv.ParseInt(m[1], 10, 64)
	to, err2 := strconv.ParseInt(m[2], 10, 64)
	if err1 != nil || err2 != nil {
		return s
	}
	return "от " + GenitiveNumber(from, Masculine) + " до " + GenitiveNumber(to, Masculine)
}
