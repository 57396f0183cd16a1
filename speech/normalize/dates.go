package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// monthsGenitive are month names in the genitive case, as they follow
// an ordinal day: "пятого марта".
var monthsGenitive = []string{"",
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var (
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	dottedDateRe = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	slashDateRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	timeRe       = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// dateWords spells a validated day/month/year triple.
func dateWords(day, month, year int) string {
	return OrdinalGenitive(day) + " " + monthsGenitive[month] + " " + YearOrdinalGenitive(year) + " года"
}

// NormalizeDate converts "2024-03-05", "05.03.2024" or "05/03/2024" to
// "пятого марта две тысячи двадцать четвёртого года". Anything that
// does not parse as a calendar date is returned unchanged.
func NormalizeDate(s string) string {
	trimmed := strings.TrimSpace(s)

	var day, month, year int
	if m := isoDateRe.FindStringSubmatch(trimmed); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := dottedDateRe.FindStringSubmatch(trimmed); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else if m := slashDateRe.FindStringSubmatch(trimmed); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		return s
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 || year > 9999 {
		return s
	}
	return dateWords(day, month, year)
}

// NormalizeTime converts "15:04" or "15:04:05" to hour/minute/second
// words, omitting zero-valued trailing components: "15:00" reads as
// "пятнадцать часов". Out-of-range components are returned unchanged.
func NormalizeTime(s string) string {
	m := timeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	if hour > 23 || minute > 59 || second > 59 {
		return s
	}

	parts := []string{countWithUnit(int64(hour), hourUnit)}
	if minute > 0 || second > 0 {
		parts = append(parts, countWithUnit(int64(minute), minuteUnit))
	}
	if second > 0 {
		parts = append(parts, countWithUnit(int64(second), secondUnit))
	}
	return strings.Join(parts, " ")
}
