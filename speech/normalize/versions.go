package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// versionSuffixes are the pre-release tags with established spoken
// forms. Unknown tags fall through to transliteration in the word pass.
var versionSuffixes = map[string]string{
	"alpha": "альфа",
	"beta":  "бета",
	"rc":    "эр-си",
	"dev":   "дев",
	"pre":   "пре",
	"patch": "патч",
}

var versionRe = regexp.MustCompile(`^v?(\d+(?:\.\d+)+)(?:-([A-Za-z]+)\.?(\d*))?$`)

// NormalizeVersion converts "v1.22.3" to
// "один точка двадцать два точка три" and "2.0-beta2" to
// "два точка ноль бета два". Input without at least one dotted
// component is returned unchanged.
func NormalizeVersion(s string) string {
	m := versionRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}

	var words []string
	for i, comp := range strings.Split(m[1], ".") {
		n, err := strconv.ParseInt(comp, 10, 64)
		if err != nil {
			return s
		}
		if i > 0 {
			words = append(words, "точка")
		}
		words = append(words, NumberToWords(n, Masculine))
	}

	if m[2] != "" {
		suffix, ok := versionSuffixes[strings.ToLower(m[2])]
		if !ok {
			suffix = strings.ToLower(m[2])
		}
		words = append(words, suffix)
	}
	if m[3] != "" {
		n, err := strconv.ParseInt(m[3], 10, 64)
		if err != nil {
			return s
		}
		words = append(words, NumberToWords(n, Masculine))
	}
	return strings.Join(words, " ")
}
