package normalize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/xilec/ruvox/pkg/textmap"
)

// Pass is one pattern-match-and-substitute step executed against the
// replacement tracker, so its effects are recorded in source
// coordinates before the next pass runs on the updated buffer.
type Pass struct {
	Name  string
	Apply func(t *textmap.Tracker)
}

// Set is an ordered collection of normalization passes sharing one
// option block, one transliteration memo and one unknown-word set.
type Set struct {
	opts     Options
	translit *Transliterator

	// customPhrases are multi-word custom terms, longest first.
	customPhrases []struct{ phrase, spoken string }
	customTerms   map[string]string
}

// NewSet builds a normalizer set. Custom terms are layered over the
// built-in tables at construction; the shared tables are never
// mutated. sink receives every word that needed the phonetic fallback
// and may be nil.
func NewSet(opts Options, sink func(word string)) *Set {
	s := &Set{translit: NewTransliterator(sink)}
	s.SetOptions(opts)
	return s
}

// SetOptions replaces the option block. Allowed between documents,
// never during a processing call.
func (s *Set) SetOptions(opts Options) {
	s.opts = opts
	s.customTerms = make(map[string]string, len(opts.CustomTerms))
	s.customPhrases = s.customPhrases[:0]
	for k, v := range opts.CustomTerms {
		key := strings.ToLower(k)
		if strings.ContainsRune(key, ' ') {
			s.customPhrases = append(s.customPhrases, struct{ phrase, spoken string }{key, v})
			continue
		}
		s.customTerms[key] = v
	}
	sort.Slice(s.customPhrases, func(i, j int) bool {
		return len(s.customPhrases[i].phrase) > len(s.customPhrases[j].phrase)
	})
}

// Options returns the current option block.
func (s *Set) Options() Options {
	return s.opts
}

// UnknownWords returns the diagnostic set of words that fell through
// to phonetic transliteration since the last Reset.
func (s *Set) UnknownWords() []string {
	return s.translit.UnknownWords()
}

// Reset clears the per-document diagnostic state. Call before each new
// document; nothing resets implicitly.
func (s *Set) Reset() {
	s.translit.Reset()
}

// englishToken resolves one English token: custom terms, then the
// built-in term table, then acronym spelling for all-caps tokens, then
// the phonetic fallback. Digit runs read as numbers.
func (s *Set) englishToken(w string) string {
	lower := strings.ToLower(w)
	if spoken, ok := s.customTerms[lower]; ok {
		return spoken
	}
	if spoken, ok := termTable[lower]; ok {
		return spoken
	}
	if isDigits(w) {
		return NormalizeNumber(w)
	}
	if isAllCapsAcronym(w) {
		return SpellAcronym(w)
	}
	if len([]rune(w)) == 1 {
		if name, ok := letterNames[[]rune(lower)[0]]; ok {
			return name
		}
	}
	return s.translit.Word(w)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var (
	crlfRe       = regexp.MustCompile(`\r\n?`)
	quoteRe      = regexp.MustCompile(`[«»„“”]`)
	dashRe       = regexp.MustCompile(`[–—−]`)
	multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)
	tabRe        = regexp.MustCompile(`\t`)

	urlRe   = regexp.MustCompile(`(?:https?|ftp|file)://[^\s<>"')\]]+|www\.[^\s<>"')\]]+`)
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	ipRe    = regexp.MustCompile(`\b(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})(?::(\d{1,5}))?\b`)
	pathRe  = regexp.MustCompile(`~(?:/[\w.+-]+)+/?|\.\.?(?:/[\w.+-]+)+/?|/(?:[\w.+-]+/)+[\w.+-]*|[A-Za-z]:\\[\w.+\\-]+`)

	// \b in Go knows only ASCII word characters, so a digit run glued
	// to a Cyrillic letter still counts as standalone. Every digit-led
	// regex therefore captures one adjacent character on each side and
	// the pass leaves the whole match alone when either group is
	// non-empty.
	dateRe    = regexp.MustCompile(`([А-Яа-яЁё]?)\b(\d{4}-\d{2}-\d{2}|\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}/\d{1,2}/\d{4})\b([А-Яа-яЁё]?)`)
	timeRunRe = regexp.MustCompile(`([А-Яа-яЁё]?)\b(\d{1,2}:\d{2}(?::\d{2})?)\b([А-Яа-яЁё]?)`)
	sizeRunRe = regexp.MustCompile(`([А-Яа-яЁё]?)\b(\d+(?:[.,]\d+)?[ \t]?(?:КБ|МБ|ГБ|ТБ|Кб|Мб|Гб|Тб|кб|мб|гб|тб|KB|MB|GB|TB|KiB|MiB|GiB|Kb|Mb|Gb|Tb|kb|mb|gb|tb|B|б))([А-Яа-яЁёA-Za-z]?)`)
	versionRunRe = regexp.MustCompile(`([А-Яа-яЁё]?)\b(v\d+(?:\.\d+)+(?:-[A-Za-z]+\.?\d*)?|\d+(?:\.\d+){2,}(?:-[A-Za-z]+\.?\d*)?)\b([А-Яа-яЁё]?)`)
	rangeRunRe   = regexp.MustCompile(`([А-Яа-яЁё-]?)\b(\d+[ ]?[-–—][ ]?\d+)\b([А-Яа-яЁё-]?)`)
	percentRunRe = regexp.MustCompile(`\d+(?:[.,]\d+)?[ ]?%`)

	greekOrMathRe = buildSymbolRe()

	identifierRe = regexp.MustCompile(`\b[A-Za-z][a-z0-9]+(?:[A-Z][a-z0-9]*)+\b|\b[A-Za-z][A-Za-z0-9]*(?:_[A-Za-z0-9]+)+\b|\b[A-Za-z][A-Za-z0-9]+(?:-[A-Za-z][A-Za-z0-9]+)+\b`)
	englishRe    = regexp.MustCompile(`\b[A-Za-z][A-Za-z']*\b`)
	numberRunRe  = regexp.MustCompile(`([А-Яа-яЁё:.-]?)\b(\d+(?:[.,]\d+)?)\b([А-Яа-яЁё:-]?)`)
)

func buildSymbolRe() *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`[`)
	for r := range greekNames {
		b.WriteRune(r)
	}
	b.WriteString(`]`)
	for glyph := range mathSymbols {
		b.WriteString(`|` + regexp.QuoteMeta(glyph))
	}
	return regexp.MustCompile(b.String())
}

// Passes returns the normalization steps in their fixed execution
// order. The order is part of the contract: each step depends on the
// buffer state left by the previous one.
func (s *Set) Passes() []Pass {
	return []Pass{
		{"preprocess", s.preprocessPass},
		{"abbreviations", s.abbreviationPass},
		{"code-blocks", s.codeBlockPass},
		{"inline-code", s.inlineCodePass},
		{"markdown", s.markdownPass},
		{"urls", s.urlPass},
		{"emails", s.emailPass},
		{"ips", s.ipPass},
		{"paths", s.pathPass},
		{"dates", s.datePass},
		{"times", s.timePass},
		{"sizes", s.sizePass},
		{"versions", s.versionPass},
		{"ranges", s.rangePass},
		{"percentages", s.percentPass},
		{"operators", s.operatorPass},
		{"symbols", s.symbolPass},
		{"identifiers", s.identifierPass},
		{"english", s.englishPass},
		{"numbers", s.numberPass},
		{"postprocess", s.postprocessPass},
	}
}

func (s *Set) preprocessPass(t *textmap.Tracker) {
	t.ReplaceAllFunc(crlfRe, func(string) string { return "\n" })
	t.ReplaceAllFunc(quoteRe, func(string) string { return `"` })
	t.ReplaceAllFunc(dashRe, func(string) string { return "-" })
	t.ReplaceAllFunc(multiSpaceRe, func(string) string { return " " })
	t.ReplaceAllFunc(tabRe, func(string) string { return " " })
}

func (s *Set) abbreviationPass(t *textmap.Tracker) {
	if len(s.opts.CustomAbbreviations) == 0 {
		return
	}
	// Longest first, then lexicographic, so the pass is deterministic.
	keys := make([]string, 0, len(s.opts.CustomAbbreviations))
	for k := range s.opts.CustomAbbreviations {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		expansion := s.opts.CustomAbbreviations[k]
		re, err := regexp.Compile(regexp.QuoteMeta(k))
		if err != nil {
			continue
		}
		t.ReplaceAllFunc(re, func(string) string { return expansion })
	}
}

func (s *Set) urlPass(t *textmap.Tracker) {
	t.ReplaceAllFunc(urlRe, s.urlSpoken)
}

func (s *Set) emailPass(t *textmap.Tracker) {
	t.ReplaceAllFunc(emailRe, s.emailSpoken)
}

func (s *Set) ipPass(t *textmap.Tracker) {
	t.ReplaceAllSubmatchFunc(ipRe, func(g []string) string {
		octets := g[1:5]
		for _, oct := range octets {
			if len(oct) > 1 && oct[0] == '0' {
				return g[0]
			}
			n := 0
			for _, c := range oct {
				n = n*10 + int(c-'0')
			}
			if n > 255 {
				return g[0]
			}
		}
		return s.ipSpoken(octets, g[5])
	})
}

func (s *Set) pathPass(t *textmap.Tracker) {
	t.ReplaceAllFunc(pathRe, s.pathSpoken)
}

// replaceGuarded runs a digit-led regex whose groups are [leading
// guard, token, trailing guard] and rewrites the token only when both
// guards are empty, so a token glued to surrounding text passes
// through whole.
func replaceGuarded(t *textmap.Tracker, re *regexp.Regexp, fn func(token string) string) {
	t.ReplaceAllSubmatchFunc(re, func(g []string) string {
		if g[1] != "" || g[3] != "" {
			return g[0]
		}
		return fn(g[2])
	})
}

func (s *Set) datePass(t *textmap.Tracker) {
	replaceGuarded(t, dateRe, NormalizeDate)
}

func (s *Set) timePass(t *textmap.Tracker) {
	replaceGuarded(t, timeRunRe, NormalizeTime)
}

func (s *Set) sizePass(t *textmap.Tracker) {
	replaceGuarded(t, sizeRunRe, NormalizeSize)
}

func (s *Set) versionPass(t *textmap.Tracker) {
	replaceGuarded(t, versionRunRe, NormalizeVersion)
}

func (s *Set) rangePass(t *textmap.Tracker) {
	replaceGuarded(t, rangeRunRe, NormalizeRange)
}

func (s *Set) percentPass(t *textmap.Tracker) {
	t.ReplaceAllFunc(percentRunRe, NormalizePercentage)
}

func (s *Set) operatorPass(t *textmap.Tracker) {
	if !s.opts.ReadOperators {
		return
	}
	for _, op := range operatorTable {
		re, err := regexp.Compile(`[ \t]?` + regexp.QuoteMeta(op.glyph) + `[ \t]?`)
		if err != nil {
			continue
		}
		spoken := " " + op.spoken + " "
		t.ReplaceAllFunc(re, func(string) string { return spoken })
	}
}

func (s *Set) symbolPass(t *textmap.Tracker) {
	t.ReplaceAllFunc(greekOrMathRe, func(glyph string) string {
		if spoken, ok := mathSymbols[glyph]; ok {
			return spoken
		}
		for _, r := range glyph {
			if spoken, ok := greekNames[r]; ok {
				return spoken
			}
		}
		return glyph
	})
}

func (s *Set) identifierPass(t *textmap.Tracker) {
	t.ReplaceAllFunc(identifierRe, s.identifierSpoken)
}

func (s *Set) englishPass(t *textmap.Tracker) {
	for _, p := range s.customPhrases {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(p.phrase) + `\b`)
		if err != nil {
			continue
		}
		spoken := p.spoken
		t.ReplaceAllFunc(re, func(string) string { return spoken })
	}
	for _, p := range phraseTable {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(p.phrase) + `\b`)
		if err != nil {
			continue
		}
		spoken := p.spoken
		t.ReplaceAllFunc(re, func(string) string { return spoken })
	}
	t.ReplaceAllFunc(englishRe, s.englishToken)
}

func (s *Set) numberPass(t *textmap.Tracker) {
	replaceGuarded(t, numberRunRe, func(m string) string {
		if strings.ContainsAny(m, ".,") {
			return NormalizeFloat(m)
		}
		return NormalizeNumber(m)
	})
}

func (s *Set) postprocessPass(t *textmap.Tracker) {
	t.ReplaceAllFunc(regexp.MustCompile(`(?m)[ \t]+$`), func(string) string { return "" })
	t.ReplaceAllFunc(regexp.MustCompile(`\n{3,}`), func(string) string { return "\n\n" })
	t.ReplaceAllFunc(multiSpaceRe, func(string) string { return " " })
	t.ReplaceAllFunc(regexp.MustCompile(`\n+\z`), func(string) string { return "" })
}
