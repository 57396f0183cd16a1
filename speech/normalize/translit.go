package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/xilec/ruvox/internal/cache"
)

// memoCapacity bounds the transliteration memo. Technical documents
// rarely carry more distinct unknown words than this.
const memoCapacity = 4096

// digraphs are multi-letter English patterns tried before single
// letters, longest first.
var digraphs = []struct{ from, to string }{
	{"tion", "шн"},
	{"ight", "айт"},
	{"ough", "о"},
	{"sch", "ск"},
	{"tch", "тч"},
	{"ck", "к"},
	{"ch", "ч"},
	{"sh", "ш"},
	{"th", "з"},
	{"ph", "ф"},
	{"wh", "в"},
	{"qu", "кв"},
	{"ee", "и"},
	{"oo", "у"},
	{"ea", "и"},
	{"ou", "ау"},
	{"ay", "ей"},
	{"ai", "ей"},
	{"ey", "ей"},
	{"oy", "ой"},
	{"aw", "о"},
	{"ew", "ью"},
	{"kn", "н"},
	{"wr", "р"},
}

// letters is the single-letter substitution table for the phonetic
// fallback.
var letters = map[rune]string{
	'a': "а", 'b': "б", 'c': "к", 'd': "д", 'e': "е",
	'f': "ф", 'g': "г", 'h': "х", 'i': "и", 'j': "дж",
	'k': "к", 'l': "л", 'm': "м", 'n': "н", 'o': "о",
	'p': "п", 'q': "к", 'r': "р", 's': "с", 't': "т",
	'u': "у", 'v': "в", 'w': "в", 'x': "кс", 'y': "й",
	'z': "з",
}

// Transliterator memoizes phonetic fallback results and records every
// word that needed the fallback in a diagnostic set. The sink is
// injectable so callers decide where unknown words surface; the set is
// retrievable either way.
type Transliterator struct {
	memo    *cache.Memo
	unknown map[string]struct{}
	sink    func(word string)
}

// NewTransliterator creates a transliterator. sink may be nil.
func NewTransliterator(sink func(word string)) *Transliterator {
	return &Transliterator{
		memo:    cache.NewMemo(memoCapacity),
		unknown: make(map[string]struct{}),
		sink:    sink,
	}
}

// Word transliterates an English word phonetically. The result is
// memoized by lowercase form and the word is recorded as unknown.
func (tr *Transliterator) Word(word string) string {
	key := strings.ToLower(word)
	if key == "" {
		return word
	}

	if _, seen := tr.unknown[key]; !seen {
		tr.unknown[key] = struct{}{}
		if tr.sink != nil {
			tr.sink(key)
		}
	}

	if spoken, ok := tr.memo.Get(key); ok {
		return spoken
	}
	spoken := phonetic(key)
	tr.memo.Put(key, spoken)
	return spoken
}

// UnknownWords returns the words that fell through to the phonetic
// fallback since the last Reset, unordered.
func (tr *Transliterator) UnknownWords() []string {
	out := make([]string, 0, len(tr.unknown))
	for w := range tr.unknown {
		out = append(out, w)
	}
	return out
}

// Reset clears the unknown-word set and the memo. Must be called
// between documents; nothing here resets implicitly.
func (tr *Transliterator) Reset() {
	tr.unknown = make(map[string]struct{})
	tr.memo.Reset()
}

// phonetic is the letter/digraph substitution pass. Input is folded to
// NFD first so accented Latin letters ("café") lose their marks before
// lookup.
func phonetic(word string) string {
	word = stripMarks(norm.NFD.String(word))

	runes := []rune(word)
	var b strings.Builder
scan:
	for i := 0; i < len(runes); {
		rest := string(runes[i:])
		for _, d := range digraphs {
			if strings.HasPrefix(rest, d.from) {
				b.WriteString(d.to)
				i += len(d.from) // digraphs are ASCII
				continue scan
			}
		}
		if sub, ok := letters[runes[i]]; ok {
			b.WriteString(sub)
		} else {
			b.WriteRune(runes[i])
		}
		i++
	}
	return b.String()
}

func stripMarks(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsMark(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
