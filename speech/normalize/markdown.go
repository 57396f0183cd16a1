package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/xilec/ruvox/pkg/textmap"
)

var (
	fencedRe     = regexp.MustCompile("(?ms)^```([A-Za-z0-9+#.-]*)[^\n]*\n(.*?)^```[ \t]*$")
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")

	headingRe     = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	imageRe       = regexp.MustCompile(`!\[([^\]\n]*)\]\(([^)\n]+)\)`)
	linkRe        = regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\n]+)\)`)
	boldStarRe    = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	boldUnderRe   = regexp.MustCompile(`__([^_\n]+)__`)
	italicStarRe  = regexp.MustCompile(`\*([^*\s][^*\n]*?)\*`)
	blockquoteRe  = regexp.MustCompile(`(?m)^>[ \t]?`)
	orderedRe     = regexp.MustCompile(`(?m)^([ \t]*)(\d{1,3})\.([ \t])`)
	unorderedRe   = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	horizontalRe  = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,}|_{3,})[ \t]*$`)
	strikeRe      = regexp.MustCompile(`~~([^~\n]+)~~`)
)

// codeBlockPass handles fenced blocks before any other pass can touch
// their contents. In brief mode the whole block collapses to a short
// spoken description; in full mode only the fence lines are removed and
// the body flows into the later passes.
func (s *Set) codeBlockPass(t *textmap.Tracker) {
	if s.opts.CodeBlockMode == CodeBlockBrief {
		t.ReplaceAllSubmatchFunc(fencedRe, func(g []string) string {
			lang := strings.ToLower(strings.TrimSpace(g[1]))
			if lang == "" {
				return "Блок кода."
			}
			spoken, ok := languageNames[lang]
			if !ok {
				spoken = s.englishToken(lang)
			}
			return "Блок кода на языке " + spoken + "."
		})
		return
	}
	s.stripDelimiters(t, fencedRe, 2)
}

// inlineCodePass drops the backticks and leaves the content in place,
// so identifiers and operators inside it keep exact positions.
func (s *Set) inlineCodePass(t *textmap.Tracker) {
	s.stripDelimiters(t, inlineCodeRe, 1)
}

// stripDelimiters deletes everything before and after capture group n
// within each match, keeping the group's text untouched. Matches are
// processed right to left so earlier positions stay valid.
func (s *Set) stripDelimiters(t *textmap.Tracker, re *regexp.Regexp, group int) {
	snap := t.Text()
	locs := re.FindAllStringSubmatchIndex(snap, -1)
	if len(locs) == 0 {
		return
	}
	b2r := textmap.RuneOffsets(snap)
	for i := len(locs) - 1; i >= 0; i-- {
		loc := locs[i]
		gs, ge := loc[2*group], loc[2*group+1]
		if ge < loc[1] {
			t.Replace(b2r[ge], b2r[loc[1]], "")
		}
		if loc[0] < gs {
			t.Replace(b2r[loc[0]], b2r[gs], "")
		}
	}
}

// markdownPass flattens the remaining structural markup. Only marker
// characters are deleted; the visible text keeps its one-to-one source
// mapping.
func (s *Set) markdownPass(t *textmap.Tracker) {
	t.ReplaceAllFunc(horizontalRe, func(string) string { return "" })
	t.ReplaceAllFunc(headingRe, func(string) string { return "" })
	t.ReplaceAllFunc(blockquoteRe, func(string) string { return "" })

	s.imageLinks(t)
	s.textLinks(t)

	s.stripDelimiters(t, boldStarRe, 1)
	s.stripDelimiters(t, boldUnderRe, 1)
	s.stripDelimiters(t, strikeRe, 1)
	s.stripDelimiters(t, italicStarRe, 1)

	t.ReplaceAllSubmatchFunc(orderedRe, func(g []string) string {
		n, err := strconv.Atoi(g[2])
		if err != nil || n == 0 {
			return g[0]
		}
		return g[1] + OrdinalNeuter(n) + "." + g[3]
	})
	t.ReplaceAllFunc(unorderedRe, func(string) string { return "" })
}

// imageLinks reads an image as the word "изображение" plus its alt
// text; the target is never spoken.
func (s *Set) imageLinks(t *textmap.Tracker) {
	snap := t.Text()
	locs := imageRe.FindAllStringSubmatchIndex(snap, -1)
	if len(locs) == 0 {
		return
	}
	b2r := textmap.RuneOffsets(snap)
	for i := len(locs) - 1; i >= 0; i-- {
		loc := locs[i]
		altStart, altEnd := loc[2], loc[3]
		if altStart == altEnd {
			t.Replace(b2r[loc[0]], b2r[loc[1]], "изображение")
			continue
		}
		t.Replace(b2r[altEnd], b2r[loc[1]], "")
		t.Replace(b2r[loc[0]], b2r[altStart], "изображение ")
	}
}

// textLinks keeps a link's visible text in place and drops the syntax
// around it. With full URL detail the spoken target follows the text.
func (s *Set) textLinks(t *textmap.Tracker) {
	snap := t.Text()
	locs := linkRe.FindAllStringSubmatchIndex(snap, -1)
	if len(locs) == 0 {
		return
	}
	b2r := textmap.RuneOffsets(snap)
	for i := len(locs) - 1; i >= 0; i-- {
		loc := locs[i]
		textStart, textEnd := loc[2], loc[3]
		target := snap[loc[4]:loc[5]]

		suffix := ""
		if s.opts.URLDetail == URLDetailFull {
			suffix = ", ссылка " + s.urlSpoken(target) + ","
		}
		t.Replace(b2r[textEnd], b2r[loc[1]], suffix)
		t.Replace(b2r[loc[0]], b2r[textStart], "")
	}
}
