// Package render aligns source markdown against its flattened rendered
// representation, so highlight coordinates computed in source text can
// be reprojected onto a display surface that has stripped the markup.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownPositionMapper flattens markdown and keeps a source→rendered
// position table. Create one per document: Align builds the table,
// GetRenderedRange queries it.
type MarkdownPositionMapper struct {
	md       goldmark.Markdown
	rendered string

	// toRendered has one entry per source rune; -1 marks a source rune
	// (markup syntax) with no rendered counterpart.
	toRendered []int
}

// NewMarkdownPositionMapper creates a mapper with a default goldmark
// parser.
func NewMarkdownPositionMapper() *MarkdownPositionMapper {
	return &MarkdownPositionMapper{md: goldmark.New()}
}

// Align flattens the markup text and rebuilds the alignment table.
// It returns the rendered text.
func (m *MarkdownPositionMapper) Align(source string) string {
	m.rendered = m.flatten(source)
	m.buildTable(source, m.rendered)
	return m.rendered
}

// Rendered returns the flattened text from the last Align call.
func (m *MarkdownPositionMapper) Rendered() string {
	return m.rendered
}

// GetRenderedRange projects the source span [origStart, origEnd) onto
// the rendered text. Boundary characters that fell on deleted markup
// are tolerated by sliding inward. Returns ok=false when no character
// in the span survived rendering; callers must treat that as "suppress
// this highlight", never as an error.
func (m *MarkdownPositionMapper) GetRenderedRange(origStart, origEnd int) (int, int, bool) {
	if origStart < 0 {
		origStart = 0
	}
	if origEnd > len(m.toRendered) {
		origEnd = len(m.toRendered)
	}
	if origStart >= origEnd {
		return 0, 0, false
	}

	start := -1
	for i := origStart; i < origEnd; i++ {
		if m.toRendered[i] >= 0 {
			start = m.toRendered[i]
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	end := start + 1
	for i := origEnd - 1; i >= origStart; i-- {
		if m.toRendered[i] >= 0 {
			end = m.toRendered[i] + 1
			break
		}
	}
	if end < start {
		end = start + 1
	}
	return start, end, true
}

// flatten extracts the text content of the markdown, dropping syntax
// characters and joining blocks with blank lines.
func (m *MarkdownPositionMapper) flatten(source string) string {
	src := []byte(source)
	doc := m.md.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
			writeLines(&b, n, src)
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.Image:
			// Alt text only; the destination never renders.
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func writeLines(b *strings.Builder, n ast.Node, src []byte) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
}

// buildTable aligns source against rendered with an LCS-style diff.
// Equal runs yield dense 1:1 entries, delete runs yield none, and a
// delete immediately followed by an insert is treated as a replacement
// mapped proportionally across the two spans.
func (m *MarkdownPositionMapper) buildTable(source, rendered string) {
	srcLen := utf8.RuneCountInString(source)
	m.toRendered = make([]int, srcLen)
	for i := range m.toRendered {
		m.toRendered[i] = -1
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(source, rendered, false)

	si, ri := 0, 0
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			for k := 0; k < n; k++ {
				m.toRendered[si+k] = ri + k
			}
			si += n
			ri += n
		case diffmatchpatch.DiffDelete:
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				// Replacement run, e.g. entity decoding.
				insLen := utf8.RuneCountInString(diffs[i+1].Text)
				for k := 0; k < n; k++ {
					m.toRendered[si+k] = ri + k*insLen/n
				}
				si += n
				ri += insLen
				i++
				continue
			}
			si += n
		case diffmatchpatch.DiffInsert:
			ri += n
		}
	}
}
