// Package goldmark provides a goldmark-based implementation of
// gitbooktext.Converter.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/gitbooktext"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Converter implements gitbooktext.Converter at compile time.
var _ gitbooktext.Converter = (*Converter)(nil)

// Converter flattens markdown into plain text by walking the parsed AST.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{md: goldmark.New()}
}

// Convert keeps text runs, code content, and autolink URLs verbatim, in
// document order, and emits one newline per soft or hard line break. Every
// other node kind
// (headings, emphasis, lists, tables, raw HTML) contributes nothing beyond
// the text runs it contains. The conversion is deliberately lossy; no
// whitespace collapsing happens here.
func (c *Converter) Convert(markdown string) (string, error) {
	src := []byte(markdown)
	doc := c.md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(node.Value)
		case *ast.AutoLink:
			// Autolinks carry their URL as the payload, not as a child
			// text node.
			buf.Write(node.Label(src))
		case *ast.CodeBlock:
			writeLines(&buf, src, node)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			writeLines(&buf, src, node)
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			// Raw HTML carries no textual payload of its own.
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// writeLines appends a code block's literal lines, newlines included.
func writeLines(buf *bytes.Buffer, src []byte, node ast.Node) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(src))
	}
}
