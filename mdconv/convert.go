// Package mdconv converts Markdown documents to RTF.
//
// It parses CommonMark with the GFM and footnote extensions and renders the
// result through the simplertf builder: headings become Heading-style
// paragraphs, emphasis and strong emphasis become italic and bold runs, and
// Markdown footnotes ([^1]) become RTF footnotes anchored at the reference
// point.
package mdconv

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	simplertf "github.com/xavi-mat/simplertf"
)

// Convert parses Markdown source and writes the resulting RTF to w. The
// options configure the underlying document (title, author, layout,
// codepage).
func Convert(w io.Writer, source []byte, opts ...simplertf.Option) error {
	doc, err := ConvertDocument(source, opts...)
	if err != nil {
		return err
	}
	return doc.Output(w)
}

// ConvertDocument parses Markdown source into a simplertf document that the
// caller can extend before serializing.
func ConvertDocument(source []byte, opts ...simplertf.Option) (*simplertf.Document, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
	)
	root := md.Parser().Parse(text.NewReader(source))

	c := &converter{
		doc:       simplertf.NewDocument(opts...),
		source:    source,
		footnotes: collectFootnotes(root, source),
	}
	if err := c.blocks(root); err != nil {
		return nil, fmt.Errorf("mdconv: %w", err)
	}
	return c.doc, nil
}

// inlineState is the formatting accumulated from enclosing inline nodes.
type inlineState struct {
	bold   bool
	italic bool
}

type converter struct {
	doc       *simplertf.Document
	source    []byte
	footnotes map[int]string
}

// collectFootnotes flattens each footnote definition to plain text, keyed
// by the reference index goldmark assigns.
func collectFootnotes(root ast.Node, source []byte) map[int]string {
	defs := make(map[int]string)
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fn, ok := n.(*east.Footnote); ok {
			defs[fn.Index] = flattenText(fn, source)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return defs
}

// flattenText extracts the plain text of a node's subtree, joining blocks
// with single spaces.
func flattenText(node ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if _, ok := n.(*ast.Paragraph); ok && b.Len() > 0 {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func (c *converter) blocks(parent ast.Node) error {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if err := c.block(n, inlineState{}); err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) block(n ast.Node, st inlineState) error {
	switch t := n.(type) {
	case *ast.Heading:
		if t.Level <= 2 {
			if err := c.doc.OpenParagraphStyle(simplertf.StyleHeading); err != nil {
				return err
			}
			return c.inlines(t, st)
		}
		// Deeper levels render as bold normal paragraphs.
		c.doc.OpenParagraph()
		st.bold = true
		return c.inlines(t, st)

	case *ast.Paragraph:
		c.doc.OpenParagraph()
		return c.inlines(t, st)

	case *ast.TextBlock:
		c.doc.OpenParagraph()
		return c.inlines(t, st)

	case *ast.Blockquote:
		// Quotes render in italics.
		st.italic = true
		for child := t.FirstChild(); child != nil; child = child.NextSibling() {
			if err := c.block(child, st); err != nil {
				return err
			}
		}
		return nil

	case *ast.List:
		return c.list(t, st)

	case *ast.FencedCodeBlock:
		return c.codeLines(t.Lines())

	case *ast.CodeBlock:
		return c.codeLines(t.Lines())

	case *ast.ThematicBreak:
		c.doc.Paragraph("* * *")
		return nil

	case *east.FootnoteList:
		// Definitions are emitted inline at their anchors.
		return nil

	case *ast.HTMLBlock:
		return nil

	default:
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if err := c.block(child, st); err != nil {
				return err
			}
		}
		return nil
	}
}

func (c *converter) list(l *ast.List, st inlineState) error {
	num := l.Start
	if num == 0 {
		num = 1
	}
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "- "
		if l.IsOrdered() {
			marker = strconv.Itoa(num) + ". "
			num++
		}
		first := true
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch child.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				c.doc.OpenParagraph()
				if first {
					c.applyState(st)
					if err := c.doc.Text(marker); err != nil {
						return err
					}
					first = false
				}
				if err := c.inlines(child, st); err != nil {
					return err
				}
			default:
				if err := c.block(child, st); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (c *converter) codeLines(lines *text.Segments) error {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(c.source)), "\n")
		c.doc.OpenParagraph()
		if err := c.doc.Text(line); err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) inlines(parent ast.Node, st inlineState) error {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if err := c.inline(n, st); err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) inline(n ast.Node, st inlineState) error {
	switch t := n.(type) {
	case *ast.Text:
		if err := c.text(string(t.Segment.Value(c.source)), st); err != nil {
			return err
		}
		if t.SoftLineBreak() || t.HardLineBreak() {
			return c.text(" ", st)
		}
		return nil

	case *ast.String:
		return c.text(string(t.Value), st)

	case *ast.Emphasis:
		if t.Level >= 2 {
			st.bold = true
		} else {
			st.italic = true
		}
		return c.inlines(t, st)

	case *ast.CodeSpan:
		return c.inlines(t, st)

	case *ast.Link:
		return c.inlines(t, st)

	case *ast.AutoLink:
		return c.text(string(t.URL(c.source)), st)

	case *east.FootnoteLink:
		def, ok := c.footnotes[t.Index]
		if !ok {
			return nil
		}
		if err := c.doc.Note(def); err != nil {
			return err
		}
		c.doc.CloseNote()
		return nil

	case *ast.RawHTML:
		return nil

	default:
		return c.inlines(n, st)
	}
}

func (c *converter) text(s string, st inlineState) error {
	if s == "" {
		return nil
	}
	c.applyState(st)
	return c.doc.Text(s)
}

func (c *converter) applyState(st inlineState) {
	c.doc.SetBold(st.bold)
	c.doc.SetItalic(st.italic)
}
