package doctpl

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	simplertf "github.com/xavi-mat/simplertf"
)

// codepages maps template codepage numbers to the library's supported
// codepages.
var codepages = map[int]simplertf.Codepage{
	1250: simplertf.CP1250,
	1251: simplertf.CP1251,
	1252: simplertf.CP1252,
	1253: simplertf.CP1253,
	1254: simplertf.CP1254,
	1255: simplertf.CP1255,
	1256: simplertf.CP1256,
	1257: simplertf.CP1257,
}

// styleIDs maps template style names to the builder's default stylesheet.
var styleIDs = map[string]string{
	"":        simplertf.StyleNormal,
	"normal":  simplertf.StyleNormal,
	"heading": simplertf.StyleHeading,
	"default": simplertf.StyleDefault,
}

// Render parses a JSON template and writes the resulting RTF to w.
func Render(w io.Writer, jsonTemplate []byte) error {
	var doc Document
	if err := json.Unmarshal(jsonTemplate, &doc); err != nil {
		return fmt.Errorf("doctpl: parsing template: %w", err)
	}
	return RenderDocument(w, &doc)
}

// RenderYAML parses a YAML template and writes the resulting RTF to w.
func RenderYAML(w io.Writer, yamlTemplate []byte) error {
	var doc Document
	if err := yaml.Unmarshal(yamlTemplate, &doc); err != nil {
		return fmt.Errorf("doctpl: parsing template: %w", err)
	}
	return RenderDocument(w, &doc)
}

// RenderDocument renders a Document struct to RTF written to w.
func RenderDocument(w io.Writer, doc *Document) error {
	rtf, err := buildDocument(doc)
	if err != nil {
		return err
	}
	return rtf.Output(w)
}

func buildDocument(doc *Document) (*simplertf.Document, error) {
	var opts []simplertf.Option
	if doc.Title != "" {
		opts = append(opts, simplertf.WithTitle(doc.Title))
	}
	if doc.Author != "" {
		opts = append(opts, simplertf.WithAuthor(doc.Author))
	}
	if doc.Language > 0 {
		opts = append(opts, simplertf.WithLanguage(doc.Language, 0))
	}
	if doc.Codepage != 0 {
		cp, ok := codepages[doc.Codepage]
		if !ok {
			return nil, fmt.Errorf("doctpl: unsupported codepage %d", doc.Codepage)
		}
		opts = append(opts, simplertf.WithCodepage(cp))
	}

	rtf := simplertf.NewDocument(opts...)

	pageSize := doc.PageSize
	if pageSize == "" {
		pageSize = simplertf.LayoutA4
	}
	if err := rtf.SetLayout(pageSize); err != nil {
		return nil, fmt.Errorf("doctpl: %w", err)
	}

	if doc.Margin != nil {
		if err := applyMargins(rtf, doc.Margin); err != nil {
			return nil, err
		}
	}

	for i, par := range doc.Paragraphs {
		if err := renderParagraph(rtf, &par); err != nil {
			return nil, fmt.Errorf("doctpl: paragraph %d: %w", i, err)
		}
	}

	return rtf, nil
}

func applyMargins(rtf *simplertf.Document, m *Margin) error {
	l := rtf.Layout()
	top, bottom, left, right := l.MarginTop, l.MarginBottom, l.MarginLeft, l.MarginRight

	var err error
	if m.Top != "" {
		if top, err = simplertf.ParseMeasure(m.Top); err != nil {
			return fmt.Errorf("doctpl: top margin: %w", err)
		}
	}
	if m.Bottom != "" {
		if bottom, err = simplertf.ParseMeasure(m.Bottom); err != nil {
			return fmt.Errorf("doctpl: bottom margin: %w", err)
		}
	}
	if m.Left != "" {
		if left, err = simplertf.ParseMeasure(m.Left); err != nil {
			return fmt.Errorf("doctpl: left margin: %w", err)
		}
	}
	if m.Right != "" {
		if right, err = simplertf.ParseMeasure(m.Right); err != nil {
			return fmt.Errorf("doctpl: right margin: %w", err)
		}
	}

	rtf.SetMargins(top, bottom, left, right)
	return nil
}

func renderParagraph(rtf *simplertf.Document, par *Paragraph) error {
	styleID, ok := styleIDs[par.Style]
	if !ok {
		return fmt.Errorf("unknown paragraph style %q", par.Style)
	}
	if err := rtf.OpenParagraphStyle(styleID); err != nil {
		return err
	}

	runs := par.Runs
	if len(runs) == 0 && par.Text != "" {
		runs = []Run{{Text: par.Text}}
	}

	for _, run := range runs {
		if err := renderRun(rtf, &run); err != nil {
			return err
		}
	}
	return nil
}

func renderRun(rtf *simplertf.Document, run *Run) error {
	rtf.SetBold(run.Bold)
	rtf.SetItalic(run.Italic)
	rtf.SetUnderline(run.Underline)
	rtf.SetSmallCaps(run.SmallCaps)
	rtf.SetFontSize(run.FontSize)
	var err error
	switch {
	case run.Sub:
		err = rtf.Sub(run.Text)
	case run.Super:
		err = rtf.Super(run.Text)
	default:
		err = rtf.Text(run.Text)
	}
	if err != nil {
		return err
	}

	if run.Note != nil {
		if run.Note.Anchor != "" {
			err = rtf.NoteAnchor(run.Note.Text, run.Note.Anchor)
		} else {
			err = rtf.Note(run.Note.Text)
		}
		if err != nil {
			return err
		}
		rtf.CloseNote()
	}
	return nil
}
