package simplertf

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// generatorName appears in the {\*\generator …} group of the header.
const generatorName = "simplertf"

// Bytes serializes the document and returns the complete RTF text. The
// pass is read-only: the model is not mutated, open elements are emitted
// up to their last appended content, and repeated calls produce identical
// output.
func (d *Document) Bytes() ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}
	if err := d.checkState(); err != nil {
		return nil, newRTFError("Bytes", err)
	}

	var b strings.Builder

	if err := d.writeHeader(&b); err != nil {
		return nil, err
	}
	for i := range d.paragraphs {
		if err := d.writeParagraph(&b, &d.paragraphs[i]); err != nil {
			return nil, err
		}
	}
	b.WriteString("}")

	return []byte(b.String()), nil
}

// Output serializes the document and writes it to w.
func (d *Document) Output(w io.Writer) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile serializes the document and writes it to the named file,
// creating or truncating it.
func (d *Document) WriteFile(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (d *Document) writeHeader(b *strings.Builder) error {
	// Prolog: version, character set, default font and languages.
	b.WriteString("{\\rtf1\\ansi")
	if d.codepage != nil {
		b.WriteString("\\ansicpg")
		b.WriteString(strconv.Itoa(d.codepage.ID))
	}
	b.WriteString("\\deff0")
	b.WriteString("\\deflang")
	b.WriteString(strconv.Itoa(d.deflang))
	b.WriteString("\\adeflang")
	b.WriteString(strconv.Itoa(d.adeflang))
	b.WriteString("\n")

	// Font table
	b.WriteString("{\\fonttbl\n")
	for _, f := range d.fonts {
		f.appendTo(b)
	}
	b.WriteString("}\n")

	// Color table; the leading semicolon is the automatic color.
	b.WriteString("{\\colortbl\n;\n")
	for _, c := range d.colors {
		c.appendTo(b)
	}
	b.WriteString("}\n")

	// Stylesheet
	b.WriteString("{\\stylesheet\n")
	for _, s := range d.styles {
		s.appendTo(b)
	}
	b.WriteString("}\n")

	// Generator
	b.WriteString("{\\*\\generator ")
	b.WriteString(generatorName)
	b.WriteString("}\n")

	// Info block
	b.WriteString("{\\info\n{\\title ")
	if err := escapeText(b, d.title, d.codepage); err != nil {
		return err
	}
	b.WriteString("}\n{\\author ")
	if err := escapeText(b, d.author, d.codepage); err != nil {
		return err
	}
	b.WriteString("}\n")
	fmt.Fprintf(b, "{\\creatim\\yr%d\\mo%d\\dy%d\\hr%d\\min%d}\n",
		d.created.Year(), int(d.created.Month()), d.created.Day(),
		d.created.Hour(), d.created.Minute())
	b.WriteString("}\n")

	// Page geometry
	fmt.Fprintf(b, "\\paperh%d\\paperw%d\\margl%d\\margr%d\\margt%d\\margb%d\n",
		d.layout.PageHeight, d.layout.PageWidth,
		d.layout.MarginLeft, d.layout.MarginRight,
		d.layout.MarginTop, d.layout.MarginBottom)

	// Footnote placement and numbering
	b.WriteString("\\")
	b.WriteString(d.ftnOptions.Position)
	if d.ftnOptions.RestartPage {
		b.WriteString("\\ftnrstpg")
	}
	if d.ftnOptions.RestartSect {
		b.WriteString("\\ftnrestart")
	}
	b.WriteString("\\")
	b.WriteString(d.ftnOptions.Numbering)
	b.WriteString("\n")

	return nil
}

func (d *Document) writeParagraph(b *strings.Builder, par *Paragraph) error {
	style, ok := d.styleByID(par.StyleID)
	if !ok {
		style, _ = d.styleByID(StyleDefault)
	}

	b.WriteString("{\\pard ")
	b.WriteString(style.apply())

	// The style's own character formatting is the baseline the first run
	// diffs against, so runs inheriting it emit no toggle at all. Run
	// toggles layer on top of the baseline; they cannot switch a
	// style-level toggle off.
	baseline := styleBaseline(style)
	active := baseline

	pos := 0
	for pos <= len(par.Runs) {
		for fi := range par.Footnotes {
			if par.Footnotes[fi].anchorRun == pos {
				if err := d.writeFootnote(b, &par.Footnotes[fi]); err != nil {
					return err
				}
			}
		}
		if pos == len(par.Runs) {
			break
		}
		run := par.Runs[pos]
		effective := overlayStyle(run.Style, baseline)
		effective.appendToggles(b, active)
		active = effective
		if err := escapeText(b, run.Text, d.codepage); err != nil {
			return err
		}
		pos++
	}

	b.WriteString("\\par}\n")
	return nil
}

func styleBaseline(s Style) TextStyle {
	return TextStyle{
		Bold:      s.Bold,
		Italic:    s.Italic,
		SmallCaps: s.SmallCaps,
		FontSize:  s.FontSize,
	}
}

func overlayStyle(run, baseline TextStyle) TextStyle {
	eff := run
	eff.Bold = run.Bold || baseline.Bold
	eff.Italic = run.Italic || baseline.Italic
	eff.SmallCaps = run.SmallCaps || baseline.SmallCaps
	if eff.FontSize == 0 {
		eff.FontSize = baseline.FontSize
	}
	return eff
}

func (d *Document) writeFootnote(b *strings.Builder, fn *Footnote) error {
	style, ok := d.styleByID(fn.StyleID)
	if !ok {
		style, _ = d.styleByID(StyleDefault)
	}

	// The anchor appears twice: as the visible superscripted mark in the
	// paragraph text and as the mark opening the footnote group.
	b.WriteString("{\\super ")
	if err := d.writeAnchor(b, fn.Anchor); err != nil {
		return err
	}
	b.WriteString("{\\footnote ")
	if err := d.writeAnchor(b, fn.Anchor); err != nil {
		return err
	}
	b.WriteString("\\pard\\plain ")
	b.WriteString(style.apply())

	baseline := styleBaseline(style)
	active := baseline
	for _, run := range fn.Runs {
		effective := overlayStyle(run.Style, baseline)
		effective.appendToggles(b, active)
		active = effective
		if err := escapeText(b, run.Text, d.codepage); err != nil {
			return err
		}
	}

	b.WriteString("}}\n")
	return nil
}

func (d *Document) writeAnchor(b *strings.Builder, anchor string) error {
	if anchor == "" {
		b.WriteString("\\chftn ")
		return nil
	}
	return escapeText(b, anchor, d.codepage)
}
