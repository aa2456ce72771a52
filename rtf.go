// Package simplertf builds simple RTF documents in memory and serializes
// them to the RTF 1.x grammar.
//
// A Document accumulates paragraphs, styled text runs and footnotes through
// a small state machine: at most one paragraph is open for appends at any
// time, and at most one footnote inside it. Opening a new paragraph closes
// whatever was open before. Serialization is a pure pass over the
// accumulated structure and may be repeated; it never mutates the model.
//
//	doc := simplertf.NewDocument(
//	    simplertf.WithTitle("My Document"),
//	    simplertf.WithAuthor("Myself"),
//	    simplertf.WithLayout(simplertf.LayoutA4),
//	)
//	doc.Text("This text starts a paragraph.")
//	doc.NoteAnchor("The text of a footnote.", "*")
//	doc.OpenParagraph()
//	doc.Text("A second paragraph.")
//	err := doc.WriteFile("out.rtf")
package simplertf

import (
	"fmt"
	"time"
)

// timeNow is stubbed in tests that need a fixed \creatim.
var timeNow = time.Now

// Run is a contiguous span of text sharing one formatting snapshot.
type Run struct {
	Text  string
	Style TextStyle
}

// Footnote is a note anchored at a point in a paragraph's text. An empty
// Anchor means the grammar's auto-numbering mark. StyleID is the stylesheet
// style in effect when the footnote was opened. anchorRun is the index into
// the owning paragraph's runs the anchor follows.
type Footnote struct {
	Anchor  string
	StyleID string
	Runs    []Run

	anchorRun int
}

// Paragraph is a top-level structural element owning text runs and the
// footnotes anchored within it.
type Paragraph struct {
	StyleID   string
	Runs      []Run
	Footnotes []Footnote
}

// FootnoteOptions controls document-level footnote placement and numbering.
type FootnoteOptions struct {
	Position    string // "ftnbj" bottom of page, "ftntj" beneath text
	RestartPage bool   // restart numbering on each page
	RestartSect bool   // restart numbering on each section
	Numbering   string // "ftnnar", "ftnnalc", "ftnnauc", "ftnnrlc", "ftnnruc"
}

// Document is the in-memory representation of an RTF document. The zero
// value is not usable; create documents with NewDocument. A Document is not
// safe for concurrent use.
type Document struct {
	title  string
	author string
	layout Layout

	fonts  []Font
	colors []Color
	styles []Style

	parStyleID  string
	noteStyleID string

	ftnOptions FootnoteOptions
	deflang    int
	adeflang   int
	codepage   *Codepage
	created    time.Time

	paragraphs []Paragraph
	openPar    int // index into paragraphs, -1 when none is open
	openNote   int // index into the open paragraph's footnotes, -1 when none

	// Active formatting state of each append target. parState is reset
	// when a paragraph opens, noteState when a footnote opens.
	parState  TextStyle
	noteState TextStyle

	err error // first deferred option error, surfaced at serialization
}

// OpenParagraph closes any open footnote and paragraph and opens a new
// empty paragraph using the current default paragraph style. The
// paragraph-level formatting state is reset.
func (d *Document) OpenParagraph() {
	d.openParagraph(d.parStyleID)
}

// OpenParagraphStyle is OpenParagraph with an explicit stylesheet style.
// It fails with ErrUnknownStyle if the ID is not in the stylesheet; the
// document is left unchanged.
func (d *Document) OpenParagraphStyle(styleID string) error {
	if _, ok := d.styleByID(styleID); !ok {
		return newRTFError("OpenParagraphStyle", fmt.Errorf("%w: %q", ErrUnknownStyle, styleID))
	}
	d.openParagraph(styleID)
	return nil
}

func (d *Document) openParagraph(styleID string) {
	d.CloseNote()
	d.paragraphs = append(d.paragraphs, Paragraph{StyleID: styleID})
	d.openPar = len(d.paragraphs) - 1
	d.parState = TextStyle{}
}

// CloseParagraph closes the open paragraph, and with it any open footnote.
// It is a no-op when no paragraph is open. Closing is optional: an open
// paragraph is included in the serialized output as-is.
func (d *Document) CloseParagraph() {
	d.CloseNote()
	d.openPar = -1
}

// Text appends s to whichever element currently receives text: the open
// footnote if one exists, else the open paragraph. When no paragraph is
// open one is opened implicitly. Consecutive appends under an unchanged
// formatting state coalesce into a single run.
func (d *Document) Text(s string) error {
	return d.appendText("Text", s, nil)
}

// Paragraph opens a new paragraph and appends its first text in one call.
func (d *Document) Paragraph(s string) {
	d.OpenParagraph()
	d.appendText("Paragraph", s, nil)
}

// Bold appends s in bold without changing the persistent formatting state.
func (d *Document) Bold(s string) error {
	return d.appendText("Bold", s, func(st *TextStyle) { st.Bold = true })
}

// Italic appends s in italics without changing the persistent formatting state.
func (d *Document) Italic(s string) error {
	return d.appendText("Italic", s, func(st *TextStyle) { st.Italic = true })
}

// Underline appends s underlined without changing the persistent formatting state.
func (d *Document) Underline(s string) error {
	return d.appendText("Underline", s, func(st *TextStyle) { st.Underline = true })
}

// SmallCaps appends s in small capitals without changing the persistent
// formatting state.
func (d *Document) SmallCaps(s string) error {
	return d.appendText("SmallCaps", s, func(st *TextStyle) { st.SmallCaps = true })
}

// Sub appends s as subscript without changing the persistent formatting state.
func (d *Document) Sub(s string) error {
	return d.appendText("Sub", s, func(st *TextStyle) { st.Subscript = true })
}

// Super appends s as superscript without changing the persistent formatting state.
func (d *Document) Super(s string) error {
	return d.appendText("Super", s, func(st *TextStyle) { st.Superscript = true })
}

func (d *Document) appendText(op, s string, override func(*TextStyle)) error {
	if s == "" {
		return nil
	}
	if d.openPar < 0 {
		d.openParagraph(d.parStyleID)
	}
	if err := d.checkState(); err != nil {
		return newRTFError(op, err)
	}

	par := &d.paragraphs[d.openPar]
	if d.openNote >= 0 {
		note := &d.paragraphs[d.openPar].Footnotes[d.openNote]
		style := d.noteState
		if override != nil {
			override(&style)
		}
		note.Runs = appendRun(note.Runs, s, style, true)
		return nil
	}

	style := d.parState
	if override != nil {
		override(&style)
	}
	// A footnote anchored at the current end of the paragraph pins the
	// position: text appended after it must not coalesce into the run
	// before the anchor.
	coalesce := true
	for i := range par.Footnotes {
		if par.Footnotes[i].anchorRun == len(par.Runs) {
			coalesce = false
			break
		}
	}
	par.Runs = appendRun(par.Runs, s, style, coalesce)
	return nil
}

func appendRun(runs []Run, s string, style TextStyle, coalesce bool) []Run {
	if coalesce && len(runs) > 0 && runs[len(runs)-1].Style == style {
		runs[len(runs)-1].Text += s
		return runs
	}
	return append(runs, Run{Text: s, Style: style})
}

// Note opens a footnote on the open paragraph, anchored at the current end
// of the paragraph's text with the grammar's auto-numbering mark, and
// appends text as its first content. Any previously open footnote is
// closed first. It fails with ErrNoParagraph when no paragraph is open;
// the failed call changes nothing.
func (d *Document) Note(text string) error {
	return d.note("Note", text, "")
}

// NoteAnchor is Note with an explicit literal anchor mark such as "*".
// Anchor uniqueness is not validated.
func (d *Document) NoteAnchor(text, anchor string) error {
	return d.note("NoteAnchor", text, anchor)
}

func (d *Document) note(op, text, anchor string) error {
	if d.openPar < 0 {
		return newRTFError(op, ErrNoParagraph)
	}
	if err := d.checkState(); err != nil {
		return newRTFError(op, err)
	}

	d.CloseNote()
	par := &d.paragraphs[d.openPar]
	fn := Footnote{Anchor: anchor, StyleID: d.noteStyleID, anchorRun: len(par.Runs)}
	par.Footnotes = append(par.Footnotes, fn)
	d.openNote = len(par.Footnotes) - 1
	d.noteState = TextStyle{}
	if text != "" {
		note := &par.Footnotes[d.openNote]
		note.Runs = appendRun(note.Runs, text, d.noteState, true)
	}
	return nil
}

// CloseNote closes the open footnote, so subsequent appends target the
// paragraph again. It is a no-op when no footnote is open.
func (d *Document) CloseNote() {
	d.openNote = -1
}

// SetBold toggles bold in the formatting state of the open target. It
// affects only subsequently appended text.
func (d *Document) SetBold(on bool) {
	d.activeState().Bold = on
}

// SetItalic toggles italics in the formatting state of the open target.
func (d *Document) SetItalic(on bool) {
	d.activeState().Italic = on
}

// SetUnderline toggles underlining in the formatting state of the open target.
func (d *Document) SetUnderline(on bool) {
	d.activeState().Underline = on
}

// SetSmallCaps toggles small capitals in the formatting state of the open target.
func (d *Document) SetSmallCaps(on bool) {
	d.activeState().SmallCaps = on
}

// SetFontSize sets the font size, in half-points, of the formatting state
// of the open target. Zero restores the size of the underlying paragraph
// or footnote style.
func (d *Document) SetFontSize(halfPoints int) {
	d.activeState().FontSize = halfPoints
}

func (d *Document) activeState() *TextStyle {
	if d.openNote >= 0 {
		return &d.noteState
	}
	return &d.parState
}

// SetTitle sets the document title emitted in the info block.
func (d *Document) SetTitle(title string) {
	d.title = title
}

// SetAuthor sets the document author emitted in the info block.
func (d *Document) SetAuthor(author string) {
	d.author = author
}

// SetLayout sets the page geometry from a named preset. It fails with
// ErrUnknownPreset and leaves the layout unchanged when the name is not
// registered.
func (d *Document) SetLayout(preset string) error {
	l, err := ResolvePreset(preset)
	if err != nil {
		return newRTFError("SetLayout", err)
	}
	d.layout = l
	return nil
}

// SetPageSize sets the paper dimensions, keeping the current margins.
func (d *Document) SetPageSize(width, height Twips) {
	d.layout.PageWidth = width
	d.layout.PageHeight = height
}

// SetMargins sets the four page margins.
func (d *Document) SetMargins(top, bottom, left, right Twips) {
	d.layout.MarginTop = top
	d.layout.MarginBottom = bottom
	d.layout.MarginLeft = left
	d.layout.MarginRight = right
}

// Layout returns the current page geometry.
func (d *Document) Layout() Layout {
	return d.layout
}

// AddFont registers a font in the font table.
func (d *Document) AddFont(f Font) {
	d.fonts = append(d.fonts, f)
}

// AddColor registers a color in the color table and returns its index for
// use in Style.ColorID.
func (d *Document) AddColor(c Color) int {
	d.colors = append(d.colors, c)
	return len(d.colors)
}

// AddStyle registers a named paragraph style in the stylesheet.
func (d *Document) AddStyle(s Style) {
	d.styles = append(d.styles, s)
}

// SetParagraphStyle sets the stylesheet style applied to paragraphs opened
// from now on. It fails with ErrUnknownStyle if the ID is not registered.
func (d *Document) SetParagraphStyle(styleID string) error {
	if _, ok := d.styleByID(styleID); !ok {
		return newRTFError("SetParagraphStyle", fmt.Errorf("%w: %q", ErrUnknownStyle, styleID))
	}
	d.parStyleID = styleID
	return nil
}

// SetNoteStyle sets the stylesheet style applied to footnotes opened from
// now on. It fails with ErrUnknownStyle if the ID is not registered.
func (d *Document) SetNoteStyle(styleID string) error {
	if _, ok := d.styleByID(styleID); !ok {
		return newRTFError("SetNoteStyle", fmt.Errorf("%w: %q", ErrUnknownStyle, styleID))
	}
	d.noteStyleID = styleID
	return nil
}

// SetFootnoteOptions sets document-level footnote placement and numbering.
func (d *Document) SetFootnoteOptions(opts FootnoteOptions) {
	if opts.Position == "" {
		opts.Position = "ftnbj"
	}
	if opts.Numbering == "" {
		opts.Numbering = "ftnnar"
	}
	d.ftnOptions = opts
}

// Paragraphs returns the accumulated paragraphs in document order.
func (d *Document) Paragraphs() []Paragraph {
	return d.paragraphs
}

func (d *Document) styleByID(id string) (Style, bool) {
	for _, s := range d.styles {
		if s.ID == id {
			return s, true
		}
	}
	return Style{}, false
}

// checkState verifies the open-element invariants. A violation means a bug
// in this package, not in the caller; it is reported as ErrInvalidState.
func (d *Document) checkState() error {
	if d.openPar >= len(d.paragraphs) {
		return fmt.Errorf("%w: open paragraph %d of %d", ErrInvalidState, d.openPar, len(d.paragraphs))
	}
	if d.openPar >= 0 && d.openPar != len(d.paragraphs)-1 {
		return fmt.Errorf("%w: open paragraph %d is not the last", ErrInvalidState, d.openPar)
	}
	if d.openNote >= 0 {
		if d.openPar < 0 {
			return fmt.Errorf("%w: open footnote without open paragraph", ErrInvalidState)
		}
		if d.openNote >= len(d.paragraphs[d.openPar].Footnotes) {
			return fmt.Errorf("%w: open footnote %d of %d", ErrInvalidState,
				d.openNote, len(d.paragraphs[d.openPar].Footnotes))
		}
	}
	return nil
}
