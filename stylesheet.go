package simplertf

import (
	"strconv"
	"strings"
)

// Style is a named paragraph style in the document's stylesheet. ID is the
// grammar's style designator ("s0", "s1", …). Zero-valued fields are
// omitted from the output. Dimensional fields are in twips; FontSize is in
// half-points.
type Style struct {
	ID      string
	Name    string
	BasedOn string // ID of the parent style; defaults to the style itself
	Next    string // ID of the style for the following paragraph

	Align       string // "ql", "qr", "qc", "qj"
	FontID      string // entry in the font table, e.g. "f0"
	FontSize    int
	LineSpacing Twips // \slN\slmult1
	SpaceBefore Twips
	SpaceAfter  Twips
	FirstIndent Twips // may be negative for hanging indents
	LeftIndent  Twips
	RightIndent Twips
	KeepNext    bool
	WidowCtl    bool
	Hyphenate   bool
	RTL         bool
	Bold        bool
	Italic      bool
	SmallCaps   bool
	AllCaps     bool
	ColorID     int // entry in the color table; 0 is the automatic color
	Lang        int // language code, e.g. 1033
}

// apply returns the control words that put this style's formatting into
// effect at the start of a paragraph or footnote group.
func (s Style) apply() string {
	var b strings.Builder
	b.WriteString("\\")
	b.WriteString(s.ID)

	if s.Align != "" {
		b.WriteString("\\")
		b.WriteString(s.Align)
	}
	if s.FontID != "" {
		b.WriteString("\\")
		b.WriteString(s.FontID)
	}
	if s.FontSize > 0 {
		b.WriteString("\\fs")
		b.WriteString(strconv.Itoa(s.FontSize))
	}
	if s.LineSpacing > 0 {
		b.WriteString("\\sl")
		b.WriteString(strconv.Itoa(int(s.LineSpacing)))
		b.WriteString("\\slmult1")
	}
	if s.SpaceBefore > 0 {
		b.WriteString("\\sb")
		b.WriteString(strconv.Itoa(int(s.SpaceBefore)))
	}
	if s.SpaceAfter > 0 {
		b.WriteString("\\sa")
		b.WriteString(strconv.Itoa(int(s.SpaceAfter)))
	}
	if s.KeepNext {
		b.WriteString("\\keepn")
	}
	if s.Bold {
		b.WriteString("\\b")
	}
	if s.Italic {
		b.WriteString("\\i")
	}
	if s.SmallCaps {
		b.WriteString("\\scaps")
	}
	if s.AllCaps {
		b.WriteString("\\caps")
	}
	if s.WidowCtl {
		b.WriteString("\\widctlpar")
	}
	if s.Hyphenate {
		b.WriteString("\\hyphpar")
	}
	if s.RTL {
		b.WriteString("\\rtlpar")
	}
	if s.ColorID > 0 {
		b.WriteString("\\cf")
		b.WriteString(strconv.Itoa(s.ColorID))
	}
	if s.FirstIndent != 0 {
		b.WriteString("\\fi")
		b.WriteString(strconv.Itoa(int(s.FirstIndent)))
	}
	if s.LeftIndent != 0 {
		b.WriteString("\\li")
		b.WriteString(strconv.Itoa(int(s.LeftIndent)))
	}
	if s.RightIndent != 0 {
		b.WriteString("\\ri")
		b.WriteString(strconv.Itoa(int(s.RightIndent)))
	}
	if s.Lang > 0 {
		b.WriteString("\\lang")
		b.WriteString(strconv.Itoa(s.Lang))
	}

	b.WriteString(" ")
	return b.String()
}

// appendTo writes the stylesheet entry.
func (s Style) appendTo(b *strings.Builder) {
	basedOn := s.BasedOn
	if basedOn == "" {
		basedOn = s.ID
	}
	next := s.Next
	if next == "" {
		next = s.ID
	}
	b.WriteString("{\\")
	b.WriteString(s.ID)
	b.WriteString("\\sbasedon")
	b.WriteString(strings.TrimPrefix(basedOn, "s"))
	b.WriteString("\\snext")
	b.WriteString(strings.TrimPrefix(next, "s"))
	b.WriteString(s.apply())
	b.WriteString(s.Name)
	b.WriteString(";}\n")
}

// Default stylesheet IDs installed by NewDocument.
const (
	StyleDefault  = "s0"
	StyleNormal   = "s1"
	StyleFootnote = "s2"
	StyleHeading  = "s3"
)

// defaultStyles is the stylesheet installed by NewDocument. Normal is the
// initial paragraph style and Footnote the initial footnote style.
func defaultStyles() []Style {
	return []Style{
		{ID: StyleDefault, Name: "Default", Align: "qj"},
		{ID: StyleNormal, Name: "Normal", BasedOn: StyleDefault, Align: "qj", FontID: "f0", FontSize: 24},
		{ID: StyleFootnote, Name: "Footnote", BasedOn: StyleNormal, Align: "qj", FontID: "f0", FontSize: 20,
			LeftIndent: 227, FirstIndent: -227},
		{ID: StyleHeading, Name: "Heading", BasedOn: StyleNormal, Align: "ql", FontID: "f0", FontSize: 28,
			Bold: true, KeepNext: true, SpaceBefore: 240, SpaceAfter: 120},
	}
}
