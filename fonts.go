package simplertf

import (
	"strconv"
	"strings"
)

// Font is an entry in the document's font table. ID is the grammar's font
// designator ("f0", "f1", …); Family is one of the \fonttbl family control
// words (fnil, froman, fswiss, fmodern, fscript, fdecor, ftech, fbidi).
type Font struct {
	ID      string
	Name    string
	Family  string
	Pitch   string // \fprq value: "0" default, "1" fixed, "2" variable
	Charset string // \fcharset value
}

// appendTo writes the font table entry.
func (f Font) appendTo(b *strings.Builder) {
	family := f.Family
	if family == "" {
		family = "fnil"
	}
	b.WriteString("{\\")
	b.WriteString(f.ID)
	b.WriteString("\\")
	b.WriteString(family)
	if f.Pitch != "" {
		b.WriteString("\\fprq")
		b.WriteString(f.Pitch)
	}
	if f.Charset != "" {
		b.WriteString("\\fcharset")
		b.WriteString(f.Charset)
	}
	b.WriteString(" ")
	b.WriteString(f.Name)
	b.WriteString(";}\n")
}

// Color is an entry in the document's color table. Color index 0 is the
// reader's automatic color; registered colors start at index 1.
type Color struct {
	R, G, B int
}

// appendTo writes the color table entry.
func (c Color) appendTo(b *strings.Builder) {
	b.WriteString("\\red")
	b.WriteString(strconv.Itoa(c.R))
	b.WriteString("\\green")
	b.WriteString(strconv.Itoa(c.G))
	b.WriteString("\\blue")
	b.WriteString(strconv.Itoa(c.B))
	b.WriteString(";\n")
}

// defaultFonts is the font table installed by NewDocument.
func defaultFonts() []Font {
	return []Font{
		{ID: "f0", Name: "Times New Roman", Family: "froman"},
		{ID: "f1", Name: "Courier New", Family: "fmodern"},
	}
}
