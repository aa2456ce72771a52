package simplertf

import (
	"strconv"
	"strings"
)

// defaultFontSize is the grammar's implicit font size in half-points.
const defaultFontSize = 24

// TextStyle is the closed set of character formatting toggles applied to a
// Run. FontSize is in half-points, matching the grammar's \fs control word;
// zero means "inherit from the paragraph style". Subscript and Superscript
// are mutually exclusive; when both are set, Superscript wins.
type TextStyle struct {
	Bold        bool
	Italic      bool
	Underline   bool
	SmallCaps   bool
	Subscript   bool
	Superscript bool
	FontSize    int
}

// appendToggles writes the control words that switch the active formatting
// state from prev to s. Emitting deltas rather than the full state keeps
// consecutive runs under an unchanged style free of redundant toggles.
func (s TextStyle) appendToggles(b *strings.Builder, prev TextStyle) {
	var words []string

	if s.Bold != prev.Bold {
		if s.Bold {
			words = append(words, "\\b")
		} else {
			words = append(words, "\\b0")
		}
	}
	if s.Italic != prev.Italic {
		if s.Italic {
			words = append(words, "\\i")
		} else {
			words = append(words, "\\i0")
		}
	}
	if s.Underline != prev.Underline {
		if s.Underline {
			words = append(words, "\\ul")
		} else {
			words = append(words, "\\ulnone")
		}
	}
	if s.SmallCaps != prev.SmallCaps {
		if s.SmallCaps {
			words = append(words, "\\scaps")
		} else {
			words = append(words, "\\scaps0")
		}
	}
	if s.script() != prev.script() {
		switch s.script() {
		case "super":
			words = append(words, "\\super")
		case "sub":
			words = append(words, "\\sub")
		default:
			words = append(words, "\\nosupersub")
		}
	}
	if s.FontSize != prev.FontSize {
		size := s.FontSize
		if size == 0 {
			// An unsized style gives the reader nothing to fall back
			// to; restore the grammar's default size.
			size = defaultFontSize
		}
		words = append(words, "\\fs"+strconv.Itoa(size))
	}

	if len(words) == 0 {
		return
	}
	for _, w := range words {
		b.WriteString(w)
	}
	// Delimit the last control word from the run text.
	b.WriteByte(' ')
}

func (s TextStyle) script() string {
	switch {
	case s.Superscript:
		return "super"
	case s.Subscript:
		return "sub"
	default:
		return ""
	}
}
