// Package doctpl provides a JSON/YAML document template DSL for generating
// RTF files.
//
// It allows defining documents using a declarative schema that is easy for
// both humans and LLMs to generate. The schema supports page-layout presets,
// margins, styled paragraphs, formatted text runs and footnotes.
//
// Example JSON:
//
//	{
//	  "title": "My Document",
//	  "pageSize": "A4",
//	  "paragraphs": [
//	    {"style": "heading", "text": "Hello World"},
//	    {"runs": [
//	      {"text": "Some "},
//	      {"text": "bold", "bold": true},
//	      {"text": " body text.", "note": {"text": "With a footnote."}}
//	    ]}
//	  ]
//	}
package doctpl

// Document is the top-level template that describes an entire RTF document.
type Document struct {
	Title    string  `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string  `json:"author,omitempty" yaml:"author,omitempty"`
	PageSize string  `json:"pageSize,omitempty" yaml:"pageSize,omitempty"` // A4, A5, B5, Letter, Legal, Royal, Digest (default: A4)
	Margin   *Margin `json:"margin,omitempty" yaml:"margin,omitempty"`
	Codepage int     `json:"codepage,omitempty" yaml:"codepage,omitempty"` // Windows codepage number, e.g. 1252
	Language int     `json:"language,omitempty" yaml:"language,omitempty"` // language code, e.g. 1033

	Paragraphs []Paragraph `json:"paragraphs" yaml:"paragraphs"`
}

// Margin defines page margins as measure strings ("2cm", "1in", "1134").
// Empty fields keep the preset's margin.
type Margin struct {
	Top    string `json:"top,omitempty" yaml:"top,omitempty"`
	Right  string `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom string `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   string `json:"left,omitempty" yaml:"left,omitempty"`
}

// Paragraph is one paragraph of the document. Text is a shorthand for a
// single unformatted run; Runs takes precedence when both are set.
type Paragraph struct {
	Style string `json:"style,omitempty" yaml:"style,omitempty"` // normal (default), heading, default
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Runs  []Run  `json:"runs,omitempty" yaml:"runs,omitempty"`
}

// Run is a span of text with uniform formatting, optionally carrying a
// footnote anchored right after it.
type Run struct {
	Text      string `json:"text" yaml:"text"`
	Bold      bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty" yaml:"underline,omitempty"`
	SmallCaps bool   `json:"smallCaps,omitempty" yaml:"smallCaps,omitempty"`
	Sub       bool   `json:"sub,omitempty" yaml:"sub,omitempty"`
	Super     bool   `json:"super,omitempty" yaml:"super,omitempty"`
	FontSize  int    `json:"fontSize,omitempty" yaml:"fontSize,omitempty"` // half-points

	Note *Note `json:"note,omitempty" yaml:"note,omitempty"`
}

// Note is a footnote. An empty Anchor uses the grammar's auto-numbering
// mark.
type Note struct {
	Text   string `json:"text" yaml:"text"`
	Anchor string `json:"anchor,omitempty" yaml:"anchor,omitempty"`
}
