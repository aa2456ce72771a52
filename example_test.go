package simplertf_test

import (
	"bytes"
	"fmt"

	"github.com/xavi-mat/simplertf"
)

func ExampleNewDocument() {
	doc := simplertf.NewDocument(
		simplertf.WithTitle("My Document Title"),
		simplertf.WithAuthor("Myself"),
		simplertf.WithLayout(simplertf.LayoutA4),
	)

	doc.Paragraph("This text starts a paragraph.")
	doc.Text(" This text continues the paragraph, note the space before 'This'.")
	doc.NoteAnchor("The text of a footnote.", "*")

	doc.Paragraph("A new paragraph begins. Former note and paragraph are automatically closed.")
	doc.Note("This is the text of the second footnote.")
	doc.Text(" I'm adding text to the second footnote.")
	doc.CloseNote()
	doc.Text(" Now I'm adding text to the second paragraph. I had to close the note manually.")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Generated RTF: %d bytes\n", buf.Len())
	// Output pattern: Generated RTF: NNNN bytes
}

func ExampleDocument_Note() {
	doc := simplertf.NewDocument()

	doc.Paragraph("Footnotes keep their own formatting state.")
	doc.Note("Plain note text, ")
	doc.Italic("with an italic stretch.")
	doc.CloseNote()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Generated RTF: %d bytes\n", buf.Len())
	// Output pattern: Generated RTF: NNNN bytes
}
