package simplertf

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

// newTestDocument pins the creation timestamp so output assertions do not
// depend on the wall clock.
func newTestDocument(opts ...Option) *Document {
	saved := timeNow
	timeNow = func() time.Time {
		return time.Date(2019, 2, 26, 12, 30, 0, 0, time.UTC)
	}
	defer func() { timeNow = saved }()
	return NewDocument(opts...)
}

// groupBalance returns the brace nesting delta of s, skipping
// backslash-escaped characters.
func groupBalance(t *testing.T, s string) int {
	t.Helper()
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // escaped character or start of a control word
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				t.Fatalf("group closed before it was opened at byte %d", i)
			}
		}
	}
	return depth
}

func render(t *testing.T, doc *Document) string {
	t.Helper()
	data, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	return string(data)
}

func TestEmptyDocumentIsWellFormed(t *testing.T) {
	doc := newTestDocument()
	out := render(t, doc)

	if !strings.HasPrefix(out, "{\\rtf1\\ansi\\deff0") {
		t.Fatalf("missing RTF prolog: %q", out[:40])
	}
	if !strings.HasSuffix(out, "}") {
		t.Fatalf("missing trailer")
	}
	if strings.Contains(out, "\\pard") {
		t.Fatalf("empty document contains paragraph content")
	}
	if d := groupBalance(t, out); d != 0 {
		t.Fatalf("unbalanced groups: depth %d at end", d)
	}
}

func TestSerializationIsPureAndRepeatable(t *testing.T) {
	doc := newTestDocument(WithTitle("Title"), WithAuthor("Author"))
	doc.Paragraph("Hello")
	doc.Note("a note") // left open on purpose

	first := render(t, doc)
	second := render(t, doc)
	if first != second {
		t.Fatalf("repeated serialization differs")
	}

	// The open note must still accept appends after serializing.
	if err := doc.Text(" continued"); err != nil {
		t.Fatalf("Text after Bytes failed: %v", err)
	}
	if got := doc.Paragraphs()[0].Footnotes[0].Runs[0].Text; got != "a note continued" {
		t.Fatalf("serialization closed the open note: %q", got)
	}
}

func TestHeaderGeometryAndFootnoteOptions(t *testing.T) {
	doc := newTestDocument(WithLayout(LayoutA4))
	out := render(t, doc)

	if !strings.Contains(out, "\\paperh16838\\paperw11906\\margl1134\\margr1134\\margt1134\\margb1134") {
		t.Fatalf("missing A4 geometry:\n%s", out)
	}
	if !strings.Contains(out, "\\ftnbj") || !strings.Contains(out, "\\ftnnar") {
		t.Fatalf("missing default footnote options:\n%s", out)
	}
}

func TestHeaderTables(t *testing.T) {
	doc := newTestDocument()
	doc.AddFont(Font{ID: "f2", Name: "Linux Libertine", Family: "fnil"})
	doc.AddColor(Color{R: 128, G: 64, B: 0})

	out := render(t, doc)

	for _, want := range []string{
		"{\\fonttbl",
		"{\\f0\\froman Times New Roman;}",
		"{\\f2\\fnil Linux Libertine;}",
		"{\\colortbl",
		"\\red128\\green64\\blue0;",
		"{\\stylesheet",
		"{\\s1\\sbasedon0\\snext1\\s1\\qj\\f0\\fs24 Normal;}",
		"{\\*\\generator simplertf}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in header:\n%s", want, out)
		}
	}
}

func TestInfoBlockEscapesMetadata(t *testing.T) {
	doc := newTestDocument(WithTitle("Br{ace} \\ title"), WithAuthor("José"))
	out := render(t, doc)

	if !strings.Contains(out, "{\\title Br\\{ace\\} \\\\ title}") {
		t.Fatalf("title not escaped:\n%s", out)
	}
	if !strings.Contains(out, "{\\author Jos\\u233?}") {
		t.Fatalf("author not escaped:\n%s", out)
	}
	if !strings.Contains(out, "{\\creatim\\yr2019\\mo2\\dy26\\hr12\\min30}") {
		t.Fatalf("missing creation timestamp:\n%s", out)
	}
}

func TestParagraphAndFootnoteScenario(t *testing.T) {
	doc := newTestDocument()
	doc.OpenParagraph()
	doc.Text("Hello")
	doc.NoteAnchor("fn1", "*")
	doc.Text(" world")
	doc.CloseNote()
	doc.OpenParagraph()

	out := render(t, doc)

	// The footnote group is nested at its anchor point, after "Hello".
	want := "Hello{\\super *{\\footnote *\\pard\\plain "
	if !strings.Contains(out, want) {
		t.Fatalf("footnote not anchored after text, want %q in:\n%s", want, out)
	}
	if !strings.Contains(out, "fn1 world}}") {
		t.Fatalf("footnote content missing:\n%s", out)
	}
	if got := strings.Count(out, "{\\pard "); got != 2 {
		t.Fatalf("expected 2 paragraph groups, got %d:\n%s", got, out)
	}
	if d := groupBalance(t, out); d != 0 {
		t.Fatalf("unbalanced groups: depth %d", d)
	}
}

func TestDefaultAnchorIsAutoNumbering(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("text")
	doc.Note("note")

	out := render(t, doc)
	if !strings.Contains(out, "{\\super \\chftn {\\footnote \\chftn \\pard\\plain ") {
		t.Fatalf("missing auto-numbering anchor:\n%s", out)
	}
}

func TestNoteStyleSnapshotAtOpen(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("text")
	doc.Note("early")
	doc.CloseNote()
	if err := doc.SetNoteStyle(StyleHeading); err != nil {
		t.Fatalf("SetNoteStyle failed: %v", err)
	}
	doc.Note("late")
	doc.CloseNote()

	out := render(t, doc)
	// A footnote keeps the style in effect when it was opened; the style
	// change applies to footnotes opened afterwards only.
	if !strings.Contains(out, "\\pard\\plain \\s2\\qj\\f0\\fs20\\fi-227\\li227 early}}") {
		t.Fatalf("first footnote lost its opening style:\n%s", out)
	}
	if !strings.Contains(out, "\\pard\\plain \\s3\\ql\\f0\\fs28\\sb240\\sa120\\keepn\\b late}}") {
		t.Fatalf("second footnote not restyled:\n%s", out)
	}
}

func TestToggleMinimization(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("")
	doc.SetBold(true)
	doc.Text("one ")
	doc.Note("interleaved") // breaks run coalescing, not the bold state
	doc.CloseNote()
	doc.Text("two ")
	doc.Text("three")

	out := render(t, doc)
	body := out[strings.Index(out, "{\\pard"):]
	if got := strings.Count(body, "\\b "); got != 1 {
		t.Fatalf("expected a single bold toggle, got %d:\n%s", got, body)
	}
	if strings.Count(body, "\\b0") != 0 {
		t.Fatalf("unexpected bold reset:\n%s", body)
	}
}

func TestToggleDeltaEmission(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("plain ")
	doc.SetBold(true)
	doc.SetItalic(true)
	doc.Text("strong ")
	doc.SetBold(false)
	doc.SetItalic(false)
	doc.Text("plain again")

	out := render(t, doc)
	if !strings.Contains(out, "\\b\\i strong ") {
		t.Fatalf("missing combined toggles:\n%s", out)
	}
	if !strings.Contains(out, "\\b0\\i0 plain again") {
		t.Fatalf("missing toggle resets:\n%s", out)
	}
}

func TestFontSizeToggle(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("normal ")
	doc.SetFontSize(36)
	doc.Text("big ")
	doc.SetFontSize(0)
	doc.Text("normal again")

	out := render(t, doc)
	if !strings.Contains(out, "\\fs36 big ") {
		t.Fatalf("missing size toggle:\n%s", out)
	}
	// Size zero falls back to the paragraph style's size.
	if !strings.Contains(out, "\\fs24 normal again") {
		t.Fatalf("missing size restore:\n%s", out)
	}
}

func TestFontSizeResetOnUnsizedStyle(t *testing.T) {
	doc := newTestDocument()
	doc.OpenParagraphStyle(StyleDefault)
	doc.Text("plain ")
	doc.SetFontSize(36)
	doc.Text("big ")
	doc.SetFontSize(0)
	doc.Text("plain again")

	out := render(t, doc)
	if !strings.Contains(out, "\\fs36 big ") {
		t.Fatalf("missing size toggle:\n%s", out)
	}
	// The Default style declares no size of its own, so the reset restores
	// the grammar's default rather than leaving \fs36 in effect.
	if !strings.Contains(out, "\\fs24 plain again") {
		t.Fatalf("missing size restore against unsized style:\n%s", out)
	}
}

func TestHeadingStyleBaselineSuppressesRedundantBold(t *testing.T) {
	doc := newTestDocument()
	doc.OpenParagraphStyle(StyleHeading)
	doc.Text("Chapter 1")

	out := render(t, doc)
	body := out[strings.Index(out, "{\\pard"):]
	if !strings.Contains(body, "\\s3") {
		t.Fatalf("heading style not applied:\n%s", body)
	}
	// The style's own \b is the only bold control word in the body; the
	// run must not toggle again and nothing may reset it.
	if got := strings.Count(body, "\\b "); got != 1 {
		t.Fatalf("expected a single style-level bold, got %d:\n%s", got, body)
	}
	if strings.Contains(body, "\\b0") {
		t.Fatalf("redundant toggle against style baseline:\n%s", body)
	}
}

func TestNonASCIIIsAlwaysEscaped(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("café")

	out := render(t, doc)
	if !strings.Contains(out, "caf\\u233?") {
		t.Fatalf("expected numeric escape for é:\n%s", out)
	}
	for _, b := range []byte(out) {
		if b > 0x7f {
			t.Fatalf("raw non-ASCII byte %#x in output", b)
		}
	}
}

func TestCodepageEscapes(t *testing.T) {
	doc := newTestDocument(WithCodepage(CP1252))
	doc.Paragraph("café — naïve")

	out := render(t, doc)
	if !strings.Contains(out, "\\ansicpg1252") {
		t.Fatalf("missing codepage declaration:\n%s", out)
	}
	if !strings.Contains(out, "caf\\'e9") {
		t.Fatalf("expected codepage escape for é:\n%s", out)
	}
	// The em dash is in cp1252 as well.
	if !strings.Contains(out, "\\'97") {
		t.Fatalf("expected codepage escape for em dash:\n%s", out)
	}
	for _, b := range []byte(out) {
		if b > 0x7f {
			t.Fatalf("raw non-ASCII byte %#x in output", b)
		}
	}
}

func TestAstralRuneUsesSurrogatePair(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("ok \U0001F600")

	out := render(t, doc)
	if !strings.Contains(out, "\\u-10179?\\u-8704?") {
		t.Fatalf("expected surrogate pair escapes:\n%s", out)
	}
}

func TestInvalidUTF8Fails(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("bad \xff byte")

	_, err := doc.Bytes()
	if !errors.Is(err, ErrUnsupportedChar) {
		t.Fatalf("expected ErrUnsupportedChar, got %v", err)
	}
}

func TestDeferredPresetErrorSurfacesAtSerialization(t *testing.T) {
	doc := newTestDocument(WithLayout("Quarto"))
	doc.Paragraph("content")

	_, err := doc.Bytes()
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestEmptyParagraphBlock(t *testing.T) {
	doc := newTestDocument()
	doc.OpenParagraph()

	out := render(t, doc)
	if got := strings.Count(out, "{\\pard "); got != 1 {
		t.Fatalf("expected 1 paragraph group, got %d", got)
	}
	if !strings.Contains(out, "\\par}") {
		t.Fatalf("paragraph group not terminated:\n%s", out)
	}
}

func TestOutputWriter(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("text")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	data, _ := doc.Bytes()
	if !bytes.Equal(buf.Bytes(), data) {
		t.Fatalf("Output differs from Bytes")
	}
}

func TestWriteFile(t *testing.T) {
	doc := newTestDocument()
	doc.Paragraph("file content")

	path := t.TempDir() + "/out.rtf"
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if !bytes.Equal(written, data) {
		t.Fatalf("file content differs from Bytes")
	}
}
