package simplertf

// Option is a functional option for configuring a new document via NewDocument.
type Option func(*Document)

// WithTitle sets the document title emitted in the info block.
func WithTitle(title string) Option {
	return func(d *Document) {
		d.title = title
	}
}

// WithAuthor sets the document author emitted in the info block.
func WithAuthor(author string) Option {
	return func(d *Document) {
		d.author = author
	}
}

// WithLayout sets the page geometry from a named preset such as LayoutA4
// or LayoutLetter. An unknown preset name leaves the default layout in
// place and surfaces ErrUnknownPreset from the first serialization.
func WithLayout(preset string) Option {
	return func(d *Document) {
		if err := d.SetLayout(preset); err != nil && d.err == nil {
			d.err = err
		}
	}
}

// WithPageSize sets a custom paper size in twips.
func WithPageSize(width, height Twips) Option {
	return func(d *Document) {
		d.SetPageSize(width, height)
	}
}

// WithMargins sets the four page margins in twips.
func WithMargins(top, bottom, left, right Twips) Option {
	return func(d *Document) {
		d.SetMargins(top, bottom, left, right)
	}
}

// WithCodepage declares an ANSI codepage in the document header and makes
// the serializer prefer the codepage's single-byte escapes for runes it
// can represent.
func WithCodepage(cp Codepage) Option {
	return func(d *Document) {
		d.codepage = &cp
	}
}

// WithLanguage sets the default language codes declared in the header,
// e.g. 1033 for US English. adeflang is the Asian-script default; pass 0
// to keep the default.
func WithLanguage(deflang, adeflang int) Option {
	return func(d *Document) {
		if deflang > 0 {
			d.deflang = deflang
		}
		if adeflang > 0 {
			d.adeflang = adeflang
		}
	}
}

// NewDocument creates an empty document. With no options the document uses
// the A4 preset, US English, the built-in font table and stylesheet, and
// pure \uN? escaping with no codepage declaration.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		layout:      layoutPresets[LayoutA4],
		fonts:       defaultFonts(),
		styles:      defaultStyles(),
		parStyleID:  StyleNormal,
		noteStyleID: StyleFootnote,
		ftnOptions:  FootnoteOptions{Position: "ftnbj", Numbering: "ftnnar"},
		deflang:     1033,
		adeflang:    1025,
		created:     timeNow(),
		openPar:     -1,
		openNote:    -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
