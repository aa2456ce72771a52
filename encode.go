package simplertf

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Codepage couples a Windows codepage number with its character map. When a
// document is configured with a codepage, the header declares \ansicpgN and
// runes representable in the codepage are escaped as \'hh instead of the
// longer \uN? form.
type Codepage struct {
	ID      int
	Charmap *charmap.Charmap
}

// Codepages supported out of the box.
var (
	CP1250 = Codepage{1250, charmap.Windows1250} // Central European
	CP1251 = Codepage{1251, charmap.Windows1251} // Cyrillic
	CP1252 = Codepage{1252, charmap.Windows1252} // Western European
	CP1253 = Codepage{1253, charmap.Windows1253} // Greek
	CP1254 = Codepage{1254, charmap.Windows1254} // Turkish
	CP1255 = Codepage{1255, charmap.Windows1255} // Hebrew
	CP1256 = Codepage{1256, charmap.Windows1256} // Arabic
	CP1257 = Codepage{1257, charmap.Windows1257} // Baltic
)

// escapeText writes s with every control-sensitive character escaped per
// the grammar: backslash and braces get backslash escapes, control
// characters and non-ASCII runes get numeric escapes. With a configured
// codepage, runes the codepage can represent are written as \'hh. The rest
// fall back to \uN? with the signed 16-bit convention, using UTF-16
// surrogate pairs for runes above the BMP.
//
// The only failure mode is invalid UTF-8 in s, reported as
// ErrUnsupportedChar.
func escapeText(b *strings.Builder, s string, cp *Codepage) error {
	for i, r := range s {
		switch {
		case r == utf8.RuneError:
			// Distinguish a real U+FFFD from a decode failure.
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrUnsupportedChar, i)
			}
			escapeRune(b, r, cp)
		case r == '\\' || r == '{' || r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r > 0x7f:
			escapeRune(b, r, cp)
		default:
			b.WriteRune(r)
		}
	}
	return nil
}

func escapeRune(b *strings.Builder, r rune, cp *Codepage) {
	if cp != nil && r > 0x7f {
		if enc, ok := cp.Charmap.EncodeRune(r); ok && enc > 0x7f {
			b.WriteString("\\'")
			if enc < 0x10 {
				b.WriteByte('0')
			}
			b.WriteString(strconv.FormatUint(uint64(enc), 16))
			return
		}
	}
	if r > 0xffff {
		hi, lo := utf16.EncodeRune(r)
		writeUnicodeEscape(b, hi)
		writeUnicodeEscape(b, lo)
		return
	}
	writeUnicodeEscape(b, r)
}

// writeUnicodeEscape emits \uN? where N is the code unit as a signed
// 16-bit value and '?' is the fallback character for non-Unicode readers.
func writeUnicodeEscape(b *strings.Builder, r rune) {
	n := int32(r)
	if n >= 0x8000 {
		n -= 0x10000
	}
	b.WriteString("\\u")
	b.WriteString(strconv.FormatInt(int64(n), 10))
	b.WriteByte('?')
}
