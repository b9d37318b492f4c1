package xml

import (
	"bytes"
	"unicode/utf8"
)

var (
	escQuot = []byte("&#34;") // shorter than "&quot;"
	escAmp  = []byte("&amp;")
	escLT   = []byte("&lt;")
	escGT   = []byte("&gt;")
	escTab  = []byte("&#x9;")
	escNL   = []byte("&#xA;")
	escCR   = []byte("&#xD;")
	escFFFD = []byte("�") // Unicode replacement character
)

// escapeText writes s to w with the characters that cannot appear in
// character data escaped. Newlines and tabs are kept as is.
func escapeText(w *bytes.Buffer, s string) {
	escape(w, s, false)
}

// escapeAttr writes s to w escaped for use inside a double quoted attribute
// value. Whitespace characters are written as character references so they
// survive attribute value normalisation.
func escapeAttr(w *bytes.Buffer, s string) {
	escape(w, s, true)
}

func escape(w *bytes.Buffer, s string, attr bool) {
	var esc []byte
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		switch r {
		case '"':
			if !attr {
				continue
			}
			esc = escQuot
		case '&':
			esc = escAmp
		case '<':
			esc = escLT
		case '>':
			esc = escGT
		case '\t':
			if !attr {
				continue
			}
			esc = escTab
		case '\n':
			if !attr {
				continue
			}
			esc = escNL
		case '\r':
			esc = escCR
		default:
			if !isInCharacterRange(r) || (r == 0xFFFD && width == 1) {
				esc = escFFFD
				break
			}
			continue
		}
		w.WriteString(s[last : i-width])
		w.Write(esc)
		last = i
	}
	w.WriteString(s[last:])
}

// isInCharacterRange decides whether the given rune is in the XML Character
// Range, per the Char production of https://www.xml.com/axml/testaxml.htm,
// Section 2.2 Characters.
func isInCharacterRange(r rune) (inrange bool) {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
