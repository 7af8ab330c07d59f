// Package cp437 converts between the CP-437 code page used by the display
// firmware for tile glyphs and Unicode scalar values.
//
// The table is derived from golang.org/x/text/encoding/charmap's
// CodePage437, with byte 0x0A pinned to decode to '\n' whatever glyph the
// table holds for it, matching how the display firmware actually treats
// that byte.
package cp437

import "golang.org/x/text/encoding/charmap"

var byteToRune [256]rune
var runeToByte map[rune]byte

func init() {
	for b := 0; b < 256; b++ {
		byteToRune[b] = charmap.CodePage437.DecodeByte(byte(b))
	}
	byteToRune[0x0A] = '\n'

	runeToByte = make(map[rune]byte, 256)
	for b, r := range byteToRune {
		if _, exists := runeToByte[r]; !exists {
			runeToByte[r] = byte(b)
		}
	}
}

// ToChar returns the Unicode scalar value a CP-437 byte decodes to. The
// mapping is total: every byte in [0, 256) has an entry.
func ToChar(b byte) rune {
	return byteToRune[b]
}

// FromChar returns the CP-437 byte a Unicode scalar value encodes to, or
// '?' (0x3F) if the rune has no representation in CP-437.
func FromChar(r rune) byte {
	if b, ok := runeToByte[r]; ok {
		return b
	}
	return '?'
}
