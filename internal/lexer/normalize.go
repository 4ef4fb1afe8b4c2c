package lexer

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Normalize strips a UTF-8 BOM and applies Unicode NFC normalization so
// that the ℕ/𝒰/λ/∀ glyphs accepted as keyword spellings scan identically
// regardless of the encoding form the user's editor produced them in (e.g.
// a precomposed vs. combining-mark rendering of the same glyph).
func Normalize(src []byte) []byte {
	src = bytes.TrimPrefix(src, bomUTF8)
	if !norm.NFC.IsNormal(src) {
		src = norm.NFC.Bytes(src)
	}
	return src
}
