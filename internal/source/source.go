// Package source holds the UTF-8 source buffer normalization step that
// ModuleManager applies before handing a file to the (external) parser, so
// TextRange byte offsets are computed against a canonical form.
package source

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Normalize strips a UTF-8 byte-order mark and applies Unicode NFC
// normalization, so that lexically equivalent source text produces
// identical byte offsets regardless of the encoding the file was written
// in.
func Normalize(src []byte) []byte {
	src = bytes.TrimPrefix(src, bomUTF8)
	if !norm.NFC.IsNormal(src) {
		src = norm.NFC.Bytes(src)
	}
	return src
}

// Buffer is a named, normalized source buffer.
type Buffer struct {
	Path    string
	Content []byte
}

// NewBuffer normalizes raw and returns a Buffer ready for module loading.
func NewBuffer(path string, raw []byte) *Buffer {
	return &Buffer{Path: path, Content: Normalize(raw)}
}
