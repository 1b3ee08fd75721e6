package gsm0338

import (
	"bytes"

	"github.com/segmentio/asm/ascii"
)

var doubleEscape = []byte{Escape, Escape}

// Valid reports whether src holds only 7-bit codes and decodes without error.
func Valid(src []byte) bool {
	return ascii.Valid(src) && !bytes.Contains(src, doubleEscape)
}

// Clean replaces every character of text the Default charset cannot encode
// by Placeholder.
func Clean(text string) string {
	return Default().Clean(text)
}

// CanEncode reports whether every character of text has an encoding in the
// Default charset.
func CanEncode(text string) bool {
	c := Default()
	for _, r := range text {
		if !c.CanEncode(r) {
			return false
		}
	}
	return true
}
