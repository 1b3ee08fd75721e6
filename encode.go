package gsm0338

import (
	"unicode/utf8"
)

// Encode converts text to GSM 03.38 bytes using the Default charset.
func Encode(text string) []byte {
	return Default().Encode(text)
}

// EncodedLen returns the number of bytes Encode produces for text.
func EncodedLen(text string) int {
	return Default().EncodedLen(text)
}

// ToGSMString encodes text and returns the bytes as a string whose character
// codes equal the GSM byte values.
func ToGSMString(text string) string {
	return Default().ToGSMString(text)
}

// Encode converts text to GSM 03.38 bytes. Every character without an
// encoding, including invalid UTF-8, becomes Placeholder.
func (c *Charset) Encode(text string) []byte {
	return c.AppendEncode(make([]byte, 0, len(text)), text)
}

// AppendEncode appends the encoding of text to dst and returns the extended slice.
func (c *Charset) AppendEncode(dst []byte, text string) []byte {
	for _, r := range text {
		dst = c.appendRune(dst, r)
	}
	return dst
}

func (c *Charset) appendRune(dst []byte, r rune) []byte {
	if code, ok := c.index[r]; ok {
		return append(dst, code...)
	}
	return append(dst, placeholderCode)
}

// EncodedLen returns the number of bytes Encode produces for text.
func (c *Charset) EncodedLen(text string) (n int) {
	for _, r := range text {
		if code, ok := c.index[r]; ok {
			n += len(code)
		} else {
			n++
		}
	}
	return n
}

// ToGSMString encodes text and returns the bytes as a string whose character
// codes equal the GSM byte values. All codes are below utf8.RuneSelf, so the
// string is also valid ASCII.
func (c *Charset) ToGSMString(text string) string {
	return string(c.Encode(text))
}

// Clean replaces every character of text without an encoding by Placeholder.
func (c *Charset) Clean(text string) string {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if !c.CanEncode(r) {
			r = Placeholder
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}
