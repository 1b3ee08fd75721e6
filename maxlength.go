package gsm0338

import "unicode/utf8"

// MaxEncodedLen returns the maximum possible length of GSM 03.38 output for
// an input of length characters, reached when every character is escaped.
func MaxEncodedLen(length int) int {
	return length * 2
}

// MaxDecodedLen returns the maximum possible length of UTF-8 output for an
// input of length GSM bytes. No character of the alphabets needs more than
// three UTF-8 bytes.
func MaxDecodedLen(length int) int {
	return length * (utf8.UTFMax - 1)
}
