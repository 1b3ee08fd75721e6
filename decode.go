package gsm0338

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidEscapeSequence reports two Escape bytes in a row.
var ErrInvalidEscapeSequence = errors.New("invalid escape sequence")

// EscapeError is the concrete error behind ErrInvalidEscapeSequence.
type EscapeError struct {
	Offset int64 // offset of the second Escape byte
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("[gsm0338] escape followed by escape at offset %d: %s", e.Offset, ErrInvalidEscapeSequence)
}

func (e *EscapeError) Unwrap() error {
	return ErrInvalidEscapeSequence
}

// Decode converts GSM 03.38 bytes to a string using the Default charset.
func Decode(src []byte) (string, error) {
	return Default().Decode(src)
}

// Decode converts GSM 03.38 bytes to a string. An Escape at the very end of
// src is dropped. On error no partial output is returned.
func (c *Charset) Decode(src []byte) (string, error) {
	state := StateNormal
	out, _, err := c.DecodeIncremental(make([]byte, 0, len(src)), src, &state)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecodeIncremental appends the UTF-8 decoding of src to dst. The escape state
// is read from and written back to state, so a stream may be decoded in
// chunks split at any byte. On error nSrc is the offset of the offending byte
// and out holds everything decoded before it.
func (c *Charset) DecodeIncremental(dst, src []byte, state *State) (out []byte, nSrc int, err error) {
	if state == nil {
		state = new(State)
	}

	for i, b := range src {
		r, emit, derr := c.decodeByte(b, state)
		if derr != nil {
			return dst, i, &EscapeError{Offset: int64(i)}
		}
		if emit {
			dst = utf8.AppendRune(dst, r)
		}
	}

	return dst, len(src), nil
}

// decodeByte advances the escape state machine by one byte.
// Bytes outside the 7-bit range decode to Placeholder.
func (c *Charset) decodeByte(b byte, state *State) (r rune, emit bool, err error) {
	if *state == StateEscaped {
		if b == Escape {
			return 0, false, ErrInvalidEscapeSequence
		}
		*state = StateNormal
		if b >= 0x80 {
			return Placeholder, true, nil
		}
		return c.extension[b], true, nil
	}

	if b == Escape {
		*state = StateEscaped
		return 0, false, nil
	}
	if b >= 0x80 {
		return Placeholder, true, nil
	}
	return c.basic[b], true, nil
}
