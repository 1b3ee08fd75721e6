package gsm0338

import (
	"errors"
	"io"
	"sync"
	"unicode/utf8"
)

// Encoder is an io.WriteCloser that encodes UTF-8 text written to it and
// writes the GSM 03.38 bytes to an underlying writer.
type Encoder struct {
	w       io.Writer
	charset *Charset

	partial []byte // incomplete rune at the end of the previous Write
	buf     []byte

	writeMu sync.Mutex
}

type EncoderOption func(e *Encoder)

// WithEncoderCharset makes the Encoder use c instead of the Default charset.
func WithEncoderCharset(c *Charset) EncoderOption {
	return func(e *Encoder) {
		e.charset = c
	}
}

// NewEncoder returns a new [Encoder].
// Writes to the returned writer are GSM 03.38 encoded and written to w.
//
// It is the caller's responsibility to call Close on the [Encoder] when done.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		w:       w,
		partial: make([]byte, 0, utf8.UTFMax),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.charset == nil {
		e.charset = Default()
	}

	return e
}

// Reset discards the [Encoder] e's state and makes it equivalent to the
// result of its original state from [NewEncoder], but writing to w instead.
func (e *Encoder) Reset(w io.Writer) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.w = w
	e.partial = e.partial[:0]
}

var errWriterNil = errors.New("writer is nil")

// Write encodes p and writes the result to the underlying [io.Writer]. A rune
// split across calls is encoded once its remaining bytes arrive.
func (e *Encoder) Write(p []byte) (n int, err error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return 0, errWriterNil
	}

	n = len(p)

	// At most one character per byte of p and per carried byte.
	if grow := MaxEncodedLen(len(p)+len(e.partial)) - cap(e.buf); grow > 0 {
		e.buf = append(e.buf[:cap(e.buf)], make([]byte, grow)...)
	}
	buf := e.buf[:0]

	var saved [utf8.UTFMax]byte
	nSaved := copy(saved[:], e.partial)

	// Complete the rune left over from the previous Write one byte at a
	// time. Bytes of an invalid sequence stay in partial until decoded.
	var rest []byte
	for len(e.partial) > 0 && len(p) > 0 {
		e.partial = append(e.partial, p[0])
		p = p[1:]
		buf, rest = e.appendFull(buf, e.partial)
		e.partial = append(e.partial[:0], rest...)
	}

	buf, rest = e.appendFull(buf, p)
	e.partial = append(e.partial, rest...)

	e.buf = buf
	if len(buf) > 0 {
		if _, err := e.w.Write(buf); err != nil {
			e.partial = append(e.partial[:0], saved[:nSaved]...)
			return 0, err
		}
	}

	return n, nil
}

// appendFull encodes the complete runes at the start of src and returns the
// incomplete remainder.
func (e *Encoder) appendFull(buf, src []byte) ([]byte, []byte) {
	for len(src) > 0 && utf8.FullRune(src) {
		r, size := utf8.DecodeRune(src)
		buf = e.charset.appendRune(buf, r)
		src = src[size:]
	}
	return buf, src
}

// Close encodes an incomplete trailing rune the way Encode does, one
// Placeholder per byte. It is an error to call Write after calling Close.
func (e *Encoder) Close() error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return errWriterNil
	}
	defer func() { e.w = nil }()

	if len(e.partial) > 0 {
		buf := e.buf[:0]
		for src := e.partial; len(src) > 0; {
			r, size := utf8.DecodeRune(src)
			buf = e.charset.appendRune(buf, r)
			src = src[size:]
		}
		e.partial = e.partial[:0]
		if _, err := e.w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}
