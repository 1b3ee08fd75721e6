package gsm0338

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Encoding is the Default charset as a golang.org/x/text encoding. Its
// encoder never reports repertoire errors, unencodable characters become
// Placeholder.
var Encoding encoding.Encoding = &gsmEncoding{}

// Encoding returns c as a golang.org/x/text encoding.
func (c *Charset) Encoding() encoding.Encoding {
	return &gsmEncoding{charset: c}
}

type gsmEncoding struct {
	charset *Charset // nil selects Default
}

func (e *gsmEncoding) get() *Charset {
	if e.charset == nil {
		return Default()
	}
	return e.charset
}

func (e *gsmEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decodeTransformer{charset: e.get()}}
}

func (e *gsmEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: encodeTransformer{charset: e.get()}}
}

func (e *gsmEncoding) String() string {
	return "GSM 03.38"
}

// decodeTransformer implements transform.Transformer by decoding to UTF-8.
type decodeTransformer struct {
	charset *Charset
	state   State
	offset  int64
}

func (t *decodeTransformer) Reset() {
	t.state = StateNormal
	t.offset = 0
}

func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	defer func() { t.offset += int64(nSrc) }()

	var buf [utf8.UTFMax]byte
	for nSrc < len(src) {
		state := t.state
		r, emit, derr := t.charset.decodeByte(src[nSrc], &state)
		if derr != nil {
			return nDst, nSrc, &EscapeError{Offset: t.offset + int64(nSrc)}
		}
		if emit {
			n := utf8.EncodeRune(buf[:], r)
			if nDst+n > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], buf[:n])
		}
		t.state = state
		nSrc++
	}
	// A trailing Escape at EOF is dropped.
	return nDst, nSrc, nil
}

// encodeTransformer implements transform.Transformer by encoding from UTF-8.
type encodeTransformer struct {
	transform.NopResetter
	charset *Charset
}

var placeholderSeq = []byte{placeholderCode}

func (t encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}

		code, ok := t.charset.index[r]
		if !ok {
			code = placeholderSeq
		}
		if nDst+len(code) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], code)
		nSrc += size
	}
	return nDst, nSrc, nil
}
