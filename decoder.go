package gsm0338

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrTrailingEscape is returned by a strict Decoder when the stream ends
// right after an Escape byte.
var ErrTrailingEscape = errors.New("escape at end of input")

// Decoder is an io.Reader producing the UTF-8 decoding of a GSM 03.38 byte
// stream.
type Decoder struct {
	r       io.Reader
	rb      readBuffer
	charset *Charset
	strict  bool // report a trailing Escape instead of dropping it

	state   State
	offset  int64 // source bytes consumed so far
	scratch []byte
	pending bytes.Buffer // decoded but not yet read
	err     error
}

type DecoderOption func(d *Decoder)

func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: r}

	for _, opt := range opts {
		opt(d)
	}

	if d.charset == nil {
		d.charset = Default()
	}

	return d
}

// WithBufferSize sets the initial read buffer size. Sizes below one select
// the default.
func WithBufferSize(size int) DecoderOption {
	return func(d *Decoder) {
		if size <= 0 {
			d.rb = readBuffer{}
			return
		}
		d.rb = readBuffer{buf: make([]byte, size)}
	}
}

// WithStrictEnd makes the Decoder fail with ErrTrailingEscape when the
// stream ends with an unconsumed Escape.
func WithStrictEnd() DecoderOption {
	return func(d *Decoder) {
		d.strict = true
	}
}

// WithDecoderCharset makes the Decoder use c instead of the Default charset.
func WithDecoderCharset(c *Charset) DecoderOption {
	return func(d *Decoder) {
		d.charset = c
	}
}

// Reset discards the Decoder's state and makes it read from r.
func (d *Decoder) Reset(r io.Reader) {
	d.r = r
	d.rb.start, d.rb.end = 0, 0
	d.state = StateNormal
	d.offset = 0
	d.pending.Reset()
	d.err = nil
}

type streamFeeder interface {
	feed(in []byte, out io.Writer, atEOF bool) (consumed int, err error)
}

// feed decodes in, writing the UTF-8 result to out. Unless atEOF, a trailing
// Escape is left unconsumed until the byte it selects has been read.
func (d *Decoder) feed(in []byte, out io.Writer, atEOF bool) (consumed int, err error) {
	src := in
	if n := len(src); !atEOF && n > 0 && src[n-1] == Escape {
		src = src[:n-1]
	}

	d.scratch, consumed, err = d.charset.DecodeIncremental(d.scratch[:0], src, &d.state)
	if err != nil {
		var escErr *EscapeError
		if errors.As(err, &escErr) {
			escErr.Offset += d.offset
		}
	}
	d.offset += int64(consumed)

	if len(d.scratch) > 0 {
		if _, werr := out.Write(d.scratch); werr != nil && err == nil {
			err = werr
		}
	}

	return consumed, err
}

// finish maps the error that ended the stream to the error reported to the caller.
func (d *Decoder) finish(err error) error {
	if !errors.Is(err, io.EOF) {
		tracer().Debugf("decoder stopped at offset %d: %v", d.offset, err)
		return err
	}
	if d.strict && d.state == StateEscaped {
		err = fmt.Errorf("[gsm0338] stream of %d bytes ends in escape: %w", d.offset, ErrTrailingEscape)
		tracer().Debugf("%v", err)
		return err
	}
	return io.EOF
}

// Read reads up to len(p) bytes of decoded UTF-8 into p.
func (d *Decoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for d.pending.Len() == 0 {
		if d.err != nil {
			return 0, d.err
		}
		if err := d.rb.feedOnce(d.r, d, &d.pending); err != nil {
			d.err = d.finish(err)
		}
	}

	return d.pending.Read(p)
}

// WriteTo writes the decoded stream to w until EOF or an error occurs.
func (d *Decoder) WriteTo(w io.Writer) (n int64, err error) {
	cw := &countingWriter{w: w}

	if d.pending.Len() > 0 {
		if _, err := d.pending.WriteTo(cw); err != nil {
			return cw.n, err
		}
	}

	if d.err == nil {
		d.err = d.finish(d.rb.feedUntilDone(d.r, d, cw))
	}

	if errors.Is(d.err, io.EOF) {
		return cw.n, nil
	}
	return cw.n, d.err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
