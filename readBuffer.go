package gsm0338

import (
	"io"
)

const defaultReadBufSize = 4 * 1024

// readBuffer holds source bytes between reads. A feeder may leave a tail of
// the window unconsumed, which is kept for the next read.
type readBuffer struct {
	buf        []byte
	start, end int
}

func (rb *readBuffer) init() {
	if len(rb.buf) == 0 {
		rb.buf = make([]byte, defaultReadBufSize)
	}
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:rb.end]
}

func (rb *readBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	rb.start += consumed
	if rb.start >= rb.end {
		rb.start, rb.end = 0, 0
	}
}

func (rb *readBuffer) compact() {
	if rb.start == 0 || rb.start == rb.end {
		return
	}
	copy(rb.buf, rb.buf[rb.start:rb.end])
	rb.end -= rb.start
	rb.start = 0
}

// ensureWriteSpace makes room for at least one more byte, compacting first
// and doubling the buffer when the kept tail fills it.
func (rb *readBuffer) ensureWriteSpace() {
	if rb.end < len(rb.buf) {
		return
	}
	if rb.start > 0 {
		rb.compact()
		if rb.end < len(rb.buf) {
			return
		}
	}

	nb := make([]byte, max(2*len(rb.buf), 1))
	copy(nb, rb.window())
	rb.end -= rb.start
	rb.start = 0
	rb.buf = nb
}

func (rb *readBuffer) readMore(r io.Reader) (int, error) {
	rb.ensureWriteSpace()
	n, err := r.Read(rb.buf[rb.end:])
	if n > 0 {
		rb.end += n
	}
	return n, err
}

// feedOnce reads once from r and feeds the buffered window to feeder. Bytes
// returned together with a read error are fed before the error is reported.
func (rb *readBuffer) feedOnce(r io.Reader, feeder streamFeeder, out io.Writer) error {
	rb.init()

	_, rerr := rb.readMore(r)

	if rb.end > rb.start {
		consumed, err := feeder.feed(rb.window(), out, rerr != nil)
		rb.advance(consumed)
		if err != nil {
			return err
		}
	}

	return rerr
}

func (rb *readBuffer) feedUntilDone(r io.Reader, feeder streamFeeder, out io.Writer) error {
	for {
		if err := rb.feedOnce(r, feeder, out); err != nil {
			return err
		}
	}
}
