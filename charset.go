package gsm0338

import (
	"errors"
	"fmt"
	"sync"
)

// ErrTableCollision is returned by NewCharset when a character appears more
// than once across the basic and extension tables.
var ErrTableCollision = errors.New("character mapped more than once")

// Charset is an immutable pair of code tables together with the reverse
// index derived from them. A Charset is safe for concurrent use.
type Charset struct {
	basic     [128]rune
	extension [128]rune

	// index maps a character to its one or two byte encoding.
	index map[rune][]byte
}

// NewCharset builds a Charset from a basic and an extension table. Extension
// slots holding Placeholder are undefined. The basic entry at Escape is a
// sentinel and gets no encoding of its own.
func NewCharset(basic, extension [128]rune) (*Charset, error) {
	c := &Charset{
		basic:     basic,
		extension: extension,
		index:     make(map[rune][]byte, len(basic)+16),
	}

	for i, r := range basic {
		if byte(i) == Escape {
			continue
		}
		if err := c.insert(r, []byte{byte(i)}); err != nil {
			return nil, err
		}
	}

	for i, r := range extension {
		if r == Placeholder {
			continue
		}
		if err := c.insert(r, []byte{Escape, byte(i)}); err != nil {
			return nil, err
		}
	}

	if _, ok := c.index[Placeholder]; !ok {
		return nil, fmt.Errorf("[gsm0338] placeholder %q missing from basic table", Placeholder)
	}

	return c, nil
}

func (c *Charset) insert(r rune, code []byte) error {
	if prev, ok := c.index[r]; ok {
		tracer().Errorf("character %q at % X already mapped to % X", r, code, prev)
		return fmt.Errorf("[gsm0338] %q at % X already mapped to % X: %w", r, code, prev, ErrTableCollision)
	}
	c.index[r] = code
	return nil
}

// Lookup returns the encoding of r and whether r is encodable at all.
func (c *Charset) Lookup(r rune) ([]byte, bool) {
	code, ok := c.index[r]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), code...), true
}

// CanEncode reports whether r has an encoding in c.
func (c *Charset) CanEncode(r rune) bool {
	_, ok := c.index[r]
	return ok
}

var (
	defaultOnce    sync.Once
	defaultCharset *Charset
)

// Default returns the GSM 03.38 default alphabet with its extension table.
// The charset is built on first use.
func Default() *Charset {
	defaultOnce.Do(func() {
		c, err := NewCharset(basicTable, extensionTable)
		if err != nil {
			panic(err)
		}
		tracer().Infof("gsm 03.38 reverse index built with %d entries", len(c.index))
		defaultCharset = c
	})
	return defaultCharset
}
