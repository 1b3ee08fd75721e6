package gsm0338

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCharset(t *testing.T) {
	c := Default()
	require.Same(t, c, Default())

	// 127 basic characters plus 10 extension characters.
	require.Len(t, c.index, 137)
	require.False(t, c.CanEncode('\u00a0'), "escape sentinel has no encoding")
	require.True(t, c.CanEncode('€'))
}

func TestLookup(t *testing.T) {
	code, ok := Default().Lookup('€')
	require.True(t, ok)
	require.Equal(t, []byte{Escape, 0x65}, code)

	code[1] = 0x00
	again, _ := Default().Lookup('€')
	require.Equal(t, []byte{Escape, 0x65}, again)

	_, ok = Default().Lookup('Ж')
	require.False(t, ok)
}

func TestNewCharsetCollision(t *testing.T) {
	ext := extensionTable
	ext[0x41] = 'A'

	_, err := NewCharset(basicTable, ext)
	require.ErrorIs(t, err, ErrTableCollision)

	basic := basicTable
	basic[0x00] = 'A'
	_, err = NewCharset(basic, extensionTable)
	require.ErrorIs(t, err, ErrTableCollision)
}

func TestNewCharsetPlaceholderMissing(t *testing.T) {
	basic := basicTable
	basic[placeholderCode] = '¿' + 1
	_, err := NewCharset(basic, extensionTable)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrTableCollision)
}

func TestCustomCharset(t *testing.T) {
	ext := extensionTable
	ext[0x41] = 'Ж'

	c, err := NewCharset(basicTable, ext)
	require.NoError(t, err)
	require.Equal(t, []byte{0x1B, 0x41}, c.Encode("Ж"))
	require.Equal(t, []byte{0x3F}, Encode("Ж"))

	decoded, err := c.Decode([]byte{0x1B, 0x41})
	require.NoError(t, err)
	require.Equal(t, "Ж", decoded)
}
