package gsm0338

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name     string
		raw      []byte
		expected string
	}{
		{"empty", nil, ""},
		{"HELLO", []byte("HELLO"), "HELLO"},
		{"line feed", []byte{10}, "\n"},
		{"carriage return", []byte{13}, "\r"},
		{"at and pound", []byte{0x00, 0x01}, "@£"},
		{"euro", []byte{0x1B, 0x65}, "€"},
		{"pipe between letters", []byte{0x61, 0x1B, 0x40, 0x62}, "a|b"},
		{"undefined extension", []byte{0x1B, 0x00}, "?"},
		{"trailing escape", []byte{27}, ""},
		{"text then trailing escape", []byte{0x41, 0x1B}, "A"},
		{"high byte", []byte{0x41, 0x80, 0x42}, "A?B"},
		{"escaped high byte", []byte{0x1B, 0xFF}, "?"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := Decode(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.expected, decoded)
		})
	}
}

func TestDecodeBasicTable(t *testing.T) {
	for i := 0; i < 128; i++ {
		if byte(i) == Escape {
			continue
		}
		decoded, err := Decode([]byte{byte(i)})
		require.NoError(t, err)
		require.Equal(t, string(basicTable[i]), decoded, "code %#02x", i)
	}
}

func TestDecodeInvalidEscapeSequence(t *testing.T) {
	cases := []struct {
		name   string
		raw    []byte
		offset int64
	}{
		{"double escape", []byte{27, 27}, 1},
		{"after text", []byte{0x41, 0x42, 0x1B, 0x1B, 0x43}, 3},
		{"after extension", []byte{0x1B, 0x65, 0x1B, 0x1B}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := Decode(tc.raw)
			require.ErrorIs(t, err, ErrInvalidEscapeSequence)
			require.Empty(t, decoded)

			var escErr *EscapeError
			require.True(t, errors.As(err, &escErr))
			require.Equal(t, tc.offset, escErr.Offset)
		})
	}
}

func TestDecodeIncremental(t *testing.T) {
	raw := Encode("a{b}€")

	for split := 0; split <= len(raw); split++ {
		state := StateNormal
		out, n, err := Default().DecodeIncremental(nil, raw[:split], &state)
		require.NoError(t, err)
		require.Equal(t, split, n)

		out, n, err = Default().DecodeIncremental(out, raw[split:], &state)
		require.NoError(t, err)
		require.Equal(t, len(raw)-split, n)
		require.Equal(t, StateNormal, state)
		require.Equal(t, "a{b}€", string(out), "split at %d", split)
	}
}

func TestDecodeIncrementalState(t *testing.T) {
	state := StateNormal
	out, n, err := Default().DecodeIncremental(nil, []byte{0x41, 0x1B}, &state)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "A", string(out))
	require.Equal(t, StateEscaped, state)
	require.Equal(t, "escaped", state.String())

	out, n, err = Default().DecodeIncremental(out, []byte{0x1B}, &state)
	require.ErrorIs(t, err, ErrInvalidEscapeSequence)
	require.Equal(t, 0, n)
	require.Equal(t, "A", string(out))
}

func TestValid(t *testing.T) {
	require.True(t, Valid(nil))
	require.True(t, Valid(Encode("Hello {World}")))
	require.True(t, Valid([]byte{0x41, 0x1B}))
	require.False(t, Valid([]byte{0x1B, 0x1B}))
	require.False(t, Valid([]byte{0x41, 0x80}))
}

func BenchmarkDecode(b *testing.B) {
	raw := Encode("Hello {World} 5€ Grüße ")
	for len(raw) < 4096 {
		raw = append(raw, raw...)
	}

	b.SetBytes(int64(len(raw)))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := Decode(raw); err != nil {
			b.Fatal(err)
		}
	}
}

func TestMaxLength(t *testing.T) {
	text := "€{}[]~|^\\"
	require.Equal(t, MaxEncodedLen(9), len(Encode(text)))

	raw := Encode("€€€")
	decoded, err := Decode(raw)
	require.NoError(t, err)
	require.LessOrEqual(t, len(decoded), MaxDecodedLen(len(raw)))
}
