package sha2

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPadProperties(t *testing.T) {
	for n := 0; n <= 300; n++ {
		msg := bytes.Repeat([]byte{0xa5}, n)
		padded := Pad(msg)

		require.Zero(t, len(padded)%BlockSize, "length %d", n)
		require.GreaterOrEqual(t, len(padded), n+9, "length %d", n)
		require.Less(t, len(padded), n+9+BlockSize, "length %d: padding not minimal", n)
		require.Equal(t, msg, padded[:n], "length %d", n)
		require.Equal(t, byte(0x80), padded[n], "length %d", n)

		for _, b := range padded[n+1 : len(padded)-8] {
			require.Zero(t, b, "length %d", n)
		}

		bitLen := binary.BigEndian.Uint64(padded[len(padded)-8:])
		require.Equal(t, uint64(n)*8, bitLen, "length %d", n)
		// marker bit plus the seven zero bits sharing its byte
		zeroBits := 7 + uint64(zeroPadding(n))*8
		require.Zero(t, (bitLen+1+zeroBits+64)%512, "length %d", n)
	}
}

func TestPadBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected int
	}{
		{name: "empty", length: 0, expected: 64},
		{name: "55 bytes fit in one block", length: 55, expected: 64},
		{name: "56 bytes spill into a second block", length: 56, expected: 128},
		{name: "63 bytes", length: 63, expected: 128},
		{name: "one full block", length: 64, expected: 128},
		{name: "119 bytes", length: 119, expected: 128},
		{name: "120 bytes", length: 120, expected: 192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			padded := Pad(make([]byte, tt.length))
			require.Len(t, padded, tt.expected)
			require.Equal(t, tt.expected/BlockSize, Blocks(tt.length))
		})
	}
}

func TestPadLeavesInputUntouched(t *testing.T) {
	msg := make([]byte, 3, 64)
	copy(msg, "abc")

	padded := Pad(msg)
	padded[0] = 'x'

	require.Equal(t, []byte("abc"), msg)
	// spare capacity behind msg is not written either
	require.Zero(t, msg[:4][3])
}

func TestPadAbc(t *testing.T) {
	padded := Pad([]byte("abc"))

	expected := make([]byte, 64)
	copy(expected, "abc\x80")
	expected[63] = 0x18

	require.Equal(t, expected, padded)
}
