package sha2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		words    []uint32
		expected string
	}{
		{name: "no words", words: nil, expected: ""},
		{name: "zero padded", words: []uint32{0x1}, expected: "00000001"},
		{name: "lowercase", words: []uint32{0xDEADBEEF}, expected: "deadbeef"},
		{name: "order kept", words: []uint32{0x01234567, 0x89abcdef}, expected: "0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Format(tt.words))
		})
	}
}

func TestFormatTruncatedState(t *testing.T) {
	state := params224.iv

	require.Len(t, Format(state[:params224.words]), 56)
	require.Len(t, Format(state[:params256.words]), 64)
}
