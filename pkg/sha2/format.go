package sha2

import (
	"encoding/binary"
	"encoding/hex"
)

// Format renders words as concatenated groups of 8 lowercase hex digits.
func Format(words []uint32) string {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		buf = binary.BigEndian.AppendUint32(buf, w)
	}
	return hex.EncodeToString(buf)
}
