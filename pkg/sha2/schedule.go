package sha2

import "encoding/binary"

// Expand builds the 64-word message schedule for one block. block must be
// exactly BlockSize bytes long.
func Expand(block []byte) [64]uint32 {
	var w [64]uint32

	_ = block[BlockSize-1]
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}

	for j := 16; j < 64; j++ {
		w[j] = smallSigma1(w[j-2]) + w[j-7] + smallSigma0(w[j-15]) + w[j-16]
	}

	return w
}
