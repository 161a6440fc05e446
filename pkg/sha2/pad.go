package sha2

import "encoding/binary"

// BlockSize is the size of one SHA-224/SHA-256 block in bytes.
const BlockSize = 64

// lengthSize is the size of the trailing bit-length field.
const lengthSize = 8

// Pad returns msg followed by the SHA-2 padding: a single 0x80 byte, the
// fewest zero bytes that make the total a multiple of BlockSize, and the
// message length in bits as a big-endian uint64. msg is not modified.
func Pad(msg []byte) []byte {
	bitLen := uint64(len(msg)) << 3

	padded := make([]byte, len(msg)+1+zeroPadding(len(msg))+lengthSize)

	copy(padded, msg)
	padded[len(msg)] = 0x80
	binary.BigEndian.PutUint64(padded[len(padded)-lengthSize:], bitLen)

	return padded
}

// zeroPadding reports how many zero bytes Pad inserts for a message of
// msgLen bytes.
func zeroPadding(msgLen int) int {
	return (BlockSize - (msgLen+1+lengthSize)%BlockSize) % BlockSize
}
