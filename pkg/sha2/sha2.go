// Package sha2 implements the SHA-224 and SHA-256 hash functions of FIPS 180-4
// over fully buffered input.
//
// Both variants run the same algorithm: the message is padded to a multiple of
// BlockSize, every block is expanded into a 64-word schedule and compressed
// into an eight-word state, and the state is rendered as hex. They differ only
// in the initial state and in how many state words make up the digest.
package sha2

// Sum224 returns the SHA-224 digest of msg as 56 lowercase hex characters.
func Sum224(msg []byte) string {
	return digest(msg, params224)
}

// Sum256 returns the SHA-256 digest of msg as 64 lowercase hex characters.
func Sum256(msg []byte) string {
	return digest(msg, params256)
}

// Sum returns the digest of msg under v. The only error is ErrUnknownVariant,
// for a Variant value outside the declared constants.
func Sum(v Variant, msg []byte) (string, error) {
	p, ok := v.params()
	if !ok {
		return "", ErrUnknownVariant
	}
	return digest(msg, p), nil
}

// Blocks returns the number of blocks processed when hashing msgLen bytes.
func Blocks(msgLen int) int {
	return (msgLen + 1 + zeroPadding(msgLen) + lengthSize) / BlockSize
}

func digest(msg []byte, p params) string {
	state := p.iv

	padded := Pad(msg)
	for off := 0; off < len(padded); off += BlockSize {
		w := Expand(padded[off : off+BlockSize])
		fold(&state, Compress(state, &w))
	}

	return Format(state[:p.words])
}
