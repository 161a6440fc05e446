package sha2

// _K holds the round constants shared by SHA-224 and SHA-256.
var _K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Compress runs the 64 SHA-2 rounds over the schedule w starting from regs
// and returns the final working registers. regs is passed by value and is
// left untouched; the caller folds the result into its hash state.
func Compress(regs [8]uint32, w *[64]uint32) [8]uint32 {
	a, b, c, d, e, f, g, h := regs[0], regs[1], regs[2], regs[3], regs[4], regs[5], regs[6], regs[7]

	for j := 0; j < 64; j++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + _K[j] + w[j]
		t2 := bigSigma0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return [8]uint32{a, b, c, d, e, f, g, h}
}

// fold adds the compressed registers into the running hash state.
func fold(state *[8]uint32, regs [8]uint32) {
	for i := range state {
		state[i] += regs[i]
	}
}
