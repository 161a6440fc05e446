package sha2

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned when a variant tag names neither SHA-224 nor SHA-256.
var ErrUnknownVariant = errors.New("unknown SHA variant")

// Variant selects one of the two SHA-2 functions built on 32-bit words.
// The numeric value is the digest size in bits.
type Variant int

const (
	// SHA224 truncates the final state to seven words.
	SHA224 Variant = 224
	// SHA256 emits all eight words of the final state.
	SHA256 Variant = 256
)

const (
	init0 = 0x6a09e667
	init1 = 0xbb67ae85
	init2 = 0x3c6ef372
	init3 = 0xa54ff53a
	init4 = 0x510e527f
	init5 = 0x9b05688c
	init6 = 0x1f83d9ab
	init7 = 0x5be0cd19

	init0_224 = 0xc1059ed8
	init1_224 = 0x367cd507
	init2_224 = 0x3070dd17
	init3_224 = 0xf70e5939
	init4_224 = 0xffc00b31
	init5_224 = 0x68581511
	init6_224 = 0x64f98fa7
	init7_224 = 0xbefa4fa4
)

// params is everything that differs between the two variants.
type params struct {
	iv    [8]uint32
	words int
}

var (
	params224 = params{
		iv:    [8]uint32{init0_224, init1_224, init2_224, init3_224, init4_224, init5_224, init6_224, init7_224},
		words: 7,
	}
	params256 = params{
		iv:    [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7},
		words: 8,
	}
)

// Variants lists every supported variant.
func Variants() []Variant {
	return []Variant{SHA224, SHA256}
}

// ParseVariant maps a selector such as "256", "sha224" or "SHA-256" to a Variant.
func ParseVariant(s string) (Variant, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	tag = strings.TrimPrefix(tag, "sha")
	tag = strings.TrimPrefix(tag, "-")

	switch tag {
	case "224":
		return SHA224, nil
	case "256":
		return SHA256, nil
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnknownVariant, s)
}

func (v Variant) params() (params, bool) {
	switch v {
	case SHA224:
		return params224, true
	case SHA256:
		return params256, true
	}
	return params{}, false
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	_, ok := v.params()
	return ok
}

// Size returns the length of the hex digest produced by v.
func (v Variant) Size() int {
	p, _ := v.params()
	return p.words * 8
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return fmt.Sprintf("SHA-%d", int(v))
}
