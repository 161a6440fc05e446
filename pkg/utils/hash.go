package utils

import (
	"strings"
)

// NormalizeDigest trims surrounding whitespace and lowercases a hex digest
func NormalizeDigest(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsHexDigest reports whether s is exactly size lowercase or uppercase hex characters
func IsHexDigest(s string, size int) bool {
	if len(s) != size {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// DigestEqual compares two hex digests, ignoring case and surrounding whitespace
func DigestEqual(a, b string) bool {
	return ByteSliceEqual([]byte(NormalizeDigest(a)), []byte(NormalizeDigest(b)))
}

// ByteSliceEqual compares two byte slices for equality
func ByteSliceEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
