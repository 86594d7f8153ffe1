package util

import (
	"unicode/utf16"
)

// --------------------------------------------------------------------------
// Hash Functions
// --------------------------------------------------------------------------

// HashString32 computes the polynomial rolling hash h = h*31 + c over the
// UTF-16 code units of s, wrapping to a signed 32-bit integer after every step.
// The result is bit-exact with String.hashCode in Java and with the usual
// `((h << 5) - h) + s.charCodeAt(i)` loop in JavaScript.
//
// The empty string hashes to 0.
func HashString32(s string) int32 {
	var hash int32
	for i := 0; i < len(s); i++ {
		// fast path for ASCII, a code unit equals the byte
		c := s[i]
		if c >= 0x80 {
			return hashUTF16(hash, s[i:])
		}
		hash = (hash << 5) - hash + int32(c)
	}
	return hash
}

// hashUTF16 continues the hash over the non-ASCII tail of a string
func hashUTF16(hash int32, tail string) int32 {
	for _, unit := range utf16.Encode([]rune(tail)) {
		hash = (hash << 5) - hash + int32(unit)
	}
	return hash
}

// Bucket maps a hash to [0, n) via abs(hash) mod n.
// abs is taken in 64 bits so math.MinInt32 maps to 2^31 instead of overflowing.
// n must be positive.
func Bucket(hash int32, n int) int {
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// HashString generates a hash value for a string with a seed
// This function uses the FNV-1a hash algorithm, which is fast and has good distribution.
// It is used to turn human-readable shelf names into numeric shelf IDs.
func HashString(s string, seed uint64) uint64 {

	// FNV-1a hash with seed incorporation
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	// Start with the offset combined with our seed for uniqueness
	hash := uint64(offset64) ^ seed

	for i := 0; i < len(s); i++ {
		hash ^= uint64(s[i])
		hash *= prime64
	}

	return hash
}
