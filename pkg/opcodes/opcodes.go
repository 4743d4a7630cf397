// Package opcodes provides the low-level byte and bit manipulation
// primitives that the cipher implementations in this repository are built
// from: 32-bit rotation, big-endian byte packing, byte-slice XOR, GF(2^8)
// multiplication and lossy string-to-byte conversion.
//
// Every operation is a pure function over value types. There is no shared
// state, no initialization and no error path: all arithmetic is defined for
// the full input range via masking and modular reduction, so every function
// is safe to call concurrently from any number of goroutines.
//
// This is an educational library. It makes no constant-time or
// side-channel guarantees.
package opcodes

// RotL32 rotates a 32-bit value left by s positions.
//
// The shift amount is normalized with true mathematical modulo, so negative
// and oversized amounts are accepted rather than rejected:
// RotL32(v, -4) == RotL32(v, 28) and RotL32(v, 36) == RotL32(v, 4).
func RotL32(v uint32, s int) uint32 {
	s = ((s % 32) + 32) % 32
	if s == 0 {
		// Avoid the 32-bit complementary shift below.
		return v
	}
	return v<<s | v>>(32-s)
}

// Pack32BE packs four bytes into a 32-bit word, b0 most significant.
func Pack32BE(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}
