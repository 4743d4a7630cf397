package opcodes

// gf256Poly is the AES irreducible polynomial x^8 + x^4 + x^3 + x + 1,
// reduced to its low eight bits.
const gf256Poly = 0x1B

// GF256Mul multiplies two bytes as elements of GF(2^8) under the AES
// reduction polynomial, the field used by MixColumns.
//
// Russian peasant multiplication with polynomial reduction:
//  1. If the low bit of b is set, absorb a into the accumulator
//  2. Double a (shift left, XOR 0x1B when the high bit falls out)
//  3. Halve b
// repeated for each of the eight bits of b.
func GF256Mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= gf256Poly
		}
		b >>= 1
	}
	return p
}
