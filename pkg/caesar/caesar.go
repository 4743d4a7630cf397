// Package caesar implements a Caesar substitution cipher over ASCII
// letters. It is the worked example for composing the opcodes primitives:
// classical, trivially breakable, and useful only for demonstration.
package caesar

import "github.com/highesttt/crypto-opcodes/pkg/opcodes"

// Encrypt shifts every ASCII letter in plaintext by shift positions within
// its own 26-letter ring: uppercase stays uppercase, lowercase stays
// lowercase, every other byte passes through unchanged. Negative and
// oversized shifts wrap correctly.
func Encrypt(plaintext string, shift int) string {
	data := opcodes.StringToBytes(plaintext)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = shiftLetter(b, shift)
	}
	return string(out)
}

// Decrypt reverses Encrypt by shifting in the opposite direction.
func Decrypt(ciphertext string, shift int) string {
	return Encrypt(ciphertext, -shift)
}

func shiftLetter(b byte, shift int) byte {
	var base int
	switch {
	case b >= 'A' && b <= 'Z':
		base = 'A'
	case b >= 'a' && b <= 'z':
		base = 'a'
	default:
		return b
	}
	k := ((int(b)-base+shift)%26 + 26) % 26
	return byte(base + k)
}
