package opcodes_test

import (
	"testing"

	"github.com/highesttt/crypto-opcodes/pkg/opcodes"
)

func TestGF256MulKnownVectors(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		// FIPS-197 §4.2 worked examples.
		{0x57, 0x83, 0xC1},
		{0x57, 0x13, 0xFE},
		// 0x53 and 0xCA are multiplicative inverses.
		{0x53, 0xCA, 0x01},
		// Doubling 0x80 overflows and triggers the 0x1B reduction.
		{0x80, 0x02, 0x1B},
		{0x02, 0x80, 0x1B},
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01},
	}
	for _, tt := range tests {
		if got := opcodes.GF256Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("GF256Mul(%#02x, %#02x) = %#02x, want %#02x", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestGF256MulFullGrid checks the field axioms that only need two operands
// over the entire 256x256 input space, not a sample of it.
func TestGF256MulFullGrid(t *testing.T) {
	for a := 0; a < 256; a++ {
		x := byte(a)
		if got := opcodes.GF256Mul(x, 0); got != 0 {
			t.Fatalf("GF256Mul(%#02x, 0) = %#02x, want 0", x, got)
		}
		if got := opcodes.GF256Mul(1, x); got != x {
			t.Fatalf("GF256Mul(1, %#02x) = %#02x, want %#02x", x, got, x)
		}
		for b := 0; b < 256; b++ {
			y := byte(b)
			if opcodes.GF256Mul(x, y) != opcodes.GF256Mul(y, x) {
				t.Fatalf("GF256Mul not commutative for %#02x, %#02x", x, y)
			}
		}
	}
}

func TestGF256MulDistributesOverXor(t *testing.T) {
	cs := []byte{0x1B, 0x57, 0xCA}
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, c := range cs {
				x, y := byte(a), byte(b)
				left := opcodes.GF256Mul(x, y^c)
				right := opcodes.GF256Mul(x, y) ^ opcodes.GF256Mul(x, c)
				if left != right {
					t.Fatalf("GF256Mul(%#02x, %#02x^%#02x) = %#02x, want %#02x", x, y, c, left, right)
				}
			}
		}
	}
}

func TestGF256MulAssociative(t *testing.T) {
	cs := []byte{0x02, 0x03, 0x8D, 0xFF}
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, c := range cs {
				x, y := byte(a), byte(b)
				left := opcodes.GF256Mul(opcodes.GF256Mul(x, y), c)
				right := opcodes.GF256Mul(x, opcodes.GF256Mul(y, c))
				if left != right {
					t.Fatalf("GF256Mul not associative for %#02x, %#02x, %#02x", x, y, c)
				}
			}
		}
	}
}

// The powers of the generator 0x03 enumerate every nonzero field element
// exactly once before cycling. Catches reduction bugs that the pairwise
// axioms miss.
func TestGF256MulGeneratorCycle(t *testing.T) {
	seen := make(map[byte]bool)
	x := byte(1)
	for i := 0; i < 255; i++ {
		if seen[x] {
			t.Fatalf("generator cycle repeated %#02x after %d steps", x, i)
		}
		seen[x] = true
		x = opcodes.GF256Mul(x, 0x03)
	}
	if x != 1 {
		t.Fatalf("generator cycle did not close: got %#02x after 255 steps, want 0x01", x)
	}
	if len(seen) != 255 {
		t.Fatalf("generator cycle covered %d elements, want 255", len(seen))
	}
}

func FuzzGF256Mul(f *testing.F) {
	f.Add(byte(0x57), byte(0x83))
	f.Add(byte(0x00), byte(0xFF))
	f.Fuzz(func(t *testing.T, a, b byte) {
		if opcodes.GF256Mul(a, b) != opcodes.GF256Mul(b, a) {
			t.Errorf("GF256Mul(%#02x, %#02x) is not commutative", a, b)
		}
		if got := opcodes.GF256Mul(a, 1); got != a {
			t.Errorf("GF256Mul(%#02x, 1) = %#02x, want identity", a, got)
		}
	})
}
