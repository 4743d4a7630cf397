// Package rc6 implements the RC6-32/20 block cipher from the AES
// submission by Rivest, Robshaw, Sidney and Yin, built on the opcodes
// rotation primitive.
//
// RC6 is included here as a worked example of the primitives driving a
// real round function. It is an educational implementation with no
// constant-time guarantees and should not protect anything of value.
package rc6

import (
	"crypto/cipher"
	"encoding/binary"
	"strconv"

	"github.com/highesttt/crypto-opcodes/pkg/opcodes"
)

// BlockSize is the RC6 block size in bytes.
const BlockSize = 16

const (
	rounds = 20
	words  = 2*rounds + 4 // round key words

	p32 = 0xB7E15163 // Odd((e-2) * 2^32)
	q32 = 0x9E3779B9 // Odd((phi-1) * 2^32)
)

// KeySizeError is returned by NewCipher for keys that are not 16, 24 or 32
// bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc6: invalid key size " + strconv.Itoa(int(k))
}

type rc6Cipher struct {
	s [words]uint32
}

// NewCipher creates and returns a cipher.Block implementing RC6-32/20 with
// the given 16, 24 or 32 byte key.
func NewCipher(key []byte) (cipher.Block, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}
	r := &rc6Cipher{}
	r.expandKey(key)
	return r, nil
}

func (r *rc6Cipher) BlockSize() int { return BlockSize }

// expandKey derives the round key schedule from the user key.
//
//  1. Load the key into c = len(key)/4 little-endian words
//  2. Seed the schedule with the magic constants P32 and Q32
//  3. Mix key and schedule together over 3*max(c, 44) passes
func (r *rc6Cipher) expandKey(key []byte) {
	l := make([]uint32, len(key)/4)
	for i := range l {
		l[i] = binary.LittleEndian.Uint32(key[4*i:])
	}

	r.s[0] = p32
	for i := 1; i < words; i++ {
		r.s[i] = r.s[i-1] + q32
	}

	var a, b uint32
	var i, j int
	for k := 0; k < 3*words; k++ {
		a = opcodes.RotL32(r.s[i]+a+b, 3)
		r.s[i] = a
		b = opcodes.RotL32(l[j]+a+b, int(a+b))
		l[j] = b
		i = (i + 1) % words
		j = (j + 1) % len(l)
	}
}

// Encrypt encrypts the 16-byte block in src and stores the result in dst.
// Dst and src may overlap entirely.
func (r *rc6Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rc6: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc6: output not full block")
	}

	a := binary.LittleEndian.Uint32(src[0:4])
	b := binary.LittleEndian.Uint32(src[4:8])
	c := binary.LittleEndian.Uint32(src[8:12])
	d := binary.LittleEndian.Uint32(src[12:16])

	b += r.s[0]
	d += r.s[1]
	for i := 1; i <= rounds; i++ {
		t := opcodes.RotL32(b*(2*b+1), 5)
		u := opcodes.RotL32(d*(2*d+1), 5)
		a = opcodes.RotL32(a^t, int(u%32)) + r.s[2*i]
		c = opcodes.RotL32(c^u, int(t%32)) + r.s[2*i+1]
		a, b, c, d = b, c, d, a
	}
	a += r.s[words-2]
	c += r.s[words-1]

	binary.LittleEndian.PutUint32(dst[0:4], a)
	binary.LittleEndian.PutUint32(dst[4:8], b)
	binary.LittleEndian.PutUint32(dst[8:12], c)
	binary.LittleEndian.PutUint32(dst[12:16], d)
}

// Decrypt decrypts the 16-byte block in src and stores the result in dst.
// Dst and src may overlap entirely.
func (r *rc6Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rc6: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc6: output not full block")
	}

	a := binary.LittleEndian.Uint32(src[0:4])
	b := binary.LittleEndian.Uint32(src[4:8])
	c := binary.LittleEndian.Uint32(src[8:12])
	d := binary.LittleEndian.Uint32(src[12:16])

	c -= r.s[words-1]
	a -= r.s[words-2]
	for i := rounds; i >= 1; i-- {
		a, b, c, d = d, a, b, c
		u := opcodes.RotL32(d*(2*d+1), 5)
		t := opcodes.RotL32(b*(2*b+1), 5)
		c = opcodes.RotL32(c-r.s[2*i+1], -int(t%32)) ^ u
		a = opcodes.RotL32(a-r.s[2*i], -int(u%32)) ^ t
	}
	d -= r.s[1]
	b -= r.s[0]

	binary.LittleEndian.PutUint32(dst[0:4], a)
	binary.LittleEndian.PutUint32(dst[4:8], b)
	binary.LittleEndian.PutUint32(dst[8:12], c)
	binary.LittleEndian.PutUint32(dst[12:16], d)
}
