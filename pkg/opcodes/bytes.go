package opcodes

// XorBytes XORs two byte slices element-wise. The result has the length of
// the shorter input; trailing bytes of the longer input are discarded.
// Empty input yields an empty result, not an error.
func XorBytes(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// StringToBytes converts a string to raw byte values, masking each rune's
// codepoint to 8 bits. Codepoints above U+00FF alias into [0,255]; the
// conversion is deliberately lossy and not Unicode-safe, because the cipher
// consumers rely on the resulting one-byte-per-character contract.
func StringToBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return out
}
