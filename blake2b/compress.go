package blake2b

import "math/bits"

// Initialization vector for BLAKE2b, shared with SHA-512.
var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// Message word permutation for each round. Rounds 10 and 11 reuse the
// first two rows.
var sigma = [RoundCount][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
}

// compress mixes one message block into the chaining state h. The counter t
// and flags f are read but never written here; the caller advances them.
func compress(h *[8]uint64, t, f *[2]uint64, block *[BlockSize]byte) {
	var m [16]uint64
	for i := range m {
		m[i] = u64LE(block[i*8 : i*8+8])
	}

	// Chaining state on top, tweaked IVs on the bottom.
	var v [16]uint64
	copy(v[:8], h[:])
	v[8], v[9], v[10], v[11] = iv[0], iv[1], iv[2], iv[3]
	v[12] = t[0] ^ iv[4]
	v[13] = t[1] ^ iv[5]
	v[14] = f[0] ^ iv[6]
	v[15] = f[1] ^ iv[7]

	for r := 0; r < RoundCount; r++ {
		s := &sigma[r]

		// Columns
		g(&v, 0, 4, 8, 12, m[s[0]], m[s[1]])
		g(&v, 1, 5, 9, 13, m[s[2]], m[s[3]])
		g(&v, 2, 6, 10, 14, m[s[4]], m[s[5]])
		g(&v, 3, 7, 11, 15, m[s[6]], m[s[7]])

		// Diagonals
		g(&v, 0, 5, 10, 15, m[s[8]], m[s[9]])
		g(&v, 1, 6, 11, 12, m[s[10]], m[s[11]])
		g(&v, 2, 7, 8, 13, m[s[12]], m[s[13]])
		g(&v, 3, 4, 9, 14, m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}

// The internal BLAKE2b round function. All additions wrap mod 2^64.
func g(v *[16]uint64, a, b, c, d int, x, y uint64) {
	va, vb, vc, vd := v[a], v[b], v[c], v[d]

	va = va + vb + x
	vd = bits.RotateLeft64(vd^va, -32)
	vc = vc + vd
	vb = bits.RotateLeft64(vb^vc, -24)
	va = va + vb + y
	vd = bits.RotateLeft64(vd^va, -16)
	vc = vc + vd
	vb = bits.RotateLeft64(vb^vc, -63)

	v[a], v[b], v[c], v[d] = va, vb, vc, vd
}
