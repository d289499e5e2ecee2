package fishhash

import "golang.org/x/crypto/sha3"

// keccak512 computes the original (pre-SHA3-padding) Keccak with a
// 512-bit digest size, matching the reference Keccak code FishHash is
// specified against. sha3.NewLegacyKeccak512 implements exactly this
// padding, not the FIPS-202 SHA3-512 variant.
//
// dst and src may be the same underlying array; several call sites in
// the light-cache builder and item generator hash a buffer in place.
func keccak512(dst *Hash512, src []byte) {
	h := sha3.NewLegacyKeccak512()
	h.Write(src)
	h.Sum(dst[:0])
}
