package fishhash

import "lukechampine.com/blake3"

// blake3Sum64 computes a 64-byte BLAKE3 extendable output, used to
// expand a header into the kernel's 512-bit seed. BLAKE3's first 64
// output bytes are independent of any longer XOF request, so this is
// equivalent to, and implemented with, the library's one-shot Sum512.
func blake3Sum64(data []byte) Hash512 {
	return blake3.Sum512(data)
}

// blake3Sum32 computes the standard 32-byte BLAKE3 digest, used for the
// final output hash.
func blake3Sum32(data []byte) Hash256 {
	return blake3.Sum256(data)
}
