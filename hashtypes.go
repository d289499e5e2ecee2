// Package fishhash implements the FishHash proof-of-work: a memory-hard
// hash function evaluated against a large, deterministically generated
// dataset derived from a fixed 256-bit seed.
package fishhash

import "encoding/binary"

// Hash256 is an opaque 32-byte block, addressable as 8 little-endian u32
// words or 4 little-endian u64 words.
type Hash256 [32]byte

// Hash512 is a 64-byte block, addressable as 16 u32 words or 8 u64 words.
type Hash512 [64]byte

// Hash1024 is two concatenated Hash512 values.
type Hash1024 [128]byte

// Word32 returns the i-th little-endian 32-bit word.
func (h *Hash256) Word32(i int) uint32 { return binary.LittleEndian.Uint32(h[i*4 : i*4+4]) }

// SetWord32 stores v as the i-th little-endian 32-bit word.
func (h *Hash256) SetWord32(i int, v uint32) { binary.LittleEndian.PutUint32(h[i*4:i*4+4], v) }

// Word64 returns the i-th little-endian 64-bit word.
func (h *Hash256) Word64(i int) uint64 { return binary.LittleEndian.Uint64(h[i*8 : i*8+8]) }

// Word32 returns the i-th little-endian 32-bit word (0..15).
func (h *Hash512) Word32(i int) uint32 { return binary.LittleEndian.Uint32(h[i*4 : i*4+4]) }

// SetWord32 stores v as the i-th little-endian 32-bit word (0..15).
func (h *Hash512) SetWord32(i int, v uint32) { binary.LittleEndian.PutUint32(h[i*4:i*4+4], v) }

// Word64 returns the i-th little-endian 64-bit word (0..7).
func (h *Hash512) Word64(i int) uint64 { return binary.LittleEndian.Uint64(h[i*8 : i*8+8]) }

// SetWord64 stores v as the i-th little-endian 64-bit word (0..7).
func (h *Hash512) SetWord64(i int, v uint64) { binary.LittleEndian.PutUint64(h[i*8:i*8+8], v) }

// Xor returns the bytewise XOR of two Hash512 values.
func (h Hash512) Xor(o Hash512) Hash512 {
	var r Hash512
	for i := range r {
		r[i] = h[i] ^ o[i]
	}
	return r
}

// Word32 returns the i-th little-endian 32-bit word (0..31).
func (h *Hash1024) Word32(i int) uint32 { return binary.LittleEndian.Uint32(h[i*4 : i*4+4]) }

// SetWord32 stores v as the i-th little-endian 32-bit word (0..31).
func (h *Hash1024) SetWord32(i int, v uint32) { binary.LittleEndian.PutUint32(h[i*4:i*4+4], v) }

// Word64 returns the i-th little-endian 64-bit word (0..15).
func (h *Hash1024) Word64(i int) uint64 { return binary.LittleEndian.Uint64(h[i*8 : i*8+8]) }

// SetWord64 stores v as the i-th little-endian 64-bit word (0..15).
func (h *Hash1024) SetWord64(i int, v uint64) { binary.LittleEndian.PutUint64(h[i*8:i*8+8], v) }

// Lo returns the first half of the 1024-bit block as a Hash512.
func (h *Hash1024) Lo() Hash512 {
	var r Hash512
	copy(r[:], h[:64])
	return r
}

// Hi returns the second half of the 1024-bit block as a Hash512.
func (h *Hash1024) Hi() Hash512 {
	var r Hash512
	copy(r[:], h[64:])
	return r
}

// SetHalves packs lo and hi into the 1024-bit block.
func (h *Hash1024) SetHalves(lo, hi Hash512) {
	copy(h[:64], lo[:])
	copy(h[64:], hi[:])
}
