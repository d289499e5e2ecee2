package fishhash

// Lookup resolves a dataset item either from a materialised full
// dataset or by recomputing it from the light cache; see Context.Lookup
// for the production implementation and its zero-sentinel caching note.
type Lookup func(index uint32) Hash1024

// mixingKernel runs the NumDatasetAccesses-round memory-hard loop and
// collapses the resulting 1024-bit mix into a 256-bit digest.
func mixingKernel(lookup Lookup, indexLimit uint32, seed Hash512) Hash256 {
	var mix Hash1024
	mix.SetHalves(seed, seed)

	for i := 0; i < NumDatasetAccesses; i++ {
		p0 := mix.Word32(0) % indexLimit
		p1 := mix.Word32(4) % indexLimit
		p2 := mix.Word32(8) % indexLimit

		f0 := lookup(p0)
		f1 := lookup(p1)
		f2 := lookup(p2)

		for j := 0; j < 32; j++ {
			f1.SetWord32(j, fnv1(mix.Word32(j), f1.Word32(j)))
			f2.SetWord32(j, mix.Word32(j)^f2.Word32(j))
		}

		for k := 0; k < 16; k++ {
			mix.SetWord64(k, f0.Word64(k)*f1.Word64(k)+f2.Word64(k))
		}
	}

	var out Hash256
	for i := 0; i < 32; i += 4 {
		h1 := fnv1(mix.Word32(i), mix.Word32(i+1))
		h2 := fnv1(h1, mix.Word32(i+2))
		h3 := fnv1(h2, mix.Word32(i+3))
		out.SetWord32(i/4, h3)
	}
	return out
}

// Hash computes the 32-byte FishHash digest of header against ctx's
// dataset. It is infallible given a valid context: Keccak and BLAKE3
// are total functions here and there are no out-of-range indices a
// caller can construct.
func Hash(ctx *Context, header []byte) Hash256 {
	seed := blake3Sum64(header)
	mix := mixingKernel(ctx.Lookup, uint32(ctx.fullDatasetNumItems), seed)

	final := make([]byte, 0, 96)
	final = append(final, seed[:]...)
	final = append(final, mix[:]...)

	return blake3Sum32(final)
}
