package fishhash

// BuildLightCache fills dst with the deterministic light-cache items
// derived from seed. len(dst) is the cache size to build; production
// code always calls this with LightCacheNumItems items, but the
// algorithm itself has no dependency on a specific size, which is what
// lets tests exercise it at a much smaller scale.
//
// The build has two sequential phases and cannot be parallelised
// within a round: the initial fill chains cache[i] off cache[i-1], and
// the XOR-mix rounds read cache[v] and cache[w] which may already have
// been rewritten earlier in the same round.
func BuildLightCache(dst []Hash512, seed Hash256) {
	n := len(dst)
	if n == 0 {
		return
	}

	keccak512(&dst[0], seed[:])
	for i := 1; i < n; i++ {
		keccak512(&dst[i], dst[i-1][:])
	}

	var x Hash512
	for round := 0; round < LightCacheRounds; round++ {
		for i := 0; i < n; i++ {
			t := dst[i].Word32(0)
			v := int(t % uint32(n))
			w := (n + i - 1) % n
			x = dst[v].Xor(dst[w])
			keccak512(&dst[i], x[:])
		}
	}
}
