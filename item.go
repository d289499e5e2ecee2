package fishhash

// itemState is the per-half state machine used to derive one 512-bit
// half of a dataset item from the light cache.
type itemState struct {
	cache []Hash512
	seed  uint32
	mix   Hash512
}

// newItemState seeds mix from light_cache[subIndex mod len(cache)] and
// folds subIndex's low 32 bits in before the first Keccak-512 pass.
func newItemState(cache []Hash512, subIndex int64) itemState {
	seed := uint32(subIndex) // truncating wrap, as in the reference.
	s := itemState{cache: cache, seed: seed}
	s.mix = cache[int(uint64(subIndex)%uint64(len(cache)))]
	s.mix.SetWord32(0, s.mix.Word32(0)^seed)
	keccak512(&s.mix, s.mix[:])
	return s
}

// update advances the state machine by one of FullDatasetItemParents
// rounds, folding in one more light-cache entry selected by an FNV1
// mix of the seed, the round number, and the current mix state.
func (s *itemState) update(round uint32) {
	t := fnv1(s.seed^round, s.mix.Word32(int(round%16)))
	parent := int(uint64(t) % uint64(len(s.cache)))
	s.mix = fnv1Vec512(s.mix, s.cache[parent])
}

// final runs one last Keccak-512 pass over the accumulated mix and
// returns it.
func (s *itemState) final() Hash512 {
	keccak512(&s.mix, s.mix[:])
	return s.mix
}

// DatasetItem1024 computes the full 1024-bit dataset item at index
// from the light cache, by running two independent itemState machines
// (for sub-indices 2*index and 2*index+1) through all
// FullDatasetItemParents update rounds and concatenating their
// finalized halves.
func DatasetItem1024(cache []Hash512, index uint32) Hash1024 {
	item0 := newItemState(cache, int64(index)*2)
	item1 := newItemState(cache, int64(index)*2+1)

	for j := uint32(0); j < FullDatasetItemParents; j++ {
		item0.update(j)
		item1.update(j)
	}

	var out Hash1024
	out.SetHalves(item0.final(), item1.final())
	return out
}
