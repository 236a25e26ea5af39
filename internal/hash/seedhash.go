package hash

// SeedPerturbationHashAlgorithm - The internally used default slot selection algorithm. It creates a murmur3
// (32 bit) hash value over the raw key bytes and applies slot = hash % tableSize. On collision it does not step
// from the first slot but hashes the key again with the seed perturbed by the iteration, which spreads the probe
// sequences of colliding keys over the whole table instead of clustering them.
type SeedPerturbationHashAlgorithm struct {
	murmurTable
}

// NewSeedPerturbationHashAlgorithm - Returns a pointer to a new SeedPerturbationHashAlgorithm instance
//   - tableSize is the number of slots to address, it is used as is
//   - seed is the murmur3 seed of the first probe
func NewSeedPerturbationHashAlgorithm(tableSize int64, seed uint32) *SeedPerturbationHashAlgorithm {
	ha := &SeedPerturbationHashAlgorithm{}
	ha.seed = seed
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (S *SeedPerturbationHashAlgorithm) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	S.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (S *SeedPerturbationHashAlgorithm) HashFunc1(key []byte) int64 {
	return S.sum(key, 0) % S.tableSize
}

// HashFunc2 - Not used by seed perturbation, returns a dummy value
func (S *SeedPerturbationHashAlgorithm) HashFunc2(key []byte) int64 {
	return 0
}

// ProbeIteration - Implements seed perturbation, iteration 0 (zero) is the HashFunc1 value
func (S *SeedPerturbationHashAlgorithm) ProbeIteration(key []byte, hf1Value, hf2Value, iteration int64) int64 {
	if iteration == 0 {
		return hf1Value
	}

	return S.sum(key, uint32(iteration)) % S.tableSize
}
