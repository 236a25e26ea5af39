package hash

// LinearProbingHashAlgorithm - Starts at the murmur3 hash of the key masked into a power of 2 table and
// steps one slot per iteration, wrapping around at the end of the table.
type LinearProbingHashAlgorithm struct {
	maskedTable
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
//   - tableSize is the requested number of slots, rounded up to a power of 2
//   - seed is the murmur3 seed
func NewLinearProbingHashAlgorithm(tableSize int64, seed uint32) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{}
	ha.seed = seed
	ha.SetTableSize(tableSize)
	return ha
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(key []byte, hf1Value, hf2Value, iteration int64) int64 {
	return L.mask(hf1Value + iteration)
}
