package hash

// QuadraticProbingHashAlgorithm - Starts at the murmur3 hash of the key masked into a power of 2 table and
// adds the triangular number of the iteration. In a power of 2 table the triangular steps visit every slot
// exactly once before repeating.
type QuadraticProbingHashAlgorithm struct {
	maskedTable
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
//   - tableSize is the requested number of slots, rounded up to a power of 2
//   - seed is the murmur3 seed
func NewQuadraticProbingHashAlgorithm(tableSize int64, seed uint32) *QuadraticProbingHashAlgorithm {
	ha := &QuadraticProbingHashAlgorithm{}
	ha.seed = seed
	ha.SetTableSize(tableSize)
	return ha
}

// ProbeIteration - Implements Quadratic Probing with triangular numbers
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(key []byte, hf1Value, hf2Value, iteration int64) int64 {
	return Q.mask(hf1Value + (iteration*iteration+iteration)/2)
}
