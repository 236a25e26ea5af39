package hash

import (
	"github.com/Zamuhrishka/uglycontainers/internal/utils"
)

// DoubleHashAlgorithm - Splits one murmur3 hash of the key into a start slot (HashFunc1) and a step
// (HashFunc2) in a prime sized table, so every step size reaches every slot.
type DoubleHashAlgorithm struct {
	murmurTable
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
//   - tableSize is the requested number of slots, rounded up to a prime
//   - seed is the murmur3 seed
func NewDoubleHashAlgorithm(tableSize int64, seed uint32) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{}
	ha.seed = seed
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to its nearest higher prime number (at least 3), which allows
// the algorithm to iterate over the entirety of the tables slots once and only once.
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	if tableSize < 3 {
		tableSize = 3
	}
	D.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key []byte) int64 {
	return D.sum(key, 0) % D.tableSize
}

// HashFunc2 - Given key it generates a step between 1 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc2(key []byte) int64 {
	return 1 + ((D.sum(key, 0) / D.tableSize) % (D.tableSize - 1))
}

// ProbeIteration - Returns the slot iteration steps away from HashFunc1
func (D *DoubleHashAlgorithm) ProbeIteration(key []byte, hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % D.tableSize
}
