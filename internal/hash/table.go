package hash

import (
	"github.com/Zamuhrishka/uglycontainers/internal/utils"
	"github.com/spaolacci/murmur3"
)

// murmurTable - Table size and murmur3 seed shared by all internal algorithms
type murmurTable struct {
	tableSize int64
	seed      uint32
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (M *murmurTable) GetTableSize() int64 {
	return M.tableSize
}

// sum - Returns the murmur3 hash of key with the table seed perturbed by offset
func (M *murmurTable) sum(key []byte, offset uint32) int64 {
	return int64(murmur3.Sum32WithSeed(key, M.seed+offset))
}

// maskedTable - A murmurTable whose size is always a power of 2, so a slot is the hash masked by size - 1
type maskedTable struct {
	murmurTable
}

// SetTableSize - Sets the table size to the nearest bigger (or equal) exponent of 2 of tableSize
func (M *maskedTable) SetTableSize(tableSize int64) {
	M.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (M *maskedTable) HashFunc1(key []byte) int64 {
	return M.mask(M.sum(key, 0))
}

// HashFunc2 - Stepping algorithms on a masked table don't need a second hash, returns a dummy value
func (M *maskedTable) HashFunc2(key []byte) int64 {
	return 0
}

// mask - Wraps any non negative value into the table
func (M *maskedTable) mask(value int64) int64 {
	return value & (M.tableSize - 1)
}
