package hash

import (
	"github.com/Zamuhrishka/uglycontainers/crt"
	"github.com/Zamuhrishka/uglycontainers/hashfunc"
	"github.com/pkg/errors"
)

// New - Returns the internal hash algorithm for a collision resolution technique
//   - technique is one of the crt constants
//   - tableSize is the requested number of slots, the algorithm may round it up
//   - seed is the murmur3 seed
func New(technique int, tableSize int64, seed uint32) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch technique {
	case crt.SeedPerturbation:
		hashAlgorithm = NewSeedPerturbationHashAlgorithm(tableSize, seed)
	case crt.QuadraticProbing:
		hashAlgorithm = NewQuadraticProbingHashAlgorithm(tableSize, seed)
	case crt.LinearProbing:
		hashAlgorithm = NewLinearProbingHashAlgorithm(tableSize, seed)
	case crt.DoubleHashing:
		hashAlgorithm = NewDoubleHashAlgorithm(tableSize, seed)
	default:
		err = errors.Errorf("collision resolution technique %d not implemented", technique)
	}

	return
}
