package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashSet to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a hash set, with the requested capacity plus headroom. Hence, if a custom
	// hash algorithm is supplied that implements this interface and the instance is already having a table size, it
	// will be overwritten.
	//   - tableSize is the number of slots the hash set will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will be skipped by the probing loop.
	HashFunc1(key []byte) int64

	// HashFunc2 - Given key it generates an offset probing value that will be used together with the value from
	// HashFunc1 in a call to ProbeIteration. Algorithms that don't need it may return any value.
	HashFunc2(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	// It is very important that this function return the actual table size and not just the table size given in
	// the call to SetTableSize. Some algorithms round up to nearest 2 to the power of x, or to the nearest prime, and
	// the hash set allocates exactly GetTableSize slots.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to examine in the given iteration, iteration 0 (zero) being the first.
	// Since this function is called repeatedly for one key, it is given the values from HashFunc1 and HashFunc2
	// so that algorithms combining them don't have to hash again. Algorithms that re-hash per iteration use the key.
	// A value outside the table is allowed, the loop will just continue with the next iteration.
	ProbeIteration(key []byte, hf1Value, hf2Value, iteration int64) int64
}
