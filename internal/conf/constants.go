package conf

// InUseFlagBytes - Number of bytes used to indicate the state of a hash set slot,
// it is appended to each key when written to the slot vector
const InUseFlagBytes int64 = 1

// GrowthIncrement - Number of elements a dynamic array grows with when it runs out of capacity
const GrowthIncrement int64 = 16

// InitialCapacity - Number of elements a dynamic array has room for directly after creation
const InitialCapacity int64 = GrowthIncrement

// HeadroomPercent - Extra slots, in percent of requested capacity, that a hash set reserves to bound probe lengths
const HeadroomPercent int64 = 30

// DefaultSeed - Seed used for the first murmur3 hash of a key when none is given
const DefaultSeed uint32 = 0x9747b28c
