package model

// SlotEmpty - State indicating a hash set slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotBusy - State indicating a hash set slot that holds a key
const SlotBusy uint8 = 1

// SlotFree - State indicating a hash set slot that has held a key but was released
const SlotFree uint8 = 2

// StorageParameters - Represents parameters specific for any implementation of a backing store
//   - Kind is the name of the backing store implementation
//   - ElementSize is the fixed length of every element
//   - Size is the number of elements currently stored
//   - Capacity is the number of elements that fit without reallocation
//   - AllocatedBytes is the number of bytes currently obtained from the allocator
type StorageParameters struct {
	Kind           string
	ElementSize    int64
	Size           int64
	Capacity       int64
	AllocatedBytes int64
}
