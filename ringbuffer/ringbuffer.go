// Package ringbuffer provides a fixed capacity circular buffer of fixed size byte elements. The buffer
// is a vector based container filled with capacity slots at creation, elements are written and read in
// place and the container layout never changes afterwards.
package ringbuffer

import (
	"github.com/Zamuhrishka/uglycontainers"
	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/pkg/errors"
)

// RingBuffer - The main implementation struct
type RingBuffer struct {
	slots     *uglycontainers.Container
	capacity  int64
	head      int64 // next slot to read
	tail      int64 // next slot to write
	size      int64
	overwrite bool
}

// New - Returns a new, empty ring buffer
//   - elementSize is the length in bytes of every element
//   - capacity is the number of elements the buffer holds
//   - overwrite makes Put on a full buffer drop the oldest element instead of failing
//   - allocator is where element storage is taken from, if nil a new alloc.Heap is used
func New(elementSize, capacity int64, overwrite bool, allocator alloc.Allocator) (ringBuffer *RingBuffer, err error) {
	if capacity <= 0 {
		err = errors.Errorf("capacity must be a positive value higher than 0 (zero), got %d", capacity)
		return
	}

	slots, err := uglycontainers.New(elementSize, uglycontainers.VectorBased, allocator)
	if err != nil {
		return
	}

	err = slots.Resize(capacity)
	if err == nil {
		empty := make([]byte, elementSize)
		for i := int64(0); i < capacity && err == nil; i++ {
			err = slots.PushBack(empty)
		}
	}
	if err != nil {
		slots.Delete()
		err = errors.Wrapf(err, "error while reserving %d slots", capacity)
		return
	}

	ringBuffer = &RingBuffer{slots: slots, capacity: capacity, overwrite: overwrite}

	return
}

// Put - Writes a copy of data after the newest element.
// On a full buffer it returns uglycontainers.CapacityExhausted, or in overwrite mode drops the oldest element.
func (R *RingBuffer) Put(data []byte) (err error) {
	if R.IsFull() && !R.overwrite {
		err = errors.Wrapf(uglycontainers.CapacityExhausted{}, "ring buffer holds %d elements", R.capacity)
		return
	}

	err = R.slots.Replace(data, R.tail)
	if err != nil {
		return
	}

	R.tail = R.next(R.tail)
	if R.size == R.capacity {
		R.head = R.next(R.head)
	} else {
		R.size++
	}

	return
}

// Get - Removes the oldest element and returns it, uglycontainers.EmptyContainer if there is none
func (R *RingBuffer) Get() (data []byte, err error) {
	data, err = R.Peek()
	if err != nil {
		return
	}

	R.head = R.next(R.head)
	R.size--

	return
}

// Peek - Returns a copy of the oldest element without removing it
func (R *RingBuffer) Peek() (data []byte, err error) {
	if R.size == 0 {
		err = uglycontainers.EmptyContainer{}
		return
	}

	return R.slots.At(R.head)
}

// Size - Returns the number of elements in the buffer
func (R *RingBuffer) Size() int64 {
	return R.size
}

// Capacity - Returns the number of elements the buffer holds when full
func (R *RingBuffer) Capacity() int64 {
	return R.capacity
}

// IsFull - Returns true if the buffer holds capacity elements
func (R *RingBuffer) IsFull() bool {
	return R.size == R.capacity
}

// IsEmpty - Returns true if the buffer holds no elements
func (R *RingBuffer) IsEmpty() bool {
	return R.size == 0
}

// Reset - Forgets every element, slots keep their bytes until overwritten
func (R *RingBuffer) Reset() {
	R.head = 0
	R.tail = 0
	R.size = 0
}

// Delete - Returns all storage to the allocator, the buffer must not be used afterwards
func (R *RingBuffer) Delete() {
	R.slots.Delete()
	R.Reset()
}

// next - Returns the slot after index, wrapping around at capacity
func (R *RingBuffer) next(index int64) int64 {
	index++
	if index == R.capacity {
		index = 0
	}

	return index
}
