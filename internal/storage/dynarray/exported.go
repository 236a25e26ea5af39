package dynarray

import (
	"math"

	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/Zamuhrishka/uglycontainers/internal/conf"
	"github.com/Zamuhrishka/uglycontainers/internal/model"
	"github.com/Zamuhrishka/uglycontainers/internal/storage"
	"github.com/Zamuhrishka/uglycontainers/internal/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("module", "dynarray")

// DynArray - Represents a contiguous backing store. All elements live in one block obtained from the
// allocator, capacity*elementSize bytes long. When an insert finds the block full it is replaced by one
// that is conf.GrowthIncrement elements bigger.
type DynArray struct {
	buffer      []byte
	size        int64
	capacity    int64
	elementSize int64
	allocator   alloc.Allocator
}

// NewDynArray - Returns a pointer to a new, empty DynArray with room for conf.InitialCapacity elements
//   - elementSize is the fixed length of every element
//   - allocator is where the element block is taken from
func NewDynArray(elementSize int64, allocator alloc.Allocator) (dynArray *DynArray, err error) {
	if elementSize <= 0 {
		err = errors.Errorf("element size must be a positive value higher than 0 (zero), got %d", elementSize)
		return
	}
	if allocator == nil {
		err = errors.New("an allocator must be given")
		return
	}

	if !utils.MulFits(elementSize, conf.InitialCapacity) {
		err = errors.Wrapf(model.InvalidCapacity{}, "%d elements of %d bytes exceed the addressable size", conf.InitialCapacity, elementSize)
		return
	}

	buffer, err := allocator.Alloc(conf.InitialCapacity * elementSize)
	if err != nil {
		err = errors.Wrap(err, "error while allocating initial buffer")
		return
	}

	dynArray = &DynArray{
		buffer:      buffer,
		capacity:    conf.InitialCapacity,
		elementSize: elementSize,
		allocator:   allocator,
	}

	return
}

// PushFront - Adds an element before the first one, shifting every element one step
func (D *DynArray) PushFront(data []byte) (err error) {
	return D.Insert(data, 0)
}

// PushBack - Adds an element after the last one
func (D *DynArray) PushBack(data []byte) (err error) {
	return D.Insert(data, D.size)
}

// PopFront - Removes the first element and returns a copy of it, shifting every element one step
func (D *DynArray) PopFront() (data []byte, err error) {
	if D.size == 0 {
		err = model.EmptyContainer{}
		return
	}

	return D.Extract(0)
}

// PopBack - Removes the last element and returns a copy of it
func (D *DynArray) PopBack() (data []byte, err error) {
	if D.size == 0 {
		err = model.EmptyContainer{}
		return
	}

	return D.Extract(D.size - 1)
}

// Insert - Inserts an element so that it ends up at index, index == size appends
func (D *DynArray) Insert(data []byte, index int64) (err error) {
	err = storage.CheckElement(data, D.elementSize)
	if err != nil {
		return
	}
	err = storage.CheckInsertIndex(index, D.size)
	if err != nil {
		return
	}

	if D.size == D.capacity {
		if D.capacity > math.MaxInt64-conf.GrowthIncrement {
			err = errors.Wrapf(model.InvalidCapacity{}, "can not grow beyond %d elements", D.capacity)
			return
		}
		err = D.reallocate(D.capacity + conf.GrowthIncrement)
		if err != nil {
			return
		}
	}

	start := index * D.elementSize
	end := D.size * D.elementSize
	_ = copy(D.buffer[start+D.elementSize:end+D.elementSize], D.buffer[start:end])
	_ = copy(D.buffer[start:start+D.elementSize], data)
	D.size++

	return
}

// Extract - Removes the element at index and returns a copy of it
func (D *DynArray) Extract(index int64) (data []byte, err error) {
	err = storage.CheckIndex(index, D.size)
	if err != nil {
		return
	}

	data = utils.Clone(D.slot(index))
	D.remove(index)

	return
}

// Replace - Overwrites the element at index
func (D *DynArray) Replace(data []byte, index int64) (err error) {
	err = storage.CheckElement(data, D.elementSize)
	if err != nil {
		return
	}
	err = storage.CheckIndex(index, D.size)
	if err != nil {
		return
	}

	_ = copy(D.slot(index), data)

	return
}

// At - Returns a copy of the element at index
func (D *DynArray) At(index int64) (data []byte, err error) {
	err = storage.CheckIndex(index, D.size)
	if err != nil {
		return
	}

	data = utils.Clone(D.slot(index))

	return
}

// Erase - Removes the element at index without returning it
func (D *DynArray) Erase(index int64) (err error) {
	err = storage.CheckIndex(index, D.size)
	if err != nil {
		return
	}

	D.remove(index)

	return
}

// Peek - Returns the part of the buffer holding the element at index, it is invalidated by any reallocation
func (D *DynArray) Peek(index int64) (data []byte, err error) {
	err = storage.CheckIndex(index, D.size)
	if err != nil {
		return
	}

	data = D.slot(index)

	return
}

// Clear - Forgets every element but keeps the buffer, returns the new size
func (D *DynArray) Clear() (size int64) {
	clear(D.buffer[:D.size*D.elementSize])
	D.size = 0

	return D.size
}

// Size - Returns the number of elements in the array
func (D *DynArray) Size() (size int64) {
	return D.size
}

// Capacity - Returns the number of elements that fit in the current buffer
func (D *DynArray) Capacity() (capacity int64) {
	return D.capacity
}

// Resize - Reallocates the buffer to hold exactly capacity elements.
// A capacity less than the current size is an error, a capacity not bigger than the current one is a no-op.
func (D *DynArray) Resize(capacity int64) (err error) {
	if capacity < D.size {
		err = errors.Wrapf(model.InvalidCapacity{}, "capacity %d is less than size %d", capacity, D.size)
		return
	}
	if capacity <= D.capacity {
		return
	}

	return D.reallocate(capacity)
}

// Destroy - Returns the buffer to the allocator, the array must not be used afterwards
func (D *DynArray) Destroy() {
	D.allocator.Free(D.buffer)
	D.buffer = nil
	D.size = 0
	D.capacity = 0
}

// GetStorageParameters - Returns a struct with storage parameters from DynArray
func (D *DynArray) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		Kind:           "DynArray",
		ElementSize:    D.elementSize,
		Size:           D.size,
		Capacity:       D.capacity,
		AllocatedBytes: int64(len(D.buffer)),
	}

	return
}
