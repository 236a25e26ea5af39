package storage

import (
	"github.com/Zamuhrishka/uglycontainers/internal/model"
	"github.com/pkg/errors"
)

// Storage - Interface for any backing store implementation a container can dispatch to.
// Elements are fixed length byte slices, they are always copied in and copied out.
type Storage interface {
	PushFront(data []byte) (err error)
	PushBack(data []byte) (err error)
	PopFront() (data []byte, err error)
	PopBack() (data []byte, err error)
	Insert(data []byte, index int64) (err error)
	Extract(index int64) (data []byte, err error)
	Replace(data []byte, index int64) (err error)
	At(index int64) (data []byte, err error)
	Erase(index int64) (err error)
	// Peek - Returns a slice aliasing the stored element, it is only valid until the next layout change
	Peek(index int64) (data []byte, err error)
	Clear() (size int64)
	Size() (size int64)
	Capacity() (capacity int64)
	Resize(capacity int64) (err error)
	Destroy()
	GetStorageParameters() (params model.StorageParameters)
}

// CheckElement - Returns an error of type model.WrongElementLength if data is not exactly elementSize long
func CheckElement(data []byte, elementSize int64) (err error) {
	if int64(len(data)) != elementSize {
		err = errors.Wrapf(model.WrongElementLength{}, "got %d bytes, should be %d", len(data), elementSize)
	}

	return
}

// CheckIndex - Returns an error if index doesn't address an existing element.
// An empty store gives model.EmptyContainer, any other miss gives model.IndexOutOfRange.
func CheckIndex(index, size int64) (err error) {
	if size == 0 {
		err = model.EmptyContainer{}
		return
	}
	if index < 0 || index >= size {
		err = errors.Wrapf(model.IndexOutOfRange{}, "index %d, size %d", index, size)
	}

	return
}

// CheckInsertIndex - Returns an error of type model.IndexOutOfRange if index is not a valid insert position,
// inserting at index == size appends.
func CheckInsertIndex(index, size int64) (err error) {
	if index < 0 || index > size {
		err = errors.Wrapf(model.IndexOutOfRange{}, "insert index %d, size %d", index, size)
	}

	return
}
