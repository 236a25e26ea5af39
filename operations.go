package uglycontainers

import (
	"github.com/Zamuhrishka/uglycontainers/internal/model"
)

// PushFront - Adds a copy of data before the first element.
//   - data is the element to add, it has to be of same length as given in call to New
//
// It returns:
//   - err is of type WrongElementLength, ContainerDeleted or a standard error if allocation failed
func (C *Container) PushFront(data []byte) (err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	err = C.core.PushFront(data)
	C.touch(err)

	return
}

// PushBack - Adds a copy of data after the last element.
//   - data is the element to add, it has to be of same length as given in call to New
//
// It returns:
//   - err is of type WrongElementLength, ContainerDeleted or a standard error if allocation failed
func (C *Container) PushBack(data []byte) (err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	err = C.core.PushBack(data)
	C.touch(err)

	return
}

// PopFront - Removes the first element.
//
// It returns:
//   - data is a copy of the removed element
//   - err is of type EmptyContainer or ContainerDeleted
func (C *Container) PopFront() (data []byte, err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	data, err = C.core.PopFront()
	C.touch(err)

	return
}

// PopBack - Removes the last element.
//
// It returns:
//   - data is a copy of the removed element
//   - err is of type EmptyContainer or ContainerDeleted
func (C *Container) PopBack() (data []byte, err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	data, err = C.core.PopBack()
	C.touch(err)

	return
}

// Insert - Inserts a copy of data so that it ends up at index. Inserting at index == Size() appends.
//   - data is the element to add, it has to be of same length as given in call to New
//   - index is the position the element will have after the call
//
// It returns:
//   - err is of type IndexOutOfRange, WrongElementLength, ContainerDeleted or a standard error if allocation failed
func (C *Container) Insert(data []byte, index int64) (err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	err = C.core.Insert(data, index)
	C.touch(err)

	return
}

// Extract - Removes the element at index.
//
// It returns:
//   - data is a copy of the removed element
//   - err is of type IndexOutOfRange, EmptyContainer or ContainerDeleted
func (C *Container) Extract(index int64) (data []byte, err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	data, err = C.core.Extract(index)
	C.touch(err)

	return
}

// Replace - Overwrites the element at index with a copy of data. References from Peek stay valid.
//
// It returns:
//   - err is of type IndexOutOfRange, EmptyContainer, WrongElementLength or ContainerDeleted
func (C *Container) Replace(data []byte, index int64) (err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	return C.core.Replace(data, index)
}

// At - Returns a copy of the element at index.
//
// It returns:
//   - data is a copy of the element
//   - err is of type IndexOutOfRange, EmptyContainer or ContainerDeleted
func (C *Container) At(index int64) (data []byte, err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	return C.core.At(index)
}

// Erase - Removes the element at index without returning it.
//
// It returns:
//   - err is of type IndexOutOfRange, EmptyContainer or ContainerDeleted
func (C *Container) Erase(index int64) (err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	err = C.core.Erase(index)
	C.touch(err)

	return
}

// Clear - Removes every element. Whether storage is returned to the allocator depends on the
// backing store: a list frees its nodes, an array keeps its buffer.
//
// It returns:
//   - size is the new size, always 0 (zero)
func (C *Container) Clear() (size int64) {
	if C.core == nil {
		return
	}

	size = C.core.Clear()
	C.generation++

	return
}

// Resize - Asks the backing store to make room for capacity elements without changing the size.
// For a list this only validates capacity, for an array it reallocates if capacity exceeds the current one.
// References from Peek stay valid unless storage was actually reallocated.
//
// It returns:
//   - err is of type InvalidCapacity if capacity is less than the size or too big to address,
//     ContainerDeleted, or a standard error if allocation failed
func (C *Container) Resize(capacity int64) (err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	before := C.core.Capacity()
	err = C.core.Resize(capacity)
	if err == nil && C.core.Capacity() != before {
		C.generation++
	}

	return
}

// checkAlive - Returns an error of type model.ContainerDeleted if Delete has been called
func (C *Container) checkAlive() (err error) {
	if C.core == nil {
		err = model.ContainerDeleted{}
	}

	return
}

// touch - Marks the layout as changed after a successful mutating call, which invalidates outstanding refs
func (C *Container) touch(err error) {
	if err == nil {
		C.generation++
	}
}
