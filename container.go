// Package uglycontainers provides a container of fixed size byte elements that is backed by either a
// doubly linked list or a dynamic array, chosen when the container is created. Every operation has the
// same meaning regardless of the backing store, only the cost differs.
//
// Containers are not safe for concurrent use. Wrap each container in its own mutex if it has to be
// shared between goroutines.
package uglycontainers

import (
	"fmt"

	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/Zamuhrishka/uglycontainers/internal/model"
	"github.com/Zamuhrishka/uglycontainers/internal/storage"
	"github.com/Zamuhrishka/uglycontainers/internal/storage/dynarray"
	"github.com/Zamuhrishka/uglycontainers/internal/storage/linkedlist"
	"github.com/pkg/errors"
)

// Kind - Selects the backing store of a container
type Kind int

const (
	// LinkedListBased - Elements are kept in a doubly linked list, O(1) at both ends and O(n) indexed access
	LinkedListBased Kind = iota + 1
	// VectorBased - Elements are kept in a contiguous array, O(1) indexed access and at the back
	VectorBased
)

// String - Returns the name of the kind
func (K Kind) String() string {
	switch K {
	case LinkedListBased:
		return "LinkedListBased"
	case VectorBased:
		return "VectorBased"
	default:
		return fmt.Sprintf("Kind(%d)", int(K))
	}
}

// StorageParameters - Information about the current state of a container
//   - Kind is the backing store selected at creation
//   - ElementSize is the fixed length of every element
//   - Size is the number of elements stored
//   - Capacity is the number of elements that fit without reallocation
//   - AllocatedBytes is the number of element bytes currently obtained from the allocator
type StorageParameters struct {
	Kind           Kind
	ElementSize    int64
	Size           int64
	Capacity       int64
	AllocatedBytes int64
}

// Container - The main implementation struct
type Container struct {
	core        storage.Storage
	kind        Kind
	elementSize int64
	generation  uint64
}

// New - Returns a new, empty container.
//   - elementSize is the length in bytes of every element, it can't be changed later
//   - kind selects the backing store
//   - allocator is where element storage is taken from, if nil a new alloc.Heap is used
//
// It returns:
//   - container is a pointer to the created Container
//   - err is a standard error, or of type UnknownKind if kind is not one of the known kinds
func New(elementSize int64, kind Kind, allocator alloc.Allocator) (container *Container, err error) {
	if elementSize <= 0 {
		err = errors.New("element size must be a positive value higher than 0 (zero)")
		return
	}

	if allocator == nil {
		allocator = alloc.NewHeap()
	}

	var core storage.Storage
	switch kind {
	case LinkedListBased:
		core, err = linkedlist.NewLinkedList(elementSize, allocator)
	case VectorBased:
		core, err = dynarray.NewDynArray(elementSize, allocator)
	default:
		err = errors.Wrapf(model.UnknownKind{}, "kind %d", int(kind))
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "error while creating %s backing store", kind)
		return
	}

	container = &Container{
		core:        core,
		kind:        kind,
		elementSize: elementSize,
	}

	return
}

// Delete - Destroys the backing store, returning all element storage to the allocator.
// Any later call on the container fails with ContainerDeleted.
func (C *Container) Delete() {
	if C.core == nil {
		return
	}

	C.core.Destroy()
	C.core = nil
	C.generation++
}

// Kind - Returns the backing store kind the container was created with
func (C *Container) Kind() Kind {
	return C.kind
}

// ElementSize - Returns the length in bytes of every element
func (C *Container) ElementSize() int64 {
	return C.elementSize
}

// Size - Returns the number of elements, a deleted container has size 0 (zero)
func (C *Container) Size() int64 {
	if C.core == nil {
		return 0
	}

	return C.core.Size()
}

// IsEmpty - Returns true if the container holds no elements
func (C *Container) IsEmpty() bool {
	return C.Size() == 0
}

// GetStorageParameters - Returns a struct with the current storage parameters
func (C *Container) GetStorageParameters() (params StorageParameters) {
	params = StorageParameters{
		Kind:        C.kind,
		ElementSize: C.elementSize,
	}
	if C.core == nil {
		return
	}

	sp := C.core.GetStorageParameters()
	params.Size = sp.Size
	params.Capacity = sp.Capacity
	params.AllocatedBytes = sp.AllocatedBytes

	return
}
