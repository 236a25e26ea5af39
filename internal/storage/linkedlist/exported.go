package linkedlist

import (
	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/Zamuhrishka/uglycontainers/internal/model"
	"github.com/Zamuhrishka/uglycontainers/internal/storage"
	"github.com/Zamuhrishka/uglycontainers/internal/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("module", "linkedlist")

// node - One element of the list, sentinels have a nil data slice
type node struct {
	prev *node
	next *node
	data []byte
}

// LinkedList - Represents a doubly linked backing store bounded by a head and a tail sentinel.
// Every element lives in its own block obtained from the allocator, and the block is returned
// to the allocator as soon as its node leaves the list.
type LinkedList struct {
	head        *node
	tail        *node
	size        int64
	elementSize int64
	allocator   alloc.Allocator
}

// NewLinkedList - Returns a pointer to a new, empty LinkedList
//   - elementSize is the fixed length of every element
//   - allocator is where element blocks are taken from
func NewLinkedList(elementSize int64, allocator alloc.Allocator) (linkedList *LinkedList, err error) {
	if elementSize <= 0 {
		err = errors.Errorf("element size must be a positive value higher than 0 (zero), got %d", elementSize)
		return
	}
	if allocator == nil {
		err = errors.New("an allocator must be given")
		return
	}

	head := &node{}
	tail := &node{}
	head.next = tail
	tail.prev = head

	linkedList = &LinkedList{
		head:        head,
		tail:        tail,
		elementSize: elementSize,
		allocator:   allocator,
	}

	return
}

// PushFront - Adds an element before the first one
func (L *LinkedList) PushFront(data []byte) (err error) {
	return L.insertAfter(L.head, data)
}

// PushBack - Adds an element after the last one
func (L *LinkedList) PushBack(data []byte) (err error) {
	return L.insertAfter(L.tail.prev, data)
}

// PopFront - Removes the first element and returns a copy of it
func (L *LinkedList) PopFront() (data []byte, err error) {
	if L.size == 0 {
		err = model.EmptyContainer{}
		return
	}

	data = L.unlink(L.head.next)

	return
}

// PopBack - Removes the last element and returns a copy of it
func (L *LinkedList) PopBack() (data []byte, err error) {
	if L.size == 0 {
		err = model.EmptyContainer{}
		return
	}

	data = L.unlink(L.tail.prev)

	return
}

// Insert - Inserts an element so that it ends up at index, index == size appends
func (L *LinkedList) Insert(data []byte, index int64) (err error) {
	err = storage.CheckInsertIndex(index, L.size)
	if err != nil {
		return
	}

	if index == L.size {
		return L.insertAfter(L.tail.prev, data)
	}

	return L.insertAfter(L.nodeAt(index).prev, data)
}

// Extract - Removes the element at index and returns a copy of it
func (L *LinkedList) Extract(index int64) (data []byte, err error) {
	err = storage.CheckIndex(index, L.size)
	if err != nil {
		return
	}

	data = L.unlink(L.nodeAt(index))

	return
}

// Replace - Overwrites the element at index
func (L *LinkedList) Replace(data []byte, index int64) (err error) {
	err = storage.CheckElement(data, L.elementSize)
	if err != nil {
		return
	}
	err = storage.CheckIndex(index, L.size)
	if err != nil {
		return
	}

	_ = copy(L.nodeAt(index).data, data)

	return
}

// At - Returns a copy of the element at index
func (L *LinkedList) At(index int64) (data []byte, err error) {
	err = storage.CheckIndex(index, L.size)
	if err != nil {
		return
	}

	n := L.nodeAt(index)
	data = utils.Clone(n.data)

	return
}

// Erase - Removes the element at index without returning it
func (L *LinkedList) Erase(index int64) (err error) {
	err = storage.CheckIndex(index, L.size)
	if err != nil {
		return
	}

	n := L.nodeAt(index)
	n.prev.next = n.next
	n.next.prev = n.prev
	L.freeNode(n)

	return
}

// Peek - Returns the element block of the node at index without copying it
func (L *LinkedList) Peek(index int64) (data []byte, err error) {
	err = storage.CheckIndex(index, L.size)
	if err != nil {
		return
	}

	data = L.nodeAt(index).data

	return
}

// Clear - Removes and frees every node, returns the new size
func (L *LinkedList) Clear() (size int64) {
	for n := L.head.next; n != L.tail; {
		next := n.next
		L.freeNode(n)
		n = next
	}

	L.head.next = L.tail
	L.tail.prev = L.head

	return L.size
}

// Size - Returns the number of elements in the list
func (L *LinkedList) Size() (size int64) {
	return L.size
}

// Capacity - A list has no preallocated room, capacity is always the current size
func (L *LinkedList) Capacity() (capacity int64) {
	return L.size
}

// Resize - Has no meaning for a list, each element is allocated on demand
func (L *LinkedList) Resize(capacity int64) (err error) {
	if capacity < L.size {
		err = errors.Wrapf(model.InvalidCapacity{}, "capacity %d is less than size %d", capacity, L.size)
	}

	return
}

// Destroy - Frees every node, the list must not be used afterwards
func (L *LinkedList) Destroy() {
	_ = L.Clear()
	L.head = nil
	L.tail = nil
}

// GetStorageParameters - Returns a struct with storage parameters from LinkedList
func (L *LinkedList) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		Kind:           "LinkedList",
		ElementSize:    L.elementSize,
		Size:           L.size,
		Capacity:       L.size,
		AllocatedBytes: L.size * L.elementSize,
	}

	return
}
