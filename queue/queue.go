// Package queue provides a first in, first out queue of fixed size byte elements on top of a container.
// A queue is either fixed, refusing elements beyond its capacity, or dynamic and only limited by its
// allocator.
package queue

import (
	"github.com/Zamuhrishka/uglycontainers"
	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/pkg/errors"
)

// Queue - The main implementation struct, elements enter at the back of the container and leave at the front
type Queue struct {
	elements *uglycontainers.Container
	capacity int64
}

// New - Returns a new, empty queue
//   - elementSize is the length in bytes of every element
//   - capacity is the max number of elements, 0 (zero) makes the queue dynamic
//   - kind selects the backing store of the underlying container
//   - allocator is where element storage is taken from, if nil a new alloc.Heap is used
func New(elementSize, capacity int64, kind uglycontainers.Kind, allocator alloc.Allocator) (queue *Queue, err error) {
	if capacity < 0 {
		err = errors.Errorf("capacity can not be negative, got %d", capacity)
		return
	}

	elements, err := uglycontainers.New(elementSize, kind, allocator)
	if err != nil {
		return
	}

	if capacity > 0 {
		err = elements.Resize(capacity)
		if err != nil {
			elements.Delete()
			err = errors.Wrapf(err, "error while reserving room for %d elements", capacity)
			return
		}
	}

	queue = &Queue{elements: elements, capacity: capacity}

	return
}

// Enqueue - Adds a copy of data at the back of the queue.
// A fixed queue that is full returns uglycontainers.CapacityExhausted and is left unchanged.
func (Q *Queue) Enqueue(data []byte) (err error) {
	if Q.IsFull() {
		err = errors.Wrapf(uglycontainers.CapacityExhausted{}, "queue holds %d elements", Q.capacity)
		return
	}

	return Q.elements.PushBack(data)
}

// Dequeue - Removes the front element and returns it, uglycontainers.EmptyContainer if there is none
func (Q *Queue) Dequeue() (data []byte, err error) {
	return Q.elements.PopFront()
}

// Front - Returns a copy of the front element without removing it
func (Q *Queue) Front() (data []byte, err error) {
	return Q.elements.At(0)
}

// Size - Returns the number of elements in the queue
func (Q *Queue) Size() int64 {
	return Q.elements.Size()
}

// Capacity - Returns the max number of elements, 0 (zero) for a dynamic queue
func (Q *Queue) Capacity() int64 {
	return Q.capacity
}

// IsFull - Returns true if a fixed queue holds capacity elements, a dynamic queue is never full
func (Q *Queue) IsFull() bool {
	return Q.capacity > 0 && Q.elements.Size() >= Q.capacity
}

// IsEmpty - Returns true if the queue holds no elements
func (Q *Queue) IsEmpty() bool {
	return Q.elements.IsEmpty()
}

// Clear - Removes every element
func (Q *Queue) Clear() {
	_ = Q.elements.Clear()
}

// Delete - Returns all storage to the allocator, the queue must not be used afterwards
func (Q *Queue) Delete() {
	Q.elements.Delete()
}
