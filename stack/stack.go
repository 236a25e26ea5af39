// Package stack provides a last in, first out stack of fixed size byte elements on top of a container.
package stack

import (
	"github.com/Zamuhrishka/uglycontainers"
	"github.com/Zamuhrishka/uglycontainers/alloc"
)

// Stack - The main implementation struct, the top of the stack is the back of the container
type Stack struct {
	elements *uglycontainers.Container
}

// New - Returns a new, empty stack
//   - elementSize is the length in bytes of every element
//   - kind selects the backing store of the underlying container
//   - allocator is where element storage is taken from, if nil a new alloc.Heap is used
func New(elementSize int64, kind uglycontainers.Kind, allocator alloc.Allocator) (stack *Stack, err error) {
	elements, err := uglycontainers.New(elementSize, kind, allocator)
	if err != nil {
		return
	}

	stack = &Stack{elements: elements}

	return
}

// Push - Puts a copy of data on top of the stack
func (S *Stack) Push(data []byte) (err error) {
	return S.elements.PushBack(data)
}

// Pop - Removes the top element and returns it, uglycontainers.EmptyContainer if there is none
func (S *Stack) Pop() (data []byte, err error) {
	return S.elements.PopBack()
}

// Top - Returns a copy of the top element without removing it
func (S *Stack) Top() (data []byte, err error) {
	return S.elements.At(S.elements.Size() - 1)
}

// Size - Returns the number of elements on the stack
func (S *Stack) Size() int64 {
	return S.elements.Size()
}

// IsEmpty - Returns true if the stack holds no elements
func (S *Stack) IsEmpty() bool {
	return S.elements.IsEmpty()
}

// Clear - Removes every element
func (S *Stack) Clear() {
	_ = S.elements.Clear()
}

// Delete - Returns all storage to the allocator, the stack must not be used afterwards
func (S *Stack) Delete() {
	S.elements.Delete()
}
