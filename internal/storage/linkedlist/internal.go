package linkedlist

import (
	"github.com/Zamuhrishka/uglycontainers/internal/storage"
	"github.com/Zamuhrishka/uglycontainers/internal/utils"
	"github.com/pkg/errors"
)

// insertAfter - Allocates a node holding a copy of data and splices it in after prev
func (L *LinkedList) insertAfter(prev *node, data []byte) (err error) {
	err = storage.CheckElement(data, L.elementSize)
	if err != nil {
		return
	}

	block, err := L.allocator.Alloc(L.elementSize)
	if err != nil {
		logger.WithError(err).Debug("node allocation failed")
		err = errors.Wrap(err, "error while allocating list node")
		return
	}
	_ = copy(block, data)

	n := &node{prev: prev, next: prev.next, data: block}
	prev.next.prev = n
	prev.next = n
	L.size++

	return
}

// unlink - Takes n out of the list, frees it and returns a copy of its element
func (L *LinkedList) unlink(n *node) (data []byte) {
	n.prev.next = n.next
	n.next.prev = n.prev

	data = utils.Clone(n.data)
	L.freeNode(n)

	return
}

// freeNode - Returns the node's element block to the allocator, n must already be out of the list
func (L *LinkedList) freeNode(n *node) {
	L.allocator.Free(n.data)
	n.data = nil
	n.prev = nil
	n.next = nil
	L.size--
}

// nodeAt - Returns the node at index, walking from whichever end is nearer.
// The index must already be validated.
func (L *LinkedList) nodeAt(index int64) (n *node) {
	if index < L.size/2 {
		n = L.head.next
		for i := int64(0); i < index; i++ {
			n = n.next
		}
		return
	}

	n = L.tail.prev
	for i := L.size - 1; i > index; i-- {
		n = n.prev
	}

	return
}
