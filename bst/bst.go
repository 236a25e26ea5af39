// Package bst provides an unbalanced binary search tree of fixed size byte elements on top of a container.
// Every node is one container element holding the key followed by the indexes of its left and right child.
// Removed nodes are chained into a free list and reused by later inserts, so the container only grows when
// the tree holds more keys than it ever did before.
package bst

import (
	"encoding/binary"

	"github.com/Zamuhrishka/uglycontainers"
	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/pkg/errors"
)

// noNode - Child index of a missing child and index of an empty tree's root
const noNode int64 = -1

// linkBytes - Size of one child index in a node
const linkBytes int64 = 8

// CompareFunc - Orders two keys, returns a negative number if a sorts before b, 0 (zero) if they are the
// same key and a positive number if a sorts after b. Both slices are ElementSize long.
type CompareFunc func(a, b []byte) int

// BST - The main implementation struct
type BST struct {
	nodes       *uglycontainers.Container
	compare     CompareFunc
	elementSize int64
	root        int64
	free        int64
	size        int64
}

// node - A decoded tree node
type node struct {
	key   []byte
	left  int64
	right int64
}

// New - Returns a new, empty tree
//   - elementSize is the length in bytes of every key
//   - compare orders the keys, it must not be nil
//   - kind selects the backing store of the node container, VectorBased gives O(1) node access
//   - allocator is where node storage is taken from, if nil a new alloc.Heap is used
func New(elementSize int64, compare CompareFunc, kind uglycontainers.Kind, allocator alloc.Allocator) (tree *BST, err error) {
	if compare == nil {
		err = errors.New("a compare function must be given")
		return
	}
	if elementSize <= 0 {
		err = errors.Errorf("element size must be a positive value higher than 0 (zero), got %d", elementSize)
		return
	}

	nodes, err := uglycontainers.New(elementSize+2*linkBytes, kind, allocator)
	if err != nil {
		return
	}

	tree = &BST{
		nodes:       nodes,
		compare:     compare,
		elementSize: elementSize,
		root:        noNode,
		free:        noNode,
	}

	return
}

// Insert - Adds a copy of key to the tree. Inserting a key that is already present changes nothing.
//
// It returns:
//   - err is of type uglycontainers.WrongElementLength, uglycontainers.ContainerDeleted, or a standard
//     error if allocation failed
func (B *BST) Insert(key []byte) (err error) {
	if err = B.checkKey(key); err != nil {
		return
	}

	if B.root == noNode {
		B.root, err = B.newNode(key)
		if err == nil {
			B.size++
		}
		return
	}

	var n node
	var index int64
	current := B.root
	for {
		n, err = B.readNode(current)
		if err != nil {
			return
		}

		c := B.compare(key, n.key)
		if c == 0 {
			return
		}

		next := n.right
		if c < 0 {
			next = n.left
		}
		if next != noNode {
			current = next
			continue
		}

		index, err = B.newNode(key)
		if err != nil {
			return
		}
		if c < 0 {
			n.left = index
		} else {
			n.right = index
		}
		err = B.writeNode(current, n)
		if err != nil {
			return
		}
		B.size++

		return
	}
}

// Contains - Returns true if key is in the tree
func (B *BST) Contains(key []byte) (exists bool, err error) {
	if err = B.checkKey(key); err != nil {
		return
	}

	index, _, err := B.find(key)
	exists = index != noNode

	return
}

// Remove - Removes key from the tree.
//
// It returns:
//   - err is of type uglycontainers.ElementNotFound if the key is not in the tree,
//     uglycontainers.WrongElementLength, or uglycontainers.ContainerDeleted
func (B *BST) Remove(key []byte) (err error) {
	if err = B.checkKey(key); err != nil {
		return
	}

	index, parent, err := B.find(key)
	if err != nil {
		return
	}
	if index == noNode {
		err = uglycontainers.ElementNotFound{}
		return
	}

	n, err := B.readNode(index)
	if err != nil {
		return
	}

	// Two children: the in-order successor's key moves up and the successor node is unlinked instead
	if n.left != noNode && n.right != noNode {
		successorParent := index
		successor := n.right
		var s node
		for {
			s, err = B.readNode(successor)
			if err != nil {
				return
			}
			if s.left == noNode {
				break
			}
			successorParent = successor
			successor = s.left
		}

		n.key = s.key
		if successorParent == index {
			n.right = s.right
		}
		err = B.writeNode(index, n)
		if err != nil {
			return
		}

		if successorParent != index {
			err = B.relink(successorParent, successor, s.right)
			if err != nil {
				return
			}
		}

		err = B.releaseNode(successor)
		if err != nil {
			return
		}
		B.size--

		return
	}

	child := n.left
	if child == noNode {
		child = n.right
	}
	err = B.relink(parent, index, child)
	if err != nil {
		return
	}

	err = B.releaseNode(index)
	if err != nil {
		return
	}
	B.size--

	return
}

// Min - Returns a copy of the smallest key, uglycontainers.EmptyContainer if the tree is empty
func (B *BST) Min() (key []byte, err error) {
	return B.edge(func(n node) int64 { return n.left })
}

// Max - Returns a copy of the biggest key, uglycontainers.EmptyContainer if the tree is empty
func (B *BST) Max() (key []byte, err error) {
	return B.edge(func(n node) int64 { return n.right })
}

// Range - Calls fn with a copy of every key in ascending order until fn returns false
func (B *BST) Range(fn func(key []byte) bool) (err error) {
	var n node
	stack := make([]int64, 0, 32)
	current := B.root

	for current != noNode || len(stack) > 0 {
		for current != noNode {
			stack = append(stack, current)
			n, err = B.readNode(current)
			if err != nil {
				return
			}
			current = n.left
		}

		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, err = B.readNode(current)
		if err != nil {
			return
		}
		if !fn(n.key) {
			return
		}
		current = n.right
	}

	return
}

// Size - Returns the number of keys in the tree
func (B *BST) Size() int64 {
	return B.size
}

// IsEmpty - Returns true if the tree holds no keys
func (B *BST) IsEmpty() bool {
	return B.size == 0
}

// Clear - Removes every key, node storage is kept or freed as the backing store does on Clear
func (B *BST) Clear() {
	_ = B.nodes.Clear()
	B.root = noNode
	B.free = noNode
	B.size = 0
}

// Delete - Returns all node storage to the allocator, the tree must not be used afterwards
func (B *BST) Delete() {
	B.nodes.Delete()
	B.root = noNode
	B.free = noNode
	B.size = 0
}

// checkKey - Returns an error of type uglycontainers.WrongElementLength if key is not ElementSize long
func (B *BST) checkKey(key []byte) (err error) {
	if int64(len(key)) != B.elementSize {
		err = errors.Wrapf(uglycontainers.WrongElementLength{}, "wrong length of key, should be %d", B.elementSize)
	}

	return
}

// find - Returns the index of the node holding key and the index of its parent, noNode if absent
func (B *BST) find(key []byte) (index, parent int64, err error) {
	var n node
	index, parent = B.root, noNode

	for index != noNode {
		n, err = B.readNode(index)
		if err != nil {
			return
		}

		c := B.compare(key, n.key)
		if c == 0 {
			return
		}

		parent = index
		if c < 0 {
			index = n.left
		} else {
			index = n.right
		}
	}

	return
}

// edge - Follows next from the root for as long as there is a child and returns the last key
func (B *BST) edge(next func(n node) int64) (key []byte, err error) {
	if B.root == noNode {
		err = uglycontainers.EmptyContainer{}
		return
	}

	var n node
	for current := B.root; current != noNode; current = next(n) {
		n, err = B.readNode(current)
		if err != nil {
			return
		}
	}
	key = n.key

	return
}

// relink - Points the link of parent that leads to old at replacement instead, a parent of noNode means the root
func (B *BST) relink(parent, old, replacement int64) (err error) {
	if parent == noNode {
		B.root = replacement
		return
	}

	p, err := B.readNode(parent)
	if err != nil {
		return
	}
	if p.left == old {
		p.left = replacement
	} else {
		p.right = replacement
	}

	return B.writeNode(parent, p)
}

// newNode - Stores key in a leaf node, reusing a released node if there is one
func (B *BST) newNode(key []byte) (index int64, err error) {
	leaf := node{key: key, left: noNode, right: noNode}

	if B.free == noNode {
		err = B.nodes.PushBack(B.encode(leaf))
		if err != nil {
			return
		}
		index = B.nodes.Size() - 1
		return
	}

	released, err := B.readNode(B.free)
	if err != nil {
		return
	}
	index = B.free
	err = B.writeNode(index, leaf)
	if err != nil {
		return
	}
	B.free = released.left

	return
}

// releaseNode - Zeroes the node and puts it first in the free list, chained through its left link
func (B *BST) releaseNode(index int64) (err error) {
	err = B.writeNode(index, node{key: make([]byte, B.elementSize), left: B.free, right: noNode})
	if err != nil {
		return
	}
	B.free = index

	return
}

// readNode - Decodes the node at index
func (B *BST) readNode(index int64) (n node, err error) {
	data, err := B.nodes.At(index)
	if err != nil {
		err = errors.Wrapf(err, "error while reading node %d", index)
		return
	}

	n.key = data[:B.elementSize]
	n.left = int64(binary.LittleEndian.Uint64(data[B.elementSize:]))
	n.right = int64(binary.LittleEndian.Uint64(data[B.elementSize+linkBytes:]))

	return
}

// writeNode - Encodes n into the node at index
func (B *BST) writeNode(index int64, n node) (err error) {
	err = B.nodes.Replace(B.encode(n), index)
	if err != nil {
		err = errors.Wrapf(err, "error while writing node %d", index)
	}

	return
}

// encode - Returns the container element for n
func (B *BST) encode(n node) (data []byte) {
	data = make([]byte, B.elementSize+2*linkBytes)
	_ = copy(data, n.key)
	binary.LittleEndian.PutUint64(data[B.elementSize:], uint64(n.left))
	binary.LittleEndian.PutUint64(data[B.elementSize+linkBytes:], uint64(n.right))

	return
}
