package alloc

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("module", "alloc")

// Pool - Allocator with a budget fixed at creation, both in number of bytes and in number of live blocks.
// It is the equivalent of building the containers in static mode: the total memory all containers using
// the pool may hold is bounded, and once the budget is spent every allocation fails until blocks are freed.
type Pool struct {
	maxBytes   int64
	maxBlocks  int64
	usedBytes  int64
	usedBlocks int64
}

// NewPool - Returns a pointer to a new Pool allocator
//   - maxBytes is the total number of bytes that may be live at the same time
//   - maxBlocks is the total number of blocks that may be live at the same time, 0 (zero) means no block limit
func NewPool(maxBytes, maxBlocks int64) (pool *Pool, err error) {
	if maxBytes <= 0 {
		err = errors.Errorf("maxBytes must be a positive value higher than 0 (zero), got %d", maxBytes)
		return
	}
	if maxBlocks < 0 {
		err = errors.Errorf("maxBlocks can not be negative, got %d", maxBlocks)
		return
	}

	pool = &Pool{maxBytes: maxBytes, maxBlocks: maxBlocks}

	return
}

// Alloc - Returns a zeroed block of exactly size bytes if the budget allows it
func (P *Pool) Alloc(size int64) (block []byte, err error) {
	if size < 0 {
		err = errors.Errorf("can not allocate a negative number of bytes (%d)", size)
		return
	}

	if P.usedBytes+size > P.maxBytes {
		logger.WithField("size", size).Debug("byte budget exhausted")
		err = errors.Wrapf(OutOfMemory{}, "%d bytes requested, %d of %d bytes in use", size, P.usedBytes, P.maxBytes)
		return
	}
	if P.maxBlocks > 0 && P.usedBlocks >= P.maxBlocks {
		logger.WithField("size", size).Debug("block budget exhausted")
		err = errors.Wrapf(OutOfMemory{}, "%d of %d blocks in use", P.usedBlocks, P.maxBlocks)
		return
	}

	block = make([]byte, size)
	P.usedBytes += size
	P.usedBlocks++

	return
}

// Free - Returns the block's size to the budget
func (P *Pool) Free(block []byte) {
	if block == nil {
		return
	}

	P.usedBytes -= int64(len(block))
	P.usedBlocks--
}

// Available - Returns the number of bytes that can still be allocated
func (P *Pool) Available() int64 {
	return P.maxBytes - P.usedBytes
}

// UsedBlocks - Returns the number of blocks currently live
func (P *Pool) UsedBlocks() int64 {
	return P.usedBlocks
}
