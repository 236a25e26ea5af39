// Package alloc provides the memory allocators that containers obtain their
// element storage from. A container never allocates element storage on its
// own, it always goes through the Allocator given at construction.
//
// None of the allocators are safe for concurrent use.
package alloc

import (
	"github.com/pkg/errors"
)

// Allocator - Interface that permits a container to get its element storage from a custom source
type Allocator interface {
	// Alloc - Returns a zeroed block of exactly size bytes.
	// An error of type OutOfMemory is returned if the allocator can't serve the request.
	Alloc(size int64) (block []byte, err error)

	// Free - Returns a block previously obtained from Alloc to the allocator.
	// The caller must not use the block afterwards.
	Free(block []byte)
}

// OutOfMemory - Custom error to inform that an allocator could not serve a request
type OutOfMemory struct {
	msg string
}

// Error - Used to notify that an allocator is out of memory
func (E OutOfMemory) Error() string {
	if E.msg == "" {
		return "out of memory"
	}
	return E.msg
}

// Heap - Allocator backed by the Go runtime. It keeps track of the blocks handed out so that
// leaks are detectable.
type Heap struct {
	liveBlocks int64
	liveBytes  int64
}

// NewHeap - Returns a pointer to a new Heap allocator
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc - Returns a zeroed block of exactly size bytes
func (H *Heap) Alloc(size int64) (block []byte, err error) {
	if size < 0 {
		err = errors.Errorf("can not allocate a negative number of bytes (%d)", size)
		return
	}

	block, err = makeBlock(size)
	if err != nil {
		return
	}
	H.liveBlocks++
	H.liveBytes += size

	return
}

// Free - Releases a block, the Go runtime reclaims it once unreferenced
func (H *Heap) Free(block []byte) {
	if block == nil {
		return
	}

	H.liveBlocks--
	H.liveBytes -= int64(len(block))
}

// LiveBlocks - Returns the number of blocks handed out and not yet freed
func (H *Heap) LiveBlocks() int64 {
	return H.liveBlocks
}

// LiveBytes - Returns the number of bytes handed out and not yet freed
func (H *Heap) LiveBytes() int64 {
	return H.liveBytes
}

// makeBlock - Returns a zeroed block, a size beyond what the runtime can address gives OutOfMemory instead of a panic
func makeBlock(size int64) (block []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			block = nil
			err = errors.Wrapf(OutOfMemory{}, "%d bytes can not be addressed", size)
		}
	}()

	block = make([]byte, size)

	return
}
