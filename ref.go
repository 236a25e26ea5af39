package uglycontainers

import (
	"github.com/Zamuhrishka/uglycontainers/internal/model"
	"github.com/pkg/errors"
)

// Ref - A handle to an element that is resolved against the backing store every time it is read.
// A Ref outlives any layout change of its container (push, pop, insert, extract, erase, clear, reallocating resize,
// delete) only as a stale handle: reading it then fails with StaleReference instead of giving access
// to memory the container no longer uses for that element.
type Ref struct {
	container  *Container
	index      int64
	generation uint64
}

// Peek - Returns a Ref to the element at index without copying it.
//
// It returns:
//   - ref is the handle to the element
//   - err is of type IndexOutOfRange, EmptyContainer or ContainerDeleted
func (C *Container) Peek(index int64) (ref Ref, err error) {
	if err = C.checkAlive(); err != nil {
		return
	}

	_, err = C.core.Peek(index)
	if err != nil {
		return
	}

	ref = Ref{container: C, index: index, generation: C.generation}

	return
}

// Index - Returns the index the Ref was taken at
func (R Ref) Index() int64 {
	return R.index
}

// Valid - Returns true if the container layout has not changed since the Ref was taken
func (R Ref) Valid() bool {
	return R.container != nil && R.container.core != nil && R.container.generation == R.generation
}

// Bytes - Returns the element as a slice aliasing the backing store. Writes to the slice change the
// stored element. The slice must not be kept across a layout change of the container.
//
// It returns:
//   - data is the aliasing slice
//   - err is of type StaleReference if the layout changed since Peek
func (R Ref) Bytes() (data []byte, err error) {
	if !R.Valid() {
		err = errors.Wrapf(model.StaleReference{}, "reference to index %d", R.index)
		return
	}

	return R.container.core.Peek(R.index)
}
