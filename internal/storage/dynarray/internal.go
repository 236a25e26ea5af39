package dynarray

import (
	"github.com/Zamuhrishka/uglycontainers/internal/model"
	"github.com/Zamuhrishka/uglycontainers/internal/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// slot - Returns the part of the buffer that holds the element at index
func (D *DynArray) slot(index int64) []byte {
	start := index * D.elementSize
	return D.buffer[start : start+D.elementSize]
}

// remove - Shifts the tail one element to the left over index and zeroes the vacated last element
func (D *DynArray) remove(index int64) {
	start := index * D.elementSize
	end := D.size * D.elementSize
	_ = copy(D.buffer[start:end-D.elementSize], D.buffer[start+D.elementSize:end])
	clear(D.buffer[end-D.elementSize : end])
	D.size--
}

// reallocate - Moves the elements to a new buffer with room for capacity elements.
// The old buffer is only freed once the new one is in place, so a failed allocation leaves the array as it was.
func (D *DynArray) reallocate(capacity int64) (err error) {
	if !utils.MulFits(D.elementSize, capacity) {
		err = errors.Wrapf(model.InvalidCapacity{}, "%d elements of %d bytes exceed the addressable size", capacity, D.elementSize)
		return
	}

	buffer, err := D.allocator.Alloc(capacity * D.elementSize)
	if err != nil {
		logger.WithError(err).WithField("capacity", capacity).Debug("buffer allocation failed")
		err = errors.Wrapf(err, "error while growing buffer to %d elements", capacity)
		return
	}

	logger.WithFields(logrus.Fields{"from": D.capacity, "to": capacity}).Debug("reallocating buffer")

	_ = copy(buffer, D.buffer[:D.size*D.elementSize])
	D.allocator.Free(D.buffer)
	D.buffer = buffer
	D.capacity = capacity

	return
}
