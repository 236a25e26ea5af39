package hashset

import (
	"github.com/Zamuhrishka/uglycontainers"
	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/Zamuhrishka/uglycontainers/internal/model"
	"github.com/pkg/errors"
)

// probeLimitFactor - Bounds the number of ProbeIteration calls to maxSize times this factor.
// Only out of range values from a misbehaving custom algorithm can make the loop get near it.
const probeLimitFactor int64 = 10

// newSlotVector - Creates the vector based container holding maxSize empty slots of slotSize bytes.
// On failure everything allocated so far is given back.
func newSlotVector(slotSize, maxSize int64, allocator alloc.Allocator) (slots *uglycontainers.Container, err error) {
	slots, err = uglycontainers.New(slotSize, uglycontainers.VectorBased, allocator)
	if err != nil {
		err = errors.Wrap(err, "error while creating slot vector")
		return
	}

	err = slots.Resize(maxSize)
	if err != nil {
		slots.Delete()
		slots = nil
		err = errors.Wrapf(err, "error while reserving %d slots", maxSize)
		return
	}

	empty := make([]byte, slotSize)
	for i := int64(0); i < maxSize; i++ {
		err = slots.PushBack(empty)
		if err != nil {
			slots.Delete()
			slots = nil
			err = errors.Wrapf(err, "error while initializing slot %d", i)
			return
		}
	}

	return
}

// checkKey - Returns an error of type model.WrongElementLength if key is not ElementSize long
func (H *HashSet) checkKey(key []byte) (err error) {
	if int64(len(key)) != H.elementSize {
		err = errors.Wrapf(model.WrongElementLength{}, "wrong length of key, should be %d", H.elementSize)
	}

	return
}

// setSlot - Writes key and state into the slot at index
func (H *HashSet) setSlot(index int64, key []byte, state uint8) (err error) {
	buf := make([]byte, H.slotSize)
	_ = copy(buf, key)
	buf[H.elementSize] = state

	return H.slots.Replace(buf, index)
}

// probing - Is the Probing Collision Resolution Technique algorithm shared by insert, remove and contains.
// It walks the probe sequence of key until the key is found, a never used slot is reached or maxSize
// slots have been examined.
//
// It returns:
//   - found is the index of the busy slot holding key, or -1
//   - candidate is the index an insert should use: the first released slot on the sequence, else the
//     never used slot that ended it, else -1
//   - err is a standard error, if something went wrong
func (H *HashSet) probing(key []byte) (found, candidate int64, err error) {
	found, candidate = -1, -1

	var ref uglycontainers.Ref
	var slot []byte
	var probe, n int64

	hf1Value := H.hashAlgorithm.HashFunc1(key)
	hf2Value := H.hashAlgorithm.HashFunc2(key)

	defer func() { H.recordProbe(n) }()

	iMax := H.maxSize * probeLimitFactor // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax && n < H.maxSize; i++ {
		probe = H.hashAlgorithm.ProbeIteration(key, hf1Value, hf2Value, i)
		if probe < 0 || probe >= H.maxSize {
			continue
		}
		n++

		ref, err = H.slots.Peek(probe)
		if err != nil {
			err = errors.Wrapf(err, "error while reading slot %d", probe)
			return
		}
		slot, err = ref.Bytes()
		if err != nil {
			return
		}

		switch slot[H.elementSize] {
		case model.SlotEmpty:
			if candidate < 0 {
				candidate = probe
			}
			return

		case model.SlotBusy:
			if H.equal(key, slot[:H.elementSize]) {
				found = probe
				return
			}

		case model.SlotFree:
			if candidate < 0 {
				candidate = probe
			}
		}
	}

	return
}

// recordProbe - Adds a probe sequence of n examined slots to the statistics
func (H *HashSet) recordProbe(n int64) {
	H.stats.Operations++
	H.stats.TotalProbes += n
	H.stats.LastProbe = n
	if n > H.stats.LongestProbe {
		H.stats.LongestProbe = n
	}
}
