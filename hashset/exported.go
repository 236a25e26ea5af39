// Package hashset provides a set of fixed size byte keys with a capacity fixed at creation. Keys live in
// slots of a vector based container, located with open addressing. The table is kept bigger than the
// capacity by a headroom of 30% so that probe sequences stay short, and the set refuses keys beyond its
// capacity rather than growing.
package hashset

import (
	"math"

	"github.com/Zamuhrishka/uglycontainers"
	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/Zamuhrishka/uglycontainers/crt"
	"github.com/Zamuhrishka/uglycontainers/hashfunc"
	"github.com/Zamuhrishka/uglycontainers/internal/conf"
	"github.com/Zamuhrishka/uglycontainers/internal/hash"
	"github.com/Zamuhrishka/uglycontainers/internal/model"
	"github.com/Zamuhrishka/uglycontainers/internal/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("module", "hashset")

// EqualFunc - Decides whether two keys are the same key. Both slices are ElementSize long.
type EqualFunc func(a, b []byte) bool

// Conf - Is a struct to be passed in the call to New and contains the configuration of the hash set.
//   - Capacity is the max number of keys the set will hold
//   - ElementSize is the fixed length of keys
//   - Equal is the key comparison, if nil keys are compared byte by byte
//   - CollisionResolutionTechnique is one of the crt constants, crt.SeedPerturbation if not set
//   - HashAlgorithm is an optional custom algorithm, if nil the internal one for the technique is used
//   - Seed is the murmur3 seed for internal algorithms, 0 (zero) selects a default seed
//   - Allocator is where slot storage is taken from, if nil a new alloc.Heap is used
type Conf struct {
	Capacity                     int64
	ElementSize                  int64
	Equal                        EqualFunc
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
	Seed                         uint32
	Allocator                    alloc.Allocator
}

// HashSetInfo - Information structure containing some information about the hash set created
//   - Capacity is the number of keys the set accepts
//   - MaxSize is the number of slots in the table, capacity plus headroom (possibly rounded by the algorithm)
//   - SlotSize is the number of bytes per slot, key plus state flag
//   - CollisionResolutionTechnique is the technique in use
//   - InternalAlgorithm is true if no custom hash algorithm was given
type HashSetInfo struct {
	Capacity                     int64
	MaxSize                      int64
	SlotSize                     int64
	CollisionResolutionTechnique int
	InternalAlgorithm            bool
}

// Stats - Probe statistics since creation or the last ResetStats
//   - Operations is the number of probe sequences run (insert, remove and contains each run one)
//   - TotalProbes is the number of slots examined in all of them
//   - LongestProbe is the number of slots examined in the longest one
//   - LastProbe is the number of slots examined in the latest one
type Stats struct {
	Operations   int64
	TotalProbes  int64
	LongestProbe int64
	LastProbe    int64
}

// HashSet - The main implementation struct
type HashSet struct {
	slots                        *uglycontainers.Container
	capacity                     int64
	maxSize                      int64
	elementSize                  int64
	slotSize                     int64
	size                         int64
	equal                        EqualFunc
	hashAlgorithm                hashfunc.HashAlgorithm
	internalAlgorithm            bool
	collisionResolutionTechnique int
	stats                        Stats
}

// New - Returns a new, empty hash set.
//   - hsConf is a Conf struct with the configuration of the set
//
// It returns:
//   - hashSet is a pointer to the created HashSet
//   - hashSetInfo is a HashSetInfo struct describing the table that was created
//   - err is a standard error, if something went wrong
func New(hsConf Conf) (hashSet *HashSet, hashSetInfo HashSetInfo, err error) {
	if hsConf.Capacity <= 0 {
		err = errors.New("capacity must be a positive value higher than 0 (zero)")
		return
	}
	if hsConf.ElementSize <= 0 {
		err = errors.New("element size must be a positive value higher than 0 (zero)")
		return
	}

	if hsConf.Equal == nil {
		hsConf.Equal = utils.IsEqual
	}
	if hsConf.Seed == 0 {
		hsConf.Seed = conf.DefaultSeed
	}

	// Algorithms may round the table up to at most twice the requested size
	tableSize := utils.WithHeadroom(hsConf.Capacity, conf.HeadroomPercent)
	if tableSize < 0 || hsConf.ElementSize > math.MaxInt64/4 ||
		!utils.MulFits(2*(hsConf.ElementSize+conf.InUseFlagBytes), tableSize) {
		err = errors.Wrapf(model.InvalidCapacity{}, "capacity %d of %d byte keys exceeds the addressable size",
			hsConf.Capacity, hsConf.ElementSize)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hsConf.HashAlgorithm == nil {
		hsConf.HashAlgorithm, err = hash.New(hsConf.CollisionResolutionTechnique, tableSize, hsConf.Seed)
		if err != nil {
			return
		}
		internalAlg = true
	} else {
		hsConf.HashAlgorithm.SetTableSize(tableSize)
	}

	maxSize := hsConf.HashAlgorithm.GetTableSize()
	if maxSize <= hsConf.Capacity {
		err = errors.Errorf("hash algorithm table size %d leaves no headroom over capacity %d", maxSize, hsConf.Capacity)
		return
	}

	slotSize := hsConf.ElementSize + conf.InUseFlagBytes
	slots, err := newSlotVector(slotSize, maxSize, hsConf.Allocator)
	if err != nil {
		return
	}

	hashSet = &HashSet{
		slots:                        slots,
		capacity:                     hsConf.Capacity,
		maxSize:                      maxSize,
		elementSize:                  hsConf.ElementSize,
		slotSize:                     slotSize,
		equal:                        hsConf.Equal,
		hashAlgorithm:                hsConf.HashAlgorithm,
		internalAlgorithm:            internalAlg,
		collisionResolutionTechnique: hsConf.CollisionResolutionTechnique,
	}

	hashSetInfo = hashSet.GetInfo()

	return
}

// Delete - Returns all slot storage to the allocator, the set must not be used afterwards
func (H *HashSet) Delete() {
	H.slots.Delete()
	H.size = 0
}

// GetInfo - Returns a HashSetInfo struct describing the table
func (H *HashSet) GetInfo() (hashSetInfo HashSetInfo) {
	hashSetInfo = HashSetInfo{
		Capacity:                     H.capacity,
		MaxSize:                      H.maxSize,
		SlotSize:                     H.slotSize,
		CollisionResolutionTechnique: H.collisionResolutionTechnique,
		InternalAlgorithm:            H.internalAlgorithm,
	}

	return
}

// Insert - Adds key to the set. Inserting a key that is already present changes nothing and is not an error.
//   - key is the key to add, it has to be of same length as given in Conf.ElementSize
//
// It returns:
//   - err is of type crt.SetFull if the set is at capacity, crt.ProbingExhausted if the probe sequence
//     ended without a usable slot, or a standard error
func (H *HashSet) Insert(key []byte) (err error) {
	if err = H.checkKey(key); err != nil {
		return
	}

	if H.IsFull() {
		logger.WithField("size", H.size).Debug("insert into full set")
		err = crt.SetFull{}
		return
	}

	found, candidate, err := H.probing(key)
	if err != nil {
		return
	}
	if found >= 0 {
		return
	}
	if candidate < 0 {
		logger.WithField("probes", H.stats.LastProbe).Debug("no free slot on probe sequence")
		err = crt.ProbingExhausted{}
		return
	}

	err = H.setSlot(candidate, key, model.SlotBusy)
	if err != nil {
		err = errors.Wrap(err, "error while writing slot")
		return
	}
	H.size++

	return
}

// Remove - Removes key from the set, its slot is released for later inserts.
//   - key is the key to remove, it has to be of same length as given in Conf.ElementSize
//
// It returns:
//   - err is of type crt.KeyNotFound if the key is not in the set, or a standard error
func (H *HashSet) Remove(key []byte) (err error) {
	if err = H.checkKey(key); err != nil {
		return
	}

	if H.size == 0 {
		err = crt.KeyNotFound{}
		return
	}

	found, _, err := H.probing(key)
	if err != nil {
		return
	}
	if found < 0 {
		err = crt.KeyNotFound{}
		return
	}

	err = H.setSlot(found, make([]byte, H.elementSize), model.SlotFree)
	if err != nil {
		err = errors.Wrap(err, "error while releasing slot")
		return
	}
	H.size--

	return
}

// Contains - Returns true if key is in the set
//   - key is the key to look for, it has to be of same length as given in Conf.ElementSize
//
// It returns:
//   - exists is true if the key is in the set
//   - err is a standard error, if something went wrong
func (H *HashSet) Contains(key []byte) (exists bool, err error) {
	if err = H.checkKey(key); err != nil {
		return
	}

	if H.size == 0 {
		return
	}

	found, _, err := H.probing(key)
	if err != nil {
		return
	}
	exists = found >= 0

	return
}

// Size - Returns the number of keys in the set
func (H *HashSet) Size() int64 {
	return H.size
}

// Capacity - Returns the max number of keys the set accepts
func (H *HashSet) Capacity() int64 {
	return H.capacity
}

// IsFull - Returns true if the set holds Capacity keys, leaving only the headroom unused
func (H *HashSet) IsFull() bool {
	return H.size >= H.capacity
}

// IsEmpty - Returns true if the set holds no keys
func (H *HashSet) IsEmpty() bool {
	return H.size == 0
}

// Clear - Removes every key and marks every slot as never used
func (H *HashSet) Clear() (err error) {
	empty := make([]byte, H.slotSize)
	for i := int64(0); i < H.maxSize; i++ {
		err = H.slots.Replace(empty, i)
		if err != nil {
			err = errors.Wrapf(err, "error while clearing slot %d", i)
			return
		}
	}
	H.size = 0

	return
}

// Range - Calls fn with a copy of every key in the set, in slot order, until fn returns false
func (H *HashSet) Range(fn func(key []byte) bool) (err error) {
	var slot []byte
	for i := int64(0); i < H.maxSize; i++ {
		slot, err = H.slots.At(i)
		if err != nil {
			return
		}
		if slot[H.elementSize] != model.SlotBusy {
			continue
		}
		if !fn(slot[:H.elementSize]) {
			return
		}
	}

	return
}

// GetStats - Returns the probe statistics
func (H *HashSet) GetStats() Stats {
	return H.stats
}

// ResetStats - Zeroes the probe statistics
func (H *HashSet) ResetStats() {
	H.stats = Stats{}
}
