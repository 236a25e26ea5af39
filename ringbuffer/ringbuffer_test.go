//go:build unit

package ringbuffer

import (
	"github.com/Zamuhrishka/uglycontainers"
	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("creates empty buffer", func(t *testing.T) {
		// Execute
		rb, err := New(2, 4, false, nil)

		// Check
		assert.NoError(t, err, "creates buffer")
		assert.True(t, rb.IsEmpty(), "empty")
		assert.Equal(t, int64(4), rb.Capacity(), "capacity")
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		// Prepare
		pool, _ := alloc.NewPool(16, 0)

		// Execute
		_, errCapacity := New(2, 0, false, nil)
		_, errPool := New(2, 100, false, pool)

		// Check
		assert.Error(t, errCapacity, "zero capacity")
		assert.ErrorIs(t, errPool, alloc.OutOfMemory{}, "does not fit")
		assert.Zero(t, pool.UsedBlocks(), "nothing kept after failure")
	})
}

func TestNew_HugeCapacity(t *testing.T) {
	t.Run("capacity beyond the address space", func(t *testing.T) {
		// Execute
		rb, err := New(4, 1<<62, false, nil)

		// Check
		assert.ErrorIs(t, err, uglycontainers.InvalidCapacity{}, "refused")
		assert.Nil(t, rb, "no buffer")
	})
}

func TestRingBuffer(t *testing.T) {
	t.Run("wraps around", func(t *testing.T) {
		// Prepare
		rb, _ := New(1, 3, false, nil)
		assert.NoError(t, rb.Put([]byte{255}), "puts")

		// Execute and Check
		previous := byte(255)
		for round := byte(0); round < 10; round++ {
			assert.NoError(t, rb.Put([]byte{round}), "puts")
			assert.NoError(t, rb.Put([]byte{round + 100}), "puts")
			assert.True(t, rb.IsFull(), "full")

			data, err := rb.Get()
			assert.NoError(t, err, "gets")
			assert.Equal(t, []byte{previous}, data, "oldest first")
			data, err = rb.Get()
			assert.NoError(t, err, "gets")
			assert.Equal(t, []byte{round}, data, "in order")
			previous = round + 100
		}
		assert.Equal(t, int64(1), rb.Size(), "one element left")
	})

	t.Run("refuses when full", func(t *testing.T) {
		// Prepare
		rb, _ := New(1, 2, false, nil)
		_ = rb.Put([]byte{1})
		_ = rb.Put([]byte{2})

		// Execute
		err := rb.Put([]byte{3})

		// Check
		assert.True(t, rb.IsFull(), "full")
		assert.ErrorIs(t, err, uglycontainers.CapacityExhausted{}, "refused")
		data, _ := rb.Peek()
		assert.Equal(t, []byte{1}, data, "oldest kept")
	})

	t.Run("overwrite drops the oldest", func(t *testing.T) {
		// Prepare
		rb, _ := New(1, 3, true, nil)

		// Execute
		for i := byte(1); i <= 5; i++ {
			assert.NoError(t, rb.Put([]byte{i}), "puts")
		}

		// Check
		assert.Equal(t, int64(3), rb.Size(), "size is capacity")
		for _, expected := range []byte{3, 4, 5} {
			data, err := rb.Get()
			assert.NoError(t, err, "gets")
			assert.Equal(t, []byte{expected}, data, "newest kept in order")
		}
		_, err := rb.Get()
		assert.ErrorIs(t, err, uglycontainers.EmptyContainer{}, "empty")
	})

	t.Run("wrong element length", func(t *testing.T) {
		// Prepare
		rb, _ := New(2, 2, false, nil)

		// Execute
		err := rb.Put([]byte{1})

		// Check
		assert.ErrorIs(t, err, uglycontainers.WrongElementLength{}, "refused")
		assert.True(t, rb.IsEmpty(), "nothing stored")
	})

	t.Run("reset and delete", func(t *testing.T) {
		// Prepare
		heap := alloc.NewHeap()
		rb, _ := New(1, 4, false, heap)
		_ = rb.Put([]byte{1})
		_ = rb.Put([]byte{2})

		// Execute
		rb.Reset()
		emptyAfterReset := rb.IsEmpty()
		_ = rb.Put([]byte{7})
		data, _ := rb.Peek()
		rb.Delete()

		// Check
		assert.True(t, emptyAfterReset, "empty after reset")
		assert.Equal(t, []byte{7}, data, "usable after reset")
		assert.Zero(t, heap.LiveBlocks(), "storage returned")
	})
}
