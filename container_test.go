//go:build unit

package uglycontainers

import (
	"encoding/binary"
	"fmt"
	"github.com/Zamuhrishka/uglycontainers/alloc"
	"github.com/stretchr/testify/assert"
	"testing"
)

type TestCaseContainer struct {
	kindName string
	kind     Kind
}

var containerTests = []TestCaseContainer{
	{kindName: "LinkedListBased", kind: LinkedListBased},
	{kindName: "VectorBased", kind: VectorBased},
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestNew(t *testing.T) {
	t.Run("creates containers of every kind", func(t *testing.T) {
		for _, test := range containerTests {
			t.Run(fmt.Sprintf("new empty container for %s", test.kindName), func(t *testing.T) {
				// Execute
				c, err := New(4, test.kind, nil)

				// Check
				assert.NoError(t, err, "creates container")
				assert.Equal(t, test.kind, c.Kind(), "kind")
				assert.Equal(t, int64(4), c.ElementSize(), "element size")
				assert.Zero(t, c.Size(), "size")
				assert.True(t, c.IsEmpty(), "is empty")
				assert.Equal(t, test.kindName, c.Kind().String(), "kind name")
			})
		}
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		// Execute
		_, errSize := New(0, VectorBased, nil)
		_, errKind := New(4, Kind(7), nil)

		// Check
		assert.Error(t, errSize, "zero element size")
		assert.ErrorIs(t, errKind, UnknownKind{}, "unknown kind")
		assert.Equal(t, "Kind(7)", Kind(7).String(), "unknown kind name")
	})

	t.Run("allocation failure at creation", func(t *testing.T) {
		// Prepare
		pool, err := alloc.NewPool(8, 0)
		assert.NoError(t, err, "creates pool")

		// Execute
		_, err = New(4, VectorBased, pool)

		// Check
		assert.ErrorIs(t, err, alloc.OutOfMemory{}, "initial buffer does not fit")
	})
}

func TestContainer_Scenario(t *testing.T) {
	t.Run("push back then pop front for every kind", func(t *testing.T) {
		for _, test := range containerTests {
			t.Run(fmt.Sprintf("three uint32 values for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, err := New(4, test.kind, nil)
				assert.NoError(t, err, "creates container")

				// Execute
				assert.NoError(t, c.PushBack(u32(93274)), "push 93274")
				assert.NoError(t, c.PushBack(u32(11111)), "push 11111")
				assert.NoError(t, c.PushBack(u32(67793)), "push 67793")

				// Check
				assert.Equal(t, int64(3), c.Size(), "size after pushes")

				data, err := c.PopFront()
				assert.NoError(t, err, "pop front")
				assert.Equal(t, uint32(93274), binary.LittleEndian.Uint32(data), "first pushed comes first")
				assert.Equal(t, int64(2), c.Size(), "size after pop")

				data, err = c.At(0)
				assert.NoError(t, err, "at 0")
				assert.Equal(t, uint32(11111), binary.LittleEndian.Uint32(data), "second pushed is now first")
			})
		}
	})
}

func TestContainer_Operations(t *testing.T) {
	t.Run("operations for every kind", func(t *testing.T) {
		for _, test := range containerTests {
			t.Run(fmt.Sprintf("lifo at the back for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)

				// Execute
				for i := uint32(0); i < 100; i++ {
					assert.NoError(t, c.PushBack(u32(i)), "push back")
				}

				// Check
				for i := int32(99); i >= 0; i-- {
					data, err := c.PopBack()
					assert.NoError(t, err, "pop back")
					assert.Equal(t, u32(uint32(i)), data, "reverse order")
				}
				_, err := c.PopBack()
				assert.ErrorIs(t, err, EmptyContainer{}, "empty after all pops")
			})

			t.Run(fmt.Sprintf("fifo from the front for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)

				// Execute
				for i := uint32(0); i < 100; i++ {
					assert.NoError(t, c.PushFront(u32(i)), "push front")
				}

				// Check
				for i := uint32(0); i < 100; i++ {
					data, err := c.PopBack()
					assert.NoError(t, err, "pop back")
					assert.Equal(t, u32(i), data, "same order")
				}
			})

			t.Run(fmt.Sprintf("indexed access for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)
				for i := uint32(0); i < 10; i++ {
					assert.NoError(t, c.PushBack(u32(i)), "push back")
				}

				// Execute
				errInsert := c.Insert(u32(100), 5)
				errAppend := c.Insert(u32(200), c.Size())
				extracted, errExtract := c.Extract(0)
				errErase := c.Erase(1)
				errReplace := c.Replace(u32(300), 0)

				// Check
				assert.NoError(t, errInsert, "insert")
				assert.NoError(t, errAppend, "insert at size appends")
				assert.NoError(t, errExtract, "extract")
				assert.Equal(t, u32(0), extracted, "extracted first element")
				assert.NoError(t, errErase, "erase")
				assert.NoError(t, errReplace, "replace")

				expected := []uint32{300, 3, 4, 100, 5, 6, 7, 8, 9, 200}
				assert.Equal(t, int64(len(expected)), c.Size(), "size")
				for i, v := range expected {
					data, err := c.At(int64(i))
					assert.NoError(t, err, "at")
					assert.Equalf(t, u32(v), data, "element #%d", i)
				}
			})

			t.Run(fmt.Sprintf("returned data is a copy for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)
				x := u32(5)
				assert.NoError(t, c.PushBack(x), "push back")

				// Execute
				x[0] = 9
				data, _ := c.At(0)
				data[1] = 9

				// Check
				again, _ := c.At(0)
				assert.Equal(t, u32(5), again, "neither caller slice aliases storage")
			})

			t.Run(fmt.Sprintf("errors leave the container unchanged for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)
				assert.NoError(t, c.PushBack(u32(1)), "push back")

				// Execute
				errLength := c.PushBack([]byte{1})
				errInsert := c.Insert(u32(2), 2)
				_, errAt := c.At(1)
				errReplace := c.Replace(u32(2), -1)
				errResize := c.Resize(0)

				// Check
				assert.ErrorIs(t, errLength, WrongElementLength{}, "wrong length")
				assert.ErrorIs(t, errInsert, IndexOutOfRange{}, "insert past size")
				assert.ErrorIs(t, errAt, IndexOutOfRange{}, "at size")
				assert.ErrorIs(t, errReplace, IndexOutOfRange{}, "negative index")
				assert.ErrorIs(t, errResize, InvalidCapacity{}, "capacity below size")
				assert.Equal(t, int64(1), c.Size(), "size unchanged")
			})

			t.Run(fmt.Sprintf("clear for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)
				for i := uint32(0); i < 20; i++ {
					assert.NoError(t, c.PushBack(u32(i)), "push back")
				}

				// Execute
				size := c.Clear()

				// Check
				assert.Zero(t, size, "clear returns new size")
				assert.True(t, c.IsEmpty(), "empty after clear")
				assert.NoError(t, c.PushBack(u32(1)), "usable after clear")
			})

			t.Run(fmt.Sprintf("size follows pushes and pops for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)

				// Execute and Check
				for i := uint32(0); i < 50; i++ {
					assert.NoError(t, c.PushBack(u32(i)), "push back")
					assert.Equal(t, int64(i+1), c.Size(), "size grows by one")
				}
				for i := int64(49); i >= 0; i-- {
					_, err := c.PopFront()
					assert.NoError(t, err, "pop front")
					assert.Equal(t, i, c.Size(), "size shrinks by one")
				}
			})
		}
	})
}

func TestContainer_Peek(t *testing.T) {
	t.Run("references for every kind", func(t *testing.T) {
		for _, test := range containerTests {
			t.Run(fmt.Sprintf("write through reference for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)
				assert.NoError(t, c.PushBack(u32(1)), "push back")
				assert.NoError(t, c.PushBack(u32(2)), "push back")

				// Execute
				ref, err := c.Peek(1)
				assert.NoError(t, err, "peek")
				view, err := ref.Bytes()
				assert.NoError(t, err, "bytes")
				binary.LittleEndian.PutUint32(view, 42)

				// Check
				data, _ := c.At(1)
				assert.Equal(t, u32(42), data, "write visible in container")
				assert.Equal(t, int64(1), ref.Index(), "ref index")
			})

			t.Run(fmt.Sprintf("replace keeps references valid for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)
				assert.NoError(t, c.PushBack(u32(1)), "push back")
				ref, _ := c.Peek(0)

				// Execute
				assert.NoError(t, c.Replace(u32(7), 0), "replace")
				_, _ = c.At(0)

				// Check
				assert.True(t, ref.Valid(), "still valid")
				view, err := ref.Bytes()
				assert.NoError(t, err, "bytes")
				assert.Equal(t, u32(7), view, "sees replaced value")
			})

			t.Run(fmt.Sprintf("layout changes make references stale for %s", test.kindName), func(t *testing.T) {
				mutations := map[string]func(c *Container){
					"push front": func(c *Container) { _ = c.PushFront(u32(9)) },
					"push back":  func(c *Container) { _ = c.PushBack(u32(9)) },
					"pop front":  func(c *Container) { _, _ = c.PopFront() },
					"pop back":   func(c *Container) { _, _ = c.PopBack() },
					"insert":     func(c *Container) { _ = c.Insert(u32(9), 1) },
					"extract":    func(c *Container) { _, _ = c.Extract(1) },
					"erase":      func(c *Container) { _ = c.Erase(1) },
					"clear":      func(c *Container) { _ = c.Clear() },
					"delete":     func(c *Container) { c.Delete() },
				}

				for name, mutate := range mutations {
					// Prepare
					c, _ := New(4, test.kind, nil)
					for i := uint32(0); i < 3; i++ {
						assert.NoError(t, c.PushBack(u32(i)), "push back")
					}
					ref, err := c.Peek(0)
					assert.NoError(t, err, "peek")

					// Execute
					mutate(c)

					// Check
					_, err = ref.Bytes()
					assert.Falsef(t, ref.Valid(), "invalid after %s", name)
					assert.ErrorIsf(t, err, StaleReference{}, "stale after %s", name)
				}
			})

			t.Run(fmt.Sprintf("resize without reallocation keeps references valid for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)
				assert.NoError(t, c.PushBack(u32(1)), "push back")
				ref, _ := c.Peek(0)

				// Execute
				err := c.Resize(8)

				// Check
				assert.NoError(t, err, "resize")
				assert.True(t, ref.Valid(), "still valid")
			})

			t.Run(fmt.Sprintf("failed mutation keeps references valid for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)
				assert.NoError(t, c.PushBack(u32(1)), "push back")
				ref, _ := c.Peek(0)

				// Execute
				_ = c.Insert(u32(2), 5)
				_ = c.Erase(3)

				// Check
				assert.True(t, ref.Valid(), "still valid")
			})

			t.Run(fmt.Sprintf("peek out of range for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)

				// Execute
				_, errEmpty := c.Peek(0)
				_ = c.PushBack(u32(1))
				_, errRange := c.Peek(1)

				// Check
				assert.ErrorIs(t, errEmpty, EmptyContainer{}, "peek on empty")
				assert.ErrorIs(t, errRange, IndexOutOfRange{}, "peek past end")
			})
		}
	})
}

func TestContainer_ResizeReallocation(t *testing.T) {
	t.Run("growing a vector makes references stale", func(t *testing.T) {
		// Prepare
		c, _ := New(4, VectorBased, nil)
		assert.NoError(t, c.PushBack(u32(1)), "push back")
		ref, _ := c.Peek(0)

		// Execute
		err := c.Resize(64)

		// Check
		assert.NoError(t, err, "resize")
		_, err = ref.Bytes()
		assert.ErrorIs(t, err, StaleReference{}, "stale after reallocation")
	})

	t.Run("list resize never reallocates", func(t *testing.T) {
		// Prepare
		c, _ := New(4, LinkedListBased, nil)
		assert.NoError(t, c.PushBack(u32(1)), "push back")
		ref, _ := c.Peek(0)

		// Execute
		err := c.Resize(64)

		// Check
		assert.NoError(t, err, "resize")
		view, err := ref.Bytes()
		assert.NoError(t, err, "still valid")
		assert.Equal(t, u32(1), view, "same element")
	})
}

func TestContainer_HugeCapacity(t *testing.T) {
	t.Run("capacity beyond the address space is refused for every kind", func(t *testing.T) {
		for _, test := range containerTests {
			t.Run(fmt.Sprintf("resize to 1<<62 elements for %s", test.kindName), func(t *testing.T) {
				// Prepare
				c, _ := New(4, test.kind, nil)
				assert.NoError(t, c.PushBack(u32(1)), "push back")
				before := c.GetStorageParameters()

				// Execute
				err := c.Resize(1 << 62)

				// Check
				if test.kind == VectorBased {
					assert.ErrorIs(t, err, InvalidCapacity{}, "refused")
					assert.Equal(t, before, c.GetStorageParameters(), "storage unchanged")
				} else {
					assert.NoError(t, err, "list allocates per element")
				}
				for i := uint32(0); i < 40; i++ {
					assert.NoError(t, c.PushBack(u32(i)), "still usable")
				}
				assert.Equal(t, int64(41), c.Size(), "size")
			})
		}
	})

	t.Run("vector resize beyond what the heap can address", func(t *testing.T) {
		// Prepare
		c, _ := New(4, VectorBased, nil)

		// Execute
		err := c.Resize(1 << 60)

		// Check
		assert.ErrorIs(t, err, alloc.OutOfMemory{}, "allocation refused")
		assert.Equal(t, int64(16), c.GetStorageParameters().Capacity, "capacity unchanged")
	})

	t.Run("huge elements", func(t *testing.T) {
		// Execute
		_, err := New(1<<62, VectorBased, nil)

		// Check
		assert.ErrorIs(t, err, InvalidCapacity{}, "initial buffer can't be addressed")
	})
}

func TestContainer_Delete(t *testing.T) {
	t.Run("delete for every kind", func(t *testing.T) {
		for _, test := range containerTests {
			t.Run(fmt.Sprintf("returns storage and fails later calls for %s", test.kindName), func(t *testing.T) {
				// Prepare
				heap := alloc.NewHeap()
				c, err := New(8, test.kind, heap)
				assert.NoError(t, err, "creates container")
				for i := 0; i < 40; i++ {
					assert.NoError(t, c.PushBack(make([]byte, 8)), "push back")
				}
				assert.Greater(t, heap.LiveBlocks(), int64(0), "storage in use")

				// Execute
				c.Delete()
				c.Delete()

				// Check
				assert.Zero(t, heap.LiveBlocks(), "no live blocks")
				assert.Zero(t, heap.LiveBytes(), "no live bytes")
				assert.Zero(t, c.Size(), "size of deleted container")
				assert.Zero(t, c.Clear(), "clear of deleted container")
				assert.ErrorIs(t, c.PushBack(make([]byte, 8)), ContainerDeleted{}, "push after delete")
				_, err = c.At(0)
				assert.ErrorIs(t, err, ContainerDeleted{}, "at after delete")
				_, err = c.Peek(0)
				assert.ErrorIs(t, err, ContainerDeleted{}, "peek after delete")
				assert.ErrorIs(t, c.Resize(10), ContainerDeleted{}, "resize after delete")
			})
		}
	})
}

func TestContainer_StorageParameters(t *testing.T) {
	t.Run("vector reserves capacity", func(t *testing.T) {
		// Prepare
		c, _ := New(4, VectorBased, nil)

		// Execute
		err := c.Resize(100)
		params := c.GetStorageParameters()

		// Check
		assert.NoError(t, err, "resize")
		assert.Equal(t, VectorBased, params.Kind, "kind")
		assert.Equal(t, int64(100), params.Capacity, "capacity")
		assert.Equal(t, int64(400), params.AllocatedBytes, "allocated bytes")
		assert.Zero(t, params.Size, "size unchanged")
	})

	t.Run("vector grows by a fixed step", func(t *testing.T) {
		// Prepare
		c, _ := New(4, VectorBased, nil)

		// Execute
		for i := uint32(0); i < 17; i++ {
			_ = c.PushBack(u32(i))
		}

		// Check
		assert.Equal(t, int64(32), c.GetStorageParameters().Capacity, "two growth steps")
	})

	t.Run("list capacity follows size", func(t *testing.T) {
		// Prepare
		c, _ := New(4, LinkedListBased, nil)

		// Execute
		errResize := c.Resize(100)
		for i := uint32(0); i < 5; i++ {
			_ = c.PushBack(u32(i))
		}
		params := c.GetStorageParameters()

		// Check
		assert.NoError(t, errResize, "resize accepted")
		assert.Equal(t, int64(5), params.Capacity, "capacity is size")
		assert.Equal(t, int64(20), params.AllocatedBytes, "one block per element")
	})
}
