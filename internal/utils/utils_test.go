//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestIsEqual(t *testing.T) {
	t.Run("two byte slices are equal in length and values", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.True(t, isEqual, "slices equal in length and values")
	})

	t.Run("two byte slices are unequal in length", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.False(t, isEqual, "slices unequal in length")
	})

	t.Run("two byte slices are unequal in values", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := []byte{0, 1, 5, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.False(t, isEqual, "slices unequal in length")
	})
}

func TestClone(t *testing.T) {
	t.Run("clone shares no memory", func(t *testing.T) {
		// Prepare
		a := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

		// Execute
		b := Clone(a)
		a[0] = 99

		// Check
		assert.Equal(t, 10, len(b), "slice has right length")
		assert.Equal(t, byte(1), b[0], "clone unaffected by change to original")
		assert.True(t, IsEqual(a[1:], b[1:]), "contents copied")
	})
}

func TestRoundUp2(t *testing.T) {
	t.Run("rounds up to power of 2", func(t *testing.T) {
		// Prepare
		r2u := []int64{4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 262144, 16777216, 1073741824}
		input := []int64{3, 5, 9, 30, 50, 100, 129, 512, 1020, 1500, 3000, 7123, 9000, 200000, 16000000, 536870913}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			r := RoundUp2(input[i])
			assert.Equal(t, r2u[i], r, "rounds upp correct")
		}
	})
}

func TestNextPrime(t *testing.T) {
	t.Run("finds nearest bigger or equal prime", func(t *testing.T) {
		// Prepare
		primes := []int64{2, 2, 3, 5, 5, 7, 11, 11, 43, 1009}
		input := []int64{0, 2, 3, 4, 5, 6, 8, 11, 42, 1000}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			p := NextPrime(input[i])
			assert.Equalf(t, primes[i], p, "next prime of %d", input[i])
		}
	})
}

func TestWithHeadroom(t *testing.T) {
	t.Run("inflates by percent rounding up", func(t *testing.T) {
		// Prepare
		expected := []int64{2, 42, 13, 130, 1300}
		input := []int64{1, 32, 10, 100, 1000}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			h := WithHeadroom(input[i], 30)
			assert.Equalf(t, expected[i], h, "headroom of %d", input[i])
		}
	})
}

func TestWithHeadroom_Overflow(t *testing.T) {
	t.Run("large values don't wrap", func(t *testing.T) {
		// Execute
		fits := WithHeadroom(math.MaxInt64/2, 30)
		wraps := WithHeadroom(math.MaxInt64/10*9, 30)
		odd := WithHeadroom(150, 30)

		// Check
		assert.Equal(t, int64(math.MaxInt64/2)+int64(math.MaxInt64/2)/100*30+1, fits, "no overflow in the percentage")
		assert.Equal(t, int64(-1), wraps, "result beyond int64")
		assert.Equal(t, int64(195), odd, "remainder part rounded up")
	})
}

func TestMulFits(t *testing.T) {
	t.Run("detects int64 overflow", func(t *testing.T) {
		assert.True(t, MulFits(0, math.MaxInt64), "zero factor")
		assert.True(t, MulFits(4, 1<<60), "fits")
		assert.False(t, MulFits(4, 1<<62), "wraps")
		assert.True(t, MulFits(1, math.MaxInt64), "identity")
		assert.False(t, MulFits(2, math.MaxInt64/2+1), "just past the limit")
	})
}
