package utils

import "math"

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Clone - Returns a copy of a that shares no memory with it
func Clone(a []byte) (b []byte) {
	b = make([]byte, len(a))
	_ = copy(b, a)

	return
}

// RoundUp2 - Returns the nearest bigger (or equal) exponent of 2 of a, values above 1<<62 give 1<<62
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	r := int64(1)
	for r < a && r < 1<<62 {
		r <<= 1
	}

	return r
}

// NextPrime - Returns the nearest bigger (or equal) prime number of a
func NextPrime(a int64) int64 {
	n := a

OUTER:
	for {
		if n == 2 || n == 3 {
			return n
		}

		if n <= 1 || n%2 == 0 || n%3 == 0 {
			n++
			continue
		}

		for i := int64(5); i*i <= n; i += 6 {
			if n%i == 0 || n%(i+2) == 0 {
				n++
				continue OUTER
			}
		}

		return n
	}
}

// WithHeadroom - Returns n inflated by percent, rounding the extra part up.
// It returns -1 if the result does not fit in an int64.
func WithHeadroom(n, percent int64) int64 {
	extra := n/100*percent + (n%100*percent+99)/100
	if n > math.MaxInt64-extra {
		return -1
	}

	return n + extra
}

// MulFits - Returns true if a * b does not overflow an int64, a and b must not be negative
func MulFits(a, b int64) bool {
	return a == 0 || b <= math.MaxInt64/a
}
