package mathutil

import (
	"errors"
	"math"
)

// ErrOverflow is returned when a result does not fit in a uint64.
var ErrOverflow = errors.New("mathutil: result overflows uint64")

// IsEven reports whether n is divisible by two. Negative numbers work too.
func IsEven(n int) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two.
func IsOdd(n int) bool {
	return n%2 != 0
}

// Factorial returns n!. 20! is the largest value that fits.
func Factorial(n uint) (uint64, error) {
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		if result > math.MaxUint64/i {
			return 0, ErrOverflow
		}
		result *= i
	}
	return result, nil
}
