package geometry

import "math"

// Epsilon is the smallest increment representable by a float32 near 1.0.
const Epsilon float32 = 1.1920929e-07

// Number is any numeric type convertible to float32.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// FloatEqual reports whether a and b are equal, treating two NaNs as equal
// and a NaN and a number as unequal. Other values are equal when they differ
// by less than Epsilon.
func FloatEqual(a, b float32) bool {
	if a == b {
		return true
	}
	aNaN, bNaN := isNaN(a), isNaN(b)
	if aNaN && bNaN {
		return true
	}
	if aNaN || bNaN {
		return false
	}
	return float32(math.Abs(float64(a-b))) < Epsilon
}

func isNaN(f float32) bool {
	return f != f
}
