package strings

import "golang.org/x/exp/constraints"

// SaturatingSub returns a-b, flooring the result at zero instead of going
// negative or wrapping. Position and size arithmetic throughout the menu is
// defined in these terms.
func SaturatingSub[T constraints.Integer](a, b T) T {
	if b >= a {
		return 0
	}
	return a - b
}

// Clamp bounds v to the inclusive range [lo, hi]. lo must not exceed hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
