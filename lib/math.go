package lib

import (
	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](i0, i1 T) T {
	if i0 <= i1 {
		return i0
	}
	return i1
}

func Max[T constraints.Ordered](i0, i1 T) T {
	if i0 >= i1 {
		return i0
	}
	return i1
}

func Clamp[T constraints.Ordered](v, min, max T) T {
	if v <= min {
		return min
	}
	if v >= max {
		return max
	}
	return v
}

// InRange reports whether min <= v < max.
func InRange[T constraints.Ordered](v, min, max T) bool {
	if v < min || v >= max {
		return false
	}
	return true
}

func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v >= 0 {
		return v
	}
	return -v
}
