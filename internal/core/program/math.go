package program

import "golang.org/x/exp/constraints"

// oadd adds with overflow detection.
func oadd[T constraints.Unsigned](a, b T) (res T, overflowed bool) {
	res = a + b
	overflowed = res < a
	return
}

// osub subtracts with underflow detection.
func osub[T constraints.Unsigned](a, b T) (res T, overflowed bool) {
	res = a - b
	overflowed = res > a
	return
}
