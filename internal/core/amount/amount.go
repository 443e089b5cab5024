// Package amount provides overflow-checked arithmetic on unsigned 64-bit
// quantities. Every operation that cannot be represented returns ErrOverflow
// instead of wrapping.
package amount

import (
	"errors"
	"math/bits"
)

// ErrOverflow is returned when a result does not fit in 64 bits or a
// division by zero is attempted.
var ErrOverflow = errors.New("arithmetic overflow")

// Mul returns a*b.
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// Add returns a+b.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sub returns a-b. Going below zero is reported as ErrOverflow.
func Sub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrOverflow
	}
	return diff, nil
}

// Div returns a/b truncated toward zero.
func Div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrOverflow
	}
	return a / b, nil
}

// MulDiv returns floor(a*num/den). The intermediate product must itself fit
// in 64 bits.
func MulDiv(a, num, den uint64) (uint64, error) {
	product, err := Mul(a, num)
	if err != nil {
		return 0, err
	}
	return Div(product, den)
}
