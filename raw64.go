package fixedPoint

import (
	"math/bits"
)

var raw64Zero = raw64(0)

// This file contains wrapper functions for raw64. Most of these are thin
// wrappers around the math/bits package, but they are provided here so the
// raw128 and raw256 layers can be written in a way that is consistent
// across all limb widths.

func add64(a, b raw64, c uint64) (raw64, uint64) {
	// Use bits.Add64 to add two raw64 values and return the sum and carry.
	sum, carry := bits.Add64(uint64(a), uint64(b), c)
	return raw64(sum), carry
}

func sub64(a, b raw64, c uint64) (raw64, uint64) {
	// Use bits.Sub64 to subtract two raw64 values and return the difference and borrow.
	diff, borrow := bits.Sub64(uint64(a), uint64(b), c)
	return raw64(diff), borrow
}

func mul64(a, b raw64) (raw64, raw64) {
	// Use bits.Mul64 to multiply two raw64 values and return the high and low parts of the product.
	hi64, lo64 := bits.Mul64(uint64(a), uint64(b))
	return raw64(hi64), raw64(lo64)
}

func div64(a, b, y raw64) (raw64, raw64) {
	// Use bits.Div64 to divide two raw64 values and return the quotient and remainder.
	q64, r64 := bits.Div64(uint64(a), uint64(b), uint64(y))
	return raw64(q64), raw64(r64)
}

func leadingZeroBits64(a raw64) uint {
	// Count the number of leading zero bits in a raw64 value.
	return uint(bits.LeadingZeros64(uint64(a)))
}

func isZero64(a raw64) bool {
	return a == 0
}

func isNeg64(a raw64) bool {
	// Check if a raw64 value is negative when interpreted as a signed integer.
	return int64(a) < 0
}

func ult64(a, b raw64) bool {
	// Check if a is less than b, treating them as unsigned integers.
	return a < b
}

func slt64(a, b raw64) bool {
	// Check if a is less than b, treating them as signed integers.
	return int64(a) < int64(b)
}

func isEqual64(a, b raw64) bool {
	return a == b
}

func sshiftRight64(a raw64, shift uint) raw64 {
	// Shift right by a number of bits, treating a as a signed integer.
	return raw64(int64(a) >> shift)
}
