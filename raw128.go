package fixedPoint

// This file contains the 128-bit limb primitives that the 256-bit core is
// built on. All of the functions here have direct analogues in raw64.go,
// but they operate on 128-bit values instead of 64-bit values, and - in
// some cases - are much more complex because of it.
//
// The basic operations are:
// - Addition and subtraction with carry/borrow
// - 128x128->256 multiplication
// - 256/128->128 division with remainder
// - Comparison, shifting, zero and negative checks

var (
	raw128Zero = raw128{0, 0}
	one128     = raw128{Lo: 1}
	allOnes128 = raw128{Hi: ^raw64(0), Lo: ^raw64(0)}
)

func add128(a, b raw128, carry uint64) (sum raw128, carryOut uint64) {
	sum.Lo, carry = add64(a.Lo, b.Lo, carry)
	sum.Hi, carryOut = add64(a.Hi, b.Hi, carry)
	return
}

func sub128(a, b raw128, borrow uint64) (diff raw128, borrowOut uint64) {
	diff.Lo, borrow = sub64(a.Lo, b.Lo, borrow)
	diff.Hi, borrowOut = sub64(a.Hi, b.Hi, borrow)
	return
}

func neg128(a raw128) raw128 {
	negLo, borrow := sub64(0, a.Lo, 0)
	negHi, _ := sub64(0, a.Hi, borrow)
	return raw128{negHi, negLo}
}

func leadingZeroBits128(a raw128) uint {
	// Count the number of leading zero bits in a raw128 value.
	// Returns 128 when a is zero.
	if a.Hi == 0 {
		return leadingZeroBits64(a.Lo) + 64
	}
	return leadingZeroBits64(a.Hi)
}

func isZero128(a raw128) bool {
	return isZero64(a.Hi) && isZero64(a.Lo)
}

func isNeg128(a raw128) bool {
	return isNeg64(a.Hi)
}

func ult128(a, b raw128) bool {
	if isEqual64(a.Hi, b.Hi) {
		return ult64(a.Lo, b.Lo)
	}
	return ult64(a.Hi, b.Hi)
}

func slt128(a, b raw128) bool {
	if isEqual64(a.Hi, b.Hi) {
		return ult64(a.Lo, b.Lo)
	}
	return slt64(a.Hi, b.Hi)
}

func isEqual128(a, b raw128) bool {
	return isEqual64(a.Hi, b.Hi) && isEqual64(a.Lo, b.Lo)
}

func ucmp128(a, b raw128) int {
	switch {
	case ult128(a, b):
		return -1
	case isEqual128(a, b):
		return 0
	default:
		return 1
	}
}

func or128(a, b raw128) raw128 {
	return raw128{Hi: a.Hi | b.Hi, Lo: a.Lo | b.Lo}
}

func shiftLeft128(a raw128, shift uint) raw128 {
	if shift >= 64 {
		return raw128{Hi: a.Lo << (shift - 64), Lo: 0}
	}

	return raw128{Hi: (a.Hi << shift) | (a.Lo >> (64 - shift)), Lo: a.Lo << shift}
}

func ushiftRight128(a raw128, shift uint) raw128 {
	if shift >= 64 {
		return raw128{Hi: 0, Lo: a.Hi >> (shift - 64)}
	}

	return raw128{Hi: a.Hi >> shift, Lo: (a.Lo >> shift) | (a.Hi << (64 - shift))}
}

func sshiftRight128(a raw128, shift uint) raw128 {
	if shift >= 64 {
		// The newly exposed high bits are all copies of the sign bit.
		return raw128{Hi: sshiftRight64(a.Hi, 63), Lo: sshiftRight64(a.Hi, shift-64)}
	}

	return raw128{Hi: sshiftRight64(a.Hi, shift), Lo: (a.Lo >> shift) | (a.Hi << (64 - shift))}
}

// A utility function used in the 128x128 multiplication algorithm to
// efficiently handle multiplications where one of the operands fits in 64
// bits. The 192-bit product is returned as three 64-bit limbs.
func mul128By64(a raw128, b raw64) (hi, mid, lo raw64) {
	// Perform multiplication using mul64. You can think about this as
	// long multiplication where our "base" is 2^64.
	//      aH  aL
	// x         b
	// -----------
	//       w   x
	// + y   z
	// -----------
	//   q   r   s
	// where:
	//   aH = high part of a (most significant 64 bits)
	//   aL = low part of a (least significant 64 bits)
	//   b  = the 64-bit multiplier
	//   w  = high part of b•aL
	//   x  = low part of b•aL
	//   y  = high part of b•aH
	//   z  = low part of b•aH
	//   q  = high limb of the result (the product fits in 192 bits)
	//   r  = mid limb of the result
	//   s  = low limb of the result (s == x)

	var w, z raw64
	var carry uint64
	w, lo = mul64(a.Lo, b)
	hi, z = mul64(a.Hi, b)

	mid, carry = add64(w, z, 0)

	// Can't overflow, since that would imply a 128 x 64 multiplication
	// overflowed 192 bits, which is not possible.
	hi, _ = add64(hi, raw64Zero, carry)

	return hi, mid, lo
}

// A utility function to perform 128x128 multiplication with a 256-bit result.
func mul128(a, b raw128) (hi, lo raw128) {

	// If either operand fits into 64 bits, we can use a simpler multiplication.
	// This also handles the case where one of the operands is zero.
	if a.Hi == 0 {
		hi.Lo, lo.Hi, lo.Lo = mul128By64(b, a.Lo)
		return
	} else if b.Hi == 0 {
		hi.Lo, lo.Hi, lo.Lo = mul128By64(a, b.Lo)
		return
	}

	// Observe that:
	//   a = aH•B + aL and b = bH•B + bL (where B = 2^64)
	//   a * b = (aH * bH) * B^2 + ((aH * bL) + (aL * bH)) * B + (aL * bL)
	//
	// Note that we DO NOT use Karatsuba multiplication here, because we have
	// access to efficient 64-bit multiplication, and the "Karatsuba product"
	// operates on sums that could overflow 64 bits and require edge-case handling.

	// u is aH * bH
	// v is (aH * bL) + (aL * bH)
	// w is aL * bL
	var u, v1, v2 raw128
	var wHi raw64
	u.Hi, u.Lo = mul64(a.Hi, b.Hi)
	v1.Hi, v1.Lo = mul64(a.Hi, b.Lo)
	v2.Hi, v2.Lo = mul64(a.Lo, b.Hi)
	v, vCarry := add128(v1, v2, 0)
	wHi, lo.Lo = mul64(a.Lo, b.Lo)

	// The lowest word of the result (lo.Lo) was directly set when we computed w above

	// We now sum up lo.Hi, which is the low part of v plus the high part of w
	var midCarry, hiCarry uint64
	lo.Hi, midCarry = add64(v.Lo, wHi, 0)

	// The hi.Lo is the sum of the low part of u with the high part of v plus any carry
	// from the previous sum.
	hi.Lo, hiCarry = add64(u.Lo, v.Hi, midCarry)

	// hi.Hi is the high part of u plus any carry from the previous sum (and any carry from
	// computing v).
	hi.Hi, _ = add64(u.Hi, raw64(vCarry), hiCarry)

	return
}

// udiv256by128 divides the 256-bit numerator (nhi:nlo) by the 128-bit
// denominator d, returning the 128-bit quotient and remainder. This is
// schoolbook (Knuth Algorithm D) division with two base-2^64 digits.
//
// The caller must guarantee d != 0 and nhi < d; with nhi < d the quotient
// always fits in 128 bits.
func udiv256by128(nlo, nhi, d raw128) (quo, rem raw128) {
	// Normalise so that the top bit of d is set. Because nhi < d, shifting
	// the numerator left by the same amount cannot push bits off the top.
	shift := leadingZeroBits128(d)
	if shift != 0 {
		nhi = or128(shiftLeft128(nhi, shift), ushiftRight128(nlo, 128-shift))
		nlo = shiftLeft128(nlo, shift)
		d = shiftLeft128(d, shift)
	}

	n3, n2 := nhi.Hi, nhi.Lo
	n1, n0 := nlo.Hi, nlo.Lo
	d1, d0 := d.Hi, d.Lo

	// First digit: estimate from the top three limbs of the numerator and
	// the high limb of the denominator, then refine downward while the
	// estimate multiplied by the low limb overruns the running numerator.
	var q1, r raw64
	var rCarry uint64
	if ult64(n3, d1) {
		q1, r = div64(n3, n2, d1)
	} else {
		q1 = ^raw64(0)
		r, rCarry = add64(n2, d1, 0)
	}
	// Once the running remainder exceeds 64 bits, no further refinement is
	// possible (or needed).
	for rCarry == 0 {
		pHi, pLo := mul64(q1, d0)
		if !ult128(raw128{Hi: r, Lo: n1}, raw128{Hi: pHi, Lo: pLo}) {
			break
		}
		q1--
		r, rCarry = add64(r, d1, 0)
	}

	// Subtract q1 * d from the top of the numerator.
	pHi, pLo := mul64(q1, d0)
	_, pMid := mul64(q1, d1)
	hiLane, _ := add64(pHi, pMid, 0)
	tmp, _ := sub128(raw128{Hi: n2, Lo: n1}, raw128{Hi: hiLane, Lo: pLo}, 0)
	n2, n1 = tmp.Hi, tmp.Lo

	// Second digit, same procedure one limb down.
	var q0 raw64
	rCarry = 0
	if ult64(n2, d1) {
		q0, r = div64(n2, n1, d1)
	} else {
		q0 = ^raw64(0)
		r, rCarry = add64(n1, d1, 0)
	}
	for rCarry == 0 {
		pHi, pLo := mul64(q0, d0)
		if !ult128(raw128{Hi: r, Lo: n0}, raw128{Hi: pHi, Lo: pLo}) {
			break
		}
		q0--
		r, rCarry = add64(r, d1, 0)
	}

	pHi, pLo = mul64(q0, d0)
	_, pMid = mul64(q0, d1)
	hiLane, _ = add64(pHi, pMid, 0)
	tmp, _ = sub128(raw128{Hi: n1, Lo: n0}, raw128{Hi: hiLane, Lo: pLo}, 0)
	n1, n0 = tmp.Hi, tmp.Lo

	// De-normalise the remainder.
	rem = ushiftRight128(raw128{Hi: n1, Lo: n0}, shift)
	quo = raw128{Hi: q1, Lo: q0}
	return
}

// div128By64 divides a raw128 by a 64-bit denominator, returning the
// 128-bit quotient and the remainder. Used by the decimal formatter for
// its repeated divisions by ten.
func div128By64(u raw128, v raw64) (q raw128, r raw64) {
	if ult64(u.Hi, v) {
		q.Lo, r = div64(u.Hi, u.Lo, v)
	} else {
		q.Hi, r = div64(0, u.Hi, v)
		q.Lo, r = div64(r, u.Lo, v)
	}
	return
}
