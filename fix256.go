package fixedPoint

// This file implements the arithmetic, bitwise, and comparison operations
// for the Fix256 type. The operations here wrap modulo 2^256 (preserving
// the usual algebraic identities); only the boundary conversions and
// divide-by-zero saturate, and those live in convert.go and div.go.

// == Comparison Operators ==

// Eq returns true if `a` and `b` are equal.
func (a Fix256) Eq(b Fix256) bool { return raw256(a) == raw256(b) }

// Lt returns true if `a` is less than `b`.
func (a Fix256) Lt(b Fix256) bool { return a.Cmp(b) < 0 }

// Gt returns true if `a` is greater than `b`.
func (a Fix256) Gt(b Fix256) bool { return a.Cmp(b) > 0 }

// Lte returns true if `a` is less than or equal to `b`.
func (a Fix256) Lte(b Fix256) bool { return !a.Gt(b) }

// Gte returns true if `a` is greater than or equal to `b`.
func (a Fix256) Gte(b Fix256) bool { return !a.Lt(b) }

// Cmp returns -1, 0, or +1 depending on whether `a` is less than, equal
// to, or greater than `b`.
func (a Fix256) Cmp(b Fix256) int {
	return scmp256(raw256(a), raw256(b))
}

// IsNeg returns true if `a` is negative.
func (a Fix256) IsNeg() bool { return isNeg256(raw256(a)) }

// IsZero returns true if `a` is zero.
func (a Fix256) IsZero() bool { return isZero256(raw256(a)) }

// Min returns the smaller of `a` and `b`.
func (a Fix256) Min(b Fix256) Fix256 {
	if a.Cmp(b) < 0 {
		return a
	}
	return b
}

// Max returns the larger of `a` and `b`.
func (a Fix256) Max(b Fix256) Fix256 {
	if a.Cmp(b) > 0 {
		return a
	}
	return b
}

// == Sign manipulation ==

// Neg returns -a, wrapping modulo 2^256. Note that Neg of the minimum
// value is the minimum value itself; callers that must not wrap should
// check IsNeg first.
func (a Fix256) Neg() Fix256 {
	return Fix256(neg256(raw256(a)))
}

// Abs returns the absolute value of `a`. Like Neg, Abs of the minimum
// value is the minimum value itself.
func (a Fix256) Abs() Fix256 {
	// Branchless: the arithmetic shift produces an all-ones mask for
	// negative values and all-zeros otherwise, so inv - mask computes
	// either (v - 0) or (^v + 1).
	mask := sshiftRight128(raw256(a).Hi, 127)
	sign := raw256{Hi: mask, Lo: mask}
	inv := xor256(raw256(a), sign)
	res, _ := sub256(inv, sign, 0)
	return Fix256(res)
}

// Nabs returns the negated absolute value of `a`, -abs(a). Unlike Abs it
// is exact for every input, since the negative range is the larger one.
func (a Fix256) Nabs() Fix256 {
	mask := sshiftRight128(raw256(a).Hi, 127)
	sign := raw256{Hi: mask, Lo: mask}
	inv := xor256(raw256(a), sign)
	res, _ := sub256(sign, inv, 0)
	return Fix256(res)
}

// == Bitwise operations ==

// Not returns ^a.
func (a Fix256) Not() Fix256 { return Fix256(not256(raw256(a))) }

// And returns a & b.
func (a Fix256) And(b Fix256) Fix256 { return Fix256(and256(raw256(a), raw256(b))) }

// Or returns a | b.
func (a Fix256) Or(b Fix256) Fix256 { return Fix256(or256(raw256(a), raw256(b))) }

// Xor returns a ^ b.
func (a Fix256) Xor(b Fix256) Fix256 { return Fix256(xor256(raw256(a), raw256(b))) }

// Shl returns a << n. The shift count is taken modulo 256.
func (a Fix256) Shl(n uint) Fix256 { return Fix256(shiftLeft256(raw256(a), n)) }

// Shr returns a >> n with zero fill. The shift count is taken modulo 256.
func (a Fix256) Shr(n uint) Fix256 { return Fix256(ushiftRight256(raw256(a), n)) }

// Sar returns a >> n with sign fill. The shift count is taken modulo 256.
func (a Fix256) Sar(n uint) Fix256 { return Fix256(sshiftRight256(raw256(a), n)) }

// == Arithmetic ==

// Add returns a + b, wrapping modulo 2^256.
func (a Fix256) Add(b Fix256) Fix256 {
	sum, _ := add256(raw256(a), raw256(b), 0)
	return Fix256(sum)
}

// Sub returns a - b, wrapping modulo 2^256.
func (a Fix256) Sub(b Fix256) Fix256 {
	diff, _ := sub256(raw256(a), raw256(b), 0)
	return Fix256(diff)
}

// Mul returns a * b, wrapping modulo 2^256. The half-ULP of the discarded
// low product lane rounds up.
func (a Fix256) Mul(b Fix256) Fix256 {
	sign := false

	ta := raw256(a)
	if isNeg256(ta) {
		ta = neg256(ta)
		sign = !sign
	}

	tb := raw256(b)
	if isNeg256(tb) {
		tb = neg256(tb)
		sign = !sign
	}

	res := umulFix256(ta, tb)
	if sign {
		res = neg256(res)
	}

	return Fix256(res)
}

// umulFix256 computes the unsigned Q128.128 product of a and b. The raw
// 512-bit product decomposes into four partial 256-bit products; the low
// 128-bit lane holds only bits below 2^-128 and is discarded after
// contributing its top bit as a rounding increment.
func umulFix256(a, b raw256) raw256 {
	// p0 = a.lo * b.lo, shifted down one lane with round-half-up.
	p0Hi, p0Lo := mul128(a.Lo, b.Lo)
	res := raw256{Lo: p0Hi}
	if isNeg128(p0Lo) {
		res, _ = add256(res, raw256{Lo: one128}, 0)
	}

	// p1 = a.hi * b.lo and p2 = a.lo * b.hi land unshifted.
	p1Hi, p1Lo := mul128(a.Hi, b.Lo)
	res, _ = add256(res, raw256{Hi: p1Hi, Lo: p1Lo}, 0)

	p2Hi, p2Lo := mul128(a.Lo, b.Hi)
	res, _ = add256(res, raw256{Hi: p2Hi, Lo: p2Lo}, 0)

	// p3 = a.hi * b.hi lands one lane up; its own high lane wraps away.
	_, p3Lo := mul128(a.Hi, b.Hi)
	res, _ = add256(res, raw256{Hi: p3Lo}, 0)

	return res
}
