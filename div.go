package fixedPoint

// Q128.128 division and modulo. The quotient of two fixed-point values is
// (|a| * 2^128) / |b|: a 384-bit dividend over a 256-bit divisor. After
// jointly normalising so that the divisor's top bit is set, the quotient
// is produced as two 128-bit digits, each estimated with the
// udiv256by128 primitive against the divisor's high half and then refined
// downward against its low half.

// Div returns a / b. Division by zero saturates to the extreme with the
// sign of the numerator; a quotient too large for the format saturates to
// the maximum before the sign is applied.
func (a Fix256) Div(b Fix256) Fix256 {
	sign := false

	tn := raw256(a)
	if isNeg256(tn) {
		tn = neg256(tn)
		sign = !sign
	}

	td := raw256(b)
	if isZero256(td) {
		if sign {
			return Fix256Min
		}
		return Fix256Max
	}
	if isNeg256(td) {
		td = neg256(td)
		sign = !sign
	}

	quo, ok := udivFix256(tn, td)
	// An unsigned quotient of 2^127 or more does not fit the signed format;
	// the one exception is a negative quotient of exactly 2^127, Fix256Min.
	if !ok || (isNeg256(quo) && !(sign && quo == raw256(Fix256Min))) {
		quo = raw256(Fix256Max)
	}

	if sign {
		quo = neg256(quo)
	}

	return Fix256(quo)
}

// Mod returns the remainder of a / b under the truncated-quotient
// convention: the result has the sign of `a`, and a - Mod(a, b) is an
// exact multiple of b. Division by zero saturates the same way Div does.
func (a Fix256) Mod(b Fix256) Fix256 {
	sign := false

	tn := raw256(a)
	if isNeg256(tn) {
		tn = neg256(tn)
		sign = !sign
	}

	td := raw256(b)
	if isZero256(td) {
		if sign {
			return Fix256Min
		}
		return Fix256Max
	}
	if isNeg256(td) {
		td = neg256(td)
		sign = !sign
	}

	// Integer part of the quotient only; the final answer is
	// a - trunc(a/b) * b.
	q := umodQuo256(tn, td)

	tq := raw256{Hi: q}
	if sign {
		// the low limb is zero, so negating the high limb alone negates
		// the whole value
		tq.Hi = neg128(tq.Hi)
	}

	prod := Fix256(tq).Mul(b)
	res, _ := sub256(raw256(a), raw256(prod), 0)
	return Fix256(res)
}

// norm256 jointly shifts (n, d) left until the top bit of d is set,
// returning the shifted pair plus the extra high limb of n that the shift
// produces. It reports failure when the divisor is small enough that the
// quotient cannot fit, which the caller surfaces as saturation.
func norm256(n, d raw256) (nOut, dOut raw256, n2 raw128, ok bool) {
	d1, d0 := d.Hi, d.Lo
	n1, n0 := n.Hi, n.Lo

	if !isZero128(d1) {
		shift := leadingZeroBits128(d1)
		if shift != 0 {
			d1 = or128(shiftLeft128(d1, shift), ushiftRight128(d0, 128-shift))
			d0 = shiftLeft128(d0, shift)
			n2 = ushiftRight128(n1, 128-shift)
			n1 = or128(shiftLeft128(n1, shift), ushiftRight128(n0, 128-shift))
			n0 = shiftLeft128(n0, shift)
		}
	} else {
		shift := leadingZeroBits128(d0)
		if leadingZeroBits128(n1) <= shift {
			return raw256Zero, raw256Zero, raw128Zero, false
		}

		if shift != 0 {
			d1 = shiftLeft128(d0, shift)
			d0 = raw128Zero
			n2 = or128(shiftLeft128(n1, shift), ushiftRight128(n0, 128-shift))
			n1 = shiftLeft128(n0, shift)
			n0 = raw128Zero
		} else {
			d1 = d0
			d0 = raw128Zero
			n2 = n1
			n1 = n0
			n0 = raw128Zero
		}
	}

	return raw256{Hi: n1, Lo: n0}, raw256{Hi: d1, Lo: d0}, n2, true
}

// refineDigit adjusts a trial quotient digit downward while the digit
// multiplied by the divisor's low half overruns the running remainder
// (rem:low). The estimate from the high half alone can only be high,
// never low, so the adjustment always terminates.
func refineDigit(digit, rem, low, d1, d0 raw128) raw128 {
	for {
		pHi, pLo := mul128(digit, d0)
		if !ult256(raw256{Hi: rem, Lo: low}, raw256{Hi: pHi, Lo: pLo}) {
			break
		}
		digit, _ = sub128(digit, one128, 0)
		var carry uint64
		rem, carry = add128(rem, d1, 0)
		if carry != 0 {
			// The running remainder now exceeds 128 bits and the
			// product can no longer overrun it.
			break
		}
	}
	return digit
}

// udivFix256 computes the unsigned Q128.128 quotient n / d, where both
// are the raw 256-bit magnitudes. Returns ok == false when the quotient
// overflows the 256-bit result.
func udivFix256(n, d raw256) (raw256, bool) {
	n, d, n3, ok := norm256(n, d)
	if !ok {
		return raw256Zero, false
	}

	d1, d0 := d.Hi, d.Lo
	n2, n1 := n.Hi, n.Lo

	var q raw256
	var r raw128

	// First quotient digit, from the 384-bit dividend's top two limbs. A
	// remainder that already exceeds 128 bits can't be overrun, so the
	// digit then needs no refinement.
	var rCarry uint64
	if ult128(n3, d1) {
		q.Hi, r = udiv256by128(n2, n3, d1)
	} else {
		q.Hi = allOnes128
		r, rCarry = add128(n2, d1, 0)
	}
	if rCarry == 0 {
		q.Hi = refineDigit(q.Hi, r, n1, d1, d0)
	}

	// Subtract q.Hi * d from the dividend's top limbs.
	t1Hi, t1Lo := mul128(q.Hi, d0)
	_, t2Lo := mul128(q.Hi, d1)
	sum, _ := add256(raw256{Hi: t1Hi, Lo: t1Lo}, raw256{Hi: t2Lo}, 0)
	tmp, _ := sub256(raw256{Hi: n2, Lo: n1}, sum, 0)
	n2, n1 = tmp.Hi, tmp.Lo

	// Second digit. The dividend's low limb is zero: it is the 2^128
	// scale factor that turns the integer quotient into Q128.128.
	rCarry = 0
	if ult128(n2, d1) {
		q.Lo, r = udiv256by128(n1, n2, d1)
	} else {
		q.Lo = allOnes128
		r, rCarry = add128(n1, d1, 0)
	}
	if rCarry == 0 {
		q.Lo = refineDigit(q.Lo, r, raw128Zero, d1, d0)
	}

	return q, true
}

// umodQuo256 computes the 128-bit integer quotient floor(n / d) of the
// raw 256-bit magnitudes. This is the single-digit sibling of udivFix256:
// without the 2^128 scale factor, the first digit is the whole quotient.
func umodQuo256(n, d raw256) raw128 {
	n, d, n3, ok := norm256(n, d)
	if !ok {
		return allOnes128
	}

	d1, d0 := d.Hi, d.Lo
	n2, n1 := n.Hi, n.Lo

	q, r := udiv256by128(n2, n3, d1)
	q = refineDigit(q, r, n1, d1, d0)

	return q
}
