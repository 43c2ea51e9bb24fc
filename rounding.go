package fixedPoint

// Rounding to integral values. All three operations clear the fractional
// limb; they differ only in when the integer limb is incremented. Under
// two's complement, truncating the fraction of a negative value already
// moves it toward negative infinity, which is exactly what Floor wants.

// Floor returns the largest integral value less than or equal to `a`.
func (a Fix256) Floor() Fix256 {
	return Fix256{Hi: a.Hi, Lo: raw128Zero}
}

// Ceil returns the smallest integral value greater than or equal to `a`.
func (a Fix256) Ceil() Fix256 {
	var carry uint64
	if !isZero128(a.Lo) {
		carry = 1
	}

	hi, _ := add128(a.Hi, raw128Zero, carry)
	return Fix256{Hi: hi, Lo: raw128Zero}
}

// Round returns `a` rounded to the nearest integral value, with halfway
// cases rounding away from zero.
func (a Fix256) Round() Fix256 {
	// The half threshold is 2^127 on the fractional limb. Negative values
	// sit one truncation step low, so their threshold is biased by one:
	// a fraction of exactly one half then falls just short of it, so the
	// integer limb is not incremented and negative halves round away from
	// zero.
	threshold := raw128{Hi: 1 << 63}
	if a.IsNeg() {
		threshold, _ = add128(threshold, one128, 0)
	}

	var carry uint64
	if !ult128(a.Lo, threshold) {
		carry = 1
	}

	hi, _ := add128(a.Hi, raw128Zero, carry)
	return Fix256{Hi: hi, Lo: raw128Zero}
}
