package fixedPoint

// Decimal and hexadecimal parsing. The integer digits accumulate forward
// with plain Horner evaluation. The fractional digits are evaluated
// backward: folding digit d into an accumulator f as (d + f) / base -
// computed with the 256/128 division primitive, rounding each step to
// nearest - yields the correctly rounded 128-bit fractional limb without
// ever leaving fixed point.

// Parse reads a fixed-point value from the front of s and returns it
// together with the number of bytes consumed. The accepted syntax is
//
//	[whitespace][sign][0x|0X]digits[.digits]
//
// where the 0x prefix selects base 16. Parsing stops at the first
// character that does not fit, so trailing input is simply not consumed;
// a string with no usable digits parses as zero with whatever prefix was
// consumed.
func Parse(s string) (Fix256, int) {
	var lo, hi raw128

	base := raw64(10)
	sign := false
	i := 0

	// consume whitespace
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\r', '\n', '\v':
			i++
			continue
		}
		break
	}

	// sign
	if i < len(s) && s[i] == '-' {
		sign = true
		i++
	} else if i < len(s) && s[i] == '+' {
		i++
	}

	// base prefix
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base = 16
		i += 2
	}

	// whole part
	for ; i < len(s); i++ {
		digit, ok := digitValue(s[i], base)
		if !ok {
			break
		}

		// hi = hi*base + digit
		_, mid, low := mul128By64(hi, base)
		hi, _ = add128(raw128{Hi: mid, Lo: low}, raw128{Lo: digit}, 0)
	}

	// fractional part
	if i < len(s) && s[i] == decimalSeparator {
		i++
		start := i

		// find the last digit and work backwards
		for i < len(s) {
			if _, ok := digitValue(s[i], base); !ok {
				break
			}
			i++
		}

		for c := i - 1; c >= start; c-- {
			digit, _ := digitValue(s[c], base)
			q, r := udiv256by128(lo, raw128{Lo: digit}, raw128{Lo: base})

			// Round each step to nearest: truncating here loses up to one
			// unit of the final fraction, which is exactly the unit the
			// 39-digit round-trip needs. The clamp keeps a long tail of
			// maximal digits from carrying the fraction out of range.
			if r.Lo*2 >= base {
				var carry uint64
				q, carry = add128(q, one128, 0)
				if carry != 0 {
					q = allOnes128
				}
			}
			lo = q
		}
	}

	res := raw256{Hi: hi, Lo: lo}
	if sign {
		res = neg256(res)
	}

	return Fix256(res), i
}

// FromString parses s, ignoring any unconsumed trailing input.
func FromString(s string) Fix256 {
	v, _ := Parse(s)
	return v
}

// MustParse parses s and panics if the entire string is not consumed.
// Intended for literals in tests and initialisation code.
func MustParse(s string) Fix256 {
	v, err := parseStrict(s)
	if err != nil {
		panic("fixedPoint: can't parse '" + s + "'")
	}
	return v
}

// parseStrict is the codec-boundary parser: the whole input must be
// consumed, and empty input is an error.
func parseStrict(s string) (Fix256, error) {
	if len(s) == 0 {
		return Fix256Zero, ErrEmptyString
	}

	v, n := Parse(s)
	if n != len(s) {
		return Fix256Zero, ErrInvalidFormat
	}
	return v, nil
}

func digitValue(c byte, base raw64) (raw64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return raw64(c - '0'), true
	case base == 16 && 'a' <= c && c <= 'f':
		return raw64(c-'a') + 10, true
	case base == 16 && 'A' <= c && c <= 'F':
		return raw64(c-'A') + 10, true
	default:
		return 0, false
	}
}
