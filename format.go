package fixedPoint

// Decimal formatting. The fractional digits are generated first, most
// significant outward, by repeatedly multiplying the fractional limb by
// ten and peeling the overflow lane off as the next digit; generating
// them first lets a rounding carry propagate cleanly into the integer
// part. The integer digits are then generated least significant first by
// repeated division by ten, and the two runs share one scratch buffer
// with the separator at the pivot.

// StringSign selects the sign character emitted for non-negative values.
type StringSign int

const (
	// SignDefault writes no sign character for non-negative values.
	SignDefault StringSign = iota
	// SignSpace writes a leading space for non-negative values.
	SignSpace
	// SignPlus writes a leading '+' for non-negative values.
	SignPlus
)

// StringFormat controls decimal formatting. The zero value is NOT the
// default format (a zero Precision means zero fractional digits); use
// DefaultFormat for the equivalent of "%f".
type StringFormat struct {
	// Sign character for non-negative values.
	Sign StringSign

	// Minimum number of characters to write.
	Width int

	// Place to the right of the separator at which rounding is
	// performed. If negative, a maximum of 39 fractional digits is
	// written with no trailing zeros; 39 places are sufficient for Parse
	// to recover the original value exactly.
	Precision int

	// Pad to Width with leading zeros instead of spaces. The sign
	// character goes before the zeros.
	ZeroPad bool

	// Always write the decimal separator, even for integral values.
	Decimal bool

	// Left-align within Width, padding on the right. Overrides ZeroPad.
	LeftAlign bool
}

// DefaultFormat returns the format used by String: no sign for positive
// values, no minimum width, and the fraction printed until it ends or
// rounded at 39 places, with trailing zeros dropped. 39 places are enough
// for an exact round-trip, but not always the fewest that would be.
func DefaultFormat() StringFormat {
	return StringFormat{Precision: -1}
}

// limitWriter writes through to dst as long as it fits, but keeps
// counting either way, so one pass yields both the output and the size a
// full rendering needs.
type limitWriter struct {
	dst []byte
	n   int
}

func (w *limitWriter) put(c byte) {
	if w.n < len(w.dst) {
		w.dst[w.n] = c
	}
	w.n++
}

// String renders `a` with DefaultFormat.
func (a Fix256) String() string {
	f := DefaultFormat()
	return a.StringOpt(&f)
}

// StringOpt renders `a` with the given format options.
func (a Fix256) StringOpt(f *StringFormat) string {
	var w limitWriter
	a.format(&w, f)

	out := make([]byte, w.n)
	w = limitWriter{dst: out}
	a.format(&w, f)
	return string(out)
}

// Append renders `a` with the given format options and appends the result
// to dst.
func (a Fix256) Append(dst []byte, f *StringFormat) []byte {
	var w limitWriter
	a.format(&w, f)

	need := w.n
	n := len(dst)
	if cap(dst)-n < need {
		grown := make([]byte, n, n+need)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:n+need]

	w = limitWriter{dst: dst[n:]}
	a.format(&w, f)
	return dst
}

// Write renders `a` into dst, writing only as much as fits, and returns
// the number of bytes a complete rendering needs. Numeric rounding is
// independent of any truncation.
func (a Fix256) Write(dst []byte, f *StringFormat) int {
	w := limitWriter{dst: dst}
	a.format(&w, f)
	return w.n
}

// Stringf renders `a` using a restricted printf-style specifier of the
// form %[flags][width][.precision]f, where the flags are any of
// ' ', '+', '0', '-' and '#'. The leading '%' and trailing 'f' are
// optional, and characters outside the recognised specifier are ignored.
func (a Fix256) Stringf(format string) string {
	f := DefaultFormat()

	i := 0
	if i < len(format) && format[i] == '%' {
		i++
	}

	// flags field
flags:
	for i < len(format) {
		switch format[i] {
		case ' ':
			if f.Sign != SignPlus {
				f.Sign = SignSpace
			}
		case '+':
			f.Sign = SignPlus
		case '0':
			f.ZeroPad = true
		case '-':
			f.LeftAlign = true
		case '#':
			f.Decimal = true
		default:
			break flags
		}
		i++
	}

	// width field
	f.Width = 0
	for i < len(format) && '0' <= format[i] && format[i] <= '9' {
		f.Width = f.Width*10 + int(format[i]-'0')
		i++
	}

	// precision field
	if i < len(format) && format[i] == '.' {
		f.Precision = 0
		i++
		for i < len(format) && '0' <= format[i] && format[i] <= '9' {
			f.Precision = f.Precision*10 + int(format[i]-'0')
			i++
		}
	}

	return a.StringOpt(&f)
}

func (a Fix256) format(w *limitWriter, f *StringFormat) {
	var buf [256]byte

	tmp := raw256(a)
	sign := false
	if isNeg256(tmp) {
		tmp = neg256(tmp)
		sign = true
	}

	width := f.Width
	if width < 0 {
		width = 0
	}

	precision := f.Precision
	fullPrecision := true
	trail := 0
	if precision < 0 {
		// print a maximum of 39 digits
		fullPrecision = false
		precision = 39
	} else if precision > len(buf)-41 {
		// Digits beyond the scratch capacity are all zeros anyway; emit
		// them as trailing padding at the end.
		trail = precision - (len(buf) - 41)
		precision = len(buf) - 41
	}

	whole := tmp.Hi
	lo := tmp.Lo
	cursor := 0
	decimal := 0

	// fractional part first, in case a carry into the whole part is required
	if !isZero128(lo) || f.Decimal || (fullPrecision && precision > 0) {
		for !isZero128(lo) || (fullPrecision && cursor < precision) {
			if cursor == precision {
				if isNeg128(lo) {
					// The next digit would round up; propagate the carry
					// backwards through the emitted digits.
					carried := false
					for c := cursor - 1; c >= 0; c-- {
						buf[c]++
						if buf[c] <= '9' {
							carried = true
							break
						}
						buf[c] = '0'
					}

					if !carried {
						// carry out into the whole part
						whole, _ = add128(whole, one128, 0)
					}
				}
				break
			}

			digit, mid, low := mul128By64(lo, 10)
			buf[cursor] = '0' + byte(digit)
			cursor++
			lo = raw128{Hi: mid, Lo: low}
		}

		if !fullPrecision {
			// As-needed precision drops trailing zeros, such as those a
			// rounding carry leaves behind.
			for cursor > 0 && buf[cursor-1] == '0' {
				cursor--
			}
		}

		if f.Decimal || cursor > 0 {
			decimal = cursor
			buf[cursor] = decimalSeparator
			cursor++
		}
	}

	// whole part, least significant digit first
	for {
		var r raw64
		whole, r = div128By64(whole, 10)
		buf[cursor] = '0' + byte(r)
		cursor++
		if isZero128(whole) {
			break
		}
	}

	var signChar byte
	switch {
	case sign:
		signChar = '-'
	case f.Sign == SignPlus:
		signChar = '+'
	case f.Sign == SignSpace:
		signChar = ' '
	}

	padCnt := width - cursor
	if signChar != 0 {
		padCnt--
	}

	// Left padding. Zero padding places the sign before the zeros;
	// left-align disables zero padding in favour of trailing spaces.
	switch {
	case f.LeftAlign:
		if signChar != 0 {
			w.put(signChar)
		}
	case f.ZeroPad:
		if signChar != 0 {
			w.put(signChar)
		}
		for ; padCnt > 0; padCnt-- {
			w.put('0')
		}
	default:
		for ; padCnt > 0; padCnt-- {
			w.put(' ')
		}
		if signChar != 0 {
			w.put(signChar)
		}
	}

	// The whole digits come out of buf in reverse order, with the
	// separator sitting at the pivot between the two runs.
	for i := cursor - 1; i >= decimal; i-- {
		w.put(buf[i])
	}
	for i := 0; i < decimal; i++ {
		w.put(buf[i])
	}

	// right padding
	if f.LeftAlign {
		for ; padCnt > 0; padCnt-- {
			w.put(' ')
		}
	}

	// trailing zeroes for very large precision
	for ; trail > 0; trail-- {
		w.put('0')
	}
}
