package fixedPoint

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	testcases := []struct {
		in   Fix256
		want string
	}{
		{Fix256Zero, "0"},
		{Fix256One, "1"},
		{Fix256One.Neg(), "-1"},
		{FromInt(42), "42"},
		{FromInt(-42), "-42"},
		{MustParse("0.5"), "0.5"},
		{MustParse("-0.5"), "-0.5"},
		{MustParse("123.25"), "123.25"},
		{FromFloat(0.0625), "0.0625"},
		{Fix256Smallest, "0.000000000000000000000000000000000000003"},
		{Fix256Min, "-170141183460469231731687303715884105728"},
	}

	for _, tc := range testcases {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.String())
		})
	}
}

// The formatter mirrors printf semantics, so for values that a double
// represents exactly the reference rendering comes straight from the fmt
// package.
func TestStringfAgainstPrintf(t *testing.T) {
	testcases := []struct {
		v    float64
		spec string
	}{
		{0.9999, "%5.6f"},
		{0.9999, "%1.0f"},
		{0.9999, "%-20.4f"},
		{0.9999, "%+.50f"},
		{0.9999, "%.10f"},
		{-2.125, "%.5f"},
		{-2.125, "%010.3f"},
		{-2.125, "%+.3f"},
		{2.3, "%.0f"},
		{-2.3, "%.0f"},
		{1234.5678, "%15.2f"},
		{1234.5678, "%-15.2f"},
		{1234.5678, "%015.2f"},
		{0.125, "%.0f"},
		{0.125, "%.3f"},
		{0, "%.0f"},
	}

	for _, tc := range testcases {
		t.Run(fmt.Sprintf("%s of %v", tc.spec, tc.v), func(t *testing.T) {
			want := fmt.Sprintf(tc.spec, tc.v)
			got := FromFloat(tc.v).Stringf(tc.spec)
			require.Equal(t, want, got)
		})
	}
}

func TestStringfLargePrecision(t *testing.T) {
	// 2^-128 has an exact 128-digit expansion; everything beyond is zeros,
	// including the trailing run emitted past the scratch buffer
	d := math.Ldexp(1, -128)
	a := FromFloat(d)

	require.Equal(t, fmt.Sprintf("%1.200f", d), a.Stringf("%1.200f"))
	require.Equal(t, fmt.Sprintf("%1.300f", d), a.Stringf("%1.300f"))
}

func TestStringfFlags(t *testing.T) {
	v := MustParse("1.5")

	testcases := []struct {
		spec string
		want string
	}{
		{"%f", "1.5"},
		{"f", "1.5"},
		{".2f", "1.50"},
		{"%.0f", "2"},
		{"%#.0f", "2."},
		{"%+f", "+1.5"},
		{"% f", " 1.5"},
		{"% +f", "+1.5"},
		{"%8.2f", "    1.50"},
		{"%-8.2f", "1.50    "},
		{"%08.2f", "00001.50"},
	}

	for _, tc := range testcases {
		t.Run(tc.spec, func(t *testing.T) {
			require.Equal(t, tc.want, v.Stringf(tc.spec))
		})
	}
}

func TestStringfNegativeZeroPad(t *testing.T) {
	v := MustParse("-1.5")

	// the sign goes before the zeros
	require.Equal(t, "-0001.50", v.Stringf("%08.2f"))
	require.Equal(t, "-1.50   ", v.Stringf("%-8.2f"))
	require.Equal(t, "   -1.50", v.Stringf("%8.2f"))
}

func TestStringOptForcedDecimal(t *testing.T) {
	f := StringFormat{Precision: 0, Decimal: true}
	require.Equal(t, "5.", FromInt(5).StringOpt(&f))

	f = StringFormat{Precision: -1, Decimal: true}
	require.Equal(t, "5.", FromInt(5).StringOpt(&f))

	f = StringFormat{Precision: 0}
	require.Equal(t, "5", FromInt(5).StringOpt(&f))
}

func TestFormatRoundsHalfUp(t *testing.T) {
	// the digit after the cut decides via the top bit of the remaining
	// fraction
	require.Equal(t, "2.5", MustParse("2.5").Stringf("%.1f"))
	require.Equal(t, "3", MustParse("2.5").Stringf("%.0f"))
	require.Equal(t, "-3", MustParse("-2.5").Stringf("%.0f"))
	require.Equal(t, "2", MustParse("2.25").Stringf("%.0f"))
	require.Equal(t, "2.3", MustParse("2.25").Stringf("%.1f"))

	// carries ripple through nines into the whole part
	require.Equal(t, "10.00", MustParse("9.999").Stringf("%.2f"))
	require.Equal(t, "100", MustParse("99.999").Stringf("%.0f"))
}

func TestWriteTruncation(t *testing.T) {
	v := MustParse("123.456")
	f := DefaultFormat()

	full := v.StringOpt(&f)
	need := len(full)

	// a large enough buffer gets everything
	buf := make([]byte, 64)
	n := v.Write(buf, &f)
	require.Equal(t, need, n)
	require.Equal(t, full, string(buf[:n]))

	// a short buffer gets a prefix, but the reported size is unchanged
	short := make([]byte, 4)
	n = v.Write(short, &f)
	require.Equal(t, need, n)
	require.Equal(t, full[:4], string(short))

	// a zero-length buffer still measures
	n = v.Write(nil, &f)
	require.Equal(t, need, n)
}

func TestAppend(t *testing.T) {
	f := DefaultFormat()

	buf := []byte("x=")
	buf = MustParse("1.5").Append(buf, &f)
	require.Equal(t, "x=1.5", string(buf))

	buf = append(buf, ',')
	buf = MustParse("-2").Append(buf, &f)
	require.Equal(t, "x=1.5,-2", string(buf))
}

func TestDecimalSeparator(t *testing.T) {
	require.Equal(t, byte('.'), DecimalSeparator())

	v15 := MustParse("1.5")

	SetDecimalSeparator(',')
	defer SetDecimalSeparator('.')

	require.Equal(t, "1,5", v15.String())

	// the parser follows the same setting
	v, n := Parse("2,25")
	require.Equal(t, 4, n)
	require.Equal(t, NewFix256(0, 2, 1<<62, 0), v)

	// with ',' active, '.' is just an unrecognised character
	_, n = Parse("2.25")
	require.Equal(t, 1, n)
}

func TestDefaultWidthBound(t *testing.T) {
	// the default format never needs more than 81 bytes
	f := DefaultFormat()
	for _, v := range []Fix256{Fix256Min, Fix256Max, Fix256Smallest, Fix256Smallest.Neg()} {
		n := v.Write(nil, &f)
		require.LessOrEqual(t, n, 81, "%v took %d bytes", v, n)
	}
}
