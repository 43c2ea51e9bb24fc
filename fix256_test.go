package fixedPoint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// corpus is a spread of interesting values reused by the property tests:
// the named constants, exact dyadics, values with long decimal fractions,
// and raw bit patterns with no special structure.
var corpus = []Fix256{
	Fix256Zero,
	Fix256One,
	Fix256Smallest,
	Fix256Min,
	Fix256Max,
	Fix256One.Neg(),
	Fix256Smallest.Neg(),
	MustParse("0.5"),
	MustParse("-0.5"),
	MustParse("2.5"),
	MustParse("-2.5"),
	MustParse("123.456"),
	MustParse("-123.456"),
	MustParse("97276714306369.00003331527114698671"),
	MustParse("-0.00000000000000000000000000000000000001"),
	MustParse("170141183460469231731687303715884105727"),
	FromInt(10),
	FromInt(-10),
	FromFloat(3.14159265358979),
	FromFloat(-2.718281828459045),
	NewFix256(0x0123456789abcdef, 0xfedcba9876543210, 0x0f1e2d3c4b5a6978, 0x8796a5b4c3d2e1f0),
	NewFix256(0xdeadbeefdeadbeef, 0xcafebabecafebabe, 0x0123456789abcdef, 0xfedcba9876543210),
}

func TestIsNegIsZero(t *testing.T) {
	require.False(t, Fix256Zero.IsNeg())
	require.True(t, Fix256Zero.IsZero())
	require.False(t, Fix256One.IsNeg())
	require.True(t, Fix256One.Neg().IsNeg())
	require.True(t, Fix256Min.IsNeg())
	require.False(t, Fix256Max.IsNeg())
	require.False(t, Fix256Smallest.IsNeg())
}

func TestSign(t *testing.T) {
	a := FromFloat(-4.25)
	b := FromFloat(4.25)

	require.True(t, a.IsNeg())
	require.False(t, b.IsNeg())

	require.Equal(t, b, a.Neg())
	require.Equal(t, a, b.Neg())

	require.Equal(t, b, a.Abs())
	require.Equal(t, b, b.Abs())

	require.Equal(t, a, a.Nabs())
	require.Equal(t, a, b.Nabs())

	// Negating the minimum value wraps back to itself.
	require.Equal(t, Fix256Min, Fix256Min.Neg())
	require.Equal(t, Fix256Min, Fix256Min.Abs())
}

func TestAbsNabsProperties(t *testing.T) {
	for _, v := range corpus {
		if v == Fix256Min {
			continue
		}

		abs := v.Abs()
		require.False(t, abs.IsNeg(), "abs(%v)", v)
		require.Equal(t, abs.Neg(), v.Nabs(), "nabs(%v)", v)

		if v.IsNeg() {
			require.Equal(t, v.Neg(), abs)
		} else {
			require.Equal(t, v, abs)
		}
	}
}

func TestCmp(t *testing.T) {
	// 1.5, 1.25, -0.5, -0.75: mixed-sign ordering has to fall out of the
	// signed high-limb comparison alone.
	a := NewFix256(0, 1, 1<<63, 0)
	b := NewFix256(0, 1, 1<<62, 0)
	c := NewFix256(^uint64(0), ^uint64(0), 1<<63, 0)
	d := NewFix256(^uint64(0), ^uint64(0), 1<<62, 0)

	require.Equal(t, 0, a.Cmp(a))
	require.Equal(t, 1, a.Cmp(b))
	require.Equal(t, 1, a.Cmp(c))
	require.Equal(t, 1, a.Cmp(d))
	require.Equal(t, -1, b.Cmp(a))
	require.Equal(t, 0, b.Cmp(b))
	require.Equal(t, 1, b.Cmp(c))
	require.Equal(t, 1, b.Cmp(d))
	require.Equal(t, -1, c.Cmp(a))
	require.Equal(t, -1, c.Cmp(b))
	require.Equal(t, 0, c.Cmp(c))
	require.Equal(t, 1, c.Cmp(d))
	require.Equal(t, -1, d.Cmp(a))
	require.Equal(t, -1, d.Cmp(b))
	require.Equal(t, -1, d.Cmp(c))
	require.Equal(t, 0, d.Cmp(d))
}

func TestCmpTotalOrder(t *testing.T) {
	for _, a := range corpus {
		for _, b := range corpus {
			require.Equal(t, a.Cmp(b), -b.Cmp(a), "antisymmetry %v %v", a, b)
			require.Equal(t, a == b, a.Cmp(b) == 0, "identity %v %v", a, b)
			require.Equal(t, a.Cmp(b) < 0, a.Lt(b))
			require.Equal(t, a.Cmp(b) > 0, a.Gt(b))
			require.Equal(t, a.Cmp(b) <= 0, a.Lte(b))
			require.Equal(t, a.Cmp(b) >= 0, a.Gte(b))

			for _, c := range corpus {
				if a.Lte(b) && b.Lte(c) {
					require.True(t, a.Lte(c), "transitivity %v %v %v", a, b, c)
				}
			}
		}
	}
}

func TestMinMax(t *testing.T) {
	for _, a := range corpus {
		for _, b := range corpus {
			lo, hi := a.Min(b), a.Max(b)
			require.True(t, lo.Lte(hi))
			require.True(t, lo.Eq(a) || lo.Eq(b))
			require.True(t, hi.Eq(a) || hi.Eq(b))
			require.Equal(t, lo, b.Min(a))
			require.Equal(t, hi, b.Max(a))
		}
	}
}

func TestAdditiveGroup(t *testing.T) {
	for _, a := range corpus {
		require.Equal(t, Fix256Zero, a.Add(a.Neg()), "a + (-a) = 0 for %v", a)
		require.Equal(t, a, a.Add(Fix256Zero), "a + 0 = a for %v", a)
		require.Equal(t, a, a.Sub(Fix256Zero))

		for _, b := range corpus {
			require.Equal(t, a.Add(b.Neg()), a.Sub(b), "a - b = a + (-b) for %v %v", a, b)
			require.Equal(t, a.Add(b), b.Add(a), "commutativity %v %v", a, b)
			require.Equal(t, a, a.Add(b).Sub(b), "add then sub round-trips %v %v", a, b)
		}
	}
}

func TestMulIdentities(t *testing.T) {
	for _, v := range corpus {
		require.Equal(t, v, v.Mul(Fix256One), "v * 1 = v for %v", v)
		require.Equal(t, v, Fix256One.Mul(v))
		require.Equal(t, Fix256Zero, v.Mul(Fix256Zero), "v * 0 = 0 for %v", v)

		for _, w := range corpus {
			require.Equal(t, v.Mul(w), w.Mul(v), "commutativity %v %v", v, w)
		}
	}
}

func TestMulBasic(t *testing.T) {
	testcases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"2", "3", "6"},
		{"-2", "3", "-6"},
		{"2", "-3", "-6"},
		{"-2", "-3", "6"},
		{"0.5", "0.5", "0.25"},
		{"-0.5", "0.5", "-0.25"},
		{"1.5", "1.5", "2.25"},
		{"123.25", "4", "493"},
		{"0.0625", "16", "1"},
		{"170141183460469231731687303715884105727", "0.5", "85070591730234615865843651857942052863.5"},
	}

	for _, tc := range testcases {
		t.Run(fmt.Sprintf("%s*%s", tc.a, tc.b), func(t *testing.T) {
			got := MustParse(tc.a).Mul(MustParse(tc.b))
			require.Equal(t, MustParse(tc.want), got)
		})
	}
}

func TestMulHalfUlpRoundsUp(t *testing.T) {
	// smallest * 0.5 sits exactly on the half-ULP boundary; the low lane's
	// top bit is the only set bit of the discarded product, so the result
	// rounds up to smallest rather than truncating to zero.
	got := Fix256Smallest.Mul(MustParse("0.5"))
	require.Equal(t, Fix256Smallest, got)

	// just below half rounds down
	got = Fix256Smallest.Mul(MustParse("0.25"))
	require.Equal(t, Fix256Zero, got)
}

func TestMulWraps(t *testing.T) {
	// max * 2 wraps modulo 2^256 rather than saturating
	two := FromInt(2)
	wrapped := Fix256Max.Mul(two)
	require.Equal(t, Fix256Max.Add(Fix256Max), wrapped)
}
