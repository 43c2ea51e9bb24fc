/*
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fixedPoint

import (
	"math"
)

// 2^64 and 2^127 as float64 values. Both are powers of two and therefore
// exact.
const (
	two64F  = 18446744073709551616.0
	two127F = 1.7014118346046923e+38
)

// FromInt converts an int64 to a Fix256. Can't fail; every int64 is
// representable.
func FromInt(v int64) Fix256 {
	// Sign-extend into the upper integer limb.
	return Fix256{
		Hi: raw128{Hi: raw64(v >> 63), Lo: raw64(v)},
		Lo: raw128Zero,
	}
}

// ToInt converts `a` to an int64, truncating toward zero. Only the low 64
// bits of the integer part are kept.
func (a Fix256) ToInt() int64 {
	n := int64(a.Hi.Lo)
	if a.IsNeg() && !isZero128(a.Lo) {
		// Truncating the fraction of a negative value moved it toward
		// negative infinity; compensate to truncate toward zero.
		n++
	}
	return n
}

// FromFloat converts a float64 to a Fix256. Values outside
// [-2^127, 2^127) saturate to Fix256Min / Fix256Max, and NaN converts to
// zero.
func FromFloat(v float64) Fix256 {
	if math.IsNaN(v) {
		return Fix256Zero
	}
	if v < -two127F {
		return Fix256Min
	}
	if v >= two127F {
		return Fix256Max
	}

	sign := false
	if v < 0 {
		v = -v
		sign = true
	}

	whole := math.Trunc(v)
	res := raw256{
		Hi: u128FromFloat(whole),
		// The scale by 2^128 is a power of two and exact; only the
		// conversion itself truncates.
		Lo: u128FromFloat(math.Ldexp(v-whole, 128)),
	}

	if sign {
		res = neg256(res)
	}

	return Fix256(res)
}

// ToFloat converts `a` to a float64. The limbs are converted and summed
// separately, so the result can differ from the nearest float64 in the
// last bit.
func (a Fix256) ToFloat() float64 {
	tmp := raw256(a)
	sign := false
	if isNeg256(tmp) {
		tmp = neg256(tmp)
		sign = true
	}

	d := u128ToFloat(tmp.Hi) + math.Ldexp(u128ToFloat(tmp.Lo), -128)
	if sign {
		d = -d
	}

	return d
}

// u128FromFloat truncates a float64 in [0, 2^128) to a raw128.
func u128FromFloat(f float64) raw128 {
	if f >= two64F {
		// Dividing by a power of two only adjusts the exponent, so the
		// high-limb quotient and the remainder are both exact.
		hi := raw64(f / two64F)
		lo := raw64(f - float64(hi)*two64F)
		return raw128{Hi: hi, Lo: lo}
	}
	return raw128{Lo: raw64(f)}
}

func u128ToFloat(u raw128) float64 {
	return float64(u.Hi)*two64F + float64(u.Lo)
}
