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

// Exported fixed-point type. A Fix256 is a 256-bit two's-complement
// integer interpreted as the rational value v / 2^128: the Hi limb holds
// the integer bits (with the sign bit on top), the Lo limb holds the
// fractional bits.
type Fix256 raw256

// Internal types. raw128 and raw256 carry no numeric interpretation of
// their own; they are plain two's-complement bit patterns.
type raw64 uint64

type raw128 struct {
	Hi raw64
	Lo raw64
}

type raw256 struct {
	Hi raw128
	Lo raw128
}

// NewFix256 builds a value from its four 64-bit limbs, most significant
// first: r3 holds bits 255..192 (including the sign bit), r0 holds bits
// 63..0 (the lowest fractional bits).
func NewFix256(r3, r2, r1, r0 uint64) Fix256 {
	return Fix256{
		Hi: raw128{Hi: raw64(r3), Lo: raw64(r2)},
		Lo: raw128{Hi: raw64(r1), Lo: raw64(r0)},
	}
}

var (
	// Fix256Zero is 0.
	Fix256Zero = Fix256{}

	// Fix256One is 1.0.
	Fix256One = NewFix256(0, 1, 0, 0)

	// Fix256Smallest is the smallest positive value, 2^-128.
	Fix256Smallest = NewFix256(0, 0, 0, 1)

	// Fix256Min is the most negative value, -2^127.
	Fix256Min = NewFix256(1<<63, 0, 0, 0)

	// Fix256Max is the most positive value, 2^127 - 2^-128.
	Fix256Max = NewFix256(1<<63-1, ^uint64(0), ^uint64(0), ^uint64(0))
)

// decimalSeparator is the character used between the integer and
// fractional digits by both the formatter and the parser.
//
// Writes are not synchronised; set it during program initialisation,
// before any formatting or parsing begins.
var decimalSeparator byte = '.'

// DecimalSeparator returns the current decimal separator character.
func DecimalSeparator() byte {
	return decimalSeparator
}

// SetDecimalSeparator changes the decimal separator used by formatting
// and parsing. The default is '.'.
func SetDecimalSeparator(c byte) {
	decimalSeparator = c
}
