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

// Package fixedPoint provides a 256-bit signed fixed-point number type in
// Q128.128 format: 128 integer bits and 128 fractional bits, stored as a
// single two's-complement integer. The representable range is
// [-2^127, 2^127 - 2^-128] with a resolution of 2^-128, and every 256-bit
// pattern is a valid value.
//
// The package supplies the full arithmetic, bitwise, comparison, and
// rounding surface over this type, Newton-Raphson square root and
// reciprocal square root, and decimal/hexadecimal string conversion that
// round-trips exactly through 39 fractional decimal digits. It is aimed
// at workloads that need deterministic high-precision fractional
// arithmetic without floating-point rounding: financial modelling,
// coordinate systems in very large simulations, deterministic game and
// physics state.
//
// # Semantics
//
// Addition, subtraction, negation, and multiplication wrap modulo 2^256,
// preserving the usual algebraic identities. Only the boundaries
// saturate: float conversion clamps to Fix256Min/Fix256Max (NaN converts
// to zero), division by zero returns the extreme with the sign of the
// numerator, and Sqrt/Rsqrt of out-of-domain inputs return Fix256Min as a
// sentinel. No operation returns an error and nothing allocates beyond
// the strings and slices the caller asks for.
//
// # Concurrency
//
// Every operation is a pure function of its operands. The only mutable
// package state is the decimal separator used by formatting and parsing;
// writes to it are not synchronised and should happen during program
// initialisation.
//
// # Codec
//
// Fix256 implements the text, JSON, and binary marshalling interfaces,
// sql.Scanner and driver.Valuer for SQL databases, and DynamoDB attribute
// value marshalling.
package fixedPoint
