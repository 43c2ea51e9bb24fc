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

import "fmt"

// The arithmetic operations never return errors: exceptional conditions
// are reported through sentinel values (divide by zero saturates, roots
// of negative numbers return Fix256Min, and so on). The errors below
// exist only at the codec boundary, where malformed external data has to
// be rejected rather than absorbed.

var (
	// ErrEmptyString is returned when unmarshalling an empty input.
	ErrEmptyString = fmt.Errorf("can't parse empty string")

	// ErrInvalidFormat is returned when an input string is not a valid
	// decimal or 0x-prefixed hexadecimal number, or carries trailing
	// characters after the number.
	ErrInvalidFormat = fmt.Errorf("invalid format")

	// ErrInvalidBinaryData is returned when unmarshalling binary data
	// that is not the 32-byte big-endian form written by MarshalBinary.
	ErrInvalidBinaryData = fmt.Errorf("invalid binary data")

	// ErrScanType is returned by Scan when the source is nil or a type
	// it does not support.
	ErrScanType = fmt.Errorf("unsupported scan type")
)
