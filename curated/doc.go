// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values.
//
// The pattern is what identifies a curated error. Sentinel errors are
// therefore pattern strings, stored as a const and named appropriately. For
// example, the cpu package defines:
//
//	const DecodeFault = "cpu: decode fault at (%#04x): %v"
//
// and a caller can check for it with:
//
//	if curated.Is(err, cpu.DecodeFault) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the chain of curated errors. Curated errors that have another error as one
// of their values are said to wrap that error. The first such error is also
// returned by Unwrap(), so errors.Is() and errors.As() from the standard
// library work as expected.
//
// The Error() function normalises the message of a chain. Parts are
// separated by the sub-string ": " and adjacent duplicate parts are removed.
// So a message that would otherwise read:
//
//	cpu: cpu: unassigned opcode (0x02)
//
// is instead:
//
//	cpu: unassigned opcode (0x02)
package curated
