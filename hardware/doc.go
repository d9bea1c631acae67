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

// Package hardware is the base package for the 6502 machine. It ties the CPU
// and memory together and provides the Step() and Run() functions that move
// the emulation forward.
//
// The Machine type is the only type that is required to emulate a program. A
// typical session looks like this:
//
//	m, err := hardware.NewMachine(nil)
//	if err != nil {
//		...
//	}
//
//	m.Mem.Load(0xfffc, program...)
//
//	err = m.Run(nil)
//	if err != nil {
//		...
//	}
//
// Note that Reset() zeroes memory so programs must be loaded after the
// machine has been reset.
//
// The state of the machine can be copied with Snapshot() and restored with
// Plumb().
package hardware
