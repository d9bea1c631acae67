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

// Package memory implements the 64K flat memory attached to the CPU. Every
// address is readable and writable and there is no memory mapped I/O.
//
// Word access is little-endian. The address of the high byte wraps around
// from 0xffff to 0x0000.
//
// The Load() function is the interface for loading programs. It is used by
// the hardware package and by tests.
package memory
