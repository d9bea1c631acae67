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

package cpubus

// Reset is the address the program counter is set to on reset.
const Reset = uint16(0xfffc)

// BRK is the address the program counter is set to by the BRK instruction.
const BRK = uint16(0xfffe)

// StackOrigin is the base address of the stack page. The effective stack
// address is StackOrigin plus the stack pointer.
const StackOrigin = uint16(0x0100)

// ZeroPage is the top address of page zero.
const ZeroPage = uint16(0x00ff)

// Memtop is the highest addressable location.
const Memtop = uint16(0xffff)

// Vectors maps the fixed CPU addresses to a label. Used by disassembly and
// reflection output.
var Vectors = map[uint16]string{
	Reset: "RESET",
	BRK:   "BRK",
}
