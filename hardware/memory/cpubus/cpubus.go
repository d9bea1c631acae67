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

// Package cpubus defines the interface between the CPU and the memory it is
// attached to. It also names the fixed addresses the CPU refers to.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Memory in this system cannot fail so there are no error returns.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebugBus defines the meta-operations for all memory areas. Peek and Poke
// never cause side effects.
type DebugBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}
