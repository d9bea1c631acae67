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

// Package registers implements the 6502 registers: the 8 bit A, X and Y
// registers, the 16 bit program counter, the stack pointer and the status
// register.
//
// The Register type implements the arithmetic and logical operations. The
// operations return the carry and overflow bits where appropriate, the status
// flags are not updated. It is up to the CPU to decide which flags are
// affected by an instruction.
//
// All arithmetic wraps. The Add() function of the ProgramCounter wraps around
// from 0xffff to 0x0000. The stack pointer wraps from 0x00 to 0xff and back.
package registers
