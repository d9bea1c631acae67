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

package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// read the byte pointed to by the PC and advance the PC by one
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read the word pointed to by the PC and advance the PC by two
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return (uint16(hi) << 8) | uint16(lo)
}

// read a little-endian word. the address of the high byte wraps around at
// the top of memory
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// read a little-endian word from a pointer in page zero. the high byte is
// read from the next address in page zero
func (mc *CPU) read16BitZeroPage(pointer uint8) uint16 {
	if pointer == 0xff {
		mc.LastResult.CPUBug = execution.ZeroPagePointerBug
	}
	lo := mc.mem.Read(uint16(pointer))
	hi := mc.mem.Read(uint16(pointer + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// resolveAddressing reads the operand of the instruction and returns the
// effective address. For immediate addressing the operand is returned as the
// value. Implied and accumulator addressing read no operand.
//
// The PC is advanced by the number of operand bytes and the operand is
// recorded in LastResult.
func (mc *CPU) resolveAddressing(mode instructions.AddressingMode) (address uint16, value uint8) {
	switch mode {
	case instructions.Implied:

	case instructions.Accumulator:
		value = mc.A.Value()

	case instructions.Immediate:
		value = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		offset := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(offset)

		// the branch offset is relative to the address of the next
		// instruction. the PC has already been advanced to that address
		pc := mc.PC
		pc.AddRelative(offset)
		address = pc.Address()

	case instructions.ZeroPage:
		operand := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(operand)
		address = uint16(operand)

	case instructions.ZeroPageIndexedX:
		operand := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(operand)
		address = mc.zeroPageIndexed(operand, mc.X.Value())

	case instructions.ZeroPageIndexedY:
		operand := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(operand)
		address = mc.zeroPageIndexed(operand, mc.Y.Value())

	case instructions.Absolute:
		address = mc.read16BitPC()
		mc.LastResult.InstructionData = address

	case instructions.AbsoluteIndexedX:
		operand := mc.read16BitPC()
		mc.LastResult.InstructionData = operand
		address = operand + mc.X.Address()

	case instructions.AbsoluteIndexedY:
		operand := mc.read16BitPC()
		mc.LastResult.InstructionData = operand
		address = operand + mc.Y.Address()

	case instructions.Indirect:
		pointer := mc.read16BitPC()
		mc.LastResult.InstructionData = pointer

		// the 6502 does not carry into the high byte of the pointer when
		// reading the high byte of the address. a pointer at the end of a
		// page takes its high byte from the start of the same page
		if pointer&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
			lo := mc.mem.Read(pointer)
			hi := mc.mem.Read(pointer & 0xff00)
			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			address = mc.read16Bit(pointer)
		}

	case instructions.IndexedIndirect: // x indexing
		operand := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(operand)
		address = mc.read16BitZeroPage(operand + mc.X.Value())

	case instructions.IndirectIndexed: // y indexing
		operand := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(operand)
		address = mc.read16BitZeroPage(operand) + mc.Y.Address()
	}

	return address, value
}

// add index to zero page address. the result never leaves page zero
func (mc *CPU) zeroPageIndexed(operand uint8, index uint8) uint16 {
	address := operand + index
	if address < operand {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}
	return uint16(address)
}
