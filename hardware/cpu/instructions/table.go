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

package instructions

// the documented instruction set of the 6502. the Bytes field is filled in
// by init() from the addressing mode
var table = []Definition{
	{OpCode: 0x00, Operator: Brk, Cycles: 7, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x01, Operator: Ora, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x05, Operator: Ora, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x06, Operator: Asl, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x08, Operator: Php, Cycles: 3, AddressingMode: Implied, Effect: Write},
	{OpCode: 0x09, Operator: Ora, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x0a, Operator: Asl, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	{OpCode: 0x0d, Operator: Ora, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x0e, Operator: Asl, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x10, Operator: Bpl, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x11, Operator: Ora, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x15, Operator: Ora, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x16, Operator: Asl, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x18, Operator: Clc, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x19, Operator: Ora, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x1d, Operator: Ora, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x1e, Operator: Asl, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x20, Operator: Jsr, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine},
	{OpCode: 0x21, Operator: And, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x24, Operator: Bit, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x25, Operator: And, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x26, Operator: Rol, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x28, Operator: Plp, Cycles: 4, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x29, Operator: And, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x2a, Operator: Rol, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	{OpCode: 0x2c, Operator: Bit, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x2d, Operator: And, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x2e, Operator: Rol, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x30, Operator: Bmi, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x31, Operator: And, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x35, Operator: And, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x36, Operator: Rol, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x38, Operator: Sec, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x39, Operator: And, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x3d, Operator: And, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x3e, Operator: Rol, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x40, Operator: Rti, Cycles: 6, AddressingMode: Implied, Effect: Interrupt},
	{OpCode: 0x41, Operator: Eor, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x45, Operator: Eor, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x46, Operator: Lsr, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x48, Operator: Pha, Cycles: 3, AddressingMode: Implied, Effect: Write},
	{OpCode: 0x49, Operator: Eor, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x4a, Operator: Lsr, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	{OpCode: 0x4c, Operator: Jmp, Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	{OpCode: 0x4d, Operator: Eor, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x4e, Operator: Lsr, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x50, Operator: Bvc, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x51, Operator: Eor, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x55, Operator: Eor, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x56, Operator: Lsr, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x58, Operator: Cli, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x59, Operator: Eor, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x5d, Operator: Eor, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x5e, Operator: Lsr, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x60, Operator: Rts, Cycles: 6, AddressingMode: Implied, Effect: Subroutine},
	{OpCode: 0x61, Operator: Adc, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0x65, Operator: Adc, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x66, Operator: Ror, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x68, Operator: Pla, Cycles: 4, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x69, Operator: Adc, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x6a, Operator: Ror, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	{OpCode: 0x6c, Operator: Jmp, Cycles: 5, AddressingMode: Indirect, Effect: Flow},
	{OpCode: 0x6d, Operator: Adc, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x6e, Operator: Ror, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x70, Operator: Bvs, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x71, Operator: Adc, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0x75, Operator: Adc, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0x76, Operator: Ror, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0x78, Operator: Sei, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x79, Operator: Adc, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0x7d, Operator: Adc, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0x7e, Operator: Ror, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0x81, Operator: Sta, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write},
	{OpCode: 0x84, Operator: Sty, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x85, Operator: Sta, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x86, Operator: Stx, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x88, Operator: Dey, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8a, Operator: Txa, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8c, Operator: Sty, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x8d, Operator: Sta, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x8e, Operator: Stx, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x90, Operator: Bcc, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x91, Operator: Sta, Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write},
	{OpCode: 0x94, Operator: Sty, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x95, Operator: Sta, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	{OpCode: 0x96, Operator: Stx, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write},
	{OpCode: 0x98, Operator: Tya, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x99, Operator: Sta, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write},
	{OpCode: 0x9a, Operator: Txs, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x9d, Operator: Sta, Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write},
	{OpCode: 0xa0, Operator: Ldy, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa1, Operator: Lda, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xa2, Operator: Ldx, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa4, Operator: Ldy, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa5, Operator: Lda, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa6, Operator: Ldx, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa9, Operator: Lda, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xaa, Operator: Tax, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xac, Operator: Ldy, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xad, Operator: Lda, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xae, Operator: Ldx, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xb0, Operator: Bcs, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xb1, Operator: Lda, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0xb4, Operator: Ldy, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xb5, Operator: Lda, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xb6, Operator: Ldx, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Read},
	{OpCode: 0xb8, Operator: Clv, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb9, Operator: Lda, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xba, Operator: Tsx, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xbc, Operator: Ldy, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xbd, Operator: Lda, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xbe, Operator: Ldx, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xc0, Operator: Cpy, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xc1, Operator: Cmp, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xc4, Operator: Cpy, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xc5, Operator: Cmp, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xc6, Operator: Dec, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xc8, Operator: Iny, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc9, Operator: Cmp, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xca, Operator: Dex, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xcc, Operator: Cpy, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xcd, Operator: Cmp, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xce, Operator: Dec, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xd0, Operator: Bne, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xd1, Operator: Cmp, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0xd5, Operator: Cmp, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xd6, Operator: Dec, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0xd8, Operator: Cld, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd9, Operator: Cmp, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xdd, Operator: Cmp, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xde, Operator: Dec, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	{OpCode: 0xe0, Operator: Cpx, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xe1, Operator: Sbc, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: 0xe4, Operator: Cpx, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xe5, Operator: Sbc, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xe6, Operator: Inc, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0xe8, Operator: Inx, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xe9, Operator: Sbc, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xea, Operator: Nop, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xec, Operator: Cpx, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xed, Operator: Sbc, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xee, Operator: Inc, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0xf0, Operator: Beq, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xf1, Operator: Sbc, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read},
	{OpCode: 0xf5, Operator: Sbc, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xf6, Operator: Inc, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	{OpCode: 0xf8, Operator: Sed, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf9, Operator: Sbc, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read},
	{OpCode: 0xfd, Operator: Sbc, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read},
	{OpCode: 0xfe, Operator: Inc, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
}
