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

// Package cpu emulates the 6502 microprocessor at the instruction level. The
// CPU executes instructions according to the single byte value read from the
// address pointed to by the program counter. This single byte is the opcode
// and is looked up in the instruction table. The instruction definition for
// that opcode is then used to move execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface. The
// interface defines the memory operations required by the CPU.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called once for every cycle
// of the instruction. Cycles are counted from the instruction definition; the
// cost of page crossing and taken branches is not modelled.
//
//	mc := cpu.NewCPU(nil, mem)
//	mc.Reset()
//
//	numCycles := 0
//	for !mc.Halted {
//		err := mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		if err != nil {
//			...
//		}
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Execution stops when the BRK instruction is executed or when the CPU meets
// an opcode it cannot execute. In both cases the Halted field is set to true.
// Faults are returned as curated errors. See DecodeFault and
// UnsupportedAddressingFault.
package cpu
