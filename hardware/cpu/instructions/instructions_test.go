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

package instructions_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDefinitionsTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var count int
	modes := make(map[instructions.AddressingMode]bool)
	operators := make(map[instructions.Operator]bool)

	for opcode, defn := range defs {
		if defn == nil {
			continue
		}
		count++

		tag := fmt.Sprintf("opcode %#02x", opcode)

		test.ExpectEquality(t, int(defn.OpCode), opcode, tag)
		test.ExpectEquality(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes(), tag)
		test.ExpectSuccess(t, defn.Bytes >= 1 && defn.Bytes <= 3, tag)
		test.ExpectSuccess(t, defn.Cycles >= 2 && defn.Cycles <= 7, tag)
		test.ExpectSuccess(t, defn.Operator.Supports(defn.AddressingMode), tag)

		// branches are the only instructions that use relative addressing
		test.ExpectEquality(t, defn.IsBranch(), defn.AddressingMode == instructions.Relative, tag)

		modes[defn.AddressingMode] = true
		operators[defn.Operator] = true
	}

	test.ExpectEquality(t, count, 151)
	test.ExpectEquality(t, len(modes), instructions.NumAddressingModes)
	test.ExpectEquality(t, len(operators), instructions.NumOperators)
}

func TestDecode(t *testing.T) {
	defn, err := instructions.Decode(0xa9)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Lda)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defn.Bytes, 2)
	test.ExpectEquality(t, defn.Cycles, 2)
	test.ExpectEquality(t, defn.Effect, instructions.Read)

	defn, err = instructions.Decode(0x6c)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.Operator, instructions.Jmp)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, defn.Bytes, 3)

	defn, err = instructions.Decode(0x0a)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Accumulator)
	test.ExpectEquality(t, defn.Bytes, 1)

	// decoding is a table lookup. the same definition is returned every time
	a, _ := instructions.Decode(0x85)
	b, _ := instructions.Decode(0x85)
	test.ExpectSuccess(t, a == b)

	// unassigned opcodes
	for _, opcode := range []uint8{0x02, 0x03, 0x80, 0xff} {
		defn, err = instructions.Decode(opcode)
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, defn == nil)
		test.ExpectSuccess(t, curated.Is(err, instructions.UnassignedOpcode))
	}

	_, err = instructions.Decode(0x02)
	test.ExpectEquality(t, err.Error(), "unassigned opcode (0x02)")
}

func TestSupports(t *testing.T) {
	test.ExpectSuccess(t, instructions.Lda.Supports(instructions.IndirectIndexed))
	test.ExpectFailure(t, instructions.Lda.Supports(instructions.Implied))
	test.ExpectFailure(t, instructions.Lda.Supports(instructions.ZeroPageIndexedY))
	test.ExpectSuccess(t, instructions.Ldx.Supports(instructions.ZeroPageIndexedY))
	test.ExpectFailure(t, instructions.Sta.Supports(instructions.Immediate))
	test.ExpectSuccess(t, instructions.Asl.Supports(instructions.Accumulator))
	test.ExpectFailure(t, instructions.Jmp.Supports(instructions.Relative))

	// out of range values
	test.ExpectFailure(t, instructions.Operator(-1).Supports(instructions.Implied))
	test.ExpectFailure(t, instructions.Nop.Supports(instructions.AddressingMode(100)))
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, instructions.Lda.String(), "LDA")
	test.ExpectEquality(t, instructions.Tya.String(), "TYA")
	test.ExpectEquality(t, instructions.Operator(1000).String(), "???")
	test.ExpectEquality(t, instructions.IndirectIndexed.String(), "IndirectIndexed")
	test.ExpectEquality(t, instructions.RMW.String(), "RMW")

	defn, _ := instructions.Decode(0xa9)
	test.ExpectEquality(t, defn.String(), "a9 LDA +2bytes (2 cycles) [mode=Immediate effect=Read]")
}
