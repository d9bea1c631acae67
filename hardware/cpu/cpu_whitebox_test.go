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
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

func TestUnsupportedAddressing(t *testing.T) {
	mem := memory.NewMemory()
	mc := NewCPU(nil, mem)
	mc.Reset()

	// a definition that the instructions table would never produce
	mc.instructions[0x02] = &instructions.Definition{
		OpCode:         0x02,
		Operator:       instructions.Lda,
		Bytes:          1,
		Cycles:         2,
		AddressingMode: instructions.Implied,
		Effect:         instructions.Read,
	}

	mc.A.Load(0x55)
	mem.Load(0x0200, 0x02)
	mc.PC.Load(0x0200)

	err := mc.ExecuteInstruction(NilCycleCallback)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, UnsupportedAddressingFault))
	test.ExpectEquality(t, err.Error(), "cpu: unsupported addressing mode (Implied) for LDA at (0x0200)")
	test.ExpectSuccess(t, mc.Halted)

	// nothing has changed
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	// the table used by other CPU instances is unaffected
	other := NewCPU(nil, mem)
	test.ExpectSuccess(t, other.instructions[0x02] == nil)
}

func TestEveryDefinitionExecutes(t *testing.T) {
	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}

		mem := memory.NewMemory()
		mc := NewCPU(nil, mem)
		mc.Reset()
		mem.Load(0x0200, defn.OpCode, 0x00, 0x00)
		mc.PC.Load(0x0200)

		// an operator missing from the execution switch panics
		err := mc.ExecuteInstruction(NilCycleCallback)
		test.ExpectSuccess(t, err, defn)
		test.ExpectSuccess(t, mc.LastResult.Final, defn)
		test.ExpectEquality(t, mc.LastResult.Defn, defn, defn)
	}
}
