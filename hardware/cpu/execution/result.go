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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the last executed CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. nil if the instruction could not be
	// decoded
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully decoded
	ByteCount int

	// the number of cycles counted for the instruction
	Cycles int

	// the operand of the instruction. for one byte operands the upper byte is
	// zero. not used for implied and accumulator addressing
	InstructionData uint16

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a known CPU bug was triggered by the instruction
	CPUBug Bug

	// whether this result is the final result of the instruction
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns the instruction in assembler notation. The operand of a
// relative branch is shown as the target address.
func (r Result) String() string {
	if r.Defn == nil {
		return "???"
	}

	operator := r.Defn.Operator.String()

	var operand string
	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		operand = "A"
	case instructions.Immediate:
		operand = fmt.Sprintf("#$%02X", r.InstructionData)
	case instructions.Relative:
		operand = fmt.Sprintf("$%04X", r.BranchTarget())
	case instructions.ZeroPage:
		operand = fmt.Sprintf("$%02X", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("$%02X,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("$%02X,Y", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf("$%04X", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf("$%04X,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf("$%04X,Y", r.InstructionData)
	case instructions.Indirect:
		operand = fmt.Sprintf("($%04X)", r.InstructionData)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("($%02X,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("($%02X),Y", r.InstructionData)
	}

	if operand == "" {
		return operator
	}
	return fmt.Sprintf("%s %s", operator, operand)
}

// BranchTarget returns the address a relative branch would jump to if the
// branch is taken.
func (r Result) BranchTarget() uint16 {
	return uint16(int32(r.Address) + 2 + int32(int8(r.InstructionData)))
}

// Bytes returns the bytes of the instruction as a string of hex values.
func (r Result) Bytes() string {
	if r.Defn == nil {
		return ""
	}
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02x", r.Defn.OpCode))
	if r.ByteCount > 1 {
		s.WriteString(fmt.Sprintf(" %02x", uint8(r.InstructionData)))
	}
	if r.ByteCount > 2 {
		s.WriteString(fmt.Sprintf(" %02x", uint8(r.InstructionData>>8)))
	}
	return s.String()
}
