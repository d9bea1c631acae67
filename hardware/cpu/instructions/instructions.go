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

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
)

// UnassignedOpcode is the pattern for errors returned by Decode() when the
// opcode has no definition.
const UnassignedOpcode = "unassigned opcode (%#02x)"

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// table of definitions indexed by opcode. unassigned opcodes are nil
var definitions [256]*Definition

func init() {
	for i := range table {
		defn := &table[i]
		defn.Bytes = 1 + defn.AddressingMode.OperandBytes()
		definitions[defn.OpCode] = defn
		supported[defn.Operator][defn.AddressingMode] = true
	}
}

// GetDefinitions returns the table of instruction definitions for the 6502.
// The table is indexed by opcode. Unassigned opcodes have a nil entry.
//
// The slice is a copy of the table but the definitions are shared and should
// not be altered.
func GetDefinitions() []*Definition {
	d := make([]*Definition, len(definitions))
	copy(d, definitions[:])
	return d
}

// Decode returns the definition for the opcode. An error is returned if the
// opcode is not assigned.
func Decode(opcode uint8) (*Definition, error) {
	defn := definitions[opcode]
	if defn == nil {
		return nil, curated.Errorf(UnassignedOpcode, opcode)
	}
	return defn, nil
}
