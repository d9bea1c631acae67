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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Unused entries are bytes that do not decode to an instruction.
//
// Decoded entries have been decoded as though the byte is the start of an
// instruction.
//
// Executed entries have been reached by the CPU.
const (
	EntryLevelUnused EntryLevel = iota
	EntryLevelDecoded
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// copy of the CPU execution. for entries that have not been executed the
	// Result is produced by the decoder and the Final field is false
	Result execution.Result

	// name of the address if it has a special meaning to the CPU
	Label string

	// string representations of information in execution.Result
	Bytecode    string
	Instruction string
}

// update string representations of the result
func (e *Entry) update() {
	e.Bytecode = e.Result.Bytes()
	e.Instruction = e.Result.String()
}

func (e Entry) String() string {
	return fmt.Sprintf("$%04X %s", e.Result.Address, e.Instruction)
}

// Notes returns a string returning notes about the most recent execution. The
// information is made up of the BranchSuccess and CPUBug fields.
func (e Entry) Notes() string {
	if e.Level < EntryLevelExecuted {
		return ""
	}

	n := make([]string, 0, 2)

	if e.Result.Defn.IsBranch() {
		if e.Result.BranchSuccess {
			n = append(n, "branch succeeded")
		} else {
			n = append(n, "branch failed")
		}
	}

	if e.Result.CPUBug != execution.NoBug {
		n = append(n, string(e.Result.CPUBug))
	}

	return strings.Join(n, ", ")
}
