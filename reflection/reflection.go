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

package reflection

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Renderer implementations process batches of Entry values.
type Renderer interface {
	// Reflect is called with the entries gathered since the previous call.
	// The oldest entry is first.
	//
	// Implementations can keep the ref slice. It is not used again by the
	// Gatherer.
	Reflect(ref []Entry) error
}

// Entry is a reflection of the machine at the end of a single instruction.
type Entry struct {
	Result execution.Result

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// the number of cycles since the machine was reset
	Cycles int
}

func newEntry(m *hardware.Machine) Entry {
	return Entry{
		Result: m.CPU.LastResult,
		PC:     m.CPU.PC,
		A:      m.CPU.A,
		X:      m.CPU.X,
		Y:      m.CPU.Y,
		SP:     m.CPU.SP,
		Status: m.CPU.Status,
		Cycles: m.Cycles,
	}
}

// String returns the entry as a single line of trace output. The registers
// are shown as they were after the instruction.
func (e Entry) String() string {
	label := cpubus.Vectors[e.Result.Address]
	return fmt.Sprintf("%-5s $%04X  %-8s  %-12s  %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		label, e.Result.Address, e.Result.Bytes(), e.Result.String(),
		e.PC.Label(), e.PC, e.A.Label(), e.A, e.X.Label(), e.X, e.Y.Label(), e.Y,
		e.SP.Label(), e.SP, e.Status.Label(), e.Status)
}
