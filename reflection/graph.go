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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// the parts of the machine that are included in the graph. the CPU type
// itself is not graphed because it refers to the whole of memory and to the
// instruction table
type graph struct {
	PC         registers.ProgramCounter
	A          registers.Register
	X          registers.Register
	Y          registers.Register
	SP         registers.StackPointer
	Status     registers.StatusRegister
	LastResult *execution.Result
	Halted     bool
	Cycles     int
}

// Graph writes the state of the machine's CPU to io.Writer in the Graphviz
// dot format.
func Graph(w io.Writer, m *hardware.Machine) {
	res := m.CPU.LastResult
	memviz.Map(w, &graph{
		PC:         m.CPU.PC,
		A:          m.CPU.A,
		X:          m.CPU.X,
		Y:          m.CPU.Y,
		SP:         m.CPU.SP,
		Status:     m.CPU.Status,
		LastResult: &res,
		Halted:     m.CPU.Halted,
		Cycles:     m.Cycles,
	})
}
