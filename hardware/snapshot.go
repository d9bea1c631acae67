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

package hardware

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
)

// State stores the machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU          *cpu.CPU
	Mem          *memory.Memory
	Cycles       int
	Instructions int
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	n := &State{
		CPU:          s.CPU.Snapshot(),
		Mem:          s.Mem.Snapshot(),
		Cycles:       s.Cycles,
		Instructions: s.Instructions,
	}
	n.CPU.Plumb(n.Mem)
	return n
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *State {
	s := &State{
		CPU:          m.CPU.Snapshot(),
		Mem:          m.Mem.Snapshot(),
		Cycles:       m.Cycles,
		Instructions: m.Instructions,
	}
	s.CPU.Plumb(s.Mem)
	return s
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// the memory is copied into the existing memory instance and the CPU is a
	// copy of the stored CPU. we don't want the machine to change what we have
	// stored in the state
	m.Mem.Plumb(state.Mem)
	m.CPU = state.CPU.Snapshot()
	m.CPU.Plumb(m.Mem)

	m.Cycles = state.Cycles
	m.Instructions = state.Instructions
}
