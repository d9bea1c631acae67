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
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/govern"
)

// ReflectionError is the pattern for errors returned by the reflector.
const ReflectionError = "machine: reflection: %v"

// the cycle callback used by Step(). it does nothing but count cycles
func (m *Machine) cycle() error {
	m.Cycles++
	return nil
}

// Step the machine forward one CPU instruction.
//
// The returned state is govern.Halted if the instruction was BRK or if the
// CPU could not execute the instruction. In the latter case the fault is also
// returned as an error.
//
// Stepping a halted machine does nothing and returns govern.Halted.
func (m *Machine) Step() (govern.State, error) {
	if m.CPU.Halted {
		return govern.Halted, nil
	}

	err := m.CPU.ExecuteInstruction(m.cycle)
	if err != nil {
		return m.State(), err
	}

	m.Instructions++

	for _, r := range m.reflectors {
		if err := r.OnInstructionEnd(m); err != nil {
			return m.State(), curated.Errorf(ReflectionError, err)
		}
	}

	return m.State(), nil
}
