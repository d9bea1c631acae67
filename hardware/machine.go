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
	"github.com/jetsetilly/gopher6502/hardware/govern"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/logger"
)

// Reflector implementations are notified at the end of every instruction
// executed by the Machine.
type Reflector interface {
	OnInstructionEnd(m *Machine) error
}

// Machine is the 6502 and the memory attached to it.
type Machine struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Memory

	// the number of CPU cycles and the number of instructions executed since
	// the last reset
	Cycles       int
	Instructions int

	reflectors []Reflector
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The machine is reset before being returned.
//
// The prefs argument can be nil, in which case a new preferences instance is
// created. Providing a non-nil value allows the preferences of more than one
// machine to be shared.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	m := &Machine{
		Prefs: prefs,
		Mem:   memory.NewMemory(),
	}
	m.CPU = cpu.NewCPU(m.Prefs, m.Mem)
	m.Reset()

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Reset the machine. Memory is zeroed and the CPU is reset. See cpu.Reset()
// for details of the CPU state after reset.
func (m *Machine) Reset() {
	m.Mem.Init()
	m.CPU.Reset()
	m.Cycles = 0
	m.Instructions = 0
	logger.Log(logger.Allow, "machine", "reset")
}

// State returns the current state of the machine.
func (m *Machine) State() govern.State {
	if m.CPU.Halted {
		return govern.Halted
	}
	return govern.Running
}

// Peek returns the value at address without any side effects.
func (m *Machine) Peek(address uint16) uint8 {
	return m.Mem.Peek(address)
}

// AddReflector attaches a Reflector to the machine. Reflectors are notified
// in the order they were added.
func (m *Machine) AddReflector(r Reflector) {
	m.reflectors = append(m.reflectors, r)
}

// ClearReflectors detaches all reflectors from the machine.
func (m *Machine) ClearReflectors() {
	m.reflectors = m.reflectors[:0]
}
