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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/govern"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/test"
)

// jump from the reset address to a program that loops five times before
// halting
func loadLoop(m *hardware.Machine) {
	m.Mem.Load(cpubus.Reset, 0x4c, 0x00, 0x02) // JMP $0200
	m.Mem.Load(0x0200,
		0xa2, 0x05,       // LDX #$05
		0x8a,             // loop: TXA
		0x9d, 0x00, 0x03, // STA $0300,X
		0x69, 0x10,       // ADC #$10
		0x48,             // PHA
		0xca,             // DEX
		0xd0, 0xf6,       // BNE loop
		0x00,             // BRK
	)
}

// program that never halts
func loadForever(m *hardware.Machine) {
	m.Mem.Load(cpubus.Reset, 0x4c, 0xfc, 0xff) // JMP $FFFC
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	return m
}

func TestNewMachine(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.State(), govern.Running)
	test.ExpectEquality(t, m.CPU.PC.Address(), cpubus.Reset)
	test.ExpectEquality(t, m.CPU.SP.Value(), 0xff)
	test.ExpectEquality(t, m.Cycles, 0)
	test.ExpectEquality(t, m.Instructions, 0)
	test.ExpectEquality(t, m.String(), "PC=0xfffc A=0x00 X=0x00 Y=0x00 SP=0xff SR=sv-bdizc")
}

func TestStep(t *testing.T) {
	m := newMachine(t)
	m.Mem.Load(cpubus.Reset, 0xa9, 0x84)

	state, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state, govern.Running)
	test.ExpectEquality(t, m.CPU.A.Value(), 0x84)
	test.ExpectEquality(t, m.Cycles, 2)
	test.ExpectEquality(t, m.Instructions, 1)
	test.ExpectEquality(t, m.CPU.LastResult.String(), "LDA #$84")
}

func TestRun(t *testing.T) {
	m := newMachine(t)
	loadLoop(m)

	err := m.Run(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.State(), govern.Halted)
	test.ExpectEquality(t, m.Instructions, 33)
	test.ExpectEquality(t, m.Cycles, 92)
	test.ExpectEquality(t, m.CPU.SP.Value(), 0xfa)
	for x := range 5 {
		test.ExpectEquality(t, m.Peek(0x0301+uint16(x)), uint8(x+1), x)
	}

	// stepping a halted machine does nothing
	pc := m.CPU.PC.Address()
	state, err := m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
	test.ExpectEquality(t, m.CPU.PC.Address(), pc)
	test.ExpectEquality(t, m.Instructions, 33)

	// running a halted machine does nothing either
	test.ExpectSuccess(t, m.Run(nil))
	test.ExpectEquality(t, m.Instructions, 33)
}

func TestReset(t *testing.T) {
	m := newMachine(t)
	loadLoop(m)
	test.DemandSuccess(t, m.Run(nil))

	m.Reset()
	test.ExpectEquality(t, m.State(), govern.Running)
	test.ExpectEquality(t, m.Cycles, 0)
	test.ExpectEquality(t, m.Instructions, 0)
	test.ExpectEquality(t, m.CPU.PC.Address(), cpubus.Reset)
	test.ExpectEquality(t, m.Peek(0x0200), 0x00)
	test.ExpectEquality(t, m.Peek(0x0301), 0x00)
	test.ExpectEquality(t, m.Mem.String(), "all zero")
}

func TestFault(t *testing.T) {
	m := newMachine(t)
	m.Mem.Load(cpubus.Reset, 0xea, 0x02) // NOP, unassigned opcode

	err := m.Run(nil)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.DecodeFault))
	test.ExpectEquality(t, m.State(), govern.Halted)
	test.ExpectEquality(t, m.Instructions, 1)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0xfffd)

	state, err := m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Halted)
}

func TestContinueCheck(t *testing.T) {
	m := newMachine(t)
	loadForever(m)

	var checks int
	err := m.Run(func() (govern.State, error) {
		checks++
		if checks >= 10 {
			return govern.Halted, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Instructions, 10)

	// stopping the run does not halt the machine
	test.ExpectEquality(t, m.State(), govern.Running)

	// errors from the continue check stop the run
	checkErr := errors.New("check error")
	err = m.Run(func() (govern.State, error) {
		return govern.Running, checkErr
	})
	test.ExpectSuccess(t, errors.Is(err, checkErr))
	test.ExpectEquality(t, m.Instructions, 11)
}

func TestRunLimit(t *testing.T) {
	prefs.PushCommandLineStack("machine.runlimit::100")
	m, err := hardware.NewMachine(nil)
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Prefs.RunLimit.Get().(int), 100)

	loadForever(m)
	err = m.Run(nil)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.RunLimitReached))
	test.ExpectEquality(t, m.Instructions, 100)
	test.ExpectEquality(t, m.State(), govern.Running)

	// a program that halts before the limit is not affected
	m.Reset()
	loadLoop(m)
	test.ExpectSuccess(t, m.Run(nil))
	test.ExpectEquality(t, m.State(), govern.Halted)
}

func TestSharedPreferences(t *testing.T) {
	a := newMachine(t)
	b, err := hardware.NewMachine(a.Prefs)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, a.Prefs.RunLimit.Set(5))
	test.ExpectEquality(t, b.Prefs.RunLimit.Get().(int), 5)

	loadForever(b)
	err = b.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.RunLimitReached))
	test.ExpectEquality(t, b.Instructions, 5)
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t)
	loadLoop(m)

	// run part of the way and take a snapshot
	stopAt := func(n int) func() (govern.State, error) {
		return func() (govern.State, error) {
			if m.Instructions >= n {
				return govern.Halted, nil
			}
			return govern.Running, nil
		}
	}
	test.DemandSuccess(t, m.Run(stopAt(12)))
	test.ExpectEquality(t, m.Instructions, 12)
	snapshot := m.Snapshot()

	// run to the end
	test.DemandSuccess(t, m.Run(nil))
	final := m.Snapshot()
	test.ExpectEquality(t, m.State(), govern.Halted)

	// the snapshot has not been changed by the continued run
	test.ExpectEquality(t, snapshot.Instructions, 12)
	test.ExpectInequality(t, *snapshot.Mem, *final.Mem)

	// plumb the snapshot back in and run to the end again. the result must be
	// the same as the first run
	mem := m.Mem
	m.Plumb(snapshot)
	test.ExpectEquality(t, m.State(), govern.Running)
	test.ExpectSuccess(t, m.Mem == mem)
	test.DemandSuccess(t, m.Run(nil))

	test.ExpectEquality(t, m.CPU.String(), final.CPU.String())
	test.ExpectEquality(t, m.Cycles, final.Cycles)
	test.ExpectEquality(t, m.Instructions, final.Instructions)
	test.ExpectEquality(t, *m.Mem, *final.Mem)

	// the snapshot can be used more than once
	test.ExpectEquality(t, snapshot.Instructions, 12)
	test.ExpectEquality(t, snapshot.CPU.Halted, false)
}

type countingReflector struct {
	count int
	err   error
}

func (r *countingReflector) OnInstructionEnd(m *hardware.Machine) error {
	r.count++
	return r.err
}

func TestReflector(t *testing.T) {
	m := newMachine(t)
	loadLoop(m)

	r := &countingReflector{}
	q := &countingReflector{}
	m.AddReflector(r)
	m.AddReflector(q)
	test.DemandSuccess(t, m.Run(nil))
	test.ExpectEquality(t, r.count, m.Instructions)
	test.ExpectEquality(t, q.count, m.Instructions)

	// errors from the reflector are returned from Step(). reflectors after
	// the failing reflector are not called
	m.Reset()
	loadLoop(m)
	r.count = 0
	q.count = 0
	r.err = errors.New("reflector error")
	_, err := m.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.ReflectionError))
	test.ExpectSuccess(t, errors.Is(err, r.err))
	test.ExpectEquality(t, r.count, 1)
	test.ExpectEquality(t, q.count, 0)

	// detaching the reflectors
	m.ClearReflectors()
	_, err = m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.count, 1)
}
