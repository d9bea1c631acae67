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

// Package rewind keeps a history of machine states so that the emulation can
// be returned to an earlier point in its execution.
//
// The Rewind type is attached to a machine as a reflector. It takes a
// snapshot of the machine every Freq instructions and keeps up to MaxEntries
// snapshots. Because emulation is deterministic, any instruction after the
// earliest snapshot can be returned to by plumbing in the nearest snapshot
// and running the machine forward.
package rewind

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/govern"
)

// Unavailable is the pattern for the error returned by GotoInstruction() when
// the requested instruction is earlier than the rewind history.
const Unavailable = "rewind: instruction %d is not available"

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	m *hardware.Machine

	Prefs *Preferences

	// snapshots in the order they were taken
	entries []*hardware.State

	// the machine is being moved forward by GotoInstruction(). no snapshots
	// are taken while this is true
	rewinding bool
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The Rewind instance is added to the machine's reflectors.
func NewRewind(m *hardware.Machine) (*Rewind, error) {
	r := &Rewind{m: m}

	var err error
	r.Prefs, err = newPreferences(r)
	if err != nil {
		return nil, err
	}

	r.Reset()
	m.AddReflector(r)

	return r, nil
}

// Reset rewind system removes all entries and takes a snapshot of the
// current machine state. This should be called whenever the machine is reset
// or a new program is loaded.
func (r *Rewind) Reset() {
	r.entries = append(r.entries[:0], r.m.Snapshot())
}

// OnInstructionEnd implements the hardware.Reflector interface.
func (r *Rewind) OnInstructionEnd(m *hardware.Machine) error {
	if r.rewinding {
		return nil
	}

	if m.Instructions%r.Prefs.Freq.Get().(int) != 0 {
		return nil
	}

	r.entries = append(r.entries, m.Snapshot())
	r.trim(r.Prefs.MaxEntries.Get().(int))

	return nil
}

// forget the earliest entries if there are more than the maximum number
func (r *Rewind) trim(limit int) {
	n := len(r.entries) - limit
	if n > 0 {
		r.entries = append(r.entries[:0], r.entries[n:]...)
	}
}

// GotoInstruction returns the machine to the state it was in after the
// specified number of instructions since reset. Entries after the requested
// instruction are forgotten.
//
// If the machine halts before the requested instruction then the machine is
// left in the halted state.
func (r *Rewind) GotoInstruction(n int) error {
	idx := -1
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Instructions <= n {
			idx = i
			break
		}
	}
	if idx == -1 {
		return curated.Errorf(Unavailable, n)
	}

	r.rewinding = true
	defer func() {
		r.rewinding = false
	}()

	r.m.Plumb(r.entries[idx])
	r.entries = r.entries[:idx+1]

	for r.m.Instructions < n {
		state, err := r.m.Step()
		if err != nil {
			return err
		}
		if state == govern.Halted {
			break
		}
	}

	return nil
}

// GotoLast returns the machine to the state of the most recent entry.
func (r *Rewind) GotoLast() error {
	return r.GotoInstruction(r.entries[len(r.entries)-1].Instructions)
}
