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

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware"
)

// RenderError is the pattern for errors returned by a Renderer.
const RenderError = "reflection: %v"

// Gatherer implements the hardware.Reflector interface. It keeps a history
// of the most recent instructions executed by the machine.
type Gatherer struct {
	renderer Renderer

	// history of gathered reflections. the history is a ring and historyIdx
	// is the next index to be written
	history    []Entry
	historyIdx int
	full       bool

	// number of entries not yet sent to the renderer
	pending int
}

// NewGatherer is the preferred method of initialisation for the Gatherer
// type. The size argument is the number of entries kept in the history. A
// size of less than one is treated as one.
func NewGatherer(size int) *Gatherer {
	return &Gatherer{
		history: make([]Entry, max(size, 1)),
	}
}

// AddRenderer adds an implementation of the Renderer interface to the
// Gatherer.
func (ref *Gatherer) AddRenderer(renderer Renderer) {
	ref.renderer = renderer
}

// OnInstructionEnd implements the hardware.Reflector interface.
func (ref *Gatherer) OnInstructionEnd(m *hardware.Machine) error {
	ref.history[ref.historyIdx] = newEntry(m)
	ref.historyIdx++
	if ref.historyIdx >= len(ref.history) {
		ref.historyIdx = 0
		ref.full = true
	}

	ref.pending++
	if ref.pending >= len(ref.history) {
		return ref.render()
	}

	return nil
}

// push pending entries to the renderer
func (ref *Gatherer) render() error {
	if ref.renderer != nil && ref.pending > 0 {
		e := ref.Entries()
		if err := ref.renderer.Reflect(e[len(e)-ref.pending:]); err != nil {
			return curated.Errorf(RenderError, err)
		}
	}
	ref.pending = 0
	return nil
}

// Flush sends any entries that have not yet been seen by the renderer.
func (ref *Gatherer) Flush() error {
	return ref.render()
}

// Entries returns a copy of the history. The oldest entry is first.
func (ref *Gatherer) Entries() []Entry {
	if !ref.full {
		e := make([]Entry, ref.historyIdx)
		copy(e, ref.history[:ref.historyIdx])
		return e
	}

	e := make([]Entry, 0, len(ref.history))
	e = append(e, ref.history[ref.historyIdx:]...)
	e = append(e, ref.history[:ref.historyIdx]...)
	return e
}

// Clear the history. Pending entries are discarded.
func (ref *Gatherer) Clear() {
	ref.historyIdx = 0
	ref.full = false
	ref.pending = 0
}

// Write the history to io.Writer, one line per entry.
func (ref *Gatherer) Write(w io.Writer) error {
	for _, e := range ref.Entries() {
		if _, err := io.WriteString(w, e.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
