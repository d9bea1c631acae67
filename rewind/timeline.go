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

package rewind

// Timeline provides a summary of the current state of the rewind system.
type Timeline struct {
	// the instruction count of every entry in the rewind history
	Instructions []int

	// the earliest and latest instructions that are available in the rewind
	// history
	AvailableStart int
	AvailableEnd   int
}

// GetTimeline returns a summary of the rewind history.
func (r *Rewind) GetTimeline() Timeline {
	tl := Timeline{
		Instructions: make([]int, len(r.entries)),
	}
	for i, e := range r.entries {
		tl.Instructions[i] = e.Instructions
	}
	tl.AvailableStart = r.entries[0].Instructions
	tl.AvailableEnd = r.entries[len(r.entries)-1].Instructions
	return tl
}
