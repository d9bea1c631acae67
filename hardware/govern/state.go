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

package govern

// State indicates the machine's state.
type State int

// List of possible machine states.
//
// Running is the default state. A machine in the Running state will execute
// an instruction when stepped.
//
// Halted is entered when the CPU executes a BRK instruction or when the CPU
// meets an instruction it cannot execute. The Halted state is only left by
// resetting the machine.
const (
	Running State = iota
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	}

	return ""
}
