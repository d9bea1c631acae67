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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/memory"
)

// State returns the SHA-1 hash of the machine's current state. The hash
// covers the CPU registers, the status flags, the halted state and all of
// memory.
func State(m *hardware.Machine) string {
	data := make([]byte, 0, 8+memory.Size)

	pc := m.CPU.PC.Address()
	data = append(data, uint8(pc>>8), uint8(pc))
	data = append(data, m.CPU.A.Value(), m.CPU.X.Value(), m.CPU.Y.Value())
	data = append(data, m.CPU.SP.Value(), m.CPU.Status.Value())
	if m.CPU.Halted {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}

	for a := range memory.Size {
		data = append(data, m.Mem.Peek(uint16(a)))
	}

	return fmt.Sprintf("%x", sha1.Sum(data))
}
