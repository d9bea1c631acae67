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
)

// the number of bytes of CPU state added to the trace for every instruction:
// PC (two bytes), A, X, Y, SP, status and the opcode
const stateLen = 8

// Trace is an implementation of the hardware.Reflector interface that
// produces a chained SHA-1 hash of the CPU state after every instruction.
type Trace struct {
	digest [sha1.Size]byte
	data   []byte
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	return &Trace{
		data: make([]byte, sha1.Size+stateLen),
	}
}

// Hash implements digest.Digest interface.
func (dig *Trace) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Trace) ResetDigest() {
	clear(dig.digest[:])
}

// OnInstructionEnd implements the hardware.Reflector interface.
func (dig *Trace) OnInstructionEnd(m *hardware.Machine) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the state data
	copy(dig.data, dig.digest[:])

	d := dig.data[sha1.Size:]
	pc := m.CPU.PC.Address()
	d[0] = uint8(pc >> 8)
	d[1] = uint8(pc)
	d[2] = m.CPU.A.Value()
	d[3] = m.CPU.X.Value()
	d[4] = m.CPU.Y.Value()
	d[5] = m.CPU.SP.Value()
	d[6] = m.CPU.Status.Value()
	if m.CPU.LastResult.Defn != nil {
		d[7] = m.CPU.LastResult.Defn.OpCode
	} else {
		d[7] = 0
	}

	dig.digest = sha1.Sum(dig.data)

	return nil
}
