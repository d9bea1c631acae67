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

package execution

import (
	"github.com/jetsetilly/gopher6502/curated"
)

// Sentinel error patterns returned by IsValid().
const (
	NotFinal     = "execution: not finalised (bad opcode?)"
	WrongBytes   = "execution: unexpected number of bytes read during decode (%d instead of %d)"
	WrongCycles  = "execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)"
	NoDefinition = "execution: no instruction definition"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(NotFinal)
	}

	if r.Defn == nil {
		return curated.Errorf(NoDefinition)
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(WrongBytes, r.ByteCount, r.Defn.Bytes)
	}

	if r.Cycles != r.Defn.Cycles {
		return curated.Errorf(WrongCycles, r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles)
	}

	return nil
}
