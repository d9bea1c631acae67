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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Notes    bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries() {
		if err := WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single Entry to io.Writer. If the entry has a label
// then the label is written on a line of its own.
func WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	if e.Label != "" {
		s.WriteString(fmt.Sprintf("%s:\n", e.Label))
	}

	s.WriteString(fmt.Sprintf("$%04X ", e.Result.Address))

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-8s ", e.Bytecode))
	}

	s.WriteString(e.Instruction)

	if attr.Notes {
		if n := e.Notes(); n != "" {
			s.WriteString(fmt.Sprintf("  ; %s", n))
		}
	}

	s.WriteString("\n")

	_, err := io.WriteString(output, s.String())
	return err
}
