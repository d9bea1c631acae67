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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Size is the number of addressable bytes.
const Size = int(cpubus.Memtop) + 1

// pageSize is used when summarising memory.
const pageSize = 0x100

// Memory is the flat memory area attached to the CPU.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Memory is zero filled.
func NewMemory() *Memory {
	return &Memory{}
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Plumb copies the contents of another Memory instance into this one.
func (mem *Memory) Plumb(from *Memory) {
	mem.data = from.data
}

// Init fills memory with zero.
func (mem *Memory) Init() {
	clear(mem.data[:])
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Peek implements the cpubus.DebugBus interface.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke implements the cpubus.DebugBus interface.
func (mem *Memory) Poke(address uint16, value uint8) {
	mem.data[address] = value
}

// ReadWord reads a little-endian word. The high byte is read from the next
// address, wrapping around to zero if necessary.
func (mem *Memory) ReadWord(address uint16) uint16 {
	lo := mem.data[address]
	hi := mem.data[address+1]
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian word. The high byte is written to the next
// address, wrapping around to zero if necessary.
func (mem *Memory) WriteWord(address uint16, value uint16) {
	mem.data[address] = uint8(value)
	mem.data[address+1] = uint8(value >> 8)
}

// Load copies data into memory starting at the origin address. Loading wraps
// around to zero if the data reaches the top of memory. Returns the address
// following the last byte loaded.
func (mem *Memory) Load(origin uint16, data ...uint8) uint16 {
	address := origin
	for _, d := range data {
		mem.data[address] = d
		address++
	}
	return address
}

// Dump writes the memory region to io.Writer, sixteen bytes to a line and
// each line prefixed with the address of the first byte. The range is
// inclusive. If to is less than from then the range wraps around the top of
// memory.
func (mem *Memory) Dump(w io.Writer, from uint16, to uint16) error {
	n := int(to-from) + 1
	address := from
	for n > 0 {
		l := min(n, 16)
		row := make([]uint8, l)
		for i := range row {
			row[i] = mem.data[address+uint16(i)]
		}
		if _, err := fmt.Fprintf(w, "%04x  % x\n", address, row); err != nil {
			return err
		}
		address += uint16(l)
		n -= l
	}
	return nil
}

// String returns a summary of memory. Pages that contain only zero are not
// included.
func (mem *Memory) String() string {
	s := strings.Builder{}
	for p := 0; p < Size; p += pageSize {
		n := 0
		for _, v := range mem.data[p : p+pageSize] {
			if v != 0 {
				n++
			}
		}
		if n > 0 {
			s.WriteString(fmt.Sprintf("page %#02x: %d non-zero\n", p>>8, n))
		}
	}
	if s.Len() == 0 {
		return "all zero"
	}
	return strings.TrimSuffix(s.String(), "\n")
}
