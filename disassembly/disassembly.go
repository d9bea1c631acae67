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
	"sort"

	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Disassembly represents the disassembly of an area of memory.
type Disassembly struct {
	mem     cpubus.DebugBus
	entries map[uint16]*Entry
}

// FromMemory disassembles memory from one address to another, inclusive. If
// the to address is lower than the from address then disassembly wraps
// around the top of memory.
//
// The final instruction may extend beyond the to address.
func FromMemory(mem cpubus.DebugBus, from uint16, to uint16) *Disassembly {
	dsm := &Disassembly{
		mem:     mem,
		entries: make(map[uint16]*Entry),
	}

	n := int(to) - int(from) + 1
	if n <= 0 {
		n += int(cpubus.Memtop) + 1
	}

	address := from
	for n > 0 {
		e := dsm.decode(address)
		dsm.entries[address] = e
		address += uint16(e.Result.ByteCount)
		n -= e.Result.ByteCount
	}

	return dsm
}

// decode a single instruction at the address
func (dsm *Disassembly) decode(address uint16) *Entry {
	e := &Entry{
		Level: EntryLevelDecoded,
		Label: cpubus.Vectors[address],
	}

	opcode := dsm.mem.Peek(address)

	defn, err := instructions.Decode(opcode)
	if err != nil {
		e.Level = EntryLevelUnused
		e.Result.Address = address
		e.Result.ByteCount = 1
		e.Bytecode = fmt.Sprintf("%02x", opcode)
		e.Instruction = fmt.Sprintf(".byte $%02X", opcode)
		return e
	}

	e.Result = execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: defn.Bytes,
		Cycles:    defn.Cycles,
	}

	switch defn.Bytes {
	case 2:
		e.Result.InstructionData = uint16(dsm.mem.Peek(address + 1))
	case 3:
		lo := uint16(dsm.mem.Peek(address + 1))
		hi := uint16(dsm.mem.Peek(address + 2))
		e.Result.InstructionData = (hi << 8) | lo
	}

	e.update()

	return e
}

// OnInstructionEnd implements the hardware.Reflector interface.
func (dsm *Disassembly) OnInstructionEnd(m *hardware.Machine) error {
	r := m.CPU.LastResult
	if r.Defn == nil {
		return nil
	}

	e, ok := dsm.entries[r.Address]
	if !ok {
		e = &Entry{Label: cpubus.Vectors[r.Address]}
		dsm.entries[r.Address] = e
	}

	e.Level = EntryLevelExecuted
	e.Result = r
	e.update()

	return nil
}

// Get returns the entry at the address. Returns false if there is no entry.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.entries[address]
	return e, ok
}

// Entries returns all entries in address order.
func (dsm *Disassembly) Entries() []*Entry {
	e := make([]*Entry, 0, len(dsm.entries))
	for _, v := range dsm.entries {
		e = append(e, v)
	}
	sort.Slice(e, func(i, j int) bool {
		return e[i].Result.Address < e[j].Result.Address
	})
	return e
}
