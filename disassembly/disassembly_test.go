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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

func loadLoop(m *hardware.Machine) {
	m.Mem.Load(cpubus.Reset, 0x4c, 0x00, 0x02) // JMP $0200
	m.Mem.Load(0x0200,
		0xa2, 0x05,       // LDX #$05
		0x8a,             // loop: TXA
		0x9d, 0x00, 0x03, // STA $0300,X
		0x69, 0x10,       // ADC #$10
		0x48,             // PHA
		0xca,             // DEX
		0xd0, 0xf6,       // BNE loop
		0x00,             // BRK
	)
}

const decoded = `$0200 a2 05    LDX #$05
$0202 8a       TXA
$0203 9d 00 03 STA $0300,X
$0206 69 10    ADC #$10
$0208 48       PHA
$0209 ca       DEX
$020A d0 f6    BNE $0202
$020C 00       BRK
`

const executed = `$0200 a2 05    LDX #$05
$0202 8a       TXA
$0203 9d 00 03 STA $0300,X
$0206 69 10    ADC #$10
$0208 48       PHA
$0209 ca       DEX
$020A d0 f6    BNE $0202  ; branch failed
$020C 00       BRK
RESET:
$FFFC 4c 00 02 JMP $0200
`

func TestFromMemory(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	loadLoop(m)

	dsm := disassembly.FromMemory(m.Mem, 0x0200, 0x020c)
	test.ExpectEquality(t, len(dsm.Entries()), 8)

	w := &strings.Builder{}
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true, Notes: true}))
	test.ExpectEquality(t, w.String(), decoded)

	e, ok := dsm.Get(0x0203)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, e.String(), "$0203 STA $0300,X")
	test.ExpectEquality(t, e.Result.Cycles, 5)
	test.ExpectEquality(t, e.Notes(), "")

	// addresses in the middle of an instruction have no entry
	_, ok = dsm.Get(0x0204)
	test.ExpectFailure(t, ok)

	// running the program updates the disassembly
	m.AddReflector(dsm)
	test.DemandSuccess(t, m.Run(nil))
	test.ExpectEquality(t, len(dsm.Entries()), 9)

	w.Reset()
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true, Notes: true}))
	test.ExpectEquality(t, w.String(), executed)

	e, ok = dsm.Get(0x020a)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
	test.ExpectSuccess(t, e.Result.Final)

	e, ok = dsm.Get(cpubus.Reset)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Label, "RESET")
}

func TestUnusedBytes(t *testing.T) {
	mem := memory.NewMemory()
	mem.Load(0x1000, 0x02, 0xa9, 0x01, 0xff)

	dsm := disassembly.FromMemory(mem, 0x1000, 0x1003)
	w := &strings.Builder{}
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectEquality(t, w.String(), "$1000 02       .byte $02\n$1001 a9 01    LDA #$01\n$1003 ff       .byte $FF\n")

	e, ok := dsm.Get(0x1000)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelUnused)
}

func TestWrapping(t *testing.T) {
	mem := memory.NewMemory()

	dsm := disassembly.FromMemory(mem, 0xfffe, 0x0001)
	w := &strings.Builder{}
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "$0000 BRK\n$0001 BRK\nBRK:\n$FFFE BRK\n$FFFF BRK\n")

	// operand bytes wrap around the top of memory
	mem.Load(0xffff, 0xad, 0x34, 0x12)
	dsm = disassembly.FromMemory(mem, 0xffff, 0xffff)
	e, ok := dsm.Get(0xffff)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Instruction, "LDA $1234")
}

func TestNotes(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	m.Mem.Write(0x10ff, 0x34)
	m.Mem.Write(0x1000, 0x12)
	m.Mem.Load(cpubus.Reset, 0x6c, 0xff, 0x10) // JMP ($10FF)
	m.Mem.Load(0x1234, 0xf0, 0x02)             // BEQ +2

	dsm := disassembly.FromMemory(m.Mem, cpubus.Reset, cpubus.Reset)
	m.AddReflector(dsm)
	_, err = m.Step()
	test.DemandSuccess(t, err)

	// force the branch to be taken
	m.CPU.Status.Zero = true
	_, err = m.Step()
	test.DemandSuccess(t, err)

	e, _ := dsm.Get(cpubus.Reset)
	test.ExpectEquality(t, e.Notes(), string(execution.JmpIndirectAddressingBug))
	e, _ = dsm.Get(0x1234)
	test.ExpectEquality(t, e.Notes(), "branch succeeded")
}
