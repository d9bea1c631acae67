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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	rtest "github.com/jetsetilly/gopher6502/hardware/cpu/registers/test"
	"github.com/jetsetilly/gopher6502/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	rtest.EquateRegisters(t, r8, 0)
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	rtest.EquateRegisters(t, r8, 127)
	r8.Add(2, false)
	rtest.EquateRegisters(t, r8, 129)

	// addition boundary
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())
	rtest.EquateRegisters(t, r8, 0)

	// addition boundary with carry
	r8.Load(254)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())
	rtest.EquateRegisters(t, r8, 0)

	// addition boundary with carry
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectFailure(t, r8.IsZero())
	rtest.EquateRegisters(t, r8, 1)

	// adding 255 with carry leaves the value unchanged but carries
	r8.Load(0x10)
	carry, _ = r8.Add(0xff, true)
	test.ExpectSuccess(t, carry)
	rtest.EquateRegisters(t, r8, 0x10)

	// signed overflow
	r8.Load(0x7f)
	carry, overflow = r8.Add(1, false)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
	rtest.EquateRegisters(t, r8, 0x80)

	r8.Load(0x80)
	carry, overflow = r8.Add(0xff, false)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, overflow)
	rtest.EquateRegisters(t, r8, 0x7f)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	rtest.EquateRegisters(t, r8, 10)

	r8.Load(12)
	r8.Subtract(1, false)
	rtest.EquateRegisters(t, r8, 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	rtest.EquateRegisters(t, r8, 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectFailure(t, carry)
	rtest.EquateRegisters(t, r8, 255)
	r8.Load(1)
	r8.Subtract(1, false)
	rtest.EquateRegisters(t, r8, 255)
	r8.Load(1)
	r8.Subtract(2, true)
	rtest.EquateRegisters(t, r8, 255)

	// no borrow
	r8.Load(5)
	carry, _ = r8.Subtract(5, true)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, r8.IsZero())

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	rtest.EquateRegisters(t, r8, 0x01)
	r8.EOR(0xff)
	rtest.EquateRegisters(t, r8, 0xfe)
	r8.ORA(0x01)
	rtest.EquateRegisters(t, r8, 0xff)

	// bit V
	r8.Load(0x40)
	test.ExpectSuccess(t, r8.IsBitV())
	test.ExpectFailure(t, r8.IsNegative())
}

func TestShifts(t *testing.T) {
	var carry bool

	r8 := registers.NewRegister(0, "test")

	r8.Load(0xff)
	carry = r8.ASL()
	test.ExpectSuccess(t, carry)
	rtest.EquateRegisters(t, r8, 0xfe)

	carry = r8.LSR()
	test.ExpectFailure(t, carry)
	rtest.EquateRegisters(t, r8, 0x7f)

	carry = r8.LSR()
	test.ExpectSuccess(t, carry)
	rtest.EquateRegisters(t, r8, 0x3f)

	// rotate
	r8.Load(0x80)
	carry = r8.ROL(false)
	test.ExpectSuccess(t, carry)
	rtest.EquateRegisters(t, r8, 0x00)
	carry = r8.ROL(carry)
	test.ExpectFailure(t, carry)
	rtest.EquateRegisters(t, r8, 0x01)

	carry = r8.ROR(false)
	test.ExpectSuccess(t, carry)
	rtest.EquateRegisters(t, r8, 0x00)
	carry = r8.ROR(carry)
	test.ExpectFailure(t, carry)
	rtest.EquateRegisters(t, r8, 0x80)
}

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	// loading & addition
	pc.Load(127)
	rtest.EquateRegisters(t, pc, 127)
	pc.Add(2)
	rtest.EquateRegisters(t, pc, 129)

	// wraparound
	pc.Load(0xffff)
	test.ExpectSuccess(t, pc.Add(1))
	rtest.EquateRegisters(t, pc, 0x0000)
	test.ExpectEquality(t, pc.String(), "0x0000")

	// relative addition
	pc.Load(0x0202)
	pc.AddRelative(0x10)
	rtest.EquateRegisters(t, pc, 0x0212)
	pc.AddRelative(0xf0)
	rtest.EquateRegisters(t, pc, 0x0202)

	pc.Load(0x0001)
	pc.AddRelative(0xfe)
	rtest.EquateRegisters(t, pc, 0xffff)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)

	address, wrapped := sp.Push()
	test.ExpectEquality(t, address, 0x01ff)
	test.ExpectFailure(t, wrapped)
	rtest.EquateRegisters(t, sp, 0xfe)

	address, wrapped = sp.Pull()
	test.ExpectEquality(t, address, 0x01ff)
	test.ExpectFailure(t, wrapped)
	rtest.EquateRegisters(t, sp, 0xff)

	// pulling from an empty stack wraps to zero
	address, wrapped = sp.Pull()
	test.ExpectEquality(t, address, 0x0100)
	test.ExpectSuccess(t, wrapped)
	rtest.EquateRegisters(t, sp, 0x00)

	// pushing to a full stack wraps to 0xff
	address, wrapped = sp.Push()
	test.ExpectEquality(t, address, 0x0100)
	test.ExpectSuccess(t, wrapped)
	rtest.EquateRegisters(t, sp, 0xff)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	rtest.EquateRegisters(t, sr, "sv-bdizc")

	// the unused bit is always set in the byte value
	rtest.EquateRegisters(t, sr, 0x20)

	sr.Sign = true
	sr.Carry = true
	rtest.EquateRegisters(t, sr, "Sv-bdizC")
	rtest.EquateRegisters(t, sr, 0xa1)

	sr.Reset()
	rtest.EquateRegisters(t, sr, "sv-bdizc")

	// the unused bit is ignored when loading
	sr.Load(0xff)
	rtest.EquateRegisters(t, sr, "SV-BDIZC")
	sr.Load(0xdf)
	rtest.EquateRegisters(t, sr, "SV-BDIZC")
	sr.Load(0x20)
	rtest.EquateRegisters(t, sr, "sv-bdizc")
}

func TestStatusRoundTrip(t *testing.T) {
	var sr registers.StatusRegister

	// every combination of the seven flags survives conversion to a byte and
	// back again
	for v := range 256 {
		sr.Load(uint8(v))
		w := sr.Value()
		test.ExpectEquality(t, w, uint8(v)|0x20, v)

		var rt registers.StatusRegister
		rt.Load(w)
		test.ExpectEquality(t, rt, sr, v)
	}
}
