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

// Package test contains functions useful for testing CPU registers.
package test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// EquateRegisters is used to test equality between the value of a register
// and an integer. Supports the Register, ProgramCounter, StackPointer and
// StatusRegister types. Status registers can also be compared with a string
// of flag letters.
func EquateRegisters(t *testing.T, r any, expected any) {
	t.Helper()

	switch r := r.(type) {
	case registers.Register:
		equateValue(t, r.Label(), int(r.Value()), expected)
	case *registers.Register:
		equateValue(t, r.Label(), int(r.Value()), expected)
	case registers.ProgramCounter:
		equateValue(t, r.Label(), int(r.Address()), expected)
	case *registers.ProgramCounter:
		equateValue(t, r.Label(), int(r.Address()), expected)
	case registers.StackPointer:
		equateValue(t, r.Label(), int(r.Value()), expected)
	case *registers.StackPointer:
		equateValue(t, r.Label(), int(r.Value()), expected)
	case registers.StatusRegister:
		equateStatus(t, r, expected)
	case *registers.StatusRegister:
		equateStatus(t, *r, expected)
	default:
		t.Fatalf("unsupported register type (%T)", r)
	}
}

func equateValue(t *testing.T, label string, v int, expected any) {
	t.Helper()

	x, ok := expected.(int)
	if !ok {
		t.Fatalf("unsupported comparison type (%T) for register %s", expected, label)
	}
	if v != x {
		t.Errorf("register %s: %#x does not equal %#x", label, v, x)
	}
}

func equateStatus(t *testing.T, r registers.StatusRegister, expected any) {
	t.Helper()

	switch x := expected.(type) {
	case int:
		if int(r.Value()) != x {
			t.Errorf("register %s: %#02x does not equal %#02x", r.Label(), r.Value(), x)
		}
	case string:
		if r.String() != x {
			t.Errorf("register %s: %s does not equal %s", r.Label(), r.String(), x)
		}
	default:
		t.Fatalf("unsupported comparison type (%T) for register %s", expected, r.Label())
	}
}
