// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions for testing the register types. It
// is imported by test files only.
package test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// EquateRegisters is used to test equality between a register and a value.
// The value can be an int or, in the case of the status register, a string of
// the form returned by StatusRegister.String().
func EquateRegisters(t *testing.T, value any, expectedValue any) {
	t.Helper()

	switch r := value.(type) {
	default:
		t.Fatalf("not a register type (%T)", value)

	case registers.Register:
		equateInt(t, r.Label(), int(r.Value()), expectedValue)

	case *registers.Register:
		equateInt(t, r.Label(), int(r.Value()), expectedValue)

	case registers.ProgramCounter:
		equateInt(t, r.Label(), int(r.Address()), expectedValue)

	case *registers.ProgramCounter:
		equateInt(t, r.Label(), int(r.Address()), expectedValue)

	case registers.StackPointer:
		equateInt(t, r.Label(), int(r.Value()), expectedValue)

	case *registers.StackPointer:
		equateInt(t, r.Label(), int(r.Value()), expectedValue)

	case registers.StatusRegister:
		equateStatus(t, r, expectedValue)

	case *registers.StatusRegister:
		equateStatus(t, *r, expectedValue)
	}
}

func equateInt(t *testing.T, label string, v int, expectedValue any) {
	t.Helper()

	x, ok := expectedValue.(int)
	if !ok {
		t.Fatalf("%s: register can only be compared with an int (not %T)", label, expectedValue)
	}
	if v != x {
		t.Errorf("%s: register value is %#02x but expected %#02x", label, v, x)
	}
}

func equateStatus(t *testing.T, sr registers.StatusRegister, expectedValue any) {
	t.Helper()

	switch x := expectedValue.(type) {
	default:
		t.Fatalf("%s: status register can only be compared with an int or string (not %T)", sr.Label(), expectedValue)

	case int:
		if int(sr.Value()) != x {
			t.Errorf("%s: status register value is %#02x but expected %#02x", sr.Label(), sr.Value(), x)
		}

	case string:
		if sr.String() != x {
			t.Errorf("%s: status register is %s but expected %s", sr.Label(), sr.String(), x)
		}
	}
}
