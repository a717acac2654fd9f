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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/test"
)

// signed overflow is checked by performing the addition with signed integers
// and seeing if the result fits in eight bits
func TestAddWithCarryExhaustive(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for m := 0; m <= 0xff; m++ {
			for c := 0; c <= 1; c++ {
				r, carry, overflow := registers.AddWithCarry(uint8(a), uint8(m), c == 1)

				sum := a + m + c
				signed := int(int8(a)) + int(int8(m)) + c

				ok := test.ExpectEquality(t, r, uint8(sum), "%02x+%02x+%d", a, m, c)
				ok = ok && test.ExpectEquality(t, carry, sum > 0xff, "%02x+%02x+%d carry", a, m, c)
				ok = ok && test.ExpectEquality(t, overflow, signed < -128 || signed > 127, "%02x+%02x+%d overflow", a, m, c)
				if !ok {
					return
				}
			}
		}
	}
}

func TestSubtractWithBorrowExhaustive(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for m := 0; m <= 0xff; m++ {
			for c := 0; c <= 1; c++ {
				r, carry, overflow := registers.SubtractWithBorrow(uint8(a), uint8(m), c == 1)

				borrow := 1 - c
				diff := a - m - borrow
				signed := int(int8(a)) - int(int8(m)) - borrow

				ok := test.ExpectEquality(t, r, uint8(diff), "%02x-%02x-%d", a, m, borrow)
				ok = ok && test.ExpectEquality(t, carry, diff >= 0, "%02x-%02x-%d carry", a, m, borrow)
				ok = ok && test.ExpectEquality(t, overflow, signed < -128 || signed > 127, "%02x-%02x-%d overflow", a, m, borrow)
				if !ok {
					return
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	carry, zero, sign := registers.Compare(0x80, 0x80)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, true)
	test.ExpectEquality(t, sign, false)

	carry, zero, sign = registers.Compare(0x10, 0x20)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, sign, true)

	// sign is taken from the result of the subtraction, not the register
	carry, zero, sign = registers.Compare(0x90, 0x20)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, sign, false)

	for reg := 0; reg <= 0xff; reg++ {
		for m := 0; m <= 0xff; m++ {
			carry, zero, sign = registers.Compare(uint8(reg), uint8(m))
			ok := test.ExpectEquality(t, carry, reg >= m, "%02x cmp %02x", reg, m)
			ok = ok && test.ExpectEquality(t, zero, reg == m, "%02x cmp %02x", reg, m)
			ok = ok && test.ExpectEquality(t, sign, uint8(reg-m)&0x80 == 0x80, "%02x cmp %02x", reg, m)
			if !ok {
				return
			}
		}
	}
}

func TestZeroSign(t *testing.T) {
	zero, sign := registers.ZeroSign(0x00)
	test.ExpectEquality(t, zero, true)
	test.ExpectEquality(t, sign, false)

	zero, sign = registers.ZeroSign(0x80)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, sign, true)

	zero, sign = registers.ZeroSign(0x7f)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, sign, false)
}

func TestShiftsAndRotates(t *testing.T) {
	r, carry := registers.ShiftLeft(0x81)
	test.ExpectEquality(t, r, uint8(0x02))
	test.ExpectEquality(t, carry, true)

	r, carry = registers.ShiftRight(0x81)
	test.ExpectEquality(t, r, uint8(0x40))
	test.ExpectEquality(t, carry, true)

	r, carry = registers.RotateLeft(0x40, true)
	test.ExpectEquality(t, r, uint8(0x81))
	test.ExpectEquality(t, carry, false)

	r, carry = registers.RotateRight(0x02, true)
	test.ExpectEquality(t, r, uint8(0x81))
	test.ExpectEquality(t, carry, false)

	// nine rotations through the carry return the original value
	v := uint8(0xa5)
	carry = false
	for i := 0; i < 9; i++ {
		v, carry = registers.RotateLeft(v, carry)
	}
	test.ExpectEquality(t, v, uint8(0xa5))
	test.ExpectEquality(t, carry, false)
	for i := 0; i < 9; i++ {
		v, carry = registers.RotateRight(v, carry)
	}
	test.ExpectEquality(t, v, uint8(0xa5))
	test.ExpectEquality(t, carry, false)
}
