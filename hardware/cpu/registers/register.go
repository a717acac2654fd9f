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

package registers

import (
	"fmt"
)

// Register is an 8bit register with a label.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new register with a name, and initialises the value.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

// NewAnonRegister initialises a new register without a name.
func NewAnonRegister(val uint8) Register {
	return NewRegister(val, "")
}

func (r Register) String() string {
	return fmt.Sprintf("%#02x", r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register /as a uint16/. this is
// useful when you want to use the register value in an address context.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV returns the state of the second MSB
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns carry and overflow states
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	r.value, rcarry, overflow = AddWithCarry(r.value, val, carry)
	return rcarry, overflow
}

// Subtract value from register. Returns carry and overflow states. The carry
// flag should be set before a subtraction in the same way as it is on the
// 6502. ie. a clear carry flag means borrow.
func (r *Register) Subtract(val uint8, carry bool) (rcarry bool, overflow bool) {
	r.value, rcarry, overflow = SubtractWithBorrow(r.value, val, carry)
	return rcarry, overflow
}

// Compare value with register. The register is not changed. Returns carry,
// zero and sign states.
func (r Register) Compare(val uint8) (carry bool, zero bool, sign bool) {
	return Compare(r.value, val)
}

// AND value with register
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR (exclusive or) value with register
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA (non-exclusive or) value with register
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ASL (arithmetic shift left) shifts register one bit to the left. Returns
// the most significant bit as it was before the shift.
func (r *Register) ASL() bool {
	var carry bool
	r.value, carry = ShiftLeft(r.value)
	return carry
}

// LSR (logical shift right) shifts register one bit to the right. Returns the
// least significant bit as it was before the shift.
func (r *Register) LSR() bool {
	var carry bool
	r.value, carry = ShiftRight(r.value)
	return carry
}

// ROL rotates register 1 bit to the left. Returns new carry status.
func (r *Register) ROL(carry bool) bool {
	r.value, carry = RotateLeft(r.value, carry)
	return carry
}

// ROR rotates register 1 bit to the right. Returns new carry status.
func (r *Register) ROR(carry bool) bool {
	r.value, carry = RotateRight(r.value, carry)
	return carry
}
