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

// ZeroSign returns the state of the zero and sign flags for a value.
func ZeroSign(v uint8) (zero bool, sign bool) {
	return v == 0, v&0x80 == 0x80
}

// AddWithCarry is binary addition of two 8bit values and a carry bit. Returns
// the result along with the new carry and overflow states.
func AddWithCarry(a uint8, m uint8, carry bool) (r uint8, rcarry bool, overflow bool) {
	sum := uint16(a) + uint16(m)
	if carry {
		sum++
	}
	r = uint8(sum)
	rcarry = sum > 0xff

	// overflow detection from Ken Shirriff's blog: "The 6502 overflow flag
	// explained mathematically". overflow occurs when both inputs have the
	// same sign and the sign of the result is different
	overflow = (^(a ^ m) & (a ^ r) & 0x80) != 0

	return r, rcarry, overflow
}

// SubtractWithBorrow is binary subtraction. It is the addition of the one's
// complement of m. A clear carry flag indicates a borrow.
func SubtractWithBorrow(a uint8, m uint8, carry bool) (r uint8, rcarry bool, overflow bool) {
	return AddWithCarry(a, ^m, carry)
}

// Compare returns the flags resulting from a comparison of reg and m. The sign
// flag is bit 7 of the wrapped subtraction reg-m and not bit 7 of reg.
func Compare(reg uint8, m uint8) (carry bool, zero bool, sign bool) {
	return reg >= m, reg == m, (reg-m)&0x80 == 0x80
}

// ShiftLeft returns v shifted one bit to the left and the bit shifted out.
func ShiftLeft(v uint8) (uint8, bool) {
	return v << 1, v&0x80 == 0x80
}

// ShiftRight returns v shifted one bit to the right and the bit shifted out.
func ShiftRight(v uint8) (uint8, bool) {
	return v >> 1, v&0x01 == 0x01
}

// RotateLeft returns v rotated one bit to the left through the carry.
func RotateLeft(v uint8, carry bool) (uint8, bool) {
	r := v << 1
	if carry {
		r |= 0x01
	}
	return r, v&0x80 == 0x80
}

// RotateRight returns v rotated one bit to the right through the carry.
func RotateRight(v uint8, carry bool) (uint8, bool) {
	r := v >> 1
	if carry {
		r |= 0x80
	}
	return r, v&0x01 == 0x01
}
