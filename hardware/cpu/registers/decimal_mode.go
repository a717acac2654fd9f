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

// AddDecimal adds value to register as though both values are binary coded
// decimal. Returns new carry state, zero, overflow and sign bit information.
//
// Flags are derived as they are on an NMOS 6502. The zero flag is taken from
// the binary addition. The overflow and sign flags are computed after the low
// nibble has been adjusted but before the high nibble has been adjusted.
//
// Invalid BCD values produce the same results as the NMOS chip.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var c uint16
	if carry {
		c = 1
	}

	a := uint16(r.value)
	m := uint16(val)

	zero := uint8(a+m+c) == 0

	// units
	lo := (a & 0x0f) + (m & 0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	// tens. the units have been adjusted at this point but the tens have not
	sum := (a & 0xf0) + (m & 0xf0) + lo
	sign := sum&0x80 == 0x80
	overflow := (^(a ^ m) & (a ^ sum) & 0x80) != 0

	if sum >= 0xa0 {
		sum += 0x60
	}

	r.value = uint8(sum)

	return sum >= 0x100, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both values are
// binary coded decimal. Returns new carry state, zero, overflow and sign bit
// information.
//
// All flags are taken from the binary subtraction, which is how the NMOS 6502
// behaves.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	bin, rcarry, overflow := SubtractWithBorrow(r.value, val, carry)
	zero, sign := ZeroSign(bin)

	var borrow int
	if !carry {
		borrow = 1
	}

	a := int(r.value)
	m := int(val)

	// units
	lo := (a & 0x0f) - (m & 0x0f) - borrow
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	// tens
	res := (a & 0xf0) - (m & 0xf0) + lo
	if res < 0 {
		res -= 0x60
	}

	r.value = uint8(res)

	return rcarry, zero, overflow, sign
}
