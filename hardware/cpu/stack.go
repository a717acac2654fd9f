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

package cpu

// the stack occupies page one of memory. the SP register is an offset into
// that page. pushing writes the value and then decrements the SP. pulling
// increments the SP and then reads the value. there is no check for overflow
// or underflow; the SP wraps around the page.

// push value onto the stack
//
// side-effects:
//   - calls cycleCallback after the write
func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value)
	if err != nil {
		return err
	}
	mc.SP.Decrement()

	// +1 cycle
	return mc.cycle()
}

// pushWord pushes a 16bit value onto the stack. the MSB is pushed first so
// that the LSB is pulled first.
//
// side-effects:
//   - calls cycleCallback after each write
func (mc *CPU) pushWord(value uint16) error {
	err := mc.push(uint8(value >> 8))
	if err != nil {
		return err
	}
	return mc.push(uint8(value))
}

// pull value from the stack
//
// side-effects:
//   - calls cycleCallback after the read
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Increment()

	// +1 cycle
	return mc.read8Bit(mc.SP.Address())
}

// pullWord pulls a 16bit value from the stack. the LSB is pulled first.
//
// side-effects:
//   - calls cycleCallback after each read
func (mc *CPU) pullWord() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. The stack and the SP are not changed. Returns false if the
// memory can not be read.
func (mc *CPU) PredictRTS() (uint16, bool) {
	sp := mc.SP

	sp.Increment()
	lo, err := mc.mem.Read(sp.Address())
	if err != nil {
		return 0, false
	}

	sp.Increment()
	hi, err := mc.mem.Read(sp.Address())
	if err != nil {
		return 0, false
	}

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}
