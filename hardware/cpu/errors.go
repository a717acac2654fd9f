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

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode is matched by an UnknownOpcode error when using
// errors.Is().
var ErrUnknownOpcode = errors.New("cpu: unknown opcode")

// ErrHalted is returned by ExecuteInstruction() when the CPU has been halted.
// The CPU is halted by an unknown opcode or by a KIL instruction. A halted
// CPU must be reset.
var ErrHalted = errors.New("cpu: halted")

// UnknownOpcode is returned by ExecuteInstruction() when the byte at the PC
// does not decode to an instruction.
type UnknownOpcode struct {
	Opcode  uint8
	Address uint16
}

func (e *UnknownOpcode) Error() string {
	return fmt.Sprintf("cpu: unknown opcode (0x%02x) at (0x%04x)", e.Opcode, e.Address)
}

// Is implements the interface used by errors.Is().
func (e *UnknownOpcode) Is(target error) bool {
	return target == ErrUnknownOpcode
}
