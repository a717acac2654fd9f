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

// Package registers implements the register types of the 6502: the 8bit
// general purpose registers, the 16bit program counter, the stack pointer
// and the status register.
//
// The registers do not update the status register themselves. The CPU
// inspects the register after an operation and updates the status flags as
// appropriate. For instance, in the CPU, we might have this sequence of
// function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
//
// Flag derivation that doesn't need a register, such as the result of a
// compare instruction, is done with the functions in flags.go. The Register
// type uses the same functions so that the flags produced by the CPU are
// consistent however they were arrived at.
package registers
