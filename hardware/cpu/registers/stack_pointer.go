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

// stackPage is the upper byte of every address in the stack.
const stackPage = 0x0100

// StackPointer is the 8bit SP register. The value is an offset into the
// stack page at 0x0100.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the 8bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in the stack page that the stack pointer points
// to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement the stack pointer. The stack pointer wraps from 0x00 to 0xff
// without complaint.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment the stack pointer. The stack pointer wraps from 0xff to 0x00
// without complaint.
func (sp *StackPointer) Increment() {
	sp.value++
}
