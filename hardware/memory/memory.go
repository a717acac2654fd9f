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

package memory

import (
	"fmt"
	"strings"
)

// Size of the address space in bytes.
const Size = 0x10000

// Memory is the flat address space. The zero value is ready to use and all
// bytes are zero.
type Memory struct {
	internal [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Clear sets every byte in memory to zero.
func (mem *Memory) Clear() {
	mem.internal = [Size]uint8{}
}

// Read is an implementation of cpubus.Memory. It never returns an error.
func (mem *Memory) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

// Write is an implementation of cpubus.Memory. It never returns an error.
func (mem *Memory) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// Read16 returns the little-endian 16bit value stored at address and
// address+1. The second address wraps around to zero at the top of memory.
func (mem *Memory) Read16(address uint16) uint16 {
	lo := mem.internal[address]
	hi := mem.internal[address+1]
	return (uint16(hi) << 8) | uint16(lo)
}

// Write16 stores a 16bit value at address and address+1 in little-endian
// order.
func (mem *Memory) Write16(address uint16, data uint16) {
	mem.internal[address] = uint8(data)
	mem.internal[address+1] = uint8(data >> 8)
}

// Peek is the same as Read() but without the error return value.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.internal[address]
}

// Poke is the same as Write() but without the error return value.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.internal[address] = data
}

// Load copies data into memory starting at origin. It is an error for the data
// to extend past the top of memory.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return fmt.Errorf("memory: %d bytes at %#04x does not fit in address space", len(data), origin)
	}
	copy(mem.internal[origin:], data)
	return nil
}

// Page returns a hex dump of the 256 byte page containing address.
func (mem *Memory) Page(address uint16) string {
	origin := address & 0xff00

	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%03X- | ", (origin>>4)+uint16(y)))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.internal[origin+uint16(y*16+x)]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// String returns a hex dump of the zero page.
func (mem *Memory) String() string {
	return mem.Page(0x0000)
}
