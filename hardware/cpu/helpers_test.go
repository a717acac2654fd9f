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

package cpu_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

var errUnreadable = errors.New("unreadable address")
var errUnwritable = errors.New("unwritable address")

type mockMem struct {
	internal []uint8

	// if faulty is true then the last page of memory can not be accessed
	faulty bool
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.internal[address]
	if d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if mem.faulty && address&0xff00 == 0xff00 {
		return 0, fmt.Errorf("%w (%#04x)", errUnreadable, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if mem.faulty && address&0xff00 == 0xff00 {
		return fmt.Errorf("%w (%#04x)", errUnwritable, address)
	}
	mem.internal[address] = data
	return nil
}

// boot clears memory and sets the reset vector to origin before resetting
// the CPU
func boot(t *testing.T, mc *cpu.CPU, mem *mockMem, origin uint16) {
	t.Helper()
	err := mc.Reset()
	if err != nil {
		t.Fatal(err)
	}
	mem.internal[0xfffc] = uint8(origin)
	mem.internal[0xfffd] = uint8(origin >> 8)
	err = mc.SoftReset()
	if err != nil {
		t.Fatal(err)
	}
}

// step executes a single instruction and checks the validity of the result
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("%s: %v", mc.LastResult, err)
	}
}
