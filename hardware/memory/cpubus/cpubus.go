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

// Package cpubus defines the interface between the CPU and memory, along with
// the addresses of the hardware vectors.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Errors returned by an implementation are passed back to the caller of
// the CPU's ExecuteInstruction() function.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Clearer is an optional interface for Memory implementations. The CPU Reset()
// function will clear memory if the interface is implemented.
type Clearer interface {
	Clear()
}

// Peeker is an optional interface for Memory implementations. Peek() must not
// have any side effects.
type Peeker interface {
	Peek(address uint16) uint8
}
