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

// Package memory implements the flat 64KiB address space seen by the 6502.
// There are no mirrors, no bank switching and no memory mapped peripherals:
// every address in the 16bit address range is backed by a single byte of RAM
// that is both readable and writable.
//
//	    CPU ---- cpu bus ---- MEMORY
//	                            |
//	                            |
//	                       loader / debugger
//
// The CPU accesses memory through the cpubus.Memory interface. Program loaders
// and debugging tools use the Load(), Peek() and Poke() functions, none of
// which have any side effects.
//
// Multi-byte values are little-endian. The Read16() function is provided for
// convenience and wraps around the top of the address space.
package memory
