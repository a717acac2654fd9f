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

// Package klaus2m5 runs the 6502 functional test created and maintained by
// Klaus Dormann.
//
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The test binary is not included in the repository. Copy the
// 6502_functional_test.bin file from the bin_files directory of the above
// repository into this directory to run the test. The binary is loaded at
// address zero and starts at 0x0400.
//
// If a differently configured binary is used then the load address, origin
// and success address constants in the test file must be changed to match the
// listing produced by the assembler.
package klaus2m5
