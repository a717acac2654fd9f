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

// Package instructions defines the instruction set of the 6502. Each of the
// 256 opcodes has a Definition describing the operator, the addressing mode,
// the number of bytes and the minimum number of cycles.
//
// The definitions table is generated from the instructions.csv file in the
// generator sub-package. Do not edit table.go directly; change the CSV file
// and run "go generate" in the generator directory.
//
// Of the 256 opcodes, 151 are documented. The remaining opcodes perform
// undocumented operations that are observed on the NMOS 6502. These are
// marked with the Undocumented field and are only returned by Lookup() when
// the caller asks for them.
package instructions
