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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestTableComplete(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var documented int
	for i, defn := range defs {
		test.ExpectEquality(t, defn.OpCode, uint8(i))
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes(), defn)
		test.ExpectEquality(t, defn.Cycles >= 2, true, defn)
		test.ExpectInequality(t, defn.Operator.String(), "???", defn)
		if !defn.Undocumented {
			documented++
		}
	}
	test.ExpectEquality(t, documented, 151)
}

func TestLookup(t *testing.T) {
	// LDA immediate is always decoded
	defn := instructions.Lookup(0xa9, false)
	test.DemandEquality(t, defn != nil, true)
	test.ExpectEquality(t, defn.Operator, instructions.Lda)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defn.Bytes, 2)
	test.ExpectEquality(t, defn.Cycles, 2)

	// LAX zero page is only decoded on request
	defn = instructions.Lookup(0xa7, false)
	test.ExpectEquality(t, defn == nil, true)
	defn = instructions.Lookup(0xa7, true)
	test.DemandEquality(t, defn != nil, true)
	test.ExpectEquality(t, defn.Operator, instructions.LAX)
	test.ExpectEquality(t, defn.Undocumented, true)

	// every opcode is decoded when undocumented opcodes are requested
	for i := 0; i <= 0xff; i++ {
		test.ExpectEquality(t, instructions.Lookup(uint8(i), true) != nil, true, "%#02x", i)
	}
}

func TestDocumentedOperators(t *testing.T) {
	// undocumented operators never appear as documented opcodes
	undocumented := map[instructions.Operator]bool{
		instructions.NOP: true, instructions.ANC: true, instructions.ANE: true,
		instructions.ARR: true, instructions.ASR: true, instructions.AXS: true,
		instructions.DCP: true, instructions.ISC: true, instructions.KIL: true,
		instructions.LAS: true, instructions.LAX: true, instructions.LXA: true,
		instructions.RLA: true, instructions.RRA: true, instructions.SAX: true,
		instructions.SBC: true, instructions.SHA: true, instructions.SHX: true,
		instructions.SHY: true, instructions.SLO: true, instructions.SRE: true,
		instructions.TAS: true,
	}

	for _, defn := range instructions.GetDefinitions() {
		test.ExpectEquality(t, undocumented[defn.Operator], defn.Undocumented, defn)
	}
}

func TestBranches(t *testing.T) {
	var branches int
	for _, defn := range instructions.GetDefinitions() {
		if defn.IsBranch() {
			branches++
			test.ExpectEquality(t, defn.Bytes, 2, defn)
			test.ExpectEquality(t, defn.PageSensitive, true, defn)
		}
	}
	test.ExpectEquality(t, branches, 8)
}

func TestAddressingModes(t *testing.T) {
	// a selection of opcodes from each addressing mode
	modes := map[uint8]instructions.AddressingMode{
		0xea: instructions.Implied,
		0x0a: instructions.Accumulator,
		0xa9: instructions.Immediate,
		0x90: instructions.Relative,
		0xad: instructions.Absolute,
		0xa5: instructions.ZeroPage,
		0x6c: instructions.Indirect,
		0xa1: instructions.IndexedIndirect,
		0xb1: instructions.IndirectIndexed,
		0xbd: instructions.AbsoluteIndexedX,
		0xb9: instructions.AbsoluteIndexedY,
		0xb5: instructions.ZeroPageIndexedX,
		0xb6: instructions.ZeroPageIndexedY,
	}

	for opcode, mode := range modes {
		defn := instructions.Lookup(opcode, false)
		test.DemandEquality(t, defn != nil, true, "%#02x", opcode)
		test.ExpectEquality(t, defn.AddressingMode, mode, "%#02x", opcode)
	}
}
