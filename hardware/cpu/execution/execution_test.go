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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result

	// not finalised
	test.ExpectFailure(t, r.IsValid())

	// LDA immediate
	r.Defn = instructions.Lookup(0xa9, false)
	r.ByteCount = 2
	r.Cycles = 2
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	// wrong byte count
	r.ByteCount = 1
	test.ExpectFailure(t, r.IsValid())
	r.ByteCount = 2

	// wrong cycle count
	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())

	// LDA immediate cannot page fault
	r.Cycles = 2
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
}

func TestValidityPageFault(t *testing.T) {
	var r execution.Result

	// LDA absolute,X
	r.Defn = instructions.Lookup(0xbd, false)
	r.ByteCount = 3
	r.Cycles = 4
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())
}

func TestValidityBranch(t *testing.T) {
	var r execution.Result

	// BCC
	r.Defn = instructions.Lookup(0x90, false)
	r.ByteCount = 2
	r.Final = true

	for c := 2; c <= 4; c++ {
		r.Cycles = c
		test.ExpectSuccess(t, r.IsValid(), c)
	}
	r.Cycles = 5
	test.ExpectFailure(t, r.IsValid())
}

func TestResultString(t *testing.T) {
	var r execution.Result
	r.Address = 0x0400
	test.ExpectEquality(t, r.String(), "0x0400 ???")

	r.Defn = instructions.Lookup(0xb1, false)
	r.InstructionData = 0x80
	r.Cycles = 6
	r.PageFault = true
	test.ExpectEquality(t, r.String(), "0x0400 LDA ($80),Y [6] page-fault")

	r.Reset()
	test.ExpectEquality(t, r.Defn == nil, true)
	test.ExpectEquality(t, r.Final, false)
}
