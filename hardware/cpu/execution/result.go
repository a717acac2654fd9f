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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the last instruction executed by the
// CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the opcode could not
	// be decoded
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully
	// decoded
	ByteCount int

	// the operand of the instruction. for instructions with a single byte
	// operand only the lower eight bits are meaningful
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether branch instruction test passed (ie. branched) or not. testing
	// of this field should be used in conjunction with Defn.IsBranch()
	BranchSuccess bool

	// whether this data has been finalised. some fields in this struct will
	// be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x %s", r.Address, r.Defn.Operator))

	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		s.WriteString(" A")
	case instructions.Immediate:
		s.WriteString(fmt.Sprintf(" #$%02x", r.InstructionData))
	case instructions.Relative, instructions.ZeroPage:
		s.WriteString(fmt.Sprintf(" $%02x", r.InstructionData))
	case instructions.Absolute:
		s.WriteString(fmt.Sprintf(" $%04x", r.InstructionData))
	case instructions.Indirect:
		s.WriteString(fmt.Sprintf(" ($%04x)", r.InstructionData))
	case instructions.IndexedIndirect:
		s.WriteString(fmt.Sprintf(" ($%02x,X)", r.InstructionData))
	case instructions.IndirectIndexed:
		s.WriteString(fmt.Sprintf(" ($%02x),Y", r.InstructionData))
	case instructions.AbsoluteIndexedX:
		s.WriteString(fmt.Sprintf(" $%04x,X", r.InstructionData))
	case instructions.AbsoluteIndexedY:
		s.WriteString(fmt.Sprintf(" $%04x,Y", r.InstructionData))
	case instructions.ZeroPageIndexedX:
		s.WriteString(fmt.Sprintf(" $%02x,X", r.InstructionData))
	case instructions.ZeroPageIndexedY:
		s.WriteString(fmt.Sprintf(" $%02x,Y", r.InstructionData))
	}

	s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" (%s)", r.CPUBug))
	}

	return s.String()
}
