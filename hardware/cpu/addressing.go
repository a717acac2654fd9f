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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// operand is the result of addressing mode resolution.
type operand struct {
	// address is the actual address to use to access memory (after any
	// indexing has taken place). for relative addressing it is the
	// displacement
	address uint16

	// the address before indexing. used by some undocumented instructions
	base uint16

	// value is read from the program for immediate mode, and from memory for
	// all other modes that read memory. for instructions which are
	// read-modify-write, the value will change during execution and be used to
	// write back to memory
	value uint8
}

// memoryMode returns true if the addressing mode refers to a location in
// memory other than the program.
func memoryMode(mode instructions.AddressingMode) bool {
	switch mode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
		return false
	}
	return true
}

// resolve reads the operand bytes of the instruction and returns the
// effective address. The PC is advanced over the operand bytes.
//
// For Read and RMW instructions the value at the effective address is read as
// part of resolution.
func (mc *CPU) resolve(defn *instructions.Definition) (operand, error) {
	var op operand
	var err error

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		// implied mode does not use any additional bytes. however, the next
		// instruction is read but the PC is not incremented
		if defn.Operator == instructions.Brk {
			// BRK is unusual in that it increases the PC by two bytes despite
			// being an implied addressing instruction
			// +1 cycle
			err = mc.read8BitPC(brk)
			if err != nil {
				return op, err
			}
		} else {
			// phantom read
			// +1 cycle
			_, err = mc.read8Bit(mc.PC.Address())
			if err != nil {
				return op, err
			}
		}

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program
		// therefore, we don't set the address and we read the value through the PC

		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return op, err
		}
		op.value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// relative addressing is only used for branch instructions, the address
		// is an offset value from the current PC position

		// most of the addressing cycles for this addressing mode are consumed
		// in the branch() function

		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return op, err
		}
		op.address = mc.LastResult.InstructionData

	case instructions.Absolute:
		// for JSR, addresses are read slightly differently so we defer
		// this part of the operation to the operator
		if defn.Effect == instructions.Subroutine {
			return op, nil
		}

		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return op, err
		}
		op.address = mc.LastResult.InstructionData

	case instructions.ZeroPage:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return op, err
		}
		op.address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command

		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return op, err
		}
		indirectAddress := mc.LastResult.InstructionData

		// handle indirect addressing JMP bug
		if indirectAddress&0x00ff == 0x00ff && !mc.Quirks.NoIndirectJMPBug {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug

			// +1 cycle
			lo, err := mc.read8Bit(indirectAddress)
			if err != nil {
				return op, err
			}

			// in this bug path, the lower byte of the indirect address is on a
			// page boundary. because of the bug we must read high byte of JMP
			// address from the zero byte of the same page (rather than the
			// zero byte of the next page)
			// +1 cycle
			hi, err := mc.read8Bit(indirectAddress & 0xff00)
			if err != nil {
				return op, err
			}

			op.address = (uint16(hi) << 8) | uint16(lo)
		} else {
			// normal, non-buggy behaviour

			// +2 cycles
			op.address, err = mc.read16Bit(indirectAddress)
			if err != nil {
				return op, err
			}
		}

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return op, err
		}
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// phantom read before adjusting the index
		// +1 cycle
		_, err = mc.read8Bit(uint16(indirectAddress))
		if err != nil {
			return op, err
		}

		// using 8bit addition because we don't want indexed address to extend
		// past the first page
		mc.acc8.Load(mc.X.Value())
		mc.acc8.Add(indirectAddress, false)

		// make a note of indirect addressing bug
		if uint16(indirectAddress)+mc.X.Address() > 0xff || mc.acc8.Value() == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		// +2 cycles
		op.address, err = mc.read16BitZeroPage(mc.acc8.Value())
		if err != nil {
			return op, err
		}
		op.base = op.address

		// never a page fault wth pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return op, err
		}
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// the pointer wraps around the zero page
		if indirectAddress == 0xff {
			mc.LastResult.CPUBug = execution.IndirectIndexedAddressingBug
		}

		// +2 cycles
		op.base, err = mc.read16BitZeroPage(indirectAddress)
		if err != nil {
			return op, err
		}

		err = mc.index(defn, &op, mc.Y.Address())
		if err != nil {
			return op, err
		}

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return op, err
		}
		op.base = mc.LastResult.InstructionData

		err = mc.index(defn, &op, mc.X.Address())
		if err != nil {
			return op, err
		}

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return op, err
		}
		op.base = mc.LastResult.InstructionData

		err = mc.index(defn, &op, mc.Y.Address())
		if err != nil {
			return op, err
		}

	case instructions.ZeroPageIndexedX:
		err = mc.indexZeroPage(&op, mc.X.Value())
		if err != nil {
			return op, err
		}

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX ZeroPage,y and the similar undocumented
		// instructions
		err = mc.indexZeroPage(&op, mc.Y.Value())
		if err != nil {
			return op, err
		}

	default:
		return op, fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	if !memoryMode(defn.AddressingMode) {
		return op, nil
	}

	// read value from memory using address found in AddressingMode switch
	// above only when instruction is 'Read' OR 'ReadWrite'
	//  - for write modes, we only use the address to write a value we already have
	//  - for flow modes, the use of the address is very specific
	switch defn.Effect {
	case instructions.Read:
		// +1 cycle
		op.value, err = mc.read8Bit(op.address)
		if err != nil {
			return op, err
		}

	case instructions.RMW:
		// +1 cycle
		op.value, err = mc.read8Bit(op.address)
		if err != nil {
			return op, err
		}

		// phantom write
		// +1 cycle
		err = mc.write8Bit(op.address, op.value)
		if err != nil {
			return op, err
		}
		err = mc.cycle()
		if err != nil {
			return op, err
		}
	}

	return op, nil
}

// index adds the index to op.base and places the result in op.address. the
// index is added to the low byte first and the high byte fixed in a second
// step. a page fault occurs if the high byte needs fixing and the instruction
// is page sensitive.
func (mc *CPU) index(defn *instructions.Definition, op *operand, index uint16) error {
	// add index to LSB of address
	lsb := (op.base & 0x00ff) + index

	// check for page fault
	mc.LastResult.PageFault = defn.PageSensitive && lsb > 0x00ff
	if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
		// phantom read (always happens for Write and RMW)
		// +1 cycle
		_, err := mc.read8Bit((op.base & 0xff00) | (lsb & 0x00ff))
		if err != nil {
			return err
		}
	}

	// fix MSB of address
	op.address = op.base + index

	return nil
}

// indexZeroPage reads the zero page address from the program and adds the
// index. the result wraps around the zero page.
func (mc *CPU) indexZeroPage(op *operand, index uint8) error {
	// +1 cycles
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return err
	}

	// phantom read from base address before index adjustment
	// +1 cycles
	_, err = mc.read8Bit(mc.LastResult.InstructionData)
	if err != nil {
		return err
	}

	indirectAddress := uint8(mc.LastResult.InstructionData)
	op.base = uint16(indirectAddress)
	op.address = uint16(indirectAddress + index)

	// make a note of zero page index bug
	if uint16(indirectAddress)+uint16(index) > 0xff {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}

	return nil
}
