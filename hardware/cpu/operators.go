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

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// execute performs the operation of the instruction on the resolved operand.
func (mc *CPU) execute(defn *instructions.Definition, op *operand) error {
	var err error

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		err = mc.push(mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Pla:
		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

		// +1 cycle
		op.value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.Php:
		// the break flag is always set when the status register is pushed by
		// an instruction
		// +1 cycle
		err = mc.push(mc.Status.Value() | registers.Break)
		if err != nil {
			return err
		}

	case instructions.Plp:
		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

		// +1 cycle
		op.value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(op.value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZeroSign(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZeroSign(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZeroSign(mc.X.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.And:
		mc.A.AND(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(op.value)
		mc.Status.SetZeroSign(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(op.value)
		mc.Status.SetZeroSign(mc.Y.Value())

	case instructions.Sta:
		// +1 cycle
		err = mc.store(op.address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		// +1 cycle
		err = mc.store(op.address, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		// +1 cycle
		err = mc.store(op.address, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetZeroSign(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetZeroSign(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.SetZeroSign(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.SetZeroSign(mc.Y.Value())

	case instructions.Asl:
		r := mc.modifyTarget(defn, op)
		mc.Status.Carry = r.ASL()
		mc.Status.SetZeroSign(r.Value())
		op.value = r.Value()

	case instructions.Lsr:
		r := mc.modifyTarget(defn, op)
		mc.Status.Carry = r.LSR()
		mc.Status.SetZeroSign(r.Value())
		op.value = r.Value()

	case instructions.Ror:
		r := mc.modifyTarget(defn, op)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.SetZeroSign(r.Value())
		op.value = r.Value()

	case instructions.Rol:
		r := mc.modifyTarget(defn, op)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.SetZeroSign(r.Value())
		op.value = r.Value()

	case instructions.Adc:
		mc.adc(op.value)

	case instructions.SBC:
		// SBC is an undocumented sbc. it is the same as the regular sbc
		// instruction
		fallthrough

	case instructions.Sbc:
		mc.sbc(op.value)

	case instructions.Inc:
		r := mc.modifyTarget(defn, op)
		r.Add(1, false)
		mc.Status.SetZeroSign(r.Value())
		op.value = r.Value()

	case instructions.Dec:
		r := mc.modifyTarget(defn, op)
		r.Add(0xff, false)
		mc.Status.SetZeroSign(r.Value())
		op.value = r.Value()

	case instructions.Cmp:
		// compare is always a binary operation even if decimal mode is active
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.A.Compare(op.value)

	case instructions.Cpx:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.X.Compare(op.value)

	case instructions.Cpy:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.Y.Compare(op.value)

	case instructions.Bit:
		r := mc.acc8
		r.Load(op.value)
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Jmp:
		mc.PC.Load(op.address)

	case instructions.Bcc:
		err = mc.branch(!mc.Status.Carry, op.address)
		if err != nil {
			return err
		}

	case instructions.Bcs:
		err = mc.branch(mc.Status.Carry, op.address)
		if err != nil {
			return err
		}

	case instructions.Beq:
		err = mc.branch(mc.Status.Zero, op.address)
		if err != nil {
			return err
		}

	case instructions.Bmi:
		err = mc.branch(mc.Status.Sign, op.address)
		if err != nil {
			return err
		}

	case instructions.Bne:
		err = mc.branch(!mc.Status.Zero, op.address)
		if err != nil {
			return err
		}

	case instructions.Bpl:
		err = mc.branch(!mc.Status.Sign, op.address)
		if err != nil {
			return err
		}

	case instructions.Bvc:
		err = mc.branch(!mc.Status.Overflow, op.address)
		if err != nil {
			return err
		}

	case instructions.Bvs:
		err = mc.branch(mc.Status.Overflow, op.address)
		if err != nil {
			return err
		}

	case instructions.Jsr:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// the current value of the PC is now correct, even though we've only
		// read one byte of the address so far. remember, RTS increments the PC
		// when read from the stack, meaning that the PC will be correct at
		// that point

		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

		// push MSB and LSB of PC onto stack
		// +2 cycles
		err = mc.pushWord(mc.PC.Address())
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.read8BitPC(hiNibble)
		if err != nil {
			return err
		}

		// perform jump. address has been built in the read8BitPC() calls
		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

		// +2 cycles
		var rtsAddress uint16
		rtsAddress, err = mc.pullWord()
		if err != nil {
			return err
		}

		// load and correct PC
		mc.PC.Load(rtsAddress)
		mc.PC.Increment()

		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

	case instructions.Brk:
		// push PC onto register (same effect as JSR). the PC has been advanced
		// by two bytes during addressing
		// +2 cycles
		err = mc.pushWord(mc.PC.Address())
		if err != nil {
			return err
		}

		// push status register with the break flag set (same effect as PHP)
		// +1 cycle
		err = mc.push(mc.Status.Value() | registers.Break)
		if err != nil {
			return err
		}

		mc.Status.InterruptDisable = true

		// perform jump
		// +2 cycles
		var brkAddress uint16
		brkAddress, err = mc.read16Bit(cpubus.BRK)
		if err != nil {
			return err
		}
		mc.PC.Load(brkAddress)

	case instructions.Rti:
		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

		// pull status register (same effect as PLP)
		// +1 cycles
		op.value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(op.value)

		// pull program counter (same effect as RTS)
		// +2 cycles
		var rtiAddress uint16
		rtiAddress, err = mc.pullWord()
		if err != nil {
			return err
		}

		// unlike RTS there is no need to add one to return address
		mc.PC.Load(rtiAddress)

	default:
		err = mc.executeUndocumented(defn, op)
		if err != nil {
			return err
		}
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW && defn.AddressingMode != instructions.Accumulator {
		// +1 cycle
		err = mc.store(op.address, op.value)
		if err != nil {
			return err
		}
	}

	return nil
}

// executeUndocumented performs the undocumented operators. these are only
// reachable if the undocumented opcodes have been enabled.
func (mc *CPU) executeUndocumented(defn *instructions.Definition, op *operand) error {
	switch defn.Operator {
	case instructions.NOP:
		// does nothing (multi-byte nop). the operand has been read as normal

	case instructions.LAX:
		mc.A.Load(op.value)
		mc.X.Load(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.LXA:
		// unstable. the constant is the value most commonly observed
		mc.A.ORA(0xee)
		mc.A.AND(op.value)
		mc.X.Load(mc.A.Value())
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.ANE:
		// unstable. the constant is the value most commonly observed
		mc.A.ORA(0xee)
		mc.A.AND(mc.X.Value())
		mc.A.AND(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.LAS:
		r := mc.acc8
		r.Load(mc.SP.Value())
		r.AND(op.value)
		mc.A.Load(r.Value())
		mc.X.Load(r.Value())
		mc.SP.Load(r.Value())
		mc.Status.SetZeroSign(r.Value())

	case instructions.SAX:
		r := mc.acc8
		r.Load(mc.A.Value())
		r.AND(mc.X.Value())

		// +1 cycle
		return mc.store(op.address, r.Value())

	case instructions.SHA:
		r := mc.acc8
		r.Load(mc.A.Value())
		r.AND(mc.X.Value())
		r.AND(uint8(op.base>>8) + 1)

		// +1 cycle
		return mc.store(op.address, r.Value())

	case instructions.SHX:
		r := mc.acc8
		r.Load(mc.X.Value())
		r.AND(uint8(op.base>>8) + 1)

		// +1 cycle
		return mc.store(op.address, r.Value())

	case instructions.SHY:
		r := mc.acc8
		r.Load(mc.Y.Value())
		r.AND(uint8(op.base>>8) + 1)

		// +1 cycle
		return mc.store(op.address, r.Value())

	case instructions.TAS:
		r := mc.acc8
		r.Load(mc.A.Value())
		r.AND(mc.X.Value())
		mc.SP.Load(r.Value())

		// continue working with r and store into address
		r.AND(uint8(op.base>>8) + 1)

		// +1 cycle
		return mc.store(op.address, r.Value())

	case instructions.DCP:
		// decrease value...
		r := mc.acc8
		r.Load(op.value)
		r.Add(0xff, false)
		op.value = r.Value()

		// ... and compare with the A register
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.A.Compare(op.value)

	case instructions.ISC:
		// increase value...
		r := mc.acc8
		r.Load(op.value)
		r.Add(1, false)
		op.value = r.Value()

		// ... and subtract from the A register
		mc.sbc(op.value)

	case instructions.SLO:
		r := mc.acc8
		r.Load(op.value)
		mc.Status.Carry = r.ASL()
		op.value = r.Value()
		mc.A.ORA(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.RLA:
		r := mc.acc8
		r.Load(op.value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		op.value = r.Value()
		mc.A.AND(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.SRE:
		r := mc.acc8
		r.Load(op.value)
		mc.Status.Carry = r.LSR()
		op.value = r.Value()
		mc.A.EOR(op.value)
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.RRA:
		r := mc.acc8
		r.Load(op.value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		op.value = r.Value()
		mc.adc(op.value)

	case instructions.ANC:
		// immediate AND. puts bit 7 into the carry flag (in microcode terms
		// this is as though ASL had been enacted)
		mc.A.AND(op.value)
		mc.Status.SetZeroSign(mc.A.Value())
		mc.Status.Carry = mc.A.IsNegative()

	case instructions.ASR:
		mc.A.AND(op.value)

		// ... then LSR the result
		mc.Status.Carry = mc.A.LSR()
		mc.Status.SetZeroSign(mc.A.Value())

	case instructions.ARR:
		// binary mode behaviour only
		mc.A.AND(op.value)
		mc.A.ROR(mc.Status.Carry)
		mc.Status.SetZeroSign(mc.A.Value())
		mc.Status.Carry = mc.A.IsBitV()
		mc.Status.Overflow = mc.A.IsBitV() != (mc.A.Value()&0x20 == 0x20)

	case instructions.AXS:
		mc.X.AND(mc.A.Value())

		// axs subtract behaves like CMP as far as carry and overflow flags are
		// concerned
		mc.Status.Carry, _ = mc.X.Subtract(op.value, true)
		mc.Status.SetZeroSign(mc.X.Value())

	case instructions.KIL:
		mc.Halted = true
		logger.Logf(logger.Allow, "CPU", "KIL instruction (%#04x)", mc.LastResult.Address)

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	return nil
}

// store writes the value to memory and ends the cycle
func (mc *CPU) store(address uint16, value uint8) error {
	err := mc.write8Bit(address, value)
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.cycle()
}

// modifyTarget returns the register to use for a shift, rotate, increment or
// decrement. for the accumulator addressing mode this is the A register,
// otherwise the internal accumulator loaded with the operand value.
func (mc *CPU) modifyTarget(defn *instructions.Definition, op *operand) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	mc.acc8.Load(op.value)
	return &mc.acc8
}

// adc adds the value to the A register, using decimal arithmetic if
// appropriate
func (mc *CPU) adc(value uint8) {
	if mc.Status.DecimalMode && !mc.Quirks.NoDecimalMode {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		return
	}

	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.Status.SetZeroSign(mc.A.Value())
}

// sbc subtracts the value from the A register, using decimal arithmetic if
// appropriate
func (mc *CPU) sbc(value uint8) {
	if mc.Status.DecimalMode && !mc.Quirks.NoDecimalMode {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		return
	}

	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.Status.SetZeroSign(mc.A.Value())
}

// branch adds the displacement to the PC if flag is true. the displacement is
// added to the address of the instruction following the branch.
func (mc *CPU) branch(flag bool, displacement uint16) error {
	// note branching result
	mc.LastResult.BranchSuccess = flag

	if !flag {
		return nil
	}

	// note current PC for reference
	oldPC := mc.PC.Address()

	// phantom read
	// +1 cycle
	_, err := mc.read8Bit(oldPC)
	if err != nil {
		return err
	}

	mc.LastResult.PageFault = mc.PC.AddRelative(uint8(displacement))

	// check to see whether branching has crossed a page
	if mc.LastResult.PageFault {
		// phantom read from the address before the MSB has been corrected
		// +1 cycle
		_, err := mc.read8Bit(oldPC&0xff00 | mc.PC.Address()&0x00ff)
		if err != nil {
			return err
		}
	}

	return nil
}
