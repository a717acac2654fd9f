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
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// IRQ triggers a maskable interrupt. The interrupt is ignored if the interrupt
// disable flag is set. The PC and the status register (with the break flag
// clear) are pushed onto the stack, the interrupt disable flag is set and the
// PC is loaded from the IRQ vector.
//
// The interrupt must be triggered between instructions.
func (mc *CPU) IRQ() error {
	if mc.Status.InterruptDisable {
		return nil
	}
	return mc.interrupt(cpubus.IRQ)
}

// NMI triggers a non-maskable interrupt. The PC and the status register (with
// the break flag clear) are pushed onto the stack, the interrupt disable flag
// is set and the PC is loaded from the NMI vector.
//
// The interrupt must be triggered between instructions.
func (mc *CPU) NMI() error {
	return mc.interrupt(cpubus.NMI)
}

func (mc *CPU) interrupt(vector uint16) error {
	if mc.Halted {
		return ErrHalted
	}

	// the interrupt sequence is recorded in LastResult without an instruction
	// definition
	mc.cycleCallback = NilCycleCallback
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// two internal cycles before the stack is written to
	// +2 cycles
	err := mc.cycle()
	if err != nil {
		return err
	}
	err = mc.cycle()
	if err != nil {
		return err
	}

	err = mc.pushWord(mc.PC.Address())
	if err != nil {
		return err
	}

	err = mc.push(mc.Status.Value() &^ registers.Break)
	if err != nil {
		return err
	}

	mc.Status.InterruptDisable = true

	address, err := mc.read16Bit(vector)
	if err != nil {
		return err
	}
	mc.PC.Load(address)

	mc.LastResult.Final = true

	return nil
}
