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
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// Quirks changes the behaviour of the CPU away from that of the NMOS 6502.
// The zero value is the NMOS 6502 with undocumented opcodes disabled.
type Quirks struct {
	// the JMP indirect instruction reads the high byte of the address from the
	// start of the same page when the pointer is at the end of a page. setting
	// this field fixes the bug
	NoIndirectJMPBug bool

	// decode and emulate the undocumented opcodes. if this field is false then
	// undocumented opcodes are unknown opcodes
	Undocumented bool

	// ignore the decimal mode flag when performing ADC and SBC instructions.
	// the 2A03 found in the NES is an example of a 6502 without decimal mode
	NoDecimalMode bool
}

// CPU implements the 6502. Register logic is implemented by the Register type
// in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory

	// cycleCallback is called for additional emulator functionality
	cycleCallback func() error

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result

	Quirks Quirks

	// log a message whenever a known CPU bug has been triggered
	LogBugs bool

	// the cpu has encounted an unknown opcode or a KIL instruction. requires
	// a Reset()
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Registers are initialised to zero and the stack pointer to 0xff. The PC is
// not loaded from the reset vector until Reset() or SoftReset() is called.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:           mem,
		PC:            registers.NewProgramCounter(0),
		A:             registers.NewRegister(0, "A"),
		X:             registers.NewRegister(0, "X"),
		Y:             registers.NewRegister(0, "Y"),
		SP:            registers.NewStackPointer(0xff),
		Status:        registers.NewStatusRegister(),
		acc8:          registers.NewRegister(0, "accumulator"),
		cycleCallback: NilCycleCallback,
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the same memory.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset zeroes memory, reinitialises all registers and loads the PC from the
// reset vector. Because memory has been cleared the reset vector will be zero.
// Use SoftReset() to start a program that has been loaded into memory.
//
// If the memory implementation doesn't satisfy the cpubus.Clearer interface
// then every address is written with zero.
func (mc *CPU) Reset() error {
	if c, ok := mc.mem.(cpubus.Clearer); ok {
		c.Clear()
	} else {
		for a := 0; a <= 0xffff; a++ {
			if err := mc.mem.Write(uint16(a), 0); err != nil {
				return fmt.Errorf("cpu: %w", err)
			}
		}
	}
	return mc.SoftReset()
}

// SoftReset reinitialises all registers and loads the PC from the reset
// vector. Memory is not changed.
func (mc *CPU) SoftReset() error {
	mc.LastResult.Reset()
	mc.Halted = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.cycleCallback = NilCycleCallback

	return mc.LoadPCIndirect(cpubus.Reset)
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Address == 0 && mc.LastResult.Defn == nil && !mc.LastResult.Final
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.Read16(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// Read8 returns the value at address. It does not affect the state of the
// CPU.
func (mc *CPU) Read8(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, fmt.Errorf("cpu: %w", err)
	}
	return v, nil
}

// Write8 writes value to address. It does not affect the state of the CPU.
func (mc *CPU) Write8(address uint16, value uint8) error {
	if err := mc.mem.Write(address, value); err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	return nil
}

// Read16 returns the little-endian 16bit value at address. It does not
// affect the state of the CPU.
func (mc *CPU) Read16(address uint16) (uint16, error) {
	lo, err := mc.Read8(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.Read8(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// adhoc interface used by the Load() function
type loader interface {
	Load(origin uint16, data []uint8) error
}

// Load copies data into memory starting at origin. It does not affect the
// state of the CPU.
func (mc *CPU) Load(origin uint16, data []uint8) error {
	if l, ok := mc.mem.(loader); ok {
		return l.Load(origin, data)
	}

	if int(origin)+len(data) > 0x10000 {
		return fmt.Errorf("cpu: %d bytes at %#04x does not fit in address space", len(data), origin)
	}
	for i, d := range data {
		if err := mc.Write8(origin+uint16(i), d); err != nil {
			return err
		}
	}
	return nil
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val, err := mc.mem.Read(address)
	if err != nil {
		return 0, fmt.Errorf("cpu: %w", err)
	}

	// +1 cycle
	err = mc.cycle()
	if err != nil {
		return 0, err
	}

	return val, nil
}

// write8Bit writes 8 bits to the specified address. there are no side effects
// on the state of the CPU which means that *cycleCallback must be called by the
// calling function as appropriate*.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	err := mc.mem.Write(address, value)
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	return nil
}

// read16Bit returns 16bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage returns the 16bit value from the specified zero page
// address. the address of the high byte wraps around to the start of the zero
// page.
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address))
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(uint16(address + 1))
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}

	mc.PC.Increment()

	switch effect {
	case brk:
		// the BRK command causes the PC to advance by two but we don't want
		// to record that the additional byte has been read

	case loNibble:
		mc.LastResult.ByteCount++
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.ByteCount++
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	return mc.cycle()
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field, once before each call to cycleCallback
func (mc *CPU) read16BitPC() error {
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return err
	}
	return mc.read8BitPC(hiNibble)
}

// cycle marks the end of a CPU cycle
func (mc *CPU) cycle() error {
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenienct do-nothing function.
func NilCycleCallback() error {
	return nil
}

// Step executes a single instruction with no cycle callback.
func (mc *CPU) Step() error {
	return mc.ExecuteInstruction(NilCycleCallback)
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycle. After each cycle, the
// cycleCallback() function is run.
//
// The cycleCallback arugment should *never* be nil. Use the NilCycleCallback()
// function in this package if you want a nil effect.
//
// An opcode that can not be decoded results in an UnknownOpcode error. In this
// case no register, flag or memory has been changed and the CPU is halted.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if mc.Halted {
		return ErrHalted
	}

	// update cycle callback
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// fetch and decode. the PC is not advanced until we know the opcode is
	// valid
	opcode, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}

	defn := instructions.Lookup(opcode, mc.Quirks.Undocumented)
	if defn == nil {
		mc.LastResult.ByteCount = 1
		mc.LastResult.Final = true
		mc.Halted = true
		err := &UnknownOpcode{Opcode: opcode, Address: mc.PC.Address()}
		logger.Log(logger.Allow, "CPU", err)
		return err
	}

	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = 1
	mc.PC.Increment()

	// +1 cycle
	err = mc.cycle()
	if err != nil {
		return err
	}

	op, err := mc.resolve(defn)
	if err != nil {
		return err
	}

	err = mc.execute(defn, &op)
	if err != nil {
		return err
	}

	// finalise result
	mc.LastResult.Final = true

	if mc.LogBugs && mc.LastResult.CPUBug != execution.NoBug {
		logger.Logf(logger.Allow, "CPU", "%s at %#04x", mc.LastResult.CPUBug, mc.LastResult.Address)
	}

	return nil
}
