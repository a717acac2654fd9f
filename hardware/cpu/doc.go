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

// Package cpu emulates the 6502 microprocessor. The CPU type is attached to a
// cpubus.Memory implementation and executes one instruction at a time with
// the ExecuteInstruction() function.
//
// Each call to ExecuteInstruction() goes through the following states:
//
//	Ready -> Fetch -> Decode -> ResolveOperand -> Execute -> Ready
//
// The opcode is fetched from the address in the PC and decoded using the
// instructions package. If the opcode can not be decoded then no state is
// changed, an UnknownOpcode error is returned and the CPU is halted. The
// Halted state can only be left with Reset() or SoftReset().
//
// Addressing mode resolution is in addressing.go and the operators are
// implemented in operators.go. The program counter is advanced as the operand
// bytes are read, so instructions that change the flow of the program load
// the PC directly.
//
// After each cycle the cycleCallback function given to ExecuteInstruction()
// is called. The NilCycleCallback() function can be used when nothing needs
// to happen between cycles.
//
// The CPU emulates an NMOS 6502 by default. This includes decimal mode and the
// JMP indirect addressing bug. The Quirks field changes this behaviour and
// enables emulation of the undocumented opcodes.
package cpu
