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

package inspect

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Registers is a copy of the CPU registers.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status string
}

// State is a snapshot of the CPU.
type State struct {
	Registers Registers

	// the result of the most recent instruction
	LastResult execution.Result

	// the contents of the stack from the top of the stack to the base of page
	// one. the first entry is the value that will be pulled next
	Stack []uint8

	Quirks cpu.Quirks
	Halted bool
}

// NewState creates a snapshot of the CPU. The stack is read without affecting
// the state of the CPU.
func NewState(mc *cpu.CPU) (*State, error) {
	st := &State{
		Registers: Registers{
			PC:     mc.PC.Address(),
			A:      mc.A.Value(),
			X:      mc.X.Value(),
			Y:      mc.Y.Value(),
			SP:     mc.SP.Value(),
			Status: mc.Status.String(),
		},
		LastResult: mc.LastResult,
		Quirks:     mc.Quirks,
		Halted:     mc.Halted,
	}

	for a := uint16(mc.SP.Value()) + 1; a <= 0xff; a++ {
		v, err := mc.Read8(cpubus.StackOrigin | a)
		if err != nil {
			return nil, fmt.Errorf("inspect: %w", err)
		}
		st.Stack = append(st.Stack, v)
	}

	return st, nil
}

// Graph writes a Graphviz diagram of the CPU state to output.
func Graph(output io.Writer, mc *cpu.CPU) error {
	st, err := NewState(mc)
	if err != nil {
		return err
	}
	memviz.Map(output, st)
	return nil
}
