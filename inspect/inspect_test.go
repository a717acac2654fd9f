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

package inspect_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/inspect"
	"github.com/jetsetilly/gopher6502/test"
)

func newCPU(t *testing.T) *cpu.CPU {
	t.Helper()

	mem := memory.NewMemory()
	mc := cpu.NewCPU(mem)

	// LDA immediate; PHA; LDA immediate; PHA
	test.DemandSuccess(t, mem.Load(0x0400, []uint8{0xa9, 0x11, 0x48, 0xa9, 0x22, 0x48}))
	mem.Write16(0xfffc, 0x0400)
	test.DemandSuccess(t, mc.SoftReset())

	for i := 0; i < 4; i++ {
		test.DemandSuccess(t, mc.Step())
	}

	return mc
}

func TestState(t *testing.T) {
	mc := newCPU(t)

	st, err := inspect.NewState(mc)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, st.Registers.PC, 0x0406)
	test.ExpectEquality(t, st.Registers.A, 0x22)
	test.ExpectEquality(t, st.Registers.SP, 0xfd)
	test.ExpectEquality(t, st.Registers.Status, mc.Status.String())
	test.ExpectEquality(t, st.LastResult.Address, 0x0405)

	test.DemandEquality(t, len(st.Stack), 2)
	test.ExpectEquality(t, st.Stack[0], 0x22)
	test.ExpectEquality(t, st.Stack[1], 0x11)
}

func TestEmptyStack(t *testing.T) {
	mc := cpu.NewCPU(memory.NewMemory())
	st, err := inspect.NewState(mc)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(st.Stack), 0)
}

func TestGraph(t *testing.T) {
	mc := newCPU(t)

	tw := &test.Writer{}
	test.ExpectSuccess(t, inspect.Graph(tw, mc))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "digraph"))
}
