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

package klaus2m5_test

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

const testBinary = "6502_functional_test.bin"

// these addresses are specific to the functional test binary
const (
	loadAddress    = uint16(0x0000)
	programOrigin  = uint16(0x0400)
	successAddress = uint16(0x3469)
)

func TestFunctional(t *testing.T) {
	bin, err := os.ReadFile(testBinary)
	if errors.Is(err, fs.ErrNotExist) {
		t.Skipf("%s not present", testBinary)
	}
	test.DemandSuccess(t, err)

	mem := memory.NewMemory()
	mc := cpu.NewCPU(mem)

	// cpu snapshot to be examined in case of test failure
	type snapshot struct {
		mc    *cpu.CPU
		stack string
	}
	var history [15]snapshot

	var totalCycles int
	var totalInstructions int

	// the run function is run at least once with the record parameter set to
	// false. if the run() fails, the function is run again with the record
	// parameter set to true
	run := func(record bool) bool {
		totalCycles = 0
		totalInstructions = 0

		mem.Clear()
		test.DemandSuccess(t, mem.Load(loadAddress, bin))
		mem.Write16(cpubus.Reset, programOrigin)
		test.DemandSuccess(t, mc.SoftReset())

		for {
			addr := mc.PC.Address()

			err := mc.Step()
			if err != nil {
				t.Fatal(err)
			}

			totalCycles += mc.LastResult.Cycles
			totalInstructions++

			if record {
				copy(history[:], history[1:])
				history[len(history)-1].mc = mc.Snapshot()
				history[len(history)-1].stack = mem.Page(cpubus.StackOrigin)
			}

			// reaching the successAddress means that all tests have completed
			if mc.PC.Address() == successAddress {
				return true
			}

			// "Loop on program counter determines error or successful completion of test"
			if mc.PC.Address() == addr {
				return false
			}
		}
	}

	if run(false) {
		t.Logf("%d instructions in %d cycles", totalInstructions, totalCycles)
		return
	}

	// the first run() failed so we run it again with the record parameter
	// set to true. note that we expect the execution to return false. if it
	// does not then something unexpected has gone wrong
	ok := run(true)
	test.DemandFailure(t, ok)

	// output immediate CPU history
	for _, l := range history {
		if l.mc != nil {
			t.Logf("%s", l.mc.LastResult)
			t.Logf("%s", l.mc)
		}
	}
	t.Logf("stack page\n%s", history[len(history)-1].stack)
	t.Fail()
}
