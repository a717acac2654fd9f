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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/test"
	"github.com/jetsetilly/gopher6502/version"
)

// binary writes the program to a temporary file and returns the filename
func binary(t *testing.T, program ...uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o644))
	return fn
}

func TestHelp(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-help"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "available sub-modes: RUN, STEP, VERSION"))
}

func TestVersion(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"VERSION"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), version.ApplicationName), tw.String())

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"VERSION", "-revision"}, tw), 0)
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 2)
}

func TestRunTrap(t *testing.T) {
	// LDA immediate; JMP absolute (to itself)
	fn := binary(t, 0xa9, 0x42, 0x4c, 0x02, 0x04)

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-trap", fn}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "trapped at 0x0402"), tw.String())
	test.ExpectSuccess(t, strings.Contains(tw.String(), "A=0x42"), tw.String())
	test.ExpectSuccess(t, strings.Contains(tw.String(), "2 instructions in 5 cycles"), tw.String())
}

func TestRunMax(t *testing.T) {
	// JMP absolute (to itself)
	fn := binary(t, 0x4c, 0x00, 0x04)

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-max", "10", fn}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "10 instructions in 30 cycles"), tw.String())
}

func TestRunEntry(t *testing.T) {
	// unknown opcode followed by LDA immediate; JMP absolute (to itself)
	fn := binary(t, 0x02, 0xea, 0xea, 0xa9, 0x01, 0x4c, 0x05, 0x04)

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-trap", "-entry", "0x0403", fn}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "trapped at 0x0405"), tw.String())
}

func TestRunOrigin(t *testing.T) {
	// LDA immediate; JMP absolute (to itself)
	fn := binary(t, 0xa9, 0x42, 0x4c, 0x02, 0x10)

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-trap", "-origin", "$1000", fn}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "trapped at 0x1002"), tw.String())
}

func TestRunUnknownOpcode(t *testing.T) {
	fn := binary(t, 0x02)

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", fn}, tw), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "cpu: unknown opcode (0x02) at (0x0400)"), tw.String())

	// the opcode is a KIL instruction when undocumented opcodes are enabled
	tw.Clear()
	test.ExpectEquality(t, launch([]string{"RUN", "-undocumented", fn}, tw), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "cpu: halted"), tw.String())
}

func TestRunErrors(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN"}, tw), 20)
	test.ExpectEquality(t, launch([]string{"RUN", "a", "b"}, tw), 20)
	test.ExpectEquality(t, launch([]string{"RUN", filepath.Join(t.TempDir(), "missing.bin")}, tw), 20)
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, tw), 10)

	// binary does not fit in memory
	fn := binary(t, 0xea, 0xea)
	test.ExpectEquality(t, launch([]string{"RUN", "-origin", "0xffff", fn}, tw), 20)
}

func TestMemviz(t *testing.T) {
	// LDA immediate; JMP absolute (to itself)
	fn := binary(t, 0xa9, 0x42, 0x4c, 0x02, 0x04)
	dot := filepath.Join(t.TempDir(), "state.dot")

	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-trap", "-memviz", dot, fn}, tw), 0)

	d, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}
