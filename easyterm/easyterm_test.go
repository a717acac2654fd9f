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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher6502/easyterm"
	"github.com/jetsetilly/gopher6502/test"
)

func TestMissingFiles(t *testing.T) {
	_, err := easyterm.NewTerminal(nil, os.Stdout)
	test.ExpectFailure(t, err)
	_, err = easyterm.NewTerminal(os.Stdin, nil)
	test.ExpectFailure(t, err)
}

func TestNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "easyterm")
	test.DemandSuccess(t, err)
	defer f.Close()

	// a regular file has no terminal attributes
	_, err = easyterm.NewTerminal(f, os.Stdout)
	test.ExpectFailure(t, err)
}
