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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each mode.
//
// Arguments are first given to NewArgs() and then parsed with Parse(). For
// example:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg().
//
// Flags are added in the same way as the flag package. Flags are specific to
// the next call to Parse():
//
//	trap := md.AddBool("trap", false, "stop when the PC does not change")
//
// A mode is a special command line argument that puts the program into a
// different mode of operation. Modes are added with AddSubModes(). The first
// mode in the list is the default mode.
//
//	md.AddSubModes("RUN", "STEP")
//
// After Parse() the selected mode can be checked with Mode():
//
//	switch md.Mode() {
//	case "RUN":
//		run(md)
//	case "STEP":
//		step(md)
//	}
//
// Sub-mode comparisons are case insensitive.
//
// A 16bit address flag is provided by AddAddress(). An address can be given in
// decimal, in hex with either the 0x or $ prefix, or in octal with the 0
// prefix.
package modalflag
