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

// Package logger is the central log repository. The CPU and the front end
// write notable events here rather than printing them directly, meaning the
// caller decides if and when the log is shown.
//
// Entries are tagged and repeated entries are collapsed into a single entry
// with a repeat count. The log is capped at a maximum number of entries, the
// oldest entries being dropped first.
//
// Most code should use the package level functions, which write to the
// central log. Independent logs can be created with NewLogger().
package logger
