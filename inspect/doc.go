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

// Package inspect takes a snapshot of the CPU state in a form suitable for
// visualisation. The Graph() function writes the snapshot as a Graphviz
// diagram using the memviz package.
//
//	f, _ := os.Create("state.dot")
//	defer f.Close()
//	inspect.Graph(f, mc)
//
// The resulting file can be rendered with the dot command.
package inspect
