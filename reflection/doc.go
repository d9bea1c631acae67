// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package reflection records the state of the machine at the end of every
// instruction. It is used for tracing program execution and for inspecting
// the machine with external tools.
//
// A Gatherer is attached to a machine with the AddReflector() function:
//
//	g := reflection.NewGatherer(1000)
//	m.AddReflector(g)
//
// The Gatherer keeps a bounded history of Entry values. When a Renderer is
// added to the Gatherer, the entries are sent to the Renderer in batches.
//
// The Graph() function writes the state of the CPU as a Graphviz graph.
package reflection
