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

// Package disassembly produces disassemblies of 6502 programs in memory.
//
// The FromMemory() function decodes a range of memory linearly. Every
// instruction is assumed to follow on from the previous instruction so data
// in the range will be decoded as though it were program code.
//
// A disassembly can also be added to a machine as a reflector. Entries for
// instructions that are executed by the machine are updated with the result
// of the execution. Executed instructions that are outside of the decoded
// range are added to the disassembly.
package disassembly
