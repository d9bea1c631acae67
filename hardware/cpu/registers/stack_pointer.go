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

package registers

import "fmt"

// the stack lives in page one of memory.
const stackPage = uint16(0x0100)

// StackPointer represents the SP register in the 6502 CPU. The stack pointer
// is an offset into page one of memory.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the current value of the SP.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory address the SP currently points to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address to be written to and then decrements the stack
// pointer. The wrapped value is true if the stack pointer wrapped from 0x00
// to 0xff.
func (sp *StackPointer) Push() (address uint16, wrapped bool) {
	address = sp.Address()
	wrapped = sp.value == 0x00
	sp.value--
	return address, wrapped
}

// Pull increments the stack pointer and returns the address to be read. The
// wrapped value is true if the stack pointer wrapped from 0xff to 0x00.
func (sp *StackPointer) Pull() (address uint16, wrapped bool) {
	wrapped = sp.value == 0xff
	sp.value++
	return sp.Address(), wrapped
}
