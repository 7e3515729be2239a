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

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
)

// StackPointer is the SP register. The value is an offset into the stack page
// and wraps within that page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
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

// Value returns the offset into the stack page.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the effective address in the stack page.
func (sp StackPointer) Address() uint16 {
	return addresses.Stack | uint16(sp.value)
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push moves the stack pointer down one place. Called after a value has been
// written to the stack.
func (sp *StackPointer) Push() {
	sp.value--
}

// Pull moves the stack pointer up one place. Called before a value is read
// from the stack.
func (sp *StackPointer) Pull() {
	sp.value++
}
