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

// Package addresses contains the fixed addresses of the 6502 address space.
package addresses

// Reset is the address where the reset address is stored. Used by
// CPU.LoadPCIndirect() after a reset and by the programloader package.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. Interrupts are not
// emulated but the address is reserved so that loaded programs do not collide
// with it unknowingly.
const IRQ = uint16(0xfffe)

// Stack is the origin of the page used by the stack. The stack pointer is an
// offset into this page.
const Stack = uint16(0x0100)

// Memtop is the highest address in the address space.
const Memtop = uint16(0xffff)
