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

// Package cpubus defines the view of memory as seen by the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The CPU package only ever talks to memory through this interface,
// meaning that the CPU need not care how the address space is backed.
//
// The address space is the full 16bit range. Implementations that back every
// address (like memory.RAM) should never return an error. Implementations
// that leave holes in the address space should return an error that wraps
// AddressError.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is the pattern used by Memory implementations when an address
// can not be serviced. The CPU treats an AddressError as non-fatal.
const AddressError = "cpubus: inaccessible address (%#04x)"
