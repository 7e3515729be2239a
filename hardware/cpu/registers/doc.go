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

// Package registers implements the registers of the 6502: the 8bit Register
// type used for the accumulator and the two index registers, the 16bit
// ProgramCounter, the StackPointer and the StatusRegister.
//
// The Register type carries the ALU operations of the CPU. Operations return
// carry and overflow information where appropriate but they never touch the
// status register. Changing the status register is the responsibility of the
// CPU and is done explicitly. For instance, in the CPU we might have this
// sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
package registers
