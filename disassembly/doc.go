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

// Package disassembly turns 6502 machine code into human readable text.
//
// The FormatResult() function creates an Entry from the execution.Result of
// an instruction that has been executed by the CPU. The Decode() function
// creates entries by walking through memory without executing anything.
//
// Operands are written in the conventional 6502 assembler syntax. Branch
// operands are shown as the address of the branch destination rather than as
// the offset.
package disassembly
