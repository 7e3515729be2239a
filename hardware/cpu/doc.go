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

// Package cpu emulates the 6502 microprocessor. Execution is cycle accurate
// at the level of the bus: every read and write to memory, including the
// reads that the 6502 makes while it is busy internally, is counted as a
// cycle and reported through the cycle callback.
//
// The CPU only sees memory through the cpubus.Memory interface. It can be
// used with the RAM type in the memory package or with any other
// implementation:
//
//	mc := cpu.NewCPU(mem)
//	if err := mc.Reset(); err != nil {
//		return err
//	}
//	consumed, err := mc.Execute(1000)
//
// ExecuteInstruction() steps exactly one instruction and calls the callback
// function after every cycle. The LastResult field records the details of the
// most recent instruction. Its Final field is false only when the callback
// has returned an error part way through an instruction.
//
// The opcodes of the original NMOS 6502 are supported with the exception of
// the interrupt instructions (BRK and RTI) and the undocumented opcodes.
// These are reported as an unknown opcode error. Decimal mode can be set and
// cleared but arithmetic is always binary.
package cpu
