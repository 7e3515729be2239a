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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Final field indicates whether the CPU has completed the instruction.
// The value of other fields may be undefined until Final is true.
type Result struct {
	// address of the opcode
	Address uint16

	// nil if the opcode at Address has no definition
	Defn *instructions.Definition

	// the opcode byte. recorded even if Defn is nil
	OpCode uint8

	// the operand of the instruction. for branch instructions this is the
	// unsigned form of the relative offset
	InstructionData uint16

	// the number of bytes read during instruction decode. should equal
	// Defn.Bytes once Final is true
	ByteCount int

	// the actual number of cycles taken by the instruction - usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether branching instruction branched
	BranchSuccess bool

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x ??? (%#02x)", r.Address, r.OpCode)
	}
	return fmt.Sprintf("%#04x %s %s [%d]", r.Address, r.Defn.Operator, r.Defn.AddressingMode, r.Cycles)
}
