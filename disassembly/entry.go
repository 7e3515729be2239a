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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte point is a valid
// instruction. Executed entries have been created from the result of
// executing the instruction.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	// the level of reliability of the information in the Entry. executed
	// entries may be partially executed. check Result.Final if required
	Level EntryLevel

	// copy of the CPU execution
	Result execution.Result

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func (e *Entry) String() string {
	s := fmt.Sprintf("%s  %-8s  %s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
	return strings.TrimRight(s, " ")
}

// Cycles returns the number of cycles taken by the instruction. For entries
// that have not been executed this is the number of cycles in the definition,
// with an asterisk if the actual number may be greater.
func (e *Entry) Cycles() string {
	// the Defn field may be unassigned
	if e.Result.Defn == nil {
		return "?"
	}

	if e.Level < EntryLevelExecuted {
		if e.Result.Defn.PageSensitive {
			return fmt.Sprintf("%d*", e.Result.Defn.Cycles)
		}
		return fmt.Sprintf("%d", e.Result.Defn.Cycles)
	}

	if e.Result.Final {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	return fmt.Sprintf("%d of %d", e.Result.Cycles, e.Result.Defn.Cycles)
}

// Notes returns a string with notes about the execution of the entry. The
// information is made up of the BranchSuccess and PageFault fields.
func (e *Entry) Notes() string {
	if e.Level < EntryLevelExecuted || !e.Result.Final {
		return ""
	}

	s := strings.Builder{}

	if e.Result.Defn != nil && e.Result.Defn.IsBranch() {
		if e.Result.BranchSuccess {
			s.WriteString("branch succeeded ")
		} else {
			s.WriteString("branch failed ")
		}

		if e.Result.PageFault {
			s.WriteString("with page-fault ")
		}
	} else if e.Result.PageFault {
		s.WriteString("page-fault ")
	}

	return strings.TrimSpace(s.String())
}

// addrModeDecoration adds the addressing mode indicators to the operand.
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	s := operand

	switch mode {
	case instructions.Implied:
	case instructions.Immediate:
		s = fmt.Sprintf("#%s", operand)
	case instructions.Relative:
	case instructions.Absolute:
	case instructions.ZeroPage:
	case instructions.Indirect:
		s = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		s = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		s = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	case instructions.ZeroPageIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.ZeroPageIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	}

	return s
}

// absoluteBranchDestination returns the branch operand as the address of the
// branched PC, rather than an offset value.
func absoluteBranchDestination(addr uint16, operand uint16) uint16 {
	pc := registers.NewProgramCounter(addr)

	// all 6502 branch instructions are 2 bytes in length
	pc.Add(2)

	// the sign bit of the 8bit offset must be carried into the high byte
	if operand&0x0080 == 0x0080 {
		operand |= 0xff00
	}
	pc.Add(operand)

	return pc.Address()
}
