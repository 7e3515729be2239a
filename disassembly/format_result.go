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
)

// FormatResult creates an Entry for the supplied result. It will be assigned
// the specified EntryLevel.
//
// Results that are not final will have placeholders in the Bytecode and
// Operand fields for the bytes that have not been read.
func FormatResult(result execution.Result, level EntryLevel) *Entry {
	e := &Entry{
		Level:  level,
		Result: result,
	}

	e.Address = fmt.Sprintf("$%04x", result.Address)

	// if definition is nil then set the operator field to ??? and return with
	// no further formatting
	if result.Defn == nil {
		e.Operator = "???"
		e.Bytecode = fmt.Sprintf("%02x", result.OpCode)
		return e
	}

	e.Operator = result.Defn.Operator.String()

	// bytecode and operand string is assembled depending on the number of
	// expected bytes (result.Defn.Bytes) and the number of bytes read so far
	// (result.ByteCount)
	operand := result.InstructionData
	switch result.Defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			e.Operand = fmt.Sprintf("$%04x", operand)
			e.Bytecode = fmt.Sprintf("%02x %02x %02x", result.Defn.OpCode, operand&0x00ff, operand>>8)
		case 2:
			e.Operand = fmt.Sprintf("$??%02x", operand&0x00ff)
			e.Bytecode = fmt.Sprintf("%02x %02x ??", result.Defn.OpCode, operand&0x00ff)
		default:
			e.Operand = "$????"
			e.Bytecode = fmt.Sprintf("%02x ?? ??", result.Defn.OpCode)
		}
	case 2:
		switch result.ByteCount {
		case 2:
			if result.Defn.AddressingMode == instructions.Relative {
				e.Operand = fmt.Sprintf("$%04x", absoluteBranchDestination(result.Address, operand))
			} else {
				e.Operand = fmt.Sprintf("$%02x", operand)
			}
			e.Bytecode = fmt.Sprintf("%02x %02x", result.Defn.OpCode, operand&0x00ff)
		default:
			e.Operand = "$??"
			e.Bytecode = fmt.Sprintf("%02x ??", result.Defn.OpCode)
		}
	default:
		e.Bytecode = fmt.Sprintf("%02x", result.Defn.OpCode)
	}
	e.Bytecode = strings.TrimSpace(e.Bytecode)

	// the accumulator forms of the shift and rotate instructions
	if result.Defn.AddressingMode == instructions.Implied && result.Defn.Effect == instructions.RMW {
		e.Operand = "A"
		return e
	}

	e.Operand = addrModeDecoration(e.Operand, result.Defn.AddressingMode)

	return e
}
