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
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// the instruction definitions are the same for every decode
var definitions = instructions.GetDefinitions()

// Decode memory from the first address to the last address, inclusive. Every
// byte is assumed to be the start of an instruction, with the next instruction
// starting immediately after the operand bytes. Bytes that are not a known
// opcode are decoded as a single byte entry.
//
// An instruction that starts at or before the last address is decoded in full,
// even if its operand bytes are after the last address. Decoding never wraps
// from 0xffff to 0x0000.
func Decode(mem cpubus.Memory, from uint16, to uint16) ([]*Entry, error) {
	if to < from {
		return nil, curated.Errorf("disassembly: range is backwards ($%04x to $%04x)", from, to)
	}

	entries := make([]*Entry, 0)

	address := int(from)
	for address <= int(to) {
		result, err := decodeInstruction(mem, uint16(address))
		if err != nil {
			return entries, err
		}
		entries = append(entries, FormatResult(result, EntryLevelDecoded))
		address += result.ByteCount
	}

	return entries, nil
}

// decodeInstruction creates an execution.Result for the instruction at
// address without executing it. The ByteCount field is always at least one.
func decodeInstruction(mem cpubus.Memory, address uint16) (execution.Result, error) {
	result := execution.Result{
		Address: address,
	}

	opcode, err := read(mem, address)
	if err != nil {
		return result, err
	}
	result.OpCode = opcode
	result.ByteCount = 1

	defn := definitions[opcode]
	if defn == nil {
		return result, nil
	}
	result.Defn = defn

	for i := 1; i < defn.Bytes; i++ {
		v, err := read(mem, address+uint16(i))
		if err != nil {
			return result, err
		}
		result.InstructionData |= uint16(v) << (8 * (i - 1))
		result.ByteCount++
	}

	return result, nil
}

// read ignores inaccessible addresses in the same way as the CPU
func read(mem cpubus.Memory, address uint16) (uint8, error) {
	v, err := mem.Read(address)
	if err != nil && !curated.Is(err, cpubus.AddressError) {
		return 0, curated.Errorf("disassembly: %v", err)
	}
	return v, nil
}
