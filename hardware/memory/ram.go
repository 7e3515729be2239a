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

package memory

import (
	"fmt"
	"strings"
)

// Size of the address space in bytes.
const Size = 0x10000

// RAM is the 64KiB flat memory of the 6502 address space.
type RAM struct {
	memory [Size]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// memory is zeroed.
func NewRAM() *RAM {
	return &RAM{}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	return &n
}

func (ram *RAM) String() string {
	return ram.Dump(0x0000, 0x00ff)
}

// Dump returns a hex dump of the address range. The range is extended to
// whole rows of sixteen bytes.
func (ram *RAM) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	row := int(from) & 0xfff0
	for row <= int(to) {
		s.WriteString(fmt.Sprintf("%04x | ", row))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[row+x]))
		}
		s.WriteString("\n")
		row += 16
	}

	return strings.TrimSuffix(s.String(), "\n")
}

// Clear sets all bytes in memory to zero.
func (ram *RAM) Clear() {
	ram.memory = [Size]uint8{}
}

// ReadByte returns the byte stored at address.
func (ram *RAM) ReadByte(address uint16) uint8 {
	return ram.memory[address]
}

// WriteByte stores value at address.
func (ram *RAM) WriteByte(address uint16, value uint8) {
	ram.memory[address] = value
}

// ReadWord returns the little-endian word stored at address. The high byte is
// read from address+1, wrapping to 0x0000 if address is 0xffff.
func (ram *RAM) ReadWord(address uint16) uint16 {
	lo := ram.memory[address]
	hi := ram.memory[address+1]
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord stores value as a little-endian word at address. The same
// wrapping rule as ReadWord() applies.
func (ram *RAM) WriteWord(address uint16, value uint16) {
	ram.memory[address] = uint8(value)
	ram.memory[address+1] = uint8(value >> 8)
}

// Load copies data into memory starting at origin. Data that runs past the top
// of memory wraps around to the bottom.
func (ram *RAM) Load(origin uint16, data []uint8) {
	for i, b := range data {
		ram.memory[origin+uint16(i)] = b
	}
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address] = data
	return nil
}

// Peek returns the value at address without side effects. For RAM there are
// never any side effects so this is the same as Read(). The function exists
// so that debugging tools have an obvious way of inspecting memory.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Poke sets the value at address without side effects.
func (ram *RAM) Poke(address uint16, value uint8) error {
	ram.memory[address] = value
	return nil
}
