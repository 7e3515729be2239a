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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware"
)

// the number of bytes used to record the CPU registers in the digest buffer:
// PC (two bytes), A, X, Y, SP and the status register
const registerBytes = 7

// State is an implementation of the Digest interface. It hashes the CPU
// registers and the entire contents of memory.
type State struct {
	machine *hardware.Machine
	digest  [sha1.Size]byte

	// buffer is the previous digest, followed by the registers, followed by
	// the memory
	buffer []byte

	updates int
}

// NewState is the preferred method of initialisation for the State type.
func NewState(m *hardware.Machine) *State {
	return &State{
		machine: m,
		buffer:  make([]byte, sha1.Size+registerBytes+0x10000),
	}
}

// Hash implements digest.Digest interface.
func (dig *State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *State) ResetDigest() {
	clear(dig.digest[:])
	dig.updates = 0
}

// Updates returns the number of times Update() has been called since the last
// reset.
func (dig *State) Updates() int {
	return dig.updates
}

// Update the digest with the current state of the machine.
func (dig *State) Update() {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the buffer
	n := copy(dig.buffer, dig.digest[:])

	mc := dig.machine.CPU
	pc := mc.PC.Address()
	dig.buffer[n] = uint8(pc)
	dig.buffer[n+1] = uint8(pc >> 8)
	dig.buffer[n+2] = mc.A.Value()
	dig.buffer[n+3] = mc.X.Value()
	dig.buffer[n+4] = mc.Y.Value()
	dig.buffer[n+5] = mc.SP.Value()
	dig.buffer[n+6] = mc.Status.Value()
	n += registerBytes

	for i := range 0x10000 {
		dig.buffer[n+i] = dig.machine.Mem.ReadByte(uint16(i))
	}

	dig.digest = sha1.Sum(dig.buffer)
	dig.updates++
}
