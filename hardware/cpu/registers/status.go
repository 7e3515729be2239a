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

package registers

import (
	"strings"
)

// Bit masks for the flags in the status register.
const (
	MaskCarry            = uint8(0x01)
	MaskZero             = uint8(0x02)
	MaskInterruptDisable = uint8(0x04)
	MaskDecimalMode      = uint8(0x08)
	MaskBreak            = uint8(0x10)
	MaskUnused           = uint8(0x20)
	MaskOverflow         = uint8(0x40)
	MaskSign             = uint8(0x80)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. Each flag is a named field. The Value() and Load() functions
// convert to and from the packed byte form.
type StatusRegister struct {
	// the sign flag is sometimes called the negative flag
	Sign             bool
	Overflow         bool
	Unused           bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags in the order of their bits, most significant
// first. A set flag is upper case. The unused bit is always shown as '-'.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(f bool, set rune, clear rune) {
		if f {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}

	flag(sr.Sign, 'S', 's')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value returns the status register as a packed byte.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= MaskSign
	}
	if sr.Overflow {
		v |= MaskOverflow
	}
	if sr.Unused {
		v |= MaskUnused
	}
	if sr.Break {
		v |= MaskBreak
	}
	if sr.DecimalMode {
		v |= MaskDecimalMode
	}
	if sr.InterruptDisable {
		v |= MaskInterruptDisable
	}
	if sr.Zero {
		v |= MaskZero
	}
	if sr.Carry {
		v |= MaskCarry
	}

	return v
}

// Load sets every flag from the packed byte.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&MaskSign == MaskSign
	sr.Overflow = v&MaskOverflow == MaskOverflow
	sr.Unused = v&MaskUnused == MaskUnused
	sr.Break = v&MaskBreak == MaskBreak
	sr.DecimalMode = v&MaskDecimalMode == MaskDecimalMode
	sr.InterruptDisable = v&MaskInterruptDisable == MaskInterruptDisable
	sr.Zero = v&MaskZero == MaskZero
	sr.Carry = v&MaskCarry == MaskCarry
}

// PushValue is the value written to the stack by PHP. The break and unused
// bits are always set in the pushed copy, whatever their live state.
func (sr StatusRegister) PushValue() uint8 {
	return sr.Value() | MaskBreak | MaskUnused
}

// PullValue loads the status register with a value pulled from the stack by
// PLP. The break and unused bits keep their live state; every other flag is
// taken from the pulled value.
func (sr *StatusRegister) PullValue(v uint8) {
	keep := MaskBreak | MaskUnused
	sr.Load(sr.Value()&keep | v&^keep)
}
