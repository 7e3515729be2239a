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

package hardware

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/programloader"
)

// Machine is the main container for the emulated components of the machine.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.RAM

	// the loader of the most recently loaded program. empty if no program has
	// been loaded
	Program programloader.Loader

	// total number of cycles executed since the last reset
	cycles int
}

// NewMachine creates a new machine with cleared memory. The CPU is reset
// before NewMachine() returns so the PC will be zero.
func NewMachine() (*Machine, error) {
	m := &Machine{
		Mem: memory.NewRAM(),
	}
	m.CPU = cpu.NewCPU(m.Mem)

	if err := m.Reset(); err != nil {
		return nil, err
	}

	return m, nil
}

// Snapshot creates a copy of the machine in its current state. The copy is
// independent of the original.
func (m *Machine) Snapshot() *Machine {
	n := *m
	n.Mem = m.Mem.Snapshot()
	n.CPU = m.CPU.Snapshot()
	n.CPU.Plumb(n.Mem)
	return &n
}

// Cycles returns the number of cycles executed since the last reset.
func (m *Machine) Cycles() int {
	return m.cycles
}

// Reset the CPU. The program counter is loaded from the reset vector. Memory
// is untouched.
func (m *Machine) Reset() error {
	if err := m.CPU.Reset(); err != nil {
		return err
	}
	m.cycles = 0
	logger.Logf(logger.Allow, "machine", "reset (PC=%s)", m.CPU.PC)
	return nil
}

// HardReset clears memory and then resets the CPU. The reset vector will be
// zero so the program counter will be zero.
func (m *Machine) HardReset() error {
	m.Mem.Clear()
	logger.Log(logger.Allow, "machine", "memory cleared")
	return m.Reset()
}

// Load the program into memory and reset the CPU. The program begins at the
// origin address of the program image. Memory that is not part of the program
// is untouched.
func (m *Machine) Load(ld programloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}

	origin, err := ld.Install(m.Mem)
	if err != nil {
		return err
	}
	m.Program = ld

	logger.Logf(logger.Allow, "machine", "loaded %s (%d bytes at $%04x)", ld.ShortName(), len(ld.Program()), origin)

	return m.Reset()
}
