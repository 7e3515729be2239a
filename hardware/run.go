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
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/logger"
)

// Run the machine for at least budget cycles. Instructions are never split so
// the number of cycles returned may be greater than the budget.
//
// Running stops early if an unknown opcode is encountered. The returned error
// will match the cpu.UnknownOpcode pattern.
func (m *Machine) Run(budget int) (int, error) {
	consumed, err := m.CPU.Execute(budget)
	m.cycles += consumed
	if err != nil {
		if curated.Is(err, cpu.UnknownOpcode) {
			logger.Log(logger.Allow, "machine", err)
		}
		return consumed, err
	}
	return consumed, nil
}

// RunUntil runs the machine one instruction at a time until the
// continueCheck function returns false or an error. The continueCheck
// function is called after every instruction.
func (m *Machine) RunUntil(continueCheck func() (bool, error)) error {
	for {
		if err := m.Step(nil); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// Step the machine one CPU instruction. The cycleCallback function is called
// after every cycle of the instruction and can be nil.
func (m *Machine) Step(cycleCallback func() error) error {
	if cycleCallback == nil {
		cycleCallback = cpu.NilCycleCallback
	}

	err := m.CPU.ExecuteInstruction(cycleCallback)
	m.cycles += m.CPU.LastResult.Cycles
	if err != nil {
		if curated.Is(err, cpu.UnknownOpcode) {
			logger.Log(logger.Allow, "machine", err)
		}
		return err
	}
	return nil
}
