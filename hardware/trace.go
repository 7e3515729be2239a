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
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/disassembly"
)

// Trace is like Run but writes a line to the io.Writer for every instruction
// executed. The line shows the disassembly of the instruction, the number of
// cycles it took and the state of the CPU after the instruction.
//
// An instruction with an unknown opcode is written to the trace before the
// error is returned.
func (m *Machine) Trace(budget int, output io.Writer) (int, error) {
	consumed := 0
	for consumed < budget {
		err := m.Step(nil)
		consumed += m.CPU.LastResult.Cycles

		e := disassembly.FormatResult(m.CPU.LastResult, disassembly.EntryLevelExecuted)
		if _, werr := io.WriteString(output, traceLine(e, m.CPU.String())); werr != nil {
			return consumed, werr
		}

		if err != nil {
			return consumed, err
		}
	}
	return consumed, nil
}

func traceLine(e *disassembly.Entry, cpu string) string {
	if n := e.Notes(); n != "" {
		return fmt.Sprintf("%-30s %-2s  %s  (%s)\n", e.String(), e.Cycles(), cpu, n)
	}
	return fmt.Sprintf("%-30s %-2s  %s\n", e.String(), e.Cycles(), cpu)
}
