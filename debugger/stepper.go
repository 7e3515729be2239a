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

package debugger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6502/debugger/easyterm"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware"
)

// Stepper steps the machine one instruction at a time in response to keys read
// from the input.
type Stepper struct {
	m      *hardware.Machine
	input  io.Reader
	output io.Writer
}

// NewStepper is the preferred method of initialisation for the Stepper type.
func NewStepper(m *hardware.Machine, input io.Reader, output io.Writer) *Stepper {
	return &Stepper{
		m:      m,
		input:  input,
		output: output,
	}
}

// Run the stepper until the quit key is pressed or the input is exhausted.
// The only error returned from the machine is an unknown opcode, which ends
// the stepper.
func (stp *Stepper) Run() error {
	stp.printf("%s\r\n", stp.m.CPU)
	if err := stp.printNext(); err != nil {
		return err
	}

	b := make([]byte, 1)
	for {
		_, err := stp.input.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch b[0] {
		case ' ', '\n', easyterm.KeyCarriageReturn:
			err = stp.m.Step(nil)
			e := disassembly.FormatResult(stp.m.CPU.LastResult, disassembly.EntryLevelExecuted)
			stp.printf("%-30s %-2s  %s\r\n", e.String(), e.Cycles(), stp.m.CPU)
			if err != nil {
				return err
			}

		case 'r', 'R':
			if err := stp.m.Reset(); err != nil {
				return err
			}
			stp.printf("reset\r\n%s\r\n", stp.m.CPU)

		case 'z', 'Z':
			stp.printDump(0x0000, 0x00ff)

		case 's', 'S':
			stp.printDump(0x0100, 0x01ff)

		case 'q', 'Q', easyterm.KeyInterrupt:
			return nil

		default:
			continue
		}

		if err := stp.printNext(); err != nil {
			return err
		}
	}
}

// print the instruction that will be executed next
func (stp *Stepper) printNext() error {
	pc := stp.m.CPU.PC.Address()
	entries, err := disassembly.Decode(stp.m.Mem, pc, pc)
	if err != nil {
		return err
	}
	for _, e := range entries {
		stp.printf("next: %s\r\n", e)
	}
	return nil
}

// the terminal is in raw mode so every newline needs a carriage return
func (stp *Stepper) printDump(from uint16, to uint16) {
	for _, l := range strings.Split(stp.m.Mem.Dump(from, to), "\n") {
		stp.printf("%s\r\n", l)
	}
}

func (stp *Stepper) printf(format string, a ...any) {
	fmt.Fprintf(stp.output, format, a...)
}
