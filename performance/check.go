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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

// the number of cycles to run between checks of the timer
const performanceBrake = 10000

// Result of a call to Check().
type Result struct {
	Cycles   int
	Duration time.Duration

	// the number of times the program stopped on an unknown opcode and the
	// machine was reset
	Restarts int
}

// MHz returns the effective clock speed of the emulation.
func (r Result) MHz() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Cycles) / r.Duration.Seconds() / 1000000
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds)", r.MHz(), r.Cycles, r.Duration.Seconds())
}

// Check the performance of the emulation by running the machine for the
// specified duration. The duration string is parsed by time.ParseDuration().
//
// A program that stops with an unknown opcode is reset and run again from
// the start.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) (Result, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Result{}, fmt.Errorf("performance: %w", err)
	}

	var res Result

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		start := time.Now()
		defer func() {
			res.Duration = time.Since(start)
		}()

		for {
			select {
			case <-timer.C:
				return nil
			default:
			}

			n, err := m.Run(performanceBrake)
			res.Cycles += n
			if err != nil {
				if !curated.Is(err, cpu.UnknownOpcode) {
					return err
				}

				// a program that stops without executing anything would cause
				// an endless loop of resets
				if m.Cycles() == 0 {
					return err
				}

				res.Restarts++
				if err := m.Reset(); err != nil {
					return err
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}

	if output != nil {
		fmt.Fprintln(output, res)
	}

	return res, nil
}
