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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/debugger"
	"github.com/jetsetilly/gopher6502/debugger/easyterm"
	"github.com/jetsetilly/gopher6502/digest"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/paths"
	"github.com/jetsetilly/gopher6502/performance"
	"github.com/jetsetilly/gopher6502/programloader"
	"github.com/jetsetilly/gopher6502/scripting"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/version"
	"github.com/pkg/errors"
)

// the number of cycles to run in RUN mode if the -cycles flag is not given
const defaultCycles = 1000000

// value of the -memviz flag that asks for a generated filename
const memvizAuto = "AUTO"

// the number of log entries to show after a mode error
const logTailOnError = 5

// whether the log is being echoed to the output. if it is then the log tail
// is not shown after a mode error
var logEcho bool

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	os.Exit(launch(md, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(md *modalflag.Modes, args []string) int {
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DISASM", "SCRIPT", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md)

	case "DISASM":
		err = disasm(md)

	case "SCRIPT":
		err = script(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md.String(), err)
		if !logEcho {
			logger.Tail(md.Output, logTailOnError)
		}
		return exitModeError
	}

	return 0
}

// load the program named by the single remaining argument into a new machine
func newMachine(md *modalflag.Modes) (*hardware.Machine, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("6502 program required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := hardware.NewMachine()
	if err != nil {
		return nil, err
	}

	err = m.Load(programloader.NewLoaderFromFile(md.GetArg(0)))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// set debugging log echo
func setLogEcho(md *modalflag.Modes, echo bool) {
	logEcho = echo
	if echo {
		logger.SetEcho(md.Output, true)
	} else {
		logger.SetEcho(nil, false)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddInt("cycles", defaultCycles, "number of cycles to run")
	trace := md.AddBool("trace", false, "write a line for every instruction executed")
	memvizFile := md.AddString("memviz", "", fmt.Sprintf("write graphviz file of the CPU after running (%s for a generated name)", memvizAuto))
	showDigest := md.AddBool("digest", false, "print hash of machine state after running")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(`Running stops after the number of cycles has been reached or when an
unknown opcode is encountered. The final state of the CPU is printed.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(md, *log)

	if *stats {
		if err := statsview.Launch(md.Output, ""); err != nil {
			fmt.Fprintf(md.Output, "! %v\n", err)
		}
	}

	m, err := newMachine(md)
	if err != nil {
		return err
	}

	var consumed int
	if *trace {
		consumed, err = m.Trace(*cycles, md.Output)
	} else {
		consumed, err = m.Run(*cycles)
	}

	if err != nil {
		// an unknown opcode is how a program stops so it is not a failure
		// of the RUN mode
		if !curated.Is(err, cpu.UnknownOpcode) {
			return err
		}
		fmt.Fprintf(md.Output, "! stopped: %v\n", err)
	}

	fmt.Fprintf(md.Output, "%d cycles\n", consumed)
	fmt.Fprintln(md.Output, m.CPU)

	if *showDigest {
		dig := digest.NewState(m)
		dig.Update()
		fmt.Fprintf(md.Output, "digest: %s\n", dig.Hash())
	}

	if *memvizFile != "" {
		fn := *memvizFile
		if strings.ToUpper(fn) == memvizAuto {
			fn = paths.UniqueFilename("memviz", m.Program.ShortName(), "dot")
		}
		if err := writeMemviz(m, fn); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "memviz written to %s\n", fn)
	}

	return nil
}

func writeMemviz(m *hardware.Machine, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "memviz")
	}
	m.Memviz(f)
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "memviz")
	}
	return nil
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to the terminal")

	md.AdditionalHelp(`Keys: space or return to step, r to reset, z to dump the zero page,
s to dump the stack, q to quit.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(md)
	if err != nil {
		return err
	}

	tty, err := easyterm.Open()
	if err != nil {
		return err
	}
	defer tty.Close()

	setLogEcho(md, *log)

	return debugger.NewStepper(m, tty, tty).Run()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	from := md.AddAddress("from", 0, "first address to disassemble (default: program origin)")
	to := md.AddAddress("to", 0, "last address to disassemble (default: end of program)")
	cycles := md.AddBool("cycles", false, "show cycle counts")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(md)
	if err != nil {
		return err
	}

	origin, err := m.Program.Origin()
	if err != nil {
		return err
	}

	// the range defaults to the whole program. a program that runs past the
	// end of memory is disassembled up to 0xffff
	n := len(m.Program.Program())
	first := origin
	last := uint16(min(int(origin)+n-1, 0xffff))

	var fromSet, toSet bool
	md.Visit(func(flg string) {
		switch flg {
		case "from":
			first = *from
			fromSet = true
		case "to":
			last = *to
			toSet = true
		}
	})

	if !toSet {
		// an empty program has nothing to disassemble unless a range is given
		if n == 0 {
			if !fromSet {
				return nil
			}
			last = first
		}
		last = max(last, first)
	}

	entries, err := disassembly.Decode(m.Mem, first, last)
	if err != nil {
		return err
	}

	return disassembly.Write(md.Output, entries, disassembly.WriteAttr{Cycles: *cycles})
}

func script(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(`The script is written in Lua. See the scripting package documentation
for the list of functions available to the script.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(md, *log)

	args := md.RemainingArgs()
	switch len(args) {
	case 0, 1:
		return fmt.Errorf("6502 program and script required for %s mode", md)
	case 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := hardware.NewMachine()
	if err != nil {
		return err
	}

	if err := m.Load(programloader.NewLoaderFromFile(args[0])); err != nil {
		return err
	}

	if err := scripting.RunFile(m, args[1]); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "script completed (%d cycles)\n", m.Cycles())
	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional 's', 'm' or 'h' suffix)")
	profile := md.AddString("profile", "none", "run performance check with profiling: NONE, CPU, MEM, TRACE, ALL (comma separated)")

	md.AdditionalHelp(`Profile files are written to the current directory. A program that stops
on an unknown opcode is reset and run again.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine(md)
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, prf, m, *duration)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.String())
	return nil
}
