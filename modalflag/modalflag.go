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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

// Modes parses a command line in layers. Each layer may name a sub-mode
// and define its own flags. Help is written to Output.
type Modes struct {
	Output io.Writer

	args []string
	next int

	// flags and sub-modes for the current layer only
	flags    *flag.FlagSet
	subModes []string
	help     string

	// every sub-mode selected so far
	path []string
}

// String returns the mode path.
func (md *Modes) String() string {
	return md.Path()
}

// Mode is the most recently selected sub-mode, or the empty string if no
// sub-mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path joins every selected sub-mode with a slash. For example, "RUN/TRACE".
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs sets the command line to parse and starts the first layer.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.NewMode()
}

// NewMode starts a new layer. Flags, sub-modes and additional help from the
// previous layer are forgotten. The mode path is kept.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = nil
	md.help = ""
}

// AdditionalHelp is printed after the flags and sub-modes of the current
// layer.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// ParseResult is returned by Parse.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. Mode() says which sub-mode was selected, if any
	ParseContinue ParseResult = iota

	// help was printed. the caller should stop without a further message
	ParseHelp

	// the error returned alongside says what went wrong
	ParseError
)

// Parse the current layer. If the layer has sub-modes then the first
// remaining argument selects one, falling back to the first sub-mode listed.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	if err := md.flags.Parse(md.args[md.next:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.Help(md.Output, md.Path(), md.subModes, md.help)
			return ParseHelp, nil
		}

		// a flag this layer doesn't know about may belong to the default
		// sub-mode
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			md.next++
			break
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs are the arguments left after the flags of the current layer.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the i'th remaining argument or the empty string.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes to the current layer. The first is the default.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool adds a boolean flag to the current layer.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt adds an integer flag to the current layer.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a string flag to the current layer.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAddress adds a 16bit address flag to the current layer. Hexadecimal
// values are written with a leading '$' or "0x".
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	a := address(value)
	md.flags.Var(&a, name, usage)
	return (*uint16)(&a)
}

// Visit calls fn with the name of every flag in the current layer that was
// set on the command line.
func (md *Modes) Visit(fn func(name string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
