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

package easyterm

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// the device opened by Open()
const ttyDevice = "/dev/tty"

// Terminal is a raw mode terminal. It implements the io.Reader interface.
type Terminal struct {
	tty *term.Term
}

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// Open the controlling terminal and put it into raw mode. The terminal must
// be closed with Close() in order to restore the original terminal mode.
func Open() (*Terminal, error) {
	if !IsTerminal(os.Stdin) {
		return nil, errors.Errorf("easyterm: stdin is not a terminal")
	}

	tty, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return nil, errors.Wrapf(err, "easyterm: opening %s", ttyDevice)
	}

	return &Terminal{tty: tty}, nil
}

// Read implements the io.Reader interface.
func (pt *Terminal) Read(p []byte) (int, error) {
	return pt.tty.Read(p)
}

// Write implements the io.Writer interface.
func (pt *Terminal) Write(p []byte) (int, error) {
	return pt.tty.Write(p)
}

// Close restores the terminal to the mode it was in before Open() and closes
// the terminal device.
func (pt *Terminal) Close() error {
	if err := pt.tty.Restore(); err != nil {
		return errors.Wrap(err, "easyterm: restoring terminal")
	}
	return pt.tty.Close()
}
