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

// Package modalflag wraps the flag package of the Go standard library. It
// adds program modes (and sub-modes), each with their own set of flags.
//
// Arguments are given with NewArgs() and then Parse() is called with no
// arguments. Sub-modes are added with AddSubModes(), the first in the list
// being the default:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		return run(md)
//	}
//
// After the mode has been decided, NewMode() prepares the Modes instance for
// the flags of that mode and Parse() is called again:
//
//	func run(md *modalflag.Modes) error {
//		md.NewMode()
//		cycles := md.AddInt("cycles", 1000000, "number of cycles to run for")
//		origin := md.AddAddress("from", 0x0000, "first address")
//		p, err := md.Parse()
//		...
//	}
//
// Mode names are case insensitive. The path of modes that have been selected
// is returned by Path().
//
// A "-help" flag is handled automatically and causes Parse() to return
// ParseHelp, after printing the flags and sub-modes to the Output io.Writer.
package modalflag
