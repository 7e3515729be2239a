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

// Package scripting runs Lua scripts against a hardware.Machine. It is
// intended as a test harness for 6502 programs: a script can set up memory and
// registers, run the machine and then check the results.
//
// The following global functions are available to the script:
//
//	peek(addr)          returns the byte at addr
//	poke(addr, v)       writes v to addr
//	reg(name)           returns the value of the named register
//	setreg(name, v)     sets the named register
//	flag(name)          returns the named status flag as a boolean
//	run(cycles)         runs the machine and returns the cycles consumed
//	step()              runs a single instruction and returns its cycles
//	reset()             resets the CPU
//	expect(cond, msg)   stops the script with an error if cond is false
//	digest()            returns the hash of the machine state
//	log(msg)            writes msg to the central log
//
// Register names are PC, A, X, Y, SP and SR. Flag names are the single letter
// names C, Z, I, D, B, V and N. Names are not case sensitive.
//
// Lua errors and failed expectations are returned as Go errors. A failed
// expectation matches the ExpectationFailed pattern and an error from the
// machine (an unknown opcode for example) is returned unchanged.
package scripting

// Sentinel error patterns.
const (
	ExpectationFailed = "scripting: expectation failed: %s"
	ScriptError       = "scripting: %v"
	UnknownRegister   = "scripting: unknown register (%s)"
	UnknownFlag       = "scripting: unknown flag (%s)"
)
