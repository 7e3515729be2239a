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

// Package debugger implements the interactive single step mode. The machine
// is stepped one instruction at a time in response to key presses.
//
// The Stepper type reads keys from any io.Reader. When running from a
// terminal the easyterm package should be used to put the terminal into raw
// mode so that keys are received without waiting for the return key.
//
// The following keys are recognised:
//
//	space, return    step one instruction
//	r                reset the CPU
//	z                dump the zero page
//	s                dump the stack page
//	q, ctrl-c        quit
package debugger
