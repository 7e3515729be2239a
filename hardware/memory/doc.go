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

// Package memory implements the flat 64KiB address space of the 6502.
//
//	CPU ---- cpu bus ---- RAM ---- debugger (Peek/Poke)
//	                       |
//	                       ----<-- programloader
//
// The CPU only sees the memory through the cpubus.Memory interface. Everything
// else (the program loader, the scripting harness and the debugging output of
// the command line tool) uses the RAM type directly.
//
// Every address in the space is backed by RAM. There are no mirrors and no
// memory mapped chips, so Read() and Write() never fail.
//
// Word access is little-endian. The address of the high byte is calculated
// with 16bit arithmetic so a word access at 0xffff wraps around to 0x0000 for
// the high byte.
package memory
