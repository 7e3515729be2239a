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

// Package programloader is used to specify the program image that is to be
// loaded into the memory of the emulated machine.
//
// A program image is a little-endian 16bit origin address followed by the
// program data. The data is copied into memory starting at the origin and the
// origin is also written to the reset vector, so that the CPU begins execution
// at the first byte of the program after a reset.
//
// The data of the image is read with the Load() function. Local files and
// files over HTTP are supported:
//
//	ld := programloader.NewLoaderFromFile("programs/count.bin")
//	err := ld.Load()
//
// Data that is already in memory can be used with NewLoaderFromData().
package programloader

// ImageTooShort is the error pattern returned when an image is not long
// enough to contain an origin address.
const ImageTooShort = "programloader: image too short (%d bytes)"

// HeaderSize is the number of bytes at the start of an image that are used
// for the origin address.
const HeaderSize = 2
