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

// Package statsview launches a local HTTP server showing the runtime
// statistics of the emulator process. It is useful when checking the
// allocation behaviour of long emulation runs.
//
// The server is only available when the program is built with the statsview
// build tag:
//
//	go build -tags statsview .
//
// Graphical statistics are then viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
//
// Without the build tag Launch() returns an error and Available() returns
// false.
package statsview

// DefaultAddress is the address the server listens on if no other address
// is given to Launch().
const DefaultAddress = "localhost:12600"

// the path of the statistics page
const url = "/debug/statsview"

// NotAvailable is the error pattern returned by Launch() when the program has
// been built without the statsview tag.
const NotAvailable = "statsview: not available in this build"
