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

// Package paths contains functions to prepare paths for files created by
// gopher6502.
//
// The UniqueFilename() function creates a filename suitable for output files
// that are created without the user naming them. For example, the default
// filename for a memviz file is:
//
//	paths.UniqueFilename("memviz", ld.ShortName(), "dot")
package paths
