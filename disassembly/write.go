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

package disassembly

import (
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	Cycles bool
}

// Write the entries to io.Writer. One line per entry.
func Write(output io.Writer, entries []*Entry, attr WriteAttr) error {
	for _, e := range entries {
		var err error
		if attr.Cycles {
			_, err = fmt.Fprintf(output, "%-30s %s\n", e.String(), e.Cycles())
		} else {
			_, err = fmt.Fprintln(output, e.String())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
