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

package hardware

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Memviz writes a Graphviz description of the CPU structure to the
// io.Writer. The memory is not included.
func (m *Machine) Memviz(output io.Writer) {
	mc := m.CPU.Snapshot()
	mc.Plumb(nil)
	memviz.Map(output, mc)
}
