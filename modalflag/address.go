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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// address implements the flag.Value interface for 16bit addresses.
type address uint16

func (a *address) String() string {
	return fmt.Sprintf("$%04x", uint16(*a))
}

func (a *address) Set(s string) error {
	v, err := parseAddress(s)
	if err != nil {
		return err
	}
	*a = address(v)
	return nil
}

// parseAddress converts a string to a 16bit address. Hexadecimal addresses
// can be written with a leading '$' or "0x". Anything else is decimal.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("not a valid address (%s)", s)
	}
	return uint16(v), nil
}
