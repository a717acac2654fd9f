// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// address implements the flag.Value interface for 16bit addresses
type address struct {
	value uint16
}

func (a *address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%#04x", a.value)
}

func (a *address) Set(s string) error {
	s = strings.TrimSpace(s)

	base := 0
	if strings.HasPrefix(s, "$") {
		s = s[1:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return fmt.Errorf("not a 16bit address (%s)", s)
	}
	a.value = uint16(v)

	return nil
}
