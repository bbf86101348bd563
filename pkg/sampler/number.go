/*
   ToneDrive - Roland 12-bit sampler disk reader
   Copyright (c) 2023, Alexander Vollschwitz

   This file is part of ToneDrive.

   ToneDrive is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   ToneDrive is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with ToneDrive. If not, see <http://www.gnu.org/licenses/>.
*/

package sampler

import (
	"fmt"
)

// DisplayNumber renders a patch or tone slot index the way the hardware
// panels do: counted in octal with both digits shifted up by one, eight
// entries per group, so slots 0 through 31 read I11..I18, I21..I28, up to
// I48.
func DisplayNumber(num int) string {
	return fmt.Sprintf("I%d", (num/8)*10+num%8+11)
}
