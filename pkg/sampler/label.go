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
	"github.com/xelalexv/tonedrive/pkg/sampler/format"
)

// Label returns the disk label as its five 12 character display lines,
// nil when the function block carries no label. The 550 family scrambles
// the grid on disk: the first 12 bytes are the top line, the remaining 48
// hold the other four lines in columns of four bytes. The 50 family keeps
// the lines in order.
func (d *Disk) Label() []string {

	data := d.function.Bytes("DISK LABEL")
	if len(data) != 60 {
		return nil
	}

	lines := make([]string, 5)
	lines[0] = printable(data[:12])

	if d.desc.Family == format.Family550 {
		for i := 0; i < 4; i++ {
			row := make([]byte, 12)
			for j := 0; j < 12; j++ {
				row[j] = data[12+4*j+i]
			}
			lines[i+1] = printable(row)
		}
	} else {
		for i := 1; i < 5; i++ {
			lines[i] = printable(data[12*i : 12*(i+1)])
		}
	}

	return lines
}

// printable renders label bytes as text, blanking everything outside the
// printable ASCII range.
func printable(data []byte) string {
	res := make([]byte, len(data))
	for i, b := range data {
		if b < 0x20 || b > 0x7e {
			b = ' '
		}
		res[i] = b
	}
	return string(res)
}
