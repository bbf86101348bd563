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
	"bufio"
	"fmt"
	"io"
)

// WriteReport writes all captured parameters of every block to w as plain
// text, in block order: function, MIDI, each patch, each tone. Values
// appear the way they were decoded; raw byte fields render as hex. Dummy
// data is not read in, so it does not show up here.
func (d *Disk) WriteReport(w io.Writer) error {

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Function Data:\n")
	writeBlock(bw, d.function)

	fmt.Fprintf(bw, "\nMIDI Data:\n")
	writeBlock(bw, d.midi)

	fmt.Fprintf(bw, "\nPatch Data:\n")
	for _, p := range d.patches {
		writeBlock(bw, &p.Block)
		fmt.Fprintf(bw, "\n")
	}

	fmt.Fprintf(bw, "\nTone Data:\n")
	for _, t := range d.tones {
		writeBlock(bw, &t.Block)
		fmt.Fprintf(bw, "\n")
	}

	return bw.Flush()
}

//
func writeBlock(w io.Writer, b *Block) {
	b.Each(func(key string, value interface{}) {
		fmt.Fprintf(w, "%s:  %s\n", key, renderValue(value))
	})
}

//
func renderValue(value interface{}) string {
	switch v := value.(type) {
	case []byte:
		return fmt.Sprintf("% x", v)
	default:
		return fmt.Sprint(v)
	}
}
