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

// Tone holds the parameters of one sampled sound. Wave data stays with the
// disk; a tone only references its segment range within the wave region.
type Tone struct {
	Block
	number int
}

// read decodes the tone at slot number, then swaps the frequency flag for
// the sample rate it stands for. All other fields stay literal.
func (t *Tone) read(img []byte, number, size int) error {

	t.number = number
	t.addr += number * size

	if err := t.Block.read(img); err != nil {
		return fmt.Errorf("tone %d: %v", number, err)
	}

	// 0 samples at 30 kHz, 1 at 15 kHz
	if t.params.Int("FREQUENCY") != 0 {
		t.params["FREQUENCY"] = 15000
	} else {
		t.params["FREQUENCY"] = 30000
	}

	return nil
}

// Number is the tone's slot index on disk.
func (t *Tone) Number() int {
	return t.number
}

// Length returns the extent of the tone in wave segments, 0 through 18,
// 0 marking an empty slot.
func (t *Tone) Length() int {
	return t.Int("WAVE SEGMENT LENGTH")
}

// Frequency returns the tone's sample rate in Hz.
func (t *Tone) Frequency() int {
	return t.Int("FREQUENCY")
}

// Bank returns the wave bank indicator, 0 for bank A, 1 for bank B. Empty
// tones carry 2 here, which the hardware manuals leave undocumented.
func (t *Tone) Bank() int {
	return t.Int("WAVE BANK")
}

// BankName returns the wave bank the way the hardware displays it, 'A',
// 'B', or 'None' for an empty slot.
func (t *Tone) BankName() string {
	switch t.Bank() {
	case 0:
		return "A"
	case 1:
		return "B"
	default:
		return "None"
	}
}

// SegmentTop returns the index of the tone's first wave segment within its
// bank, 0 through 17.
func (t *Tone) SegmentTop() int {
	return t.Int("WAVE SEGMENT TOP")
}

// StartPoint, EndPoint, and LoopPoint are sample offsets within the tone's
// own decoded stream, not disk addresses.
func (t *Tone) StartPoint() int {
	return t.Int("START POINT")
}

//
func (t *Tone) EndPoint() int {
	return t.Int("END POINT")
}

//
func (t *Tone) LoopPoint() int {
	return t.Int("LOOP POINT")
}

//
func (t *Tone) LoopMode() int {
	return t.Int("LOOP MODE")
}

// Empty reports whether the tone slot holds no sample.
func (t *Tone) Empty() bool {
	return t.Length() == 0
}
