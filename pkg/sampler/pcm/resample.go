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

package pcm

// Resample converts 16 bit little endian mono PCM from inRate to OutRate
// by linear interpolation. It runs in a single pass over the complete
// input, so each call must cover one whole tone. The output holds
// len/2 * OutRate / inRate samples; input already at OutRate is returned
// unchanged.
func Resample(pcm []byte, inRate int) []byte {

	if inRate <= 0 || inRate == OutRate {
		return pcm
	}

	n := len(pcm) / 2
	m := n * OutRate / inRate
	out := make([]byte, 0, 2*m)

	for i := 0; i < m; i++ {

		pos := i * inRate
		ix := pos / OutRate
		frac := pos % OutRate

		a := sampleAt(pcm, ix)
		b := a
		if ix+1 < n {
			b = sampleAt(pcm, ix+1)
		}

		v := uint16(int16(a + (b-a)*frac/OutRate))
		out = append(out, byte(v), byte(v>>8))
	}

	return out
}

// sampleAt reads the signed 16 bit sample at index ix.
func sampleAt(pcm []byte, ix int) int {
	return int(int16(uint16(pcm[2*ix]) | uint16(pcm[2*ix+1])<<8))
}
