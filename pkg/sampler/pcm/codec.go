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

import (
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/tonedrive/pkg/sampler"
	"github.com/xelalexv/tonedrive/pkg/sampler/raw"
)

// OutRate is the fixed sample rate of everything this package emits.
const OutRate = 44100

// Decode unpacks the wave data of the given tone into 16 bit little endian
// PCM at the tone's native rate. The packed stream is processed in strict
// 3 byte chunks of two samples each; a short tail chunk ends the
// conversion at that point, returning what was already produced. With
// useLoop set, conversion stops once the running sample count reaches the
// tone's END POINT, leaving the tail past the musical end unemitted. An
// empty tone yields no samples and no error.
func Decode(d *sampler.Disk, num int, useLoop bool) ([]byte, error) {

	tone, err := d.Tone(num)
	if err != nil {
		return nil, err
	}

	start, end, err := d.WaveBounds(num)
	if err != nil {
		return nil, err
	}

	wave := d.Wave()
	if start > len(wave) {
		start = len(wave)
	}
	if end > len(wave) {
		end = len(wave)
	}

	endPoint := tone.EndPoint()
	out := make([]byte, 0, (end-start)/3*4)
	cur := raw.NewCursor(wave[start:end])
	read := 0

	for cur.Remaining() > 0 {

		chunk := cur.Pop(3)
		if len(chunk) != 3 {
			log.Warnf("bad chunk size %d at offset %d of tone %d",
				len(chunk), start+cur.Offset()-len(chunk), num)
			break
		}

		a, b := unpackChunk(chunk)
		read += 2

		if useLoop && read >= endPoint {
			break
		}

		out = append(out, byte(a), byte(a>>8), byte(b), byte(b>>8))
	}

	return out, nil
}

// unpackChunk splits a 3 byte chunk into its two 16 bit samples. The bytes
// hold two 12 bit samples with their nibbles stored as A1 A2 A3 B3 B1 B2;
// both samples come out promoted to 16 bit range by a 4 bit left shift.
func unpackChunk(chunk []byte) (uint16, uint16) {

	c := uint32(chunk[0])<<16 | uint32(chunk[1])<<8 | uint32(chunk[2])

	a := uint16((c & 0xfff000) >> 8)

	r := c & 0xfff
	b := uint16((r<<8)&0xff00 | (r>>4)&0xf0)

	return a, b
}
