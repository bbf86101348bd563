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

package format

import (
	"errors"
	"fmt"

	"github.com/xelalexv/tonedrive/pkg/sampler/raw"
)

// Geometry shared by all families. A disk image is system data, parameter
// blocks, and two banks of 18 wave segments each.
const (
	TotalSize   = 737280
	MaxFileSize = 2000000
	SegmentSize = 18432
	BankSize    = 18 * SegmentSize
	WaveSize    = 2 * BankSize
)

// ErrFormat indicates an image that carries no recognizable format
// signature.
var ErrFormat = errors.New("format error")

//
type Family int

const (
	Family550 Family = iota // S-550, S-330, W-30
	Family50                // S-50, S-51
)

//
func (f Family) String() string {

	switch f {

	case Family550:
		return "S-550"

	case Family50:
		return "S-50"

	default:
		return "<unknown>"
	}
}

// Descriptor is the per-family table of sizes, offsets, counts, and field
// layouts used to decode a disk image. Descriptors are fixed constants and
// never change at run time; the layout tables are the single source of
// truth for field offsets within their blocks.
type Descriptor struct {
	Name   string
	Family Family

	SystemSize int
	PatchSize  int
	ToneSize   int
	WaveSize   int

	PatchesOffset  int
	FunctionOffset int
	MIDIOffset     int
	TonesOffset    int
	WaveOffset     int

	PatchCount int
	ToneCount  int

	ToneLayout     raw.Layout
	PatchLayout    raw.Layout
	FunctionLayout raw.Layout
	MIDILayout     raw.Layout
}

// Detect inspects the four signature bytes at offset 4 of img and returns
// the descriptor for the family they name. Signatures that do not decode
// as ASCII conclusively mark a foreign image. Pure check, runs before any
// block decode.
func Detect(img []byte) (*Descriptor, error) {

	if len(img) < 8 {
		return nil, fmt.Errorf(
			"%w: image too short for a signature", ErrFormat)
	}

	sig := img[4:8]
	for _, b := range sig {
		if b > 0x7f {
			return nil, fmt.Errorf("%w: signature is not ASCII", ErrFormat)
		}
	}

	switch s := string(sig); s {

	case "S550", "S330":
		// no significant difference between these two has surfaced
		return &S550, nil

	case "W-30":
		// experimental; appears largely compatible
		return &S550, nil

	case "S-50", "S-51":
		// S-51 marks a 550 format disk converted to 50 format; the reverse
		// conversion keeps the 550 signature
		return &S50, nil

	default:
		return nil, fmt.Errorf("%w: invalid signature '%s'", ErrFormat, s)
	}
}

// pad is layout filler, skipped during decode and not stored.
func pad(n int) raw.Field {
	return raw.Field{Type: raw.Dummy, Size: n}
}
