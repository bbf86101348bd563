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
	"testing"

	"github.com/xelalexv/tonedrive/pkg/sampler/raw"
)

func image(sig string) []byte {
	img := make([]byte, 16)
	copy(img[4:8], sig)
	return img
}

func TestDetect(t *testing.T) {

	tests := []struct {
		sig  string
		want *Descriptor
	}{
		{"S550", &S550},
		{"S330", &S550},
		{"W-30", &S550},
		{"S-50", &S50},
		{"S-51", &S50},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			d, err := Detect(image(tt.sig))
			if err != nil {
				t.Fatalf("detect failed: %v", err)
			}
			if d != tt.want {
				t.Errorf("got %s, want %s", d.Name, tt.want.Name)
			}
		})
	}
}

func TestDetectRejects(t *testing.T) {

	tests := []struct {
		name string
		img  []byte
	}{
		{"unknown signature", image("S770")},
		{"blank signature", image("    ")},
		{"non-ascii signature", image("S5\xf0\x90")},
		{"too short", []byte{0, 1, 2}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Detect(tt.img); !errors.Is(err, ErrFormat) {
				t.Errorf("got %v, want format error", err)
			}
		})
	}
}

// The layout tables are the single source of truth for block offsets, so
// their sizes have to line up with the declared strides and gaps.
func TestLayoutSizes(t *testing.T) {

	tests := []struct {
		name   string
		layout raw.Layout
		want   int
	}{
		{"S-550 tone", S550.ToneLayout, S550.ToneSize},
		{"S-550 patch", S550.PatchLayout, S550.PatchSize},
		{"S-550 function", S550.FunctionLayout,
			S550.MIDIOffset - S550.FunctionOffset},
		{"S-550 midi", S550.MIDILayout, S550.TonesOffset - S550.MIDIOffset},
		{"S-50 tone", S50.ToneLayout, S50.ToneSize},
		{"S-50 patch", S50.PatchLayout, S50.PatchSize},
		// the 50 family function and MIDI records run 384 bytes each,
		// past the start of the following block
		{"S-50 function", S50.FunctionLayout, 384},
		{"S-50 midi", S50.MIDILayout, 384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.Size(); got != tt.want {
				t.Errorf("layout covers %d bytes, want %d", got, tt.want)
			}
		})
	}
}

func TestLayoutOffsets(t *testing.T) {

	tests := []struct {
		name   string
		layout raw.Layout
		field  string
		want   int
	}{
		{"S-550 tone", S550.ToneLayout, "FREQUENCY", 11},
		{"S-550 tone", S550.ToneLayout, "WAVE BANK", 13},
		{"S-550 tone", S550.ToneLayout, "WAVE SEGMENT LENGTH", 15},
		{"S-550 tone", S550.ToneLayout, "START POINT", 16},
		{"S-550 tone", S550.ToneLayout, "END POINT", 19},
		{"S-550 tone", S550.ToneLayout, "LOOP POINT", 22},
		{"S-550 patch", S550.PatchLayout, "TONE TO KEY 1", 17},
		{"S-550 patch", S550.PatchLayout, "TONE TO KEY 2", 126},
		{"S-550 function", S550.FunctionLayout, "DISK LABEL", 51},
		{"S-50 tone", S50.ToneLayout, "FREQUENCY", 11},
		{"S-50 tone", S50.ToneLayout, "WAVE SEGMENT LENGTH", 15},
		{"S-50 patch", S50.PatchLayout, "TONE TO KEY 1", 40},
		{"S-50 function", S50.FunctionLayout, "DISK LABEL", 51},
	}

	for _, tt := range tests {
		t.Run(tt.name+" "+tt.field, func(t *testing.T) {
			if got := tt.layout.Offset(tt.field); got != tt.want {
				t.Errorf("%s at %d, want %d", tt.field, got, tt.want)
			}
		})
	}
}

func TestGeometry(t *testing.T) {

	if BankSize != 331776 {
		t.Errorf("bank size %d, want 331776", BankSize)
	}
	if WaveSize != 663552 {
		t.Errorf("wave size %d, want 663552", WaveSize)
	}
	for _, d := range []*Descriptor{&S550, &S50} {
		if got := d.TonesOffset + d.ToneCount*d.ToneSize; got != d.WaveOffset {
			t.Errorf("%s: tones end at %d, wave starts at %d",
				d.Name, got, d.WaveOffset)
		}
		if got := d.PatchesOffset + d.PatchCount*d.PatchSize; got != d.FunctionOffset {
			t.Errorf("%s: patches end at %d, function starts at %d",
				d.Name, got, d.FunctionOffset)
		}
	}
}
