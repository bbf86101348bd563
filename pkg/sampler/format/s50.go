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
	"github.com/xelalexv/tonedrive/pkg/sampler/raw"
)

// S50 covers S-50 disks and S-51 marked conversions. Same geometry as the
// 550 family apart from the patch block, which is 512 bytes per patch with
// only 8 patches on a disk.
var S50 = Descriptor{
	Name:   "S-50",
	Family: Family50,

	SystemSize: 64512,
	PatchSize:  512,
	ToneSize:   128,
	WaveSize:   WaveSize,

	PatchesOffset:  64512,
	FunctionOffset: 68608,
	MIDIOffset:     68832,
	TonesOffset:    69120,
	WaveOffset:     73728,

	PatchCount: 8,
	ToneCount:  32,

	ToneLayout:     tone50,
	PatchLayout:    patch50,
	FunctionLayout: function50,
	MIDILayout:     midi50,
}

// The S-50 has no TVF section; its plain envelope parameters share the
// TVA ENV keys of the 550 family since they play the same role.
var tone50 = raw.Layout{
	{"NAME", raw.ASCII, 8},
	pad(1),
	{"SOURCE TONE", raw.Int, 1},
	{"ORIG/SUB TONE", raw.Int, 1},
	{"FREQUENCY", raw.Int, 1},
	{"ORIG KEY NUMBER", raw.Int, 1},
	{"WAVE BANK", raw.Int, 1},
	{"WAVE SEGMENT TOP", raw.Int, 1},
	{"WAVE SEGMENT LENGTH", raw.Int, 1},
	{"START POINT", raw.Int, 3},
	{"END POINT", raw.Int, 3},
	{"LOOP POINT", raw.Int, 3},
	{"LOOP MODE", raw.Int, 1},
	pad(2),
	{"LFO RATE", raw.Int, 1},
	pad(1),
	{"LFO DELAY", raw.Int, 1},
	pad(2),
	{"LFO DEPTH", raw.Int, 1},
	pad(3),
	{"FINE TUNE", raw.Int, 1},
	pad(13),
	{"TVA ENV SUSTAIN POINT", raw.Int, 1},
	{"TVA ENV END POINT", raw.Int, 1},
	{"TVA ENV", raw.Multi, 16},
	pad(1),
	{"ENV KEY-RATE", raw.Int, 1},
	{"LEVEL", raw.Int, 1},
	{"ENV VEL-RATE", raw.Int, 1},
	{"ENV THRESHOLD", raw.Int, 1},
	{"REC PRE-TRIGER", raw.Int, 1}, // spelled like the hardware does
	{"REC SAMPLING FREQUENCY", raw.Int, 1},
	{"REC START POINT", raw.Int, 3},
	{"REC END POINT", raw.Int, 3},
	{"REC LOOP POINT", raw.Int, 3},
	{"ZOOM T", raw.Int, 1},
	{"ZOOM L", raw.Int, 1},
	{"COPY SOURCE", raw.Int, 1},
	{"LOOP TUNE", raw.SignedInt, 1},
	{"LEVEL CURVE", raw.Int, 1},
	pad(12),
	{"LOOP LENGTH", raw.Int, 3},
	{"PITCH FOLLOW", raw.Int, 1},
	{"ENV ZOOM", raw.Int, 1},
	pad(21),
}

// The 512 byte patch record is mostly filler; the tail pad covers the
// garbage region after the last captured parameter. The byte after
// MODULATION DEPTH holds DETUNE, not captured on this family.
var patch50 = raw.Layout{
	{"NAME", raw.ASCII, 12},
	{"BEND RANGE", raw.Int, 1},
	pad(1),
	{"AFTER TOUCH SENSE", raw.Int, 1},
	pad(4),
	{"KEY MODE", raw.Int, 1},
	{"VELOCITY SW THRESHOLD", raw.Int, 1},
	pad(19),
	{"TONE TO KEY 1", raw.Multi, 128},
	{"TONE TO KEY 2", raw.Multi, 128},
	{"COPY SOURCE", raw.Int, 1},
	{"OCTAVE SHIFT", raw.Int, 1},
	{"OUTPUT LEVEL", raw.Int, 1},
	{"MODULATION DEPTH", raw.Int, 1},
	pad(1),
	{"VELOCITY MIX RATIO", raw.Int, 1},
	{"AFTER TOUCH ASSIGN", raw.Int, 1},
	pad(209),
}

// DISK LABEL and NOTE are adjacent on disk and stored as one field, which
// makes the key line up with the 550 family label.
var function50 = raw.Layout{
	{"MASTER TUNE", raw.SignedInt, 1},
	pad(3),
	{"CONTROLLER ASSIGN", raw.Int, 1},
	{"DP-2 ASSIGN", raw.Int, 1},
	pad(8),
	{"AUDIO TRIG", raw.Int, 1},
	{"SYSTEM MODE", raw.Int, 1},
	{"VOICE MODE", raw.Int, 1},
	{"MULTI MIDI RX-CH", raw.Multi, 8},
	{"MULTI PATCH NUMBER", raw.Multi, 8},
	{"MULTI TONE NUMBER", raw.Multi, 8},
	pad(1),
	{"KEYBOARD ASSIGN", raw.Int, 1},
	{"MULTI LEVEL", raw.Multi, 8},
	{"DISK LABEL", raw.Raw, 60},
	{"MIDI CONTROL CHANGE NUMBER", raw.Int, 1},
	{"PARAMETER INITIALIZE", raw.Int, 1},
	{"DT-100", raw.Int, 1},
	pad(270),
}

//
var midi50 = raw.Layout{
	pad(8),
	{"TX CHANNEL", raw.Int, 1},
	{"TX PROGRAM CHANGE", raw.Int, 1},
	{"TX BENDER", raw.Int, 1},
	{"TX MODULATION", raw.Int, 1},
	{"TX HOLD", raw.Int, 1},
	{"TX AFTER TOUCH", raw.Int, 1},
	{"TX VOLUME", raw.Int, 1},
	pad(1),
	{"RX PROGRAM NUMBER", raw.Multi, 8},
	{"TX PROGRAM NUMBER", raw.Multi, 8},
	{"RX CHANNEL", raw.Multi, 8},
	{"RX PROGRAM CHANGE", raw.Multi, 8},
	{"RX BENDER", raw.Multi, 8},
	{"RX MODULATION", raw.Multi, 8},
	{"RX HOLD", raw.Multi, 8},
	{"RX AFTER TOUCH", raw.Multi, 8},
	{"RX VOLUME", raw.Multi, 8},
	{"RX BEND RANGE", raw.Multi, 8},
	{"TX BEND RANGE", raw.Int, 1},
	{"SYSTEM EXCLUSIVE", raw.Int, 1},
	{"DEVICE ID", raw.Int, 1},
	pad(285),
}
