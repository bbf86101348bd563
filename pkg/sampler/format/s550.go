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

// S550 covers S-550 and S-330 disks, and experimentally the W-30.
var S550 = Descriptor{
	Name:   "S-550",
	Family: Family550,

	SystemSize: 64512,
	PatchSize:  256,
	ToneSize:   128,
	WaveSize:   WaveSize,

	PatchesOffset:  64512,
	FunctionOffset: 68608,
	MIDIOffset:     68832,
	TonesOffset:    69120,
	WaveOffset:     73728,

	PatchCount: 16,
	ToneCount:  32,

	ToneLayout:     tone550,
	PatchLayout:    patch550,
	FunctionLayout: function550,
	MIDILayout:     midi550,
}

// Field names and widths follow the service notes. The hardware calls the
// first assign parameter OUTPUT ASSIGN on both tone and patch; the tone one
// is stored here as TONE OUTPUT ASSIGN so the two keys stay distinct.
var tone550 = raw.Layout{
	{"NAME", raw.ASCII, 8},
	{"TONE OUTPUT ASSIGN", raw.Int, 1},
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
	{"TVA LFO DEPTH", raw.Int, 1},
	pad(1),
	{"LFO RATE", raw.Int, 1},
	{"LFO SYNC", raw.Int, 1},
	{"LFO DELAY", raw.Int, 1},
	pad(1),
	{"LFO MODE", raw.Int, 1},
	{"OSC LFO DEPTH", raw.Int, 1},
	{"LFO POLARITY", raw.Int, 1},
	{"LFO OFFSET", raw.Int, 1},
	{"TRANSPOSE", raw.SignedInt, 1},
	{"FINE TUNE", raw.SignedInt, 1},
	{"TVF CUT OFF", raw.Int, 1},
	{"TVF RESONANCE", raw.Int, 1},
	{"TVF KEY FOLLOW", raw.Int, 1},
	pad(1),
	{"TVF LFO DEPTH", raw.Int, 1},
	{"TVF EG DEPTH", raw.Int, 1},
	{"TVF EG POLARITY", raw.Int, 1},
	{"TVF LEVEL CURVE", raw.Int, 1},
	{"TVF KEY RATE FOLLOW", raw.Int, 1},
	{"TVF VELOCITY RATE FOLLOW", raw.Int, 1},
	pad(1),
	{"TVF SWITCH", raw.Int, 1},
	{"BENDER SWITCH", raw.Int, 1},
	{"TVA ENV SUSTAIN POINT", raw.Int, 1},
	{"TVA ENV END POINT", raw.Int, 1},
	{"TVA ENV", raw.Multi, 16}, // rates and levels in one run
	pad(1),
	{"TVA ENV KEY-RATE", raw.Int, 1},
	{"LEVEL", raw.Int, 1},
	{"ENV VEL-RATE", raw.Int, 1},
	{"Recording Params", raw.Multi, 12},
	{"ZOOM T", raw.Int, 1},
	{"ZOOM L", raw.Int, 1},
	{"COPY SOURCE", raw.Int, 1},
	{"LOOP TUNE", raw.SignedInt, 1},
	{"TVA LEVEL CURVE", raw.Int, 1},
	pad(12),
	{"LOOP LENGTH", raw.Int, 3},
	{"PITCH FOLLOW", raw.Int, 1},
	{"ENV ZOOM", raw.Int, 1},
	{"TVF ENV SUSTAIN POINT", raw.Int, 1},
	{"TVF ENV END POINT", raw.Int, 1},
	{"TVF ENV", raw.Multi, 16},
	{"AFTER TOUCH SWITCH", raw.Int, 1},
	pad(2),
}

//
var patch550 = raw.Layout{
	{"NAME", raw.ASCII, 12},
	{"BEND RANGE", raw.Int, 1},
	pad(1),
	{"AFTER TOUCH SENSE", raw.Int, 1},
	{"KEY MODE", raw.Int, 1},
	{"VELOCITY SW THRESHOLD", raw.Int, 1},
	{"TONE TO KEY 1", raw.Multi, 109},
	{"TONE TO KEY 2", raw.Multi, 109},
	{"COPY SOURCE", raw.Int, 1},
	{"OCTAVE SHIFT", raw.SignedInt, 1},
	{"OUTPUT LEVEL", raw.Int, 1},
	pad(1),
	{"DETUNE", raw.SignedInt, 1},
	{"VELOCITY MIX RATIO", raw.Int, 1},
	{"AFTER TOUCH ASSIGN", raw.Int, 1},
	{"KEY ASSIGN", raw.Int, 1},
	{"OUTPUT ASSIGN", raw.Int, 1},
	pad(12),
}

// A disk is one block, so the second disk label the MIDI implementation
// mentions is not stored. The label text is kept raw; unscrambling the
// character grid is a presentation step.
var function550 = raw.Layout{
	{"MASTER TUNE", raw.SignedInt, 1},
	pad(13),
	pad(1),
	pad(1),
	{"VOICE MODE", raw.Int, 1},
	{"MULTI MIDI RX-CH", raw.Multi, 8},
	{"MULTI PATCH NUMBER", raw.Multi, 8},
	pad(9),
	{"KEYBOARD DISPLAY", raw.Int, 1},
	{"MULTI LEVEL", raw.Multi, 8},
	{"DISK LABEL", raw.Raw, 60},
	pad(4),
	{"EXTERNAL CONTROLLER", raw.Int, 1},
	pad(108),
}

//
var midi550 = raw.Layout{
	pad(64),
	{"RX CHANNEL", raw.Multi, 8},
	{"RX PROGRAM CHANGE", raw.Multi, 8},
	{"RX BENDER", raw.Multi, 8},
	{"RX MODULATION", raw.Multi, 8},
	{"RX HOLD", raw.Multi, 8},
	{"RX AFTER TOUCH", raw.Multi, 8},
	{"RX VOLUME", raw.Multi, 8},
	{"RX BEND RANGE", raw.Multi, 8},
	pad(1),
	{"SYSTEM EXCLUSIVE", raw.Int, 1},
	{"DEVICE ID", raw.Int, 1},
	{"RX PROGRAM CHANGE NUMBER", raw.Multi, 32},
	pad(125),
}
