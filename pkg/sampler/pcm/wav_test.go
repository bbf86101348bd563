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
	"bytes"
	"encoding/binary"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/xelalexv/tonedrive/pkg/sampler/format"
)

//
func TestWAVHeader(t *testing.T) {

	samples := pcm16(1, -2, 3)
	data := WAV(samples)

	if len(data) != 44+len(samples) {
		t.Fatalf("got %d bytes, want %d", len(data), 44+len(samples))
	}

	for _, tt := range []struct {
		off  int
		want string
	}{
		{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"},
	} {
		if got := string(data[tt.off : tt.off+4]); got != tt.want {
			t.Errorf("marker at %d is '%s', want '%s'", tt.off, got, tt.want)
		}
	}

	for _, tt := range []struct {
		name string
		off  int
		want uint32
	}{
		{"file size", 4, uint32(36 + len(samples))},
		{"fmt size", 16, 16},
		{"byte rate", 28, 88200},
		{"data size", 40, uint32(len(samples))},
	} {
		if got := binary.LittleEndian.Uint32(data[tt.off:]); got != tt.want {
			t.Errorf("%s is %d, want %d", tt.name, got, tt.want)
		}
	}

	for _, tt := range []struct {
		name string
		off  int
		want uint16
	}{
		{"format", 20, 1},
		{"channels", 22, 1},
		{"block align", 32, 2},
		{"sample bits", 34, 16},
	} {
		if got := binary.LittleEndian.Uint16(data[tt.off:]); got != tt.want {
			t.Errorf("%s is %d, want %d", tt.name, got, tt.want)
		}
	}

	if got := binary.LittleEndian.Uint32(data[24:]); got != OutRate {
		t.Errorf("sample rate is %d, want %d", got, OutRate)
	}

	if !bytes.Equal(data[44:], samples) {
		t.Errorf("payload % x, want % x", data[44:], samples)
	}
}

//
func TestWriteWAVMatchesWAV(t *testing.T) {

	samples := pcm16(10, 20, -30, 40)

	var buf bytes.Buffer
	if err := WriteWAV(&buf, samples); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), WAV(samples)) {
		t.Errorf("streamed and buffered output differ")
	}
}

//
func TestToneWAV(t *testing.T) {

	img := testImage(toneSetup{length: 1})
	copy(img[format.S550.WaveOffset:], packChunk(0x123, 0x456))

	data, err := ToneWAV(testDisk(t, img), 0, false)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}

	want := 44 + 2*(12288*OutRate/30000)
	if len(data) != want {
		t.Errorf("got %d bytes, want %d", len(data), want)
	}

	// sample 0 carries over unchanged
	if got := int(int16(binary.LittleEndian.Uint16(data[44:]))); got != 0x1230 {
		t.Errorf("first sample is %#04x, want 0x1230", got)
	}
}

//
func TestToneWAVEmptyTone(t *testing.T) {

	data, err := ToneWAV(testDisk(t, testImage(toneSetup{})), 0, false)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}

	if len(data) != 44 {
		t.Errorf("got %d bytes, want bare header", len(data))
	}
	if got := binary.LittleEndian.Uint32(data[40:]); got != 0 {
		t.Errorf("data size is %d, want 0", got)
	}
}

//
func TestExportWAV(t *testing.T) {

	img := testImage(toneSetup{length: 1})
	copy(img[format.S550.WaveOffset:], packChunk(0x123, 0x456))
	d := testDisk(t, img)

	path := filepath.Join(t.TempDir(), "tone0.wav")
	if err := ExportWAV(d, 0, false, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read exported file: %v", err)
	}

	want, err := ToneWAV(d, 0, false)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}

	if !bytes.Equal(data, want) {
		t.Errorf("file and buffer output differ")
	}
}
