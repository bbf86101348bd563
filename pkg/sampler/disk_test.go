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
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xelalexv/tonedrive/pkg/sampler/format"
)

// synthImage builds a zero filled disk image with the given signature.
func synthImage(sig string) []byte {
	img := make([]byte, format.TotalSize)
	copy(img[4:8], sig)
	return img
}

func TestReadDetectsFamily(t *testing.T) {

	tests := []struct {
		sig     string
		name    string
		patches int
	}{
		{"S550", "S-550", 16},
		{"S330", "S-550", 16},
		{"W-30", "S-550", 16},
		{"S-50", "S-50", 8},
		{"S-51", "S-50", 8},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			d, err := Read("test.out", synthImage(tt.sig))
			if err != nil {
				t.Fatalf("read failed: %v", err)
			}
			if d.Format() != tt.name {
				t.Errorf("format: got %s, want %s", d.Format(), tt.name)
			}
			if len(d.Patches()) != tt.patches {
				t.Errorf("patches: got %d, want %d",
					len(d.Patches()), tt.patches)
			}
			if len(d.Tones()) != 32 {
				t.Errorf("tones: got %d, want 32", len(d.Tones()))
			}
			if len(d.Wave()) != format.WaveSize {
				t.Errorf("wave: got %d bytes, want %d",
					len(d.Wave()), format.WaveSize)
			}
		})
	}
}

func TestReadRejectsUnknownFormat(t *testing.T) {
	if _, err := Read("test.out", synthImage("MT32")); !errors.Is(err, format.ErrFormat) {
		t.Errorf("got %v, want format error", err)
	}
}

func TestReadRejectsOversizedBuffer(t *testing.T) {
	img := make([]byte, format.MaxFileSize+1)
	copy(img[4:8], "S550")
	if _, err := Read("test.out", img); !errors.Is(err, ErrFileSize) {
		t.Errorf("got %v, want file size error", err)
	}
}

func TestOpenRejectsOversizedFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "tonedrive")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	p := filepath.Join(dir, "big.out")
	if err := ioutil.WriteFile(
		p, make([]byte, format.MaxFileSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(p); !errors.Is(err, ErrFileSize) {
		t.Errorf("got %v, want file size error", err)
	}
}

func TestOpenDecodesImageFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "tonedrive")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	img := synthImage("S550")
	copy(img[format.S550.TonesOffset:], "STRINGS ")

	p := filepath.Join(dir, "strings.out")
	if err := ioutil.WriteFile(p, img, 0644); err != nil {
		t.Fatal(err)
	}

	d, err := Open(p)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if d.Name() != "strings.out" {
		t.Errorf("name: got %s, want strings.out", d.Name())
	}

	tone, err := d.Tone(0)
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := tone.Name(); name != "STRINGS " {
		t.Errorf("tone name: got %q, want %q", name, "STRINGS ")
	}
}

// Slot addressing: block address is base offset plus slot times stride,
// so adjacent slots never overlap.
func TestSlotAddressing(t *testing.T) {

	img := synthImage("S550")
	desc := &format.S550

	for i := 0; i < desc.ToneCount; i++ {
		img[desc.TonesOffset+i*desc.ToneSize] = byte('A' + i)
	}
	for i := 0; i < desc.PatchCount; i++ {
		img[desc.PatchesOffset+i*desc.PatchSize] = byte('a' + i)
	}

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	for i, tone := range d.Tones() {
		if tone.addr != desc.TonesOffset+i*desc.ToneSize {
			t.Errorf("tone %d at %d, want %d",
				i, tone.addr, desc.TonesOffset+i*desc.ToneSize)
		}
		name, err := tone.Name()
		if err != nil {
			t.Fatal(err)
		}
		if name[0] != byte('A'+i) {
			t.Errorf("tone %d read from wrong slot: name starts %q", i, name[0])
		}
	}

	for i, patch := range d.Patches() {
		if patch.addr != desc.PatchesOffset+i*desc.PatchSize {
			t.Errorf("patch %d at %d, want %d",
				i, patch.addr, desc.PatchesOffset+i*desc.PatchSize)
		}
		name, err := patch.Name()
		if err != nil {
			t.Fatal(err)
		}
		if name[0] != byte('a'+i) {
			t.Errorf("patch %d read from wrong slot: name starts %q", i, name[0])
		}
	}
}

func TestToneFrequencyRemap(t *testing.T) {

	img := synthImage("S550")
	freqOff := format.S550.ToneLayout.Offset("FREQUENCY")
	// tone 0 flag 0, tone 1 flag 1
	img[format.S550.TonesOffset+format.S550.ToneSize+freqOff] = 1

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if got := d.Tones()[0].Frequency(); got != 30000 {
		t.Errorf("tone 0: got %d Hz, want 30000", got)
	}
	if got := d.Tones()[1].Frequency(); got != 15000 {
		t.Errorf("tone 1: got %d Hz, want 15000", got)
	}
}

func TestWaveBounds(t *testing.T) {

	img := synthImage("S550")
	desc := &format.S550
	base := desc.TonesOffset

	set := func(tone int, field string, val byte) {
		img[base+tone*desc.ToneSize+desc.ToneLayout.Offset(field)] = val
	}

	// tone 0: bank A, segments 2..4
	set(0, "WAVE BANK", 0)
	set(0, "WAVE SEGMENT TOP", 2)
	set(0, "WAVE SEGMENT LENGTH", 3)
	// tone 1: bank B, segments 0..17
	set(1, "WAVE BANK", 1)
	set(1, "WAVE SEGMENT TOP", 0)
	set(1, "WAVE SEGMENT LENGTH", 18)
	// tone 2 stays empty

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	tests := []struct {
		tone       int
		start, end int
	}{
		{0, 2 * format.SegmentSize, 5 * format.SegmentSize},
		{1, format.BankSize, 2 * format.BankSize},
		{2, 0, 0},
	}

	for _, tt := range tests {
		start, end, err := d.WaveBounds(tt.tone)
		if err != nil {
			t.Fatalf("tone %d: %v", tt.tone, err)
		}
		if start != tt.start || end != tt.end {
			t.Errorf("tone %d: got [%d, %d), want [%d, %d)",
				tt.tone, start, end, tt.start, tt.end)
		}
	}

	if got := d.WaveCount(); got != 21 {
		t.Errorf("wave count: got %d, want 21", got)
	}

	if _, _, err := d.WaveBounds(32); err == nil {
		t.Error("expected error for tone number out of range")
	}
}

func TestBlockBounds(t *testing.T) {

	d, err := Read("test.out", synthImage("S550"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if _, err := d.Tone(-1); err == nil {
		t.Error("expected error for tone -1")
	}
	if _, err := d.Tone(32); err == nil {
		t.Error("expected error for tone 32")
	}
	if _, err := d.Patch(16); err == nil {
		t.Error("expected error for patch 16")
	}
	if _, err := d.Function().Name(); err == nil {
		t.Error("expected error for Name on function block")
	}
}

func TestVersionString(t *testing.T) {

	img := synthImage("S550")
	copy(img[32:63], "S-550  SIO ROM  Ver 1.10       ")

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if got := d.Version(); got != "S-550 SIO ROM Ver 1.10" {
		t.Errorf("version: got %q", got)
	}
}

func TestVersionNotASCII(t *testing.T) {

	img := synthImage("S550")
	img[40] = 0xfe

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got := d.Version(); got != "" {
		t.Errorf("version: got %q, want empty", got)
	}
}

func TestShortImageTolerated(t *testing.T) {

	// regions clamp, parameter blocks still complete
	img := synthImage("S550")[:format.TotalSize-1000]

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got := len(d.Wave()); got != format.TotalSize-1000-format.S550.WaveOffset {
		t.Errorf("wave region: got %d bytes", got)
	}
}

func TestTruncatedParameterAreaFails(t *testing.T) {

	// image ends inside the tone block
	img := synthImage("S550")[:format.S550.TonesOffset+100]

	if _, err := Read("test.out", img); err == nil {
		t.Error("expected error for image truncated inside tone area")
	}
}

func TestLinkedTones(t *testing.T) {

	img := synthImage("S550")
	desc := &format.S550

	k1 := desc.PatchesOffset + desc.PatchLayout.Offset("TONE TO KEY 1")
	k2 := desc.PatchesOffset + desc.PatchLayout.Offset("TONE TO KEY 2")
	img[k1+10] = 3
	img[k1+11] = 5
	img[k1+12] = 3
	img[k2+40] = 7
	img[k2+41] = 5

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	// zero filled table entries link tone 0
	want := []int{0, 3, 5, 7}
	if got := d.Patches()[0].LinkedTones(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLabelUnscramble(t *testing.T) {

	want := []string{
		"BASS SECTION",
		"LINE TWO    ",
		"LINE THREE  ",
		"LINE FOUR   ",
		"LINE FIVE   ",
	}

	scrambled := make([]byte, 60)
	copy(scrambled, want[0])
	for i := 0; i < 4; i++ {
		for j := 0; j < 12; j++ {
			scrambled[12+4*j+i] = want[i+1][j]
		}
	}

	img := synthImage("S550")
	off := format.S550.FunctionOffset +
		format.S550.FunctionLayout.Offset("DISK LABEL")
	copy(img[off:], scrambled)

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got := d.Label(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLabelLinear(t *testing.T) {

	want := []string{
		"STRING SET  ",
		"FOR S-50    ",
		"            ",
		"            ",
		"            ",
	}

	img := synthImage("S-50")
	off := format.S50.FunctionOffset +
		format.S50.FunctionLayout.Offset("DISK LABEL")
	copy(img[off:], strings.Join(want, ""))

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got := d.Label(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBankName(t *testing.T) {

	img := synthImage("S550")
	desc := &format.S550
	off := desc.TonesOffset + desc.ToneLayout.Offset("WAVE BANK")

	img[off] = 0
	img[off+desc.ToneSize] = 1
	img[off+2*desc.ToneSize] = 2

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	for i, want := range []string{"A", "B", "None"} {
		if got := d.Tones()[i].BankName(); got != want {
			t.Errorf("tone %d: got %s, want %s", i, got, want)
		}
	}
}

func TestDisplayNumber(t *testing.T) {

	tests := []struct {
		num  int
		want string
	}{
		{0, "I11"},
		{7, "I18"},
		{8, "I21"},
		{9, "I22"},
		{15, "I28"},
		{16, "I31"},
		{31, "I48"},
	}

	for _, tt := range tests {
		if got := DisplayNumber(tt.num); got != tt.want {
			t.Errorf("%d: got %s, want %s", tt.num, got, tt.want)
		}
	}
}

func TestWriteReport(t *testing.T) {

	img := synthImage("S550")
	copy(img[format.S550.TonesOffset:], "EPIANO 1")

	d, err := Read("test.out", img)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var buf bytes.Buffer
	if err := d.WriteReport(&buf); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	report := buf.String()

	for _, section := range []string{
		"Function Data:", "MIDI Data:", "Patch Data:", "Tone Data:",
	} {
		if !strings.Contains(report, section) {
			t.Errorf("report lacks section %q", section)
		}
	}

	if !strings.Contains(report, "NAME:  EPIANO 1\n") {
		t.Error("report lacks tone name entry")
	}
	if !strings.Contains(report, "MASTER TUNE:  0\n") {
		t.Error("report lacks function entry")
	}
	// frequency shows remapped
	if !strings.Contains(report, "FREQUENCY:  30000\n") {
		t.Error("report lacks remapped frequency")
	}
	if strings.Contains(report, "dummy") {
		t.Error("report leaks dummy fields")
	}

	// first section precedes the others
	if strings.Index(report, "Function Data:") != 0 {
		t.Error("report does not start with function section")
	}
	if strings.Index(report, "MIDI Data:") > strings.Index(report, "Patch Data:") {
		t.Error("sections out of order")
	}
}
