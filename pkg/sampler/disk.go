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
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/tonedrive/pkg/sampler/format"
)

// ErrFileSize indicates a source file too large to be a disk image.
var ErrFileSize = errors.New("file size error")

// Disk is one fully decoded sampler disk image. It owns the raw system and
// wave regions plus all decoded parameter blocks, and is immutable once
// constructed, so concurrent readers need no locking.
type Disk struct {
	name     string
	desc     *format.Descriptor
	system   []byte
	wave     []byte
	version  string
	function *Block
	midi     *Block
	patches  []*Patch
	tones    []*Tone
}

// Open reads the disk image in the named file and decodes it. Files beyond
// the maximum accepted size are rejected before anything is read.
func Open(path string) (*Disk, error) {

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > format.MaxFileSize {
		return nil, fmt.Errorf("%w: %s has %d bytes, limit is %d",
			ErrFileSize, path, info.Size(), format.MaxFileSize)
	}

	img, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Read(filepath.Base(path), img)
}

// Read decodes a disk image already resident in memory. name is carried
// for presentation only.
func Read(name string, img []byte) (*Disk, error) {

	if len(img) > format.MaxFileSize {
		return nil, fmt.Errorf("%w: image has %d bytes, limit is %d",
			ErrFileSize, len(img), format.MaxFileSize)
	}

	desc, err := format.Detect(img)
	if err != nil {
		return nil, err
	}

	if len(img) != format.TotalSize {
		log.Warnf("bad disk image size: %d bytes", len(img))
	}

	d := &Disk{name: name, desc: desc}

	d.system = region(img, 0, desc.SystemSize)
	log.Debugf("read %d bytes system data", len(d.system))
	d.parseVersion()

	d.wave = region(img, desc.WaveOffset, desc.WaveSize)
	log.Debugf("read %d bytes wave data", len(d.wave))

	d.function = newBlock(desc.FunctionLayout, desc.FunctionOffset)
	if err := d.function.read(img); err != nil {
		return nil, fmt.Errorf("function block: %v", err)
	}

	d.midi = newBlock(desc.MIDILayout, desc.MIDIOffset)
	if err := d.midi.read(img); err != nil {
		return nil, fmt.Errorf("midi block: %v", err)
	}

	for i := 0; i < desc.PatchCount; i++ {
		p := &Patch{Block: *newBlock(desc.PatchLayout, desc.PatchesOffset)}
		if err := p.read(img, i, desc.PatchSize); err != nil {
			return nil, err
		}
		d.patches = append(d.patches, p)
	}
	log.Debugf("read %d patches", len(d.patches))

	for i := 0; i < desc.ToneCount; i++ {
		t := &Tone{Block: *newBlock(desc.ToneLayout, desc.TonesOffset)}
		if err := t.read(img, i, desc.ToneSize); err != nil {
			return nil, err
		}
		d.tones = append(d.tones, t)
	}
	log.Debugf("read %d tones", len(d.tones))

	log.WithFields(log.Fields{
		"name":   d.name,
		"format": desc.Name,
	}).Debug("disk decoded")

	return d, nil
}

// region extracts size bytes at off, clamping to the image bounds. A short
// region is tolerated but worth a warning.
func region(img []byte, off, size int) []byte {

	if off > len(img) {
		off = len(img)
	}
	end := off + size
	if end > len(img) {
		end = len(img)
	}
	if end-off < size {
		log.Warnf("short region at %d: want %d bytes, have %d",
			off, size, end-off)
	}

	return img[off:end]
}

// The system area carries an OS version string in a 32 byte window at
// offset 32, the last byte being an end marker. The field is diagnostic,
// so a failure to decode it only logs.
func (d *Disk) parseVersion() {

	if len(d.system) < 63 {
		return
	}

	win := d.system[32:63]
	for _, b := range win {
		if b > 0x7f {
			log.Warnf("unable to decode version string")
			return
		}
	}

	d.version = strings.Join(strings.Fields(string(win)), " ")
	log.Debugf("system version: %s", d.version)
}

// Name returns the name the disk was opened under.
func (d *Disk) Name() string {
	return d.name
}

// Format returns the display name of the disk's format family.
func (d *Disk) Format() string {
	return d.desc.Name
}

//
func (d *Disk) Family() format.Family {
	return d.desc.Family
}

// Version returns the OS version string from the system area, empty when
// it could not be decoded.
func (d *Disk) Version() string {
	return d.version
}

// System returns the raw system region.
func (d *Disk) System() []byte {
	return d.system
}

// Wave returns the raw wave region, both banks back to back.
func (d *Disk) Wave() []byte {
	return d.wave
}

//
func (d *Disk) Function() *Block {
	return d.function
}

//
func (d *Disk) MIDI() *Block {
	return d.midi
}

//
func (d *Disk) Patches() []*Patch {
	return d.patches
}

//
func (d *Disk) Tones() []*Tone {
	return d.tones
}

// Patch returns the patch at slot number num.
func (d *Disk) Patch(num int) (*Patch, error) {
	if num < 0 || num >= len(d.patches) {
		return nil, fmt.Errorf(
			"invalid patch number: %d; valid numbers are 0 through %d",
			num, len(d.patches)-1)
	}
	return d.patches[num], nil
}

// Tone returns the tone at slot number num.
func (d *Disk) Tone(num int) (*Tone, error) {
	if num < 0 || num >= len(d.tones) {
		return nil, fmt.Errorf(
			"invalid tone number: %d; valid numbers are 0 through %d",
			num, len(d.tones)-1)
	}
	return d.tones[num], nil
}

// WaveCount returns the number of wave segments in use, summed over all
// tones of the disk.
func (d *Disk) WaveCount() int {
	count := 0
	for _, t := range d.tones {
		count += t.Length()
	}
	return count
}

// WaveBounds returns the start and end byte offsets of a tone's samples
// within the wave region. Bank B sits right after bank A; a tone covers a
// contiguous run of segments. An empty tone yields an empty range.
func (d *Disk) WaveBounds(num int) (int, int, error) {

	t, err := d.Tone(num)
	if err != nil {
		return 0, 0, err
	}

	start := 0
	if t.Bank() == 1 {
		start += format.BankSize
	}
	start += t.SegmentTop() * format.SegmentSize
	end := start + t.Length()*format.SegmentSize

	return start, end, nil
}
