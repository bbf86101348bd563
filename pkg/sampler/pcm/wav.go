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
	"io"
	"os"

	"github.com/xelalexv/tonedrive/pkg/sampler"
)

//
const (
	wavChannels   = 1
	wavSampleBits = 16
)

// wavHeader is the canonical 44 byte RIFF/WAVE header for plain PCM, laid
// out for little endian serialization in one go.
type wavHeader struct {
	RIFF       [4]byte
	FileSize   uint32
	WAVE       [4]byte
	Fmt        [4]byte
	FmtSize    uint32
	Format     uint16
	Channels   uint16
	SampleRate uint32
	ByteRate   uint32
	BlockAlign uint16
	SampleBits uint16
	Data       [4]byte
	DataSize   uint32
}

//
func newWAVHeader(dataLen int) *wavHeader {
	return &wavHeader{
		RIFF:       [4]byte{'R', 'I', 'F', 'F'},
		FileSize:   uint32(36 + dataLen),
		WAVE:       [4]byte{'W', 'A', 'V', 'E'},
		Fmt:        [4]byte{'f', 'm', 't', ' '},
		FmtSize:    16,
		Format:     1,
		Channels:   wavChannels,
		SampleRate: OutRate,
		ByteRate:   OutRate * wavChannels * wavSampleBits / 8,
		BlockAlign: wavChannels * wavSampleBits / 8,
		SampleBits: wavSampleBits,
		Data:       [4]byte{'d', 'a', 't', 'a'},
		DataSize:   uint32(dataLen),
	}
}

// WriteWAV wraps samples, a 16 bit little endian mono PCM stream at
// OutRate, into a minimal WAV container and writes it to w.
func WriteWAV(w io.Writer, samples []byte) error {

	if err := binary.Write(
		w, binary.LittleEndian, newWAVHeader(len(samples))); err != nil {
		return err
	}

	_, err := w.Write(samples)
	return err
}

// WAV returns the WAV rendition of samples as a byte slice. It runs
// through the same writer as WriteWAV, so buffer and file output are
// identical byte for byte.
func WAV(samples []byte) []byte {
	var buf bytes.Buffer
	WriteWAV(&buf, samples)
	return buf.Bytes()
}

// ToneSamples decodes the given tone and resamples it to OutRate.
func ToneSamples(d *sampler.Disk, num int, useLoop bool) ([]byte, error) {

	tone, err := d.Tone(num)
	if err != nil {
		return nil, err
	}

	samples, err := Decode(d, num, useLoop)
	if err != nil {
		return nil, err
	}

	return Resample(samples, tone.Frequency()), nil
}

// ToneWAV returns the complete WAV rendition of the given tone.
func ToneWAV(d *sampler.Disk, num int, useLoop bool) ([]byte, error) {

	samples, err := ToneSamples(d, num, useLoop)
	if err != nil {
		return nil, err
	}

	return WAV(samples), nil
}

// ExportWAV writes the WAV rendition of the given tone to the named file,
// creating or truncating it.
func ExportWAV(d *sampler.Disk, num int, useLoop bool, path string) error {

	samples, err := ToneSamples(d, num, useLoop)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteWAV(f, samples)
}
