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

package control

import (
	"fmt"
	"strings"

	"github.com/xelalexv/tonedrive/pkg/library"
	"github.com/xelalexv/tonedrive/pkg/sampler"
	"github.com/xelalexv/tonedrive/pkg/sampler/format"
)

//
type Status struct {
	Slots []string `json:"slots"`
}

//
func (s *Status) Add(d string) {
	s.Slots = append(s.Slots, d)
}

//
func (s *Status) String() string {
	ret := "\n"
	for ix, d := range s.Slots {
		ret = fmt.Sprintf("%s%d: %s\n", ret, ix+1, d)
	}
	return ret
}

// NewSlotInfo creates the info summary for a slot that holds disk d.
func NewSlotInfo(ix int, d *sampler.Disk) *Slot {
	ret := &Slot{Slot: ix}
	ret.fill(d)
	return ret
}

//
type Slot struct {
	Slot     int      `json:"slot"`
	Status   string   `json:"status"`
	Name     string   `json:"name,omitempty"`
	Source   string   `json:"source,omitempty"`
	Format   string   `json:"format,omitempty"`
	Version  string   `json:"version,omitempty"`
	Label    []string `json:"label,omitempty"`
	Tones    int      `json:"tones"`
	Patches  int      `json:"patches"`
	Segments int      `json:"segments"`
}

//
func (s *Slot) fill(d *sampler.Disk) {

	s.Status = library.StatusLoaded
	s.Name = d.Name()
	s.Format = d.Format()
	s.Version = d.Version()

	for _, line := range d.Label() {
		if l := strings.TrimRight(line, " "); l != "" {
			s.Label = append(s.Label, l)
		}
	}

	for _, t := range d.Tones() {
		if !t.Empty() {
			s.Tones++
		}
	}

	s.Patches = len(d.Patches())
	s.Segments = d.WaveCount()
}

//
func (s *Slot) String() string {

	if s.Status != library.StatusLoaded {
		return "<empty>"
	}

	name := s.Name
	if name == "" {
		name = "<no name>"
	}

	return fmt.Sprintf("%-20s %-6s %2d tones  %2d/%d segments",
		name, s.Format, s.Tones, s.Segments,
		format.WaveSize/format.SegmentSize)
}

// Details renders the multi-line summary of this slot, as shown by the info
// command and the slot route of the API.
func (s *Slot) Details() string {

	ret := fmt.Sprintf("\nDisk:     %s\nFormat:   %s\n", s.Name, s.Format)

	if s.Version != "" {
		ret += fmt.Sprintf("Version:  %s\n", s.Version)
	}

	for ix, l := range s.Label {
		if ix == 0 {
			ret += fmt.Sprintf("Label:    %s\n", l)
		} else {
			ret += fmt.Sprintf("          %s\n", l)
		}
	}

	return ret + fmt.Sprintf("Tones:    %d\nPatches:  %d\nSegments: %d/%d\n",
		s.Tones, s.Patches, s.Segments, format.WaveSize/format.SegmentSize)
}

//
type Tone struct {
	Number    int    `json:"number"`
	Display   string `json:"display"`
	Name      string `json:"name,omitempty"`
	Bank      string `json:"bank"`
	Segments  int    `json:"segments"`
	Frequency int    `json:"frequency"`
	Empty     bool   `json:"empty"`
}

//
func (t *Tone) fill(tone *sampler.Tone) error {

	name, err := tone.Name()
	if err != nil {
		return err
	}

	t.Number = tone.Number()
	t.Display = sampler.DisplayNumber(tone.Number())
	t.Name = strings.TrimRight(name, " \x00")
	t.Bank = tone.BankName()
	t.Segments = tone.Length()
	t.Frequency = tone.Frequency()
	t.Empty = tone.Empty()

	return nil
}

//
func (t *Tone) String() string {

	if t.Empty {
		return fmt.Sprintf("%s  <empty>", t.Display)
	}

	name := t.Name
	if name == "" {
		name = "<no name>"
	}

	return fmt.Sprintf("%s  %-8s  bank %-4s  %2d segments  %5d Hz",
		t.Display, name, t.Bank, t.Segments, t.Frequency)
}

//
type Patch struct {
	Number  int      `json:"number"`
	Display string   `json:"display"`
	Name    string   `json:"name,omitempty"`
	KeyMode int      `json:"keyMode"`
	Tones   []string `json:"tones,omitempty"`
}

//
func (p *Patch) fill(patch *sampler.Patch) error {

	name, err := patch.Name()
	if err != nil {
		return err
	}

	p.Number = patch.Number()
	p.Display = sampler.DisplayNumber(patch.Number())
	p.Name = strings.TrimRight(name, " \x00")
	p.KeyMode = patch.Int("KEY MODE")

	for _, t := range patch.LinkedTones() {
		p.Tones = append(p.Tones, sampler.DisplayNumber(t))
	}

	return nil
}

//
func (p *Patch) String() string {

	name := p.Name
	if name == "" {
		name = "<no name>"
	}

	return fmt.Sprintf("%s  %-12s  tones: %s",
		p.Display, name, strings.Join(p.Tones, " "))
}
