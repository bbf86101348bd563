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

package library

import (
	"fmt"
	"io"
	"io/ioutil"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/tonedrive/pkg/repo"
	"github.com/xelalexv/tonedrive/pkg/sampler"
	"github.com/xelalexv/tonedrive/pkg/sampler/format"
)

//
const SlotCount = 8

//
const (
	StatusEmpty  = "empty"
	StatusLoaded = "loaded"
)

// a slot holds one decoded disk, plus where it came from
type slot struct {
	disk   *sampler.Disk
	source string
}

// Library keeps the disks currently loaded into the slots. Disks are
// immutable once decoded, so slots need no locking beyond atomic access.
type Library struct {
	//
	slots []atomic.Value
	//
	base string
}

// NewLibrary creates a library with empty slots. base is the repo base
// folder for resolving repo references; when empty, loading by reference
// is disabled.
func NewLibrary(base string) *Library {
	return &Library{
		slots: make([]atomic.Value, SlotCount),
		base:  base,
	}
}

// Load reads the disk image from r and puts it into slot ix (1-based),
// replacing whatever was there. name is the display name for the disk.
func (l *Library) Load(ix int, name string, r io.Reader) (
	*sampler.Disk, error) {
	return l.load(ix, name, name, r)
}

// LoadRef resolves ref against the repo base folder and loads the image
// it points to into slot ix (1-based). name overrides the display name;
// when empty, the disk is named after the reference.
func (l *Library) LoadRef(ix int, ref, name string) (*sampler.Disk, error) {

	in, err := repo.Resolve(ref, l.base)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	if name == "" {
		name = repo.Name(ref)
	}
	return l.load(ix, name, ref, in)
}

//
func (l *Library) load(ix int, name, source string, r io.Reader) (
	*sampler.Disk, error) {

	img, err := ioutil.ReadAll(io.LimitReader(r, format.MaxFileSize+1))
	if err != nil {
		return nil, err
	}

	d, err := sampler.Read(name, img)
	if err != nil {
		return nil, err
	}

	if err := l.setSlot(ix, slot{disk: d, source: source}); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"slot":   ix,
		"name":   d.Name(),
		"format": d.Format(),
	}).Info("disk loaded")

	return d, nil
}

// Unload clears slot ix (1-based). Unloading an empty slot is not an
// error.
func (l *Library) Unload(ix int) error {

	if err := l.setSlot(ix, slot{}); err != nil {
		return err
	}

	log.WithField("slot", ix).Info("slot unloaded")
	return nil
}

// Get returns the disk in slot ix (1-based), nil when the slot is empty.
func (l *Library) Get(ix int) (*sampler.Disk, error) {

	if ix < 1 || ix > len(l.slots) {
		return nil, fmt.Errorf(
			"invalid slot number: %d; valid numbers are 1 through %d",
			ix, len(l.slots))
	}

	if s := l.slots[ix-1].Load(); s != nil {
		return s.(slot).disk, nil
	}

	return nil, nil
}

// Source returns where the disk in slot ix was loaded from, empty when
// the slot is empty or ix invalid.
func (l *Library) Source(ix int) string {
	if 0 < ix && ix <= len(l.slots) {
		if s := l.slots[ix-1].Load(); s != nil {
			return s.(slot).source
		}
	}
	return ""
}

//
func (l *Library) Status(ix int) string {
	if d, err := l.Get(ix); err == nil && d != nil {
		return StatusLoaded
	}
	return StatusEmpty
}

//
func (l *Library) setSlot(ix int, s slot) error {
	if ix < 1 || ix > len(l.slots) {
		return fmt.Errorf(
			"invalid slot number: %d; valid numbers are 1 through %d",
			ix, len(l.slots))
	}
	l.slots[ix-1].Store(s)
	return nil
}
