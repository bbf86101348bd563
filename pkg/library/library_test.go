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
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/xelalexv/tonedrive/pkg/sampler/format"
)

//
func testImage(sig string) []byte {
	img := make([]byte, format.TotalSize)
	copy(img[4:], sig)
	return img
}

//
func TestLoadGetUnload(t *testing.T) {

	l := NewLibrary("")

	d, err := l.Load(3, "bass.out", bytes.NewReader(testImage("S550")))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if d.Format() != "S-550" {
		t.Errorf("format is '%s', want 'S-550'", d.Format())
	}

	if got, err := l.Get(3); err != nil || got != d {
		t.Errorf("slot 3 does not hold the loaded disk")
	}
	if got := l.Status(3); got != StatusLoaded {
		t.Errorf("slot 3 status is '%s', want '%s'", got, StatusLoaded)
	}
	if got := l.Source(3); got != "bass.out" {
		t.Errorf("slot 3 source is '%s', want 'bass.out'", got)
	}

	if got := l.Status(4); got != StatusEmpty {
		t.Errorf("slot 4 status is '%s', want '%s'", got, StatusEmpty)
	}

	if err := l.Unload(3); err != nil {
		t.Fatalf("unload failed: %v", err)
	}
	if got, err := l.Get(3); err != nil || got != nil {
		t.Errorf("slot 3 not empty after unload")
	}
	if got := l.Status(3); got != StatusEmpty {
		t.Errorf("slot 3 status is '%s' after unload", got)
	}

	if err := l.Unload(3); err != nil {
		t.Errorf("unloading empty slot failed: %v", err)
	}
}

//
func TestSlotBounds(t *testing.T) {

	l := NewLibrary("")

	for _, ix := range []int{0, -1, 9} {

		if _, err := l.Load(
			ix, "bass.out", bytes.NewReader(testImage("S550"))); err == nil {
			t.Errorf("no error loading into slot %d", ix)
		}
		if _, err := l.Get(ix); err == nil {
			t.Errorf("no error getting slot %d", ix)
		}
		if err := l.Unload(ix); err == nil {
			t.Errorf("no error unloading slot %d", ix)
		}
	}
}

//
func TestLoadRejectsBadImage(t *testing.T) {

	l := NewLibrary("")

	if _, err := l.Load(
		1, "junk.out", bytes.NewReader(testImage("JUNK"))); err == nil {
		t.Errorf("no error for unknown signature")
	}
	if d, _ := l.Get(1); d != nil {
		t.Errorf("slot 1 filled despite failed load")
	}

	huge := make([]byte, format.MaxFileSize+1)
	copy(huge[4:], "S550")
	if _, err := l.Load(1, "huge.out", bytes.NewReader(huge)); err == nil {
		t.Errorf("no error for oversized image")
	}
}

//
func TestLoadRef(t *testing.T) {

	base := t.TempDir()
	if err := ioutil.WriteFile(filepath.Join(base, "strings.out"),
		testImage("S-50"), 0644); err != nil {
		t.Fatalf("cannot set up repo: %v", err)
	}

	l := NewLibrary(base)

	d, err := l.LoadRef(1, "repo://strings.out", "")
	if err != nil {
		t.Fatalf("load by ref failed: %v", err)
	}
	if d.Name() != "strings.out" || d.Format() != "S-50" {
		t.Errorf("got disk '%s' (%s)", d.Name(), d.Format())
	}

	if d, err = l.LoadRef(2, "repo://strings.out", "orchestra"); err != nil {
		t.Fatalf("load by ref failed: %v", err)
	}
	if d.Name() != "orchestra" {
		t.Errorf("name override ignored, got '%s'", d.Name())
	}
	if got := l.Source(2); got != "repo://strings.out" {
		t.Errorf("slot 2 source is '%s', want the reference", got)
	}

	if _, err := NewLibrary("").LoadRef(1, "repo://strings.out", ""); err == nil {
		t.Errorf("no error when repo is disabled")
	}
}
