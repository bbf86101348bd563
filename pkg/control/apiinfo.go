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
	"net/http"

	"github.com/xelalexv/tonedrive/pkg/sampler"
)

//
func (a *api) info(w http.ResponseWriter, req *http.Request) {

	slot, d := a.getDisk(w, req)
	if d == nil {
		return
	}

	s := NewSlotInfo(slot, d)
	s.Source = a.library.Source(slot)

	if wantsJSON(req) {
		sendJSONReply(s, http.StatusOK, w)
	} else {
		sendReply([]byte(s.Details()), http.StatusOK, w)
	}
}

//
func (a *api) tones(w http.ResponseWriter, req *http.Request) {

	_, d := a.getDisk(w, req)
	if d == nil {
		return
	}

	list, err := ToneList(d)
	if handleError(err, http.StatusInternalServerError, w) {
		return
	}

	if wantsJSON(req) {
		sendJSONReply(list, http.StatusOK, w)

	} else {
		strList := "\nTONE"
		for _, t := range list {
			strList += fmt.Sprintf("\n%s", t.String())
		}
		sendReply([]byte(strList), http.StatusOK, w)
	}
}

//
func (a *api) patches(w http.ResponseWriter, req *http.Request) {

	_, d := a.getDisk(w, req)
	if d == nil {
		return
	}

	list, err := PatchList(d)
	if handleError(err, http.StatusInternalServerError, w) {
		return
	}

	if wantsJSON(req) {
		sendJSONReply(list, http.StatusOK, w)

	} else {
		strList := "\nPATCH"
		for _, p := range list {
			strList += fmt.Sprintf("\n%s", p.String())
		}
		sendReply([]byte(strList), http.StatusOK, w)
	}
}

// ToneList converts the tone parameters of disk d into their API
// representation.
func ToneList(d *sampler.Disk) ([]*Tone, error) {

	ret := make([]*Tone, 0, len(d.Tones()))

	for _, tone := range d.Tones() {
		t := &Tone{}
		if err := t.fill(tone); err != nil {
			return nil, err
		}
		ret = append(ret, t)
	}

	return ret, nil
}

// PatchList converts the patch parameters of disk d into their API
// representation.
func PatchList(d *sampler.Disk) ([]*Patch, error) {

	ret := make([]*Patch, 0, len(d.Patches()))

	for _, patch := range d.Patches() {
		p := &Patch{}
		if err := p.fill(patch); err != nil {
			return nil, err
		}
		ret = append(ret, p)
	}

	return ret, nil
}
