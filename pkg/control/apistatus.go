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

	"github.com/xelalexv/tonedrive/pkg/library"
)

//
func (a *api) status(w http.ResponseWriter, req *http.Request) {

	stat := &Status{}
	for slot := 1; slot <= library.SlotCount; slot++ {
		stat.Add(a.library.Status(slot))
	}

	if wantsJSON(req) {
		sendJSONReply(stat, http.StatusOK, w)
	} else {
		sendReply([]byte(stat.String()), http.StatusOK, w)
	}
}

//
func (a *api) list(w http.ResponseWriter, req *http.Request) {

	list := a.getSlots()

	if wantsJSON(req) {
		sendJSONReply(list, http.StatusOK, w)

	} else {
		strList := "\nSLOT  DISK"
		for ix, s := range list {
			strList += fmt.Sprintf("\n  %d   %s", ix+1, s.String())
		}
		sendReply([]byte(strList), http.StatusOK, w)
	}
}

//
func (a *api) getSlots() []*Slot {

	ret := make([]*Slot, library.SlotCount)

	for slot := 1; slot <= library.SlotCount; slot++ {

		s := &Slot{Slot: slot, Status: a.library.Status(slot)}

		if d, err := a.library.Get(slot); err == nil && d != nil {
			s.fill(d)
			s.Source = a.library.Source(slot)
		}

		ret[slot-1] = s
	}

	return ret
}
