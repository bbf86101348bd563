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

// load fills a slot either from a repo reference given in the ref query
// arg, resolved on this side, or from the disk image sent in the request
// body.
func (a *api) load(w http.ResponseWriter, req *http.Request) {

	slot := getSlot(w, req)
	if slot == -1 {
		return
	}

	ref, err := getArg(req, "ref")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	name, err := getArg(req, "name")
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	var d *sampler.Disk

	if ref != "" {
		if d, err = a.library.LoadRef(slot, ref, name); err != nil {
			handleError(err, http.StatusNotAcceptable, w)
			return
		}

	} else {
		if name == "" {
			name = "unnamed"
		}

		if d, err = a.library.Load(slot, name, req.Body); err != nil {
			handleError(fmt.Errorf("disk rejected: %v", err),
				http.StatusUnprocessableEntity, w)
			return
		}
	}

	if handleError(req.Body.Close(), http.StatusInternalServerError, w) {
		return
	}

	sendReply([]byte(fmt.Sprintf("loaded '%s' (%s) into slot %d",
		d.Name(), d.Format(), slot)), http.StatusOK, w)
}
