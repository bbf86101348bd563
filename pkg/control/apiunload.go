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
)

//
func (a *api) unload(w http.ResponseWriter, req *http.Request) {

	slot := getSlot(w, req)
	if slot == -1 {
		return
	}

	if handleError(a.library.Unload(slot),
		http.StatusInternalServerError, w) {
		return
	}

	sendReply([]byte(fmt.Sprintf("unloaded slot %d", slot)),
		http.StatusOK, w)
}
