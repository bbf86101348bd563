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
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/tonedrive/pkg/sampler/pcm"
)

// wav converts the addressed tone to WAV and sends it. With the loop flag
// set, conversion stops at the tone's end point.
func (a *api) wav(w http.ResponseWriter, req *http.Request) {

	slot, d := a.getDisk(w, req)
	if d == nil {
		return
	}

	num := getTone(w, req)
	if num == -1 {
		return
	}

	t, err := d.Tone(num)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	if t.Empty() {
		handleError(fmt.Errorf("tone %d in slot %d is empty", num, slot),
			http.StatusUnprocessableEntity, w)
		return
	}

	data, err := pcm.ToneWAV(d, num, isFlagSet(req, "loop"))
	if handleError(err, http.StatusInternalServerError, w) {
		return
	}

	w.Header().Set("Content-Type", "audio/x-wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Errorf("problem sending wav: %v", err)
	}
}
