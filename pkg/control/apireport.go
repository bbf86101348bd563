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
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// report streams the parameter report of the disk in the addressed slot.
func (a *api) report(w http.ResponseWriter, req *http.Request) {

	_, d := a.getDisk(w, req)
	if d == nil {
		return
	}

	read, write := io.Pipe()

	go func() {
		if err := d.WriteReport(write); err != nil {
			log.Errorf("problem writing report: %v", err)
		}
		write.Close()
	}()

	sendStreamReply(read, http.StatusOK, w)

	// unblocks the writer if the client went away mid-stream
	read.Close()
}
