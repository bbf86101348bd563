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

package run

import (
	"fmt"
	"io"
	"os"

	"github.com/xelalexv/tonedrive/pkg/control"
	"github.com/xelalexv/tonedrive/pkg/sampler"
)

//
func NewInfo() *Info {

	i := &Info{}
	i.Runner = *NewRunner(
		"info [-s|--slot {slot}] [-i|--input {file}] [-p|--port {port}]",
		"show disk image summary from file or daemon",
		"\nUse the info command to show a summary for a disk image from file or from daemon.",
		"", runnerHelpEpilogue, i.Run)

	i.AddBaseSettings()
	i.AddSetting(&i.File, "input", "i", "", nil, "disk image input file", false)
	i.AddSetting(&i.Slot, "slot", "s", "", 1, "slot number (1-8)", false)

	return i
}

//
type Info struct {
	//
	Runner
	//
	Slot int
	File string
}

//
func (i *Info) Run() error {

	i.ParseSettings()

	if i.File != "" {
		d, err := sampler.Open(i.File)
		if err != nil {
			return err
		}
		fmt.Print(control.NewSlotInfo(i.Slot, d).Details())
		fmt.Println()

	} else {
		if err := validateSlot(i.Slot); err != nil {
			return err
		}

		resp, err := i.apiCall("GET", fmt.Sprintf("/slot/%d", i.Slot),
			false, nil)
		if err != nil {
			return err
		}
		defer resp.Close()

		if _, err := io.Copy(os.Stdout, resp); err != nil {
			return err
		}
	}

	return nil
}
