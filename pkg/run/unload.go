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
	"io/ioutil"
)

//
func NewUnload() *Unload {

	u := &Unload{}
	u.Runner = *NewRunner(
		"unload [-s|--slot {slot}] [-p|--port {port}]",
		"unload disk image from library slot",
		`
Use the unload command to remove the disk image from a library slot of the
daemon, leaving the slot empty`,
		"", runnerHelpEpilogue, u.Run)

	u.AddBaseSettings()
	u.AddSetting(&u.Slot, "slot", "s", "", 1, "slot number (1-8)", false)

	return u
}

//
type Unload struct {
	//
	Runner
	//
	Slot int
}

//
func (u *Unload) Run() error {

	u.ParseSettings()

	if err := validateSlot(u.Slot); err != nil {
		return err
	}

	resp, err := u.apiCall(
		"GET", fmt.Sprintf("/slot/%d/unload", u.Slot), false, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	msg, err := ioutil.ReadAll(resp)
	if err != nil {
		return err
	}

	fmt.Printf("%s", msg)
	return nil
}
