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
	"io/ioutil"
	"os"

	"github.com/xelalexv/tonedrive/pkg/control"
	"github.com/xelalexv/tonedrive/pkg/sampler"
)

//
func NewList() *List {

	l := &List{}
	l.Runner = *NewRunner(
		"ls [-s|--slot {slot}] [-i|--input {file}] [-p|--port {port}]",
		"list library slots, or the tones & patches of a disk",
		`
Use the ls command to get a list of the library slots from the daemon. When a
slot or an input file is given, it lists the tones and patches of that disk
instead.`,
		"", runnerHelpEpilogue, l.Run)

	l.AddBaseSettings()
	l.AddSetting(&l.File, "input", "i", "", nil, "disk image input file", false)
	l.AddSetting(&l.Slot, "slot", "s", "", 0, "slot number (1-8)", false)

	return l
}

//
type List struct {
	//
	Runner
	//
	Slot int
	File string
}

//
func (l *List) Run() error {

	l.ParseSettings()

	if l.File != "" {
		return l.listDisk()
	}

	if l.Slot > 0 {
		return l.listSlot()
	}

	resp, err := l.apiCall("GET", "/list", false, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	list, err := ioutil.ReadAll(resp)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", list)
	return nil
}

// listSlot prints the tone & patch lists of the disk in the selected slot,
// as served by the daemon.
func (l *List) listSlot() error {

	if err := validateSlot(l.Slot); err != nil {
		return err
	}

	for _, part := range []string{"tones", "patches"} {
		resp, err := l.apiCall("GET",
			fmt.Sprintf("/slot/%d/%s", l.Slot, part), false, nil)
		if err != nil {
			return err
		}
		_, err = io.Copy(os.Stdout, resp)
		resp.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

// listDisk prints the tone & patch lists of a local disk image file.
func (l *List) listDisk() error {

	d, err := sampler.Open(l.File)
	if err != nil {
		return err
	}

	tones, err := control.ToneList(d)
	if err != nil {
		return err
	}
	fmt.Println("\nTONE")
	for _, t := range tones {
		fmt.Println(t.String())
	}

	patches, err := control.PatchList(d)
	if err != nil {
		return err
	}
	fmt.Println("\nPATCH")
	for _, p := range patches {
		fmt.Println(p.String())
	}

	return nil
}
