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
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"net/url"
	"os"
	"path/filepath"

	"github.com/xelalexv/tonedrive/pkg/repo"
)

//
func NewLoad() *Load {

	l := &Load{}
	l.Runner = *NewRunner(
		`load [-s|--slot {slot}] -i|--input {file|repo ref} [-n|--name {name}]
	[-p|--port {port}]`,
		"load disk image into library slot",
		"\nUse the load command to load a disk image into a library slot of the daemon.",
		"", `- The input is either a local file, which gets sent to the daemon, or a repo
  reference of the form 'repo://folder/disk.out', which the daemon resolves
  within its own repo base folder.

`+runnerHelpEpilogue, l.Run)

	l.AddBaseSettings()
	l.AddSetting(&l.File, "input", "i", "", nil,
		"disk image input file or repo reference", true)
	l.AddSetting(&l.Slot, "slot", "s", "", 1, "slot number (1-8)", false)
	l.AddSetting(&l.Name, "name", "n", "", nil,
		"name for the disk in the library; defaults to the file name", false)

	return l
}

//
type Load struct {
	//
	Runner
	//
	Slot int
	File string
	Name string
}

//
func (l *Load) Run() error {

	l.ParseSettings()

	if err := validateSlot(l.Slot); err != nil {
		return err
	}

	var resp io.ReadCloser
	var err error

	if repo.IsReference(l.File) {
		path := fmt.Sprintf("/slot/%d?ref=%s",
			l.Slot, url.QueryEscape(l.File))
		if l.Name != "" {
			path = fmt.Sprintf("%s&name=%s", path, url.QueryEscape(l.Name))
		}
		resp, err = l.apiCall("PUT", path, false, nil)

	} else {
		name := l.Name
		if name == "" {
			name = filepath.Base(l.File)
		}
		var f *os.File
		if f, err = os.Open(l.File); err != nil {
			return err
		}
		defer f.Close()
		resp, err = l.apiCall("PUT", fmt.Sprintf("/slot/%d?name=%s",
			l.Slot, url.QueryEscape(name)), false, bufio.NewReader(f))
	}

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
