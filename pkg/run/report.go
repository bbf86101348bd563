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
	"os"

	"github.com/xelalexv/tonedrive/pkg/sampler"
)

//
func NewReport() *Report {

	r := &Report{}
	r.Runner = *NewRunner(
		`report [-s|--slot {slot}] [-i|--input {file}] [-o|--output {file}]
       [-f|--force] [-p|--port {port}]`,
		"write parameter report for disk image from file or daemon",
		"\nUse the report command to write a parameter report for a disk image from file or from daemon.",
		"", `- The report lists the function, MIDI, patch, and tone parameters of the
  disk in plain text form. When no output file is given, it goes to stdout.

`+runnerHelpEpilogue, r.Run)

	r.AddBaseSettings()
	r.AddSetting(&r.File, "input", "i", "", nil, "disk image input file", false)
	r.AddSetting(&r.Slot, "slot", "s", "", 1, "slot number (1-8)", false)
	r.AddSetting(&r.Output, "output", "o", "", nil,
		"report output file; stdout when omitted", false)
	r.AddSetting(&r.Force, "force", "f", "", false,
		"force overwriting output file", false)

	return r
}

//
type Report struct {
	//
	Runner
	//
	Slot   int
	File   string
	Output string
	Force  bool
}

//
func (r *Report) Run() error {

	r.ParseSettings()

	var out io.Writer = os.Stdout

	if r.Output != "" {
		if !r.Force {
			if _, err := os.Stat(r.Output); err == nil &&
				!GetUserConfirmation("File exists, overwrite?") {
				return nil
			}
		}

		f, err := os.Create(r.Output)
		if err != nil {
			return err
		}
		defer f.Close()

		buf := bufio.NewWriter(f)
		defer buf.Flush()
		out = buf
	}

	if r.File != "" {
		d, err := sampler.Open(r.File)
		if err != nil {
			return err
		}
		if err := d.WriteReport(out); err != nil {
			return err
		}

	} else {
		if err := validateSlot(r.Slot); err != nil {
			return err
		}

		resp, err := r.apiFetch("GET",
			fmt.Sprintf("/slot/%d/report", r.Slot), false, nil)
		if err != nil {
			return err
		}
		defer resp.Close()

		if _, err := io.Copy(out, resp); err != nil {
			return err
		}
	}

	if r.Output != "" {
		fmt.Println("report saved")
	}
	return nil
}
