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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xelalexv/tonedrive/pkg/control"
	"github.com/xelalexv/tonedrive/pkg/sampler"
	"github.com/xelalexv/tonedrive/pkg/sampler/pcm"
)

//
func NewExport() *Export {

	e := &Export{}
	e.Runner = *NewRunner(
		`export [-s|--slot {slot}] [-i|--input {file}] [-t|--tone {tone}] [-l|--loop]
       [-a|--all] [-o|--output {file|folder}] [-f|--force] [-p|--port {port}]`,
		"export tones as WAV from file or daemon",
		"\nUse the export command to turn tones of a disk image from file or from daemon into WAV files.",
		"", `- Without an output file, the WAV file is named after the tone, e.g.
  'I11_EPIANO_1.wav'.

- With --all, every non-empty tone of the disk is exported, together with the
  parameter report, into the output folder. Existing files in the folder are
  only overwritten when --force is set.

`+runnerHelpEpilogue, e.Run)

	e.AddBaseSettings()
	e.AddSetting(&e.File, "input", "i", "", nil, "disk image input file", false)
	e.AddSetting(&e.Slot, "slot", "s", "", 1, "slot number (1-8)", false)
	e.AddSetting(&e.Tone, "tone", "t", "", 0, "tone number (0-31)", false)
	e.AddSetting(&e.Loop, "loop", "l", "", false,
		"truncate tone at its end point", false)
	e.AddSetting(&e.All, "all", "a", "", false,
		"export all tones & parameter report into output folder", false)
	e.AddSetting(&e.Output, "output", "o", "", nil,
		"output WAV file, or output folder when --all is set", false)
	e.AddSetting(&e.Force, "force", "f", "", false,
		"force overwriting output files", false)

	return e
}

//
type Export struct {
	//
	Runner
	//
	Slot   int
	File   string
	Tone   int
	Loop   bool
	All    bool
	Output string
	Force  bool
}

//
func (e *Export) Run() error {

	e.ParseSettings()

	if e.All {
		return e.exportAll()
	}
	return e.exportOne()
}

//
func (e *Export) exportOne() error {

	out := e.Output

	if e.File != "" {
		d, err := sampler.Open(e.File)
		if err != nil {
			return err
		}

		t, err := d.Tone(e.Tone)
		if err != nil {
			return err
		}
		if t.Empty() {
			return fmt.Errorf(
				"tone %s is empty", sampler.DisplayNumber(e.Tone))
		}

		if out == "" {
			name, err := t.Name()
			if err != nil {
				return err
			}
			out = toneFileName(e.Tone, name)
		}

		if !e.confirmOverwrite(out) {
			return nil
		}
		if err := pcm.ExportWAV(d, e.Tone, e.Loop, out); err != nil {
			return err
		}

	} else {
		if err := validateSlot(e.Slot); err != nil {
			return err
		}

		if out == "" {
			list, err := e.fetchTones()
			if err != nil {
				return err
			}
			if e.Tone < 0 || e.Tone >= len(list) {
				return fmt.Errorf("invalid tone number: %d", e.Tone)
			}
			out = toneFileName(e.Tone, list[e.Tone].Name)
		}

		if !e.confirmOverwrite(out) {
			return nil
		}
		if err := e.fetchWAV(e.Tone, out); err != nil {
			return err
		}
	}

	fmt.Printf("exported tone %s to %s\n", sampler.DisplayNumber(e.Tone), out)
	return nil
}

//
func (e *Export) exportAll() error {

	folder := e.Output
	count := 0

	if e.File != "" {
		d, err := sampler.Open(e.File)
		if err != nil {
			return err
		}

		if folder == "" {
			folder = exportFolder(d.Name())
		}
		if err := os.MkdirAll(folder, 0755); err != nil {
			return err
		}

		if rep := filepath.Join(folder, "report.txt"); e.shouldWrite(rep) {
			if err := e.writeReport(d, rep); err != nil {
				return err
			}
		}

		for _, t := range d.Tones() {
			if t.Empty() {
				continue
			}
			name, err := t.Name()
			if err != nil {
				return err
			}
			out := filepath.Join(folder, toneFileName(t.Number(), name))
			if !e.shouldWrite(out) {
				continue
			}
			if err := pcm.ExportWAV(d, t.Number(), e.Loop, out); err != nil {
				return err
			}
			count++
		}

	} else {
		if err := validateSlot(e.Slot); err != nil {
			return err
		}

		list, err := e.fetchTones()
		if err != nil {
			return err
		}

		if folder == "" {
			s, err := e.fetchSlot()
			if err != nil {
				return err
			}
			folder = exportFolder(s.Name)
		}
		if err := os.MkdirAll(folder, 0755); err != nil {
			return err
		}

		if rep := filepath.Join(folder, "report.txt"); e.shouldWrite(rep) {
			if err := e.fetchFile(
				fmt.Sprintf("/slot/%d/report", e.Slot), rep); err != nil {
				return err
			}
		}

		for _, t := range list {
			if t.Empty {
				continue
			}
			out := filepath.Join(folder, toneFileName(t.Number, t.Name))
			if !e.shouldWrite(out) {
				continue
			}
			if err := e.fetchWAV(t.Number, out); err != nil {
				return err
			}
			count++
		}
	}

	fmt.Printf("exported %d tones to %s\n", count, folder)
	return nil
}

//
func (e *Export) confirmOverwrite(path string) bool {
	if !e.Force {
		if _, err := os.Stat(path); err == nil &&
			!GetUserConfirmation("File exists, overwrite?") {
			return false
		}
	}
	return true
}

// shouldWrite is the non-interactive overwrite check used with --all, where
// prompting for every file would get in the way.
func (e *Export) shouldWrite(path string) bool {
	if e.Force {
		return true
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("skipping existing file %s\n", path)
		return false
	}
	return true
}

//
func (e *Export) writeReport(d *sampler.Disk, path string) error {

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	defer out.Flush()

	return d.WriteReport(out)
}

//
func (e *Export) fetchSlot() (*control.Slot, error) {

	resp, err := e.apiFetch("GET", fmt.Sprintf("/slot/%d", e.Slot), true, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	ret := &control.Slot{}
	if err := json.NewDecoder(resp).Decode(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

//
func (e *Export) fetchTones() ([]*control.Tone, error) {

	resp, err := e.apiFetch(
		"GET", fmt.Sprintf("/slot/%d/tones", e.Slot), true, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	var ret []*control.Tone
	if err := json.NewDecoder(resp).Decode(&ret); err != nil {
		return nil, err
	}
	return ret, nil
}

//
func (e *Export) fetchWAV(tone int, path string) error {
	return e.fetchFile(fmt.Sprintf("/slot/%d/tone/%d/wav?loop=%s",
		e.Slot, tone, strconv.FormatBool(e.Loop)), path)
}

//
func (e *Export) fetchFile(apiPath, path string) error {

	resp, err := e.apiFetch("GET", apiPath, false, nil)
	if err != nil {
		return err
	}
	defer resp.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	defer out.Flush()

	_, err = io.Copy(out, resp)
	return err
}

// toneFileName derives the export file name for a tone from its display
// number and name, dropping characters that tend to upset file systems.
func toneFileName(num int, name string) string {

	name = strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`$&%@\^:.#*"|`, r):
			return -1
		case r == ' ':
			return '_'
		}
		return r
	}, strings.TrimRight(name, " \x00"))

	return fmt.Sprintf("%s_%s.wav", sampler.DisplayNumber(num), name)
}

//
func exportFolder(disk string) string {
	if disk = strings.TrimSuffix(disk, filepath.Ext(disk)); disk == "" {
		disk = "disk"
	}
	return disk + "_export"
}
