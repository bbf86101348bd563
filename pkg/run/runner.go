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
	"net/http"
	"strings"

	"github.com/xelalexv/tonedrive/pkg/control"
	"github.com/xelalexv/tonedrive/pkg/library"
)

//
const runnerHelpPrologue = ""
const runnerHelpEpilogue = `- When a flag can be set via environment variable, the variable name is given
  in parenthesis at the end of the flag explanation. Note however that a flag,
  when specified overrides an environment variable.
`

/*
	NewRunner creates a base runner for commands to use. The parameters are
	passed to the base command wrapped by this runner.
*/
func NewRunner(use, short, long, helpPrologue, helpEpilogue string,
	exec func() error) *Runner {
	return &Runner{
		Command: *NewCommand(
			use, short, long, helpPrologue, helpEpilogue, exec),
	}
}

//
type Runner struct {
	//
	Command
	//
	Port int
}

//
func (r *Runner) AddBaseSettings() {
	// Implementation Note: This cannot be included in NewRunner, but rather has
	// to be called from the top level command type. Otherwise, we will confuse
	// Cobra/Viper and the settings will not be filled with their values.
	r.AddSetting(&r.Port, "port", "p", "TONEDRIVE_PORT", control.DefaultPort,
		"port of daemon's API server", false)
}

/*
	apiCall sends a request to the daemon and returns the reply body, regardless
	of the reply status. Error replies carry an explanation in their body, so
	this is what commands use when they print the reply to the console anyway.
*/
func (r *Runner) apiCall(method, path string, json bool,
	body io.Reader) (io.ReadCloser, error) {

	resp, err := r.doAPIRequest(method, path, json, body)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

/*
	apiFetch is the strict variant of apiCall. When the daemon does not answer
	with status OK, the reply body is turned into an error. Commands that write
	the reply into a file use this, to keep error explanations out of the file.
*/
func (r *Runner) apiFetch(method, path string, json bool,
	body io.Reader) (io.ReadCloser, error) {

	resp, err := r.doAPIRequest(method, path, json, body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, _ := ioutil.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s", strings.TrimSpace(string(msg)))
	}

	return resp.Body, nil
}

//
func (r *Runner) doAPIRequest(method, path string, json bool,
	body io.Reader) (*http.Response, error) {

	client := &http.Client{}
	// FIXME: parameterize server
	req, err := http.NewRequest(
		method, fmt.Sprintf("http://127.0.0.1:%d%s", r.Port, path), body)
	if err != nil {
		return nil, err
	}

	if json {
		req.Header.Add("Content-Type", "application/json")
		req.Header.Add("Accept", "application/json")
	} else {
		req.Header.Add("Content-Type", "text/plain")
		req.Header.Add("Accept", "text/plain")
	}

	return client.Do(req)
}

//
func validateSlot(s int) error {
	if s < 1 || s > library.SlotCount {
		return fmt.Errorf(
			"invalid slot number: %d; valid numbers are 1 through %d",
			s, library.SlotCount)
	}
	return nil
}
