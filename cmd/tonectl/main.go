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

package main

import (
	"fmt"
	"os"

	"github.com/xelalexv/tonedrive/pkg/run"
)

//
var ToneDriveVersion string

//
func synopsis() {
	fmt.Print(`
synopsis: tonectl {serve|load|unload|ls|info|report|export|version} ...

run 'tonectl {action} -h|--help' to see detailed info

`)
}

//
func version() {
	fmt.Printf("\nToneDrive %s\n\n", ToneDriveVersion)
}

//
func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	switch action {

	case "serve":
		version()
		run.DieOnError(run.NewServe().Execute(args))

	case "load":
		run.DieOnError(run.NewLoad().Execute(args))

	case "unload":
		run.DieOnError(run.NewUnload().Execute(args))

	case "ls":
		run.DieOnError(run.NewList().Execute(args))

	case "info":
		run.DieOnError(run.NewInfo().Execute(args))

	case "report":
		run.DieOnError(run.NewReport().Execute(args))

	case "export":
		run.DieOnError(run.NewExport().Execute(args))

	case "version":
		version()

	case "":
		fallthrough
	case "-h":
		fallthrough
	case "--help":
		synopsis()

	default:
		run.Die("unknown action: %s\n", action)
	}
}
