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

package repo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

//
const PrefixRepoRef = "repo://"

//
func newFileSource(file string) (*fileSource, error) {
	if f, err := os.Open(file); err != nil {
		return nil, err
	} else {
		return &fileSource{file: f, reader: bufio.NewReader(f)}, nil
	}
}

//
type fileSource struct {
	file   *os.File
	reader io.Reader
}

//
func (fs *fileSource) Read(p []byte) (n int, err error) {
	return fs.reader.Read(p)
}

//
func (fs *fileSource) Close() error {
	return fs.file.Close()
}

// Resolve opens the disk image a repo reference points to. References
// carry the repo:// prefix and are taken relative to the repo base
// folder. Anything else is rejected, so a server resolving references
// never reads outside its repo.
func Resolve(ref, base string) (io.ReadCloser, error) {

	log.WithFields(log.Fields{
		"reference":  ref,
		"repository": base,
	}).Debug("resolving ref")

	if !strings.HasPrefix(ref, PrefixRepoRef) {
		return nil, fmt.Errorf("not a repo reference: %s", ref)
	}

	if base == "" {
		return nil, fmt.Errorf("disk image repository is not enabled")
	}

	path := filepath.Join(base, ref[len(PrefixRepoRef):])
	if rel, err := filepath.Rel(base, path); err != nil ||
		rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("reference escapes the repository: %s", ref)
	}

	return newFileSource(path)
}

// Name derives the display name of the disk loaded from ref, which is
// the file name without any repo prefix and folders.
func Name(ref string) string {
	return filepath.Base(strings.TrimPrefix(ref, PrefixRepoRef))
}

//
func IsReference(r string) bool {
	return strings.HasPrefix(r, PrefixRepoRef)
}
