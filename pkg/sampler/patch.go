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

package sampler

import (
	"fmt"
	"sort"
)

// Patch holds the parameters of one keyboard mapping, assigning up to two
// tones per key across the playable range.
type Patch struct {
	Block
	number int
}

// read decodes the patch at slot number.
func (p *Patch) read(img []byte, number, size int) error {

	p.number = number
	p.addr += number * size

	if err := p.Block.read(img); err != nil {
		return fmt.Errorf("patch %d: %v", number, err)
	}

	return nil
}

// Number is the patch's slot index on disk.
func (p *Patch) Number() int {
	return p.number
}

// LinkedTones returns the distinct tone numbers this patch assigns across
// its two key tables, sorted ascending.
func (p *Patch) LinkedTones() []int {

	seen := make(map[int]bool)
	for _, key := range []string{"TONE TO KEY 1", "TONE TO KEY 2"} {
		for _, t := range p.Tuple(key) {
			seen[t] = true
		}
	}

	res := make([]int, 0, len(seen))
	for t := range seen {
		res = append(res, t)
	}
	sort.Ints(res)

	return res
}
