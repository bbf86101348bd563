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

	"github.com/xelalexv/tonedrive/pkg/sampler/raw"
)

// Block is one decoded parameter block on a disk. It is populated by a
// single decode pass during disk construction and read only afterwards.
type Block struct {
	layout raw.Layout
	addr   int
	params raw.Params
}

//
func newBlock(layout raw.Layout, addr int) *Block {
	return &Block{layout: layout, addr: addr}
}

// read decodes the block's fields from img, anchored at the block address.
func (b *Block) read(img []byte) error {

	if b.addr < 0 || b.addr > len(img) {
		return fmt.Errorf("block address %d outside image", b.addr)
	}

	params, err := raw.NewCursor(img[b.addr:]).DecodeFields(b.layout)
	if err != nil {
		return fmt.Errorf("block at address %d: %v", b.addr, err)
	}

	b.params = params
	return nil
}

// Name returns the block's NAME field verbatim. Calling this on a block
// whose layout carries no name is a usage error.
func (b *Block) Name() (string, error) {
	if _, ok := b.params.Lookup("NAME"); !ok {
		return "", fmt.Errorf("block has no NAME field")
	}
	return b.params.String("NAME"), nil
}

// Lookup returns the value of the named parameter; absent keys report
// false, never an error.
func (b *Block) Lookup(key string) (interface{}, bool) {
	return b.params.Lookup(key)
}

//
func (b *Block) Int(key string) int {
	return b.params.Int(key)
}

//
func (b *Block) String(key string) string {
	return b.params.String(key)
}

//
func (b *Block) Tuple(key string) []int {
	return b.params.Tuple(key)
}

//
func (b *Block) Bytes(key string) []byte {
	return b.params.Bytes(key)
}

// Each calls f for every captured field of the block, in layout order.
func (b *Block) Each(f func(key string, value interface{})) {
	for _, fd := range b.layout {
		if fd.Type == raw.Dummy {
			continue
		}
		if v, ok := b.params.Lookup(fd.Name); ok {
			f(fd.Name, v)
		}
	}
}
