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

package raw

import (
	"fmt"
)

// Cursor reads fields sequentially from a bounded byte window, advancing an
// internal offset. It never fails on underflow itself; Pop returns whatever
// remains and callers needing the full count check the length.
type Cursor struct {
	data []byte
	off  int
}

//
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pop returns the next n bytes and advances the cursor, the truncated
// remainder when fewer than n bytes are left.
func (c *Cursor) Pop(n int) []byte {
	start := c.off
	if start > len(c.data) {
		start = len(c.data)
	}
	end := start + n
	if end > len(c.data) {
		end = len(c.data)
	}
	c.off += n
	return c.data[start:end]
}

// Skip advances the cursor by n bytes without materializing them.
func (c *Cursor) Skip(n int) {
	c.off += n
}

//
func (c *Cursor) Offset() int {
	return c.off
}

//
func (c *Cursor) Remaining() int {
	if c.off >= len(c.data) {
		return 0
	}
	return len(c.data) - c.off
}

// DecodeFields decodes the layout's fields in order, one pass, no
// backtracking, and returns the named values. Dummy fields are skipped and
// not stored. Running short of bytes inside a field is a decode integrity
// violation and fails, as does an unknown field type in the layout.
func (c *Cursor) DecodeFields(l Layout) (Params, error) {

	res := make(Params)

	for _, f := range l {

		if f.Type == Dummy {
			c.Skip(f.Size)
			continue
		}

		data := c.Pop(f.Size)
		if len(data) < f.Size {
			return nil, fmt.Errorf(
				"short read in field '%s': want %d bytes, have %d",
				f.Name, f.Size, len(data))
		}

		switch f.Type {

		case Int:
			res[f.Name] = beUint(data)

		case SignedInt:
			res[f.Name] = beInt(data)

		case Multi:
			tuple := make([]int, len(data))
			for i, b := range data {
				tuple[i] = int(int8(b))
			}
			res[f.Name] = tuple

		case ASCII:
			for _, b := range data {
				if b > 0x7f {
					return nil, fmt.Errorf(
						"field '%s' is not ASCII: 0x%02x", f.Name, b)
				}
			}
			res[f.Name] = string(data)

		case Raw:
			res[f.Name] = append([]byte{}, data...)

		default:
			return nil, fmt.Errorf(
				"unknown type %d in field '%s'", f.Type, f.Name)
		}
	}

	return res, nil
}

// big-endian unsigned
func beUint(data []byte) int {
	v := 0
	for _, b := range data {
		v = v<<8 | int(b)
	}
	return v
}

// big-endian two's complement
func beInt(data []byte) int {
	v := beUint(data)
	if len(data) > 0 && data[0]&0x80 != 0 {
		v -= 1 << uint(8*len(data))
	}
	return v
}
