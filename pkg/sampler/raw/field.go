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

//
type FieldType int

const (
	Int FieldType = iota
	SignedInt
	Multi
	ASCII
	Raw
	Dummy
)

//
func (t FieldType) String() string {

	switch t {

	case Int:
		return "int"

	case SignedInt:
		return "signed int"

	case Multi:
		return "multi"

	case ASCII:
		return "ascii"

	case Raw:
		return "raw"

	case Dummy:
		return "dummy"

	default:
		return "<unknown>"
	}
}

// Field describes one parameter slot within a block layout.
type Field struct {
	Name string
	Type FieldType
	Size int
}

// Layout is the ordered field list of a parameter block. Fields are decoded
// strictly in order, so the layout doubles as the authoritative byte offset
// map for the block.
type Layout []Field

// Size returns the total number of bytes the layout covers.
func (l Layout) Size() int {
	size := 0
	for _, f := range l {
		size += f.Size
	}
	return size
}

// Offset returns the byte offset of the named field within the layout,
// -1 when the layout has no such field.
func (l Layout) Offset(name string) int {
	off := 0
	for _, f := range l {
		if f.Name == name && f.Type != Dummy {
			return off
		}
		off += f.Size
	}
	return -1
}
