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

// Params holds the decoded values of one parameter block, keyed by field
// name. The typed getters are tolerant and return zero values for missing
// keys; use Lookup to distinguish absent from zero.
type Params map[string]interface{}

//
func (p Params) Lookup(key string) (interface{}, bool) {
	v, ok := p[key]
	return v, ok
}

//
func (p Params) Int(key string) int {
	if v, ok := p[key].(int); ok {
		return v
	}
	return 0
}

//
func (p Params) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

//
func (p Params) Tuple(key string) []int {
	if v, ok := p[key].([]int); ok {
		return v
	}
	return nil
}

//
func (p Params) Bytes(key string) []byte {
	if v, ok := p[key].([]byte); ok {
		return v
	}
	return nil
}
