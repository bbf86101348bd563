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

package pcm

import (
	"reflect"
	"testing"
)

//
func pcm16(samples ...int) []byte {
	ret := make([]byte, 0, 2*len(samples))
	for _, s := range samples {
		v := uint16(int16(s))
		ret = append(ret, byte(v), byte(v>>8))
	}
	return ret
}

//
func samplesOf(pcm []byte) []int {
	ret := make([]int, len(pcm)/2)
	for i := range ret {
		ret[i] = sampleAt(pcm, i)
	}
	return ret
}

//
func TestResampleIdentity(t *testing.T) {

	in := pcm16(1, -2, 3)

	out := Resample(in, OutRate)
	if !reflect.DeepEqual(out, in) {
		t.Errorf("input at output rate was changed: % x", out)
	}

	if out := Resample(nil, 30000); len(out) != 0 {
		t.Errorf("empty input yielded %d bytes", len(out))
	}
}

//
func TestResampleLength(t *testing.T) {

	tests := []struct {
		name string
		n    int
		rate int
		want int
	}{
		{"segment at 30 kHz", 12288, 30000, 18063},
		{"segment at 15 kHz", 12288, 15000, 36126},
		{"single sample", 1, 15000, 2},
		{"empty", 0, 30000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resample(make([]byte, 2*tt.n), tt.rate)
			if len(out)/2 != tt.want {
				t.Errorf("got %d samples, want %d", len(out)/2, tt.want)
			}
		})
	}
}

//
func TestResampleInterpolation(t *testing.T) {

	tests := []struct {
		name string
		in   []byte
		rate int
		want []int
	}{
		{
			name: "rising pair",
			in:   pcm16(0, 1000),
			rate: 30000,
			want: []int{0, 0 + 1000*30000/44100},
		},
		{
			name: "negative to positive",
			in:   pcm16(-1000, 1000),
			rate: 30000,
			want: []int{-1000, -1000 + 2000*30000/44100},
		},
		{
			name: "last sample repeats past the end",
			in:   pcm16(1000),
			rate: 15000,
			want: []int{1000, 1000},
		},
		{
			name: "flat run stays flat",
			in:   pcm16(-700, -700, -700),
			rate: 15000,
			want: []int{-700, -700, -700, -700, -700, -700, -700, -700},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := samplesOf(Resample(tt.in, tt.rate))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
