// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestReverseBits(t *testing.T) {
	var vectors = []struct {
		input  uint16
		length uint
		output uint16
	}{
		{0x0000, 1, 0x0000},
		{0x0001, 1, 0x0001},
		{0x0001, 4, 0x0008},
		{0x0003, 2, 0x0003},
		{0x000b, 4, 0x000d},
		{0x052f, 11, 0x07a5},
		{0xffff, 16, 0xffff},
	}

	for i, v := range vectors {
		if got := reverseBits(v.input, v.length); got != v.output {
			t.Errorf("test %d: reverseBits(%#04x, %d): got %#04x, want %#04x",
				i, v.input, v.length, got, v.output)
		}
	}
}

func TestBitWidth(t *testing.T) {
	var vectors = []struct {
		input  uint
		output uint
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {255, 8}, {256, 9}, {703, 10},
	}

	for i, v := range vectors {
		if got := bitWidth(v.input); got != v.output {
			t.Errorf("test %d: bitWidth(%d): got %d, want %d", i, v.input, got, v.output)
		}
	}
}

// This package relies on dynamic generation of LUTs to reduce the static
// binary size. This benchmark attempts to measure the startup cost of init.
// This benchmark is not thread-safe; so do not run it in parallel with other
// tests or benchmarks!
func BenchmarkInit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		initLUTs()
	}
}
