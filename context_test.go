// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestLitContextID(t *testing.T) {
	var vectors = []struct {
		mode   uint // Context mode to test
		p1, p2 byte // Previous two output bytes
		ctx    uint // Expected context ID
	}{
		{contextLSB6, 0xff, 0x00, 0x3f},
		{contextLSB6, 0x41, 0xff, 0x01},
		{contextMSB6, 0xff, 0x00, 0x3f},
		{contextMSB6, 0x07, 0xff, 0x01},

		// The UTF8 mode distinguishes letters, digits, punctuation, and
		// multi-byte sequences of the previous two bytes.
		{contextUTF8, 'e', ' ', 56},
		{contextUTF8, 'A', 'a', 51},
		{contextUTF8, ' ', '.', 9},
		{contextUTF8, 0xc3, 0xa9, 3},
		{contextUTF8, '1', ' ', 44},
		{contextUTF8, '.', 'e', 39},

		// The Signed mode buckets each byte by magnitude.
		{contextSigned, 0x00, 0xff, 7},
		{contextSigned, 0x10, 0x80, 20},
		{contextSigned, 0x7f, 0x01, 25},
	}

	for i, v := range vectors {
		if ctx := litContextID(v.mode, v.p1, v.p2); ctx != v.ctx {
			t.Errorf("test %d: litContextID(%d, %#02x, %#02x): got %d, want %d",
				i, v.mode, v.p1, v.p2, ctx, v.ctx)
		}
	}
}

func TestDistContextID(t *testing.T) {
	var vectors = []struct {
		cpyLen uint
		ctx    uint
	}{
		{2, 0}, {3, 1}, {4, 2}, {5, 3}, {100, 3},
	}

	for i, v := range vectors {
		if ctx := distContextID(v.cpyLen); ctx != v.ctx {
			t.Errorf("test %d: distContextID(%d): got %d, want %d", i, v.cpyLen, ctx, v.ctx)
		}
	}
}
