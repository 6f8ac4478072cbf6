// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "bytes"
import "encoding/hex"
import "testing"

import "github.com/google/go-cmp/cmp"

func TestReadContextMap(t *testing.T) {
	var vectors = []struct {
		desc     string  // Description of the test
		input    string  // Test input string in hex
		numCtxs  uint    // Number of contexts in the map
		numTrees uint    // Number of trees mapped to
		output   []uint8 // Expected context map
	}{{
		desc:     "single tree consumes no bits at all",
		input:    "",
		numCtxs:  64,
		numTrees: 1,
		output:   make([]uint8, 64),
	}, {
		desc:     "run-length coded zeros with inverse move-to-front",
		input:    "af2a81ffffffff",
		numCtxs:  64,
		numTrees: 2,
		output: append(
			make([]uint8, 32),
			bytes.Repeat([]byte{1, 0}, 16)...,
		),
	}}

	for i, v := range vectors {
		var cmap []uint8
		var err error
		func() {
			defer errRecover(&err)
			data, _ := hex.DecodeString(v.input)
			var rd bitReader
			rd.Init(bytes.NewReader(data))
			cmap = readContextMap(&rd, v.numCtxs, v.numTrees)
		}()

		if err != nil {
			t.Errorf("test %d (%q): unexpected error: %v", i, v.desc, err)
			continue
		}
		if diff := cmp.Diff(v.output, cmap); diff != "" {
			t.Errorf("test %d (%q): mismatching context map (-want +got):\n%s", i, v.desc, diff)
		}
	}
}

func TestInvMoveToFront(t *testing.T) {
	var vectors = []struct {
		input  []uint8
		output []uint8
	}{
		{[]uint8{0, 0, 0, 0}, []uint8{0, 0, 0, 0}},
		{[]uint8{1, 1, 2, 2, 0}, []uint8{1, 0, 2, 1, 1}},
		{[]uint8{3, 0, 1, 1}, []uint8{3, 3, 0, 3}},
	}

	for i, v := range vectors {
		cmap := append([]uint8(nil), v.input...)
		invMoveToFront(cmap)
		if diff := cmp.Diff(v.output, cmap); diff != "" {
			t.Errorf("test %d: mismatching map (-want +got):\n%s", i, diff)
		}
	}
}
