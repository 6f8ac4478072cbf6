// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "bytes"
import "encoding/hex"
import "testing"

// decodePrefixCode reads a prefix code for the given alphabet from the input
// and then decodes cnt symbols with it, converting any panic raised along
// the way into an error.
func decodePrefixCode(input string, alphabetSize, cnt uint) (syms []uint, err error) {
	defer errRecover(&err)
	data, _ := hex.DecodeString(input)

	var rd bitReader
	rd.Init(bytes.NewReader(data))
	pd := readPrefixCode(&rd, alphabetSize)
	for i := uint(0); i < cnt; i++ {
		syms = append(syms, rd.ReadSymbol(&pd))
	}
	return syms, nil
}

func TestReadPrefixCode(t *testing.T) {
	var vectors = []struct {
		desc  string // Description of the test
		input string // Test input string in hex
		size  uint   // Alphabet size
		syms  []uint // Expected symbols, decoded in order
		err   error  // Expected error
	}{{
		desc:  "simple code with one symbol, needing no bits per symbol",
		input: "8107",
		size:  256,
		syms:  []uint{120, 120, 120},
	}, {
		desc:  "simple code with three symbols listed out of order",
		input: "893c70a001",
		size:  256,
		syms:  []uint{200, 3, 7},
	}, {
		desc:  "simple code with four symbols and the skewed tree shape",
		input: "ad40e181523b",
		size:  256,
		syms:  []uint{10, 20, 30, 40},
	}, {
		desc:  "complex code over eight symbols of equal length",
		input: "c03136d606000f",
		size:  256,
		syms:  []uint{97, 98, 104},
	}, {
		desc:  "simple code listing the same symbol twice",
		input: "151606",
		size:  256,
		err:   ErrMalformedCode,
	}, {
		desc:  "complex code with over-subscribed code lengths",
		input: "70f707",
		size:  256,
		err:   ErrMalformedCode,
	}, {
		desc:  "complex code with under-subscribed code lengths",
		input: "c03166ed09",
		size:  256,
		err:   ErrMalformedCode,
	}}

	for i, v := range vectors {
		syms, err := decodePrefixCode(v.input, v.size, uint(len(v.syms)))

		if err != v.err {
			t.Errorf("test %d (%q): got %v, want %v", i, v.desc, err, v.err)
			continue
		}
		if err != nil {
			continue
		}
		for j := range v.syms {
			if syms[j] != v.syms[j] {
				t.Errorf("test %d (%q): symbol %d: got %d, want %d",
					i, v.desc, j, syms[j], v.syms[j])
			}
		}
	}
}

func TestStaticCodes(t *testing.T) {
	// Every statically defined prefix codec must survive a round of Init;
	// any inconsistency in the tables panics at init time, so all that is
	// left to check here is that each decoder is usable.
	for _, pd := range []*prefixDecoder{&decCLens, &decMaxRLE, &decWinBits, &decCounts} {
		if len(pd.chunks) == 0 {
			t.Errorf("static prefix decoder is uninitialized")
		}
	}

	// The WBITS code maps the single-bit code "0" to 16 (RFC section 9.1).
	var rd bitReader
	rd.Init(bytes.NewReader([]byte{0x00}))
	if sym := rd.ReadSymbol(&decWinBits); sym != 16 {
		t.Errorf("WBITS code \"0\": got %d, want 16", sym)
	}

	// The counts code maps the single-bit code "0" to 1 (RFC section 9.2).
	rd.Init(bytes.NewReader([]byte{0x00}))
	if sym := rd.ReadSymbol(&decCounts); sym != 1 {
		t.Errorf("counts code \"0\": got %d, want 1", sym)
	}
}
