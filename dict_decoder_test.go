// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "bytes"
import "testing"

import "github.com/google/go-cmp/cmp"

func TestWriteCopy(t *testing.T) {
	var dd dictDecoder
	dd.Init(10)

	if cnt := dd.WriteRaw([]byte("abc")); cnt != 3 {
		t.Fatalf("WriteRaw: got %d, want 3", cnt)
	}
	if cnt := dd.WriteCopy(3, 6); cnt != 6 {
		t.Fatalf("WriteCopy: got %d, want 6", cnt)
	}
	if got := string(dd.ReadFlush()); got != "abcabcabc" {
		t.Fatalf("ReadFlush: got %q, want %q", got, "abcabcabc")
	}
	if p1, p2 := dd.LastBytes(); p1 != 'c' || p2 != 'b' {
		t.Fatalf("LastBytes: got (%q, %q), want ('c', 'b')", p1, p2)
	}

	// An overlapping copy repeats the most recent byte.
	dd.WriteByte('z')
	if cnt := dd.WriteCopy(1, 5); cnt != 5 {
		t.Fatalf("WriteCopy: got %d, want 5", cnt)
	}
	if got := string(dd.ReadFlush()); got != "zzzzzz" {
		t.Fatalf("ReadFlush: got %q, want %q", got, "zzzzzz")
	}
	if dd.pos != 15 {
		t.Fatalf("position: got %d, want 15", dd.pos)
	}
}

func TestResolveDistance(t *testing.T) {
	var dd dictDecoder
	dd.Init(16)
	dd.dists = [4]uint{10, 20, 30, 40}

	// Short codes resolve against the ring without consuming any bits.
	var rd bitReader
	rd.Init(bytes.NewReader(nil))
	var shortCodes = []struct {
		sym  uint
		dist uint
	}{
		{0, 10}, {1, 20}, {2, 30}, {3, 40},
		{4, 9}, {5, 11}, {8, 7}, {9, 13},
		{10, 19}, {11, 21}, {14, 17}, {15, 23},
	}
	for _, v := range shortCodes {
		if dist := dd.ResolveDistance(&rd, v.sym, 0, 0); dist != v.dist {
			t.Errorf("ResolveDistance(%d): got %d, want %d", v.sym, dist, v.dist)
		}
	}

	// Direct codes below NDIRECT map one-to-one.
	for d := uint(0); d < 5; d++ {
		if dist := dd.ResolveDistance(&rd, 16+d, 5, 0); dist != d+1 {
			t.Errorf("direct code %d: got %d, want %d", 16+d, dist, d+1)
		}
	}

	// Long codes read extra bits; symbol 18 with two zero bits encodes
	// distance 5 when NPOSTFIX and NDIRECT are both zero.
	rd.Init(bytes.NewReader([]byte{0x00}))
	if dist := dd.ResolveDistance(&rd, 18, 0, 0); dist != 5 {
		t.Errorf("long code 18: got %d, want 5", dist)
	}

	dd.PushDistance(50)
	if diff := cmp.Diff([4]uint{50, 10, 20, 30}, dd.dists); diff != "" {
		t.Errorf("mismatching ring (-want +got):\n%s", diff)
	}
}

func TestResolveDictWord(t *testing.T) {
	var dd dictDecoder
	dd.Init(10) // Empty window, so every distance hits the dictionary

	var vectors = []struct {
		dist   uint
		cpyLen uint
		word   string
	}{
		{1, 4, "time"},
		{2, 4, "down"},
		{3, 4, "life"},
		{1, 5, "first"},
		{1 + 1<<10, 4, "time "},     // Transform 1: identity plus a space
		{1 + 9<<10, 4, "Time"},      // Transform 9: uppercase the first letter
		{1 + 73<<10, 4, " the time of the "}, // Transform 73: sentence infix
	}
	for i, v := range vectors {
		if got := string(dd.ResolveDictWord(v.dist, v.cpyLen)); got != v.word {
			t.Errorf("test %d: ResolveDictWord(%d, %d): got %q, want %q",
				i, v.dist, v.cpyLen, got, v.word)
		}
	}

	var errVectors = []struct {
		dist   uint
		cpyLen uint
		err    error
	}{
		{1, 3, ErrInvalidDictionaryRef},        // Below the shortest word length
		{1, 25, ErrInvalidDictionaryRef},       // Above the longest word length
		{1 + 121<<10, 4, ErrInvalidDictionaryRef}, // Transform out of range
	}
	for i, v := range errVectors {
		var err error
		func() {
			defer errRecover(&err)
			dd.ResolveDictWord(v.dist, v.cpyLen)
		}()
		if err != v.err {
			t.Errorf("test %d: ResolveDictWord(%d, %d): got %v, want %v",
				i, v.dist, v.cpyLen, err, v.err)
		}
	}
}

func TestTransformWord(t *testing.T) {
	var vectors = []struct {
		id     int
		input  string
		output string
	}{
		{0, "time", "time"},
		{3, "time", "ime"},   // Omit the first byte
		{12, "time", "tim"},  // Omit the last byte
		{4, "time", "Time "}, // Uppercase first, then append a space
		{44, "time", "TIME"}, // Uppercase all
		{73, "time", " the time of the "},
		{44, "\xc3\xa9ab", "\xc3\x89AB"}, // Uppercasing multi-byte sequences
		{11, "ab", ""},                   // Omitting as many bytes as the word has
	}

	var buf [maxWordSize]byte
	for i, v := range vectors {
		cnt := transformWord(buf[:], []byte(v.input), v.id)
		if got := string(buf[:cnt]); got != v.output {
			t.Errorf("test %d: transformWord(%q, %d): got %q, want %q",
				i, v.input, v.id, got, v.output)
		}
	}
}

func TestDictWords(t *testing.T) {
	// The dictionary must hold exactly 1<<dictBitSizes[n] words per length.
	if got := len(dictLUT); got != 122784 {
		t.Fatalf("dictionary size: got %d, want 122784", got)
	}
	if got := string(dictWord(24, 0)); got != `<script type="text/javas` {
		t.Errorf("dictWord(24, 0): got %q", got)
	}
	if got := string(dictWord(4, 1023)); len(got) != 4 {
		t.Errorf("dictWord(4, 1023): got %d bytes, want 4", len(got))
	}
}
