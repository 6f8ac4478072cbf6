// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "bytes"
import "testing"

func TestBitReader(t *testing.T) {
	var rd bitReader
	rd.Init(bytes.NewReader([]byte{0xa5, 0x3c, 0x01, 0x02}))

	// Integers are assembled LSB-first across successive bits.
	if got := rd.ReadBits(4); got != 0x5 {
		t.Errorf("ReadBits(4): got %#x, want 0x5", got)
	}
	if got := rd.ReadBits(4); got != 0xa {
		t.Errorf("ReadBits(4): got %#x, want 0xa", got)
	}

	// Peeking must not consume any bits.
	if got := rd.PeekBits(8); got != 0x3c {
		t.Errorf("PeekBits(8): got %#x, want 0x3c", got)
	}
	if got := rd.ReadBits(8); got != 0x3c {
		t.Errorf("ReadBits(8): got %#x, want 0x3c", got)
	}

	// Aligned reads skip the bit buffer entirely when it is empty.
	var buf [2]byte
	rd.ReadBytesAligned(buf[:])
	if buf != [2]byte{0x01, 0x02} {
		t.Errorf("ReadBytesAligned: got %x, want 0102", buf)
	}
	if rd.offset != 4 {
		t.Errorf("offset: got %d, want 4", rd.offset)
	}
}

func TestBitReaderPads(t *testing.T) {
	var rd bitReader
	rd.Init(bytes.NewReader([]byte{0xa5}))

	if got := rd.ReadBits(3); got != 5 {
		t.Errorf("ReadBits(3): got %d, want 5", got)
	}
	if got := rd.ReadPads(); got != 20 {
		t.Errorf("ReadPads: got %d, want 20", got)
	}
	if rd.numBits != 0 {
		t.Errorf("numBits: got %d, want 0", rd.numBits)
	}
}

func TestBitReaderEOF(t *testing.T) {
	var rd bitReader
	rd.Init(bytes.NewReader([]byte{0xff}))

	var err error
	func() {
		defer errRecover(&err)
		rd.ReadBits(9)
	}()
	if err == nil {
		t.Errorf("ReadBits(9) on a single byte: expected an error")
	}
}
