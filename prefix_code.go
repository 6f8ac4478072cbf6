// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "sort"

// readPrefixCode reads one prefix code tree for an alphabet of the given
// size from the bitstream, per RFC sections 3.4 and 3.5.
//
// The first 2 bits read select the encoding: a value of 1 indicates a
// simple prefix code (a literal enumeration of up to 4 symbols); any other
// value is the HSKIP parameter of a complex prefix code.
func readPrefixCode(br *bitReader, alphabetSize uint) prefixDecoder {
	typ := br.ReadBits(2)
	if typ == 1 {
		return readSimplePrefixCode(br, alphabetSize)
	}
	return readComplexPrefixCode(br, alphabetSize, typ)
}

// readSimplePrefixCode reads a simple prefix code (RFC section 3.4): a
// literal enumeration of 1 to 4 symbols, together with a fixed assignment of
// code lengths depending on the symbol count. The lengths are assigned to
// the symbols in the order they appear in the stream, not in symbol order.
func readSimplePrefixCode(br *bitReader, alphabetSize uint) prefixDecoder {
	nsym := uint(br.ReadBits(2)) + 1
	nb := bitWidth(alphabetSize - 1)

	var lens []uint
	switch nsym {
	case 1:
		lens = simpleLens1[:]
	case 2:
		lens = simpleLens2[:]
	case 3:
		lens = simpleLens3[:]
	case 4:
		lens = simpleLens4a[:]
	}

	codes := make([]prefixCode, nsym)
	for i := range codes {
		v := uint(br.ReadBits(nb))
		if v >= alphabetSize {
			panic(ErrMalformedCode)
		}
		codes[i] = prefixCode{sym: uint16(v)}
	}
	if nsym == 4 && br.ReadBits(1) == 1 {
		lens = simpleLens4b[:]
	}
	for i := range codes {
		codes[i].len = uint8(lens[i])
	}

	sort.Slice(codes, func(i, j int) bool { return codes[i].sym < codes[j].sym })
	for i := 1; i < len(codes); i++ {
		if codes[i].sym == codes[i-1].sym {
			panic(ErrMalformedCode)
		}
	}

	var pd prefixDecoder
	pd.Init(codes, true)
	return pd
}

// readComplexPrefixCode reads a complex prefix code (RFC section 3.5): the
// tree structure is described indirectly by a sequence of code lengths for
// the target alphabet, which are themselves read using an auxiliary prefix
// code over the 18-symbol code-length alphabet.
//
// hskip leading entries of the code-length-of-code-length table are treated
// as having length zero without consuming any bits.
func readComplexPrefixCode(br *bitReader, alphabetSize, hskip uint) prefixDecoder {
	var codes []prefixCode
	space := 32 // Kraft budget for codes of up to 5 bits
	for i := hskip; i < uint(len(complexLens)) && space > 0; i++ {
		cl := br.ReadSymbol(&decCLens)
		if cl == 0 {
			continue
		}
		codes = append(codes, prefixCode{sym: uint16(complexLens[i]), len: uint8(cl)})
		space -= 32 >> cl
	}
	if space < 0 || len(codes) == 0 {
		panic(ErrMalformedCode)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].sym < codes[j].sym })

	var level1 prefixDecoder
	level1.Init(codes, true)

	lens := readSymbolLengths(br, &level1, alphabetSize)

	symCodes := make([]prefixCode, 0, alphabetSize)
	for sym, l := range lens {
		if l > 0 {
			symCodes = append(symCodes, prefixCode{sym: uint16(sym), len: uint8(l)})
		}
	}
	var pd prefixDecoder
	pd.Init(symCodes, true)
	return pd
}

// readSymbolLengths decodes up to numSyms code lengths using the level1
// prefix tree over the code-length alphabet {0..15, 16, 17}, where 16
// repeats the previous non-zero length and 17 appends a run of zeros, per
// RFC section 3.5. Consecutive repeat codes of the same kind accumulate
// their repeat counts instead of restarting, so long runs stay compact.
//
// Reading stops as soon as the lengths form a complete code; any remaining
// symbols implicitly have length zero. An over- or under-subscribed set of
// lengths is rejected.
func readSymbolLengths(br *bitReader, level1 *prefixDecoder, numSyms uint) []uint {
	const maxSpace = 1 << 15 // Kraft budget for codes of up to 15 bits

	lens := make([]uint, numSyms)
	var sym uint
	var prevLen uint = 8
	var repeatLen uint
	var repeat uint
	space := maxSpace

	for sym < numSyms && space > 0 {
		cl := br.ReadSymbol(level1)
		if cl < 16 {
			repeat = 0
			lens[sym] = cl
			sym++
			if cl != 0 {
				prevLen = cl
				space -= maxSpace >> cl
			}
			continue
		}

		extra := cl - 14 // 2 for symbol 16, 3 for symbol 17
		var newLen uint
		if cl == 16 {
			newLen = prevLen
		}
		if repeatLen != newLen {
			repeat = 0
			repeatLen = newLen
		}

		old := repeat
		if repeat > 0 {
			repeat = (repeat - 2) << extra
		}
		repeat += br.ReadBits(extra) + 3
		delta := repeat - old
		if sym+delta > numSyms {
			panic(ErrMalformedCode)
		}
		for i := uint(0); i < delta; i++ {
			lens[sym] = repeatLen
			sym++
		}
		if repeatLen != 0 {
			space -= int(delta) * (maxSpace >> repeatLen)
		}
	}
	if space != 0 {
		panic(ErrMalformedCode)
	}
	return lens
}
