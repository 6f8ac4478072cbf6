// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// RFC section 6.
// blockSwitcher tracks the current block type and remaining run length for
// one of the three independent block streams (literal, insert-and-copy, or
// distance). Each stream keeps a 2-entry history of block types so that the
// "block-switch" codes can address either the second-to-last type or the
// type following the last one (modulo NBLTYPES).
type blockSwitcher struct {
	numTypes uint    // NBLTYPES for this stream
	types    [2]uint // types[0] is second-to-last, types[1] is last used
	curType  uint    // Type of the block currently being read
	curLen   uint    // Number of symbols remaining in the current block
	codes    prefixDecoder
	lens     prefixDecoder
}

// Init reads the switcher's setup from the meta-block header (RFC section
// 9.2): the block-type and block-count prefix codes, followed by the first
// block's length. The first block's type is always 0 and consumes no bits.
// If numTypes == 1, the stream has no switch codes at all and the block is
// effectively of infinite length.
func (bs *blockSwitcher) Init(br *bitReader, numTypes uint) {
	*bs = blockSwitcher{numTypes: numTypes}
	if numTypes <= 1 {
		bs.curLen = 1 << 28 // Block length always exceeds MLEN
		return
	}

	bs.codes = readPrefixCode(br, numTypes+2)
	bs.lens = readPrefixCode(br, numBlkCntSyms)
	bs.types = [2]uint{1, 0} // Second-to-last is 1, last is the current type 0

	lenSym := br.ReadSymbol(&bs.lens)
	bs.curLen = br.ReadOffset(lenSym, blkLenRanges)
}

// NextType decodes the next block-switch code (a type symbol followed by a
// length symbol) and advances the 2-entry type history.
func (bs *blockSwitcher) NextType(br *bitReader) {
	sym := br.ReadSymbol(&bs.codes)
	var typ uint
	switch {
	case sym == 0:
		typ = bs.types[0]
	case sym == 1:
		typ = (bs.types[1] + 1) % bs.numTypes
	default:
		typ = sym - 2
	}
	if typ >= bs.numTypes {
		panic(ErrInvalidBlockSwitch)
	}

	lenSym := br.ReadSymbol(&bs.lens)
	length := br.ReadOffset(lenSym, blkLenRanges)

	bs.types[0] = bs.types[1]
	bs.types[1] = typ
	bs.curType = typ
	bs.curLen = length
}

// Advance consumes one symbol from the current block, switching to a new
// block type if necessary. It reports the block type to use for the symbol
// just consumed.
func (bs *blockSwitcher) Advance(br *bitReader) uint {
	if bs.curLen == 0 {
		bs.NextType(br)
	}
	bs.curLen--
	return bs.curType
}
