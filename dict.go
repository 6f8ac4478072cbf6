// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "encoding/base64"

// RFC section 8.
// Back-references whose distance exceeds the available sliding-window
// history address the static dictionary: the copy length selects a word
// length, the low bits of the address select a word of that length, and the
// high bits select one of the transforms in transformLUT.
const (
	minDictLen = 4
	maxDictLen = 24

	numTransforms = len(transformLUT)
)

// RFC Appendix A.
// dictBitSizes[n] is the size, in bits, of a word index for words of
// length n; there are 1<<dictBitSizes[n] words of each length.
var dictBitSizes = [maxDictLen + 1]uint{
	4: 10, 5: 10, 6: 11, 7: 11, 8: 10, 9: 10, 10: 10, 11: 10, 12: 10,
	13: 9, 14: 9, 15: 8, 16: 7, 17: 7, 18: 8, 19: 7, 20: 7, 21: 6,
	22: 6, 23: 5, 24: 5,
}

var (
	// dictLUT is the static dictionary of RFC Appendix A, with all words of
	// equal length stored back-to-back, ordered by increasing length.
	dictLUT []byte

	// dictOffsets[n] is the byte offset in dictLUT of the first word of
	// length n.
	dictOffsets [maxDictLen + 2]uint32
)

func initDictLUTs() {
	var err error
	dictLUT, err = base64.StdEncoding.DecodeString(dictData)
	if err != nil {
		panic("brotli: corrupted static dictionary data")
	}

	var offset uint32
	for n := minDictLen; n <= maxDictLen; n++ {
		dictOffsets[n] = offset
		offset += uint32(n) << dictBitSizes[n]
	}
	dictOffsets[maxDictLen+1] = offset
	if int(offset) != len(dictLUT) {
		panic("brotli: mismatching static dictionary size")
	}
}

// dictWord returns the dictionary word of the given length at the given
// per-length index. The caller must validate both values.
func dictWord(wordLen, idx uint) []byte {
	pos := uint(dictOffsets[wordLen]) + idx*wordLen
	return dictLUT[pos : pos+wordLen]
}
