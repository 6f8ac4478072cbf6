// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// readContextMap reads a context map of the given length mapping each of
// numCtxs context IDs to one of numTrees Huffman trees, per RFC section 7.3.
//
// The encoding is a prefix code over the alphabet [0, numTrees+RLEMAX),
// where symbol 0 denotes a single non-repeated zero, symbols in [1, RLEMAX]
// denote a run of zeros whose length is (1 << sym) plus sym extra bits, and
// symbols above RLEMAX denote the tree index (sym - RLEMAX). A trailing flag
// bit, if set, indicates the decoded values still need an inverse
// move-to-front transform applied.
func readContextMap(br *bitReader, numCtxs, numTrees uint) []uint8 {
	cmap := make([]uint8, numCtxs)
	if numTrees < 2 {
		return cmap // All contexts implicitly use tree zero
	}

	rleMax := br.ReadSymbol(&decMaxRLE)
	pd := readPrefixCode(br, numTrees+rleMax)

	for i := uint(0); i < numCtxs; {
		sym := br.ReadSymbol(&pd)
		switch {
		case sym == 0:
			cmap[i] = 0
			i++
		case sym <= rleMax:
			run := br.ReadOffset(sym-1, maxRLERanges)
			if i+run > numCtxs {
				panic(ErrCorrupt)
			}
			for ; run > 0; run-- {
				cmap[i] = 0
				i++
			}
		default:
			cmap[i] = uint8(sym - rleMax)
			i++
		}
	}

	if br.ReadBits(1) == 1 {
		invMoveToFront(cmap)
	}
	return cmap
}

// invMoveToFront applies the inverse move-to-front transform to a context
// map in place, per RFC section 7.3.
func invMoveToFront(cmap []uint8) {
	var mtf [256]uint8
	copy(mtf[:], mtfLUT[:])
	for i, v := range cmap {
		idx := int(v)
		val := mtf[idx]
		copy(mtf[1:idx+1], mtf[:idx])
		mtf[0] = val
		cmap[i] = val
	}
}
