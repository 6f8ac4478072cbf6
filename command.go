// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// RFC section 5.
// cmdRowLUT gives, for each of the 11 rows of the insert-and-copy length
// alphabet, the base insert-length-code and copy-length-code added to the
// 6-bit row-relative remainder of the symbol. The first two rows repeat at
// rows two and three; only symbols in the first two rows imply a reuse of
// the previous distance.
var cmdRowLUT = [11][2]uint{
	{0, 0}, {0, 8}, {0, 0}, {0, 8}, {8, 0}, {8, 8},
	{0, 16}, {16, 0}, {8, 16}, {16, 8}, {16, 16},
}

// splitCommandSymbol decomposes an insert-and-copy length symbol into an
// insert-length code and a copy-length code (each an index into
// insLenRanges/cpyLenRanges), along with whether the command reuses the last
// distance implicitly rather than reading a distance code of its own.
func splitCommandSymbol(sym uint) (insCode, cpyCode uint, distZero bool) {
	row := sym >> 6
	sub := sym & 63
	base := cmdRowLUT[row]
	insCode = base[0] + sub>>3
	cpyCode = base[1] + sub&7
	distZero = sym < 128
	return insCode, cpyCode, distZero
}
