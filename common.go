// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package brotli implements a decoder for the Brotli compressed data format,
// as described in RFC 7932. It implements the decompression engine only;
// the encoder and any outer framing (CLI, file I/O) are not provided here.
package brotli

var (
	reverseLUT [256]uint8

	// mtfLUT is the identity permutation, used to reset the inverse
	// move-to-front state when decoding a context map (RFC section 7.3).
	mtfLUT [256]uint8
)

func initLUTs() {
	initCommonLUTs()
	initPrefixLUTs()
	initDictLUTs()
}

func init() { initLUTs() }

func initCommonLUTs() {
	for i := range reverseLUT {
		b := uint8(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		reverseLUT[i] = b
		mtfLUT[i] = uint8(i)
	}
}

// reverseUint16 reverses all 16 bits of v.
func reverseUint16(v uint16) uint16 {
	return uint16(reverseLUT[byte(v)])<<8 | uint16(reverseLUT[byte(v>>8)])
}

// reverseBits reverses the lower n bits of v.
func reverseBits(v uint16, n uint) uint16 {
	return reverseUint16(v << (16 - n))
}

// bitWidth reports the number of bits needed to hold values in [0, n].
func bitWidth(n uint) uint {
	var nb uint
	for 1<<nb <= n {
		nb++
	}
	return nb
}

// extendUint8s returns a slice with length n, reusing s if possible.
func extendUint8s(s []uint8, n int) []uint8 {
	if cap(s) >= n {
		return s[:n]
	}
	return append(s[:cap(s)], make([]uint8, n-cap(s))...)
}

// extendPrefixDecoders returns a slice with length n, reusing s if possible.
func extendPrefixDecoders(s []prefixDecoder, n int) []prefixDecoder {
	if cap(s) >= n {
		return s[:n]
	}
	return append(s[:cap(s)], make([]prefixDecoder, n-cap(s))...)
}
