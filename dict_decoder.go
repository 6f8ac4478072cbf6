// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// RFC section 4 and section 8.
// dictDecoder is the combination of the sliding window (for in-window
// back-references), the 4-entry ring of recently used distances (for the
// short distance codes of RFC section 4), and the static dictionary plus
// word transform fallback used for out-of-window references.
//
// The sliding window itself follows the same buffered ring design used by
// flate's decoder: history accumulates in hist until it fills up, at which
// point the reader must flush what's ready and continue.
type dictDecoder struct {
	hist  []byte // Sliding window history
	wrPos int    // Current write position within hist
	rdPos int    // Current read position within hist (for ReadFlush)
	full  bool   // Whether hist has been completely filled at least once

	pos   int64   // Total number of bytes emitted so far
	dists [4]uint // Most recently used distances, dists[0] is most recent
	p1    byte    // Last emitted byte
	p2    byte    // Second-to-last emitted byte

	xformBuf [maxWordSize]byte // Scratch space for dictionary transforms
}

func (dd *dictDecoder) Init(wbits uint) {
	size := int(1<<wbits) - 16
	if cap(dd.hist) < size {
		dd.hist = make([]byte, size)
	}
	dd.hist = dd.hist[:size]
	dd.wrPos, dd.rdPos, dd.full = 0, 0, false
	dd.pos = 0
	dd.dists = [4]uint{4, 11, 15, 16} // RFC section 4 initial distances
	dd.p1, dd.p2 = 0, 0
}

// HistSize reports the number of bytes that can currently be referenced by a
// back-reference distance.
func (dd *dictDecoder) HistSize() int {
	if dd.full {
		return len(dd.hist)
	}
	return dd.wrPos
}

// AvailSize reports the number of bytes of free space left in hist before a
// flush is required.
func (dd *dictDecoder) AvailSize() int { return len(dd.hist) - dd.wrPos }

// LastBytes returns the two most recently emitted bytes, used to select a
// literal context ID (RFC section 7.1).
func (dd *dictDecoder) LastBytes() (p1, p2 byte) { return dd.p1, dd.p2 }

// WriteByte appends a single decoded literal byte to the window.
func (dd *dictDecoder) WriteByte(b byte) {
	dd.hist[dd.wrPos] = b
	dd.wrPos++
	dd.pos++
	dd.p2, dd.p1 = dd.p1, b
}

// shortCodeRingIdx and shortCodeValueOffset implement the 16 short distance
// codes of RFC section 4: codes 0-3 reuse one of the last four distances
// verbatim, while codes 4-15 perturb the most recent two distances by a
// small delta.
var (
	shortCodeRingIdx     = [16]uint{0, 1, 2, 3, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}
	shortCodeValueOffset = [16]int{0, 0, 0, 0, -1, 1, -2, 2, -3, 3, -1, 1, -2, 2, -3, 3}
)

// ResolveDistance converts a decoded distance symbol into an actual distance
// value, per RFC section 4. ndirect and npostfix are the meta-block's
// NDIRECT and NPOSTFIX parameters.
func (dd *dictDecoder) ResolveDistance(br *bitReader, sym, ndirect, npostfix uint) uint {
	if sym < 16 {
		ring := int(dd.dists[shortCodeRingIdx[sym]]) + shortCodeValueOffset[sym]
		if ring <= 0 {
			panic(ErrInvalidDistance)
		}
		return uint(ring)
	}

	d := sym - 16
	if d < ndirect {
		return d + 1
	}
	d -= ndirect

	postfixMask := uint(1)<<npostfix - 1
	hcode := d >> npostfix
	lcode := d & postfixMask
	ndistbits := 1 + (hcode >> 1)
	offset := ((2 + (hcode & 1)) << ndistbits) - 4
	extra := br.ReadBits(ndistbits)
	return ((offset+extra)<<npostfix + lcode) + ndirect + 1
}

// PushDistance rotates a newly used distance into the last-distance ring.
func (dd *dictDecoder) PushDistance(dist uint) {
	dd.dists[3] = dd.dists[2]
	dd.dists[2] = dd.dists[1]
	dd.dists[1] = dd.dists[0]
	dd.dists[0] = dist
}

// WriteCopy executes an in-window back-reference copy of up to length bytes
// at the given distance, stopping early if hist fills up. It reports the
// number of bytes actually written; the caller must flush and retry for any
// remainder.
func (dd *dictDecoder) WriteCopy(dist, length int) int {
	dstBase := dd.wrPos
	dstPos := dstBase
	srcPos := dstPos - dist
	endPos := dstPos + length
	if endPos > len(dd.hist) {
		endPos = len(dd.hist)
	}

	if srcPos < 0 {
		srcPos += len(dd.hist)
		dstPos += copy(dd.hist[dstPos:endPos], dd.hist[srcPos:])
		srcPos = 0
	}
	for dstPos < endPos {
		dstPos += copy(dd.hist[dstPos:endPos], dd.hist[srcPos:dstPos])
	}

	for _, b := range dd.hist[dstBase:dstPos] {
		dd.p2, dd.p1 = dd.p1, b
	}
	dd.pos += int64(dstPos - dstBase)
	dd.wrPos = dstPos
	return dstPos - dstBase
}

// ResolveDictWord resolves an out-of-window distance against the static
// dictionary and one of the word transforms (RFC section 8), returning the
// transformed word. The copy length selects the word length; the returned
// slice may be shorter or longer than it and is only valid until the next
// call to ResolveDictWord.
func (dd *dictDecoder) ResolveDictWord(dist uint, cpyLen uint) []byte {
	maxDist := uint(dd.HistSize())
	if dist <= maxDist {
		panic(ErrInvalidDistance) // Should have been an in-window copy
	}
	adj := dist - maxDist - 1

	wordLen := cpyLen
	if wordLen < minDictLen || wordLen > maxDictLen {
		panic(ErrInvalidDictionaryRef)
	}
	nbits := dictBitSizes[wordLen]
	wordIdx := adj & (uint(1)<<nbits - 1)
	xformID := adj >> nbits
	if xformID >= uint(numTransforms) {
		panic(ErrInvalidDictionaryRef)
	}

	word := dictWord(wordLen, wordIdx)
	n := transformWord(dd.xformBuf[:], word, int(xformID))
	return dd.xformBuf[:n]
}

// WriteSlice returns the unused tail of hist. The caller may write directly
// into it (e.g. via an io.Reader) and must report what it wrote with
// WriteMark.
func (dd *dictDecoder) WriteSlice() []byte { return dd.hist[dd.wrPos:] }

// WriteMark advances the write position by cnt bytes, which the caller must
// have already populated via the slice returned by WriteSlice.
func (dd *dictDecoder) WriteMark(cnt int) {
	for _, b := range dd.hist[dd.wrPos : dd.wrPos+cnt] {
		dd.p2, dd.p1 = dd.p1, b
	}
	dd.pos += int64(cnt)
	dd.wrPos += cnt
}

// WriteRaw appends as many bytes of buf as fit in the remaining space of
// hist, reporting how many were written. The caller must flush and retry
// with the remainder if the full slice did not fit.
func (dd *dictDecoder) WriteRaw(buf []byte) int {
	w := len(buf)
	if avail := dd.AvailSize(); w > avail {
		w = avail
	}
	dstPos := dd.wrPos
	copy(dd.hist[dstPos:dstPos+w], buf[:w])
	for _, b := range dd.hist[dstPos : dstPos+w] {
		dd.p2, dd.p1 = dd.p1, b
	}
	dd.pos += int64(w)
	dd.wrPos += w
	return w
}

// ReadFlush returns any buffered output not yet handed to the caller,
// compacting hist if it has been completely filled.
func (dd *dictDecoder) ReadFlush() []byte {
	toRead := dd.hist[dd.rdPos:dd.wrPos]
	dd.rdPos = dd.wrPos
	if dd.wrPos == len(dd.hist) {
		dd.wrPos, dd.rdPos = 0, 0
		dd.full = true
	}
	return toRead
}
