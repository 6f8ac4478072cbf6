// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "io"

// Reader implements the Brotli decompression engine of RFC 7932. It drives
// a bitReader through the stream header, each meta-block header, and the
// insert-and-copy command loop, feeding decoded bytes into a dictDecoder
// that owns the sliding window and the last-distance ring.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     bitReader // Input source
	step   func(*Reader)
	toRead []byte // Uncompressed data ready to be emitted from Read
	blkLen int    // Uncompressed bytes left to produce in the current meta-block
	last   bool   // Last meta-block bit detected
	err    error  // Persistent error

	dd dictDecoder // Sliding window, last-distance ring, and dictionary fallback

	// Per-meta-block tables (RFC section 9.2). These are rebuilt for every
	// compressed meta-block and hold no state across meta-block boundaries.
	bsL, bsI, bsD          blockSwitcher
	ctxModes               []uint8 // Literal context mode, one per literal block type
	cmapL, cmapD           []uint8
	treesL, treesI, treesD []prefixDecoder
	npostfix, ndirect      uint

	// Command-loop resumption state. The loop can only pause between whole
	// bytes of output, never mid bit-read, so these fields capture exactly
	// enough to resume a partially emitted command after a buffer flush.
	cmdState     int
	litLeft      int    // Insert-length literals still to emit for the current command
	pendCpyLen   int    // Copy length decoded for the current command
	pendDistZero bool   // Whether the current command reuses the last distance
	copyLeft     int    // Bytes still to copy for the current command
	copyDist     uint   // In-window copy distance (0 when sourcing from dictBuf)
	dictBuf      []byte // Pending transformed dictionary-word bytes, if any
}

// Command-loop resumption states.
const (
	cmdStateNew = iota
	cmdStateLiterals
	cmdStateCopy
)

func NewReader(r io.Reader) *Reader {
	br := new(Reader)
	br.Reset(r)
	return br
}

func (br *Reader) Read(buf []byte) (int, error) {
	for {
		if len(br.toRead) > 0 {
			cnt := copy(buf, br.toRead)
			br.toRead = br.toRead[cnt:]
			br.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if br.err != nil {
			return 0, br.err
		}

		// Perform next step in decompression process.
		func() {
			defer errRecover(&br.err)
			br.step(br)
		}()
		br.InputOffset = br.rd.offset
		if br.err != nil {
			br.toRead = br.dd.ReadFlush() // Flush what's left in case of error
		}
	}
}

func (br *Reader) Close() error {
	if br.err == io.EOF || br.err == io.ErrClosedPipe {
		return nil
	}
	err := br.err
	br.err = io.ErrClosedPipe
	return err
}

func (br *Reader) Reset(r io.Reader) error {
	*br = Reader{
		step: (*Reader).readStreamHeader,
		dd:   dictDecoder{hist: br.dd.hist}, // Reuse the allocated window
	}
	br.rd.Init(r)
	return nil
}

// readStreamHeader reads the Brotli stream header according to RFC section 9.1.
func (br *Reader) readStreamHeader() {
	wbits := br.rd.ReadSymbol(&decWinBits)
	if wbits == 0 {
		panic(ErrCorrupt) // Reserved WBITS code "1000100"
	}
	br.dd.Init(wbits)
	br.step = (*Reader).readBlockHeader
}

// checkTrailer enforces that no further bits or bytes follow the logical end
// of the stream (RFC section 9.2, end-of-stream requirement).
func (br *Reader) checkTrailer() {
	if br.rd.numBits > 0 {
		panic(ErrUnexpectedExtraInput)
	}
	if _, err := br.rd.rb.ReadByte(); err != io.EOF {
		panic(ErrUnexpectedExtraInput)
	}
}

// readBlockHeader reads a meta-block header according to RFC section 9.2.
func (br *Reader) readBlockHeader() {
	if br.last {
		if br.rd.ReadPads() > 0 {
			panic(ErrNonZeroTrailer)
		}
		br.checkTrailer()
		br.err = io.EOF
		return
	}

	// Read ISLAST and ISLASTEMPTY.
	if br.last = br.rd.ReadBits(1) == 1; br.last {
		if empty := br.rd.ReadBits(1) == 1; empty {
			br.step = (*Reader).readBlockHeader // Next call will terminate stream
			return
		}
	}

	// Read MLEN and MNIBBLES and process meta data.
	var blkLen int // Valid values are [1..1<<24]
	if nibbles := br.rd.ReadBits(2) + 4; nibbles == 7 {
		if reserved := br.rd.ReadBits(1) == 1; reserved {
			panic(ErrNonZeroReserved)
		}

		var skipLen int // Valid values are [0..1<<24]
		if skipBytes := br.rd.ReadBits(2); skipBytes > 0 {
			skipLen = int(br.rd.ReadBits(skipBytes * 8))
			if skipBytes > 1 && skipLen>>((skipBytes-1)*8) == 0 {
				panic(ErrInvalidMSkipLen) // Shortest representation not used
			}
			skipLen++
		}

		if br.rd.ReadPads() > 0 {
			panic(ErrNonZeroFill)
		}
		if _, err := io.ReadFull(&br.rd, make([]byte, skipLen)); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			panic(err)
		}
		br.step = (*Reader).readBlockHeader
		return
	} else {
		blkLen = int(br.rd.ReadBits(nibbles * 4))
		if nibbles > 4 && blkLen>>((nibbles-1)*4) == 0 {
			panic(ErrInvalidMLenNibble) // Shortest representation not used
		}
		blkLen++
	}
	br.blkLen = blkLen

	// Read ISUNCOMPRESSED and process uncompressed data.
	if !br.last {
		if uncompressed := br.rd.ReadBits(1) == 1; uncompressed {
			if br.rd.ReadPads() > 0 {
				panic(ErrNonZeroFill)
			}
			br.step = (*Reader).readRawData
			return
		}
	}

	br.readMetaBlockTables()
}

// readRawData reads an uncompressed meta-block body according to RFC
// section 9.2, copying bytes directly into the sliding window.
func (br *Reader) readRawData() {
	if br.blkLen <= 0 {
		br.step = (*Reader).readBlockHeader
		return
	}

	buf := br.dd.WriteSlice()
	if len(buf) > br.blkLen {
		buf = buf[:br.blkLen]
	}

	cnt, err := br.rd.Read(buf)
	br.blkLen -= cnt
	br.dd.WriteMark(cnt)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		panic(err)
	}

	if br.blkLen > 0 {
		br.toRead = br.dd.ReadFlush()
		br.step = (*Reader).readRawData // We need to continue this work
		return
	}
	br.step = (*Reader).readBlockHeader
}

// readMetaBlockTables reads the remainder of a compressed meta-block header
// according to RFC section 9.2: block-switch setup for the three streams,
// NPOSTFIX/NDIRECT, literal context modes, the two context maps, and the
// per-tree-index prefix codes for literals, insert-and-copy, and distances.
func (br *Reader) readMetaBlockTables() {
	nbtypesL := br.rd.ReadSymbol(&decCounts)
	br.bsL.Init(&br.rd, nbtypesL)

	nbtypesI := br.rd.ReadSymbol(&decCounts)
	br.bsI.Init(&br.rd, nbtypesI)

	nbtypesD := br.rd.ReadSymbol(&decCounts)
	br.bsD.Init(&br.rd, nbtypesD)

	br.npostfix = br.rd.ReadBits(2)
	br.ndirect = br.rd.ReadBits(4) << br.npostfix

	br.ctxModes = extendUint8s(br.ctxModes, int(nbtypesL))
	for i := range br.ctxModes {
		br.ctxModes[i] = uint8(br.rd.ReadBits(2))
	}

	ntreesL := br.rd.ReadSymbol(&decCounts)
	br.cmapL = readContextMap(&br.rd, 64*nbtypesL, ntreesL)

	ntreesD := br.rd.ReadSymbol(&decCounts)
	br.cmapD = readContextMap(&br.rd, 4*nbtypesD, ntreesD)

	br.treesL = extendPrefixDecoders(br.treesL, int(ntreesL))
	for i := range br.treesL {
		br.treesL[i] = readPrefixCode(&br.rd, numLitSyms)
	}
	br.treesI = extendPrefixDecoders(br.treesI, int(nbtypesI))
	for i := range br.treesI {
		br.treesI[i] = readPrefixCode(&br.rd, numInsSyms)
	}
	br.treesD = extendPrefixDecoders(br.treesD, int(ntreesD))
	distAlphaSize := numDistSyms(br.npostfix, br.ndirect)
	for i := range br.treesD {
		br.treesD[i] = readPrefixCode(&br.rd, distAlphaSize)
	}

	br.cmdState = cmdStateNew
	br.step = (*Reader).readBlockData
}

// readBlockData runs the insert-and-copy command loop of RFC section 9.2
// for a compressed meta-block. It pauses (returning from Read with whatever
// has been produced so far) only when the sliding window fills up, resuming
// exactly where it left off on the next call.
func (br *Reader) readBlockData() {
	switch br.cmdState {
	case cmdStateLiterals:
		goto emitLiterals
	case cmdStateCopy:
		goto doCopy
	}

newCommand:
	if br.blkLen <= 0 {
		br.step = (*Reader).readBlockHeader
		return
	}
	{
		btI := br.bsI.Advance(&br.rd)
		sym := br.rd.ReadSymbol(&br.treesI[btI])
		insCode, cpyCode, distZero := splitCommandSymbol(sym)
		br.litLeft = int(br.rd.ReadOffset(insCode, insLenRanges))
		br.pendCpyLen = int(br.rd.ReadOffset(cpyCode, cpyLenRanges))
		br.pendDistZero = distZero
	}

emitLiterals:
	for br.litLeft > 0 && br.blkLen > 0 {
		if br.dd.AvailSize() == 0 {
			br.toRead = br.dd.ReadFlush()
			br.step = (*Reader).readBlockData
			br.cmdState = cmdStateLiterals
			return
		}

		btL := br.bsL.Advance(&br.rd)
		p1, p2 := br.dd.LastBytes()
		ctx := litContextID(uint(br.ctxModes[btL]), p1, p2)
		tree := br.cmapL[64*btL+ctx]
		sym := br.rd.ReadSymbol(&br.treesL[tree])
		br.dd.WriteByte(byte(sym))

		br.litLeft--
		br.blkLen--
	}
	br.cmdState = cmdStateNew
	if br.blkLen <= 0 {
		br.step = (*Reader).readBlockHeader
		return
	}

	// A copy always follows here; the only way to skip it is for the
	// meta-block's byte budget to run out during the insert literals above,
	// which is handled by the check immediately preceding this comment.
	{
		maxDist := uint(br.dd.HistSize())
		var dist uint
		if br.pendDistZero {
			dist = br.dd.dists[0]
		} else {
			btD := br.bsD.Advance(&br.rd)
			ctx := distContextID(uint(br.pendCpyLen))
			tree := br.cmapD[4*btD+ctx]
			dsym := br.rd.ReadSymbol(&br.treesD[tree])
			dist = br.dd.ResolveDistance(&br.rd, dsym, br.ndirect, br.npostfix)
			if dsym != 0 && dist <= maxDist {
				br.dd.PushDistance(dist)
			}
		}

		if dist <= maxDist {
			br.copyDist = dist
			br.copyLeft = br.pendCpyLen
			br.dictBuf = nil
		} else {
			word := br.dd.ResolveDictWord(dist, uint(br.pendCpyLen))
			br.dictBuf = append(br.dictBuf[:0], word...)
			br.copyLeft = len(br.dictBuf)
			br.copyDist = 0
		}
	}

doCopy:
	for br.copyLeft > 0 {
		if br.dd.AvailSize() == 0 {
			br.toRead = br.dd.ReadFlush()
			br.step = (*Reader).readBlockData
			br.cmdState = cmdStateCopy
			return
		}

		var n int
		if br.dictBuf != nil {
			n = br.dd.WriteRaw(br.dictBuf)
			br.dictBuf = br.dictBuf[n:]
		} else {
			n = br.dd.WriteCopy(int(br.copyDist), br.copyLeft)
		}
		br.copyLeft -= n
		br.blkLen -= n
	}
	br.cmdState = cmdStateNew
	if br.blkLen < 0 {
		panic(ErrCorrupt) // Copy overran the meta-block length
	}
	if br.blkLen == 0 {
		br.step = (*Reader).readBlockHeader
		return
	}
	goto newCommand
}
