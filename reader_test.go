// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "io"
import "io/ioutil"
import "bytes"
import "encoding/hex"
import "strings"
import "testing"

func TestReader(t *testing.T) {
	var vectors = []struct {
		desc   string // Description of the test
		input  string // Test input string in hex
		output string // Expected output string
		err    error  // Expected error
	}{{
		desc:  "empty string",
		input: "",
		err:   io.ErrUnexpectedEOF,
	}, {
		desc:  "empty last block (padding is zero)",
		input: "06",
	}, {
		desc:  "empty last block (padding is non-zero)",
		input: "16",
		err:   ErrNonZeroTrailer,
	}, {
		desc:  "trailing non-zero byte after clean end of stream",
		input: "0601",
		err:   ErrUnexpectedExtraInput,
	}, {
		desc:   "uncompressed meta-block followed by an empty last block",
		input:  "d00010" + hex.EncodeToString([]byte("Hello, World!\n")) + "03",
		output: "Hello, World!\n",
	}, {
		desc:  "uncompressed meta-block with non-zero fill bits",
		input: "d00030" + hex.EncodeToString([]byte("Hello, World!\n")) + "03",
		err:   ErrNonZeroFill,
	}, {
		desc:  "meta-data skip block of 2 bytes, then an empty last block",
		input: "ac00dead03",
	}, {
		desc:  "meta-data skip block of 257 bytes with a two byte length",
		input: "4c8000" + strings.Repeat("00", 257) + "03",
	}, {
		desc:  "meta-data skip block using a non-minimal length encoding",
		input: "cc0200",
		err:   ErrInvalidMSkipLen,
	}, {
		desc:  "meta-data skip block with non-zero reserved bit",
		input: "1c",
		err:   ErrNonZeroReserved,
	}, {
		desc:  "five nibble meta-block length with zero high nibble",
		input: "eaff0100",
		err:   ErrInvalidMLenNibble,
	}, {
		desc:  "simple prefix code listing the same symbol twice",
		input: "02000000545818",
		err:   ErrMalformedCode,
	}, {
		desc:   "single command: insert abcde, copy 5 back at distance 5",
		input:  "2201000000c7d8581b205609099403",
		output: "abcdeabcde",
	}, {
		desc:   "uncompressed meta-block with a 22-bit window",
		input:  "8b068048656c6c6f2c20576f726c64210a03",
		output: "Hello, World!\n",
	}, {
		desc:   "compressed meta-block with one overlapping back-reference",
		input:  "1b180000046ec0c6daa858270ab11d",
		output: strings.Repeat("abcde", 5),
	}, {
		desc: "compressed meta-block with a dictionary word and back-references",
		input: "1b67010044f3a469ed301977e210792ac79fa34834605a576626c1" +
			"33c2294f43e0455eb50f708b824cbdd8ffe0190d02",
		output: strings.Repeat("the quick brown fox jumps over the lazy dog. ", 8),
	}, {
		desc:   "compressed meta-block with static dictionary references",
		input:  "1b2200f825cbd0e8b2904f84c910ae78a7336e02",
		output: "the people of the government of the",
	}, {
		desc:   "long runs of zeros copied at distance one",
		input:  "1bff03002400a2b1407203",
		output: strings.Repeat("\x00", 1024),
	}, {
		desc: "multi-byte UTF8 text using the UTF8 context mode",
		input: "1bad00001ca9515fcceea025471a6b10266d0f4047fae090233d00" +
			"256d01522d373801498b93205a9742c3b0b6c85ca2515f293f2febeb0400",
		output: strings.Repeat("naïve résumé 你好世界 ", 6),
	}, {
		desc: "output much larger than the 1KiB sliding window",
		input: "a17af00c0002ceb15447b766ab7085c3061c3886930fb4e0b8980d" +
			"0e3991b7a4409e0eab9ae4a875c4f0aa9867f95cccef77ac0c2802",
		output: strings.Repeat("It was the best of times, it was the worst of times. ", 2000),
	}, {
		desc: "multiple meta-blocks covering over half a megabyte",
		input: "ab77ce0400a8aaaaaafea77b965ef6999eada77b8667db64967d93" +
			"d936d55119919119915199d1519965ddf7ffbbeadf736f75cfa82e6f63b8" +
			"2b5e2c2c2c6c6cacea654675f0e1c38fc160308e33595583c16030180ce6" +
			"5067442a4aa370586827d97b82afb12eec63d3312a6f40b209377e1fbd0b" +
			"708e1f00e0f7db7b00e7f407fff7fbed3d80f3f8a7feeff7db7b0037c1a8" +
			"bcf14500fc2e7b0fe026fbd8747c1100bfcbde03b8095817f61701f0bbec" +
			"3d809b40b2095f04c0efb2f7006e322a6fe08b00f85df61ec04d8e4dc7f8" +
			"22007e17a5007003",
		output: strings.Repeat("The quick brown fox. ", 30000),
	}}

	for i, v := range vectors {
		input, _ := hex.DecodeString(v.input)
		data, err := ioutil.ReadAll(NewReader(bytes.NewReader(input)))

		if err != v.err {
			t.Errorf("test %d (%q): got %v, want %v", i, v.desc, err, v.err)
		}
		if !bytes.Equal(data, []byte(v.output)) {
			got, want := data, []byte(v.output)
			if len(got) > 48 {
				got = got[:48]
			}
			if len(want) > 48 {
				want = want[:48]
			}
			t.Errorf("test %d (%q):\ngot  %x\nwant %x", i, v.desc, got, want)
		}
	}
}

func TestReaderReset(t *testing.T) {
	input, _ := hex.DecodeString("d00010" + hex.EncodeToString([]byte("Hello, World!\n")) + "03")

	br := NewReader(bytes.NewReader(input))
	for i := 0; i < 3; i++ {
		data, err := ioutil.ReadAll(br)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}
		if string(data) != "Hello, World!\n" {
			t.Fatalf("iteration %d: got %q, want %q", i, data, "Hello, World!\n")
		}
		if err := br.Reset(bytes.NewReader(input)); err != nil {
			t.Fatalf("iteration %d: unexpected Reset error: %v", i, err)
		}
	}
}

func TestReaderOffsets(t *testing.T) {
	input, _ := hex.DecodeString("1b180000046ec0c6daa858270ab11d")

	br := NewReader(bytes.NewReader(input))
	data, err := ioutil.ReadAll(br)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.InputOffset != int64(len(input)) {
		t.Errorf("InputOffset: got %d, want %d", br.InputOffset, len(input))
	}
	if br.OutputOffset != int64(len(data)) {
		t.Errorf("OutputOffset: got %d, want %d", br.OutputOffset, len(data))
	}
}

func BenchmarkDecode(b *testing.B) {
	input, _ := hex.DecodeString("1b67010044f3a469ed301977e210792ac79fa34834605a576626c1" +
		"33c2294f43e0455eb50f708b824cbdd8ffe0190d02")
	output := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 8)

	rd := new(bytes.Reader)
	br := new(Reader)
	b.SetBytes(int64(len(output)))
	for i := 0; i < b.N; i++ {
		rd.Reset(input)
		br.Reset(rd)
		cnt, err := io.Copy(ioutil.Discard, br)
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		if cnt != int64(len(output)) {
			b.Fatalf("unexpected count: got %d, want %d", cnt, len(output))
		}
	}
}
