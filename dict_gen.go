// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// dict_gen regenerates dict_data.go from a raw copy of the static
// dictionary of RFC 7932 Appendix A:
//
//	go run dict_gen.go dictionary.bin
package main

import (
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"log"
	"os"
)

const dictSize = 122784

func main() {
	log.SetFlags(0)
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s dictionary.bin", os.Args[0])
	}
	data, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	if len(data) != dictSize {
		log.Fatalf("dictionary is %d bytes, want %d", len(data), dictSize)
	}

	f, err := os.Create("dict_data.go")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	fmt.Fprintln(f, "// Copyright 2015, Joe Tsai. All rights reserved.")
	fmt.Fprintln(f, "// Use of this source code is governed by a BSD-style")
	fmt.Fprintln(f, "// license that can be found in the LICENSE.md file.")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "// Code generated by dict_gen.go. DO NOT EDIT.")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "package brotli")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "// dictData is the static dictionary of RFC Appendix A (122784 bytes),")
	fmt.Fprintln(f, "// encoded in base64 and decoded once at init time.")
	fmt.Fprintln(f, `const dictData = "" +`)
	b64 := base64.StdEncoding.EncodeToString(data)
	for i := 0; i < len(b64); i += 96 {
		line := b64[i:min(i+96, len(b64))]
		if i+96 < len(b64) {
			fmt.Fprintf(f, "\t%q +\n", line)
		} else {
			fmt.Fprintf(f, "\t%q\n", line)
		}
	}
}

func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}
