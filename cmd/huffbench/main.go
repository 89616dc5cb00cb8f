// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huffbench compares the Huffman container against other compression
// codecs on encode rate, decode rate, and compression ratio.
//
// Example usage:
//
//	$ huffbench -tests ratio -codecs huff,huff0,std -files text.txt -sizes 1e4,64Ki
//
// Files are searched for in the given paths. The names of the built-in
// samples (such as text.txt and zeros.bin) are always available.
// Every codec is compared against the first one listed.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/dsnet/golib/unitconv"

	"github.com/dsnet/huffman/internal/testutil"
	"github.com/dsnet/huffman/internal/tool/bench"
)

var listSep = regexp.MustCompile("[,:]")

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffbench: ")

	var defaultTests []string
	for _, t := range bench.Tests() {
		defaultTests = append(defaultTests, t.String())
	}
	testList := flag.String("tests", strings.Join(defaultTests, ","), "List of measurements to take")
	codecList := flag.String("codecs", strings.Join(bench.Codecs(), ","), "List of codecs to compare")
	pathList := flag.String("paths", ".", "List of directories to search for input files")
	fileList := flag.String("files", strings.Join(testutil.SampleNames(), ","), "List of input files")
	levelList := flag.String("levels", "6", "List of compression levels")
	sizeList := flag.String("sizes", "1e4,1e5,1e6", "List of input sizes")
	flag.Parse()

	var tests []bench.Test
	for _, s := range listSep.Split(*testList, -1) {
		t, err := bench.ParseTest(s)
		if err != nil {
			log.Fatal(err)
		}
		tests = append(tests, t)
	}
	codecs := listSep.Split(*codecList, -1)
	for _, c := range codecs {
		if _, ok := bench.Lookup(c); !ok {
			log.Fatalf("unknown codec: %q", c)
		}
	}
	levels, err := parseInts(*levelList)
	if err != nil {
		log.Fatalf("invalid level: %v", err)
	}
	sizes, err := parseInts(*sizeList)
	if err != nil {
		log.Fatalf("invalid size: %v", err)
	}
	files := listSep.Split(*fileList, -1)
	bench.Paths = listSep.Split(*pathList, -1)

	start := time.Now()
	for _, t := range tests {
		fmt.Printf("BENCHMARK: %v\n", t)
		total := len(codecs) * len(files) * len(levels) * len(sizes)
		var done int
		results, rows := bench.Run(t, codecs, files, levels, sizes, func() {
			fmt.Printf("\t[%6.2f%%] %d of %d\r", 100*float64(done)/float64(total), done, total)
			done++
		})
		printTable(results, rows, codecs, t)
		fmt.Println()
	}
	fmt.Printf("RUNTIME: %v\n", time.Since(start))
}

// parseInts parses a list of numbers that may carry SI or IEC prefixes.
func parseInts(list string) ([]int, error) {
	var ns []int
	for _, s := range listSep.Split(list, -1) {
		f, err := unitconv.ParsePrefix(s, unitconv.AutoParse)
		if err != nil {
			return nil, fmt.Errorf("%q: %v", s, err)
		}
		ns = append(ns, int(f))
	}
	return ns, nil
}

// printTable prints one row per benchmark with a value and delta column
// for each codec. Values that could not be measured are left blank.
func printTable(results [][]bench.Result, rows, codecs []string, t bench.Test) {
	suffix := ""
	if t == bench.TestCompressRatio {
		suffix = "x"
	}
	format := func(v float64, suffix string) string {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		return fmt.Sprintf("%.2f%s", v, suffix)
	}

	table := [][]string{{"benchmark"}}
	for _, c := range codecs {
		table[0] = append(table[0], c+" "+t.Unit(), "delta")
	}
	for i, rs := range results {
		line := []string{rows[i]}
		for _, r := range rs {
			line = append(line, format(r.R, suffix), format(r.D, "x"))
		}
		table = append(table, line)
	}

	widths := make([]int, len(table[0]))
	for _, line := range table {
		for i, s := range line {
			widths[i] = max(widths[i], len(s))
		}
	}
	for _, line := range table {
		var sb strings.Builder
		sb.WriteString("\t")
		for i, s := range line {
			switch {
			case i == 0:
				fmt.Fprintf(&sb, "%-*s", widths[i], s)
			case i%2 == 1:
				fmt.Fprintf(&sb, "%*s", 6+widths[i], s)
			default:
				fmt.Fprintf(&sb, "%*s", 2+widths[i], s)
			}
		}
		fmt.Println(sb.String())
	}
}
