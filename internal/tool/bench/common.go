// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the Huffman container against other compression
// implementations. Individual implementations are referred to as codecs.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/dsnet/golib/unitconv"

	"github.com/dsnet/huffman/internal/testutil"
)

// Test is a kind of measurement taken by Run.
type Test int

const (
	TestEncodeRate Test = iota
	TestDecodeRate
	TestCompressRatio
)

var testNames = [...]string{
	TestEncodeRate:    "encRate",
	TestDecodeRate:    "decRate",
	TestCompressRatio: "ratio",
}

func (t Test) String() string {
	if t < 0 || int(t) >= len(testNames) {
		return fmt.Sprintf("Test(%d)", int(t))
	}
	return testNames[t]
}

// Unit reports the unit that results of t are measured in.
func (t Test) Unit() string {
	if t == TestCompressRatio {
		return "ratio"
	}
	return "MB/s"
}

// Tests lists every kind of measurement in the order they are run.
func Tests() []Test {
	return []Test{TestEncodeRate, TestDecodeRate, TestCompressRatio}
}

// ParseTest returns the Test whose name is s.
func ParseTest(s string) (Test, error) {
	for t, name := range testNames {
		if name == s {
			return Test(t), nil
		}
	}
	return 0, fmt.Errorf("bench: unknown test %q", s)
}

// Codec constructs the compressing writer and decompressing reader of a
// single implementation.
type Codec struct {
	NewWriter func(w io.Writer, level int) (io.WriteCloser, error)
	NewReader func(r io.Reader) (io.ReadCloser, error)
}

// Primary is the codec listed first by Codecs.
const Primary = "huff"

var codecs = make(map[string]Codec)

// Paths lists the directories searched for input files.
var Paths []string

// Register makes a codec available under the given name.
// It panics if the name is already taken.
func Register(name string, c Codec) {
	if _, ok := codecs[name]; ok {
		panic("bench: codec registered twice: " + name)
	}
	codecs[name] = c
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, bool) {
	c, ok := codecs[name]
	return c, ok
}

// Codecs returns the names of all registered codecs, Primary first.
func Codecs() []string {
	var s []string
	for k := range codecs {
		if k != Primary {
			s = append(s, k)
		}
	}
	sort.Strings(s)
	if _, ok := codecs[Primary]; ok {
		s = append([]string{Primary}, s...)
	}
	return s
}

// Result is a single measurement.
type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // R relative to the first codec of the same row
}

// Run measures the named codecs on every combination of file, level,
// and size. The tick function, if non-nil, is called before each measurement.
//
// The values returned have the following structure:
//
//	results: [len(files)*len(levels)*len(sizes)][len(names)]Result
//	rows:    [len(files)*len(levels)*len(sizes)]string
func Run(test Test, names, files []string, levels, sizes []int, tick func()) (results [][]Result, rows []string) {
	for _, f := range files {
		for _, lvl := range levels {
			for _, n := range sizes {
				input, err := testutil.LoadFile(findFile(f), n)
				row := make([]Result, len(names))
				for j, name := range names {
					if tick != nil {
						tick()
					}
					c, ok := codecs[name]
					if err == nil && ok {
						row[j].R = measure(test, c, input, lvl)
					}
					row[j].D = row[j].R / row[0].R
				}
				results = append(results, row)
				rows = append(rows, rowName(f, lvl, len(input)))
			}
		}
	}
	return results, rows
}

// measure returns zero if the codec fails on the input.
func measure(test Test, c Codec, input []byte, lvl int) float64 {
	switch test {
	case TestEncodeRate:
		return rate(len(input), func() error {
			return encode(c, io.Discard, input, lvl)
		})
	case TestDecodeRate:
		var buf bytes.Buffer
		if err := encode(c, &buf, input, lvl); err != nil {
			return 0
		}
		return rate(len(input), func() error {
			return decode(c, io.Discard, buf.Bytes())
		})
	case TestCompressRatio:
		var buf bytes.Buffer
		if err := encode(c, &buf, input, lvl); err != nil || buf.Len() == 0 {
			return 0
		}
		return float64(len(input)) / float64(buf.Len())
	default:
		panic("bench: unknown test " + test.String())
	}
}

// rate reports the throughput of f in MB/s, where each call of f
// processes n bytes.
func rate(n int, f func() error) float64 {
	var err error
	r := testing.Benchmark(func(b *testing.B) {
		b.SetBytes(int64(n))
		for i := 0; i < b.N && err == nil; i++ {
			err = f()
		}
	})
	if err != nil || r.N == 0 {
		return 0
	}
	us := float64(r.T.Nanoseconds()) / 1e3 / float64(r.N)
	return float64(r.Bytes) / us
}

func encode(c Codec, dst io.Writer, input []byte, lvl int) error {
	wr, err := c.NewWriter(dst, lvl)
	if err != nil {
		return err
	}
	if _, err := wr.Write(input); err != nil {
		wr.Close()
		return err
	}
	return wr.Close()
}

func decode(c Codec, dst io.Writer, input []byte) error {
	rd, err := c.NewReader(bytes.NewReader(input))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, rd); err != nil {
		rd.Close()
		return err
	}
	return rd.Close()
}

func findFile(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	for _, dir := range Paths {
		p := filepath.Join(dir, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

// rowName formats a row label as file:level:size. Sizes that are a power of
// ten from 1e3 upward use exponent notation, others use binary prefixes.
func rowName(file string, lvl, n int) string {
	size := unitconv.FormatPrefix(float64(n), unitconv.Base1024, 2)
	size = strings.Replace(size, ".00", "", 1)
	for e, p := 3, 1000; p > 0 && p <= n; e, p = e+1, p*10 {
		if p == n {
			size = fmt.Sprintf("1e%d", e)
		}
	}
	return fmt.Sprintf("%s:%d:%s", filepath.Base(file), lvl, size)
}
