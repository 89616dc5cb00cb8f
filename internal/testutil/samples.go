// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"sort"
	"sync"
)

const sampleSize = 1 << 16

var (
	samplesOnce sync.Once
	samples     map[string][]byte
)

// Samples returns a set of deterministic inputs keyed by name.
// The returned map and its slices must not be modified.
//
//	zeros.bin      a single repeated 0x00 byte
//	random.bin     uniformly random bytes
//	repeats.bin    random runs copied from earlier positions
//	skewed.bin     geometric byte distribution
//	fibonacci.bin  Fibonacci-weighted bytes, the worst case for code length
//	text.txt       English-like prose
//	abracadabra    the string "abracadabra"
func Samples() map[string][]byte {
	samplesOnce.Do(func() {
		samples = map[string][]byte{
			"zeros.bin":     make([]byte, sampleSize),
			"random.bin":    NewRand(0).Bytes(sampleSize),
			"repeats.bin":   genRepeats(NewRand(1), sampleSize),
			"skewed.bin":    genSkewed(NewRand(2), sampleSize),
			"fibonacci.bin": genFibonacci(NewRand(3), 20),
			"text.txt":      genText(NewRand(4), sampleSize),
			"abracadabra":   []byte("abracadabra"),
		}
	})
	return samples
}

// SampleNames returns the names of Samples in sorted order.
func SampleNames() []string {
	var names []string
	for k := range Samples() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// genRepeats heavily favors LZ77 based compression since a large bulk of its
// data is a copy from some distance ago. Since the source data is mostly
// random, prefix encoding does not benefit as much.
func genRepeats(r *Rand, size int) []byte {
	var b []byte
	randLen := func() int { return 4 << uint(r.Intn(7)) } // 4..256
	randDist := func() int {
		for {
			d := 1 << uint(r.Intn(15)) // 1..16384
			d += r.Intn(d)
			if d <= len(b) {
				return d
			}
		}
	}
	for i, n := 0, randLen(); i < n; i++ {
		b = append(b, byte(r.Int()))
	}
	for len(b) < size {
		if r.Intn(10) == 0 {
			for i, n := 0, randLen(); i < n; i++ {
				b = append(b, byte(r.Int()))
			}
			continue
		}
		d, l := randDist(), randLen()
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}
	return b[:size]
}

// genSkewed produces bytes where each value is half as likely as the
// previous one, so a few values dominate and the rest form a long tail.
func genSkewed(r *Rand, size int) []byte {
	b := make([]byte, size)
	for i := range b {
		var v int
		for v < 255 && r.Intn(2) == 0 {
			v++
		}
		b[i] = byte(v)
	}
	return b
}

// genFibonacci produces n distinct bytes whose counts follow the Fibonacci
// sequence, which makes the Huffman tree a maximally deep chain.
func genFibonacci(r *Rand, n int) []byte {
	var b []byte
	x, y := 1, 1
	for i := 0; i < n; i++ {
		b = append(b, bytes.Repeat([]byte{byte(i)}, x)...)
		x, y = y, x+y
	}
	for i, j := range r.Perm(len(b)) {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

var words = []string{
	"the", "of", "and", "to", "in", "a", "is", "that", "for", "it", "as",
	"was", "with", "be", "by", "on", "not", "he", "this", "are", "or", "his",
	"from", "at", "which", "but", "have", "an", "had", "they", "you", "were",
	"river", "steamboat", "pilot", "huffman", "tree", "Mississippi", "code",
}

func genText(r *Rand, size int) []byte {
	var bb bytes.Buffer
	for bb.Len() < size {
		n := 4 + r.Intn(12)
		for i := 0; i < n; i++ {
			if i > 0 {
				bb.WriteByte(' ')
			}
			bb.WriteString(words[r.Intn(len(words))])
		}
		bb.WriteString(".\n")
	}
	return bb.Bytes()[:size]
}
