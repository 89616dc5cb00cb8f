// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,256}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]*$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string.
//
// The BitGen format allows bit-streams to be generated from a series of tokens
// describing bits in the resulting string. It is designed for testing purposes
// by aiding a human in the manual scripting of containers and payloads from
// individual codes, while allowing comments to encode authorial intent.
//
// Bits are always packed starting with the least-significant bit of each
// byte, which is how payloads of the container are laid out.
//
// The format consists of a series of tokens separated by white space of any
// kind. The '#' character is used for commenting. Thus, any bytes on a given
// line that appear after the '#' character is ignored.
//
// A token of the pattern "[01]{1,256}" forms a bit-string in code order
// (e.g. 110 is the code root-right-right-left). The left-most bit is written
// first to the resulting bit-stream.
//
// A token of the pattern "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}"
// represents either a decimal value or a hexadecimal value, respectively.
// The first number is the bit-length (0 to 64) and the second number is the
// value, which must fit in the bit-length. The least-significant bit is
// written first, so byte-aligned multiples of 8 bits produce little-endian
// integers (e.g. H32:cafef00d yields 0d f0 fe ca).
//
// A token of the pattern "X:[0-9a-fA-F]*" represents literal bytes in
// hexadecimal format. It may only be used when the bit-stream is byte-aligned.
//
// A token decorator of the pattern "[*][0-9]+" may trail any token. This is
// a quantifier decorator which indicates that the current token is to be
// repeated some number of times.
//
// If the total bit-stream does not end on a byte-aligned edge, then the stream
// is padded up to the nearest byte with 0 bits.
//
// Example BitGen string:
//
//	H32:cafef00d H32:0 H64:0  # Header with a zeroed checksum
//	D16:1 H16:ffff X:61      # Tree with the single leaf 'a'
//	D64:3 000                 # Payload "aaa"
func DecodeBitGen(str string) ([]byte, error) {
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}

	var bw bitBuffer
	for _, t := range toks {
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			n, err := strconv.Atoi(t[i+1:])
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = t[:i], n
		}

		switch {
		case reBin.MatchString(t):
			for i := 0; i < rep; i++ {
				for _, b := range t {
					bw.WriteBit(b == '1')
				}
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			base := 10
			if t[0] == 'H' {
				base = 16
			}
			n, err1 := strconv.Atoi(t[1:i])
			v, err2 := strconv.ParseUint(t[i+1:], base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v>>uint(n) != 0 {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				for j := 0; j < n; j++ {
					bw.WriteBit(v>>uint(j)&1 != 0)
				}
			}
		case reRaw.MatchString(t):
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			if err := bw.WriteBytes(bytes.Repeat(b, rep)); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bw.Bytes(), nil
}

// bitBuffer is a minimal LSB-first bit writer.
// It is implemented here instead of using prefix.Writer so that tests of
// the prefix package do not rely on the code being tested.
type bitBuffer struct {
	b []byte
	m byte // Mask of the next bit to set in the last byte
}

func (b *bitBuffer) WriteBytes(buf []byte) error {
	if b.m != 0x00 {
		return errors.New("testutil: unaligned write")
	}
	b.b = append(b.b, buf...)
	return nil
}

func (b *bitBuffer) WriteBit(v bool) {
	if b.m == 0x00 {
		b.m = 0x01
		b.b = append(b.b, 0x00)
	}
	if v {
		b.b[len(b.b)-1] |= b.m
	}
	b.m <<= 1
}

func (b *bitBuffer) Bytes() []byte {
	return b.b
}
