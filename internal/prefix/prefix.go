// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package prefix implements bit-level primitives for Huffman prefix codes.
//
// Bits are packed starting with the least-significant bit of each byte.
// A code is written in root-to-leaf order, so the first bit of a code is the
// first bit a decoder consumes.
package prefix

import (
	"github.com/dsnet/huffman/internal"
	"github.com/dsnet/huffman/internal/errors"
)

// MaxBits is the maximum length of a single code.
const MaxBits = 256

// ErrLimit is returned for codes longer than MaxBits.
var ErrLimit error = errors.Error{Code: errors.LimitExceeded, Pkg: "prefix", Msg: "code longer than 256 bits"}

// BitSequence is the code of a single symbol.
// The zero value is an empty code for the symbol 0x00.
type BitSequence struct {
	bits  [MaxBits / 8]byte // Bit i is stored at bits[i/8]>>(i%8)
	nbits int
	sym   byte
}

// NewBitSequence creates the code for sym out of bits, ordered root-to-leaf.
// It reports ErrLimit if there are more than MaxBits bits.
func NewBitSequence(sym byte, bits []bool) (*BitSequence, error) {
	if len(bits) > MaxBits {
		return nil, ErrLimit
	}
	bs := &BitSequence{nbits: len(bits), sym: sym}
	for i, b := range bits {
		if b {
			bs.bits[i/8] |= 1 << uint(i%8)
		}
	}
	return bs, nil
}

// Len reports the number of bits in the code.
func (bs *BitSequence) Len() int { return bs.nbits }

// Symbol reports the byte that the code represents.
func (bs *BitSequence) Symbol() byte { return bs.sym }

// ByteLen reports the minimum number of bytes needed to hold the code.
func (bs *BitSequence) ByteLen() int { return int(internal.ByteLen(uint64(bs.nbits))) }

// Bit reports the i-th bit of the code.
func (bs *BitSequence) Bit(i int) bool {
	if i < 0 || i >= bs.nbits {
		panic("prefix: bit index out of range")
	}
	return bs.bits[i/8]>>uint(i%8)&1 != 0
}

// Bytes returns the packed code. Unused high bits of the last byte are zero.
func (bs *BitSequence) Bytes() []byte {
	return append([]byte(nil), bs.bits[:bs.ByteLen()]...)
}
