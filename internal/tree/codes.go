// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package tree

import (
	"github.com/dsnet/huffman/internal/errors"
	"github.com/dsnet/huffman/internal/prefix"
)

// CodeTable maps every byte value to its code, or nil if it has none.
type CodeTable [256]*prefix.BitSequence

// Codes derives the code of every leaf, appending a 0 bit for each step to
// a left child and a 1 bit for each step to a right child.
//
// A tree made of a lone leaf still gets the single bit code 0 so that every
// occurrence of its symbol occupies one bit in the payload.
// It reports prefix.ErrLimit if any code is longer than prefix.MaxBits.
func Codes(root *Node) (ct CodeTable, err error) {
	defer errors.Recover(&err)
	if root == nil {
		return ct, nil
	}
	if root.IsLeaf() {
		ct[root.Key] = newCode(root.Key, []bool{false})
		return ct, nil
	}

	var walk func(n *Node, bits []bool)
	walk = func(n *Node, bits []bool) {
		if n.IsLeaf() {
			ct[n.Key] = newCode(n.Key, bits)
			return
		}
		if len(bits) >= prefix.MaxBits {
			errors.Panic(prefix.ErrLimit)
		}
		walk(n.Left, append(bits, false))
		walk(n.Right, append(bits, true))
	}
	walk(root, make([]bool, 0, prefix.MaxBits))
	return ct, nil
}

func newCode(sym byte, bits []bool) *prefix.BitSequence {
	bs, err := prefix.NewBitSequence(sym, bits)
	if err != nil {
		errors.Panic(err)
	}
	return bs
}

// BitCount reports the number of payload bits needed to encode data with
// the given frequencies.
func (ct *CodeTable) BitCount(freqs Frequencies) (n uint64) {
	for sym, cnt := range freqs {
		if cnt > 0 && ct[sym] != nil {
			n += uint64(cnt) * uint64(ct[sym].Len())
		}
	}
	return n
}

// Encode appends the code of every byte in data to pw.
// Every byte of data must have a code in ct.
func (ct *CodeTable) Encode(pw *prefix.Writer, data []byte) error {
	for _, b := range data {
		bs := ct[b]
		if bs == nil {
			return errors.Error{Code: errors.Invalid, Pkg: "tree", Msg: "byte has no code"}
		}
		pw.WriteBits(bs)
	}
	return nil
}
