// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package tree

import "github.com/dsnet/huffman/internal/prefix"

// Decode walks the tree once per code in the first nbits bits of data,
// going left on a 0 bit and right on a 1 bit, and emits the key of every
// leaf reached. Padding bits past nbits are never consumed.
//
// When the root is itself a leaf, every bit is the one bit code 0 of that
// leaf. It reports ErrIncomplete if the bits run out in the middle of a code.
func Decode(root *Node, data []byte, nbits uint64) ([]byte, error) {
	if nbits == 0 {
		return nil, nil
	}
	if root == nil {
		return nil, ErrStructure
	}
	pr := prefix.NewReader(data, nbits)
	if pr.BitsLeft() != nbits {
		return nil, ErrIncomplete
	}

	out := make([]byte, 0, nbits/8+1)
	if root.IsLeaf() {
		for pr.BitsLeft() > 0 {
			if bit, _ := pr.ReadBit(); bit {
				return nil, ErrStructure
			}
			out = append(out, root.Key)
		}
		return out, nil
	}

	n := root
	for pr.BitsLeft() > 0 {
		bit, _ := pr.ReadBit()
		if bit {
			n = n.Right
		} else {
			n = n.Left
		}
		if n.IsLeaf() {
			out = append(out, n.Key)
			n = root
		}
	}
	if n != root {
		return nil, ErrIncomplete
	}
	return out, nil
}
