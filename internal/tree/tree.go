// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package tree implements construction, serialization and traversal of
// Huffman trees over byte values.
//
// A tree is serialized in postorder. A leaf emits its key, and an internal
// node emits the sentinel byte 0x00 after both of its subtrees. A leaf whose
// key is itself 0x00 is told apart by recording its postorder index.
package tree

import "github.com/dsnet/huffman/internal/errors"

// Errors reported by the tree codec and by Decode.
var (
	ErrStructure    error = errors.Error{Code: errors.Structural, Pkg: "tree", Msg: "malformed serialized tree"}
	ErrIncomplete   error = errors.Error{Code: errors.Structural, Pkg: "tree", Msg: "bit stream ends in the middle of a code"}
	ErrTooManyNodes error = errors.Error{Code: errors.LimitExceeded, Pkg: "tree", Msg: "too many nodes to serialize"}
)

// Node is a node of a Huffman tree. A node is a leaf if and only if it has
// no children, in which case Key is the byte it represents. Internal nodes
// always have both children.
//
// Each node is owned by exactly one parent and is never modified once the
// tree is built.
type Node struct {
	Key    byte
	Weight int // Sum of the children weights for internal nodes
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Frequencies holds the occurrence count of every byte value.
type Frequencies [256]int

// Count counts the occurrences of every byte in data.
func Count(data []byte) (f Frequencies) {
	for _, b := range data {
		f[b]++
	}
	return f
}

// Symbols reports the number of distinct bytes with a non-zero count.
func (f *Frequencies) Symbols() (n int) {
	for _, c := range f {
		if c > 0 {
			n++
		}
	}
	return n
}

// Total reports the sum of all counts.
func (f *Frequencies) Total() (n int) {
	for _, c := range f {
		n += c
	}
	return n
}
