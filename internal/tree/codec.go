// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package tree

import (
	"math"

	"github.com/dsnet/huffman/internal"
	"github.com/dsnet/huffman/internal/errors"
)

// MaxNodes is the largest number of nodes a serialized tree can hold.
const MaxNodes = math.MaxInt16

// Serialized is the postorder byte encoding of a tree.
type Serialized struct {
	NodeCount   int16  // Number of bytes in Nodes
	SpecialLeaf int16  // Index in Nodes of the leaf keyed 0x00, or -1
	Nodes       []byte // Leaf keys and sentinels in postorder
}

// Serialize encodes the tree rooted at root in postorder.
// A nil root produces zero nodes.
func Serialize(root *Node) (s Serialized, err error) {
	defer errors.Recover(&err)
	s.SpecialLeaf = -1
	if root == nil {
		return s, nil
	}

	emit := func(b byte) int {
		if len(s.Nodes) >= MaxNodes {
			errors.Panic(ErrTooManyNodes)
		}
		s.Nodes = append(s.Nodes, b)
		return len(s.Nodes) - 1
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			if i := emit(n.Key); n.Key == internal.Sentinel {
				s.SpecialLeaf = int16(i)
			}
			return
		}
		walk(n.Left)
		walk(n.Right)
		emit(internal.Sentinel)
	}
	walk(root)
	s.NodeCount = int16(len(s.Nodes))
	return s, nil
}

// Deserialize rebuilds a tree from its postorder encoding.
// All weights of the rebuilt tree are zero since only its shape matters
// for decoding.
//
// It reports ErrStructure if the encoding does not describe exactly one
// tree.
func Deserialize(s Serialized) (*Node, error) {
	if int(s.NodeCount) != len(s.Nodes) {
		return nil, ErrStructure
	}

	var stack []*Node
	for i, b := range s.Nodes {
		if b == internal.Sentinel && i != int(s.SpecialLeaf) {
			if len(stack) < 2 {
				return nil, ErrStructure
			}
			left, right := stack[len(stack)-2], stack[len(stack)-1]
			stack = append(stack[:len(stack)-2], &Node{Left: left, Right: right})
			continue
		}
		stack = append(stack, &Node{Key: b})
	}
	if len(stack) != 1 {
		return nil, ErrStructure
	}
	return stack[0], nil
}
