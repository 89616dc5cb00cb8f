// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package tree

import (
	"fmt"
	"strings"
)

const dumpIndent = "  "

// Dump renders the shape of the tree for diagnostics.
//
// Example output for a tree of two leaves:
//
//	Node(weight=3)
//	Left:
//	  Leaf(key='a', weight=1, depth=1)
//	Right:
//	  Leaf(key='b', weight=2, depth=1)
func Dump(root *Node) string {
	if root == nil {
		return "<empty>\n"
	}
	var sb strings.Builder
	var walk func(n *Node, indent string, depth int)
	walk = func(n *Node, indent string, depth int) {
		if n.IsLeaf() {
			fmt.Fprintf(&sb, "%sLeaf(key=%s, weight=%d, depth=%d)\n", indent, FormatKey(n.Key), n.Weight, depth)
			return
		}
		fmt.Fprintf(&sb, "%sNode(weight=%d)\n", indent, n.Weight)
		fmt.Fprintf(&sb, "%sLeft:\n", indent)
		walk(n.Left, indent+dumpIndent, depth+1)
		fmt.Fprintf(&sb, "%sRight:\n", indent)
		walk(n.Right, indent+dumpIndent, depth+1)
	}
	walk(root, "", 0)
	return sb.String()
}

// FormatKey renders a byte as a quoted character if it is printable ASCII
// and as a hexadecimal literal otherwise.
func FormatKey(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("%q", rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
