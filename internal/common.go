// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the Huffman codec.
//
// For performance reasons, these helpers lack strong error checking and
// require that the caller to ensure that strict invariants are kept.
package internal

// Sentinel is the byte value that marks an internal node in a serialized tree.
const Sentinel = 0x00

// ByteLen reports the number of bytes needed to hold n bits.
func ByteLen(n uint64) uint64 {
	return n/8 + uint64(btoi(n%8 != 0))
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
