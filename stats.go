// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

// Stats describes the layout of a container.
type Stats struct {
	NodeCount   int // Number of serialized tree nodes
	SpecialLeaf int // Index of the leaf keyed 0x00, or -1

	TreeDataSize   int // Size of the serialized nodes
	TreeRegionSize int // Size of the tree region including its metadata

	PayloadBits       uint64 // Number of meaningful payload bits
	PayloadDataSize   int    // Size of the packed payload
	PayloadRegionSize int    // Size of the payload region including its metadata

	FileSize int // Size of the whole container
}

// MeasureFile reports the layout of the container holding t and p.
func MeasureFile(t TreeRegion, p Payload) Stats {
	s := Stats{
		NodeCount:         int(t.NodeCount),
		SpecialLeaf:       int(t.SpecialLeaf),
		TreeDataSize:      len(t.Nodes),
		TreeRegionSize:    treeMetaSize + len(t.Nodes),
		PayloadBits:       p.BitCount,
		PayloadDataSize:   len(p.Data),
		PayloadRegionSize: payloadMetaSize + len(p.Data),
	}
	s.FileSize = headerSize + s.TreeRegionSize + s.PayloadRegionSize
	return s
}
