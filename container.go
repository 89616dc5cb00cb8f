// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"encoding/binary"

	"github.com/dsnet/huffman/internal"
	"github.com/dsnet/huffman/internal/tree"
)

// Magic is the first value of every container.
const Magic = 0xcafef00d

const (
	headerSize      = 4 + 4 + 8 // magic, checksum, contentLength
	treeMetaSize    = 2 + 2     // nodeCount, specialLeaf
	payloadMetaSize = 8         // bitCount
	minFileSize     = headerSize + treeMetaSize + payloadMetaSize

	checksumChunk = 8
)

var le = binary.LittleEndian

// Header is the fixed size prefix of every container.
type Header struct {
	Magic         uint32
	Checksum      uint32 // Checksum of the content following the header
	ContentLength uint64 // Length of the tree and payload regions
}

// TreeRegion is the serialized Huffman tree stored in a container.
type TreeRegion = tree.Serialized

// Payload is the bit-packed sequence of codes stored in a container.
type Payload struct {
	BitCount uint64 // Number of meaningful bits in Data
	Data     []byte // LSB-first packed codes; len(Data) == ceil(BitCount/8)
}

// Checksum computes the container checksum of b.
//
// The content is split into chunks of 8 bytes. Each chunk is hashed with
// acc = 31*acc + b starting from 1, and the hashes of all chunks are XORed
// together. The final chunk is always included, even when empty.
// This only detects accidental damage and is not an authenticator.
func Checksum(b []byte) uint32 {
	var agg uint32
	acc := uint32(1)
	for i, c := range b {
		acc = 31*acc + uint32(c)
		if (i+1)%checksumChunk == 0 {
			agg ^= acc
			acc = 1
		}
	}
	return agg ^ acc
}

// BuildFile assembles a container from a tree region and a payload.
// The tree region must be consistent with itself (len(Nodes) == NodeCount)
// and the payload must hold ceil(BitCount/8) bytes.
func BuildFile(t TreeRegion, p Payload) []byte {
	contentLen := treeMetaSize + len(t.Nodes) + payloadMetaSize + len(p.Data)
	b := make([]byte, headerSize, headerSize+contentLen)

	var meta [8]byte
	le.PutUint16(meta[0:], uint16(t.NodeCount))
	le.PutUint16(meta[2:], uint16(t.SpecialLeaf))
	b = append(b, meta[:treeMetaSize]...)
	b = append(b, t.Nodes...)
	le.PutUint64(meta[0:], p.BitCount)
	b = append(b, meta[:payloadMetaSize]...)
	b = append(b, p.Data...)

	le.PutUint32(b[0:], Magic)
	le.PutUint32(b[4:], Checksum(b[headerSize:]))
	le.PutUint64(b[8:], uint64(len(b)-headerSize))
	return b
}

// ParseFile splits a container into its tree region and payload.
//
// The container is validated in the following order, each failure being
// reported by its own error: the minimum size (ErrTruncated), the magic
// value (ErrMagic), the content length (ErrContentLength), the checksum
// (ErrChecksum), the tree region (ErrTreeRegion) and the payload
// (ErrPayloadRegion). Bytes after the content and bytes after the payload
// within the content are ignored.
//
// The returned regions do not alias b.
func ParseFile(b []byte) (TreeRegion, Payload, error) {
	_, t, p, err := parseFile(b)
	return t, p, err
}

func parseFile(b []byte) (h Header, t TreeRegion, p Payload, err error) {
	if len(b) < minFileSize {
		return h, t, p, ErrTruncated
	}
	h = Header{
		Magic:         le.Uint32(b[0:]),
		Checksum:      le.Uint32(b[4:]),
		ContentLength: le.Uint64(b[8:]),
	}
	if h.Magic != Magic {
		return Header{}, t, p, ErrMagic
	}
	if h.ContentLength > uint64(len(b)-headerSize) {
		return Header{}, t, p, ErrContentLength
	}
	content := b[headerSize : headerSize+int(h.ContentLength)]
	if Checksum(content) != h.Checksum {
		return Header{}, t, p, ErrChecksum
	}

	// Tree region.
	if len(content) < treeMetaSize {
		return Header{}, t, p, ErrTreeRegion
	}
	nodeCount := int16(le.Uint16(content[0:]))
	special := int16(le.Uint16(content[2:]))
	content = content[treeMetaSize:]
	switch {
	case nodeCount < 0 || int(nodeCount) > len(content):
		return Header{}, t, p, ErrTreeRegion
	case special < -1 || special >= nodeCount:
		return Header{}, t, p, ErrTreeRegion
	case len(content)-int(nodeCount) < payloadMetaSize:
		return Header{}, t, p, ErrTreeRegion
	}
	t = TreeRegion{
		NodeCount:   nodeCount,
		SpecialLeaf: special,
		Nodes:       append([]byte(nil), content[:nodeCount]...),
	}
	content = content[nodeCount:]

	// Payload region.
	bitCount := le.Uint64(content[0:])
	content = content[payloadMetaSize:]
	n := internal.ByteLen(bitCount)
	if n > uint64(len(content)) {
		return Header{}, TreeRegion{}, p, ErrPayloadRegion
	}
	p = Payload{
		BitCount: bitCount,
		Data:     append([]byte(nil), content[:n]...),
	}
	return h, t, p, nil
}
