// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a static Huffman compressed container format.
//
// Every container holds the whole of one input:
//
//	Header:        magic:uint32 | checksum:uint32 | contentLength:uint64
//	TreeRegion:    nodeCount:int16 | specialLeaf:int16 | nodes[nodeCount]
//	PayloadRegion: bitCount:uint64 | data[ceil(bitCount/8)]
//
// All integers are little-endian. The tree is stored in postorder where each
// leaf is its key and each internal node is the sentinel byte 0x00. The
// payload holds the code of every input byte, packed starting with the
// least-significant bit of each byte.
//
// The empty input compresses to the empty output.
package huffman

import (
	"github.com/dsnet/huffman/internal/errors"
	"github.com/dsnet/huffman/internal/prefix"
	"github.com/dsnet/huffman/internal/tree"
)

func errCorrupted(msg string) error {
	return errors.Error{Code: errors.Corrupted, Pkg: "huffman", Msg: msg}
}

// Errors reported by ParseFile and Decompress for malformed containers, in the
// order the checks are made. ErrClosed is returned by a closed Writer or Reader.
var (
	ErrTruncated     = errCorrupted("file too short")
	ErrMagic         = errCorrupted("invalid magic number")
	ErrContentLength = errCorrupted("content length exceeds file size")
	ErrChecksum      = errCorrupted("checksum mismatch")
	ErrTreeRegion    = errCorrupted("invalid tree region")
	ErrPayloadRegion = errCorrupted("payload length exceeds file size")

	ErrClosed error = errors.Error{Code: errors.Closed, Pkg: "huffman"}
)

// Encoding holds every intermediate result of compressing an input.
type Encoding struct {
	Frequencies tree.Frequencies
	Root        *tree.Node
	Codes       tree.CodeTable
	Tree        TreeRegion
	Payload     Payload
	File        []byte // The complete container
}

// Decoding holds every intermediate result of decompressing a container.
type Decoding struct {
	Header  Header
	Tree    TreeRegion
	Payload Payload
	Root    *tree.Node // Rebuilt tree; all weights are zero
	Data    []byte     // The decompressed output
}

// Compress returns the container holding b.
func Compress(b []byte) ([]byte, error) {
	e, err := Encode(b)
	if err != nil {
		return nil, err
	}
	return e.File, nil
}

// Decompress returns the data held by the container b.
func Decompress(b []byte) ([]byte, error) {
	d, err := Decode(b)
	if err != nil {
		return nil, err
	}
	return d.Data, nil
}

// Encode compresses b and reports all intermediate results.
// If b is empty, the returned Encoding has an empty File.
func Encode(b []byte) (*Encoding, error) {
	e := &Encoding{Frequencies: tree.Count(b)}
	e.Root = tree.Build(e.Frequencies)

	var err error
	if e.Codes, err = tree.Codes(e.Root); err != nil {
		return nil, err
	}
	if e.Tree, err = tree.Serialize(e.Root); err != nil {
		return nil, err
	}
	var pw prefix.Writer
	if err = e.Codes.Encode(&pw, b); err != nil {
		return nil, err
	}
	e.Payload = Payload{BitCount: pw.BitsWritten(), Data: pw.Bytes()}
	if len(b) > 0 {
		e.File = BuildFile(e.Tree, e.Payload)
	}
	return e, nil
}

// Decode decompresses the container b and reports all intermediate results.
// If b is empty, the returned Decoding holds no data.
func Decode(b []byte) (*Decoding, error) {
	d := new(Decoding)
	if len(b) == 0 {
		return d, nil
	}

	var err error
	if d.Header, d.Tree, d.Payload, err = parseFile(b); err != nil {
		return nil, err
	}
	if d.Root, err = tree.Deserialize(d.Tree); err != nil {
		return nil, err
	}
	if d.Data, err = tree.Decode(d.Root, d.Payload.Data, d.Payload.BitCount); err != nil {
		return nil, err
	}
	return d, nil
}
