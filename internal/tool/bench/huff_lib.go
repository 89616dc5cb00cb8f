// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_huff_lib
// +build !no_huff_lib

package bench

import (
	"io"

	"github.com/dsnet/huffman"
)

func init() {
	// The container has no compression levels.
	Register("huff", Codec{
		NewWriter: func(w io.Writer, _ int) (io.WriteCloser, error) {
			return huffman.NewWriter(w), nil
		},
		NewReader: func(r io.Reader) (io.ReadCloser, error) {
			return huffman.NewReader(r), nil
		},
	})
}
