// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kp_lib
// +build !no_kp_lib

package bench

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

func init() {
	Register("kp", Codec{
		NewWriter: func(w io.Writer, lvl int) (io.WriteCloser, error) {
			return flate.NewWriter(w, lvl)
		},
		NewReader: func(r io.Reader) (io.ReadCloser, error) {
			return flate.NewReader(r), nil
		},
	})
	Register("zstd", Codec{
		NewWriter: func(w io.Writer, lvl int) (io.WriteCloser, error) {
			return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(lvl)))
		},
		NewReader: func(r io.Reader) (io.ReadCloser, error) {
			zr, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return zr.IOReadCloser(), nil
		},
	})
	Register("huff0", Codec{
		NewWriter: func(w io.Writer, _ int) (io.WriteCloser, error) {
			return newHuff0Writer(w), nil
		},
		NewReader: func(r io.Reader) (io.ReadCloser, error) {
			return newHuff0Reader(r), nil
		},
	})
}
