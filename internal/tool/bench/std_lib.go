// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_std_lib
// +build !no_std_lib

package bench

import (
	"compress/flate"
	"io"
)

func init() {
	Register("std", Codec{
		NewWriter: func(w io.Writer, lvl int) (io.WriteCloser, error) {
			return flate.NewWriter(w, lvl)
		},
		NewReader: func(r io.Reader) (io.ReadCloser, error) {
			return flate.NewReader(r), nil
		},
	})
}
