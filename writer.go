// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "io"

// Writer compresses everything written to it into a single container.
//
// Since the code table depends on the whole input, all data is buffered in
// memory and nothing is written to the underlying io.Writer until Close.
type Writer struct {
	InputOffset  int64 // Total number of bytes passed to Write
	OutputOffset int64 // Total number of bytes written to the underlying io.Writer

	wr  io.Writer
	buf []byte
	err error // Persistent error
}

// NewWriter creates a new Writer that writes a container to w upon Close.
func NewWriter(w io.Writer) *Writer {
	hw := new(Writer)
	hw.Reset(w)
	return hw
}

func (hw *Writer) Write(buf []byte) (int, error) {
	if hw.err != nil {
		return 0, hw.err
	}
	hw.buf = append(hw.buf, buf...)
	hw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close compresses the buffered data and writes the container.
// It does not close the underlying io.Writer.
func (hw *Writer) Close() error {
	if hw.err == ErrClosed {
		return nil
	}
	if hw.err != nil {
		return hw.err
	}

	file, err := Compress(hw.buf)
	if err != nil {
		hw.err = err
		return err
	}
	n, err := hw.wr.Write(file)
	hw.OutputOffset += int64(n)
	if err != nil {
		hw.err = err
		return err
	}
	hw.buf = hw.buf[:0]
	hw.err = ErrClosed
	return nil
}

// Reset discards the Writer's state and makes it equivalent to the result of
// NewWriter, but writing to w instead. The internal buffer is reused.
func (hw *Writer) Reset(w io.Writer) {
	*hw = Writer{wr: w, buf: hw.buf[:0]}
}
