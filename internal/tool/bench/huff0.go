// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kp_lib
// +build !no_kp_lib

package bench

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/huff0"
)

// The huff0 codec is a bare Huffman entropy coder, which makes it the closest
// relative of the Huffman container. Since huff0 has no framing of its own,
// the input is split into blocks that are each prefixed by a header:
//
//	mode:uint8 | rawLen:uint32 | dataLen:uint32 | data[dataLen]
const huff0HeaderSize = 1 + 4 + 4

const (
	huff0Raw  = iota // Data is stored as is
	huff0RLE         // Data is a single byte repeated rawLen times
	huff0Huff        // Data is a 1X stream with its table
)

type huff0Writer struct {
	wr      io.Writer
	buf     []byte
	scratch huff0.Scratch
	err     error
}

func newHuff0Writer(w io.Writer) io.WriteCloser {
	hw := &huff0Writer{wr: w}
	hw.scratch.Reuse = huff0.ReusePolicyNone
	return hw
}

func (hw *huff0Writer) Write(buf []byte) (int, error) {
	cnt := len(buf)
	for hw.err == nil && len(buf) > 0 {
		n := huff0.BlockSizeMax - len(hw.buf)
		if n > len(buf) {
			n = len(buf)
		}
		hw.buf = append(hw.buf, buf[:n]...)
		buf = buf[n:]
		if len(hw.buf) == huff0.BlockSizeMax {
			hw.err = hw.flush()
		}
	}
	if hw.err != nil {
		return cnt - len(buf), hw.err
	}
	return cnt, nil
}

func (hw *huff0Writer) flush() error {
	if len(hw.buf) == 0 {
		return nil
	}
	mode, data := byte(huff0Huff), hw.buf
	out, _, err := huff0.Compress1X(hw.buf, &hw.scratch)
	switch err {
	case nil:
		data = out
	case huff0.ErrIncompressible:
		mode = huff0Raw
	case huff0.ErrUseRLE:
		mode, data = huff0RLE, hw.buf[:1]
	default:
		return err
	}

	var hdr [huff0HeaderSize]byte
	hdr[0] = mode
	binary.LittleEndian.PutUint32(hdr[1:], uint32(len(hw.buf)))
	binary.LittleEndian.PutUint32(hdr[5:], uint32(len(data)))
	if _, err := hw.wr.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := hw.wr.Write(data); err != nil {
		return err
	}
	hw.buf = hw.buf[:0]
	return nil
}

func (hw *huff0Writer) Close() error {
	if hw.err == nil {
		hw.err = hw.flush()
	}
	if hw.err != nil {
		return hw.err
	}
	hw.err = io.ErrClosedPipe
	return nil
}

type huff0Reader struct {
	rd      io.Reader
	toRead  []byte
	scratch *huff0.Scratch
	err     error
}

func newHuff0Reader(r io.Reader) io.ReadCloser {
	return &huff0Reader{rd: r}
}

func (hr *huff0Reader) Read(buf []byte) (int, error) {
	for {
		if len(hr.toRead) > 0 {
			cnt := copy(buf, hr.toRead)
			hr.toRead = hr.toRead[cnt:]
			return cnt, nil
		}
		if hr.err != nil {
			return 0, hr.err
		}
		hr.toRead, hr.err = hr.readBlock()
	}
}

func (hr *huff0Reader) readBlock() ([]byte, error) {
	var hdr [huff0HeaderSize]byte
	if _, err := io.ReadFull(hr.rd, hdr[:]); err != nil {
		return nil, err // io.EOF only if no header byte was read
	}
	mode := hdr[0]
	rawLen := int(binary.LittleEndian.Uint32(hdr[1:]))
	dataLen := int(binary.LittleEndian.Uint32(hdr[5:]))
	if rawLen > huff0.BlockSizeMax || dataLen > huff0.BlockSizeMax {
		return nil, fmt.Errorf("huff0: block too large")
	}
	data := make([]byte, dataLen)
	if _, err := io.ReadFull(hr.rd, data); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch mode {
	case huff0Raw:
		if dataLen != rawLen {
			return nil, fmt.Errorf("huff0: raw block length mismatch")
		}
		return data, nil
	case huff0RLE:
		if dataLen != 1 {
			return nil, fmt.Errorf("huff0: invalid RLE block")
		}
		return bytes.Repeat(data, rawLen), nil
	case huff0Huff:
		s, remain, err := huff0.ReadTable(data, hr.scratch)
		if err != nil {
			return nil, err
		}
		hr.scratch = s
		out, err := s.Decoder().Decompress1X(make([]byte, 0, rawLen), remain)
		if err != nil {
			return nil, err
		}
		if len(out) != rawLen {
			return nil, fmt.Errorf("huff0: block length mismatch")
		}
		return out, nil
	default:
		return nil, fmt.Errorf("huff0: invalid block mode %d", mode)
	}
}

func (hr *huff0Reader) Close() error {
	if hr.err == io.EOF || hr.err == io.ErrClosedPipe {
		hr.toRead = nil
		hr.err = io.ErrClosedPipe
		return nil
	}
	return hr.err
}
