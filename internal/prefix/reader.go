// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import "io"

// Reader reads individual bits from a packed byte slice.
// It never reads past the bit limit given to Init, even if the slice has
// padding bits left in its final byte.
type Reader struct {
	data  []byte
	nbits uint64 // Bit limit
	pos   uint64 // Number of bits read so far
}

// NewReader creates a Reader over the first nbits bits of data.
func NewReader(data []byte, nbits uint64) *Reader {
	pr := new(Reader)
	pr.Init(data, nbits)
	return pr
}

// Init resets the Reader to read the first nbits bits of data.
// The limit is clamped to the number of bits actually in data.
func (pr *Reader) Init(data []byte, nbits uint64) {
	if max := 8 * uint64(len(data)); nbits > max {
		nbits = max
	}
	*pr = Reader{data: data, nbits: nbits}
}

// ReadBit reads the next bit. It returns io.EOF once the limit is reached.
func (pr *Reader) ReadBit() (bool, error) {
	if pr.pos >= pr.nbits {
		return false, io.EOF
	}
	bit := pr.data[pr.pos/8]>>(pr.pos%8)&1 != 0
	pr.pos++
	return bit, nil
}

// BitsRead reports the number of bits read so far.
func (pr *Reader) BitsRead() uint64 { return pr.pos }

// BitsLeft reports the number of bits that can still be read.
func (pr *Reader) BitsLeft() uint64 { return pr.nbits - pr.pos }
