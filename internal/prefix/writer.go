// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

// Writer packs a series of codes into a byte buffer.
// The zero value is an empty Writer ready to use.
type Writer struct {
	buf    []byte // Completed bytes
	next   byte   // Partially filled byte
	offset uint   // Number of valid bits in next; always 0..7
	nbits  uint64 // Total number of bits written
}

// WriteBits appends the bits of bs starting at the current bit offset.
// Completed bytes are moved into the buffer, and any leftover bits are kept
// as the new partial byte.
func (pw *Writer) WriteBits(bs *BitSequence) {
	n := bs.Len()
	full := n / 8
	for _, c := range bs.bits[:full] {
		pw.next |= c << pw.offset
		pw.buf = append(pw.buf, pw.next)
		pw.next = c >> (8 - pw.offset) // Zero when offset is zero
	}
	if rem := uint(n % 8); rem > 0 {
		c := bs.bits[full] // Bits above rem are always zero
		pw.next |= c << pw.offset
		if pw.offset+rem >= 8 {
			pw.buf = append(pw.buf, pw.next)
			pw.next = c >> (8 - pw.offset)
		}
		pw.offset = (pw.offset + rem) % 8
	}
	pw.nbits += uint64(n)
}

// BitsWritten reports the total number of bits written.
func (pw *Writer) BitsWritten() uint64 { return pw.nbits }

// Offset reports the number of bits held in the trailing partial byte.
func (pw *Writer) Offset() uint { return pw.offset }

// Bytes returns the packed bits. If BitsWritten is not a multiple of 8,
// the unused high bits of the final byte are zero.
func (pw *Writer) Bytes() []byte {
	b := make([]byte, len(pw.buf), len(pw.buf)+1)
	copy(b, pw.buf)
	if pw.offset > 0 {
		b = append(b, pw.next)
	}
	return b
}

// Reset discards all written bits, retaining the buffer for reuse.
func (pw *Writer) Reset() {
	*pw = Writer{buf: pw.buf[:0]}
}
