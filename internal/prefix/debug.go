// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"fmt"
	"strings"
)

// String renders the code as '0' and '1' characters in root-to-leaf order.
func (bs *BitSequence) String() string {
	var sb strings.Builder
	sb.Grow(bs.nbits)
	for i := 0; i < bs.nbits; i++ {
		if bs.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// GoString renders the symbol together with its code.
func (bs *BitSequence) GoString() string {
	return fmt.Sprintf("{sym: 0x%02x, len: %d, bits: %s}", bs.sym, bs.nbits, bs.String())
}

func (pw *Writer) String() string {
	var ss []string
	ss = append(ss, "{")
	ss = append(ss, fmt.Sprintf("\tbytes: %d,", len(pw.buf)))
	ss = append(ss, fmt.Sprintf("\tnext: %08b,", pw.next))
	ss = append(ss, fmt.Sprintf("\toffset: %d,", pw.offset))
	ss = append(ss, fmt.Sprintf("\tnbits: %d,", pw.nbits))
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}
