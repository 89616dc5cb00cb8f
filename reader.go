// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "io"

// Reader decompresses a single container read from an io.Reader.
//
// The container is only verified once it has been completely read, so the
// first call to Read consumes the underlying io.Reader until io.EOF.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     io.Reader
	loaded bool   // Whether the container has been read
	toRead []byte // Decompressed data ready to be emitted from Read
	err    error  // Persistent error
}

// NewReader creates a new Reader reading the container from r.
func NewReader(r io.Reader) *Reader {
	hr := new(Reader)
	hr.Reset(r)
	return hr
}

func (hr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(hr.toRead) > 0 {
			cnt := copy(buf, hr.toRead)
			hr.toRead = hr.toRead[cnt:]
			hr.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if hr.err != nil {
			return 0, hr.err
		}
		hr.load()
	}
}

// load reads and decompresses the whole container.
func (hr *Reader) load() {
	if hr.loaded {
		hr.err = io.EOF
		return
	}
	hr.loaded = true

	file, err := io.ReadAll(hr.rd)
	hr.InputOffset += int64(len(file))
	if err != nil {
		hr.err = err
		return
	}
	if hr.toRead, err = Decompress(file); err != nil {
		hr.err = err
	}
}

// Close ends the Reader. It does not close the underlying io.Reader.
// It returns the persistent error, if any, other than io.EOF.
func (hr *Reader) Close() error {
	if hr.err == nil || hr.err == io.EOF || hr.err == ErrClosed {
		hr.toRead = nil // Make sure future reads fail
		hr.err = ErrClosed
		return nil
	}
	return hr.err
}

// Reset discards the Reader's state and makes it equivalent to the result of
// NewReader, but reading from r instead.
func (hr *Reader) Reset(r io.Reader) error {
	*hr = Reader{rd: r}
	return nil
}
