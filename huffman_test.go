// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/huffman/internal/errors"
	"github.com/dsnet/huffman/internal/testutil"
	"github.com/dsnet/huffman/internal/tree"
)

func TestCompress(t *testing.T) {
	vectors := []struct {
		desc   string
		input  string
		output []byte
	}{{
		desc:   "empty",
		input:  "",
		output: nil,
	}, {
		desc:   "abracadabra",
		input:  "abracadabra",
		output: abracadabraFile,
	}, {
		desc:   "single symbol",
		input:  "AAAA",
		output: dh("0df0fecaa25d96890e000000000000000100ffff41040000000000000000"),
	}, {
		desc:   "sentinel leaf as right child",
		input:  "\x00\x00\x01",
		output: dh("0df0feca9a2dd959100000000000000003000100010000030000000000000003"),
	}, {
		desc:   "sentinel leaf first in postorder",
		input:  "a\x00b\x00\x00c",
		output: dh("0df0fecadcbf05fe150000000000000007000000006361620000000b000000000000007302"),
	}}

	for i, v := range vectors {
		output, err := Compress([]byte(v.input))
		if err != nil {
			t.Errorf("test %d (%s), unexpected error: %v", i, v.desc, err)
			continue
		}
		if !bytes.Equal(output, v.output) {
			t.Errorf("test %d (%s), output mismatch:\ngot  %x\nwant %x", i, v.desc, output, v.output)
		}

		input, err := Decompress(output)
		if err != nil {
			t.Errorf("test %d (%s), unexpected error: %v", i, v.desc, err)
			continue
		}
		if string(input) != v.input {
			t.Errorf("test %d (%s), input mismatch: got %q, want %q", i, v.desc, input, v.input)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	var inputs [][]byte
	for _, name := range testutil.SampleNames() {
		inputs = append(inputs, testutil.Samples()[name])
	}
	r := testutil.NewRand(0)
	for _, n := range []int{1, 2, 7, 8, 9, 100, 4096} {
		inputs = append(inputs, r.Bytes(n))
		inputs = append(inputs, testutil.ResizeData(testutil.Samples()["text.txt"], n))
	}
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	inputs = append(inputs, all, []byte{0x00}, []byte{0xff, 0x00})

	for i, input := range inputs {
		output, err := Compress(input)
		if err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		got, err := Decompress(output)
		if err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if !bytes.Equal(got, input) {
			t.Errorf("test %d, round trip mismatch: got %d bytes, want %d bytes", i, len(got), len(input))
		}
	}
}

func TestEncode(t *testing.T) {
	e, err := Encode([]byte("abracadabra"))
	require.NoError(t, err)

	assert.Equal(t, 5, e.Frequencies['a'])
	assert.Equal(t, 11, e.Root.Weight)
	codes := map[byte]string{}
	for sym, bs := range e.Codes {
		if bs != nil {
			codes[byte(sym)] = bs.String()
		}
	}
	wantCodes := map[byte]string{'a': "0", 'c': "100", 'd': "101", 'b': "110", 'r': "111"}
	if diff := cmp.Diff(wantCodes, codes); diff != "" {
		t.Errorf("Codes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, TreeRegion{NodeCount: 9, SpecialLeaf: -1, Nodes: []byte("acd\x00br\x00\x00\x00")}, e.Tree)
	assert.Equal(t, Payload{BitCount: 23, Data: dh("76513b")}, e.Payload)
	assert.Equal(t, abracadabraFile, e.File)

	e, err = Encode(nil)
	require.NoError(t, err)
	assert.Nil(t, e.Root)
	assert.Empty(t, e.File)
	assert.Equal(t, int16(-1), e.Tree.SpecialLeaf)
}

func TestDecode(t *testing.T) {
	d, err := Decode(abracadabraFile)
	require.NoError(t, err)
	assert.Equal(t, Header{Magic: Magic, Checksum: 0x8e31abde, ContentLength: 24}, d.Header)
	assert.Equal(t, int16(9), d.Tree.NodeCount)
	assert.Equal(t, uint64(23), d.Payload.BitCount)
	assert.Equal(t, "abracadabra", string(d.Data))
	assert.Equal(t, 0, d.Root.Weight)
	assert.Equal(t, byte('a'), d.Root.Left.Key)

	d, err = Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, d.Data)
}

func TestDecodeErrors(t *testing.T) {
	abraTree := TreeRegion{NodeCount: 9, SpecialLeaf: -1, Nodes: []byte("acd\x00br\x00\x00\x00")}
	vectors := []struct {
		desc  string
		input []byte
		err   error
	}{{
		desc:  "corrupted magic",
		input: alter(func(b []byte) []byte { b[0] ^= 0xff; return b }),
		err:   ErrMagic,
	}, {
		desc:  "tree with two roots",
		input: BuildFile(TreeRegion{NodeCount: 2, SpecialLeaf: -1, Nodes: []byte("ab")}, Payload{}),
		err:   tree.ErrStructure,
	}, {
		desc:  "tree with missing leaf",
		input: BuildFile(TreeRegion{NodeCount: 2, SpecialLeaf: -1, Nodes: []byte("a\x00")}, Payload{}),
		err:   tree.ErrStructure,
	}, {
		desc:  "empty tree",
		input: BuildFile(TreeRegion{NodeCount: 0, SpecialLeaf: -1}, Payload{BitCount: 1, Data: []byte{0}}),
		err:   tree.ErrStructure,
	}, {
		desc:  "payload ends in the middle of a code",
		input: BuildFile(abraTree, Payload{BitCount: 21, Data: dh("76511b")}),
		err:   tree.ErrIncomplete,
	}, {
		desc:  "one bit with a single symbol tree",
		input: BuildFile(TreeRegion{NodeCount: 1, SpecialLeaf: -1, Nodes: []byte("A")}, Payload{BitCount: 2, Data: []byte{0x02}}),
		err:   tree.ErrStructure,
	}}

	for i, v := range vectors {
		_, err := Decompress(v.input)
		if err != v.err {
			t.Errorf("test %d (%s), error mismatch: got %v, want %v", i, v.desc, err, v.err)
			continue
		}
		if !errors.IsCorrupted(err) && !errors.IsStructural(err) {
			t.Errorf("test %d (%s), unexpected error class: %v", i, v.desc, err)
		}
	}
}

func TestDecodePadding(t *testing.T) {
	// Bits after BitCount in the last byte are never consumed.
	abraTree := TreeRegion{NodeCount: 9, SpecialLeaf: -1, Nodes: []byte("acd\x00br\x00\x00\x00")}
	file := BuildFile(abraTree, Payload{BitCount: 23, Data: dh("7651bb")})
	got, err := Decompress(file)
	require.NoError(t, err)
	assert.Equal(t, "abracadabra", string(got))
}

func TestWriter(t *testing.T) {
	input := testutil.Samples()["text.txt"]

	var bb bytes.Buffer
	hw := NewWriter(&bb)
	for b := input; len(b) > 0; {
		n := 1000
		if n > len(b) {
			n = len(b)
		}
		cnt, err := hw.Write(b[:n])
		require.NoError(t, err)
		require.Equal(t, n, cnt)
		b = b[n:]
	}
	assert.Zero(t, bb.Len(), "nothing is written before Close")
	require.NoError(t, hw.Close())
	assert.Equal(t, int64(len(input)), hw.InputOffset)
	assert.Equal(t, int64(bb.Len()), hw.OutputOffset)

	want, err := Compress(input)
	require.NoError(t, err)
	assert.Equal(t, want, bb.Bytes())

	// Closing twice is fine, but writing after Close is not.
	assert.NoError(t, hw.Close())
	_, err = hw.Write([]byte("x"))
	assert.Equal(t, ErrClosed, err)
	assert.True(t, errors.IsClosed(err))

	// Reset allows reuse.
	bb.Reset()
	hw.Reset(&bb)
	hw.Write([]byte("abracadabra"))
	require.NoError(t, hw.Close())
	assert.Equal(t, abracadabraFile, bb.Bytes())
}

func TestWriterError(t *testing.T) {
	errFail := fmt.Errorf("write failure")
	bw := &testutil.BuggyWriter{W: new(bytes.Buffer), N: 10, Err: errFail}
	hw := NewWriter(bw)
	hw.Write([]byte("abracadabra"))
	assert.Equal(t, errFail, hw.Close())
	assert.Equal(t, int64(10), hw.OutputOffset)
	assert.Equal(t, errFail, hw.Close(), "error is persistent")
}

func TestReader(t *testing.T) {
	input := testutil.Samples()["repeats.bin"]
	file, err := Compress(input)
	require.NoError(t, err)

	hr := NewReader(bytes.NewReader(file))
	var got bytes.Buffer
	buf := make([]byte, 777)
	for {
		n, err := hr.Read(buf)
		got.Write(buf[:n])
		if err != nil {
			require.Equal(t, io.EOF, err)
			break
		}
	}
	assert.Equal(t, input, got.Bytes())
	assert.Equal(t, int64(len(file)), hr.InputOffset)
	assert.Equal(t, int64(len(input)), hr.OutputOffset)

	assert.NoError(t, hr.Close())
	_, err = hr.Read(buf)
	assert.Equal(t, ErrClosed, err)

	// An empty stream holds no data.
	hr.Reset(bytes.NewReader(nil))
	n, err := hr.Read(buf)
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestReaderError(t *testing.T) {
	vectors := []struct {
		desc  string
		input []byte
		err   error
	}{
		{"corrupted magic", alter(func(b []byte) []byte { b[1] = 0; return b }), ErrMagic},
		{"truncated", abracadabraFile[:20], ErrTruncated},
		{"checksum", alter(func(b []byte) []byte { b[20]++; return b }), ErrChecksum},
	}

	for i, v := range vectors {
		hr := NewReader(bytes.NewReader(v.input))
		buf := make([]byte, 64)
		if _, err := hr.Read(buf); err != v.err {
			t.Errorf("test %d (%s), Read() error mismatch: got %v, want %v", i, v.desc, err, v.err)
		}
		if _, err := hr.Read(buf); err != v.err {
			t.Errorf("test %d (%s), error is not persistent: got %v, want %v", i, v.desc, err, v.err)
		}
		if err := hr.Close(); err != v.err {
			t.Errorf("test %d (%s), Close() error mismatch: got %v, want %v", i, v.desc, err, v.err)
		}
	}

	errFail := fmt.Errorf("read failure")
	br := &testutil.BuggyReader{R: bytes.NewReader(abracadabraFile), N: 10, Err: errFail}
	hr := NewReader(br)
	_, err := hr.Read(make([]byte, 64))
	assert.Equal(t, errFail, err)
	assert.Equal(t, int64(10), hr.InputOffset)
}

func BenchmarkCompress(b *testing.B) {
	input := testutil.Samples()["text.txt"]
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		if _, err := Compress(input); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	input := testutil.Samples()["text.txt"]
	file, err := Compress(input)
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decompress(file); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
