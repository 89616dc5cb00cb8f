// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowName(t *testing.T) {
	vectors := []struct {
		file  string
		level int
		size  int
		want  string
	}{
		{"text.txt", 6, 1e4, "text.txt:6:1e4"},
		{"/tmp/data/random.bin", 1, 1e6, "random.bin:1:1e6"},
		{"zeros.bin", 9, 1e3, "zeros.bin:9:1e3"},
		{"text.txt", 6, 1 << 16, "text.txt:6:64K"},
		{"text.txt", 6, 1536, "text.txt:6:1.50K"},
		{"text.txt", 6, 100, "text.txt:6:100"},
	}

	for i, v := range vectors {
		if got := rowName(v.file, v.level, v.size); got != v.want {
			t.Errorf("test %d, rowName(%q, %d, %d) = %q, want %q", i, v.file, v.level, v.size, got, v.want)
		}
	}
}

func TestParseTest(t *testing.T) {
	for _, want := range Tests() {
		got, err := ParseTest(want.String())
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseTest("speed")
	assert.Error(t, err)
	assert.Equal(t, "Test(7)", Test(7).String())
	assert.Equal(t, "ratio", TestCompressRatio.Unit())
	assert.Equal(t, "MB/s", TestDecodeRate.Unit())
}

func TestCodecNames(t *testing.T) {
	names := Codecs()
	assert.Equal(t, Primary, names[0])
	for _, c := range []string{"huff", "std", "kp", "zstd", "xz", "huff0"} {
		assert.Contains(t, names, c)
	}
	assert.Panics(t, func() { Register(Primary, Codec{}) })
}

func TestRun(t *testing.T) {
	results, rows := Run(TestCompressRatio, []string{"huff", "huff0", "missing"}, []string{"text.txt", "zeros.bin"}, []int{6}, []int{1e4}, nil)
	assert.Equal(t, []string{"text.txt:6:1e4", "zeros.bin:6:1e4"}, rows)
	for i, row := range results {
		assert.Len(t, row, 3)
		assert.Greater(t, row[0].R, 1.0, rows[i])
		assert.Equal(t, 1.0, row[0].D, rows[i])
		assert.Greater(t, row[1].R, 0.0, rows[i])
		assert.Zero(t, row[2].R, rows[i])
	}
}

func TestMeasureFailure(t *testing.T) {
	broken := Codec{
		NewWriter: func(io.Writer, int) (io.WriteCloser, error) { return nil, io.ErrClosedPipe },
		NewReader: func(io.Reader) (io.ReadCloser, error) { return nil, io.ErrClosedPipe },
	}
	for _, test := range Tests() {
		assert.Zero(t, measure(test, broken, []byte("abracadabra"), 6), test.String())
	}
}
