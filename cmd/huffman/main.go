// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huffman compresses and decompresses files using the static Huffman
// container format.
//
// Example usage:
//
//	$ huffman -c twain.txt twain.huf   # Compress twain.txt into twain.huf
//	$ huffman -d twain.huf             # Decompress twain.huf to stdout
//	$ huffman -t -v twain.txt          # Verify a round trip and print statistics
//
// The mode flags are case-insensitive. An infile of "-" reads from stdin.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dsnet/golib/unitconv"

	"github.com/dsnet/huffman"
	"github.com/dsnet/huffman/internal/tree"
)

const usage = `USAGE: huffman -<c|d|t> [-v] <infile> [outfile]
    -c : compress infile, output to outfile (or stdout if not given)
    -d : decompress infile, output to outfile (or stdout if not given)
    -t : compress infile then decompress the compressed contents,
         to test if it matches with original file; outfile is ignored
    -v : verbose; print additional (de)compression information for debug
`

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var compress, decompress, test, verbose bool
	fs := flag.NewFlagSet("huffman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	for _, f := range []struct {
		p    *bool
		name string
	}{
		{&compress, "c"}, {&decompress, "d"}, {&test, "t"}, {&verbose, "v"},
	} {
		fs.BoolVar(f.p, f.name, false, "")
		fs.BoolVar(f.p, strings.ToUpper(f.name), false, "")
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if btoi(compress)+btoi(decompress)+btoi(test) != 1 || fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return exitUsage
	}

	logger := log.New(stderr, "huffman: ", 0)
	input, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}

	// Diagnostics must not be mixed with data written to stdout.
	outfile := fs.Arg(1)
	diag := stdout
	if outfile == "" && !test {
		diag = stderr
	}
	if !verbose {
		diag = io.Discard
	}

	var output []byte
	switch {
	case compress:
		output, err = compressData(diag, input)
	case decompress:
		output, err = decompressData(diag, input)
	case test:
		if err = testData(diag, input); err != nil {
			logger.Print(err)
			return exitFailure
		}
		fmt.Fprintln(stdout, "Test passed! Compressed-then-decompressed file is the same!")
		return exitSuccess
	}
	if err != nil {
		logger.Print(err)
		return exitFailure
	}

	if outfile == "" {
		_, err = stdout.Write(output)
	} else {
		err = os.WriteFile(outfile, output, 0664)
	}
	if err != nil {
		logger.Print(err)
		return exitFailure
	}
	return exitSuccess
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func compressData(diag io.Writer, input []byte) ([]byte, error) {
	if len(input) == 0 {
		fmt.Fprintln(diag, "Compressing an empty file!")
		return nil, nil
	}
	e, err := huffman.Encode(input)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(diag, "File compression info:")
	printTree(diag, e.Root)
	printSymbols(diag, &e.Frequencies, &e.Codes)
	printStats(diag, huffman.MeasureFile(e.Tree, e.Payload))
	return e.File, nil
}

func decompressData(diag io.Writer, input []byte) ([]byte, error) {
	if len(input) == 0 {
		fmt.Fprintln(diag, "Decompressing an empty file!")
		return nil, nil
	}
	d, err := huffman.Decode(input)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(diag, "File decompression info:")
	printTree(diag, d.Root)
	printStats(diag, huffman.MeasureFile(d.Tree, d.Payload))
	return d.Data, nil
}

func testData(diag io.Writer, input []byte) error {
	file, err := compressData(diag, input)
	if err != nil {
		return err
	}
	output, err := decompressData(diag, file)
	if err != nil {
		return err
	}
	if !bytes.Equal(input, output) {
		return fmt.Errorf("test failed! Compressed-then-decompressed file is not the same")
	}
	return nil
}

func printTree(w io.Writer, root *tree.Node) {
	fmt.Fprintln(w, "Character tree:")
	fmt.Fprintln(w, tree.Dump(root))
}

func printSymbols(w io.Writer, freqs *tree.Frequencies, codes *tree.CodeTable) {
	fmt.Fprintln(w, "Character information:")
	for sym, bs := range codes {
		if bs != nil {
			fmt.Fprintf(w, "char: %s, bits: %v, frequency: %d\n", tree.FormatKey(byte(sym)), bs, freqs[sym])
		}
	}
}

func printStats(w io.Writer, s huffman.Stats) {
	fmt.Fprintf(w, "Num tree nodes: %d\n", s.NodeCount)
	fmt.Fprintf(w, "Special leaf location: %d\n", s.SpecialLeaf)
	fmt.Fprintf(w, "Tree data size: %s\n", formatSize(s.TreeDataSize))
	fmt.Fprintf(w, "Tree region size: %s\n", formatSize(s.TreeRegionSize))
	fmt.Fprintf(w, "Number of bits in compressed content: %d\n", s.PayloadBits)
	fmt.Fprintf(w, "Compressed content size: %s\n", formatSize(s.PayloadDataSize))
	fmt.Fprintf(w, "Payload region size: %s\n", formatSize(s.PayloadRegionSize))
	fmt.Fprintf(w, "Total compressed file size: %s\n", formatSize(s.FileSize))
}

func formatSize(n int) string {
	return fmt.Sprintf("%d (%sB)", n, unitconv.FormatPrefix(float64(n), unitconv.Base1024, 2))
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
