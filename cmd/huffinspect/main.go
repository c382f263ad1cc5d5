// huffinspect reads a Huffman code from a bit stream and reports the
// resulting decode table.
//
// Usage:
//
//	huffinspect -alphabet N [-symbols K] [-png out.png] <file|->
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/32bitkid/brunsli/bitstream"
	"github.com/32bitkid/brunsli/huffman"
	"github.com/32bitkid/brunsli/visual"
)

type options struct {
	alphabetSize int
	symbols      int
	pngPath      string
	input        string
}

func parseOptions(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("huffinspect", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.alphabetSize, "alphabet", 0, "alphabet size of the code")
	fs.IntVar(&opts.symbols, "symbols", 0, "number of symbols to decode after the code")
	fs.StringVar(&opts.pngPath, "png", "", "write a rendering of the root table to this file")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.alphabetSize <= 0 {
		return opts, errors.New("-alphabet must be positive")
	}
	if opts.symbols < 0 {
		return opts, errors.New("-symbols must not be negative")
	}
	if fs.NArg() != 1 {
		return opts, errors.Errorf("expected exactly one input, got %d", fs.NArg())
	}
	opts.input = fs.Arg(0)
	return opts, nil
}

func inspect(r io.Reader, w io.Writer, opts options) (*huffman.DecodingData, error) {
	br := bitstream.NewReader(r)

	var d huffman.DecodingData
	if err := d.ReadFromBitStream(opts.alphabetSize, br, nil); err != nil {
		return nil, err
	}

	table := d.Table()
	fmt.Fprintf(w, "table: %d entries, %d bits consumed\n", len(table), br.Offset())
	for bits, c := range visual.Histogram(table, huffman.TableBits) {
		if c == 0 {
			continue
		}
		kind := "code"
		if bits > huffman.TableBits {
			kind = "redirect"
		}
		fmt.Fprintf(w, "  %2d bits: %3d root slots (%s)\n", bits, c, kind)
	}

	if opts.symbols > 0 {
		fmt.Fprint(w, "symbols:")
		for i := 0; i < opts.symbols; i++ {
			fmt.Fprintf(w, " %d", d.ReadSymbol(br))
		}
		fmt.Fprintln(w)
		if !br.Healthy() {
			return &d, errors.Errorf("symbol data ended after %d bits", br.Offset())
		}
	}

	return &d, nil
}

func writePNG(path string, d *huffman.DecodingData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, visual.Render(d.Table(), huffman.TableBits)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var openInput = func(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, l logger) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		l.Errorf("%v", err)
		return 2
	}

	var in io.ReadCloser = ioutil.NopCloser(os.Stdin)
	if opts.input != "-" {
		f, err := openInput(opts.input)
		if err != nil {
			l.Errorf("%v", err)
			return 1
		}
		in = f
	}

	status := 0
	d, err := inspect(in, stdout, opts)
	if cerr := in.Close(); cerr != nil {
		l.Errorf("%s: %v", opts.input, cerr)
		status = 1
	}
	if err != nil {
		l.Errorf("%s: %v", opts.input, err)
		if d == nil {
			return 1
		}
		status = 1
	}

	if opts.pngPath != "" {
		if err := writePNG(opts.pngPath, d); err != nil {
			l.Errorf("%v", err)
			return 1
		}
		l.Infof("wrote %s", opts.pngPath)
	}
	return status
}

func main() {
	l := stdLogger{log.New(os.Stderr, "huffinspect: ", 0)}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, l))
}
