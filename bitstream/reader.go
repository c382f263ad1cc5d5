// Package bitstream implements the LSB-first bit cursor used by the
// Huffman decoder.
package bitstream

import (
	"bufio"
	"bytes"
	"io"

	"github.com/32bitkid/bitreader"
)

// Reader reads bits least-significant first. Reads past the end of input
// yield zero bits; Healthy reports whether any of them were consumed.
type Reader struct {
	src bitreader.BitReader
	eof bool
	err error

	buffer    uint64
	remaining uint

	consumed uint64
	avail    uint64
}

// NewReader reads bits from r. Once r is exhausted the reader supplies zero
// bits.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		src: bitreader.NewReader(bufio.NewReader(r)),
	}
}

// NewBytesReader reads bits from b.
func NewBytesReader(b []byte) *Reader {
	return NewReader(bytes.NewReader(b))
}

func (br *Reader) fill(n uint) {
	for br.remaining < n {
		var b uint8
		if !br.eof {
			v, err := br.src.Read8(8)
			if err != nil {
				br.eof = true
				if err != io.EOF && err != io.ErrUnexpectedEOF {
					br.err = err
				}
			} else {
				b = v
				br.avail += 8
			}
		}
		br.buffer |= uint64(b) << br.remaining
		br.remaining += 8
	}
}

// Peek returns the next n bits without consuming them. n must be at most 32.
func (br *Reader) Peek(n uint) uint32 {
	br.fill(n)
	return uint32(br.buffer & (1<<n - 1))
}

func (br *Reader) Drop(n uint) {
	br.fill(n)
	br.buffer >>= n
	br.remaining -= n
	br.consumed += uint64(n)
}

func (br *Reader) Read(n uint) uint32 {
	val := br.Peek(n)
	br.Drop(n)
	return val
}

// Healthy reports whether every consumed bit came from the input and the
// source has not failed.
func (br *Reader) Healthy() bool {
	return br.err == nil && br.consumed <= br.avail
}

// Err returns the first non-EOF error reported by the underlying source.
func (br *Reader) Err() error {
	return br.err
}

// Offset is the number of bits consumed so far.
func (br *Reader) Offset() uint64 {
	return br.consumed
}
