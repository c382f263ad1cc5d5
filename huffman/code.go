// Package huffman decodes canonical Huffman codes transmitted as
// run-length coded code lengths, and reads symbols through two-level
// lookup tables.
package huffman

import "github.com/pkg/errors"

const (
	// MaxBits is the longest codeword length a code may use.
	MaxBits         = 15
	// TableBits is the index width of the root lookup table.
	TableBits       = 8
	// MaxAlphabetSize is the largest alphabet ReadFromBitStream accepts.
	MaxAlphabetSize = 1 << MaxBits

	// TableOverflow bounds the second-level entries a table can need beyond
	// its alphabet size.
	TableOverflow = 376
)

// Code is a table entry. In the root table an entry with Bits > TableBits
// redirects to a sub-table Value slots past itself.
type Code struct {
	Bits  uint8
	Value uint16
}

// BitReader is an LSB-first bit source. Reads past the end of input return
// zero bits and make Healthy report false.
type BitReader interface {
	Peek(n uint) uint32
	Drop(n uint)
	Read(n uint) uint32
	Healthy() bool
}

var (
	ErrAlphabetSize    = errors.New("huffman: alphabet size exceeds maximum")
	ErrSymbolRange     = errors.New("huffman: symbol out of range")
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")
	ErrRepeatOverflow  = errors.New("huffman: repeat run overflows code lengths")
	ErrCodeLengthCode  = errors.New("huffman: invalid code length code")
	ErrIncompleteCode  = errors.New("huffman: code lengths do not form a complete code")
	ErrBuildTable      = errors.New("huffman: unable to build decode table")
	ErrTruncated       = errors.New("huffman: read past end of input")
)
