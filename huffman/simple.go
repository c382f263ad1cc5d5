package huffman

import (
	"math/bits"

	"github.com/pkg/errors"
)

type simpleSlot struct {
	bits  uint8
	index uint8
}

// simpleLayouts holds, per symbol count, the table slots of a simple code
// as (code length, index into the ordered symbols). A count of 5 is the
// 4-symbol code with lengths 1, 2, 3, 3.
var simpleLayouts = [...][]simpleSlot{
	1: {{0, 0}},
	2: {{1, 0}, {1, 1}},
	3: {{1, 0}, {2, 1}, {1, 0}, {2, 2}},
	4: {{2, 0}, {2, 2}, {2, 1}, {2, 3}},
	5: {{1, 0}, {2, 1}, {1, 0}, {3, 2}, {1, 0}, {2, 1}, {1, 0}, {3, 3}},
}

// simpleSortRanges is the range of symbols put in ascending order for each count.
var simpleSortRanges = [...][2]int{
	1: {0, 0},
	2: {0, 2},
	3: {1, 3},
	4: {0, 4},
	5: {2, 4},
}

func sortSymbols(s []uint16) {
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[i] > s[j] {
				s[i], s[j] = s[j], s[i]
			}
		}
	}
}

// readSimpleCode reads a code of at most four explicitly listed symbols and
// fills the 1<<TableBits entries of table.
func readSimpleCode(alphabetSize int, br BitReader, table []Code) error {
	var maxBits uint
	if alphabetSize > 1 {
		maxBits = uint(bits.Len(uint(alphabetSize - 1)))
	}

	numSymbols := int(br.Read(2)) + 1

	var symbols [4]uint16
	for i := 0; i < numSymbols; i++ {
		symbol := br.Read(maxBits)
		if int(symbol) >= alphabetSize {
			return errors.Wrapf(ErrSymbolRange, "symbol %d, alphabet size %d", symbol, alphabetSize)
		}
		symbols[i] = uint16(symbol)
	}

	for i := 0; i < numSymbols-1; i++ {
		for j := i + 1; j < numSymbols; j++ {
			if symbols[i] == symbols[j] {
				return errors.Wrapf(ErrDuplicateSymbol, "symbol %d", symbols[i])
			}
		}
	}

	if numSymbols == 4 {
		numSymbols += int(br.Read(1))
	}

	r := simpleSortRanges[numSymbols]
	sortSymbols(symbols[r[0]:r[1]])

	layout := simpleLayouts[numSymbols]
	for i, slot := range layout {
		table[i] = Code{Bits: slot.bits, Value: symbols[slot.index]}
	}

	const goalSize = 1 << TableBits
	for size := len(layout); size != goalSize; size <<= 1 {
		copy(table[size:], table[:size])
	}

	if !br.Healthy() {
		return errors.Wrap(ErrTruncated, "reading simple code")
	}
	return nil
}
