package huffman

import "github.com/pkg/errors"

var codeLengthCodeOrder = [codeLengthCodes]uint8{
	1, 2, 3, 4, 0, 5, 17, 6, 16, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// codeLengthCodeLengthTable is the fixed code for the code length code
// lengths themselves, indexed by the next 4 bits.
var codeLengthCodeLengthTable = [16]Code{
	{2, 0}, {2, 4}, {2, 3}, {3, 2}, {2, 0}, {2, 4}, {2, 3}, {4, 1},
	{2, 0}, {2, 4}, {2, 3}, {3, 2}, {2, 0}, {2, 4}, {2, 3}, {4, 5},
}

// DecodingData owns the lookup table of one Huffman code.
type DecodingData struct {
	table []Code
}

// Table returns the lookup table: 1<<TableBits root entries followed by the
// sub-tables. A root entry with Bits > TableBits points Value entries ahead
// to a sub-table indexed by the next Bits-TableBits bits.
func (d *DecodingData) Table() []Code {
	return d.table
}

// ReadFromBitStream reads a Huffman code over alphabetSize symbols and
// replaces the decoding table with it. arena may be nil.
func (d *DecodingData) ReadFromBitStream(alphabetSize int, br BitReader, arena *Arena) error {
	if alphabetSize < 0 || alphabetSize > MaxAlphabetSize {
		return errors.Wrapf(ErrAlphabetSize, "alphabet size %d", alphabetSize)
	}

	// 1 selects a simple code; otherwise the number of leading entries of
	// codeLengthCodeOrder that are implicitly zero.
	simpleCodeOrSkip := br.Read(2)
	if simpleCodeOrSkip == 1 {
		d.table = resize(d.table, 1<<TableBits)
		return readSimpleCode(alphabetSize, br, d.table)
	}

	var codeLengthCodeLengths [codeLengthCodes]uint8
	space := 32
	numCodes := 0
	for i := int(simpleCodeOrSkip); i < codeLengthCodes && space > 0; i++ {
		p := codeLengthCodeLengthTable[br.Peek(4)]
		br.Drop(uint(p.Bits))
		v := uint8(p.Value)
		codeLengthCodeLengths[codeLengthCodeOrder[i]] = v
		if v != 0 {
			space -= 32 >> v
			numCodes++
		}
	}
	if numCodes != 1 && space != 0 {
		return errors.Wrapf(ErrCodeLengthCode, "%d codes, space %d left", numCodes, space)
	}

	codeLengths := make([]uint8, alphabetSize)
	if err := readCodeLengths(codeLengthCodeLengths[:], codeLengths, br); err != nil {
		return err
	}
	if !br.Healthy() {
		return errors.Wrap(ErrTruncated, "reading code lengths")
	}

	var counts [MaxBits + 1]uint16
	for _, l := range codeLengths {
		counts[l]++
	}

	if arena == nil {
		arena = arenaPool.Get().(*Arena)
		defer arenaPool.Put(arena)
	}
	scratch := arena.reserve(alphabetSize + TableOverflow)
	tableSize := BuildTable(scratch, TableBits, codeLengths, counts[:])
	if tableSize == 0 {
		d.table = d.table[:0]
		return errors.Wrapf(ErrBuildTable, "alphabet size %d", alphabetSize)
	}
	d.table = append(resize(d.table, 0), scratch[:tableSize]...)
	return nil
}

func resize(table []Code, n int) []Code {
	if cap(table) < n {
		return make([]Code, n)
	}
	return table[:n]
}

// ReadSymbol decodes the next symbol. The table must have been built by a
// successful ReadFromBitStream.
func (d *DecodingData) ReadSymbol(br BitReader) uint16 {
	idx := int(br.Peek(TableBits))
	nBits := uint(d.table[idx].Bits)
	if nBits > TableBits {
		br.Drop(TableBits)
		nBits -= TableBits
		idx += int(d.table[idx].Value)
		idx += int(br.Peek(nBits))
	}
	br.Drop(uint(d.table[idx].Bits))
	return d.table[idx].Value
}
