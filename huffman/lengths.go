package huffman

import "github.com/pkg/errors"

const (
	codeLengthCodes     = 18
	defaultCodeLength   = 8
	codeLengthRepeat    = 16
	codeLengthTableBits = 5
	fullSpace           = 1 << MaxBits
)

// accumulateRepeat returns the running repeat count after a repeat opcode
// targeting length target with the given extra bits. Consecutive repeats of
// the same length extend the previous run instead of starting a new one.
func accumulateRepeat(prevLen uint8, prevCount int, target uint8, extraBits uint, extra uint32) int {
	count := 0
	if prevLen == target {
		count = prevCount
	}
	if count > 0 {
		count = (count - 2) << extraBits
	}
	return count + int(extra) + 3
}

// readCodeLengths decodes len(codeLengths) code lengths coded with the code
// length code described by codeLengthCodeLengths. Lengths past the point
// where the code becomes complete are zero.
func readCodeLengths(codeLengthCodeLengths []uint8, codeLengths []uint8, br BitReader) error {
	var counts [MaxBits + 1]uint16
	for _, l := range codeLengthCodeLengths[:codeLengthCodes] {
		counts[l]++
	}

	var table [1 << codeLengthTableBits]Code
	if BuildTable(table[:], codeLengthTableBits, codeLengthCodeLengths[:codeLengthCodes], counts[:]) == 0 {
		return errors.Wrap(ErrCodeLengthCode, "building code length table")
	}

	var (
		symbol        int
		prevCodeLen   uint8 = defaultCodeLength
		repeat        int
		repeatCodeLen uint8
		space         = fullSpace
	)

	numSymbols := len(codeLengths)
	for symbol < numSymbols && space > 0 {
		p := table[br.Peek(codeLengthTableBits)]
		br.Drop(uint(p.Bits))
		codeLen := uint8(p.Value)

		if codeLen < codeLengthRepeat {
			repeat = 0
			codeLengths[symbol] = codeLen
			symbol++
			if codeLen != 0 {
				prevCodeLen = codeLen
				space -= fullSpace >> codeLen
			}
			continue
		}

		extraBits := uint(codeLen - 14)
		var target uint8
		if codeLen == codeLengthRepeat {
			target = prevCodeLen
		}
		oldRepeat := 0
		if target == repeatCodeLen {
			oldRepeat = repeat
		}
		repeat = accumulateRepeat(repeatCodeLen, repeat, target, extraBits, br.Read(extraBits))
		repeatCodeLen = target

		delta := repeat - oldRepeat
		if symbol+delta > numSymbols {
			return errors.Wrapf(ErrRepeatOverflow, "repeat of %d at symbol %d of %d", delta, symbol, numSymbols)
		}
		for i := 0; i < delta; i++ {
			codeLengths[symbol+i] = target
		}
		symbol += delta
		if target != 0 {
			space -= (delta * fullSpace) >> target
		}
	}

	if space != 0 {
		return errors.Wrapf(ErrIncompleteCode, "space %d left after %d symbols", space, symbol)
	}
	for ; symbol < numSymbols; symbol++ {
		codeLengths[symbol] = 0
	}
	if !br.Healthy() {
		return errors.Wrap(ErrTruncated, "reading code lengths")
	}
	return nil
}
