package huffman

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/32bitkid/brunsli/bitstream"
)

type codeword struct {
	bits uint
	code uint32
}

func reverseBits(v uint32, n uint) uint32 {
	return bits.Reverse32(v) >> (32 - n)
}

// canonicalCodewords assigns canonical codes to lengths, bit-reversed so they
// can be written LSB-first. A lone symbol gets an empty codeword.
func canonicalCodewords(lengths []uint8) []codeword {
	var count [MaxBits + 1]int
	used := 0
	for _, l := range lengths {
		if l != 0 {
			count[l]++
			used++
		}
	}

	out := make([]codeword, len(lengths))
	if used == 1 {
		return out
	}

	var next [MaxBits + 1]uint32
	code := uint32(0)
	for l := 1; l <= MaxBits; l++ {
		code = (code + uint32(count[l-1])) << 1
		next[l] = code
	}
	for s, l := range lengths {
		if l == 0 {
			continue
		}
		out[s] = codeword{uint(l), reverseBits(next[l], uint(l))}
		next[l]++
	}
	return out
}

// codeLengthCodeLengthCodewords inverts codeLengthCodeLengthTable.
var codeLengthCodeLengthCodewords = [6]codeword{
	0: {2, 0},
	1: {4, 7},
	2: {3, 3},
	3: {2, 2},
	4: {2, 1},
	5: {4, 15},
}

// writeCodeLengthCode writes the mode selector and the code length code
// lengths, picking the largest skip the lengths allow.
func writeCodeLengthCode(w *bitstream.Writer, clcl [codeLengthCodes]uint8) []codeword {
	skip := 0
	if clcl[codeLengthCodeOrder[0]] == 0 && clcl[codeLengthCodeOrder[1]] == 0 {
		skip = 2
		if clcl[codeLengthCodeOrder[2]] == 0 {
			skip = 3
		}
	}
	w.Write(2, uint32(skip))

	space := 32
	for i := skip; i < codeLengthCodes && space > 0; i++ {
		v := clcl[codeLengthCodeOrder[i]]
		c := codeLengthCodeLengthCodewords[v]
		w.Write(c.bits, c.code)
		if v != 0 {
			space -= 32 >> v
		}
	}
	return canonicalCodewords(clcl[:])
}

// completeLengths gives each of the values a code length so that together
// they form a complete code of at most 5 bits.
func completeLengths(values []uint8) [codeLengthCodes]uint8 {
	var clcl [codeLengthCodes]uint8
	if len(values) == 1 {
		clcl[values[0]] = 1
		return clcl
	}
	m := uint(bits.Len(uint(len(values) - 1)))
	short := (1 << m) - len(values)
	for i, v := range values {
		if i < short {
			clcl[v] = uint8(m - 1)
		} else {
			clcl[v] = uint8(m)
		}
	}
	return clcl
}

// writeCode writes lengths as a general (non-simple) code using literal
// code lengths only.
func writeCode(w *bitstream.Writer, lengths []uint8) {
	last := -1
	var seen [16]bool
	for i, l := range lengths {
		if l != 0 {
			last = i
		}
	}
	for _, l := range lengths[:last+1] {
		seen[l] = true
	}
	var values []uint8
	for v, ok := range seen {
		if ok {
			values = append(values, uint8(v))
		}
	}

	codes := writeCodeLengthCode(w, completeLengths(values))
	for _, l := range lengths[:last+1] {
		w.Write(codes[l].bits, codes[l].code)
	}
}

func writeSymbols(w *bitstream.Writer, lengths []uint8, symbols []uint16) {
	codes := canonicalCodewords(lengths)
	for _, s := range symbols {
		w.Write(codes[s].bits, codes[s].code)
	}
}

// randomLengths returns a complete code over used random symbols of the alphabet.
func randomLengths(rng *rand.Rand, alphabetSize, used int) []uint8 {
	depths := []int{0}
	for len(depths) < used {
		i := rng.Intn(len(depths))
		if depths[i] >= MaxBits {
			continue
		}
		depths[i]++
		depths = append(depths, depths[i])
	}

	lengths := make([]uint8, alphabetSize)
	for i, s := range rng.Perm(alphabetSize)[:used] {
		lengths[s] = uint8(depths[i])
	}
	return lengths
}

// chainLengths returns the lengths 1, 2, ..., MaxBits, MaxBits.
func chainLengths() []uint8 {
	lengths := make([]uint8, MaxBits+1)
	for i := range lengths {
		lengths[i] = uint8(i + 1)
	}
	lengths[MaxBits] = MaxBits
	return lengths
}

func usedSymbols(lengths []uint8) []uint16 {
	var out []uint16
	for s, l := range lengths {
		if l != 0 {
			out = append(out, uint16(s))
		}
	}
	return out
}

// histogram has room for any uint8 length so invalid lengths reach BuildTable.
func histogram(lengths []uint8) []uint16 {
	counts := make([]uint16, 256)
	for _, l := range lengths {
		counts[l]++
	}
	return counts
}

func expectSymbols(t *testing.T, d *DecodingData, br BitReader, expected []uint16) {
	t.Helper()
	for i, s := range expected {
		if actual := d.ReadSymbol(br); actual != s {
			t.Fatalf("%d: expected(%d) != actual(%d)", i, s, actual)
		}
	}
	if !br.Healthy() {
		t.Fatal("expected reader to be healthy")
	}
}
