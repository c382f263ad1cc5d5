package huffman

// getNextKey returns reverse(reverse(key, length) + 1, length).
func getNextKey(key, length int) int {
	step := 1 << uint(length-1)
	for key&step != 0 {
		step >>= 1
	}
	return (key & (step - 1)) + step
}

// replicateValue stores code in table[0], table[step], ... table[end-step].
func replicateValue(table []Code, step, end int, code Code) {
	for {
		end -= step
		table[end] = code
		if end <= 0 {
			break
		}
	}
}

// nextTableBitSize returns the width of the sub-table opened by a code of
// the given length, where count holds the remaining codes per length.
func nextTableBitSize(count []int, length, rootBits int) int {
	left := 1 << uint(length-rootBits)
	for length < MaxBits {
		left -= count[length]
		if left <= 0 {
			break
		}
		length++
		left <<= 1
	}
	return length - rootBits
}

// BuildTable fills table with a two-level lookup table for the canonical
// code described by codeLengths, whose length histogram is count. The root
// table is indexed by rootBits bits. It returns the number of entries used,
// or 0 if the lengths do not describe a complete prefix code or table is too
// small. A code with a single symbol is valid and consumes no bits.
func BuildTable(table []Code, rootBits int, codeLengths []uint8, count []uint16) int {
	if rootBits < 1 || rootBits > MaxBits || len(codeLengths) > MaxAlphabetSize {
		return 0
	}

	var histo [MaxBits + 1]int
	total := 0
	for _, l := range codeLengths {
		if l > MaxBits {
			return 0
		}
		if l != 0 {
			histo[l]++
			total++
		}
	}
	for l := 1; l <= MaxBits; l++ {
		c := 0
		if l < len(count) {
			c = int(count[l])
		}
		if c != histo[l] {
			return 0
		}
	}

	left := 1
	for l := 1; l <= MaxBits; l++ {
		left <<= 1
		left -= histo[l]
		if left < 0 {
			return 0
		}
	}

	rootSize := 1 << uint(rootBits)
	if total == 0 || len(table) < rootSize {
		return 0
	}

	var offset [MaxBits + 1]int
	for l := 2; l <= MaxBits; l++ {
		offset[l] = offset[l-1] + histo[l-1]
	}
	sorted := make([]uint16, total)
	for symbol, l := range codeLengths {
		if l != 0 {
			sorted[offset[l]] = uint16(symbol)
			offset[l]++
		}
	}

	if total == 1 {
		code := Code{Bits: 0, Value: sorted[0]}
		for key := 0; key < rootSize; key++ {
			table[key] = code
		}
		return rootSize
	}
	if left != 0 {
		return 0
	}

	key, symbol := 0, 0
	for l, step := 1, 2; l <= rootBits; l, step = l+1, step<<1 {
		for ; histo[l] > 0; histo[l]-- {
			code := Code{Bits: uint8(l), Value: sorted[symbol]}
			replicateValue(table[key:], step, rootSize, code)
			symbol++
			key = getNextKey(key, l)
		}
	}

	mask := rootSize - 1
	low := -1
	tableOff := 0
	tableSize := rootSize
	totalSize := rootSize
	for l, step := rootBits+1, 2; l <= MaxBits; l, step = l+1, step<<1 {
		for ; histo[l] > 0; histo[l]-- {
			if key&mask != low {
				tableOff += tableSize
				subBits := nextTableBitSize(histo[:], l, rootBits)
				tableSize = 1 << uint(subBits)
				totalSize += tableSize
				if totalSize > len(table) {
					return 0
				}
				low = key & mask
				table[low] = Code{
					Bits:  uint8(subBits + rootBits),
					Value: uint16(tableOff - low),
				}
			}
			code := Code{Bits: uint8(l - rootBits), Value: sorted[symbol]}
			replicateValue(table[tableOff+key>>uint(rootBits):], step, tableSize, code)
			symbol++
			key = getNextKey(key, l)
		}
	}

	return totalSize
}
