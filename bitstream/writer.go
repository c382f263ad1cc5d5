package bitstream

// Writer packs bits least-significant first, the mirror image of Reader.
type Writer struct {
	buf       []byte
	buffer    uint64
	remaining uint
	total     int
}

// Write appends the low n bits of v. n must be at most 32.
func (w *Writer) Write(n uint, v uint32) {
	w.buffer |= (uint64(v) & (1<<n - 1)) << w.remaining
	w.remaining += n
	w.total += int(n)
	for w.remaining >= 8 {
		w.buf = append(w.buf, uint8(w.buffer))
		w.buffer >>= 8
		w.remaining -= 8
	}
}

// Len is the number of bits written.
func (w *Writer) Len() int {
	return w.total
}

// Bytes returns the written bits, zero-padding the final byte.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf), len(w.buf)+1)
	copy(out, w.buf)
	if w.remaining > 0 {
		out = append(out, uint8(w.buffer))
	}
	return out
}
