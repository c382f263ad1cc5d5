package huffman

import "sync"

// Arena is scratch space for table construction that can be reused across
// many ReadFromBitStream calls. It must not be shared by concurrent decodes.
type Arena struct {
	codes []Code
}

func (a *Arena) reserve(n int) []Code {
	if cap(a.codes) < n {
		a.codes = make([]Code, n)
	}
	a.codes = a.codes[:n]
	return a.codes
}

var arenaPool = sync.Pool{
	New: func() interface{} {
		return new(Arena)
	},
}
