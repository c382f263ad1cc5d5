// Package visual renders Huffman decode tables as images.
package visual

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/32bitkid/brunsli/huffman"
)

// CellSize is the edge, in pixels, of the square drawn for one table slot.
const CellSize = 8

var (
	shortCode = rgb(0xff, 0xe0, 0x66)
	longCode  = rgb(0x3b, 0x6e, 0xc4)
	empty     = rgb(0x00, 0x00, 0x00)
)

// LengthColor is the colour used for a slot whose code is bits long.
func LengthColor(bits uint8) color.Color {
	return labMix(shortCode, longCode, float64(bits)/float64(huffman.MaxBits))
}

func slotColor(code huffman.Code, rootBits int) color.Color {
	if int(code.Bits) > rootBits {
		return darken(LengthColor(code.Bits), 0.3)
	}
	return LengthColor(code.Bits)
}

// Render draws the root table as a grid, one cell per slot in index order.
// Redirect slots are shaded by the width of their sub-table.
func Render(table []huffman.Code, rootBits int) *image.RGBA {
	cols := 1 << uint((rootBits+1)/2)
	rows := 1 << uint(rootBits/2)
	dst := image.NewRGBA(image.Rect(0, 0, cols*CellSize, rows*CellSize))

	for i := 0; i < cols*rows; i++ {
		var c color.Color = empty
		if i < len(table) {
			c = slotColor(table[i], rootBits)
		}
		x, y := (i%cols)*CellSize, (i/cols)*CellSize
		draw.Draw(dst, image.Rect(x, y, x+CellSize, y+CellSize), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}

	return dst
}

// Histogram counts root slots by code length; redirect slots are counted
// under their combined root and sub-table width.
func Histogram(table []huffman.Code, rootBits int) []int {
	counts := make([]int, huffman.MaxBits+1)
	for i := 0; i < 1<<uint(rootBits) && i < len(table); i++ {
		if b := int(table[i].Bits); b < len(counts) {
			counts[b]++
		}
	}
	return counts
}
