package render

import (
	"image/color"

	"tm-sim/internal/core"
)

// HeadColor marks the cell under the head.
var HeadColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}

// Frame is a tape flattened onto a 2D image. 3D tapes lay their slices out
// side by side.
type Frame struct {
	W, H  int
	Cells []uint8
	Head  int
}

// Flatten projects mem onto a Frame.
func Flatten(mem core.Memory) Frame {
	ext, head, cells := mem.Extents(), mem.Head(), mem.Cells()
	switch len(ext) {
	case 1:
		return Frame{W: ext[0], H: 1, Cells: append([]uint8(nil), cells...), Head: head[0]}
	case 2:
		return Frame{W: ext[1], H: ext[0], Cells: append([]uint8(nil), cells...), Head: head[0]*ext[1] + head[1]}
	case 3:
		d, h, w := ext[0], ext[1], ext[2]
		f := Frame{W: d * w, H: h, Cells: make([]uint8, d*h*w)}
		for s := 0; s < d; s++ {
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					f.Cells[y*f.W+s*w+x] = cells[(s*h+y)*w+x]
				}
			}
		}
		f.Head = head[1]*f.W + head[0]*w + head[2]
		return f
	}
	return Frame{}
}

// Palette returns one colour per symbol: black for 0, then evenly spaced
// greys up to white.
func Palette(symbols int) []color.RGBA {
	if symbols < 1 {
		symbols = 1
	}
	out := make([]color.RGBA, symbols)
	for i := range out {
		v := uint8(0)
		if symbols > 1 {
			v = uint8(i * 255 / (symbols - 1))
		}
		out[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return out
}

// FillFrame writes the frame into buf as RGBA pixels and paints the head.
func FillFrame(buf []byte, f Frame, palette []color.RGBA) {
	fillPaletteRGBA(buf, f.Cells, palette)
	if f.Head < 0 || f.Head >= len(f.Cells) {
		return
	}
	base := f.Head * 4
	buf[base+0] = HeadColor.R
	buf[base+1] = HeadColor.G
	buf[base+2] = HeadColor.B
	buf[base+3] = HeadColor.A
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
