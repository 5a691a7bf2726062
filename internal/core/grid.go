package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadExtent reports a grid shape that cannot back a memory variant.
var ErrBadExtent = errors.New("core: invalid grid extent")

// Grid stores an n-dimensional torus of byte-sized cells in row-major order
// together with a head position. Axis 0 is the slowest varying.
type Grid struct {
	dims    []int
	strides []int
	head    []int
	data    []uint8
}

// NewGrid allocates a grid with the given extents, every cell set to fill and
// the head at the origin.
func NewGrid(extents []int, fill uint8) (*Grid, error) {
	if len(extents) == 0 {
		return nil, fmt.Errorf("%w: no axes", ErrBadExtent)
	}
	total := 1
	for i, e := range extents {
		if e <= 0 {
			return nil, fmt.Errorf("%w: axis %d has extent %d", ErrBadExtent, i, e)
		}
		if total > math.MaxInt/e {
			return nil, fmt.Errorf("%w: %v cells overflow int", ErrBadExtent, extents)
		}
		total *= e
	}
	g := &Grid{
		dims:    append([]int(nil), extents...),
		strides: make([]int, len(extents)),
		head:    make([]int, len(extents)),
		data:    make([]uint8, total),
	}
	stride := 1
	for i := len(extents) - 1; i >= 0; i-- {
		g.strides[i] = stride
		stride *= extents[i]
	}
	for i := range g.data {
		g.data[i] = fill
	}
	return g, nil
}

// Extents returns a copy of the per-axis sizes.
func (g *Grid) Extents() []int { return append([]int(nil), g.dims...) }

// Head returns a copy of the head coordinates.
func (g *Grid) Head() []int { return append([]int(nil), g.head...) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for the given coordinates.
func (g *Grid) Index(coords ...int) int {
	idx := 0
	for i, c := range coords {
		idx += c * g.strides[i]
	}
	return idx
}

// Read returns the value under the head.
func (g *Grid) Read() uint8 { return g.data[g.Index(g.head...)] }

// Write overwrites the value under the head.
func (g *Grid) Write(v uint8) { g.data[g.Index(g.head...)] = v }

// IsHead reports whether the linear index i is the head's cell.
func (g *Grid) IsHead(i int) bool { return i == g.Index(g.head...) }

// Shift moves the head one cell along axis, backwards when forward is false.
// Axes outside the grid are ignored.
func (g *Grid) Shift(axis int, forward bool) {
	if axis < 0 || axis >= len(g.dims) {
		return
	}
	n := g.dims[axis]
	if forward {
		g.head[axis] = (g.head[axis] + 1) % n
		return
	}
	g.head[axis] = (g.head[axis] + n - 1) % n
}

// Move decodes a paired movement code: code 2k steps axis k backwards and code
// 2k+1 steps it forwards. Codes past the last axis leave the head in place.
func (g *Grid) Move(code uint8) {
	axis := int(code) / 2
	if axis >= len(g.dims) {
		return
	}
	g.Shift(axis, code%2 == 1)
}
