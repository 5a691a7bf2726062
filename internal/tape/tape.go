// Package tape provides the toroidal memory variants a machine can run on.
// Every variant shares the movement encoding of core.Grid: codes come in
// (backward, forward) pairs per axis and anything past the last pair stays.
package tape

import (
	"fmt"
	"strings"

	"tm-sim/internal/core"
)

// writeRow renders n consecutive cells starting at linear index base.
func writeRow(b *strings.Builder, g *core.Grid, base, n int) {
	cells := g.Cells()
	for i := base; i < base+n; i++ {
		if g.IsHead(i) {
			fmt.Fprintf(b, "[%d]", cells[i])
		} else {
			fmt.Fprintf(b, " %d ", cells[i])
		}
	}
}

func init() {
	core.Register("1d", func(extents []int, fill uint8) (core.Memory, error) {
		if len(extents) != 1 {
			return nil, fmt.Errorf("%w: 1d needs 1 extent, got %d", core.ErrBadExtent, len(extents))
		}
		m, err := NewLine(extents[0], fill)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
	core.Register("2d", func(extents []int, fill uint8) (core.Memory, error) {
		if len(extents) != 2 {
			return nil, fmt.Errorf("%w: 2d needs 2 extents, got %d", core.ErrBadExtent, len(extents))
		}
		m, err := NewPlane(extents[0], extents[1], fill)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
	core.Register("3d", func(extents []int, fill uint8) (core.Memory, error) {
		if len(extents) != 3 {
			return nil, fmt.Errorf("%w: 3d needs 3 extents, got %d", core.ErrBadExtent, len(extents))
		}
		m, err := NewVolume(extents[0], extents[1], extents[2], fill)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
}
