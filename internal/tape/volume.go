package tape

import (
	"strings"

	"tm-sim/internal/core"
)

var volumeMovements = [...]string{"back", "forward", "up", "down", "left", "right", "stay"}

// Volume is a three-dimensional torus addressed as (slice, row, column).
type Volume struct {
	*core.Grid
	depth, height, width int
}

// NewVolume returns a depth x height x width torus of cells set to fill.
func NewVolume(depth, height, width int, fill uint8) (*Volume, error) {
	g, err := core.NewGrid([]int{depth, height, width}, fill)
	if err != nil {
		return nil, err
	}
	return &Volume{Grid: g, depth: depth, height: height, width: width}, nil
}

// Movements names codes 0..5 plus the trailing stay.
func (v *Volume) Movements() []string { return append([]string(nil), volumeMovements[:]...) }

// String prints one line per row, with the slices of that row laid out side
// by side.
func (v *Volume) String() string {
	var b strings.Builder
	for row := 0; row < v.height; row++ {
		for slice := 0; slice < v.depth; slice++ {
			writeRow(&b, v.Grid, v.Index(slice, row, 0), v.width)
			b.WriteString("   ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
