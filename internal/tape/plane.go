package tape

import (
	"strings"

	"tm-sim/internal/core"
)

var planeMovements = [...]string{"up", "down", "left", "right", "stay"}

// Plane is a two-dimensional torus addressed as (row, column). Codes 0/1 move
// up/down a row, codes 2/3 move left/right a column.
type Plane struct {
	*core.Grid
	height, width int
}

// NewPlane returns a height x width torus of cells set to fill.
func NewPlane(height, width int, fill uint8) (*Plane, error) {
	g, err := core.NewGrid([]int{height, width}, fill)
	if err != nil {
		return nil, err
	}
	return &Plane{Grid: g, height: height, width: width}, nil
}

// Movements names codes 0..3 plus the trailing stay.
func (p *Plane) Movements() []string { return append([]string(nil), planeMovements[:]...) }

// String prints one line per row with the head cell bracketed.
func (p *Plane) String() string {
	var b strings.Builder
	for row := 0; row < p.height; row++ {
		writeRow(&b, p.Grid, row*p.width, p.width)
		b.WriteByte('\n')
	}
	return b.String()
}
