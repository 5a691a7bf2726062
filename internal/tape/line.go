package tape

import (
	"strings"

	"tm-sim/internal/core"
)

var lineMovements = [...]string{"left", "right", "stay"}

// Line is a one-dimensional ring tape. Code 0 moves left, code 1 moves right.
type Line struct {
	*core.Grid
	width int
}

// NewLine returns a ring of width cells set to fill.
func NewLine(width int, fill uint8) (*Line, error) {
	g, err := core.NewGrid([]int{width}, fill)
	if err != nil {
		return nil, err
	}
	return &Line{Grid: g, width: width}, nil
}

// Movements names codes 0 and 1 plus the trailing stay.
func (l *Line) Movements() []string { return append([]string(nil), lineMovements[:]...) }

// String prints the ring on one line with the head cell bracketed.
func (l *Line) String() string {
	var b strings.Builder
	writeRow(&b, l.Grid, 0, l.width)
	return b.String()
}
