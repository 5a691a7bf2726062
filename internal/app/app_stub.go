//go:build !ebiten

package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"tm-sim/internal/config"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(config.Run, int, int, zerolog.Logger) (*Game, error) {
	return nil, fmt.Errorf("app.New requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (g *Game) Reset(uint64) error { return nil }

// Size returns zeros in the headless build.
func (g *Game) Size() (int, int) { return 0, 0 }
