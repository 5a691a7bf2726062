//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 14

// HUD renders the status panel to the right of the tape view.
type HUD struct {
	width  int
	height int
	panel  *ebiten.Image
	lines  []string
}

// NewHUD constructs a HUD for a view of the given height.
func NewHUD(height, width int) *HUD {
	if width <= 0 || height <= 0 {
		return &HUD{}
	}
	return &HUD{width: width, height: height, panel: ebiten.NewImage(width, height)}
}

// Update caches the text for the next Draw.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	h.lines = s.Lines()
}

// Draw paints the panel with its left edge at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.panel == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := (i + 1) * lineHeight
		if y > h.height {
			break
		}
		text.Draw(h.panel, line, face, 8, y, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
