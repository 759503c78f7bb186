package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawGrid paints the background grid and the play-area center dot.
func (a *App) drawGrid(screen *ebiten.Image, w, h float64, spacing int) {
	if spacing <= 0 {
		return
	}

	for x := 0; x <= int(w)+spacing; x += spacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, colorGrid, false)
	}
	for y := 0; y <= int(h)+spacing; y += spacing {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, colorGrid, false)
	}

	vector.DrawFilledCircle(screen, float32(w/2), float32(h/2), 6, colorCenterDot, true)
}
