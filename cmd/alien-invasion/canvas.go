package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws game sprites onto an ebiten image.
type screenCanvas struct {
	screen *ebiten.Image
}

func (c screenCanvas) Fill(clr color.Color) {
	c.screen.Fill(clr)
}

func (c screenCanvas) FillRect(r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(c.screen,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		clr, false)
}
