package main

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// cellSurface scales the game's logical pixels onto terminal cells. Every
// painted rectangle covers at least one cell so thin bullets stay visible.
type cellSurface struct {
	screen        tcell.Screen
	width, height int
	cols, rows    int
}

func newCellSurface(screen tcell.Screen, width, height int) *cellSurface {
	s := &cellSurface{screen: screen, width: width, height: height}
	s.resize()
	return s
}

func (s *cellSurface) resize() {
	s.cols, s.rows = s.screen.Size()
}

func (s *cellSurface) Fill(clr color.Color) {
	style := tcell.StyleDefault.Background(toColor(clr))
	for y := range s.rows {
		for x := range s.cols {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *cellSurface) FillRect(r image.Rectangle, clr color.Color) {
	cells := cellRect(r, s.width, s.height, s.cols, s.rows)
	style := tcell.StyleDefault.Background(toColor(clr))
	for y := cells.Min.Y; y < cells.Max.Y; y++ {
		for x := cells.Min.X; x < cells.Max.X; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *cellSurface) Present() {
	s.screen.Show()
}

// cellRect maps a rectangle in a width x height logical space onto a
// cols x rows grid, clipped to the grid.
func cellRect(r image.Rectangle, width, height, cols, rows int) image.Rectangle {
	if width <= 0 || height <= 0 || r.Empty() {
		return image.Rectangle{}
	}
	x0 := r.Min.X * cols / width
	y0 := r.Min.Y * rows / height
	x1 := max(r.Max.X*cols/width, x0+1)
	y1 := max(r.Max.Y*rows/height, y0+1)
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, cols, rows))
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
