package invasion

import (
	"image"
	"image/color"
)

// Canvas is the drawing surface a frontend supplies.
type Canvas interface {
	Fill(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
}

// Sprite is the capability set shared by the ship, bullets and aliens.
type Sprite interface {
	Position() (x, y float64)
	Rect() image.Rectangle
	Draw(c Canvas)
}

// bitmap is a pixel-art mask; '#' cells are painted, anything else is transparent.
type bitmap []string

var shipBitmap = bitmap{
	".....##.....",
	".....##.....",
	"....####....",
	"....####....",
	".##########.",
	"############",
	"############",
	"############",
}

var alienBitmap = bitmap{
	"..#......#..",
	"...#....#...",
	"..########..",
	".##.####.##.",
	"############",
	"#.########.#",
	"#.#......#.#",
	"...##..##...",
}

// draw scales the mask onto r. Cell edges are computed per column and row so
// the mask always covers r exactly, whatever its size.
func (b bitmap) draw(c Canvas, r image.Rectangle, clr color.Color) {
	rows := len(b)
	if rows == 0 {
		return
	}
	cols := len(b[0])
	w, h := r.Dx(), r.Dy()

	for row, line := range b {
		y0 := r.Min.Y + h*row/rows
		y1 := r.Min.Y + h*(row+1)/rows
		for col := 0; col < cols && col < len(line); col++ {
			if line[col] != '#' {
				continue
			}
			x0 := r.Min.X + w*col/cols
			x1 := r.Min.X + w*(col+1)/cols
			c.FillRect(image.Rect(x0, y0, x1, y1), clr)
		}
	}
}

func rectAt(x, y float64, w, h int) image.Rectangle {
	ix, iy := int(x), int(y)
	return image.Rect(ix, iy, ix+w, iy+h)
}
