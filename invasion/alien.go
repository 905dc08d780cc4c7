package invasion

import (
	"image"

	"github.com/plus3/invasion/ecs"
)

// Alien is a single member of the fleet.
type Alien struct {
	X, Y float64

	settings *Settings
}

// NewAlien creates an alien with its top-left corner at (x, y).
func NewAlien(settings *Settings, x, y float64) Alien {
	return Alien{X: x, Y: y, settings: settings}
}

// AtEdge reports whether the alien touches the left or right screen boundary.
func (a *Alien) AtEdge() bool {
	r := a.Rect()
	return r.Max.X >= a.settings.ScreenWidth || r.Min.X <= 0
}

// Update moves the alien horizontally in the fleet's direction.
func (a *Alien) Update(direction int) {
	a.X += a.settings.AlienSpeed * float64(direction)
}

func (a *Alien) Position() (float64, float64) {
	return a.X, a.Y
}

func (a *Alien) Rect() image.Rectangle {
	return rectAt(a.X, a.Y, a.settings.AlienWidth, a.settings.AlienHeight)
}

func (a *Alien) Draw(c Canvas) {
	alienBitmap.draw(c, a.Rect(), a.settings.AlienColor)
}

// FleetLayout returns how many columns and rows of aliens fit on the screen,
// leaving a one-alien margin on each side, room for the ship, and a gap of
// one alien between neighbours. Screens too small for a single alien yield zero.
func FleetLayout(s *Settings) (cols, rows int) {
	availableX := s.ScreenWidth - 2*s.AlienWidth
	cols = max(availableX/(2*s.AlienWidth), 0)

	availableY := s.ScreenHeight - 3*s.AlienHeight - s.ShipHeight
	rows = max(availableY/(2*s.AlienHeight), 0)
	return cols, rows
}

// Fleet is the alien pool plus the direction the whole grid is marching in.
type Fleet struct {
	Aliens    *ecs.Pool[Alien]
	Direction int

	settings *Settings
}

// NewFleet creates an empty fleet marching in the configured initial direction.
func NewFleet(settings *Settings, aliens *ecs.Pool[Alien]) *Fleet {
	return &Fleet{
		Aliens:    aliens,
		Direction: settings.FleetDirection,
		settings:  settings,
	}
}

// Populate fills the grid row by row and returns the number of aliens created.
func (f *Fleet) Populate() int {
	cols, rows := FleetLayout(f.settings)
	w, h := f.settings.AlienWidth, f.settings.AlienHeight

	for row := range rows {
		for col := range cols {
			x := float64(w + 2*w*col)
			y := float64(h + 2*h*row)
			f.Aliens.Spawn(NewAlien(f.settings, x, y))
		}
	}
	return cols * rows
}

// AtEdge reports whether any alien touches a horizontal screen boundary.
func (f *Fleet) AtEdge() bool {
	for alien := range f.Aliens.Values() {
		if alien.AtEdge() {
			return true
		}
	}
	return false
}

// DropAndReverse moves every alien down by the drop distance and flips the direction.
func (f *Fleet) DropAndReverse() {
	for alien := range f.Aliens.Values() {
		alien.Y += float64(f.settings.FleetDropSpeed)
	}
	f.Direction = -f.Direction
}

// March moves every alien one step in the current direction.
func (f *Fleet) March() {
	for alien := range f.Aliens.Values() {
		alien.Update(f.Direction)
	}
}

// ReachedBottom reports whether any alien's bottom edge touches the bottom of the screen.
func (f *Fleet) ReachedBottom() bool {
	for alien := range f.Aliens.Values() {
		if alien.Rect().Max.Y >= f.settings.ScreenHeight {
			return true
		}
	}
	return false
}
