package invasion

import "image"

// Ship is the player's cannon at the bottom of the screen.
type Ship struct {
	X, Y        float64
	MovingLeft  bool
	MovingRight bool

	settings *Settings
}

// NewShip creates a ship centered at the bottom of the screen.
func NewShip(settings *Settings) *Ship {
	s := &Ship{settings: settings}
	s.Center()
	return s
}

// Center places the ship's mid-bottom at the screen's mid-bottom.
func (s *Ship) Center() {
	s.X = float64(s.settings.ScreenWidth/2 - s.settings.ShipWidth/2)
	s.Y = float64(s.settings.ScreenHeight - s.settings.ShipHeight)
}

// Update moves the ship according to its movement flags, stopping at the screen edges.
func (s *Ship) Update() {
	r := s.Rect()
	if s.MovingRight && r.Max.X < s.settings.ScreenWidth {
		s.X += s.settings.ShipSpeed
	}
	if s.MovingLeft && r.Min.X > 0 {
		s.X -= s.settings.ShipSpeed
	}
}

func (s *Ship) Position() (float64, float64) {
	return s.X, s.Y
}

func (s *Ship) Rect() image.Rectangle {
	return rectAt(s.X, s.Y, s.settings.ShipWidth, s.settings.ShipHeight)
}

func (s *Ship) Draw(c Canvas) {
	shipBitmap.draw(c, s.Rect(), s.settings.ShipColor)
}
