package main

import (
	"image"
	"image/color"

	"github.com/plus3/invasion/invasion"
)

// autopilot steers the ship under the lowest alien and fires every frame.
type autopilot struct {
	game   *invasion.Game
	moving invasion.Key
}

func (a *autopilot) Poll() []invasion.Event {
	var events []invasion.Event

	want := a.steer()
	if want != a.moving {
		if a.moving != invasion.KeyUnknown {
			events = append(events, invasion.Up(a.moving))
		}
		if want != invasion.KeyUnknown {
			events = append(events, invasion.Down(want))
		}
		a.moving = want
	}

	return append(events, invasion.Down(invasion.KeySpace))
}

func (a *autopilot) steer() invasion.Key {
	var target *invasion.Alien
	for alien := range a.game.Fleet().Aliens.Values() {
		if target == nil || alien.Y > target.Y {
			target = alien
		}
	}
	if target == nil {
		return invasion.KeyUnknown
	}

	ship := a.game.Ship().Rect()
	aim := target.Rect()
	shipMid := (ship.Min.X + ship.Max.X) / 2
	aimMid := (aim.Min.X + aim.Max.X) / 2

	switch {
	case aimMid < shipMid-2:
		return invasion.KeyLeft
	case aimMid > shipMid+2:
		return invasion.KeyRight
	default:
		return invasion.KeyUnknown
	}
}

// eventCounts tallies listener callbacks for the report.
type eventCounts struct {
	BulletsFired    int
	AliensDestroyed int
	FleetsSpawned   int
	ShipsHit        int
	GameOver        bool
}

func (c *eventCounts) BulletFired()          { c.BulletsFired++ }
func (c *eventCounts) AliensDestroyed(n int) { c.AliensDestroyed += n }
func (c *eventCounts) FleetSpawned(int)      { c.FleetsSpawned++ }
func (c *eventCounts) ShipHit(int)           { c.ShipsHit++ }
func (c *eventCounts) GameOver()             { c.GameOver = true }

// nullSurface discards drawing; the soak run measures update and draw cost without a display.
type nullSurface struct {
	rects int
}

func (s *nullSurface) Fill(color.Color)                     {}
func (s *nullSurface) FillRect(image.Rectangle, color.Color) { s.rects++ }
func (s *nullSurface) Present()                             {}
