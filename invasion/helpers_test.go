package invasion

import (
	"image"
	"image/color"
	"time"
)

type recordingCanvas struct {
	fills    []color.Color
	rects    []image.Rectangle
	presents int
}

func (c *recordingCanvas) Fill(clr color.Color) {
	c.fills = append(c.fills, clr)
}

func (c *recordingCanvas) FillRect(r image.Rectangle, clr color.Color) {
	c.rects = append(c.rects, r)
}

func (c *recordingCanvas) Present() {
	c.presents++
}

type scriptedEvents struct {
	frames [][]Event
}

func (s *scriptedEvents) Poll() []Event {
	if len(s.frames) == 0 {
		return nil
	}
	evs := s.frames[0]
	s.frames = s.frames[1:]
	return evs
}

type recordingListener struct {
	fired     int
	destroyed int
	fleets    []int
	hits      []int
	gameOvers int
}

func (l *recordingListener) BulletFired()            { l.fired++ }
func (l *recordingListener) AliensDestroyed(n int)   { l.destroyed += n }
func (l *recordingListener) FleetSpawned(aliens int) { l.fleets = append(l.fleets, aliens) }
func (l *recordingListener) ShipHit(shipsLeft int)   { l.hits = append(l.hits, shipsLeft) }
func (l *recordingListener) GameOver()               { l.gameOvers++ }

type pauseRecorder struct {
	calls []time.Duration
}

func (p *pauseRecorder) pause(d time.Duration) {
	p.calls = append(p.calls, d)
}

// newTestGame builds a game with default settings, no real pauses and a recording listener.
func newTestGame() (*Game, *recordingListener, *pauseRecorder) {
	listener := &recordingListener{}
	pauses := &pauseRecorder{}
	g := New(DefaultSettings(), WithListener(listener), WithPause(pauses.pause))
	return g, listener, pauses
}
