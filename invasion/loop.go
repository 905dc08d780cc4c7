package invasion

import (
	"context"
	"time"
)

// Surface is a Canvas that can show the finished frame.
type Surface interface {
	Canvas
	Present()
}

// Run drives the game at a fixed interval: drain input, update, draw, present.
// It returns ErrQuit when the player quits and ctx.Err() when ctx is cancelled.
func Run(ctx context.Context, g *Game, events EventSource, surface Surface, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := Step(g, events, surface); err != nil {
				return err
			}
		}
	}
}

// Step runs a single frame of the loop.
func Step(g *Game, events EventSource, surface Surface) error {
	for _, ev := range events.Poll() {
		if err := g.HandleEvent(ev); err != nil {
			return err
		}
	}

	g.Update()
	g.Draw(surface)
	surface.Present()
	return nil
}
