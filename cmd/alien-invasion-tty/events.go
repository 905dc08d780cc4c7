package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/invasion/invasion"
)

// ttyEvents reads tcell events and translates them for the game. Terminals
// only report presses and auto-repeats, so a movement key counts as held
// until no repeat arrived for the hold window.
type ttyEvents struct {
	events   chan tcell.Event
	done     chan struct{}
	surface  *cellSurface
	hold     time.Duration
	now      func() time.Time
	lastSeen map[invasion.Key]time.Time
}

func newTTYEvents(screen tcell.Screen, surface *cellSurface, hold time.Duration) *ttyEvents {
	t := &ttyEvents{
		events:   make(chan tcell.Event, 100),
		done:     make(chan struct{}),
		surface:  surface,
		hold:     hold,
		now:      time.Now,
		lastSeen: make(map[invasion.Key]time.Time),
	}
	go t.pump(screen.PollEvent)
	return t
}

// pump forwards events until poll reports the screen is finalized or Close is called.
func (t *ttyEvents) pump(poll func() tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close releases the event goroutine even if nobody drains the channel anymore.
func (t *ttyEvents) Close() {
	close(t.done)
}

func (t *ttyEvents) Poll() []invasion.Event {
	now := t.now()
	var out []invasion.Event

Drain:
	for {
		select {
		case ev := <-t.events:
			out = append(out, t.translate(ev, now)...)
		default:
			break Drain
		}
	}

	return append(out, t.expire(now)...)
}

func (t *ttyEvents) translate(ev tcell.Event, now time.Time) []invasion.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			return t.press(invasion.KeyLeft, now)
		case tcell.KeyRight:
			return t.press(invasion.KeyRight, now)
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return []invasion.Event{invasion.Down(invasion.KeyQuit)}
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				return []invasion.Event{invasion.Down(invasion.KeySpace)}
			case 'q', 'Q':
				return []invasion.Event{invasion.Down(invasion.KeyQuit)}
			}
		}
	case *tcell.EventResize:
		if t.surface != nil {
			t.surface.screen.Sync()
			t.surface.resize()
		}
	}
	return nil
}

func (t *ttyEvents) press(k invasion.Key, now time.Time) []invasion.Event {
	_, held := t.lastSeen[k]
	t.lastSeen[k] = now
	if held {
		return nil
	}
	return []invasion.Event{invasion.Down(k)}
}

func (t *ttyEvents) expire(now time.Time) []invasion.Event {
	var out []invasion.Event
	for _, k := range []invasion.Key{invasion.KeyLeft, invasion.KeyRight} {
		seen, held := t.lastSeen[k]
		if held && now.Sub(seen) > t.hold {
			delete(t.lastSeen, k)
			out = append(out, invasion.Up(k))
		}
	}
	return out
}
