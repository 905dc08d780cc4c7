package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/invasion/invasion"
)

// keyEvents turns ebiten's per-tick key edges into game events.
type keyEvents struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

func (k *keyEvents) Poll() []invasion.Event {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])

	var events []invasion.Event
	for _, key := range k.pressed {
		if gk := translateKey(key); gk != invasion.KeyUnknown {
			events = append(events, invasion.Down(gk))
		}
	}
	for _, key := range k.released {
		if gk := translateKey(key); gk != invasion.KeyUnknown {
			events = append(events, invasion.Up(gk))
		}
	}
	return events
}

func translateKey(key ebiten.Key) invasion.Key {
	switch key {
	case ebiten.KeyArrowLeft:
		return invasion.KeyLeft
	case ebiten.KeyArrowRight:
		return invasion.KeyRight
	case ebiten.KeySpace:
		return invasion.KeySpace
	case ebiten.KeyQ, ebiten.KeyEscape:
		return invasion.KeyQuit
	default:
		return invasion.KeyUnknown
	}
}
