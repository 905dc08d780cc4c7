package invasion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	g, _, _ := newTestGame()
	events := &scriptedEvents{frames: [][]Event{{Down(KeyRight), Down(KeySpace)}}}
	surface := &recordingCanvas{}

	require.NoError(t, Step(g, events, surface))

	assert.True(t, g.Ship().MovingRight)
	assert.Equal(t, 571.5, g.Ship().X)
	assert.Equal(t, 1, g.Bullets().Len())
	assert.Equal(t, 1, surface.presents)
	assert.Len(t, surface.fills, 1)
}

func TestStepStopsOnQuit(t *testing.T) {
	g, _, _ := newTestGame()
	events := &scriptedEvents{frames: [][]Event{{{Kind: Quit}}}}
	surface := &recordingCanvas{}

	assert.ErrorIs(t, Step(g, events, surface), ErrQuit)
	assert.Zero(t, surface.presents)
}

func TestRun(t *testing.T) {
	t.Run("quit ends the loop", func(t *testing.T) {
		g, _, _ := newTestGame()
		events := &scriptedEvents{frames: [][]Event{nil, nil, {Down(KeyQuit)}}}
		surface := &recordingCanvas{}

		err := Run(context.Background(), g, events, surface, time.Millisecond)

		assert.ErrorIs(t, err, ErrQuit)
		assert.Equal(t, 2, surface.presents)
	})

	t.Run("context cancellation", func(t *testing.T) {
		g, _, _ := newTestGame()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, g, &scriptedEvents{}, &recordingCanvas{}, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
