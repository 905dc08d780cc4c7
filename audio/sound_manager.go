package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/invasion/invasion"
)

const sampleRate = beep.SampleRate(44100)

var _ invasion.Listener = (*SoundManager)(nil)

// SoundManager plays sound effects for game events. Until Initialize succeeds
// every method is a no-op, so a game without an audio device runs silently.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a silent sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops every queued sound and stops further playback.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Active reports the number of sounds still playing.
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return sm.mixer.Len()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

func (sm *SoundManager) play(build func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := build(sampleRate)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) BulletFired() {
	sm.play(LaserSound)
}

func (sm *SoundManager) AliensDestroyed(n int) {
	if n > 0 {
		sm.play(ExplosionSound)
	}
}

func (sm *SoundManager) FleetSpawned(aliens int) {
	if aliens > 0 {
		sm.play(FleetSound)
	}
}

func (sm *SoundManager) ShipHit(shipsLeft int) {
	sm.play(ShipHitSound)
}

func (sm *SoundManager) GameOver() {
	sm.play(GameOverSound)
}
