package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer that produces duration worth of the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope fades s in over attack and out over release, cutting it at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; log2(0) is -Inf so zero becomes silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	laserDuration     = 60 * time.Millisecond
	explosionDuration = 250 * time.Millisecond
	fleetNoteDuration = 70 * time.Millisecond
	shipHitDuration   = 400 * time.Millisecond
	gameOverNote      = 220 * time.Millisecond
)

// LaserSound is the short blip of a bullet leaving the ship.
func LaserSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1320, laserDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, laserDuration, 2*time.Millisecond, 40*time.Millisecond, rate), 0.15)
}

// ExplosionSound is a burst of noise for destroyed aliens.
func ExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, explosionDuration, WaveNoise, rate)
	return newVolume(NewEnvelope(noise, explosionDuration, 5*time.Millisecond, 200*time.Millisecond, rate), 0.3)
}

// FleetSound is a rising three-note arpeggio announcing a fresh fleet.
func FleetSound(rate beep.SampleRate) beep.Streamer {
	var notes []beep.Streamer
	for _, freq := range []float64{440, 554.37, 659.25} {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			continue
		}
		shaped := NewEnvelope(beep.Take(rate.N(fleetNoteDuration), tone), fleetNoteDuration, 5*time.Millisecond, 30*time.Millisecond, rate)
		notes = append(notes, shaped)
	}
	return newVolume(beep.Seq(notes...), 0.25)
}

// ShipHitSound is a low growl played when the ship is destroyed.
func ShipHitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(90, shipHitDuration, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, shipHitDuration, 10*time.Millisecond, 300*time.Millisecond, rate), 0.35)
}

// GameOverSound is a descending saw phrase.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	var notes []beep.Streamer
	for _, freq := range []float64{392, 311.13, 261.63, 196} {
		osc := NewOscillator(freq, gameOverNote, WaveSaw, rate)
		notes = append(notes, NewEnvelope(osc, gameOverNote, 10*time.Millisecond, 80*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), 0.3)
}
