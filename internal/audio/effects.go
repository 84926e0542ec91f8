// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave, optionally sliding in pitch.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep glides linearly from freq to endFreq over duration.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

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
			return i, i > 0
		}
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; zero or less is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped oscillator, the building block of every effect here.
func tone(freq, endFreq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(freq, endFreq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// CreateShotSound is a short falling blip for a fired projectile.
func CreateShotSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(900, 500, 60*time.Millisecond, WaveSquare, rate), vol*0.25)
}

// CreateHitSound is a dull thud for a non-lethal hit on plastic.
func CreateHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(180, 120, 80*time.Millisecond, WaveSaw, rate), vol*0.4)
}

// CreateCoinSound is a two-note chime for a reward.
func CreateCoinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	first := tone(988, 988, 70*time.Millisecond, WaveSine, rate)   // B5
	second := tone(1319, 1319, 140*time.Millisecond, WaveSine, rate) // E6
	return newVolume(beep.Seq(first, second), vol*0.5)
}

// CreateHurtSound is a noisy crunch for contact damage on an actor.
func CreateHurtSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := tone(0, 0, 150*time.Millisecond, WaveNoise, rate)
	low := tone(110, 70, 150*time.Millisecond, WaveSquare, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.5), newVolume(low, 0.5)), vol*0.6)
}

// CreateBossSound is a long low growl when the boss enters.
func CreateBossSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(60, 90, 700*time.Millisecond, WaveSaw, rate), vol*0.5)
}

// CreateWaveSound is a rising three-note arpeggio for a new wave.
func CreateWaveSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := 90 * time.Millisecond
	return newVolume(beep.Seq(
		tone(523, 523, d, WaveSine, rate),
		tone(659, 659, d, WaveSine, rate),
		tone(784, 784, 2*d, WaveSine, rate),
	), vol*0.4)
}

// CreateGameOverSound is a slow falling sweep.
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(440, 110, 900*time.Millisecond, WaveSquare, rate), vol*0.3)
}

// CreatePurchaseSound is a quick upward chirp.
func CreatePurchaseSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(tone(600, 1200, 120*time.Millisecond, WaveSine, rate), vol*0.4)
}
