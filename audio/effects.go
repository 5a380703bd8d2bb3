package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue timings
const (
	launchDuration = 250 * time.Millisecond
	launchAttack   = 10 * time.Millisecond
	launchRelease  = 120 * time.Millisecond

	hitNoteDuration = 110 * time.Millisecond
	hitAttack       = 5 * time.Millisecond
	hitRelease      = 80 * time.Millisecond

	missDuration = 400 * time.Millisecond
	missAttack   = 10 * time.Millisecond
	missRelease  = 250 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// sweep is an oscillator whose frequency glides linearly from -> to
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates a gliding oscillator; from == to gives a plain tone
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
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
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope applies a linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
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
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateLaunchSound is a short rising whoosh
func CreateLaunchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(220, 660, launchDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, launchDuration, launchAttack, launchRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundLaunch]*cfg.MasterVolume)
}

// CreateHitSound is a rising C-E-G arpeggio
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := []float64{1046.50, 1318.51, 1567.98}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewSweep(freq, freq, hitNoteDuration, WaveSquare, rate)
		parts = append(parts, NewEnvelope(osc, hitNoteDuration, hitAttack, hitRelease, rate))
	}
	return newVolume(beep.Seq(parts...), 0.5*cfg.EffectVolumes[SoundHit]*cfg.MasterVolume)
}

// CreateMissSound is a falling buzz
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(300, 90, missDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, missDuration, missAttack, missRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundMiss]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for the cue
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundLaunch:
		return CreateLaunchSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundMiss:
		return CreateMissSound(cfg)
	default:
		return nil
	}
}
