package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain reads a streamer to completion and returns the sample count and peak
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	n, peak := drain(NewSweep(220, 660, 100*time.Millisecond, WaveSine, rate))

	if want := rate.N(100 * time.Millisecond); n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}
	if peak > 1.0 || peak < 0.9 {
		t.Errorf("expected unity-gain sine peak near 1, got %f", peak)
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	env := NewEnvelope(NewSweep(440, 440, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("expected %d samples, got %d", len(buf), n)
	}
	if math.Abs(buf[0][0]) > 1e-9 {
		t.Errorf("expected silent first sample, got %f", buf[0][0])
	}
	if math.Abs(buf[n-1][0]) > 0.05 {
		t.Errorf("expected near-silent last sample, got %f", buf[n-1][0])
	}
}

func TestSoundEffectsAreFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	tests := []struct {
		st      SoundType
		minDur  time.Duration
		maxPeak float64
	}{
		{SoundLaunch, launchDuration, 1.0},
		{SoundHit, 3 * hitNoteDuration, 1.0},
		{SoundMiss, missDuration, 1.0},
	}

	rate := beep.SampleRate(cfg.SampleRate)
	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.st, cfg)
			if s == nil {
				t.Fatal("expected streamer")
			}
			n, peak := drain(s)
			if n < rate.N(tt.minDur)-1 {
				t.Errorf("expected at least %d samples, got %d", rate.N(tt.minDur), n)
			}
			if peak <= 0 || peak > tt.maxPeak {
				t.Errorf("unexpected peak %f", peak)
			}
		})
	}

	if GetSoundEffect(SoundType(42), cfg) != nil {
		t.Error("expected nil streamer for unknown type")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	_, peak := drain(CreateMissSound(cfg))
	if peak != 0 {
		t.Errorf("expected silence at zero volume, got peak %f", peak)
	}
}
