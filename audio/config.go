package audio

import (
	"os"
	"strconv"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "CORNHOLE_AUDIO_ENABLED"
	EnvMasterVolume = "CORNHOLE_MASTER_VOLUME"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundLaunch: 0.6,
			SoundHit:    1.0,
			SoundMiss:   0.7,
		},
	}
}

// LoadAudioConfig applies environment overrides on top of base.
// A nil base starts from DefaultAudioConfig. Malformed values are ignored.
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	if base != nil {
		cp := *base
		cp.EffectVolumes = make(map[SoundType]float64, len(base.EffectVolumes))
		for k, v := range base.EffectVolumes {
			cp.EffectVolumes[k] = v
		}
		cfg = &cp
	}

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	return cfg
}
