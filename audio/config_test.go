package audio

import "testing"

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	if !cfg.Enabled {
		t.Error("expected audio enabled by default")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("expected master volume 0.5, got %f", cfg.MasterVolume)
	}
	for st := SoundLaunch; st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("missing effect volume for %s", st)
		}
	}
}

func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")

	cfg := LoadAudioConfig(nil)
	if cfg.Enabled {
		t.Error("expected env to disable audio")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("expected volume clamped to 1, got %f", cfg.MasterVolume)
	}
}

func TestLoadAudioConfigKeepsBase(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "not-a-number")

	base := DefaultAudioConfig()
	base.MasterVolume = 0.25
	cfg := LoadAudioConfig(base)
	if cfg.MasterVolume != 0.25 {
		t.Errorf("expected base volume kept, got %f", cfg.MasterVolume)
	}

	cfg.EffectVolumes[SoundHit] = 0
	if base.EffectVolumes[SoundHit] == 0 {
		t.Error("expected effect volumes to be copied, not shared")
	}
}
