package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays fire-and-forget gameplay cues through a shared mixer.
// Overlapping cues simply mix; nothing is cancelled.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a manager; a nil config uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the cue. Without an initialized speaker it is a no-op.
func (sm *SoundManager) Play(st SoundType) {
	if st < 0 || st >= soundTypeCount {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(st, sm.cfg)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[st]++
}

// Played returns how many times st has been queued
func (sm *SoundManager) Played(st SoundType) int {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[st]
}

// Cleanup silences the mixer
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
