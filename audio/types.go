package audio

import "errors"

// SoundType identifies a gameplay cue
type SoundType int

const (
	SoundLaunch SoundType = iota // ball released
	SoundHit                     // landed on the target
	SoundMiss                    // landed elsewhere or left the world
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundLaunch:
		return "launch"
	case SoundHit:
		return "hit"
	case SoundMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// ErrDisabled is returned by Initialize when audio is switched off by config
var ErrDisabled = errors.New("audio disabled")
