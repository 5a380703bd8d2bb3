// Package config loads game settings from defaults and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"spacecornhole/cornhole"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds everything the game needs at startup
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// GridRows and GridCols size the checkerboard field
	GridRows int `yaml:"grid_rows"`
	GridCols int `yaml:"grid_cols"`

	// Gameplay holds the initial tunables, also restored by Reset
	Gameplay GameplayConfig `yaml:"gameplay"`

	// Seed fixes target randomization; zero means unseeded
	Seed uint64 `yaml:"seed"`

	Audio AudioConfig `yaml:"audio"`

	// Debug starts with the debug overlay visible
	Debug bool `yaml:"debug"`

	// ProfileFrameDrops captures a CPU profile when FPS drops
	ProfileFrameDrops bool `yaml:"profile_frame_drops"`

	// ProfilesDir is where captured profiles are written
	ProfilesDir string `yaml:"profiles_dir"`
}

// GameplayConfig mirrors cornhole.GameplayConfig for the file format
type GameplayConfig struct {
	TileScale      int  `yaml:"tile_scale"`
	Gravity        int  `yaml:"gravity"`
	WorldRadius    int  `yaml:"world_radius"`
	TimeScale      int  `yaml:"time_scale"` // tenths, 10 = real time
	RandomizeOnHit bool `yaml:"randomize_on_hit"`
}

// AudioConfig is the file-level audio section
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	gp := cornhole.DefaultGameplayConfig()
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 800,
		GridRows:     cornhole.DefaultGridRows,
		GridCols:     cornhole.DefaultGridCols,
		Gameplay: GameplayConfig{
			TileScale:      gp.TileScale,
			Gravity:        gp.Gravity,
			WorldRadius:    gp.WorldRadius,
			TimeScale:      gp.TimeScale,
			RandomizeOnHit: gp.RandomizeOnHit,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
		ProfilesDir: "profiles",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.ScreenWidth, c.ScreenHeight)
	case c.GridRows <= 0:
		return fmt.Errorf("%w: grid_rows %d", ErrInvalid, c.GridRows)
	case c.GridCols <= 0 || c.GridCols%2 == 0:
		return fmt.Errorf("%w: grid_cols %d must be positive and odd", ErrInvalid, c.GridCols)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master_volume %g", ErrInvalid, c.Audio.MasterVolume)
	}

	gp := c.Gameplay
	if gp.TileScale < cornhole.MinTileScale || gp.TileScale > cornhole.MaxTileScale {
		return fmt.Errorf("%w: tile_scale %d outside [%d,%d]", ErrInvalid, gp.TileScale, cornhole.MinTileScale, cornhole.MaxTileScale)
	}
	if gp.Gravity < cornhole.MinGravity || gp.Gravity > cornhole.MaxGravity {
		return fmt.Errorf("%w: gravity %d outside [%d,%d]", ErrInvalid, gp.Gravity, cornhole.MinGravity, cornhole.MaxGravity)
	}
	if gp.WorldRadius < cornhole.MinWorldRadius || gp.WorldRadius > cornhole.MaxWorldRadius {
		return fmt.Errorf("%w: world_radius %d outside [%d,%d]", ErrInvalid, gp.WorldRadius, cornhole.MinWorldRadius, cornhole.MaxWorldRadius)
	}
	if gp.TimeScale < cornhole.MinTimeScale || gp.TimeScale > cornhole.MaxTimeScale {
		return fmt.Errorf("%w: time_scale %d outside [%d,%d]", ErrInvalid, gp.TimeScale, cornhole.MinTimeScale, cornhole.MaxTimeScale)
	}
	return nil
}

// GameplayTuning converts the file section to the simulation type
func (c Config) GameplayTuning() cornhole.GameplayConfig {
	return cornhole.GameplayConfig{
		TileScale:      c.Gameplay.TileScale,
		Gravity:        c.Gameplay.Gravity,
		WorldRadius:    c.Gameplay.WorldRadius,
		TimeScale:      c.Gameplay.TimeScale,
		RandomizeOnHit: c.Gameplay.RandomizeOnHit,
	}
}

// Grid returns the playing field size
func (c Config) Grid() cornhole.Grid {
	return cornhole.Grid{Rows: c.GridRows, Cols: c.GridCols}
}

// RNG returns the randomizer source for the configured seed
func (c Config) RNG() cornhole.RandomSource {
	if c.Seed == 0 {
		return cornhole.DefaultRNG()
	}
	return cornhole.NewSeededRNG(c.Seed)
}
