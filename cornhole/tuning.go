package cornhole

import "fmt"

// Tunable bounds and steps
const (
	MinTileScale   = 1
	MaxTileScale   = 20
	MinGravity     = 1
	MaxGravity     = 30
	MinWorldRadius = 100
	MaxWorldRadius = 750
	WorldStep      = 50
	MinTimeScale   = 0  // tenths of real time
	MaxTimeScale   = 50 // 5.0x
)

// Tuning defaults restored by Reset
const (
	DefaultTileScale   = 4
	DefaultGravity     = 5
	DefaultWorldRadius = 250
	DefaultTimeScale   = 10 // 1.0x
)

// GameplayConfig holds the player-adjustable parameters.
// Every adjustment clamps at its bound instead of failing.
type GameplayConfig struct {
	TileScale      int  // grid cell half-width in world units
	Gravity        int  // downward acceleration in units/s^2
	WorldRadius    int  // radius of the star sphere
	TimeScale      int  // playback speed in tenths (10 = real time)
	RandomizeOnHit bool // move the target after every hit
}

// DefaultGameplayConfig returns the tunables a fresh session starts with
func DefaultGameplayConfig() GameplayConfig {
	return GameplayConfig{
		TileScale:      DefaultTileScale,
		Gravity:        DefaultGravity,
		WorldRadius:    DefaultWorldRadius,
		TimeScale:      DefaultTimeScale,
		RandomizeOnHit: true,
	}
}

// Scale returns the tile half-width as a float
func (c GameplayConfig) Scale() float64 {
	return float64(c.TileScale)
}

// SpeedFactor returns the multiplier applied to frame delta time
func (c GameplayConfig) SpeedFactor() float64 {
	return float64(c.TimeScale) / 10
}

// Panel readouts for the tunables

func (c GameplayConfig) TileSizeReadout() string {
	return fmt.Sprintf("Tile size: %d", c.TileScale)
}

func (c GameplayConfig) GravityReadout() string {
	return fmt.Sprintf("Gravity: %d", c.Gravity)
}

func (c GameplayConfig) SpeedReadout() string {
	return fmt.Sprintf("Speed: %.2fx", c.SpeedFactor())
}

func (c GameplayConfig) WorldSizeReadout() string {
	return fmt.Sprintf("World size: %d", c.WorldRadius)
}

// Clamped returns a copy with every field forced into its bounds
func (c GameplayConfig) Clamped() GameplayConfig {
	c.TileScale = clampInt(c.TileScale, MinTileScale, MaxTileScale)
	c.Gravity = clampInt(c.Gravity, MinGravity, MaxGravity)
	c.WorldRadius = clampInt(c.WorldRadius, MinWorldRadius, MaxWorldRadius)
	c.TimeScale = clampInt(c.TimeScale, MinTimeScale, MaxTimeScale)
	return c
}

// stepTileScale changes the tile size by delta, reporting whether it moved
func (c *GameplayConfig) stepTileScale(delta int) bool {
	return stepClamped(&c.TileScale, delta, MinTileScale, MaxTileScale)
}

func (c *GameplayConfig) stepGravity(delta int) bool {
	return stepClamped(&c.Gravity, delta, MinGravity, MaxGravity)
}

func (c *GameplayConfig) stepWorldRadius(delta int) bool {
	return stepClamped(&c.WorldRadius, delta, MinWorldRadius, MaxWorldRadius)
}

func (c *GameplayConfig) stepTimeScale(delta int) bool {
	return stepClamped(&c.TimeScale, delta, MinTimeScale, MaxTimeScale)
}

// stepClamped applies delta only when the result stays within [lo, hi]
func stepClamped(v *int, delta, lo, hi int) bool {
	next := *v + delta
	if next < lo || next > hi {
		return false
	}
	*v = next
	return true
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
