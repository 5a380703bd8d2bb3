package cornhole

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Grid and target limits
const (
	DefaultGridRows = 50
	DefaultGridCols = 81 // odd so that column 0 is centered

	MinTargetCol = -40
	MaxTargetCol = 40
	MinTargetRow = 0
	MaxTargetRow = 50

	DefaultMaxAttempts = 1000
)

// DefaultTarget is the cell a fresh or reset session aims at
var DefaultTarget = TargetCell{Col: 1, Row: 4}

// Grid is the checkerboard playing field, measured in cells
type Grid struct {
	Rows int
	Cols int
}

// DefaultGrid returns the standard 50 x 81 field
func DefaultGrid() Grid {
	return Grid{Rows: DefaultGridRows, Cols: DefaultGridCols}
}

// Contains reports whether world point (x, z) lies over the grid
func (g Grid) Contains(x, z, scale float64) bool {
	halfWidth := float64(g.Cols) * scale
	return z >= 0 && z <= float64(g.Rows)*2*scale &&
		x >= -halfWidth && x <= halfWidth
}

// TargetCell addresses one grid cell. Positive Col is to the player's left.
type TargetCell struct {
	Col int
	Row int
}

// CellAt returns the cell under world point (x, z)
func CellAt(x, z, scale float64) TargetCell {
	return TargetCell{
		Col: int(math.Round(x / (2 * scale))),
		Row: int(math.Floor(z / (2 * scale))),
	}
}

// Center returns the world-space center of the cell on the ground plane
func (c TargetCell) Center(scale float64) mgl64.Vec3 {
	return mgl64.Vec3{2 * scale * float64(c.Col), 0, 2*scale*float64(c.Row) + scale}
}

// Distance returns the ground distance from the world origin to the cell center
func (c TargetCell) Distance(scale float64) float64 {
	center := c.Center(scale)
	return math.Hypot(center.X(), center.Z())
}

// Footprint returns the square the cell covers
func (c TargetCell) Footprint(scale float64) Footprint {
	center := c.Center(scale)
	return Footprint{CenterX: center.X(), CenterZ: center.Z(), HalfWidth: scale}
}

// Nudge moves the cell by (dCol, dRow) within the nudge bounds.
// Returns false and leaves the cell unchanged at a bound.
func (c *TargetCell) Nudge(dCol, dRow int) bool {
	col, row := c.Col+dCol, c.Row+dRow
	if col < MinTargetCol || col > MaxTargetCol || row < MinTargetRow || row > MaxTargetRow {
		return false
	}
	c.Col, c.Row = col, row
	return true
}

// Footprint is an axis-aligned square on the ground plane
type Footprint struct {
	CenterX   float64
	CenterZ   float64
	HalfWidth float64
}

// Contains reports whether (x, z) falls strictly inside the square
func (f Footprint) Contains(x, z float64) bool {
	return math.Abs(x-f.CenterX) < f.HalfWidth && math.Abs(z-f.CenterZ) < f.HalfWidth
}

// Envelope is the region new targets are drawn from
type Envelope struct {
	MaxCol      int
	MaxRow      int
	Scale       float64
	WorldRadius float64
}

// NewEnvelope derives the placement region for the current tunables
func NewEnvelope(cfg GameplayConfig, grid Grid) Envelope {
	scale := cfg.Scale()
	world := float64(cfg.WorldRadius)
	maxDist := (world/2)/(2*scale) - 1

	maxCol := int(math.Floor(math.Min(maxDist, float64(grid.Cols)/2)))
	maxRow := int(math.Floor(math.Min(maxDist, float64(grid.Rows))))
	return Envelope{
		MaxCol:      max(maxCol, 0),
		MaxRow:      max(maxRow, 0),
		Scale:       scale,
		WorldRadius: world,
	}
}

// Allows reports whether c is a legal placement
func (e Envelope) Allows(c TargetCell) bool {
	if c.Col < -e.MaxCol || c.Col > e.MaxCol || c.Row < 0 || c.Row > e.MaxRow {
		return false
	}
	return c.Distance(e.Scale) < e.WorldRadius
}

// Placement is the outcome of one randomization
type Placement struct {
	Cell     TargetCell
	Attempts int
	Fallback bool // retry cap hit; Cell is the previous or origin cell
}

// Randomizer draws target cells by rejection sampling
type Randomizer struct {
	rng         RandomSource
	MaxAttempts int
}

// NewRandomizer creates a randomizer; a nil source uses DefaultRNG
func NewRandomizer(rng RandomSource) *Randomizer {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Randomizer{rng: rng, MaxAttempts: DefaultMaxAttempts}
}

// Place draws a new target. Rows start at ceil(|col|*4/3) so targets stay
// in front of the camera rather than beside it. After MaxAttempts rejections
// it falls back to previous when still legal, otherwise to cell (0, 0).
func (r *Randomizer) Place(cfg GameplayConfig, grid Grid, previous TargetCell) Placement {
	env := NewEnvelope(cfg, grid)

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		mag := intn(r.rng, env.MaxCol+1)
		col := mag
		if r.rng.Float64() < 0.5 {
			col = -mag
		}

		rowMin := int(math.Ceil(float64(mag) * 4 / 3))
		if rowMin > env.MaxRow {
			continue
		}
		cell := TargetCell{Col: col, Row: rowMin + intn(r.rng, env.MaxRow-rowMin+1)}

		if cell.Distance(env.Scale) >= env.WorldRadius {
			continue
		}
		return Placement{Cell: cell, Attempts: attempt}
	}

	fallback := TargetCell{}
	if env.Allows(previous) {
		fallback = previous
	}
	return Placement{Cell: fallback, Attempts: r.MaxAttempts, Fallback: true}
}
