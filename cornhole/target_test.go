package cornhole

import (
	"math"
	"testing"
)

func TestCellCenter(t *testing.T) {
	c := TargetCell{Col: 1, Row: 4}
	if got := c.Center(4); got.X() != 8 || got.Y() != 0 || got.Z() != 36 {
		t.Fatalf("center = %v, want (8, 0, 36)", got)
	}
	if got := (TargetCell{}).Center(4); got.Z() != 4 {
		t.Fatalf("row 0 center z = %f, want 4", got.Z())
	}
}

func TestCellAtRounding(t *testing.T) {
	tests := []struct {
		x, z float64
		want TargetCell
	}{
		{2.22, 7.49, TargetCell{0, 0}},
		{4.1, 8.0, TargetCell{1, 1}},
		{-4.1, 15.9, TargetCell{-1, 1}},
		{3.9, 0.1, TargetCell{0, 0}},
	}
	for _, tt := range tests {
		if got := CellAt(tt.x, tt.z, 4); got != tt.want {
			t.Errorf("CellAt(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestFootprintBoundary(t *testing.T) {
	f := Footprint{CenterX: 4, CenterZ: 18, HalfWidth: 4}
	if !f.Contains(7.9, 18) {
		t.Error("7.9 is inside")
	}
	if f.Contains(8.1, 18) {
		t.Error("8.1 is outside")
	}
	if f.Contains(8, 18) {
		t.Error("the edge itself does not count")
	}
	if f.Contains(4, 14) {
		t.Error("the near edge does not count")
	}
}

func TestNudgeBounds(t *testing.T) {
	c := TargetCell{Col: MaxTargetCol, Row: MinTargetRow}
	if c.Nudge(1, 0) {
		t.Fatal("nudge past max col should fail")
	}
	if c.Nudge(0, -1) {
		t.Fatal("nudge below row 0 should fail")
	}
	if c != (TargetCell{Col: MaxTargetCol, Row: MinTargetRow}) {
		t.Fatalf("failed nudge changed the cell: %v", c)
	}
	if !c.Nudge(-1, 1) || c != (TargetCell{Col: MaxTargetCol - 1, Row: 1}) {
		t.Fatalf("unexpected cell after nudge: %v", c)
	}
}

func TestEnvelope(t *testing.T) {
	env := NewEnvelope(DefaultGameplayConfig(), DefaultGrid())
	// (250/2)/(2*4) - 1 = 14.625
	if env.MaxCol != 14 || env.MaxRow != 14 {
		t.Fatalf("envelope = %+v, want 14 x 14", env)
	}

	small := DefaultGameplayConfig()
	small.TileScale = MaxTileScale
	small.WorldRadius = MinWorldRadius
	env = NewEnvelope(small, DefaultGrid())
	if env.MaxCol != 0 || env.MaxRow != 0 {
		t.Fatalf("tiny world should collapse the envelope, got %+v", env)
	}
	if !env.Allows(TargetCell{}) {
		t.Fatal("origin cell must stay legal")
	}
}

func TestRandomizerStaysInsideWorld(t *testing.T) {
	cfg := DefaultGameplayConfig()
	grid := DefaultGrid()
	r := NewRandomizer(NewSeededRNG(1))
	env := NewEnvelope(cfg, grid)

	prev := DefaultTarget
	for i := 0; i < 10000; i++ {
		p := r.Place(cfg, grid, prev)
		if p.Fallback {
			t.Fatalf("draw %d fell back", i)
		}
		c := p.Cell
		if c.Distance(cfg.Scale()) >= float64(cfg.WorldRadius) {
			t.Fatalf("draw %d: %v is outside the world", i, c)
		}
		if abs(c.Col) > env.MaxCol || c.Row > env.MaxRow {
			t.Fatalf("draw %d: %v outside envelope %+v", i, c, env)
		}
		if minRow := int(math.Ceil(float64(abs(c.Col)) * 4 / 3)); c.Row < minRow {
			t.Fatalf("draw %d: %v is beside the camera, row must be >= %d", i, c, minRow)
		}
		prev = c
	}
}

func TestRandomizerCoversBothSides(t *testing.T) {
	cfg := DefaultGameplayConfig()
	r := NewRandomizer(NewSeededRNG(9))
	var left, right bool
	for i := 0; i < 500 && !(left && right); i++ {
		c := r.Place(cfg, DefaultGrid(), DefaultTarget).Cell
		left = left || c.Col > 0
		right = right || c.Col < 0
	}
	if !left || !right {
		t.Fatal("expected targets on both sides of the lane")
	}
}

// constSource always returns the same value
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestRandomizerFallback(t *testing.T) {
	cfg := DefaultGameplayConfig()
	grid := DefaultGrid()

	// Always drawing the widest column forces rowMin past MaxRow
	r := NewRandomizer(constSource(0.999))
	p := r.Place(cfg, grid, DefaultTarget)
	if !p.Fallback || p.Cell != DefaultTarget || p.Attempts != DefaultMaxAttempts {
		t.Fatalf("expected fallback to previous cell, got %+v", p)
	}

	p = r.Place(cfg, grid, TargetCell{Col: 40, Row: 50})
	if !p.Fallback || p.Cell != (TargetCell{}) {
		t.Fatalf("illegal previous cell should fall back to origin, got %+v", p)
	}

	r = NewRandomizer(NewSeededRNG(3))
	r.MaxAttempts = 0
	if p := r.Place(cfg, grid, DefaultTarget); !p.Fallback {
		t.Fatal("zero attempts must fall back")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
