package cornhole

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestEvaluate(t *testing.T) {
	cfg := DefaultGameplayConfig()
	grid := DefaultGrid()
	target := TargetCell{Col: 1, Row: 4} // center (8, 0, 36)

	tests := []struct {
		name    string
		pos     mgl64.Vec3
		done    bool
		outcome Outcome
		landed  bool
		landing TargetCell
	}{
		{"airborne", mgl64.Vec3{0, 10, 20}, false, OutcomeNone, false, TargetCell{}},
		{"just above ground", mgl64.Vec3{8, 1, 36}, false, OutcomeNone, false, TargetCell{}},
		{"hit", mgl64.Vec3{11.9, 0.5, 36}, true, OutcomeHit, true, TargetCell{1, 4}},
		{"edge miss", mgl64.Vec3{12.1, 0.5, 36}, true, OutcomeMiss, true, TargetCell{2, 4}},
		{"ground miss", mgl64.Vec3{2.22, 0.9, 7.49}, true, OutcomeMiss, true, TargetCell{0, 0}},
		{"left the world", mgl64.Vec3{0, 50, 245}, true, OutcomeMiss, false, TargetCell{}},
		{"below ground behind the field", mgl64.Vec3{0, -5, -10}, false, OutcomeNone, false, TargetCell{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, done := Evaluate(tt.pos, target, cfg, grid)
			if done != tt.done {
				t.Fatalf("done = %v, want %v", done, tt.done)
			}
			if !done {
				return
			}
			if res.Outcome != tt.outcome || res.Landed != tt.landed {
				t.Fatalf("got %v landed=%v, want %v landed=%v", res.Outcome, res.Landed, tt.outcome, tt.landed)
			}
			if tt.landed && res.Landing != tt.landing {
				t.Fatalf("landing = %v, want %v", res.Landing, tt.landing)
			}
			if res.Position != tt.pos {
				t.Fatalf("position = %v, want %v", res.Position, tt.pos)
			}
		})
	}
}

func TestEvaluateGroundBeforeWorldEdge(t *testing.T) {
	cfg := DefaultGameplayConfig()
	cfg.WorldRadius = MinWorldRadius
	// Inside both the grid and past the sphere edge: the ground wins
	pos := mgl64.Vec3{0, 0.5, 99.5}
	res, done := Evaluate(pos, TargetCell{Col: 0, Row: 12}, cfg, DefaultGrid())
	if !done || !res.Landed {
		t.Fatalf("expected a ground landing, got %+v", res)
	}
	if res.Outcome != OutcomeHit {
		t.Fatalf("expected hit on cell (0, 12), got %v", res.Outcome)
	}
}
