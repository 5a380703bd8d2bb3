package cornhole

import "github.com/go-gl/mathgl/mgl64"

// Outcome classifies a finished flight
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHit
	OutcomeMiss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	default:
		return "none"
	}
}

// Resolution describes how a flight ended
type Resolution struct {
	Outcome  Outcome
	Landing  TargetCell // valid only when Landed
	Landed   bool       // false when the ball left through the star sphere
	Position mgl64.Vec3
}

// Evaluate checks the ball position against the ground and the world sphere.
// The ground check runs first; at most one check fires per call.
func Evaluate(pos mgl64.Vec3, target TargetCell, cfg GameplayConfig, grid Grid) (Resolution, bool) {
	scale := cfg.Scale()
	groundY := target.Center(scale).Y()

	if pos.Y() < groundY+BallRadius && grid.Contains(pos.X(), pos.Z(), scale) {
		res := Resolution{
			Outcome:  OutcomeMiss,
			Landing:  CellAt(pos.X(), pos.Z(), scale),
			Landed:   true,
			Position: pos,
		}
		if target.Footprint(scale).Contains(pos.X(), pos.Z()) {
			res.Outcome = OutcomeHit
		}
		return res, true
	}

	limit := float64(cfg.WorldRadius) - 1
	if pos.Dot(pos) >= limit*limit {
		return Resolution{Outcome: OutcomeMiss, Position: pos}, true
	}

	return Resolution{}, false
}
