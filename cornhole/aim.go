package cornhole

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Launch geometry shared by the aim arrow and the trajectory
const (
	PixelsPerUnit  = 100.0       // drag pixels per launch unit
	ElevationAngle = math.Pi / 4 // fixed launch elevation
	ArrowScale     = 5.0         // drag units to arrow length
)

// Aim describes the aiming arrow for a live drag
type Aim struct {
	Bearing         float64    // horizontal angle from +z toward +x
	Magnitude       float64    // arrow length
	ShadowMagnitude float64    // length of the arrow projected on the ground
	Direction       mgl64.Vec3 // velocity this drag would launch with
}

// dragUnits converts a pixel drag vector to launch units
func dragUnits(delta mgl64.Vec2) (mx, my float64) {
	return delta.X() / PixelsPerUnit, delta.Y() / PixelsPerUnit
}

// AimFromDrag computes the arrow for the live drag vector.
// The arrow has no effect on physics.
func AimFromDrag(delta mgl64.Vec2) Aim {
	mx, my := dragUnits(delta)
	forward := math.Cos(ElevationAngle) * my

	var bearing float64
	if forward == 0 {
		if mx > 0 {
			bearing = math.Pi / 2
		} else {
			bearing = -math.Pi / 2
		}
	} else {
		bearing = math.Atan2(mx, forward)
	}

	return Aim{
		Bearing:         bearing,
		Magnitude:       ArrowScale * math.Sqrt(mx*mx+my*my),
		ShadowMagnitude: ArrowScale * math.Sqrt(mx*mx+forward*forward),
		Direction:       LaunchVelocity(delta),
	}
}

// Tip returns the arrow head position for an arrow starting at origin
func (a Aim) Tip(origin mgl64.Vec3) mgl64.Vec3 {
	return origin.Add(a.Direction.Mul(ArrowScale))
}

// ShadowTip returns the ground-projected arrow head for an arrow starting at origin
func (a Aim) ShadowTip(origin mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		origin.X() + math.Sin(a.Bearing)*a.ShadowMagnitude,
		0,
		origin.Z() + math.Cos(a.Bearing)*a.ShadowMagnitude,
	}
}
