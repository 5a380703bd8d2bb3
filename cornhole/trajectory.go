package cornhole

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Trajectory constants
const (
	VelocityScale = 10.0 // launch units to world units per second
	BallRadius    = 1.0
)

// LaunchOrigin is where the ball rests before every throw
var LaunchOrigin = mgl64.Vec3{0, 4, 10}

// LaunchVelocity decomposes a drag vector into the initial velocity.
// x follows the drag; the drag's y is split between height and depth by ElevationAngle.
func LaunchVelocity(delta mgl64.Vec2) mgl64.Vec3 {
	mx, my := dragUnits(delta)
	return mgl64.Vec3{
		mx,
		math.Sin(ElevationAngle) * my,
		math.Cos(ElevationAngle) * my,
	}
}

// LaunchParameters describes one flight of the ball
type LaunchParameters struct {
	Velocity     mgl64.Vec3
	Origin       mgl64.Vec3
	SinceRelease float64 // scaled seconds since release
}

// NewLaunch builds the flight for a release delta
func NewLaunch(delta mgl64.Vec2) LaunchParameters {
	return LaunchParameters{
		Velocity: LaunchVelocity(delta),
		Origin:   LaunchOrigin,
	}
}

// PositionAt returns the ball position t seconds into the flight
func (l LaunchParameters) PositionAt(t, gravity float64) mgl64.Vec3 {
	return mgl64.Vec3{
		l.Origin.X() + VelocityScale*l.Velocity.X()*t,
		l.Origin.Y() + VelocityScale*l.Velocity.Y()*t - 0.5*gravity*t*t,
		l.Origin.Z() + VelocityScale*l.Velocity.Z()*t,
	}
}

// Position returns the ball position at the current flight time
func (l LaunchParameters) Position(gravity float64) mgl64.Vec3 {
	return l.PositionAt(l.SinceRelease, gravity)
}

// Advance moves the flight clock forward by dt scaled seconds
func (l *LaunchParameters) Advance(dt float64) {
	l.SinceRelease += dt
}

// TimeToHeight solves Y(t) = h for the descending crossing.
// Returns false when the ball never gets that low, which cannot happen for gravity > 0.
func (l LaunchParameters) TimeToHeight(h, gravity float64) (float64, bool) {
	// 0.5*g*t^2 - k*vy*t + (h - y0) = 0
	a := 0.5 * gravity
	b := -VelocityScale * l.Velocity.Y()
	c := h - l.Origin.Y()
	if a == 0 {
		if b == 0 {
			return 0, false
		}
		t := -c / b
		return t, t >= 0
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	t := (-b + math.Sqrt(disc)) / (2 * a)
	return t, t >= 0
}

// Trail samples the path flown over the last span seconds, oldest first.
// The last point is the current position.
func (l LaunchParameters) Trail(gravity, span float64, segments int) []mgl64.Vec3 {
	if segments < 1 {
		segments = 1
	}
	start := math.Max(0, l.SinceRelease-span)
	step := (l.SinceRelease - start) / float64(segments)

	points := make([]mgl64.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		points = append(points, l.PositionAt(start+step*float64(i), gravity))
	}
	return points
}
