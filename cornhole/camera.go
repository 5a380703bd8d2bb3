package cornhole

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera constants
const (
	FieldOfView = math.Pi / 4
	NearPlane   = 1.0
	MergeTime   = 0.75 // follow-cam delay behind the ball, seconds of flight
)

var (
	worldUp         = mgl64.Vec3{0, 1, 0}
	watchBallOffset = mgl64.Vec3{0, 2.5, -20}
	followJitter    = mgl64.Vec3{0.01, 0.01, 0.01} // keeps eye and center apart at ct == 0
)

// CameraMode picks how the camera behaves while the ball is flying
type CameraMode int

const (
	CameraStatic CameraMode = iota
	CameraWatchBall
	CameraFollowBall
	cameraModeCount
)

func (m CameraMode) String() string {
	switch m {
	case CameraWatchBall:
		return "Watch Ball"
	case CameraFollowBall:
		return "Follow Ball"
	default:
		return "Static"
	}
}

// CameraPreset picks one of the fixed viewpoints
type CameraPreset int

const (
	PresetStandard CameraPreset = iota
	PresetLow
	PresetHigh
	PresetLeft
	PresetRight
	presetCount
)

func (p CameraPreset) String() string {
	switch p {
	case PresetLow:
		return "Low"
	case PresetHigh:
		return "High"
	case PresetLeft:
		return "Left"
	case PresetRight:
		return "Right"
	default:
		return "Standard"
	}
}

// View is a look-at triple
type View struct {
	Eye    mgl64.Vec3
	Center mgl64.Vec3
	Up     mgl64.Vec3
}

// Matrix returns the view transform
func (v View) Matrix() mgl64.Mat4 {
	return mgl64.LookAtV(v.Eye, v.Center, v.Up)
}

var presetViews = [presetCount]View{
	PresetStandard: {Eye: mgl64.Vec3{0, 25, -20}, Center: mgl64.Vec3{0, 3, 30}, Up: worldUp},
	PresetLow:      {Eye: mgl64.Vec3{0, 6, -8}, Center: mgl64.Vec3{0, 3, 30}, Up: worldUp},
	PresetHigh:     {Eye: mgl64.Vec3{0, 70, -5}, Center: mgl64.Vec3{0, 0, 45}, Up: worldUp},
	PresetLeft:     {Eye: mgl64.Vec3{-45, 20, -5}, Center: mgl64.Vec3{0, 0, 30}, Up: worldUp},
	PresetRight:    {Eye: mgl64.Vec3{45, 20, -5}, Center: mgl64.Vec3{0, 0, 30}, Up: worldUp},
}

// PresetView returns the fixed view for p; unknown presets map to Standard
func PresetView(p CameraPreset) View {
	if p < 0 || p >= presetCount {
		p = PresetStandard
	}
	return presetViews[p]
}

// CameraSettings is the player's camera selection
type CameraSettings struct {
	Mode   CameraMode
	Preset CameraPreset
}

// SelectView chooses the camera for this frame. The ball cameras only
// apply in flight; every other phase uses the selected preset.
func SelectView(cam CameraSettings, phase Phase, launch LaunchParameters, gravity float64) View {
	preset := PresetView(cam.Preset)
	if phase != PhaseInFlight {
		return preset
	}

	t := launch.SinceRelease
	ball := launch.PositionAt(t, gravity)

	switch cam.Mode {
	case CameraWatchBall:
		return View{Eye: ball.Add(watchBallOffset), Center: ball, Up: worldUp}
	case CameraFollowBall:
		if ct := t - MergeTime; ct > 0 {
			eye := launch.PositionAt(ct, gravity).Add(followJitter)
			return View{Eye: eye, Center: ball, Up: worldUp}
		}
		// Glide in from the world origin to the launch point over the first MergeTime
		return View{Eye: launch.Origin.Mul(t / MergeTime), Center: ball, Up: worldUp}
	default:
		return preset
	}
}

// Projection returns the perspective transform; the far plane encloses the star sphere
func Projection(aspect float64, worldRadius int) mgl64.Mat4 {
	return mgl64.Perspective(FieldOfView, aspect, NearPlane, 2*float64(worldRadius))
}
