package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"spacecornhole/cornhole"
)

// Camera projects world points onto the screen for one frame
type Camera struct {
	Width  float64 // Viewport width
	Height float64 // Viewport height

	view     cornhole.View
	viewProj mgl64.Mat4
	focal    float64 // pixels per world unit at depth 1
}

// NewCamera creates a camera for a viewport of the given size
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// Resize changes the viewport size
func (c *Camera) Resize(width, height float64) {
	c.Width = width
	c.Height = height
}

// Update rebuilds the transforms for this frame's view
func (c *Camera) Update(view cornhole.View, worldRadius int) {
	aspect := 1.0
	if c.Height > 0 {
		aspect = c.Width / c.Height
	}
	c.view = view
	c.viewProj = cornhole.Projection(aspect, worldRadius).Mul4(view.Matrix())
	c.focal = c.Height / 2 / math.Tan(cornhole.FieldOfView/2)
}

// Eye returns the camera position
func (c *Camera) Eye() mgl64.Vec3 {
	return c.view.Eye
}

// WorldToScreen converts a world point to screen coordinates.
// Returns false for points behind the near plane.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (float64, float64, bool) {
	sx, sy, _, ok := c.project(p)
	return sx, sy, ok
}

// ScreenRadius returns the on-screen radius of a sphere of radius r at p
func (c *Camera) ScreenRadius(p mgl64.Vec3, r float64) (float64, bool) {
	_, _, depth, ok := c.project(p)
	if !ok {
		return 0, false
	}
	return r * c.focal / depth, true
}

func (c *Camera) project(p mgl64.Vec3) (sx, sy, depth float64, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < cornhole.NearPlane {
		return 0, 0, w, false
	}

	// NDC to screen; screen y grows downward
	sx = (clip.X()/w + 1) / 2 * c.Width
	sy = (1 - clip.Y()/w) / 2 * c.Height
	return sx, sy, w, true
}
