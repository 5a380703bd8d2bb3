package cornhole

import "github.com/go-gl/mathgl/mgl64"

// DragState tracks one click-and-drag cycle of the pointer.
// Positions are canvas-centered: origin at the canvas center, y grows downward.
type DragState struct {
	anchor       mgl64.Vec2
	anchored     bool
	current      mgl64.Vec2
	released     bool
	releaseDelta mgl64.Vec2
	consumed     bool // releaseDelta already turned into a launch
}

// Anchor returns the drag start point and whether a drag is in progress
func (d DragState) Anchor() (mgl64.Vec2, bool) {
	return d.anchor, d.anchored
}

// Active reports whether a drag is in progress
func (d DragState) Active() bool {
	return d.anchored
}

// Current returns the latest pointer position seen during the drag
func (d DragState) Current() mgl64.Vec2 {
	return d.current
}

// Released reports whether the last drag cycle ended with a release
func (d DragState) Released() bool {
	return d.released
}

// ReleaseDelta returns the drag vector captured at release time
func (d DragState) ReleaseDelta() (mgl64.Vec2, bool) {
	return d.releaseDelta, d.released
}

// Delta returns the live drag vector, or zero when no drag is in progress
func (d DragState) Delta() mgl64.Vec2 {
	if !d.anchored {
		return mgl64.Vec2{}
	}
	return d.current.Sub(d.anchor)
}

// Begin starts a new drag at p. The previous release is discarded.
func (d *DragState) Begin(p mgl64.Vec2) {
	d.anchor = p
	d.anchored = true
	d.current = p
	d.released = false
	d.releaseDelta = mgl64.Vec2{}
	d.consumed = false
}

// Move records a pointer move; ignored when no drag is in progress
func (d *DragState) Move(p mgl64.Vec2) {
	if d.anchored {
		d.current = p
	}
}

// End finishes the drag and captures the release delta.
// Returns false when there was no drag to end.
func (d *DragState) End() bool {
	if !d.anchored {
		return false
	}
	d.releaseDelta = d.current.Sub(d.anchor)
	d.anchored = false
	d.anchor = mgl64.Vec2{}
	d.current = mgl64.Vec2{}
	d.released = true
	d.consumed = false
	return true
}

// Leave handles the pointer leaving the canvas. Only the idle cursor is reset.
func (d *DragState) Leave() {
	if !d.anchored {
		d.current = mgl64.Vec2{}
	}
}

// takeRelease hands out the release delta once per drag cycle
func (d *DragState) takeRelease() (mgl64.Vec2, bool) {
	if !d.released || d.consumed {
		return mgl64.Vec2{}, false
	}
	d.consumed = true
	return d.releaseDelta, true
}

// Clear drops any drag in progress and any pending release
func (d *DragState) Clear() {
	*d = DragState{}
}
