package cornhole

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDragReleaseDeltaCapturedAtRelease(t *testing.T) {
	var d DragState
	d.Begin(mgl64.Vec2{10, 10})
	d.Move(mgl64.Vec2{30, -20})
	d.Move(mgl64.Vec2{60, -70})

	if !d.End() {
		t.Fatal("expected End to report a finished drag")
	}
	want := mgl64.Vec2{50, -80}
	got, ok := d.ReleaseDelta()
	if !ok || got != want {
		t.Fatalf("release delta = %v (%v), want %v", got, ok, want)
	}

	// Movement after release must not leak into the captured delta
	d.Move(mgl64.Vec2{500, 500})
	d.Leave()
	if got, _ := d.ReleaseDelta(); got != want {
		t.Fatalf("release delta changed after release: %v", got)
	}
	if d.Active() {
		t.Fatal("anchor should be cleared after release")
	}
	if d.Current() != (mgl64.Vec2{}) {
		t.Fatalf("current point should be zeroed, got %v", d.Current())
	}
}

func TestDragEndWithoutBegin(t *testing.T) {
	var d DragState
	if d.End() {
		t.Fatal("End without a drag should be a no-op")
	}
	if d.Released() {
		t.Fatal("released must stay false")
	}
}

func TestDragBeginClearsPreviousRelease(t *testing.T) {
	var d DragState
	d.Begin(mgl64.Vec2{0, 0})
	d.Move(mgl64.Vec2{5, 5})
	d.End()

	d.Begin(mgl64.Vec2{1, 1})
	if d.Released() {
		t.Fatal("a new drag must clear released")
	}
	if _, ok := d.takeRelease(); ok {
		t.Fatal("no release should be pending during a drag")
	}
}

func TestDragTakeReleaseOnce(t *testing.T) {
	var d DragState
	d.Begin(mgl64.Vec2{0, 0})
	d.Move(mgl64.Vec2{3, 4})
	d.End()

	if _, ok := d.takeRelease(); !ok {
		t.Fatal("expected pending release")
	}
	if _, ok := d.takeRelease(); ok {
		t.Fatal("release must be handed out once")
	}
	if got, ok := d.ReleaseDelta(); !ok || got != (mgl64.Vec2{3, 4}) {
		t.Fatalf("release delta must survive consumption, got %v", got)
	}
}

func TestDragLeave(t *testing.T) {
	var d DragState
	d.current = mgl64.Vec2{7, 7}
	d.Leave()
	if d.Current() != (mgl64.Vec2{}) {
		t.Fatal("leave without drag should zero the cursor")
	}

	d.Begin(mgl64.Vec2{1, 1})
	d.Move(mgl64.Vec2{4, 5})
	d.Leave()
	if d.Delta() != (mgl64.Vec2{3, 4}) {
		t.Fatalf("leave during drag must not touch it, delta %v", d.Delta())
	}
}
