package profiler

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// newRecordingProfiler returns a profiler whose captures are recorded instead of run
func newRecordingProfiler(t *testing.T) (*Profiler, *[]string) {
	t.Helper()
	p, err := NewProfiler(filepath.Join(t.TempDir(), "profiles"))
	if err != nil {
		t.Fatalf("NewProfiler: %v", err)
	}
	var reasons []string
	p.capture = func(reason string) error {
		reasons = append(reasons, reason)
		return nil
	}
	return p, &reasons
}

func feed(p *Profiler, frames int, dt float64) {
	for i := 0; i < frames; i++ {
		p.Tick(dt, "in-flight")
	}
}

func TestTickCapturesOnSlowFrames(t *testing.T) {
	p, reasons := newRecordingProfiler(t)
	p.startTime = time.Now().Add(-time.Minute)

	// Four 125 ms frames fill one window at 8 FPS
	feed(p, 4, 0.125)
	if len(*reasons) != 1 || (*reasons)[0] != "fps8-in-flight" {
		t.Fatalf("captures = %v, want one at 8 FPS", *reasons)
	}
	if p.FPS() != 8 {
		t.Fatalf("fps = %f", p.FPS())
	}
}

func TestTickWaitsForFullWindow(t *testing.T) {
	p, reasons := newRecordingProfiler(t)
	p.startTime = time.Now().Add(-time.Minute)

	feed(p, 3, 0.125)
	if len(*reasons) != 0 {
		t.Fatalf("captured before the window filled: %v", *reasons)
	}
}

func TestTickIgnoresFastFrames(t *testing.T) {
	p, reasons := newRecordingProfiler(t)
	p.startTime = time.Now().Add(-time.Minute)

	feed(p, 128, 1.0/128)
	if len(*reasons) != 0 {
		t.Fatalf("captured at %f FPS: %v", p.FPS(), *reasons)
	}
}

func TestTickStartupGrace(t *testing.T) {
	p, reasons := newRecordingProfiler(t)

	feed(p, 4, 0.125)
	if len(*reasons) != 0 {
		t.Fatalf("captured during startup: %v", *reasons)
	}

	p.startTime = time.Now().Add(-startupGrace)
	feed(p, 4, 0.125)
	if len(*reasons) != 1 {
		t.Fatalf("captures = %v, want one once the grace period is over", *reasons)
	}
}

func TestCaptureProfileCooldown(t *testing.T) {
	p, err := NewProfiler(t.TempDir())
	if err != nil {
		t.Fatalf("NewProfiler: %v", err)
	}
	p.lastCaptureTime = time.Now()

	if err := p.CaptureProfile("test"); !errors.Is(err, ErrProfilerBusy) {
		t.Fatalf("err = %v, want ErrProfilerBusy", err)
	}
	if p.IsProfiling() {
		t.Fatal("cooldown must not start a capture")
	}
}
