// Package profiler captures a CPU profile and execution trace when the
// frame rate drops below a threshold.
package profiler

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// ErrProfilerBusy is returned when a capture is running or on cooldown
var ErrProfilerBusy = errors.New("profiler busy")

// Frame-drop detection
const (
	fpsDropThreshold = 55.0
	fpsWindow        = 0.5 // seconds per FPS sample
	startupGrace     = 3 * time.Second
)

// Profiler captures a CPU profile and trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration

	startTime time.Time
	fpsTimer  float64
	fpsFrames int
	fps       float64

	// capture starts a capture; CaptureProfile unless replaced in tests
	capture func(reason string) error
}

// NewProfiler creates a profiler writing to dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	p := &Profiler{
		captureCooldown: 10 * time.Second,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
		startTime:       time.Now(),
		fps:             60,
	}
	p.capture = p.CaptureProfile
	return p, nil
}

// Tick feeds one frame of dt seconds and starts a capture on a sustained drop
func (p *Profiler) Tick(dt float64, context string) {
	p.fpsTimer += dt
	p.fpsFrames++
	if p.fpsTimer < fpsWindow {
		return
	}
	p.fps = float64(p.fpsFrames) / p.fpsTimer
	p.fpsTimer, p.fpsFrames = 0, 0

	if p.fps >= fpsDropThreshold || time.Since(p.startTime) < startupGrace {
		return
	}
	reason := fmt.Sprintf("fps%.0f-%s", p.fps, context)
	if err := p.capture(reason); err != nil && !errors.Is(err, ErrProfilerBusy) {
		log.Printf("profiler: %v", err)
	}
}

// CaptureProfile captures CPU profile and trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("%w: already profiling", ErrProfilerBusy)
	}
	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("%w: last capture was %v ago", ErrProfilerBusy, time.Since(p.lastCaptureTime).Round(time.Second))
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)
	log.Printf("profiler: frame rate dropped to %.0f FPS, capturing %s", p.fps, baseName)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("profiler: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("profiler: %v", err)
			}
		}()
		wg.Wait()

		p.logSummary(baseName)
	}()
	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()
	return nil
}

// logSummary reports where the capture went and the heap at that moment
func (p *Profiler) logSummary(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("profiler: could not stat profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profiler: saved %s (%.2f KB); view with: go tool pprof -http=:8080 %s", path, float64(info.Size())/1024, path)
	log.Printf("profiler: heap alloc %d KB, sys %d KB, gc runs %d", m.HeapAlloc/1024, m.Sys/1024, m.NumGC)
}

// FPS returns the frame rate measured over the last full window
func (p *Profiler) FPS() float64 {
	return p.fps
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
