package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"spacecornhole/cornhole"
)

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowOverlay bool // FPS, phase, ball and camera readouts
	LogEffects  bool // log target moves and randomizer fallbacks
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// drawDebugOverlay prints the F1 overlay in the top-right corner
func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	s := g.session
	ball := s.BallPosition()
	eye := g.camera.Eye()
	env := cornhole.NewEnvelope(s.Config(), s.Grid())

	lines := fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nPhase: %s\nBall: (%.2f, %.2f, %.2f)\nFlight time: %.3fs\nEye: (%.1f, %.1f, %.1f)\nEnvelope: |col|<=%d row<=%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.Phase(),
		ball.X(), ball.Y(), ball.Z(),
		s.Launch().SinceRelease,
		eye.X(), eye.Y(), eye.Z(),
		env.MaxCol, env.MaxRow,
	)
	if eta, ok := s.PredictedLanding(); ok {
		lines += fmt.Sprintf("\nGround in: %.3fs", eta)
	}
	if anchor, ok := s.Drag().Anchor(); ok {
		d := s.Drag().Delta()
		lines += fmt.Sprintf("\nDrag: from (%.0f, %.0f) by (%.0f, %.0f)", anchor.X(), anchor.Y(), d.X(), d.Y())
	}
	if st := s.State(); st.Phase == cornhole.PhaseResolved {
		lines += fmt.Sprintf("\nStopped at: (%.2f, %.2f, %.2f)", st.LastRest.X(), st.LastRest.Y(), st.LastRest.Z())
	}
	if g.profiler != nil && g.profiler.IsProfiling() {
		lines += "\nProfiling..."
	}
	ebitenutil.DebugPrintAt(screen, lines, int(g.width)-260, 10)
}
