package game

import (
	"fmt"
	"image/color"

	"spacecornhole/controls"
	"spacecornhole/cornhole"
)

var (
	tintAction = color.RGBA{60, 90, 160, 255}
	tintTarget = color.RGBA{150, 90, 20, 255}
	tintTuning = color.RGBA{60, 120, 80, 255}
	tintCamera = color.RGBA{110, 60, 140, 255}
)

// buildPanel registers every control button and live readout
func (g *Game) buildPanel() *controls.Panel {
	s := g.session
	p := controls.NewPanel(controls.DefaultMetrics())

	p.Button("Reset", "r", func() { g.apply(s.Reset()) }, tintAction)
	p.Button("Randomize Target", "e", func() { g.apply(s.Randomize()) }, tintAction)
	p.Button("Randomization", "q", s.ToggleRandomizeOnHit, tintAction)
	p.Readout(func() string {
		state := "Off"
		if s.Config().RandomizeOnHit {
			state = "On"
		}
		return "Auto-randomization: " + state
	})

	p.Button("Target Left", "a", func() { s.NudgeTarget(1, 0) }, tintTarget)
	p.Button("Target Right", "d", func() { s.NudgeTarget(-1, 0) }, tintTarget)
	p.Button("Target Forwards", "w", func() { s.NudgeTarget(0, 1) }, tintTarget)
	p.Button("Target Backwards", "s", func() { s.NudgeTarget(0, -1) }, tintTarget)
	p.Readout(func() string {
		t := s.Target()
		return fmt.Sprintf("Target: (%d, %d)", -t.Col, t.Row)
	})

	p.Button("Increase Tile Size", "space", func() { g.apply(s.AdjustTileScale(1)) }, tintTuning)
	p.Button("Decrease Tile Size", "shift+space", func() { g.apply(s.AdjustTileScale(-1)) }, tintTuning)
	p.Readout(func() string { return s.Config().TileSizeReadout() })

	p.Button("Increase Gravity", "g", func() { s.AdjustGravity(1) }, tintTuning)
	p.Button("Decrease Gravity", "h", func() { s.AdjustGravity(-1) }, tintTuning)
	p.Readout(func() string { return s.Config().GravityReadout() })

	p.Button("Speed up", "t", func() { s.AdjustTimeScale(1) }, tintTuning)
	p.Button("Slow Down", "y", func() { s.AdjustTimeScale(-1) }, tintTuning)
	p.Readout(func() string { return s.Config().SpeedReadout() })

	p.Button("Increase World", ",", func() { g.apply(s.AdjustWorldRadius(1)) }, tintTuning)
	p.Button("Decrease World", ".", func() { g.apply(s.AdjustWorldRadius(-1)) }, tintTuning)
	p.Readout(func() string { return s.Config().WorldSizeReadout() })

	modes := []cornhole.CameraMode{cornhole.CameraStatic, cornhole.CameraWatchBall, cornhole.CameraFollowBall}
	for i, m := range modes {
		p.Button(m.String(), fmt.Sprint(i), func() { s.SetCameraMode(m) }, tintCamera)
	}
	p.NewLine()
	presets := []cornhole.CameraPreset{
		cornhole.PresetStandard, cornhole.PresetLow, cornhole.PresetHigh,
		cornhole.PresetLeft, cornhole.PresetRight,
	}
	for i, pr := range presets {
		p.Button(pr.String(), fmt.Sprint(len(modes)+i), func() { s.SetCameraPreset(pr) }, tintCamera)
	}
	p.Readout(func() string {
		c := s.Camera()
		return fmt.Sprintf("Camera: %s / %s", c.Mode, c.Preset)
	})

	p.Readout(func() string { return s.Tally().String() })
	return p
}
