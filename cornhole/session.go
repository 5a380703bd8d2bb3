package cornhole

import "github.com/go-gl/mathgl/mgl64"

// Status messages
const (
	MessageIntro  = "This is a space cornhole game. Click and drag the ball to launch it toward the target"
	MessageHit    = "Target hit!"
	MessageMissed = "Target missed. Try again"
)

// Phase is the game state machine position
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAiming
	PhaseInFlight
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseInFlight:
		return "in-flight"
	case PhaseResolved:
		return "resolved"
	default:
		return "idle"
	}
}

// Effect is a side effect requested by the session for the host to carry out
type Effect int

const (
	EffectLaunch Effect = iota
	EffectHit
	EffectMiss
	EffectTargetMoved
	EffectRandomizeFallback
)

func (e Effect) String() string {
	switch e {
	case EffectLaunch:
		return "launch"
	case EffectHit:
		return "hit"
	case EffectMiss:
		return "miss"
	case EffectTargetMoved:
		return "target-moved"
	case EffectRandomizeFallback:
		return "randomize-fallback"
	default:
		return "unknown"
	}
}

// GameState is the state machine record
type GameState struct {
	Phase       Phase
	LastLanding TargetCell
	HasLanding  bool
	LastOutcome Outcome
	LastRest    mgl64.Vec3 // ball position on the frame the last flight ended
}

// Session owns all gameplay state for one game.
// It is driven from a single goroutine: pointer events and Step never overlap.
type Session struct {
	defaults   GameplayConfig
	config     GameplayConfig
	grid       Grid
	drag       DragState
	state      GameState
	target     TargetCell
	launch     LaunchParameters
	tally      ScoreTally
	camera     CameraSettings
	randomizer *Randomizer
}

// NewSession creates a session. cfg is clamped and becomes the Reset baseline.
func NewSession(cfg GameplayConfig, grid Grid, rng RandomSource) *Session {
	s := &Session{
		defaults:   cfg.Clamped(),
		grid:       grid,
		randomizer: NewRandomizer(rng),
	}
	s.Reset()
	return s
}

// Reset returns to Idle with default tunables, target and camera.
// The score tally is kept.
func (s *Session) Reset() []Effect {
	s.config = s.defaults
	s.drag.Clear()
	s.launch = LaunchParameters{Origin: LaunchOrigin}
	s.state = GameState{Phase: PhaseIdle}
	s.camera = CameraSettings{}
	s.target = DefaultTarget
	return s.ensureTargetInEnvelope()
}

// PointerDown starts a drag at p. Ignored while the ball is flying.
func (s *Session) PointerDown(p mgl64.Vec2) bool {
	if s.state.Phase == PhaseInFlight {
		return false
	}
	s.drag.Begin(p)
	return true
}

// PointerMove updates the live drag
func (s *Session) PointerMove(p mgl64.Vec2) {
	s.drag.Move(p)
}

// PointerUp releases the drag and requests the launch cue
func (s *Session) PointerUp() []Effect {
	if !s.drag.End() {
		return nil
	}
	return []Effect{EffectLaunch}
}

// PointerLeave handles the pointer leaving the canvas
func (s *Session) PointerLeave() {
	s.drag.Leave()
}

// Step advances the game by one frame of dt real seconds
func (s *Session) Step(dt float64) []Effect {
	if s.state.Phase != PhaseInFlight {
		if s.drag.Active() {
			s.state.Phase = PhaseAiming
		} else if delta, ok := s.drag.takeRelease(); ok {
			s.launch = NewLaunch(delta)
			s.state.Phase = PhaseInFlight
		}
	}

	if s.state.Phase != PhaseInFlight {
		return nil
	}

	s.launch.Advance(dt * s.config.SpeedFactor())
	res, done := Evaluate(s.launch.Position(float64(s.config.Gravity)), s.target, s.config, s.grid)
	if !done {
		return nil
	}
	return s.resolve(res)
}

func (s *Session) resolve(res Resolution) []Effect {
	s.tally.Record(res.Outcome)
	s.state.LastOutcome = res.Outcome
	s.state.LastLanding = res.Landing
	s.state.HasLanding = res.Landed
	s.state.LastRest = res.Position
	s.state.Phase = PhaseResolved
	s.launch.SinceRelease = 0

	var effects []Effect
	if res.Outcome == OutcomeHit {
		effects = append(effects, EffectHit)
		if s.config.RandomizeOnHit {
			effects = append(effects, s.Randomize()...)
		}
	} else {
		effects = append(effects, EffectMiss)
	}
	return effects
}

// Randomize moves the target to a freshly drawn cell
func (s *Session) Randomize() []Effect {
	placement := s.randomizer.Place(s.config, s.grid, s.target)
	s.target = placement.Cell
	if placement.Fallback {
		return []Effect{EffectTargetMoved, EffectRandomizeFallback}
	}
	return []Effect{EffectTargetMoved}
}

// ensureTargetInEnvelope re-draws the target when tunables have pushed it out of range
func (s *Session) ensureTargetInEnvelope() []Effect {
	if NewEnvelope(s.config, s.grid).Allows(s.target) {
		return nil
	}
	return s.Randomize()
}

// ToggleRandomizeOnHit flips automatic randomization
func (s *Session) ToggleRandomizeOnHit() {
	s.config.RandomizeOnHit = !s.config.RandomizeOnHit
}

// NudgeTarget moves the target by one cell. Ignored while the ball is flying.
func (s *Session) NudgeTarget(dCol, dRow int) bool {
	if s.state.Phase == PhaseInFlight {
		return false
	}
	return s.target.Nudge(dCol, dRow)
}

// AdjustTileScale changes the tile size. Ignored while the ball is flying.
func (s *Session) AdjustTileScale(delta int) []Effect {
	if s.state.Phase == PhaseInFlight || !s.config.stepTileScale(delta) {
		return nil
	}
	if delta > 0 {
		return s.ensureTargetInEnvelope()
	}
	return nil
}

// AdjustGravity changes gravity. Ignored while the ball is flying.
func (s *Session) AdjustGravity(delta int) bool {
	if s.state.Phase == PhaseInFlight {
		return false
	}
	return s.config.stepGravity(delta)
}

// AdjustTimeScale changes playback speed in tenths
func (s *Session) AdjustTimeScale(delta int) bool {
	return s.config.stepTimeScale(delta)
}

// AdjustWorldRadius changes the star sphere radius in WorldStep increments
func (s *Session) AdjustWorldRadius(steps int) []Effect {
	if !s.config.stepWorldRadius(steps * WorldStep) {
		return nil
	}
	if steps < 0 {
		return s.ensureTargetInEnvelope()
	}
	return nil
}

// SetCameraMode selects the flight camera behavior
func (s *Session) SetCameraMode(m CameraMode) {
	if m >= 0 && m < cameraModeCount {
		s.camera.Mode = m
	}
}

// SetCameraPreset selects the fixed viewpoint
func (s *Session) SetCameraPreset(p CameraPreset) {
	if p >= 0 && p < presetCount {
		s.camera.Preset = p
	}
}

// Phase returns the current state machine phase
func (s *Session) Phase() Phase { return s.state.Phase }

// State returns a copy of the state machine record
func (s *Session) State() GameState { return s.state }

// PredictedLanding returns the scaled seconds left until the ball drops to
// landing height. Only meaningful in flight; the ball may leave the world first.
func (s *Session) PredictedLanding() (float64, bool) {
	if s.state.Phase != PhaseInFlight {
		return 0, false
	}
	h := s.target.Center(s.config.Scale()).Y() + BallRadius
	t, ok := s.launch.TimeToHeight(h, float64(s.config.Gravity))
	if !ok {
		return 0, false
	}
	return max(t-s.launch.SinceRelease, 0), true
}

// Config returns the current tunables
func (s *Session) Config() GameplayConfig { return s.config }

// Grid returns the playing field dimensions
func (s *Session) Grid() Grid { return s.grid }

// Target returns the current target cell
func (s *Session) Target() TargetCell { return s.target }

// Tally returns the score
func (s *Session) Tally() ScoreTally { return s.tally }

// Camera returns the camera selection
func (s *Session) Camera() CameraSettings { return s.camera }

// Launch returns the current or last flight
func (s *Session) Launch() LaunchParameters { return s.launch }

// Drag returns a copy of the pointer tracker
func (s *Session) Drag() DragState { return s.drag }

// Aim returns the arrow for the live drag, if one is in progress
func (s *Session) Aim() (Aim, bool) {
	if !s.drag.Active() || s.state.Phase == PhaseInFlight {
		return Aim{}, false
	}
	return AimFromDrag(s.drag.Delta()), true
}

// BallPosition returns where the ball is drawn this frame
func (s *Session) BallPosition() mgl64.Vec3 {
	if s.state.Phase != PhaseInFlight {
		return LaunchOrigin
	}
	return s.launch.Position(float64(s.config.Gravity))
}

// View returns the camera for this frame
func (s *Session) View() View {
	return SelectView(s.camera, s.state.Phase, s.launch, float64(s.config.Gravity))
}

// Message returns the status message for the current phase
func (s *Session) Message() string {
	if s.state.Phase != PhaseResolved {
		return MessageIntro
	}
	if s.state.LastOutcome == OutcomeHit {
		return MessageHit
	}
	return MessageMissed
}

// ShowLandingMarker reports whether the last landing cell should be highlighted.
// The marker is hidden when it coincides with the current target.
func (s *Session) ShowLandingMarker() bool {
	return s.state.LastOutcome != OutcomeNone && s.state.HasLanding && s.state.LastLanding != s.target
}
