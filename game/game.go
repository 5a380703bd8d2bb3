package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spacecornhole/audio"
	"spacecornhole/config"
	"spacecornhole/controls"
	"spacecornhole/cornhole"
	"spacecornhole/profiler"
)

// maxDeltaTime caps a single step so a stalled frame cannot tunnel the ball
const maxDeltaTime = 0.1

// SoundPlayer plays gameplay cues
type SoundPlayer interface {
	Play(st audio.SoundType)
}

// Game adapts a cornhole session to the ebiten game loop
type Game struct {
	config   config.Config
	session  *cornhole.Session
	camera   *Camera
	renderer *Renderer
	panel    *controls.Panel
	input    *PointerInput
	sound    SoundPlayer
	debug    *DebugState

	// Performance profiling, nil unless enabled
	profiler *profiler.Profiler

	width, height float64

	// Scene time for the star field and target ring
	elapsed float64

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance. sound may be nil for a silent game.
func NewGame(cfg config.Config, sound SoundPlayer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	camera := NewCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
	g := &Game{
		config:         cfg,
		session:        cornhole.NewSession(cfg.GameplayTuning(), cfg.Grid(), cfg.RNG()),
		camera:         camera,
		renderer:       NewRenderer(camera),
		sound:          sound,
		debug:          GetDebugState(),
		width:          float64(cfg.ScreenWidth),
		height:         float64(cfg.ScreenHeight),
		lastUpdateTime: time.Now(),
	}
	g.panel = g.buildPanel()
	g.input = NewPointerInput(g.panel)

	g.debug.ShowOverlay = cfg.Debug
	g.debug.LogEffects = cfg.Debug

	if cfg.ProfileFrameDrops {
		p, err := profiler.NewProfiler(cfg.ProfilesDir)
		if err != nil {
			return nil, err
		}
		g.profiler = p
		log.Printf("frame-drop profiling enabled, writing to %s", cfg.ProfilesDir)
	}
	return g, nil
}

// Update advances input and simulation by one tick
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowOverlay = !g.debug.ShowOverlay
	}

	g.apply(g.input.Update(g.session, g.panel, g.width, g.height))
	g.apply(g.session.Step(deltaTime))
	g.elapsed += deltaTime

	if g.profiler != nil {
		g.profiler.Tick(deltaTime, g.session.Phase().String())
	}
	return nil
}

// apply carries out the side effects the session asked for
func (g *Game) apply(effects []cornhole.Effect) {
	for _, e := range effects {
		switch e {
		case cornhole.EffectLaunch:
			g.play(audio.SoundLaunch)
		case cornhole.EffectHit:
			g.play(audio.SoundHit)
		case cornhole.EffectMiss:
			g.play(audio.SoundMiss)
		case cornhole.EffectTargetMoved:
			if g.debug.LogEffects {
				t := g.session.Target()
				log.Printf("target moved to (%d, %d)", -t.Col, t.Row)
			}
		case cornhole.EffectRandomizeFallback:
			if g.debug.LogEffects {
				t := g.session.Target()
				log.Printf("randomizer hit its retry cap, target fell back to (%d, %d)", -t.Col, t.Row)
			}
		}
	}
}

func (g *Game) play(st audio.SoundType) {
	if g.sound != nil {
		g.sound.Play(st)
	}
}

// Draw renders the scene and overlays
func (g *Game) Draw(screen *ebiten.Image) {
	g.camera.Update(g.session.View(), g.session.Config().WorldRadius)
	g.renderer.Render(screen, g.session, g.elapsed)
	g.drawHUD(screen)
	if g.debug.ShowOverlay {
		g.drawDebugOverlay(screen)
	}
}

// Layout tracks the window size so the canvas fills it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = float64(outsideWidth), float64(outsideHeight)
	g.camera.Resize(g.width, g.height)
	return outsideWidth, outsideHeight
}
