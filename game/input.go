package game

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spacecornhole/controls"
	"spacecornhole/cornhole"
)

// keyNames maps control-panel key names to ebiten keys
var keyNames = map[string]ebiten.Key{
	"a":     ebiten.KeyA,
	"d":     ebiten.KeyD,
	"e":     ebiten.KeyE,
	"g":     ebiten.KeyG,
	"h":     ebiten.KeyH,
	"q":     ebiten.KeyQ,
	"r":     ebiten.KeyR,
	"s":     ebiten.KeyS,
	"t":     ebiten.KeyT,
	"w":     ebiten.KeyW,
	"y":     ebiten.KeyY,
	"space": ebiten.KeySpace,
	",":     ebiten.KeyComma,
	".":     ebiten.KeyPeriod,
	"0":     ebiten.KeyDigit0,
	"1":     ebiten.KeyDigit1,
	"2":     ebiten.KeyDigit2,
	"3":     ebiten.KeyDigit3,
	"4":     ebiten.KeyDigit4,
	"5":     ebiten.KeyDigit5,
	"6":     ebiten.KeyDigit6,
	"7":     ebiten.KeyDigit7,
	"8":     ebiten.KeyDigit8,
	"9":     ebiten.KeyDigit9,
}

type boundKey struct {
	name string
	key  ebiten.Key
}

// PointerInput turns mouse, first-touch and keyboard state into session and panel calls
type PointerInput struct {
	keys []boundKey

	dragging bool // the current press started a drag, not a button click
	touching bool
	touchID  ebiten.TouchID
	touchIDs []ebiten.TouchID
	inside   bool
}

// NewPointerInput resolves the panel's key names once
func NewPointerInput(panel *controls.Panel) *PointerInput {
	in := &PointerInput{}
	for _, name := range panel.Bindings() {
		key, ok := keyNames[name]
		if !ok {
			log.Printf("input: no key for binding %q", name)
			continue
		}
		in.keys = append(in.keys, boundKey{name: name, key: key})
	}
	return in
}

// Update polls input for this tick and returns the effects it caused
func (in *PointerInput) Update(s *cornhole.Session, panel *controls.Panel, width, height float64) []cornhole.Effect {
	var effects []cornhole.Effect

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range in.keys {
		if inpututil.IsKeyJustPressed(k.key) {
			panel.Press(controls.Binding{Key: k.name, Shift: shift})
		}
	}

	toCanvas := func(x, y int) mgl64.Vec2 {
		return mgl64.Vec2{float64(x) - width/2, float64(y) - height/2}
	}

	// The first touch acts as the pointer while it lasts
	if !in.touching {
		in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
		if len(in.touchIDs) > 0 {
			in.touchID = in.touchIDs[0]
			in.touching = true
			x, y := ebiten.TouchPosition(in.touchID)
			in.press(s, panel, x, y, toCanvas(x, y))
		}
	}
	if in.touching {
		if inpututil.IsTouchJustReleased(in.touchID) {
			in.touching = false
			effects = append(effects, in.release(s)...)
		} else if in.dragging {
			s.PointerMove(toCanvas(ebiten.TouchPosition(in.touchID)))
		}
		return effects
	}

	x, y := ebiten.CursorPosition()
	inside := float64(x) >= 0 && float64(y) >= 0 && float64(x) < width && float64(y) < height
	if in.inside && !inside {
		s.PointerLeave()
	}
	in.inside = inside

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.press(s, panel, x, y, toCanvas(x, y))
	}
	if in.dragging {
		s.PointerMove(toCanvas(x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		effects = append(effects, in.release(s)...)
	}
	return effects
}

// press routes a pointer-down to the panel first; only misses start a drag
func (in *PointerInput) press(s *cornhole.Session, panel *controls.Panel, x, y int, p mgl64.Vec2) {
	if panel.Click(float64(x), float64(y)) {
		in.dragging = false
		return
	}
	in.dragging = s.PointerDown(p)
}

func (in *PointerInput) release(s *cornhole.Session) []cornhole.Effect {
	if !in.dragging {
		return nil
	}
	in.dragging = false
	return s.PointerUp()
}
