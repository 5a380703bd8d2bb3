// Package controls models the on-screen control panel: key-bound buttons
// and live text readouts laid out in rows. Drawing is left to the caller.
package controls

import (
	"image/color"
	"strings"
)

// Binding is one key combination, e.g. "shift+space"
type Binding struct {
	Key   string
	Shift bool
}

// ParseBinding reads a combination written as "key" or "shift+key"
func ParseBinding(combo string) Binding {
	combo = strings.ToLower(strings.TrimSpace(combo))
	if rest, ok := strings.CutPrefix(combo, "shift+"); ok {
		return Binding{Key: rest, Shift: true}
	}
	return Binding{Key: combo}
}

func (b Binding) String() string {
	if b.Shift {
		return "Shift+" + b.Key
	}
	return b.Key
}

// Rect is a screen rectangle
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type itemKind int

const (
	kindButton itemKind = iota
	kindReadout
	kindNewLine
)

// Item is one laid-out panel element
type Item struct {
	kind    itemKind
	Label   string
	Binding Binding
	Color   color.Color
	Rect    Rect
	action  func()
	render  func() string
}

// IsButton reports whether the item is clickable
func (it *Item) IsButton() bool { return it.kind == kindButton }

// IsReadout reports whether the item is a live text line
func (it *Item) IsReadout() bool { return it.kind == kindReadout }

// Text returns what the item displays this frame
func (it *Item) Text() string {
	switch it.kind {
	case kindButton:
		return "(" + it.Binding.String() + ") " + it.Label
	case kindReadout:
		return it.render()
	default:
		return ""
	}
}

// Metrics sets the text cell size and spacing used by Layout
type Metrics struct {
	CharWidth  float64
	LineHeight float64
	Padding    float64
	Gap        float64
}

// DefaultMetrics fits basicfont.Face7x13
func DefaultMetrics() Metrics {
	return Metrics{CharWidth: 7, LineHeight: 20, Padding: 4, Gap: 6}
}

// Panel collects buttons and readouts in registration order
type Panel struct {
	items   []*Item
	metrics Metrics
}

// NewPanel creates an empty panel
func NewPanel(m Metrics) *Panel {
	return &Panel{metrics: m}
}

// Button registers a key-bound button. A nil tint uses the default button color.
func (p *Panel) Button(label, combo string, action func(), tint color.Color) {
	p.items = append(p.items, &Item{
		kind:    kindButton,
		Label:   label,
		Binding: ParseBinding(combo),
		Color:   tint,
		action:  action,
	})
}

// Readout registers a text line re-rendered every frame
func (p *Panel) Readout(render func() string) {
	p.items = append(p.items, &Item{kind: kindReadout, render: render})
}

// NewLine ends the current row
func (p *Panel) NewLine() {
	p.items = append(p.items, &Item{kind: kindNewLine})
}

// Items returns the laid-out elements
func (p *Panel) Items() []*Item {
	return p.items
}

// Layout places every element starting at (x, y), wrapping rows at maxWidth.
// Returns the bottom edge of the panel.
func (p *Panel) Layout(x, y, maxWidth float64) float64 {
	m := p.metrics
	cx, cy := x, y
	rowUsed := false

	for _, it := range p.items {
		switch it.kind {
		case kindNewLine:
			if rowUsed {
				cx, cy = x, cy+m.LineHeight
				rowUsed = false
			}
		case kindReadout:
			if rowUsed {
				cx, cy = x, cy+m.LineHeight
			}
			it.Rect = Rect{X: x, Y: cy, W: maxWidth, H: m.LineHeight - m.Gap/2}
			cx, cy = x, cy+m.LineHeight
			rowUsed = false
		case kindButton:
			w := float64(len([]rune(it.Text())))*m.CharWidth + 2*m.Padding
			if rowUsed && cx+w > x+maxWidth {
				cx, cy = x, cy+m.LineHeight
			}
			it.Rect = Rect{X: cx, Y: cy, W: w, H: m.LineHeight - m.Gap/2}
			cx += w + m.Gap
			rowUsed = true
		}
	}
	if rowUsed {
		cy += m.LineHeight
	}
	return cy
}

// HitTest returns the button under (x, y)
func (p *Panel) HitTest(x, y float64) (*Item, bool) {
	for _, it := range p.items {
		if it.kind == kindButton && it.Rect.Contains(x, y) {
			return it, true
		}
	}
	return nil, false
}

// Click triggers the button under (x, y), reporting whether one was hit
func (p *Panel) Click(x, y float64) bool {
	it, ok := p.HitTest(x, y)
	if !ok {
		return false
	}
	it.action()
	return true
}

// Press triggers every button bound to b; the shift state must match exactly
func (p *Panel) Press(b Binding) bool {
	fired := false
	for _, it := range p.items {
		if it.kind == kindButton && it.Binding == b {
			it.action()
			fired = true
		}
	}
	return fired
}

// Bindings returns the distinct key names the panel listens to
func (p *Panel) Bindings() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, it := range p.items {
		if it.kind != kindButton || seen[it.Binding.Key] {
			continue
		}
		seen[it.Binding.Key] = true
		keys = append(keys, it.Binding.Key)
	}
	return keys
}
