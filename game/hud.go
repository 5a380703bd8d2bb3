package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"spacecornhole/controls"
)

const (
	hudMargin     = 10.0
	hudLineHeight = 20.0
	hudMaxWidth   = 720.0
)

var (
	hudFace        = text.NewGoXFace(basicfont.Face7x13)
	colorHUDText   = color.RGBA{230, 230, 240, 255}
	colorHUDButton = color.RGBA{60, 60, 80, 255}
	colorHUDPanel  = color.RGBA{0, 0, 0, 120}
)

// drawText draws s with its top-left corner at (x, y)
func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

// drawHUD draws the status message and the control panel below it
func (g *Game) drawHUD(screen *ebiten.Image) {
	drawText(screen, g.session.Message(), hudMargin, hudMargin, colorHUDText)

	top := hudMargin + hudLineHeight
	width := min(hudMaxWidth, g.width-2*hudMargin)
	bottom := g.panel.Layout(hudMargin, top, width)
	vector.DrawFilledRect(screen, float32(hudMargin-4), float32(top-4),
		float32(width+8), float32(bottom-top+4), colorHUDPanel, false)

	m := controls.DefaultMetrics()
	for _, it := range g.panel.Items() {
		switch {
		case it.IsButton():
			bg := it.Color
			if bg == nil {
				bg = colorHUDButton
			}
			r := it.Rect
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
			drawText(screen, it.Text(), r.X+m.Padding, r.Y+1, colorHUDText)
		case it.IsReadout():
			drawText(screen, it.Text(), it.Rect.X, it.Rect.Y+1, colorHUDText)
		}
	}
}
