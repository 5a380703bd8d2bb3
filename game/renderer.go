package game

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spacecornhole/cornhole"
)

// Scene palette
var (
	colorSpace      = color.RGBA{5, 5, 20, 255}
	colorTileLight  = color.RGBA{70, 70, 90, 255}
	colorTileDark   = color.RGBA{40, 40, 55, 255}
	colorTarget     = color.RGBA{255, 150, 0, 255}
	colorRing       = color.RGBA{255, 220, 80, 255}
	colorMarkerHit  = color.RGBA{0, 160, 0, 200}
	colorMarkerMiss = color.RGBA{170, 0, 0, 200}
	colorBall       = color.RGBA{220, 230, 255, 255}
	colorShadow     = color.RGBA{0, 0, 0, 140}
	colorArrow      = color.RGBA{255, 40, 40, 255}
	colorArrowShade = color.RGBA{90, 0, 0, 180}
	colorTrail      = color.RGBA{160, 190, 255, 255}
)

const (
	starCount        = 800
	starRotation     = 25.0 // seconds per radian
	ringSegments     = 48
	arrowHeadLength  = 12.0
	arrowHeadSpread  = math.Pi / 7
	shadowFlattening = 0.4
	trailSpan        = 0.6 // seconds of flight shown behind the ball
	trailSegments    = 24
)

var starAxis = mgl64.Vec3{0, 1, 0.25}.Normalize()

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Renderer draws the 3D scene through the projection camera
type Renderer struct {
	camera   *Camera
	stars    []mgl64.Vec3 // unit directions
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer with a fixed star field
func NewRenderer(camera *Camera) *Renderer {
	rng := rand.New(rand.NewPCG(25, 1))
	stars := make([]mgl64.Vec3, starCount)
	for i := range stars {
		z := 2*rng.Float64() - 1
		phi := 2 * math.Pi * rng.Float64()
		rxy := math.Sqrt(1 - z*z)
		stars[i] = mgl64.Vec3{rxy * math.Cos(phi), rxy * math.Sin(phi), z}
	}
	return &Renderer{camera: camera, stars: stars}
}

// Render draws one frame of the session. elapsed drives the star and ring animation.
func (r *Renderer) Render(screen *ebiten.Image, s *cornhole.Session, elapsed float64) {
	cfg := s.Config()
	scale := cfg.Scale()

	screen.Fill(colorSpace)
	r.drawStars(screen, float64(cfg.WorldRadius), elapsed)
	r.drawGrid(screen, s.Grid(), scale)
	r.fillCell(screen, s.Target(), scale, colorTarget)
	if s.ShowLandingMarker() {
		st := s.State()
		clr := colorMarkerMiss
		if st.LastOutcome == cornhole.OutcomeHit {
			clr = colorMarkerHit
		}
		r.fillCell(screen, st.LastLanding, scale, clr)
	}
	r.drawRing(screen, s.Target(), scale, elapsed)

	ball := s.BallPosition()
	aim, aiming := s.Aim()
	r.drawShadow(screen, ball)
	if aiming {
		r.drawArrow(screen, mgl64.Vec3{ball.X(), 0, ball.Z()}, aim.ShadowTip(ball), colorArrowShade)
	}
	if s.Phase() == cornhole.PhaseInFlight {
		r.drawTrail(screen, s.Launch().Trail(float64(cfg.Gravity), trailSpan, trailSegments))
	}
	r.drawBall(screen, ball)
	if aiming {
		r.drawArrow(screen, ball, aim.Tip(ball), colorArrow)
	}
}

func (r *Renderer) drawStars(screen *ebiten.Image, radius, elapsed float64) {
	rot := mgl64.QuatRotate(elapsed/starRotation, starAxis)
	brightness := 1 - 0.5*math.Pow(math.Sin(elapsed), 4)
	clr := color.RGBA{
		R: uint8(255 * brightness),
		G: uint8(255 * brightness),
		B: uint8(255 * brightness),
		A: 255,
	}

	for _, dir := range r.stars {
		sx, sy, ok := r.camera.WorldToScreen(rot.Rotate(dir).Mul(radius))
		if !ok || sx < 0 || sy < 0 || sx > r.camera.Width || sy > r.camera.Height {
			continue
		}
		vector.DrawFilledRect(screen, float32(sx), float32(sy), 1.5, 1.5, clr, false)
	}
}

func (r *Renderer) drawGrid(screen *ebiten.Image, grid cornhole.Grid, scale float64) {
	var light, dark vector.Path
	half := grid.Cols / 2
	for row := 0; row < grid.Rows; row++ {
		for col := -half; col <= half; col++ {
			path := &dark
			if (row+col)%2 == 0 {
				path = &light
			}
			r.appendCell(path, cornhole.TargetCell{Col: col, Row: row}, scale)
		}
	}
	r.fillPath(screen, &light, colorTileLight)
	r.fillPath(screen, &dark, colorTileDark)
}

func (r *Renderer) fillCell(screen *ebiten.Image, cell cornhole.TargetCell, scale float64, clr color.Color) {
	var path vector.Path
	if r.appendCell(&path, cell, scale) {
		r.fillPath(screen, &path, clr)
	}
}

// appendCell adds the cell's ground square to path. Cells crossing the near plane are skipped.
func (r *Renderer) appendCell(path *vector.Path, cell cornhole.TargetCell, scale float64) bool {
	fp := cell.Footprint(scale)
	corners := [4]mgl64.Vec3{
		{fp.CenterX - fp.HalfWidth, 0, fp.CenterZ - fp.HalfWidth},
		{fp.CenterX + fp.HalfWidth, 0, fp.CenterZ - fp.HalfWidth},
		{fp.CenterX + fp.HalfWidth, 0, fp.CenterZ + fp.HalfWidth},
		{fp.CenterX - fp.HalfWidth, 0, fp.CenterZ + fp.HalfWidth},
	}

	var pts [4][2]float32
	for i, c := range corners {
		sx, sy, ok := r.camera.WorldToScreen(c)
		if !ok {
			return false
		}
		pts[i] = [2]float32{float32(sx), float32(sy)}
	}

	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()
	return true
}

func (r *Renderer) fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	if len(r.indices) == 0 {
		return
	}

	cr, cg, cb, ca := clr.RGBA()
	for i := range r.vertices {
		v := &r.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(cr) / 0xffff
		v.ColorG = float32(cg) / 0xffff
		v.ColorB = float32(cb) / 0xffff
		v.ColorA = float32(ca) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

// drawRing draws the pulsing circle around the target
func (r *Renderer) drawRing(screen *ebiten.Image, cell cornhole.TargetCell, scale, elapsed float64) {
	center := cell.Center(scale)
	radius := scale * (1.5 + 0.25*math.Sin(3*elapsed))

	var prev [2]float32
	havePrev := false
	for i := 0; i <= ringSegments; i++ {
		a := 2 * math.Pi * float64(i) / ringSegments
		p := center.Add(mgl64.Vec3{radius * math.Cos(a), 0.05, radius * math.Sin(a)})
		sx, sy, ok := r.camera.WorldToScreen(p)
		if !ok {
			havePrev = false
			continue
		}
		cur := [2]float32{float32(sx), float32(sy)}
		if havePrev {
			vector.StrokeLine(screen, prev[0], prev[1], cur[0], cur[1], 2, colorRing, true)
		}
		prev, havePrev = cur, true
	}
}

func (r *Renderer) drawBall(screen *ebiten.Image, ball mgl64.Vec3) {
	sx, sy, ok := r.camera.WorldToScreen(ball)
	if !ok {
		return
	}
	radius, _ := r.camera.ScreenRadius(ball, cornhole.BallRadius)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(max(radius, 1)), colorBall, true)
}

// drawShadow projects the ball straight down onto the ground plane
func (r *Renderer) drawShadow(screen *ebiten.Image, ball mgl64.Vec3) {
	ground := mgl64.Vec3{ball.X(), 0, ball.Z()}
	sx, sy, ok := r.camera.WorldToScreen(ground)
	if !ok {
		return
	}
	radius, _ := r.camera.ScreenRadius(ground, cornhole.BallRadius)

	var path vector.Path
	const steps = 24
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		x := float32(sx + radius*math.Cos(a))
		y := float32(sy + radius*shadowFlattening*math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	r.fillPath(screen, &path, colorShadow)
}

func (r *Renderer) drawArrow(screen *ebiten.Image, from, to mgl64.Vec3, clr color.Color) {
	x0, y0, ok0 := r.camera.WorldToScreen(from)
	x1, y1, ok1 := r.camera.WorldToScreen(to)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 3, clr, true)

	angle := math.Atan2(y1-y0, x1-x0)
	for _, side := range []float64{-1, 1} {
		a := angle + math.Pi + side*arrowHeadSpread
		hx := x1 + arrowHeadLength*math.Cos(a)
		hy := y1 + arrowHeadLength*math.Sin(a)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(hx), float32(hy), 3, clr, true)
	}
}

// drawTrail draws the recent flight path, fading toward its oldest end
func (r *Renderer) drawTrail(screen *ebiten.Image, points []mgl64.Vec3) {
	for i := 0; i < len(points)-1; i++ {
		x0, y0, ok0 := r.camera.WorldToScreen(points[i])
		x1, y1, ok1 := r.camera.WorldToScreen(points[i+1])
		if !ok0 || !ok1 {
			continue
		}

		progress := float64(i+1) / float64(len(points)-1)
		faded := color.NRGBA{
			R: colorTrail.R,
			G: colorTrail.G,
			B: colorTrail.B,
			A: uint8(255 * (0.1 + 0.7*progress)),
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, faded, true)
	}
}
