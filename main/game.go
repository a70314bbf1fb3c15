package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/TheFellow/smoketunnel/pkg/render"
	"github.com/TheFellow/smoketunnel/pkg/scene"
)

var (
	lineColor     = color.RGBA{A: 0xff}
	obstacleFill  = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	obstacleRim   = color.RGBA{A: 0xff}
	sceneKeys     = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	sceneForKey   = []scene.Kind{scene.Tank, scene.WindTunnel, scene.Paint, scene.HiresTunnel}
	resolutionKey = map[ebiten.Key]int{ebiten.KeyEqual: 10, ebiten.KeyMinus: -10}
)

type Game struct {
	session *scene.Session
	vp      render.Viewport

	field  *ebiten.Image
	pixels []byte
}

func NewGame(width, height int, kind scene.Kind, rows int) (*Game, error) {
	g := &Game{
		vp: render.Viewport{Width: float32(width), Height: float32(height)},
	}
	g.session = &scene.Session{}
	if _, err := g.session.Rebuild(kind, g.vp.Aspect(), rows); err != nil {
		return nil, fmt.Errorf("window %dx%d: %w", width, height, err)
	}
	return g, nil
}

func (g *Game) Update() error {
	g.handleInput()
	g.session.Current().Step()
	return nil
}

func (g *Game) handleInput() {
	sc := g.session.Current()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		sc.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		sc.SingleStep()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		sc.ShowSmoke = !sc.ShowSmoke
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		sc.ShowVelocities = !sc.ShowVelocities
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		sc.ShowStreamlines = !sc.ShowStreamlines
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		sc.ShowPressure = !sc.ShowPressure
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		sc.ToggleOverRelaxation()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		sc.Reset()
	}

	for n, key := range sceneKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if _, err := g.session.Load(sceneForKey[n]); err != nil {
			log.Printf("scene unchanged: %v", err)
			continue
		}
		log.Printf("loaded %s", sceneForKey[n])
	}

	for key, delta := range resolutionKey {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		rows := g.session.Current().Fluid.NumY + delta
		if _, err := g.session.SetResolution(rows); err != nil {
			log.Printf("resolution unchanged: %v", err)
		}
	}

	mx, my := ebiten.CursorPosition()
	p := g.vp.ToSim(float32(mx), float32(my))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.session.StartDrag(p.X, p.Y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.session.EndDrag()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.session.Drag(p.X, p.Y)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	sc := g.session.Current()
	f := sc.Fluid

	if g.field == nil || g.field.Bounds().Dx() != f.NumX || g.field.Bounds().Dy() != f.NumY {
		g.field = ebiten.NewImage(f.NumX, f.NumY)
		g.pixels = make([]byte, 4*f.NumCells())
	}
	render.Fill(g.pixels, sc)
	g.field.WritePixels(g.pixels)

	// One image pixel per cell, scaled so the domain height fills the window.
	cellPx := float64(g.vp.Scale() * f.H())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellPx, cellPx)
	screen.DrawImage(g.field, op)

	if sc.ShowVelocities {
		for _, s := range render.VelocityGlyphs(f) {
			g.strokeLine(screen, s.From, s.To)
		}
	}
	if sc.ShowStreamlines {
		for _, line := range render.Streamlines(f) {
			for k := 1; k < len(line); k++ {
				g.strokeLine(screen, line[k-1], line[k])
			}
		}
	}
	if sc.ShowObstacle {
		cx, cy := g.vp.ToScreen(render.Point{X: sc.ObstacleX, Y: sc.ObstacleY})
		r := (sc.ObstacleRadius + f.H()) * g.vp.Scale()
		fill := obstacleFill
		if sc.ShowPressure {
			fill = obstacleRim
		}
		vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
		vector.StrokeCircle(screen, cx, cy, r, 3, obstacleRim, true)
	}

	ebitenutil.DebugPrint(screen, g.hud(sc))
}

func (g *Game) strokeLine(screen *ebiten.Image, from, to render.Point) {
	x0, y0 := g.vp.ToScreen(from)
	x1, y1 := g.vp.ToScreen(to)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, lineColor, true)
}

func (g *Game) hud(sc *scene.Scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SmokeTunnel - %s %dx%d\nFPS: %0.2f  frame %d",
		sc.Kind, sc.Fluid.NumX, sc.Fluid.NumY, ebiten.ActualFPS(), sc.FrameNr)
	if sc.Paused {
		b.WriteString("  [paused]")
	}
	fmt.Fprintf(&b, "\nover-relaxation %.1f  max div %.2e", sc.Params.OverRelaxation, sc.Fluid.MaxDivergence())
	speed := sc.Fluid.VelocityMagnitude()
	curl := sc.Fluid.Vorticity()
	fmt.Fprintf(&b, "\nmax speed %.2f  vorticity %.1f .. %.1f", speed.MaxValue, curl.MinValue, curl.MaxValue)
	if sc.ShowPressure {
		p := sc.Fluid.Pressure()
		b.WriteString("\n" + render.PressureLabel(p.MinValue, p.MaxValue))
	}
	b.WriteString("\nP pause  M step  1-4 scene  S V L R O toggles  C clear  +/- rows")
	return b.String()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.vp.Width), int(g.vp.Height)
}
