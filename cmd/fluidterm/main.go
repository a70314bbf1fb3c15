// Command fluidterm runs the smoke tunnel in a terminal. Every character
// cell shows two grid rows using the upper half block.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/TheFellow/smoketunnel/pkg/render"
	"github.com/TheFellow/smoketunnel/pkg/scene"
)

var (
	sceneFlag = flag.String("scene", "wind", "initial scene: tank, wind, paint or hires")
	resFlag   = flag.Int("res", 0, "rows in the grid, 0 fits the terminal")
	fpsFlag   = flag.Int("fps", 30, "frames per second")
	logFlag   = flag.String("log", "", "write log output to this file")
)

const statusRows = 1

type term struct {
	screen  tcell.Screen
	session *scene.Session
	fixed   int // user supplied row count, 0 to fit the screen
}

func main() {
	flag.Parse()

	if *logFlag != "" {
		lf, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer lf.Close()
		log.SetOutput(lf)
	}

	kind, err := scene.ParseKind(*sceneFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *fpsFlag <= 0 {
		log.Fatalf("fps must be positive, got %d", *fpsFlag)
	}

	t, err := newTerm(kind, *resFlag)
	if err != nil {
		log.Fatal(err)
	}
	t.run(time.Second / time.Duration(*fpsFlag))
}

func newTerm(kind scene.Kind, rows int) (*term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &term{screen: screen, session: &scene.Session{}, fixed: rows}
	if err := t.fit(kind); err != nil {
		screen.Fini()
		return nil, fmt.Errorf("fit grid to terminal: %w", err)
	}
	return t, nil
}

// fitAspect is the domain width that fills a w by h terminal when every
// character holds two square grid cells stacked vertically.
func fitAspect(w, h int) float32 {
	return float32(w) / float32(fitRows(h, 0))
}

// fit builds kind on a grid that fills the current screen, or at the
// user's row count when one was given.
func (t *term) fit(kind scene.Kind) error {
	w, h := t.screen.Size()
	_, err := t.session.Rebuild(kind, fitAspect(w, h), fitRows(h, t.fixed))
	return err
}

func fitRows(h, fixed int) int {
	if fixed != 0 {
		return fixed
	}
	return 2 * max(h-statusRows, 1)
}

func (t *term) run(frame time.Duration) {
	defer t.screen.Fini()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.session.Current().Step()
			t.draw()
		}
	}
}

func (t *term) handleEvent(ev tcell.Event) bool {
	sc := t.session.Current()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			sc.TogglePause()
		case 'm':
			sc.SingleStep()
		case 's':
			sc.ShowSmoke = !sc.ShowSmoke
		case 'r':
			sc.ShowPressure = !sc.ShowPressure
		case 'o':
			sc.ToggleOverRelaxation()
		case 'c':
			sc.Reset()
		case '1', '2', '3', '4':
			kinds := []scene.Kind{scene.Tank, scene.WindTunnel, scene.Paint, scene.HiresTunnel}
			if err := t.fit(kinds[ev.Rune()-'1']); err != nil {
				log.Printf("scene unchanged: %v", err)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		p := toSim(x, y, sc.Fluid.NumY, sc.Fluid.H())
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !t.session.Dragging():
			t.session.StartDrag(p.X, p.Y)
		case pressed:
			t.session.Drag(p.X, p.Y)
		case t.session.Dragging():
			t.session.EndDrag()
		}

	case *tcell.EventResize:
		t.screen.Sync()
		if err := t.fit(sc.Kind); err != nil {
			log.Printf("keeping resolution after resize: %v", err)
		}
	}
	return true
}

// toSim maps the character at column x, row y to the simulation point
// between the two grid cells it shows.
func toSim(x, y, numY int, h float32) render.Point {
	return render.Point{
		X: (float32(x) + 0.5) * h,
		Y: float32(numY-1-2*y) * h,
	}
}

func (t *term) draw() {
	sc := t.session.Current()
	f := sc.Fluid
	p := f.Pressure()
	w, h := t.screen.Size()

	t.screen.Clear()
	for x := 0; x < min(w, f.NumX); x++ {
		for y := 0; y < h-statusRows; y++ {
			top := f.NumY - 1 - 2*y
			bottom := top - 1
			if top < 0 {
				break
			}
			style := tcell.StyleDefault.Foreground(toColor(render.CellColor(sc, x, top, p.MinValue, p.MaxValue)))
			if bottom >= 0 {
				style = style.Background(toColor(render.CellColor(sc, x, bottom, p.MinValue, p.MaxValue)))
			}
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	status := fmt.Sprintf(" %s %dx%d frame %d  p pause  m step  1-4 scene  s r o toggles  c clear  q quit",
		sc.Kind, f.NumX, f.NumY, sc.FrameNr)
	if sc.ShowPressure {
		status += "  " + render.PressureLabel(p.MinValue, p.MaxValue)
	}
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		t.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	t.screen.Show()
}
