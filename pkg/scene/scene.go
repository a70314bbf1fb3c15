// Package scene builds the preset tunnels around a fluid grid and holds the
// interactive state (obstacle, pause, display toggles) that drives it.
package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/TheFellow/smoketunnel/pkg/fluid"
)

type Kind int

const (
	Tank Kind = iota
	WindTunnel
	Paint
	HiresTunnel
)

// kindNames is indexed by Kind. ParseKind scans it in order, so the first
// entry wins when two names share a first word.
var kindNames = [...]string{
	Tank:        "Tank",
	WindTunnel:  "Wind Tunnel",
	Paint:       "Paint",
	HiresTunnel: "Hires Tunnel",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts a scene name as printed by String, or its first word,
// in any case.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		name = strings.ToLower(name)
		if s == name || s == strings.Fields(name)[0] {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown scene %q", s)
}

// Resolution is the number of rows a preset uses when no override is set.
func (k Kind) Resolution() int {
	switch k {
	case Tank:
		return 50
	case HiresTunnel:
		return 200
	default:
		return 100
	}
}

const (
	domainHeight   = 1.0
	fluidDensity   = 1000.0
	inletVelocity  = 2.0
	obstacleRadius = 0.15
)

type Scene struct {
	Kind   Kind
	Params fluid.Params

	FrameNr int
	Paused  bool

	ObstacleX, ObstacleY float32
	ObstacleRadius       float32

	ShowObstacle    bool
	ShowStreamlines bool
	ShowVelocities  bool
	ShowPressure    bool
	ShowSmoke       bool

	Fluid *fluid.Fluid
}

// gridSize is the column count and cell size of a domain of height 1 and
// width aspect split into rows rows. New and Session validation share it so
// they agree on every rounding.
func gridSize(aspect float32, rows int) (numX int, h float32) {
	h = float32(domainHeight) / float32(rows)
	numX = int(math.Floor(float64(aspect * domainHeight / h)))
	return numX, h
}

// New builds a preset on a domain of height 1 and width aspect. resolution
// is the row count including border cells; 0 picks the preset's default.
// The grid must come out at least 3x3; Session checks this before calling.
func New(kind Kind, aspect float32, resolution int) *Scene {
	if resolution <= 0 {
		resolution = kind.Resolution()
	}

	numX, h := gridSize(aspect, resolution)

	sc := &Scene{
		Kind:           kind,
		Params:         fluid.DefaultParams(),
		ObstacleRadius: obstacleRadius,
		ShowSmoke:      true,
		Fluid:          fluid.New(fluidDensity, 1, numX, resolution, h),
	}

	switch kind {
	case Tank:
		sc.setupTank()
	case WindTunnel, HiresTunnel:
		sc.setupWindTunnel()
	case Paint:
		sc.setupPaint()
	}
	return sc
}

func (sc *Scene) setupTank() {
	f := sc.Fluid
	for i := 0; i < f.NumX; i++ {
		for j := 0; j < f.NumY; j++ {
			f.SetSolid(i, j, i == 0 || i == f.NumX-1 || j == 0)
		}
	}
	sc.ShowPressure = true
	sc.ShowSmoke = false
}

func (sc *Scene) setupWindTunnel() {
	f := sc.Fluid
	for i := 0; i < f.NumX; i++ {
		for j := 0; j < f.NumY; j++ {
			f.SetSolid(i, j, i == 0 || j == 0 || j == f.NumY-1)
		}
	}
	sc.feedInlet()
	sc.SetObstacle(0.4, 0.5, true)

	sc.Params.Gravity = 0
	if sc.Kind == HiresTunnel {
		sc.Params.Dt = 1.0 / 120.0
		sc.Params.NumIters = 100
		sc.ShowPressure = true
	}
}

// feedInlet sets the inflow in column 1 and the dark stripe fed in at the
// inlet column.
func (sc *Scene) feedInlet() {
	f := sc.Fluid
	for j := 0; j < f.NumY; j++ {
		f.SetVelocity(1, j, inletVelocity, 0)
	}

	pipeH := 0.1 * float64(f.NumY)
	minJ := int(math.Floor(0.5*float64(f.NumY) - 0.5*pipeH))
	maxJ := int(math.Floor(0.5*float64(f.NumY) + 0.5*pipeH))
	for j := minJ; j < maxJ; j++ {
		f.SetSmoke(0, j, 0)
	}
}

func (sc *Scene) setupPaint() {
	f := sc.Fluid
	for i := 0; i < f.NumX; i++ {
		for j := 0; j < f.NumY; j++ {
			f.SetSolid(i, j, i == 0 || j == 0 || i == f.NumX-1 || j == f.NumY-1)
		}
	}
	// C marks where ink has been laid down, M carries its hue.
	f.SecondDye = true

	sc.Params.Gravity = 0
	sc.Params.OverRelaxation = 1.0
	sc.ObstacleRadius = 0.03
}

// SetObstacle moves the circular obstacle to (x, y) in simulation units.
// Unless reset is set, the obstacle's velocity is its displacement over one
// timestep and is written onto the faces of every covered cell.
func (sc *Scene) SetObstacle(x, y float32, reset bool) {
	var vx, vy float32
	if !reset {
		vx = (x - sc.ObstacleX) / sc.Params.Dt
		vy = (y - sc.ObstacleY) / sc.Params.Dt
	}

	sc.ObstacleX = x
	sc.ObstacleY = y
	r := sc.ObstacleRadius
	f := sc.Fluid
	n := f.NumY
	h := f.H()

	for i := 1; i < f.NumX-2; i++ {
		for j := 1; j < f.NumY-2; j++ {
			f.S[i*n+j] = 1.0

			dx := (float32(i)+0.5)*h - x
			dy := (float32(j)+0.5)*h - y
			if dx*dx+dy*dy >= r*r {
				continue
			}

			f.S[i*n+j] = 0.0
			if sc.Kind == Paint {
				f.M[i*n+j] = sc.paintHue()
				f.C[i*n+j] = 1.0
			} else {
				f.M[i*n+j] = 1.0
			}
			f.U[i*n+j] = vx
			f.U[(i+1)*n+j] = vx
			f.V[i*n+j] = vy
			f.V[i*n+j+1] = vy
		}
	}

	sc.ShowObstacle = true
}

func (sc *Scene) paintHue() float32 {
	return float32(0.5 + 0.5*math.Sin(0.1*float64(sc.FrameNr)))
}

// Step advances the simulation by one frame unless paused.
func (sc *Scene) Step() {
	if sc.Paused {
		return
	}
	sc.simulate()
}

// SingleStep advances exactly one frame and leaves the scene paused.
func (sc *Scene) SingleStep() {
	sc.simulate()
	sc.Paused = true
}

func (sc *Scene) simulate() {
	sc.Fluid.Simulate(sc.Params)
	sc.FrameNr++
}

// Reset clears the flow and dye but keeps the walls, the obstacle position
// and the display toggles. The frame counter restarts at 0.
func (sc *Scene) Reset() {
	sc.Fluid.Reset()
	sc.FrameNr = 0

	switch sc.Kind {
	case WindTunnel, HiresTunnel:
		sc.feedInlet()
	}
	if sc.ShowObstacle {
		sc.SetObstacle(sc.ObstacleX, sc.ObstacleY, true)
	}
}

func (sc *Scene) TogglePause() {
	sc.Paused = !sc.Paused
}

// ToggleOverRelaxation switches the pressure solver between plain
// Gauss-Seidel and over-relaxation.
func (sc *Scene) ToggleOverRelaxation() {
	if sc.Params.OverRelaxation == 1.0 {
		sc.Params.OverRelaxation = 1.9
	} else {
		sc.Params.OverRelaxation = 1.0
	}
}
