package fluid

import (
	"fmt"
)

// Fluid is a staggered (MAC) grid. U is stored on the left face of each cell,
// V on the bottom face, everything else at the cell centre.
type Fluid struct {
	density float32
	drag    float32
	h       float32

	NumX, NumY int
	numCells   int
	U, V       []float32 // velocities
	newU, newV []float32
	p          []float32
	S          []float32 // solid (0) or liquid (1)

	M    []float32 // smoke
	newM []float32

	// Second dye channel, only advected when SecondDye is set.
	C         []float32
	newC      []float32
	SecondDye bool
}

// New allocates a grid of numX*numY cells (border cells included) with every
// cell fluid and full smoke. drag scales advected velocities; 1 disables it.
func New(density, drag float32, numX, numY int, h float32) *Fluid {
	if numX <= 2 || numY <= 2 {
		panic(fmt.Sprintf("grid too small: %dx%d", numX, numY))
	}
	if h <= 0 {
		panic(fmt.Sprintf("invalid cell size: %v", h))
	}

	numCells := numX * numY
	f := &Fluid{
		density: density,
		drag:    drag,
		h:       h,

		NumX:     numX,
		NumY:     numY,
		numCells: numCells,
		U:        make([]float32, numCells),
		V:        make([]float32, numCells),
		newU:     make([]float32, numCells),
		newV:     make([]float32, numCells),
		p:        make([]float32, numCells),
		S:        make([]float32, numCells),
		M:        make([]float32, numCells),
		newM:     make([]float32, numCells),
		C:        make([]float32, numCells),
		newC:     make([]float32, numCells),
	}
	fill(f.S, 1)
	fill(f.M, 1)
	return f
}

// H returns the grid spacing.
func (f *Fluid) H() float32 { return f.h }

func (f *Fluid) Density() float32 { return f.density }

func (f *Fluid) Drag() float32 { return f.drag }

func (f *Fluid) NumCells() int { return f.numCells }

// P exposes the pressure buffer. It is rewritten by every Simulate call.
func (f *Fluid) P() []float32 { return f.p }

func fill[T any](slice []T, val T) {
	for i := range slice {
		slice[i] = val
	}
}

// Simulate advances the grid by one step. The stage order is fixed: forces,
// projection, border extrapolation, then transport.
func (f *Fluid) Simulate(p Params) {
	if p.Dt == 0 {
		panic("fluid: zero timestep")
	}
	if p.NumIters < 0 {
		panic(fmt.Sprintf("fluid: negative iteration count %d", p.NumIters))
	}

	f.integrate(p.Dt, p.Gravity)

	fill(f.p, 0)
	f.solveIncompressibility(p.NumIters, p.Dt, p.OverRelaxation)

	f.extrapolate()
	f.advectVelocity(p.Dt)
	f.advectSmoke(p.Dt, p.SmokeDissipation)
}

func (f *Fluid) integrate(dt, gravity float32) {
	n := f.NumY
	for i := 1; i < f.NumX; i++ {
		for j := 1; j < f.NumY-1; j++ {
			if f.S[i*n+j] != 0 && f.S[i*n+j-1] != 0 {
				f.V[i*n+j] += gravity * dt
			}
		}
	}
}

// solveIncompressibility runs numIters Gauss-Seidel sweeps in place. Later
// cells in a sweep see the corrections of earlier ones.
func (f *Fluid) solveIncompressibility(numIters int, dt, relaxation float32) {
	n := f.NumY
	cp := f.density * f.h / dt

	for iter := 0; iter < numIters; iter++ {
		for i := 1; i < f.NumX-1; i++ {
			for j := 1; j < f.NumY-1; j++ {

				// If the cell is solid, nothing to do...
				if f.S[i*n+j] == 0 {
					continue
				}

				sx0 := f.S[(i-1)*n+j]
				sx1 := f.S[(i+1)*n+j]
				sy0 := f.S[i*n+j-1]
				sy1 := f.S[i*n+j+1]
				s := sx0 + sx1 + sy0 + sy1
				if s == 0 { // All adjacent cells are solid, nothing to do...
					continue
				}

				div := f.U[(i+1)*n+j] - f.U[i*n+j] +
					f.V[i*n+j+1] - f.V[i*n+j]

				p := -div / s
				p *= relaxation
				f.p[i*n+j] += cp * p

				f.U[i*n+j] -= sx0 * p
				f.U[(i+1)*n+j] += sx1 * p
				f.V[i*n+j] -= sy0 * p
				f.V[i*n+j+1] += sy1 * p
			}
		}
	}
}

// extrapolate copies the first interior row/column of velocity onto the
// domain border so sampling near the edge sees a zero normal derivative.
func (f *Fluid) extrapolate() {
	n := f.NumY
	for i := 0; i < f.NumX; i++ {
		f.U[i*n+0] = f.U[i*n+1]
		f.U[i*n+f.NumY-1] = f.U[i*n+f.NumY-2]
	}
	for j := 0; j < f.NumY; j++ {
		f.V[0*n+j] = f.V[1*n+j]
		f.V[(f.NumX-1)*n+j] = f.V[(f.NumX-2)*n+j]
	}
}
