package fluid

import "fmt"

func (f *Fluid) cell(i, j int) int {
	if i < 0 || i >= f.NumX {
		panic(fmt.Sprintf("invalid x-index: %d", i))
	}
	if j < 0 || j >= f.NumY {
		panic(fmt.Sprintf("invalid y-index: %d", j))
	}
	return i*f.NumY + j
}

// SetSolid marks cell (i,j) as an obstacle (true) or as fluid (false).
func (f *Fluid) SetSolid(i, j int, value bool) {
	cell := f.cell(i, j)
	if value {
		f.S[cell] = 0.0
	} else {
		f.S[cell] = 1.0
	}
}

func (f *Fluid) IsSolid(i, j int) bool {
	return f.S[f.cell(i, j)] == 0.0
}

// SetVelocity writes the face velocities stored with cell (i,j): u on its
// left face, v on its bottom face.
func (f *Fluid) SetVelocity(i, j int, u, v float32) {
	cell := f.cell(i, j)
	f.U[cell] = u
	f.V[cell] = v
}

func (f *Fluid) SetSmoke(i, j int, smoke float32) {
	f.M[f.cell(i, j)] = smoke
}

func (f *Fluid) SetDye(i, j int, dye float32) {
	f.C[f.cell(i, j)] = dye
}

// Reset clears velocity, pressure and the second dye channel and refills the
// smoke. The solid mask is kept.
func (f *Fluid) Reset() {
	fill(f.U, 0.0)
	fill(f.V, 0.0)
	fill(f.newU, 0.0)
	fill(f.newV, 0.0)
	fill(f.p, 0.0)
	fill(f.M, 1.0)
	fill(f.newM, 0.0)
	fill(f.C, 0.0)
	fill(f.newC, 0.0)
}
