package fluid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vorticity computes the curl of the velocity field and returns it as a ScalarField.
func (f *Fluid) Vorticity() ScalarField {
	n := f.NumY
	h := f.h
	vals := make([]float32, f.numCells)

	for i := 1; i < f.NumX-1; i++ {
		for j := 1; j < f.NumY-1; j++ {
			if f.S[i*n+j] == 0 {
				continue
			}
			dvdx := (f.V[(i+1)*n+j] - f.V[(i-1)*n+j]) * 0.5 / h
			dudy := (f.U[i*n+j+1] - f.U[i*n+j-1]) * 0.5 / h
			vals[i*n+j] = dvdx - dudy
		}
	}

	return newScalarField(f.NumX, f.NumY, vals)
}

// VelocityMagnitude computes |v| at cell centers and returns it as a ScalarField.
func (f *Fluid) VelocityMagnitude() ScalarField {
	n := f.NumY
	vals := make([]float32, f.numCells)

	for i := 1; i < f.NumX-1; i++ {
		for j := 1; j < f.NumY-1; j++ {
			if f.S[i*n+j] == 0 {
				continue
			}
			// Average staggered velocities to cell center
			u := (f.U[i*n+j] + f.U[(i+1)*n+j]) * 0.5
			v := (f.V[i*n+j] + f.V[i*n+j+1]) * 0.5
			vals[i*n+j] = float32(math.Sqrt(float64(u*u + v*v)))
		}
	}

	return newScalarField(f.NumX, f.NumY, vals)
}

// Divergence returns the discrete divergence of every interior fluid cell,
// in column-major scan order.
func (f *Fluid) Divergence() []float64 {
	n := f.NumY
	divs := make([]float64, 0, (f.NumX-2)*(f.NumY-2))
	for i := 1; i < f.NumX-1; i++ {
		for j := 1; j < f.NumY-1; j++ {
			if f.S[i*n+j] == 0 {
				continue
			}
			div := f.U[(i+1)*n+j] - f.U[i*n+j] + f.V[i*n+j+1] - f.V[i*n+j]
			divs = append(divs, float64(div))
		}
	}
	return divs
}

// DivergenceNorms returns the L2 and max norms of Divergence.
func (f *Fluid) DivergenceNorms() (l2, maxAbs float64) {
	divs := f.Divergence()
	if len(divs) == 0 {
		return 0, 0
	}
	return floats.Norm(divs, 2), floats.Norm(divs, math.Inf(1))
}

// MaxDivergence returns the maximum absolute divergence across all fluid cells.
func (f *Fluid) MaxDivergence() float32 {
	_, m := f.DivergenceNorms()
	return float32(m)
}
