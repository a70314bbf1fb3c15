package fluid

// advectVelocity moves U and V along themselves with a semi-Lagrangian
// backtrace. Results go to newU/newV so every sample reads the old field.
func (f *Fluid) advectVelocity(dt float32) {
	copy(f.newU, f.U)
	copy(f.newV, f.V)

	n := f.NumY
	h := f.h
	h2 := h / 2

	for i := 1; i < f.NumX; i++ {
		for j := 1; j < f.NumY; j++ {

			// u component
			if f.S[i*n+j] != 0.0 && f.S[(i-1)*n+j] != 0.0 && j < f.NumY-1 {
				x := float32(i) * h
				y := float32(j)*h + h2
				u := f.U[i*n+j]
				v := f.avgV(i, j)

				x = x - dt*u
				y = y - dt*v
				f.newU[i*n+j] = f.SampleField(x, y, FieldU) * f.drag
			}

			// v component
			if f.S[i*n+j] != 0.0 && f.S[i*n+j-1] != 0.0 && i < f.NumX-1 {
				x := float32(i)*h + h2
				y := float32(j) * h
				u := f.avgU(i, j)
				v := f.V[i*n+j]

				x = x - dt*u
				y = y - dt*v
				f.newV[i*n+j] = f.SampleField(x, y, FieldV) * f.drag
			}
		}
	}

	copy(f.U, f.newU)
	copy(f.V, f.newV)
}

// avgU is the horizontal velocity at the bottom face of cell (i,j).
func (f *Fluid) avgU(i, j int) float32 {
	n := f.NumY
	u := (f.U[i*n+j-1] + f.U[i*n+j] +
		f.U[(i+1)*n+j-1] + f.U[(i+1)*n+j]) * 0.25
	return u
}

// avgV is the vertical velocity at the left face of cell (i,j).
func (f *Fluid) avgV(i, j int) float32 {
	n := f.NumY
	v := (f.V[(i-1)*n+j] + f.V[i*n+j] +
		f.V[(i-1)*n+j+1] + f.V[i*n+j+1]) * 0.25
	return v
}

// advectSmoke transports the dye channels with the cell-centred velocity and
// scales each sample by dissipation.
func (f *Fluid) advectSmoke(dt, dissipation float32) {
	f.advectScalar(dt, dissipation, FieldM, f.M, f.newM)
	if f.SecondDye {
		f.advectScalar(dt, dissipation, FieldC, f.C, f.newC)
	}
}

func (f *Fluid) advectScalar(dt, dissipation float32, fld Field, cur, next []float32) {
	copy(next, cur)

	n := f.NumY
	h := f.h
	h2 := 0.5 * h

	for i := 1; i < f.NumX-1; i++ {
		for j := 1; j < f.NumY-1; j++ {
			if f.S[i*n+j] == 0.0 {
				continue
			}
			u := (f.U[i*n+j] + f.U[(i+1)*n+j]) * 0.5
			v := (f.V[i*n+j] + f.V[i*n+j+1]) * 0.5
			x := float32(i)*h + h2 - dt*u
			y := float32(j)*h + h2 - dt*v

			next[i*n+j] = f.sampleFrom(x, y, cur, fld) * dissipation
		}
	}

	copy(cur, next)
}
