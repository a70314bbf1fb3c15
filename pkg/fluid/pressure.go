package fluid

// Pressure returns a view of the pressure of the last step. It aliases the
// grid and is only valid until the next Simulate call.
func (f *Fluid) Pressure() ScalarField {
	return newScalarField(f.NumX, f.NumY, f.p)
}
