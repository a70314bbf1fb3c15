package fluid

func (f *Fluid) Smoke() ScalarField {
	return newScalarField(f.NumX, f.NumY, f.M)
}

// Dye returns the second dye channel.
func (f *Fluid) Dye() ScalarField {
	return newScalarField(f.NumX, f.NumY, f.C)
}
