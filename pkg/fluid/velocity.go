package fluid

// Velocity returns a copy of the face velocities.
func (f *Fluid) Velocity() VectorField {
	uCopy := make([]float32, f.numCells)
	copy(uCopy, f.U)
	vCopy := make([]float32, f.numCells)
	copy(vCopy, f.V)
	return VectorField{
		NumX:    f.NumX,
		NumY:    f.NumY,
		valuesU: uCopy,
		valuesV: vCopy,
	}
}
