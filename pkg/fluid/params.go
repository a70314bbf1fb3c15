package fluid

// Params are the per-step inputs supplied by the caller.
type Params struct {
	Dt      float32
	Gravity float32 // signed, negative is down

	// OverRelaxation scales each pressure correction: 1 is plain
	// Gauss-Seidel, values in (1,2) over-relax.
	OverRelaxation float32
	NumIters       int

	// SmokeDissipation multiplies every advected dye sample. 1 keeps dye
	// forever, values below 1 fade it.
	SmokeDissipation float32
}

// DefaultParams returns the settings of the tank scene.
func DefaultParams() Params {
	return Params{
		Dt:               1.0 / 60.0,
		Gravity:          -9.81,
		OverRelaxation:   1.9,
		NumIters:         40,
		SmokeDissipation: 1.0,
	}
}
