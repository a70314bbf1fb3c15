package fluid

import (
	"fmt"
	"math"
)

// ScalarField is a read-only cell-centred view handed to renderers.
type ScalarField struct {
	NumX, NumY         int
	values             []float32
	MinValue, MaxValue float32
}

func newScalarField(numX, numY int, values []float32) ScalarField {
	minValue := float32(math.MaxFloat32)
	maxValue := float32(-math.MaxFloat32)
	for _, v := range values {
		minValue = min(minValue, v)
		maxValue = max(maxValue, v)
	}
	return ScalarField{
		NumX:     numX,
		NumY:     numY,
		values:   values,
		MinValue: minValue,
		MaxValue: maxValue,
	}
}

func (s ScalarField) Value(i, j int) (float32, error) {
	if i < 0 || i >= s.NumX {
		return 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", s.NumX-1)
	}
	if j < 0 || j >= s.NumY {
		return 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", s.NumY-1)
	}

	return s.values[i*s.NumY+j], nil
}

// At is Value without the bounds error, for render loops that already
// iterate inside the grid.
func (s ScalarField) At(i, j int) float32 {
	return s.values[i*s.NumY+j]
}
