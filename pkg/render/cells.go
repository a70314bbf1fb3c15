package render

import (
	"fmt"
	"image/color"

	"github.com/TheFellow/smoketunnel/pkg/scene"
)

var (
	solidColor = color.RGBA{A: 0xff}
	fluidColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// CellColor is the colour of cell (i,j) under the scene's display toggles.
// minP and maxP are the pressure range of the current frame.
func CellColor(sc *scene.Scene, i, j int, minP, maxP float32) color.RGBA {
	f := sc.Fluid
	idx := i*f.NumY + j
	m := f.M[idx]

	switch {
	case sc.ShowPressure:
		c := SciColor(f.P()[idx], minP, maxP)
		if sc.ShowSmoke {
			c = darken(c, m)
		}
		return c
	case sc.ShowSmoke:
		if sc.Kind == scene.Paint {
			return scale(SciColor(m, 0, 1), f.C[idx])
		}
		return gray(m)
	case f.S[idx] == 0:
		return solidColor
	default:
		return fluidColor
	}
}

// Fill writes one RGBA pixel per cell into pix, which must hold
// 4*NumX*NumY bytes. Row 0 of the image is the top of the domain.
func Fill(pix []byte, sc *scene.Scene) {
	f := sc.Fluid
	if len(pix) < 4*f.NumCells() {
		panic(fmt.Sprintf("pixel buffer too small: %d < %d", len(pix), 4*f.NumCells()))
	}
	p := f.Pressure()

	for i := 0; i < f.NumX; i++ {
		for j := 0; j < f.NumY; j++ {
			c := CellColor(sc, i, j, p.MinValue, p.MaxValue)
			k := 4 * ((f.NumY-1-j)*f.NumX + i)
			pix[k] = c.R
			pix[k+1] = c.G
			pix[k+2] = c.B
			pix[k+3] = c.A
		}
	}
}

// PressureLabel is the legend shown while the pressure view is on.
func PressureLabel(minP, maxP float32) string {
	return fmt.Sprintf("pressure: %.0f - %.0f N/m", minP, maxP)
}
