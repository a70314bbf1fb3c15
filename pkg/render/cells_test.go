package render

import (
	"image/color"
	"testing"

	"github.com/TheFellow/smoketunnel/pkg/scene"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	green = color.RGBA{0, 255, 0, 255}
)

func TestCellColor(t *testing.T) {
	sc := scene.New(scene.Tank, 1, 10)
	f := sc.Fluid
	f.SetSmoke(3, 3, 0.5)

	// The tank starts with the pressure view on. At rest the range is
	// degenerate and every cell maps to the middle of the scale.
	if got := CellColor(sc, 3, 3, 0, 0); got != green {
		t.Errorf("pressure view: got %v, expected %v", got, green)
	}

	sc.ShowSmoke = true
	if got := CellColor(sc, 4, 4, 0, 0); got != black {
		t.Errorf("full smoke should darken pressure to black, got %v", got)
	}

	sc.ShowPressure = false
	if got := CellColor(sc, 3, 3, 0, 0); got != (color.RGBA{127, 127, 127, 255}) {
		t.Errorf("smoke view: got %v", got)
	}

	sc.ShowSmoke = false
	if got := CellColor(sc, 0, 3, 0, 0); got != black {
		t.Errorf("solid cell: got %v, expected black", got)
	}
	if got := CellColor(sc, 3, 3, 0, 0); got != white {
		t.Errorf("plain fluid: got %v, expected white", got)
	}
}

func TestCellColorPaint(t *testing.T) {
	sc := scene.New(scene.Paint, 1, 100)
	sc.SetObstacle(0.5, 0.5, true)

	// The brush has radius 0.03, three cells around the centre at h = 0.01.
	if !sc.Fluid.IsSolid(50, 50) {
		t.Fatal("expected the brush to cover cell (50,50)")
	}
	if got := CellColor(sc, 2, 2, 0, 0); got != black {
		t.Errorf("expected bare canvas to be black, got %v", got)
	}
	if got := CellColor(sc, 50, 50, 0, 0); got != green {
		t.Errorf("expected ink of hue 0.5 to be green, got %v", got)
	}
}

func TestFill(t *testing.T) {
	sc := scene.New(scene.Tank, 1, 10)
	sc.ShowPressure = false
	sc.ShowSmoke = false
	f := sc.Fluid

	pix := make([]byte, 4*f.NumCells())
	Fill(pix, sc)

	at := func(i, row int) color.RGBA {
		k := 4 * (row*f.NumX + i)
		return color.RGBA{pix[k], pix[k+1], pix[k+2], pix[k+3]}
	}
	// The tank floor is the bottom image row, its open top the first.
	if got := at(5, f.NumY-1); got != black {
		t.Errorf("expected the floor at the bottom of the image, got %v", got)
	}
	if got := at(5, 0); got != white {
		t.Errorf("expected open fluid at the top of the image, got %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a short pixel buffer")
		}
	}()
	Fill(pix[:8], sc)
}

func TestPressureLabel(t *testing.T) {
	if got := PressureLabel(-12.4, 340.2); got != "pressure: -12 - 340 N/m" {
		t.Errorf("unexpected label %q", got)
	}
}
