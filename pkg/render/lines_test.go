package render

import (
	"math"
	"testing"

	"github.com/TheFellow/smoketunnel/pkg/fluid"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestStreamlinesAtRest(t *testing.T) {
	f := fluid.New(1000, 1, 12, 12, 0.1)

	lines := Streamlines(f)
	if len(lines) != 4 {
		t.Fatalf("expected 4 seeds, got %d", len(lines))
	}
	for _, line := range lines {
		if len(line) != streamlineSegments+1 {
			t.Fatalf("expected %d points, got %d", streamlineSegments+1, len(line))
		}
		for _, p := range line[1:] {
			if p != line[0] {
				t.Fatalf("expected a still line, got %v after %v", p, line[0])
			}
		}
	}
	if !near(lines[0][0].X, 0.15) || !near(lines[0][0].Y, 0.15) {
		t.Errorf("expected the first seed at the centre of cell (1,1), got %v", lines[0][0])
	}
}

func TestStreamlinesFollowFlow(t *testing.T) {
	f := fluid.New(1000, 1, 12, 12, 0.1)
	for k := range f.U {
		f.U[k] = 1
	}

	line := Streamlines(f)[0]
	last := line[len(line)-1]
	if !near(last.X, 0.30) || !near(last.Y, 0.15) {
		t.Errorf("expected the line to end at (0.30, 0.15), got %v", last)
	}
}

func TestStreamlinesStopAtOutlet(t *testing.T) {
	f := fluid.New(1000, 1, 12, 12, 0.1)
	for k := range f.U {
		f.U[k] = 50
	}

	lines := Streamlines(f)
	// Seeds are ordered by column: two at i=1, then two at i=6.
	if n := len(lines[0]); n != 3 {
		t.Errorf("expected a line from column 1 to stop after 2 steps, got %d points", n)
	}
	if n := len(lines[2]); n != 2 {
		t.Errorf("expected a line from column 6 to stop after 1 step, got %d points", n)
	}
	for _, line := range lines {
		for _, p := range line {
			if p.X > 1.2 {
				t.Fatalf("point %v lies past the outlet", p)
			}
		}
	}
}

func TestVelocityGlyphs(t *testing.T) {
	f := fluid.New(1000, 1, 3, 3, 0.1)
	f.U[1*3+1] = 2
	f.V[2*3+1] = -1

	segs := VelocityGlyphs(f)
	if len(segs) != 2*f.NumCells() {
		t.Fatalf("expected two glyphs per cell, got %d", len(segs))
	}

	u := segs[2*(1*3+1)]
	if !near(u.From.X, 0.1) || !near(u.From.Y, 0.15) || !near(u.To.X, 0.14) || !near(u.To.Y, 0.15) {
		t.Errorf("unexpected u glyph %v", u)
	}
	v := segs[2*(2*3+1)+1]
	if !near(v.From.X, 0.25) || !near(v.From.Y, 0.1) || !near(v.To.X, 0.25) || !near(v.To.Y, 0.08) {
		t.Errorf("unexpected v glyph %v", v)
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport{Width: 800, Height: 400}
	if vp.Aspect() != 2 || vp.Scale() != 400 {
		t.Errorf("unexpected viewport metrics: aspect %f scale %f", vp.Aspect(), vp.Scale())
	}

	x, y := vp.ToScreen(Point{0, 0})
	if x != 0 || y != 400 {
		t.Errorf("expected the origin at the bottom left, got (%f, %f)", x, y)
	}

	p := Point{1.25, 0.75}
	x, y = vp.ToScreen(p)
	if back := vp.ToSim(x, y); !near(back.X, p.X) || !near(back.Y, p.Y) {
		t.Errorf("round trip moved %v to %v", p, back)
	}
}
