package render

import "github.com/TheFellow/smoketunnel/pkg/fluid"

// Point is a position in simulation units.
type Point struct {
	X, Y float32
}

type Segment struct {
	From, To Point
}

const (
	streamlineStride   = 5
	streamlineSegments = 15
	streamlineStep     = 0.01
	velocityScale      = 0.02
)

// Streamlines traces a short polyline from the centre of every fifth cell,
// stepping along the sampled velocity. A line stops when it leaves the
// right edge of the domain.
func Streamlines(f *fluid.Fluid) [][]Point {
	h := f.H()
	xMax := float32(f.NumX) * h

	var lines [][]Point
	for i := 1; i < f.NumX-1; i += streamlineStride {
		for j := 1; j < f.NumY-1; j += streamlineStride {
			x := (float32(i) + 0.5) * h
			y := (float32(j) + 0.5) * h
			line := make([]Point, 1, streamlineSegments+1)
			line[0] = Point{x, y}

			for n := 0; n < streamlineSegments; n++ {
				u, v := f.SampleVelocity(x, y)
				x += u * streamlineStep
				y += v * streamlineStep
				if x > xMax {
					break
				}
				line = append(line, Point{x, y})
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// VelocityGlyphs draws each stored face velocity as a line from its face
// centre, scaled into simulation units.
func VelocityGlyphs(f *fluid.Fluid) []Segment {
	h := f.H()
	vel := f.Velocity()
	segs := make([]Segment, 0, 2*f.NumCells())

	for i := 0; i < vel.NumX; i++ {
		for j := 0; j < vel.NumY; j++ {
			u, v := vel.At(i, j)

			x := float32(i) * h
			y := (float32(j) + 0.5) * h
			segs = append(segs, Segment{Point{x, y}, Point{x + u*velocityScale, y}})

			x = (float32(i) + 0.5) * h
			y = float32(j) * h
			segs = append(segs, Segment{Point{x, y}, Point{x, y + v*velocityScale}})
		}
	}
	return segs
}

// Viewport maps simulation units (y up, domain height 1) to screen pixels
// (y down).
type Viewport struct {
	Width, Height float32 // pixels
}

// Scale is the number of pixels per simulation unit.
func (vp Viewport) Scale() float32 { return vp.Height }

func (vp Viewport) ToScreen(p Point) (float32, float32) {
	return p.X * vp.Height, vp.Height - p.Y*vp.Height
}

func (vp Viewport) ToSim(px, py float32) Point {
	return Point{X: px / vp.Height, Y: (vp.Height - py) / vp.Height}
}

// Aspect is the simulated domain width for a unit domain height.
func (vp Viewport) Aspect() float32 { return vp.Width / vp.Height }
