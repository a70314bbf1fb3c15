package fluid

import (
	"math"
	"math/rand/v2"
	"testing"
)

func randomFields(f *Fluid, seed uint64) {
	r := rand.New(rand.NewPCG(seed, seed+1))
	for i := range f.U {
		f.U[i] = r.Float32()*2 - 1
		f.V[i] = r.Float32()*2 - 1
		f.M[i] = r.Float32()
		f.C[i] = r.Float32()
	}
}

func TestFieldOffsets(t *testing.T) {
	cases := []struct {
		fld    Field
		name   string
		dx, dy float32
	}{
		{FieldU, "u", 0, 0.25},
		{FieldV, "v", 0.25, 0},
		{FieldM, "m", 0.25, 0.25},
		{FieldC, "c", 0.25, 0.25},
	}
	for _, tc := range cases {
		dx, dy := tc.fld.Offset(0.5)
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s: offset (%f,%f), expected (%f,%f)", tc.name, dx, dy, tc.dx, tc.dy)
		}
		if tc.fld.String() != tc.name {
			t.Errorf("expected name %q, got %q", tc.name, tc.fld.String())
		}
	}
	if got := Field(42).String(); got != "Field(42)" {
		t.Errorf("unexpected name for unknown field: %q", got)
	}
}

func TestSampleFieldExactAtSamplePoints(t *testing.T) {
	f := New(1000, 1, 9, 7, 0.25)
	randomFields(f, 5)
	n := f.NumY
	h := f.H()

	for _, fld := range []Field{FieldU, FieldV, FieldM, FieldC} {
		data := f.data(fld)
		dx, dy := fld.Offset(h)
		for i := 1; i < f.NumX-1; i++ {
			for j := 1; j < f.NumY-1; j++ {
				x := float32(i)*h + dx
				y := float32(j)*h + dy
				if got := f.SampleField(x, y, fld); got != data[i*n+j] {
					t.Errorf("%s at (%d,%d): sampled %f, stored %f", fld, i, j, got, data[i*n+j])
				}
			}
		}
	}
}

func TestSampleFieldInterpolatesBetweenSamples(t *testing.T) {
	f := New(1000, 1, 6, 6, 1)
	n := f.NumY
	f.M[2*n+2] = 0
	f.M[3*n+2] = 1
	f.M[2*n+3] = 2
	f.M[3*n+3] = 3

	// Centre of the four smoke samples.
	got := f.SampleField(3.0, 3.0, FieldM)
	if math.Abs(float64(got-1.5)) > 1e-6 {
		t.Errorf("expected bilinear mean 1.5, got %f", got)
	}
}

func TestSampleFieldIsContinuous(t *testing.T) {
	f := New(1000, 1, 12, 10, 0.1)
	randomFields(f, 9)
	r := rand.New(rand.NewPCG(21, 22))
	h := f.H()
	const delta = 1e-3

	for _, fld := range []Field{FieldU, FieldV, FieldM} {
		for k := 0; k < 500; k++ {
			x := h + r.Float32()*float32(f.NumX-2)*h
			y := h + r.Float32()*float32(f.NumY-2)*h
			a := f.SampleField(x, y, fld)
			b := f.SampleField(x+delta, y+delta, fld)

			// Values are within [-1,1]; a bilinear patch changes by at most
			// the full range per cell along each axis.
			bound := 2 * 2 * delta / float64(h)
			if diff := math.Abs(float64(a - b)); diff > bound+1e-5 {
				t.Fatalf("%s jumps by %f between (%f,%f) and its neighbour", fld, diff, x, y)
			}
		}
	}
}

func TestSampleFieldClampsToDomain(t *testing.T) {
	f := New(1000, 1, 8, 8, 0.5)
	randomFields(f, 13)

	inside := f.SampleField(0.5, 0.5, FieldM)
	if got := f.SampleField(-10, -10, FieldM); got != inside {
		t.Errorf("expected positions below the domain to clamp to h, got %f want %f", got, inside)
	}

	top := f.SampleField(4, 4, FieldV)
	if got := f.SampleField(40, 40, FieldV); got != top {
		t.Errorf("expected positions beyond the domain to clamp, got %f want %f", got, top)
	}
}

func TestSampleVelocity(t *testing.T) {
	f := New(1000, 1, 6, 6, 1)
	for i := range f.U {
		f.U[i] = 2
		f.V[i] = -1
	}
	u, v := f.SampleVelocity(2.3, 3.7)
	if math.Abs(float64(u-2)) > 1e-6 || math.Abs(float64(v+1)) > 1e-6 {
		t.Errorf("expected uniform velocity (2,-1), got (%f,%f)", u, v)
	}
}
