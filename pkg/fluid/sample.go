package fluid

import (
	"fmt"
	"math"
)

// Field selects one of the grid's sampled quantities.
type Field int

const (
	FieldU Field = iota // horizontal velocity, left cell faces
	FieldV              // vertical velocity, bottom cell faces
	FieldM              // smoke, cell centres
	FieldC              // second dye, cell centres
	numFields
)

// fieldLayout is the storage offset of a field, in cells.
type fieldLayout struct {
	name       string
	offX, offY float32
}

var fieldLayouts = [numFields]fieldLayout{
	FieldU: {name: "u", offX: 0, offY: 0.5},
	FieldV: {name: "v", offX: 0.5, offY: 0},
	FieldM: {name: "m", offX: 0.5, offY: 0.5},
	FieldC: {name: "c", offX: 0.5, offY: 0.5},
}

func (fld Field) String() string {
	if fld < 0 || fld >= numFields {
		return fmt.Sprintf("Field(%d)", int(fld))
	}
	return fieldLayouts[fld].name
}

// Offset returns the world-space position of sample (0,0) of the field on a
// grid with spacing h.
func (fld Field) Offset(h float32) (dx, dy float32) {
	l := fieldLayouts[fld]
	return l.offX * h, l.offY * h
}

func (f *Fluid) data(fld Field) []float32 {
	switch fld {
	case FieldU:
		return f.U
	case FieldV:
		return f.V
	case FieldM:
		return f.M
	case FieldC:
		return f.C
	}
	panic(fmt.Sprintf("unknown field %d", int(fld)))
}

// SampleField bilinearly interpolates fld at world position (x, y). The
// position is clamped to [h, NumX*h] x [h, NumY*h].
func (f *Fluid) SampleField(x, y float32, fld Field) float32 {
	return f.sampleFrom(x, y, f.data(fld), fld)
}

// SampleVelocity returns the interpolated velocity at an arbitrary world position.
func (f *Fluid) SampleVelocity(x, y float32) (float32, float32) {
	u := f.SampleField(x, y, FieldU)
	v := f.SampleField(x, y, FieldV)
	return u, v
}

func (f *Fluid) sampleFrom(x, y float32, data []float32, fld Field) float32 {
	n := f.NumY
	h := f.h
	h1 := 1.0 / h

	x = max(min(x, float32(f.NumX)*h), h)
	y = max(min(y, float32(f.NumY)*h), h)

	dx, dy := fld.Offset(h)

	x0 := min(int(math.Floor(float64((x-dx)*h1))), f.NumX-1)
	tx := ((x - dx) - float32(x0)*h) * h1
	x1 := min(x0+1, f.NumX-1)

	y0 := min(int(math.Floor(float64((y-dy)*h1))), f.NumY-1)
	ty := ((y - dy) - float32(y0)*h) * h1
	y1 := min(y0+1, f.NumY-1)

	sx := 1.0 - tx
	sy := 1.0 - ty

	val := sx*sy*data[x0*n+y0] +
		tx*sy*data[x1*n+y0] +
		tx*ty*data[x1*n+y1] +
		sx*ty*data[x0*n+y1]

	return val
}
