// Package render turns a scene's fields into colours and line geometry for
// the front ends. It never mutates the grid.
package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// sciKeys are the stops of the scientific colour map, evenly spaced.
var sciKeys = [...]colorful.Color{
	{R: 0, G: 0, B: 1},
	{R: 0, G: 1, B: 1},
	{R: 0, G: 1, B: 0},
	{R: 1, G: 1, B: 0},
	{R: 1, G: 0, B: 0},
}

// SciColor maps val within [minVal, maxVal] onto blue-cyan-green-yellow-red.
// A degenerate range maps to the middle of the scale.
func SciColor(val, minVal, maxVal float32) color.RGBA {
	val = min(max(val, minVal), maxVal-0.0001)
	d := maxVal - minVal
	if d <= 0 {
		val = 0.5
	} else {
		val = (val - minVal) / d
	}

	const m = 0.25
	num := int(math.Floor(float64(val / m)))
	num = min(max(num, 0), len(sciKeys)-2)
	s := float64((val - float32(num)*m) / m)
	s = min(max(s, 0), 1)

	c := sciKeys[num].BlendRgb(sciKeys[num+1], s)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func gray(v float32) color.RGBA {
	c := uint8(255 * min(max(v, 0), 1))
	return color.RGBA{R: c, G: c, B: c, A: 0xff}
}

func darken(c color.RGBA, by float32) color.RGBA {
	d := 255 * max(by, 0)
	sub := func(x uint8) uint8 {
		return uint8(max(float32(x)-d, 0))
	}
	return color.RGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}

func scale(c color.RGBA, k float32) color.RGBA {
	k = min(max(k, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}
