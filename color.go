// seehuhn.de/go/shapes - rendering of parametric 2D shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shapes

import (
	"image/color"
	"math"
)

// Saturation and lightness of all hue-based shape colours.
const (
	saturation = 0.5
	lightness  = 0.5
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// HSL converts a colour given by hue, saturation and lightness to RGB.
// h is in degrees and wraps around modulo 360; s and l are in [0, 1].
// A hue which is not a finite number is treated as 0.
func HSL(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if math.IsNaN(h) {
		h = 0
	} else if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{R: to8(r + m), G: to8(g + m), B: to8(b + m), A: 0xff}
}

// hueColour returns the colour used for a shape of the given hue.
func hueColour(h float64) color.RGBA {
	return HSL(h, saturation, lightness)
}

// to8 converts a channel value in [0, 1] to 8 bits, rounding to nearest.
func to8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 0xff))
}
