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

package geometry

import "math"

// RingRadii returns the radii of the bullseye rings, from the outside in.
//
// Ring i has radius radius - i·radius/rings. The result is empty unless
// rings and radius are both positive and radius is finite. At most
// MaxRings rings are returned.
func RingRadii(radius float64, rings int) []float64 {
	if rings <= 0 || !(radius > 0) || math.IsInf(radius, 0) {
		return nil
	}
	rings = min(rings, MaxRings)
	width := radius / float64(rings)
	res := make([]float64, rings)
	for i := range res {
		res[i] = radius - float64(i)*width
	}
	return res
}

// MaxRings is the largest number of bullseye rings drawn.
const MaxRings = 256

// RingHue returns the hue of ring i: hue for even rings, hue2 for odd ones.
func RingHue(i int, hue, hue2 float64) float64 {
	if i%2 == 0 {
		return hue
	}
	return hue2
}
