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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// StarVertices returns the 2·points vertices of a star centred at c.
//
// Vertex i lies at angle i·π/points, at the outer radius r2 for even i
// and at the inner radius r1 for odd i. Nothing is returned if points is
// not positive. Fewer than two points give a degenerate outline, and
// points is limited to MaxStarPoints.
func StarVertices(c vec.Vec2, points int, r1, r2 float64) []vec.Vec2 {
	if points <= 0 {
		return nil
	}
	points = min(points, MaxStarPoints)
	n := 2 * points
	step := math.Pi / float64(points)
	res := make([]vec.Vec2, n)
	for i := range n {
		r := r2
		if i%2 == 1 {
			r = r1
		}
		sin, cos := math.Sincos(step * float64(i))
		res[i] = vec.Vec2{X: c.X + r*cos, Y: c.Y + r*sin}
	}
	return res
}

// MaxStarPoints is the largest number of star points drawn. Beyond this
// the vertices are less than a pixel apart on any surface of 100×100.
const MaxStarPoints = 1024
