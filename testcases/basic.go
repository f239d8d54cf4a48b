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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapes/geometry"
)

var basicCases = []TestCase{
	{
		Name:   "triangle",
		Path:   geometry.Polygon([]vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)}),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rectangle_half_pixel",
		Path:   rectangle(10.5, 10.5, 43, 43),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "pentagram_nonzero",
		Path:   pentagram(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "pentagram_evenodd",
		Path:   pentagram(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "ring_evenodd",
		Path:   ring(32, 32, 28, 16),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "ring_nonzero",
		Path:   ring(32, 32, 28, 16),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}

// rectangle builds a closed axis-aligned rectangle.
func rectangle(x, y, w, h float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+w, y)).
		LineTo(pt(x+w, y+h)).
		LineTo(pt(x, y+h)).
		Close()
}

// pentagram builds a self-intersecting five-pointed star, visiting every
// second tip. Its centre has winding number 2.
func pentagram(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	for i := range 5 {
		angle := -math.Pi/2 + float64(2*i)*2*math.Pi/5
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// ring builds two concentric circles with the same orientation.
func ring(cx, cy, outer, inner float64) *path.Data {
	return compound(geometry.Circle(pt(cx, cy), outer), geometry.Circle(pt(cx, cy), inner))
}
