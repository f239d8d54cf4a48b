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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/shapes/geometry"
)

var centre = pt(canvas/2, canvas/2)

var starCases = []TestCase{
	starCase("five_fill", 5, 20, 40, Fill{Rule: NonZero}),
	starCase("five_outline", 5, 20, 40, outline),
	starCase("three_fill", 3, 10, 45, Fill{Rule: NonZero}),
	starCase("three_outline", 3, 10, 45, outline),
	starCase("twelve_fill", 12, 30, 45, Fill{Rule: NonZero}),
	starCase("inverted_fill", 6, 40, 15, Fill{Rule: NonZero}),
	starCase("inverted_outline", 6, 40, 15, outline),
}

func starCase(name string, points int, r1, r2 float64, op Operation) TestCase {
	return TestCase{
		Name:   name,
		Path:   geometry.Polygon(geometry.StarVertices(centre, points, r1, r2)),
		Width:  canvas,
		Height: canvas,
		Op:     op,
	}
}

var bullseyeCases = []TestCase{
	{
		Name:   "outer_fill",
		Path:   geometry.Circle(centre, 50),
		Width:  canvas,
		Height: canvas,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "outer_outline",
		Path:   geometry.Circle(centre, 50),
		Width:  canvas,
		Height: canvas,
		Op:     outline,
	},
	{
		Name:   "rings_outline",
		Path:   rings(45, 6),
		Width:  canvas,
		Height: canvas,
		Op:     outline,
	},
	{
		Name:   "small_fill",
		Path:   geometry.Circle(centre, 2.5),
		Width:  canvas,
		Height: canvas,
		Op:     Fill{Rule: NonZero},
	},
}

// rings combines the circles of a bullseye into one path.
func rings(radius float64, n int) *path.Data {
	var circles []*path.Data
	for _, r := range geometry.RingRadii(radius, n) {
		circles = append(circles, geometry.Circle(centre, r))
	}
	return compound(circles...)
}

var catCases = []TestCase{
	{
		Name:   "head_fill",
		Path:   geometry.Circle(pt(0, 0), geometry.HeadRadius),
		Width:  canvas,
		Height: canvas,
		Op:     Fill{Rule: NonZero},
		CTM:    centred,
	},
	{
		Name:   "head_outline",
		Path:   geometry.Circle(pt(0, 0), geometry.HeadRadius),
		Width:  canvas,
		Height: canvas,
		Op:     outline,
		CTM:    centred,
	},
	{
		Name:   "ears_fill",
		Path:   geometry.Ears(),
		Width:  canvas,
		Height: canvas,
		Op:     Fill{Rule: NonZero},
		CTM:    centred,
	},
	{
		Name:   "ears_outline",
		Path:   geometry.Ears(),
		Width:  canvas,
		Height: canvas,
		Op:     outline,
		CTM:    centred,
	},
	{
		Name:   "eye_fill",
		Path:   eye(),
		Width:  canvas,
		Height: canvas,
		Op:     Fill{Rule: NonZero},
		CTM:    centred,
	},
	{
		Name:   "eye_outline",
		Path:   eye(),
		Width:  canvas,
		Height: canvas,
		Op: Stroke{
			Width:      1,
			Cap:        outline.Cap,
			Join:       outline.Join,
			MiterLimit: outline.MiterLimit,
		},
		CTM: centred,
	},
	{
		Name:   "pupil_left",
		Path:   pupil(-3),
		Width:  canvas,
		Height: canvas,
		Op:     Fill{Rule: NonZero},
		CTM:    centred,
	},
	{
		Name:   "pupil_right",
		Path:   pupil(3),
		Width:  canvas,
		Height: canvas,
		Op:     Fill{Rule: NonZero},
		CTM:    centred,
	},
}

// eye returns the white of the right eye.
func eye() *path.Data {
	c := geometry.EyeCentres()[1]
	return geometry.Ellipse(c, geometry.EyeRadiusX, geometry.EyeRadiusY)
}

// pupil returns the pupil of the left eye, moved by shift.
func pupil(shift float64) *path.Data {
	c := geometry.PupilCentres(shift)[0]
	return geometry.Circle(c, geometry.PupilRadius)
}
