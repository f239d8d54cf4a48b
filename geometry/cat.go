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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Layout of the cat face, relative to the centre of the face.
const (
	HeadRadius  = 40.0
	EyeRadiusX  = 8.0
	EyeRadiusY  = 14.0
	PupilRadius = 5.0
)

// leftEar is the left ear triangle; the right ear is its mirror image.
var leftEar = [3]vec.Vec2{
	{X: -40, Y: -48},
	{X: -8, Y: -36},
	{X: -35, Y: -14},
}

// eyeCentre is the centre of the right eye; the left eye is mirrored.
var eyeCentre = vec.Vec2{X: 16, Y: -9}

// Ears returns both ear triangles as one compound path with two closed
// subpaths, left ear first.
func Ears() *path.Data {
	p := &path.Data{}
	for _, sx := range []float64{1, -1} {
		p = p.MoveTo(mirror(leftEar[0], sx)).
			LineTo(mirror(leftEar[1], sx)).
			LineTo(mirror(leftEar[2], sx)).
			Close()
	}
	return p
}

// EyeCentres returns the centres of the left and right eye.
func EyeCentres() [2]vec.Vec2 {
	return [2]vec.Vec2{mirror(eyeCentre, -1), eyeCentre}
}

// PupilCentres returns the centres of the left and right pupil. Both
// pupils are moved horizontally by the same shift.
func PupilCentres(shift float64) [2]vec.Vec2 {
	eyes := EyeCentres()
	for i := range eyes {
		eyes[i].X += shift
	}
	return eyes
}

func mirror(v vec.Vec2, sx float64) vec.Vec2 {
	return vec.Vec2{X: sx * v.X, Y: v.Y}
}
