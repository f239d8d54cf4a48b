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

// Package geometry computes the vertices and outlines of the parametric
// shapes. All functions are pure: they know nothing about surfaces,
// colours or pixels.
package geometry

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendArc appends an elliptical arc to p and returns p.
//
// The arc is centred at c with radii rx and ry and runs from angle a0 to
// angle a1 (radians, measured from the positive x-axis towards the
// positive y-axis). Like a canvas arc, it is joined to the current point
// by a straight line if p already has one, and starts a new subpath
// otherwise. Sweeps of more than one full turn are limited to one turn.
//
// Negative or non-finite radii leave p unchanged.
func AppendArc(p *path.Data, c vec.Vec2, rx, ry, a0, a1 float64) *path.Data {
	if !(rx >= 0 && ry >= 0) || math.IsInf(rx, 0) || math.IsInf(ry, 0) {
		return p
	}
	sweep := a1 - a0
	if math.IsNaN(sweep) || math.IsInf(sweep, 0) {
		return p
	}
	switch {
	case sweep > 2*math.Pi:
		sweep = 2 * math.Pi
	case sweep < 0:
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}

	at := func(t float64) vec.Vec2 {
		sin, cos := math.Sincos(t)
		return vec.Vec2{X: c.X + rx*cos, Y: c.Y + ry*sin}
	}

	start := at(a0)
	if len(p.Cmds) > 0 {
		p = p.LineTo(start)
	} else {
		p = p.MoveTo(start)
	}
	if sweep == 0 {
		return p
	}

	// Each cubic spans at most a quarter turn. The control points lie on
	// the tangents at distance k = 4/3·tan(θ/4) on the unit circle.
	n := int(math.Ceil(sweep / (math.Pi / 2)))
	theta := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(theta/4)
	t0 := a0
	for range n {
		t1 := t0 + theta
		sin0, cos0 := math.Sincos(t0)
		sin1, cos1 := math.Sincos(t1)
		c1 := vec.Vec2{X: c.X + rx*(cos0-k*sin0), Y: c.Y + ry*(sin0+k*cos0)}
		c2 := vec.Vec2{X: c.X + rx*(cos1+k*sin1), Y: c.Y + ry*(sin1-k*cos1)}
		p = p.CubeTo(c1, c2, at(t1))
		t0 = t1
	}
	return p
}

// Circle returns a closed circle around c.
func Circle(c vec.Vec2, r float64) *path.Data {
	return Ellipse(c, r, r)
}

// Ellipse returns a closed, axis-aligned ellipse around c.
// Negative radii give an empty path.
func Ellipse(c vec.Vec2, rx, ry float64) *path.Data {
	p := AppendArc(&path.Data{}, c, rx, ry, 0, 2*math.Pi)
	if len(p.Cmds) == 0 {
		return p
	}
	return p.Close()
}

// Polygon returns the closed polygon through pts.
func Polygon(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p.Close()
}
