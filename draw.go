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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapes/geometry"
)

// centre is the middle of a canvas.
var centre = vec.Vec2{X: Size / 2, Y: Size / 2}

// outlineWidth is the width of the black outlines of stars, rings and
// cat heads.
const outlineWidth = 2

func drawSquare(ctx *Context, p Square) {
	ctx.SetFillColor(hueColour(p.Hue))
	ctx.FillRect(0, 0, Size, Size)
}

func drawStar(ctx *Context, p Star) {
	ctx.SetFillColor(hueColour(p.Hue))
	ctx.SetStrokeColor(black)
	ctx.SetLineWidth(outlineWidth)

	ctx.BeginPath()
	for _, v := range geometry.StarVertices(centre, p.Points, p.R1, p.R2) {
		ctx.LineTo(v.X, v.Y)
	}
	ctx.ClosePath()
	ctx.Fill()
	ctx.Stroke()
}

func drawBullseye(ctx *Context, p Bullseye) {
	ctx.SetStrokeColor(black)
	ctx.SetLineWidth(outlineWidth)

	for i, r := range geometry.RingRadii(p.Radius, p.Rings) {
		ctx.BeginPath()
		ctx.Arc(centre.X, centre.Y, r, 0, 2*math.Pi)
		ctx.SetFillColor(hueColour(geometry.RingHue(i, p.Hue, p.Hue2)))
		ctx.Fill()
		ctx.Stroke()
	}
}

func drawCat(ctx *Context, p Cat) {
	ctx.SetFillColor(hueColour(p.Hue))
	ctx.SetStrokeColor(black)
	ctx.SetLineWidth(outlineWidth)

	ctx.Save()
	defer ctx.Restore()
	ctx.Translate(centre.X, centre.Y)

	// The head outline goes first, so that the ears cover its top and
	// the head fill covers the base of the ears.
	ctx.BeginPath()
	ctx.Arc(0, 0, geometry.HeadRadius, 0, 2*math.Pi)
	ctx.Stroke()

	ctx.BeginPath()
	ctx.AppendPath(geometry.Ears())
	ctx.Stroke()
	ctx.Fill()

	ctx.BeginPath()
	ctx.Arc(0, 0, geometry.HeadRadius, 0, 2*math.Pi)
	ctx.Fill()

	ctx.SetFillColor(white)
	ctx.SetLineWidth(1)
	for _, e := range geometry.EyeCentres() {
		ctx.BeginPath()
		ctx.Ellipse(e.X, e.Y, geometry.EyeRadiusX, geometry.EyeRadiusY, 0, 2*math.Pi)
		ctx.Fill()
		ctx.Stroke()
	}

	ctx.SetFillColor(black)
	for _, c := range geometry.PupilCentres(p.Look.Shift()) {
		ctx.BeginPath()
		ctx.Arc(c.X, c.Y, geometry.PupilRadius, 0, 2*math.Pi)
		ctx.Fill()
	}
}
