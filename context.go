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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapes/geometry"
)

// Context is the 2D drawing context of a Canvas. The methods follow the
// HTML canvas API: a current path is built with BeginPath, MoveTo, LineTo,
// Arc and friends, and painted with Fill or Stroke. Fills use the nonzero
// winding rule; strokes use miter joins (limit 10) and butt caps.
//
// Paths are interpreted in the coordinate system current at the time of
// painting.
type Context struct {
	canvas *Canvas
	state  gstate
	stack  []gstate
	path   *path.Data
}

type gstate struct {
	ctm       matrix.Matrix
	fill      color.RGBA
	stroke    color.RGBA
	lineWidth float64
}

func (ctx *Context) reset() {
	ctx.state = gstate{
		ctm:       matrix.Identity,
		fill:      black,
		stroke:    black,
		lineWidth: 1,
	}
	ctx.stack = ctx.stack[:0]
	ctx.path = &path.Data{}
}

// Save pushes the current transformation, colours and line width.
func (ctx *Context) Save() {
	ctx.stack = append(ctx.stack, ctx.state)
}

// Restore pops the state saved by the matching Save. Without a saved
// state, Restore does nothing.
func (ctx *Context) Restore() {
	n := len(ctx.stack)
	if n == 0 {
		return
	}
	ctx.state = ctx.stack[n-1]
	ctx.stack = ctx.stack[:n-1]
}

// Translate moves the origin of the user coordinate system to (dx, dy).
func (ctx *Context) Translate(dx, dy float64) {
	m := &ctx.state.ctm
	m[4] += m[0]*dx + m[2]*dy
	m[5] += m[1]*dx + m[3]*dy
}

// SetFillColor sets the colour used by Fill and FillRect.
func (ctx *Context) SetFillColor(c color.Color) {
	ctx.state.fill = color.RGBAModel.Convert(c).(color.RGBA)
}

// SetStrokeColor sets the colour used by Stroke.
func (ctx *Context) SetStrokeColor(c color.Color) {
	ctx.state.stroke = color.RGBAModel.Convert(c).(color.RGBA)
}

// SetLineWidth sets the stroke width. Values which are not positive and
// finite are ignored.
func (ctx *Context) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 1) {
		ctx.state.lineWidth = w
	}
}

// BeginPath discards the current path.
func (ctx *Context) BeginPath() {
	ctx.path = &path.Data{}
}

// MoveTo starts a new subpath at (x, y).
func (ctx *Context) MoveTo(x, y float64) {
	ctx.path.MoveTo(vec.Vec2{X: x, Y: y})
}

// LineTo adds a straight line to (x, y). On an empty path, LineTo acts
// like MoveTo.
func (ctx *Context) LineTo(x, y float64) {
	if len(ctx.path.Cmds) == 0 {
		ctx.MoveTo(x, y)
		return
	}
	ctx.path.LineTo(vec.Vec2{X: x, Y: y})
}

// ClosePath closes the current subpath.
func (ctx *Context) ClosePath() {
	if len(ctx.path.Cmds) > 0 {
		ctx.path.Close()
	}
}

// Arc adds a circular arc around (x, y), from angle a0 to a1 (radians,
// clockwise on screen). A line connects the current point to the start
// of the arc. A negative radius adds nothing.
func (ctx *Context) Arc(x, y, r, a0, a1 float64) {
	geometry.AppendArc(ctx.path, vec.Vec2{X: x, Y: y}, r, r, a0, a1)
}

// Ellipse adds an axis-aligned elliptical arc, like Arc.
func (ctx *Context) Ellipse(x, y, rx, ry, a0, a1 float64) {
	geometry.AppendArc(ctx.path, vec.Vec2{X: x, Y: y}, rx, ry, a0, a1)
}

// AppendPath adds all subpaths of p to the current path.
func (ctx *Context) AppendPath(p *path.Data) {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			ctx.path.MoveTo(p.Coords[k])
			k++
		case path.CmdLineTo:
			ctx.path.LineTo(p.Coords[k])
			k++
		case path.CmdQuadTo:
			ctx.path.QuadTo(p.Coords[k], p.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			ctx.path.CubeTo(p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			k += 3
		case path.CmdClose:
			ctx.path.Close()
		}
	}
}

// Fill paints the interior of the current path.
func (ctx *Context) Fill() {
	ctx.canvas.paint(OpFill, ctx.path, ctx.state.ctm, ctx.state.fill, 0)
}

// Stroke paints the outline of the current path.
func (ctx *Context) Stroke() {
	ctx.canvas.paint(OpStroke, ctx.path, ctx.state.ctm, ctx.state.stroke, ctx.state.lineWidth)
}

// FillRect fills a rectangle without changing the current path.
func (ctx *Context) FillRect(x, y, w, h float64) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
	ctx.canvas.paint(OpFill, p, ctx.state.ctm, ctx.state.fill, 0)
}
