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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// flatten converts p into polylines, one per subpath. Results are stored
// in r.lines, r.lineStart and r.lineClosed.
//
// A drawing command without a preceding MoveTo starts a new subpath at
// the current point, so that a LineTo after ClosePath continues from the
// start of the closed subpath.
func (r *Rasteriser) flatten(p *path.Data) {
	r.lines = r.lines[:0]
	r.lineStart = r.lineStart[:0]
	r.lineClosed = r.lineClosed[:0]
	if p == nil {
		return
	}

	var current, start vec.Vec2
	open := false
	begin := func(pt vec.Vec2) {
		r.lineStart = append(r.lineStart, len(r.lines))
		r.lineClosed = append(r.lineClosed, false)
		r.lines = append(r.lines, pt)
		start = pt
		open = true
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			k++
			begin(current)

		case path.CmdLineTo:
			if !open {
				begin(current)
			}
			current = p.Coords[k]
			k++
			r.lines = append(r.lines, current)

		case path.CmdQuadTo:
			if !open {
				begin(current)
			}
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.appendVertex)
			current = p.Coords[k+1]
			k += 2

		case path.CmdCubeTo:
			if !open {
				begin(current)
			}
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.appendVertex)
			current = p.Coords[k+2]
			k += 3

		case path.CmdClose:
			if open {
				r.lineClosed[len(r.lineClosed)-1] = true
				open = false
			}
			current = start
		}
	}
}

func (r *Rasteriser) appendVertex(_, to vec.Vec2) {
	r.lines = append(r.lines, to)
}

// transformLinear applies the 2×2 linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// segmentCount returns the number of line segments needed to keep a curve
// with the given device-space deviation within r.Flatness.
func (r *Rasteriser) segmentCount(deviation float64) int {
	if !(deviation > r.Flatness) {
		return 1
	}
	// A degenerate path must not stall the renderer.
	return int(min(math.Ceil(math.Sqrt(deviation/r.Flatness)), maxCurveSegments))
}

// flattenQuadratic flattens the quadratic Bézier p0, p1, p2 given in user
// space and calls emit for each line segment.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := r.segmentCount(r.transformLinear(e).Length())

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens the cubic Bézier p0, p1, p2, p3 given in user
// space and calls emit for each line segment. The segment count follows
// Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	// n = ceil(sqrt(3 * m / (4 * ε))) = ceil(sqrt((3m/4) / ε))
	n := r.segmentCount(0.75 * max(d1.Length(), d2.Length()))

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).
			Add(p1.Mul(3 * omt2 * t)).
			Add(p2.Mul(3 * omt * t2)).
			Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// maxCurveSegments bounds the number of segments per curve.
const maxCurveSegments = 1024
