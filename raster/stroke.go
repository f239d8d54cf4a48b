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
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a line segment in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
// The emit callback receives coverage row-by-row; its slice argument is
// valid only during the call.
//
// The outline is the union of one quadrilateral per segment together with
// the join and cap polygons. All polygons are given the same orientation
// and filled with the nonzero rule, so overlapping parts are painted once.
// Subpaths without any extent are not drawn.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	d := r.Width / 2
	if !(d > 0) {
		return
	}

	r.flatten(p)
	r.polys = r.polys[:0]
	r.polyStart = r.polyStart[:0]
	for i := range r.lineStart {
		r.strokeSubpath(r.subpath(i), r.lineClosed[i], d)
	}

	r.resetEdges()
	for i := range r.polyStart {
		poly := r.polygon(i)
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.rasterise(fillNonZero, emit)
}

// polygon returns the vertices of stroke polygon i.
func (r *Rasteriser) polygon(i int) []vec.Vec2 {
	end := len(r.polys)
	if i+1 < len(r.polyStart) {
		end = r.polyStart[i+1]
	}
	return r.polys[r.polyStart[i]:end]
}

// strokeSubpath adds the outline polygons for one flattened subpath.
// d is half the stroke width.
func (r *Rasteriser) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	r.segs = r.segs[:0]
	for j := 1; j < len(pts); j++ {
		r.addStrokeSegment(pts[j-1], pts[j])
	}
	if closed && len(pts) > 1 {
		r.addStrokeSegment(pts[len(pts)-1], pts[0])
	}
	if len(r.segs) == 0 {
		return
	}

	for i := range r.segs {
		s := &r.segs[i]
		off := s.N.Mul(d)
		r.addPolygon(s.A.Add(off), s.B.Add(off), s.B.Sub(off), s.A.Sub(off))
	}

	for i := 1; i < len(r.segs); i++ {
		prev, next := &r.segs[i-1], &r.segs[i]
		r.addJoin(prev.B, prev.T, next.T, d)
	}

	first, last := &r.segs[0], &r.segs[len(r.segs)-1]
	if closed {
		r.addJoin(last.B, last.T, first.T, d)
	} else {
		r.addCap(first.A, first.T.Mul(-1), d)
		r.addCap(last.B, last.T, d)
	}
}

// addStrokeSegment appends the segment a→b to r.segs, unless it is too
// short to have a direction.
func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	length := v.Length()
	if !(length >= zeroLengthThreshold) || math.IsInf(length, 0) {
		return
	}
	t := v.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// addJoin adds the join polygon at P, where the tangent changes from T1
// to T2. The polygon lies on the outer side of the turn; the inner side
// is already covered by the overlapping segment quadrilaterals.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	// A left turn (sinTheta > 0) has its outer side at -N.
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(side)
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(side)
	a := P.Add(N1.Mul(d))
	b := P.Add(N2.Mul(d))

	switch r.Join {
	case graphics.LineJoinRound:
		sweep := math.Acos(max(-1, min(1, cosTheta)))
		if sinTheta < 0 {
			sweep = -sweep
		}
		start := r.beginPolygon(P)
		r.polys = append(r.polys, a)
		r.appendArc(P, d, N1, sweep)
		r.endPolygon(start)
		return

	case graphics.LineJoinMiter:
		// The miter length relative to d is 1/sin(φ/2), where φ is the
		// interior angle of the corner; sin(φ/2) = cos(θ/2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		bisector := N1.Add(N2)
		if l := bisector.Length(); sinHalf > 0 && l > zeroLengthThreshold &&
			1/sinHalf <= r.MiterLimit+miterEpsilon {
			tip := P.Add(bisector.Mul(d / (sinHalf * l)))
			r.addPolygon(P, a, tip, b)
			return
		}
	}

	r.addPolygon(P, a, b)
}

// addCap adds the cap polygon at the end point P of an open subpath.
// T is the outward tangent direction.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := T.Mul(d)
		r.addPolygon(P.Add(N.Mul(d)), P.Add(N.Mul(d)).Add(ext),
			P.Sub(N.Mul(d)).Add(ext), P.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		// half disc from +N through T to -N
		start := r.beginPolygon(P.Add(N.Mul(d)))
		r.appendArc(P, d, N, -math.Pi)
		r.endPolygon(start)
	}
}

// appendArc appends points on the circle of the given radius around
// center, starting after startDir and sweeping by sweep radians. The
// start point itself is not appended.
func (r *Rasteriser) appendArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	// A chord spanning angle θ deviates from the circle by
	// r*(1 - cos(θ/2)); solve for a deviation of r.Flatness.
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = int(min(math.Ceil(math.Abs(sweep)/step), maxCurveSegments))
		}
	}
	n = max(n, 1)

	dt := sweep / float64(n)
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.polys = append(r.polys, center.Add(dir.Mul(radius)))
	}
}

// addPolygon appends a complete stroke polygon.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	start := len(r.polys)
	r.polys = append(r.polys, pts...)
	r.endPolygon(start)
}

// beginPolygon starts a new stroke polygon with the vertex pt and returns
// its start index for endPolygon.
func (r *Rasteriser) beginPolygon(pt vec.Vec2) int {
	start := len(r.polys)
	r.polys = append(r.polys, pt)
	return start
}

// endPolygon finishes the polygon starting at r.polys[start]. The vertices
// are reordered to counter-clockwise orientation (positive signed area) so
// that all polygons add up under the nonzero rule. Polygons without area
// are discarded.
func (r *Rasteriser) endPolygon(start int) {
	poly := r.polys[start:]
	area := signedArea(poly)
	if !(math.Abs(area) > degenerateAreaThreshold) {
		r.polys = r.polys[:start]
		return
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.polyStart = append(r.polyStart, start)
}

// signedArea returns twice the signed area of the polygon.
func signedArea(poly []vec.Vec2) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// degenerateAreaThreshold is the smallest (doubled) polygon area kept in
// a stroke outline.
const degenerateAreaThreshold = 1e-12
