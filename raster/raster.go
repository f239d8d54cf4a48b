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

// Package raster converts vector paths into per-pixel coverage values.
//
// Coverage is the fraction of a pixel's area inside the filled or stroked
// path, from 0 (outside) to 1 (inside). Results are delivered row by row
// through a callback, so that the caller decides how coverage is turned
// into pixels.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser turns paths into coverage values. Create one instance and
// reuse it; internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	// Stroke does nothing unless Width is positive.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used at the corners of a stroked path.
	Join graphics.LineJoinStyle

	// MiterLimit is the longest allowed ratio of miter length to half
	// the stroke width before a miter join turns into a bevel.
	MiterLimit float64

	cover   []float32 // cover change per pixel; reused as output
	area    []float32 // area within pixel
	rowUsed []bool    // per-scanline flag: true if any edge contributes
	edges   []edge

	// device-space bounding box of r.edges
	noEdges          bool
	devXMin, devXMax float64
	devYMin, devYMax float64

	lines      []vec.Vec2 // flattened subpath vertices, contiguous
	lineStart  []int      // start of each subpath in lines
	lineClosed []bool     // whether each subpath was closed

	segs      []strokeSegment
	polys     []vec.Vec2 // stroke polygons, contiguous
	polyStart []int      // start of each polygon in polys
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, using
// the defaults of an HTML canvas: width 1, butt caps, miter joins with a
// miter limit of 10.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle,
// keeping the capacity of the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// FillNonZero fills the path using the nonzero winding rule. Open
// subpaths are closed implicitly. The emit callback receives coverage
// row-by-row; its slice argument is valid only during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule. Open subpaths are
// closed implicitly.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	r.flatten(p)
	r.resetEdges()
	for i := range r.lineStart {
		pts := r.subpath(i)
		if len(pts) < 2 {
			continue
		}
		for j := 1; j < len(pts); j++ {
			r.addEdge(pts[j-1], pts[j])
		}
		r.addEdge(pts[len(pts)-1], pts[0])
	}
	r.rasterise(rule, emit)
}

// subpath returns the flattened vertices of subpath i.
func (r *Rasteriser) subpath(i int) []vec.Vec2 {
	end := len(r.lines)
	if i+1 < len(r.lineStart) {
		end = r.lineStart[i+1]
	}
	return r.lines[r.lineStart[i]:end]
}

func (r *Rasteriser) resetEdges() {
	r.edges = r.edges[:0]
	r.noEdges = true
}

// addEdge adds an edge given in user space. Horizontal edges and edges
// with non-finite coordinates or slopes are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	dx0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	dy0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	dx1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	dy1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	if s := dx0 + dy0 + dx1 + dy1; math.IsNaN(s) || math.IsInf(s, 0) {
		return
	}

	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	dxdy := (dx1 - dx0) / dy
	if math.IsInf(dxdy, 0) || math.IsNaN(dxdy) {
		return
	}

	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: dxdy,
	})

	if r.noEdges {
		r.devXMin, r.devXMax = min(dx0, dx1), max(dx0, dx1)
		r.devYMin, r.devYMax = min(dy0, dy1), max(dy0, dy1)
		r.noEdges = false
		return
	}
	r.devXMin = min(r.devXMin, dx0, dx1)
	r.devXMax = max(r.devXMax, dx0, dx1)
	r.devYMin = min(r.devYMin, dy0, dy1)
	r.devYMax = max(r.devYMax, dy0, dy1)
}

// edgeBounds returns the pixel bounding box of r.edges, clamped to the
// clip rectangle.
func (r *Rasteriser) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if r.noEdges {
		return 0, 0, 0, 0, false
	}
	c := r.Clip
	xMin = floorIn(r.devXMin, c.LLx, c.URx)
	xMax = min(floorIn(r.devXMax, c.LLx, c.URx)+1, int(c.URx))
	yMin = floorIn(r.devYMin, c.LLy, c.URy)
	yMax = min(floorIn(r.devYMax, c.LLy, c.URy)+1, int(c.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// floorIn returns floor(v) after clamping v to [lo, hi]. The clamp keeps
// the float to int conversion in range for coordinates far outside the
// clip rectangle.
func floorIn(v, lo, hi float64) int {
	if math.IsNaN(v) {
		return int(lo)
	}
	return int(math.Floor(min(max(v, lo), hi)))
}

// Coverage accumulation:
//
// Every edge crossing a pixel contributes
//
//	cover = sign * dy
//	area  = cover * (1 - xFrac)
//
// where sign is +1 for downward edges and xFrac is the horizontal position
// of the crossing inside the pixel. Integrating a row from left to right,
//
//	coverage = accumulated_cover + area[i]
//	accumulated_cover += cover[i]
//
// yields the signed area of the path inside each pixel.

// accumulateEdge adds the contribution of e within scanline y. The row
// buffers are indexed by x-bboxXMin; everything left of the bounding box
// is collected in the first cell.
func (r *Rasteriser) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}

	left := float64(bboxXMin - 1)
	right := float64(bboxXMax)
	pixLeft := floorIn(xLeft, left, right)
	pixRight := floorIn(xRight, left, right)

	if pixLeft >= bboxXMax {
		return
	}
	if pixRight < bboxXMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}

	if pixLeft == pixRight {
		c := sign * float32(yBot-yTop)
		yMid := (yTop + yBot) / 2
		xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pixLeft)
		i := pixLeft - bboxXMin
		cover[i] += c
		area[i] += c * float32(1-xFrac)
		return
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries. Columns left of the bounding box form a single cell.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight && pix < bboxXMax; pix++ {
		cx0, cx1 := float64(pix), float64(pix+1)
		if pix < bboxXMin {
			cx0, cx1 = xLeft, float64(bboxXMin)
		}
		ya := e.y0 + dydx*(cx0-e.x0)
		yb := e.y0 + dydx*(cx1-e.x0)
		segYMin := max(min(ya, yb), yTop)
		segYMax := min(max(ya, yb), yBot)
		if segYMax <= segYMin {
			continue
		}

		c := sign * float32(segYMax-segYMin)
		if pix < bboxXMin {
			cover[0] += c
			area[0] += c
			continue
		}
		yMid := (segYMin + segYMax) / 2
		xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)
		i := pix - bboxXMin
		cover[i] += c
		area[i] += c * float32(1-xFrac)
	}
}

// integrateNonZero converts one row of cover/area values to coverage
// using the nonzero winding rule. The cover slice is overwritten.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// integrateEvenOdd converts one row of cover/area values to coverage
// using the even-odd rule. The cover slice is overwritten.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		mod := raw - 2*float32(int(raw/2))
		d := 1 - mod
		if d < 0 {
			d = -d
		}
		cover[i] = 1 - d
	}
}

// trimZeros returns the non-zero portion of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// rasterise accumulates all edges into 2D buffers covering the bounding
// box and emits the integrated rows.
func (r *Rasteriser) rasterise(rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.rowUsed)

	top, bot := float64(yMin), float64(yMax-1)
	for i := range r.edges {
		e := &r.edges[i]
		first := floorIn(min(e.y0, e.y1), top, bot)
		last := floorIn(max(e.y0, e.y1), top, bot)
		for y := first; y <= last; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		if rule == fillNonZero {
			integrateNonZero(coverage, r.area[off:off+width])
		} else {
			integrateEvenOdd(coverage, r.area[off:off+width])
		}
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the HTML canvas and PDF defaults.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the cross product below which two
	// consecutive segments need no join.
	collinearityThreshold = 1e-6
)
