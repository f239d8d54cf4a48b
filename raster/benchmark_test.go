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
	"fmt"
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shapes/geometry"
	"seehuhn.de/go/shapes/testcases"
)

// BenchmarkRasteriseAll measures steady-state performance by reusing a
// single Rasteriser across all test cases.
func BenchmarkRasteriseAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	r := NewRasteriser(rect.Rect{})
	emit := func(y, xMin int, coverage []float32) {}

	for b.Loop() {
		for _, tc := range cases {
			r.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
			if tc.CTM != (matrix.Matrix{}) {
				r.CTM = tc.CTM
			}
			switch op := tc.Op.(type) {
			case testcases.Fill:
				if op.Rule == testcases.EvenOdd {
					r.FillEvenOdd(tc.Path, emit)
				} else {
					r.FillNonZero(tc.Path, emit)
				}
			case testcases.Stroke:
				r.Width = op.Width
				r.Cap = op.Cap
				r.Join = op.Join
				r.MiterLimit = op.MiterLimit
				r.Stroke(tc.Path, emit)
			}
		}
	}
}

// BenchmarkRasteriserBullseye fills the rings of a bullseye, the way a
// canvas of the given size would.
func BenchmarkRasteriserBullseye(b *testing.B) {
	for _, size := range []int{100, 400, 1600} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
			var rings []*path.Data
			for _, radius := range geometry.RingRadii(float64(size)/2, 5) {
				rings = append(rings, geometry.Circle(c, radius))
			}
			emit := func(y, xMin int, coverage []float32) {
				row := dst.Pix[y*dst.Stride+xMin:]
				for i, v := range coverage {
					row[i] = uint8(v * 255)
				}
			}

			b.ReportAllocs()
			for b.Loop() {
				for _, ring := range rings {
					r.FillNonZero(ring, emit)
				}
			}
		})
	}
}

// BenchmarkVectorBullseye draws the same rings with x/image/vector.
func BenchmarkVectorBullseye(b *testing.B) {
	for _, size := range []int{100, 400, 1600} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			c := float32(size) / 2
			radii := geometry.RingRadii(float64(size)/2, 5)

			b.ReportAllocs()
			for b.Loop() {
				for _, radius := range radii {
					r.Reset(size, size)
					addCircle(r, c, c, float32(radius))
					r.Draw(dst, dst.Bounds(), src, image.Point{})
				}
			}
		})
	}
}

// addCircle adds a circle made of four cubic Bézier curves.
func addCircle(r *vector.Rasterizer, cx, cy, radius float32) {
	k := float32(4*(math.Sqrt2-1)/3) * radius
	r.MoveTo(cx+radius, cy)
	r.CubeTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	r.CubeTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	r.CubeTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	r.CubeTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	r.ClosePath()
}
