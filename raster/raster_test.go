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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/shapes/geometry"
	"seehuhn.de/go/shapes/testcases"
)

// TestAgainstReference compares the rasteriser with the images produced
// by testcases/genpdf. Cases without a reference image are skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				ref, err := loadGray(filepath.Join("testdata", "reference", name+".png"))
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				w, h := tc.Width, tc.Height
				actual := make([]byte, w*h)
				renderCase(NewRasteriser(rect.Rect{}), tc, actual)

				if err := compareImages(name, ref, actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderCase renders a test case into a grayscale buffer of
// tc.Width×tc.Height bytes, in row-major order.
func renderCase(r *Rasteriser, tc testcases.TestCase, buf []byte) {
	r.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	emit := func(y, xMin int, coverage []float32) {
		row := buf[y*tc.Width:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
		}
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

func loadGray(fname string) (gray []byte, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages accepts small anti-aliasing differences: 80% of the
// pixels must match exactly, 95% within 64 levels, 99% within 128.
func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h
	if len(expected) != total {
		return fmt.Errorf("reference has %d pixels, want %d", len(expected), total)
	}

	diffs := make([]int, total)
	for i := range total {
		d := int(expected[i]) - int(actual[i])
		if d < 0 {
			d = -d
		}
		diffs[i] = d
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}
	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return errors.New(strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes actual (left), difference (middle) and expected
// (right) side by side into debug/<name>.png. In the middle panel, green
// marks missing and red marks excess coverage.
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0o755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			a, e := actual[i], expected[i]
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: 255})
			img.SetRGBA(x+2*w, y, color.RGBA{R: e, G: e, B: e, A: 255})

			d := color.RGBA{A: 255}
			if diff := int(e) - int(a); diff > 0 {
				d.G = uint8(diff)
			} else {
				d.R = uint8(-diff)
			}
			img.SetRGBA(x+w, y, d)
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// collector records the coverage emitted by the rasteriser and checks
// that everything stays inside the clip rectangle.
type collector struct {
	t     *testing.T
	w, h  int
	cover []float64
	calls int
}

func newCollector(t *testing.T, w, h int) *collector {
	return &collector{t: t, w: w, h: h, cover: make([]float64, w*h)}
}

func (c *collector) emit(y, xMin int, coverage []float32) {
	c.calls++
	if y < 0 || y >= c.h || xMin < 0 || xMin+len(coverage) > c.w {
		c.t.Fatalf("row %d, x %d..%d outside the clip rectangle", y, xMin, xMin+len(coverage))
	}
	for i, v := range coverage {
		if !(v >= 0 && v <= 1) {
			c.t.Fatalf("coverage %g at (%d,%d)", v, xMin+i, y)
		}
		c.cover[y*c.w+xMin+i] = float64(v)
	}
}

func (c *collector) at(x, y int) float64 {
	return c.cover[y*c.w+x]
}

func (c *collector) sum() float64 {
	var s float64
	for _, v := range c.cover {
		s += v
	}
	return s
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	c := newCollector(t, 10, 1)
	r.FillNonZero(triangle, c.emit)

	const epsilon = 1e-6
	for x := range 10 {
		want := float64(2*x+1) / 20
		if got := c.at(x, 0); math.Abs(got-want) > epsilon {
			t.Errorf("pixel %d: coverage %.4f, want %.4f", x, got, want)
		}
	}
}

func TestRectangleCoverage(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	c := newCollector(t, 10, 10)
	r.FillNonZero(rectangle(2, 3, 5, 5), c.emit)

	for y := range 10 {
		for x := range 10 {
			want := 0.0
			if x >= 2 && x < 7 && y >= 3 && y < 8 {
				want = 1
			}
			if got := c.at(x, y); got != want {
				t.Errorf("pixel (%d,%d): coverage %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestTranslatedRectangle(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Matrix{1, 0, 0, 1, 0.5, 0}
	c := newCollector(t, 10, 10)
	r.FillNonZero(rectangle(2, 2, 4, 4), c.emit)

	for _, tc := range []struct {
		x    int
		want float64
	}{{1, 0}, {2, 0.5}, {3, 1}, {5, 1}, {6, 0.5}, {7, 0}} {
		if got := c.at(tc.x, 4); got != tc.want {
			t.Errorf("pixel %d: coverage %g, want %g", tc.x, got, tc.want)
		}
	}
}

func TestCircleArea(t *testing.T) {
	const radius = 20
	r := NewRasteriser(rect.Rect{URx: 50, URy: 50})
	c := newCollector(t, 50, 50)
	r.FillNonZero(geometry.Circle(vec.Vec2{X: 25, Y: 25}, radius), c.emit)

	want := math.Pi * radius * radius
	if got := c.sum(); math.Abs(got-want) > 0.02*want {
		t.Errorf("area %.1f, want %.1f", got, want)
	}
	if math.Abs(c.at(25, 25)-1) > 1e-5 {
		t.Errorf("centre coverage %g, want 1", c.at(25, 25))
	}
	if c.at(0, 0) != 0 {
		t.Errorf("corner coverage %g, want 0", c.at(0, 0))
	}
}

func TestFillRules(t *testing.T) {
	var pentagram *path.Data
	for _, tc := range testcases.All["basic"] {
		if tc.Name == "pentagram_nonzero" {
			pentagram = tc.Path
		}
	}
	if pentagram == nil {
		t.Fatal("pentagram test case missing")
	}

	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	nonZero := newCollector(t, 64, 64)
	r.FillNonZero(pentagram, nonZero.emit)
	evenOdd := newCollector(t, 64, 64)
	r.FillEvenOdd(pentagram, evenOdd.emit)

	const epsilon = 1e-5
	if got := nonZero.at(32, 32); math.Abs(got-1) > epsilon {
		t.Errorf("nonzero centre coverage %g, want 1", got)
	}
	if got := evenOdd.at(32, 32); got > epsilon {
		t.Errorf("even-odd centre coverage %g, want 0", got)
	}
	// the top tip has winding number 1
	if a, b := nonZero.at(32, 12), evenOdd.at(32, 12); math.Abs(a-1) > epsilon || math.Abs(b-1) > epsilon {
		t.Errorf("tip coverage %g / %g, want 1 / 1", a, b)
	}
}

func TestStrokeJoins(t *testing.T) {
	tests := []struct {
		join graphics.LineJoinStyle
		want float64
		tol  float64
	}{
		{graphics.LineJoinMiter, 80, 1e-3},
		{graphics.LineJoinBevel, 78, 1e-3},
		{graphics.LineJoinRound, 76 + math.Pi, 0.1},
	}
	for _, tc := range tests {
		t.Run(tc.join.String(), func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 30, URy: 30})
			r.Flatness = 0.01
			r.Width = 2
			r.Join = tc.join
			c := newCollector(t, 30, 30)
			r.Stroke(rectangle(10, 10, 10, 10), c.emit)

			if got := c.sum(); math.Abs(got-tc.want) > tc.tol {
				t.Errorf("stroked area %.3f, want %.3f", got, tc.want)
			}
			if got := c.at(15, 15); got != 0 {
				t.Errorf("interior coverage %g, want 0", got)
			}
		})
	}
}

func TestStrokeCaps(t *testing.T) {
	tests := []struct {
		cap  graphics.LineCapStyle
		want float64
		tol  float64
	}{
		{graphics.LineCapButt, 20, 1e-3},
		{graphics.LineCapSquare, 24, 1e-3},
		{graphics.LineCapRound, 20 + math.Pi, 0.1},
	}
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 10, Y: 10}).LineTo(vec.Vec2{X: 20, Y: 10})
	for _, tc := range tests {
		t.Run(tc.cap.String(), func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 30, URy: 20})
			r.Flatness = 0.01
			r.Width = 2
			r.Cap = tc.cap
			c := newCollector(t, 30, 20)
			r.Stroke(line, c.emit)

			if got := c.sum(); math.Abs(got-tc.want) > tc.tol {
				t.Errorf("stroked area %.3f, want %.3f", got, tc.want)
			}
		})
	}
}

func TestMiterLimit(t *testing.T) {
	// a 90° corner needs a miter ratio of √2
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 15})

	r := NewRasteriser(rect.Rect{URx: 20, URy: 20})
	r.Width = 2
	r.MiterLimit = 1.5
	mitered := newCollector(t, 20, 20)
	r.Stroke(corner, mitered.emit)

	r.MiterLimit = 1.4
	bevelled := newCollector(t, 20, 20)
	r.Stroke(corner, bevelled.emit)

	if d := mitered.sum() - bevelled.sum(); math.Abs(d-0.5) > 1e-3 {
		t.Errorf("miter adds %.3f, want 0.5", d)
	}
}

func TestStrokeWithoutWidth(t *testing.T) {
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: 8, Y: 8})
	for _, w := range []float64{0, -1, math.NaN()} {
		r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
		r.Width = w
		c := newCollector(t, 10, 10)
		r.Stroke(line, c.emit)
		if c.calls != 0 {
			t.Errorf("width %g: %d rows emitted", w, c.calls)
		}
	}
}

func TestEmptyPaths(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	c := newCollector(t, 10, 10)
	for _, p := range []*path.Data{
		nil,
		{},
		(&path.Data{}).MoveTo(vec.Vec2{X: 3, Y: 3}),
		(&path.Data{}).MoveTo(vec.Vec2{X: 3, Y: 3}).LineTo(vec.Vec2{X: 3, Y: 3}).Close(),
	} {
		r.FillNonZero(p, c.emit)
		r.FillEvenOdd(p, c.emit)
		r.Stroke(p, c.emit)
	}
	if c.calls != 0 {
		t.Errorf("%d rows emitted for empty paths", c.calls)
	}
}

// TestClipping draws shapes reaching far outside the clip rectangle.
func TestClipping(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 20, URy: 20})
	c := newCollector(t, 20, 20)
	r.FillNonZero(rectangle(-100, -100, 110, 300), c.emit)

	for y := range 20 {
		for x := range 20 {
			want := 0.0
			if x < 10 {
				want = 1
			}
			if got := c.at(x, y); got != want {
				t.Fatalf("pixel (%d,%d): coverage %g, want %g", x, y, got, want)
			}
		}
	}

	r.Width = 4
	r.Stroke(geometry.Circle(vec.Vec2{X: 10, Y: 10}, 15), newCollector(t, 20, 20).emit)
}

func TestNonFiniteCoordinates(t *testing.T) {
	inf := math.Inf(1)
	paths := []*path.Data{
		(&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: math.NaN(), Y: 5}).LineTo(vec.Vec2{X: 8, Y: 8}).Close(),
		(&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: inf, Y: 5}).LineTo(vec.Vec2{X: 8, Y: -inf}).Close(),
		(&path.Data{}).MoveTo(vec.Vec2{X: -1e300, Y: 1}).LineTo(vec.Vec2{X: 1e300, Y: 2}).LineTo(vec.Vec2{X: 5, Y: 1e300}).Close(),
		(&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1}).LineTo(vec.Vec2{X: 1e300, Y: 1 + 1e-9}).LineTo(vec.Vec2{X: 1, Y: 9}).Close(),
		geometry.Circle(vec.Vec2{X: 5, Y: 5}, 1e300),
	}
	for i, p := range paths {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
			r.FillNonZero(p, newCollector(t, 10, 10).emit)
			r.FillEvenOdd(p, newCollector(t, 10, 10).emit)
			r.Width = 2
			r.Stroke(p, newCollector(t, 10, 10).emit)
		})
	}
}

// TestReuse checks that a rasteriser gives the same result when it is
// reused for a different clip rectangle.
func TestReuse(t *testing.T) {
	circle := geometry.Circle(vec.Vec2{X: 8, Y: 8}, 6)

	fresh := newCollector(t, 16, 16)
	NewRasteriser(rect.Rect{URx: 16, URy: 16}).FillNonZero(circle, fresh.emit)

	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	r.Width = 3
	r.Stroke(rectangle(5, 5, 50, 50), newCollector(t, 64, 64).emit)
	r.Reset(rect.Rect{URx: 16, URy: 16})
	reused := newCollector(t, 16, 16)
	r.FillNonZero(circle, reused.emit)

	if !slices.Equal(fresh.cover, reused.cover) {
		t.Error("reused rasteriser gives different coverage")
	}
}

func rectangle(x, y, w, h float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
}
