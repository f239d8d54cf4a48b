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
	"errors"
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/shapes/raster"
)

// Size is the width and height of a Canvas, in pixels.
const Size = 100

// ErrUnsupportedContext is returned when a surface cannot provide a 2D
// drawing context.
var ErrUnsupportedContext = errors.New("shapes: 2d context not supported")

// Surface is a drawing target which can hand out a 2D drawing context.
type Surface interface {
	// Context2D acquires the drawing context of the surface and clears
	// the surface for a new frame.
	Context2D() (*Context, error)
}

// OpKind distinguishes the paint operations in a recorded frame.
type OpKind int

// The paint operations.
const (
	OpFill OpKind = iota
	OpStroke
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	default:
		return "OpKind(?)"
	}
}

// Op is one recorded paint operation.
type Op struct {
	Kind  OpKind
	Path  *path.Data    // in user coordinates
	CTM   matrix.Matrix // user to device coordinates
	Color color.RGBA
	Width float64 // line width, for OpStroke
}

// Canvas is a Size×Size RGBA surface. A Canvas is owned by a single
// renderer and is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	mask *image.Alpha
	ras  *raster.Rasteriser
	ctx  *Context

	record bool
	ops    []Op
}

// NewCanvas allocates a transparent canvas.
func NewCanvas(opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bounds := image.Rect(0, 0, Size, Size)
	c := &Canvas{
		img:    image.NewRGBA(bounds),
		mask:   image.NewAlpha(bounds),
		ras:    raster.NewRasteriser(rect.Rect{URx: Size, URy: Size}),
		record: o.record,
	}
	c.ras.Flatness = o.flatness
	c.ctx = &Context{canvas: c}
	return c
}

// Context2D implements the Surface interface. The canvas is cleared to
// transparent and the context is reset to its initial state.
// After Release, ErrUnsupportedContext is returned.
func (c *Canvas) Context2D() (*Context, error) {
	if c == nil || c.img == nil {
		return nil, ErrUnsupportedContext
	}
	c.Clear()
	c.ctx.reset()
	return c.ctx, nil
}

// Clear makes every pixel transparent and forgets the recorded operations.
func (c *Canvas) Clear() {
	if c == nil || c.img == nil {
		return
	}
	clear(c.img.Pix)
	c.ops = c.ops[:0]
}

// Image returns the pixels of the canvas. The image is overwritten by the
// next render and is nil after Release.
func (c *Canvas) Image() *image.RGBA {
	if c == nil {
		return nil
	}
	return c.img
}

// Bounds returns the pixel rectangle of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, Size, Size)
}

// Ops returns the paint operations of the current frame. Only canvases
// created with WithRecording keep this list.
func (c *Canvas) Ops() []Op {
	if c == nil {
		return nil
	}
	return c.ops
}

// Release frees the pixel buffers. A released canvas cannot be drawn on.
func (c *Canvas) Release() {
	if c == nil {
		return
	}
	c.img = nil
	c.mask = nil
	c.ops = nil
}

// paint rasterises p and composites colour col through the coverage
// mask onto the canvas.
func (c *Canvas) paint(kind OpKind, p *path.Data, ctm matrix.Matrix, col color.RGBA, width float64) {
	if c.img == nil {
		return
	}
	if c.record {
		c.ops = append(c.ops, Op{
			Kind:  kind,
			Path:  &path.Data{Cmds: slices.Clone(p.Cmds), Coords: slices.Clone(p.Coords)},
			CTM:   ctm,
			Color: col,
			Width: width,
		})
	}

	var box image.Rectangle
	mask := c.mask
	emit := func(y, xMin int, coverage []float32) {
		row := mask.Pix[y*mask.Stride+xMin:]
		for i, v := range coverage {
			row[i] = uint8(v*0xff + 0.5)
		}
		box = box.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	}

	c.ras.CTM = ctm
	switch kind {
	case OpFill:
		c.ras.FillNonZero(p, emit)
	case OpStroke:
		c.ras.Width = width
		c.ras.Stroke(p, emit)
	}
	if box.Empty() {
		return
	}

	draw.DrawMask(c.img, box, image.NewUniform(col), image.Point{}, mask, box.Min, draw.Over)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		off := y * mask.Stride
		clear(mask.Pix[off+box.Min.X : off+box.Max.X])
	}
}
