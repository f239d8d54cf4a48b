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

// Package shapes renders parametric 2D shapes into small raster surfaces.
//
// A [Shape] pairs an identifier with one of four variants: [Square],
// [Star], [Bullseye] and [Cat]. [Render] selects the drawing routine for
// the variant and paints the shape onto a [Surface], normally a 100×100
// [Canvas]. Every render is a full repaint, so the pixels of a surface
// depend only on the current properties of its shape.
//
// A [Binding] ties one shape of an external store to its own canvas and
// redraws the canvas whenever the store signals a change.
package shapes

import "fmt"

// Kind names a shape variant. It doubles as the class name of the host
// element showing the shape.
type Kind string

// The shape variants.
const (
	KindSquare   Kind = "square"
	KindStar     Kind = "star"
	KindBullseye Kind = "bullseye"
	KindCat      Kind = "cat"
)

// Props holds the parameters of one shape variant.
// The set of implementations is closed: Square, Star, Bullseye and Cat.
type Props interface {
	Kind() Kind
	isProps()
}

// Square fills the whole surface with a single colour.
type Square struct {
	Hue float64 // degrees
}

// Star is a star polygon centred on the surface.
type Star struct {
	Hue    float64 // degrees
	Points int     // number of tips
	R1     float64 // inner radius
	R2     float64 // outer radius, normally larger than R1
}

// Bullseye is a set of concentric rings in two alternating colours.
type Bullseye struct {
	Hue    float64 // colour of the outermost ring
	Hue2   float64 // colour of every second ring
	Radius float64 // radius of the outermost ring
	Rings  int
}

// Cat is a cat face looking left, straight ahead or right.
type Cat struct {
	Hue  float64
	Look Look
}

func (Square) Kind() Kind   { return KindSquare }
func (Star) Kind() Kind     { return KindStar }
func (Bullseye) Kind() Kind { return KindBullseye }
func (Cat) Kind() Kind      { return KindCat }

func (Square) isProps()   {}
func (Star) isProps()     {}
func (Bullseye) isProps() {}
func (Cat) isProps()      {}

// Shape is one drawable shape. The ID is assigned by the store and never
// changes; the renderer only reads shapes.
type Shape struct {
	ID    int
	Props Props
}

// Look is the direction a cat is looking in.
type Look int

// The directions a cat can look in.
const (
	LookCentre Look = iota
	LookLeft
	LookRight
)

func (l Look) String() string {
	switch l {
	case LookCentre:
		return "centre"
	case LookLeft:
		return "left"
	case LookRight:
		return "right"
	default:
		return fmt.Sprintf("Look(%d)", int(l))
	}
}

// ParseLook converts "left", "centre" or "right" to a Look.
func ParseLook(s string) (Look, error) {
	switch s {
	case "centre":
		return LookCentre, nil
	case "left":
		return LookLeft, nil
	case "right":
		return LookRight, nil
	}
	return 0, fmt.Errorf("shapes: invalid look %q", s)
}

// Shift returns the horizontal offset of the pupils from the centres of
// the eyes. Values other than LookLeft and LookCentre look right.
func (l Look) Shift() float64 {
	switch l {
	case LookLeft:
		return -3
	case LookCentre:
		return 0
	default:
		return 3
	}
}
