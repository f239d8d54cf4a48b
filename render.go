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
	"fmt"
)

// Render draws s onto surf. The surface is cleared first, so that the
// result depends only on s.Props.
//
// Shapes of an unknown variant, including shapes without properties,
// are ignored: Render returns nil without touching the surface.
// If the surface cannot provide a drawing context, the error wraps
// ErrUnsupportedContext.
func Render(s Shape, surf Surface) error {
	var paint func(*Context)
	switch p := s.Props.(type) {
	case Square:
		paint = func(ctx *Context) { drawSquare(ctx, p) }
	case Star:
		paint = func(ctx *Context) { drawStar(ctx, p) }
	case Bullseye:
		paint = func(ctx *Context) { drawBullseye(ctx, p) }
	case Cat:
		paint = func(ctx *Context) { drawCat(ctx, p) }
	default:
		Logger().Debug("ignoring shape of unknown variant",
			"id", s.ID, "props", fmt.Sprintf("%T", s.Props))
		return nil
	}

	if surf == nil {
		return fmt.Errorf("shape %d: %w", s.ID, ErrUnsupportedContext)
	}
	ctx, err := surf.Context2D()
	if err != nil {
		return fmt.Errorf("shape %d: %w", s.ID, err)
	}
	paint(ctx)

	Logger().Debug("rendered shape", "id", s.ID, "kind", s.Props.Kind())
	return nil
}
