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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   (&path.Data{}).MoveTo(pt(10, 32)).LineTo(pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "line_round",
		Path:   (&path.Data{}).MoveTo(pt(10, 32)).LineTo(pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapRound, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "line_square",
		Path:   (&path.Data{}).MoveTo(pt(10, 32)).LineTo(pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapSquare, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "corner_miter",
		Path:   corner(),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "corner_round",
		Path:   corner(),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "corner_bevel",
		Path:   corner(),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapButt, Join: graphics.LineJoinBevel, MiterLimit: 10},
	},
	{
		// The tip angle is about 11°, so the miter limit turns the join
		// into a bevel.
		Name:   "sharp_miter_limited",
		Path:   (&path.Data{}).MoveTo(pt(10, 28)).LineTo(pt(54, 32)).LineTo(pt(10, 36)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "closed_square",
		Path:   rectangle(16, 16, 32, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "hairline",
		Path:   (&path.Data{}).MoveTo(pt(8, 8)).LineTo(pt(56, 40)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
}

func corner() *path.Data {
	return (&path.Data{}).MoveTo(pt(10, 50)).LineTo(pt(32, 14)).LineTo(pt(54, 50))
}
