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

package main

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/store"
)

// margin is the gap between two shapes on the screen, in pixels.
const margin = 10

var background = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

// view is one shape on the screen.
type view struct {
	binding  *shapes.Binding
	elem     *shapes.Element
	img      *ebiten.Image
	uploaded int // renders copied to img
}

// viewer implements ebiten.Game.
type viewer struct {
	store  *store.Store
	logger *slog.Logger
	views  []*view
}

func newViewer(st *store.Store, logger *slog.Logger) (*viewer, error) {
	g := &viewer{store: st, logger: logger}
	for _, s := range st.Shapes() {
		b := shapes.Bind(st, s.ID, shapes.WithErrorHandler(func(err error) {
			logger.Error("render failed", "id", s.ID, "err", err)
		}))
		elem, err := b.Mount()
		if err != nil {
			g.Close()
			b.Close()
			return nil, err
		}
		g.views = append(g.views, &view{
			binding: b,
			elem:    elem,
			img:     ebiten.NewImage(shapes.Size, shapes.Size),
		})
	}
	return g, nil
}

func (g *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.modify(lookAt(shapes.LookLeft))
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.modify(lookAt(shapes.LookCentre))
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.modify(lookAt(shapes.LookRight))
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.modify(rotateHue(30))
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.modify(addPoint)
	}
	return nil
}

// modify applies edit to every shape for which it reports a change.
func (g *viewer) modify(edit func(shapes.Props) (shapes.Props, bool)) {
	for _, s := range g.store.Shapes() {
		p, changed := edit(s.Props)
		if !changed {
			continue
		}
		if err := g.store.Update(s.ID, p); err != nil {
			g.logger.Error("update failed", "id", s.ID, "err", err)
		}
	}
}

func (g *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for i, v := range g.views {
		if n := v.binding.Renders(); n != v.uploaded {
			if pix := v.elem.Canvas.Image(); pix != nil {
				v.img.WritePixels(pix.Pix)
			}
			v.uploaded = n
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(margin+i*(shapes.Size+margin)), margin)
		screen.DrawImage(v.img, op)
	}
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := max(len(g.views), 1)
	return margin + n*(shapes.Size+margin), shapes.Size + 2*margin
}

// Close releases the bindings and their canvases.
func (g *viewer) Close() {
	for _, v := range g.views {
		v.binding.Close()
		v.img.Deallocate()
	}
	g.views = nil
}

func lookAt(look shapes.Look) func(shapes.Props) (shapes.Props, bool) {
	return func(p shapes.Props) (shapes.Props, bool) {
		cat, ok := p.(shapes.Cat)
		if !ok || cat.Look == look {
			return p, false
		}
		cat.Look = look
		return cat, true
	}
}

func rotateHue(delta float64) func(shapes.Props) (shapes.Props, bool) {
	return func(p shapes.Props) (shapes.Props, bool) {
		switch v := p.(type) {
		case shapes.Square:
			v.Hue += delta
			return v, true
		case shapes.Star:
			v.Hue += delta
			return v, true
		case shapes.Bullseye:
			v.Hue += delta
			v.Hue2 += delta
			return v, true
		case shapes.Cat:
			v.Hue += delta
			return v, true
		}
		return p, false
	}
}

// maxPoints bounds the number of star points reachable with the N key.
const maxPoints = 12

func addPoint(p shapes.Props) (shapes.Props, bool) {
	star, ok := p.(shapes.Star)
	if !ok {
		return p, false
	}
	star.Points++
	if star.Points > maxPoints {
		star.Points = 3
	}
	return star, true
}
