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

// Command shapeview shows a row of shapes in a window and lets the user
// change them from the keyboard.
//
// The shapes are read from a JSON file given with -shapes, or default to
// a red square, a green star, a red and blue bullseye and an orange cat.
// Every key press changes the shape store; the bindings of the affected
// shapes redraw their canvases, which are then copied to the screen.
//
// Keys:
//
//	L, C, R   make the cats look left, to the centre or right
//	H         rotate the hue of all shapes by 30°
//	N         add a point to every star
//	Esc       quit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/store"
)

func main() {
	shapesFile := flag.String("shapes", "", "JSON file with the shapes to show")
	scale := flag.Int("scale", 2, "window scale factor")
	verbose := flag.Bool("v", false, "log every render")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	shapes.SetLogger(logger)

	if err := run(logger, *shapesFile, *scale); err != nil {
		logger.Error("shapeview failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, shapesFile string, scale int) error {
	props, err := loadProps(shapesFile)
	if err != nil {
		return err
	}
	if len(props) == 0 {
		return fmt.Errorf("no shapes to show")
	}

	st := store.New(props...)
	g, err := newViewer(st, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w*max(scale, 1), h*max(scale, 1))
	ebiten.SetWindowTitle("Shapes")
	return ebiten.RunGame(g)
}

// loadProps returns the shape properties from fname, or the default
// scenario if fname is empty.
func loadProps(fname string) ([]shapes.Props, error) {
	if fname == "" {
		return []shapes.Props{
			shapes.Square{Hue: 0},
			shapes.Star{Hue: 120, Points: 5, R1: 20, R2: 40},
			shapes.Bullseye{Hue: 0, Hue2: 240, Radius: 50, Rings: 2},
			shapes.Cat{Hue: 40, Look: shapes.LookRight},
		}, nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	list, err := shapes.DecodeShapes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	res := make([]shapes.Props, len(list))
	for i, s := range list {
		res[i] = s.Props
	}
	return res, nil
}
