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

// Command genpdf generates the reference images for the rasteriser tests.
//
// Every test case is drawn in white on black into a single-page PDF file,
// which Ghostscript then renders into an 8-bit grayscale PNG. The gray
// level of a pixel is the expected coverage. Run from the module root:
//
//	go run ./testcases/genpdf -out raster/testdata/reference
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shapes/testcases"
)

func main() {
	outDir := flag.String("out", "raster/testdata/reference", "output directory")
	only := flag.String("category", "", "only generate this category")
	keepPDF := flag.Bool("keep-pdf", false, "keep the intermediate PDF files")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger, *outDir, *only, *keepPDF); err != nil {
		logger.Error("genpdf failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, outDir, only string, keepPDF bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if only != "" && category != only {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := writePDF(tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := ghostscript(pdfPath, pngPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if !keepPDF {
				if err := os.Remove(pdfPath); err != nil {
					return err
				}
			}
			logger.Debug("reference written", "file", pngPath)
			n++
		}
	}
	logger.Info("done", "images", n, "dir", outDir)
	return nil
}

// writePDF draws tc in white on a black page of tc.Width×tc.Height points.
func writePDF(tc testcases.TestCase, fname string) error {
	w, h := float64(tc.Width), float64(tc.Height)
	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// test cases use a top-left origin
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	// line parameters must be set before the path is constructed
	stroke, isStroke := tc.Op.(testcases.Stroke)
	if isStroke {
		page.SetLineWidth(stroke.Width)
		page.SetLineCap(stroke.Cap)
		page.SetLineJoin(stroke.Join)
		page.SetMiterLimit(stroke.MiterLimit)
	}

	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}

	switch {
	case isStroke:
		page.Stroke()
	case tc.Op == (testcases.Fill{Rule: testcases.EvenOdd}):
		page.FillEvenOdd()
	default:
		page.Fill()
	}

	return page.Close()
}

// ghostscript renders the first page of a PDF file into a grayscale PNG
// at 72 dpi, so that one point becomes one pixel.
func ghostscript(pdfPath, pngPath string) error {
	cmd := exec.Command("gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
