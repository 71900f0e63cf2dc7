// seehuhn.de/go/wireframe - 3D wireframe geometry and line drawing
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

// Genpdf writes every scene as a vector PDF to testdata/pdf.  Viewing
// these next to the rasterised output shows where the integer line
// algorithm deviates from the exact edges.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/wireframe/testcases"
)

const outDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := category + "_" + s.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(s, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(s testcases.Scene, pdfPath string) error {
	// one PDF unit per pixel
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(s.Width), float64(s.Height))
	page.Fill()

	// Scenes use device pixels with the origin at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(s.Height)})

	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)

	p := s.Edges().Path()
	if len(p.Cmds) == 0 {
		return page.Close()
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdLineTo:
			page.LineTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		}
	}
	page.Stroke()

	return page.Close()
}
