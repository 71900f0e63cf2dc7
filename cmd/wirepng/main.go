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

// Wirepng rasterises one of the built-in scenes into a PNG file.
//
// Usage:
//
//	wirepng -scene complex_mixed -o mixed.png
//	wirepng -list
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"seehuhn.de/go/wireframe"
	"seehuhn.de/go/wireframe/testcases"
)

func main() {
	sceneID := flag.String("scene", "complex_mixed", "scene to draw (category_name)")
	output := flag.String("o", "", "output PNG file (default <scene>.png)")
	list := flag.Bool("list", false, "list the available scenes and exit")
	flag.Parse()

	if *list {
		for _, id := range testcases.IDs() {
			fmt.Println(id)
		}
		return
	}

	wireframe.SetLogger(slog.Default())

	out := *output
	if out == "" {
		out = *sceneID + ".png"
	}
	if err := run(*sceneID, out); err != nil {
		log.Fatalf("wirepng: %v", err)
	}
	log.Printf("wrote %s", out)
}

func run(sceneID, out string) error {
	s, err := testcases.Lookup(sceneID)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	wireframe.DrawLines(img, s.Edges(), color.White)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", out, err)
	}
	return f.Close()
}
