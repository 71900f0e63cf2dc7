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

// Wireview shows one of the built-in scenes in a desktop window.
//
// The scene is drawn through a [wireframe.DeviceSurface], the same way it
// would be drawn onto a small display attached to a microcontroller.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"seehuhn.de/go/wireframe"
	"seehuhn.de/go/wireframe/testcases"
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xFF}
	lineColor  = color.RGBA{0x40, 0xFF, 0x80, 0xFF}
	textColor  = color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}
)

func main() {
	sceneID := flag.String("scene", "complex_mixed", "scene to show (category_name)")
	scale := flag.Int("scale", 2, "window pixels per scene pixel")
	flag.Parse()

	wireframe.SetLogger(slog.Default())

	s, err := testcases.Lookup(*sceneID)
	if err != nil {
		log.Fatalf("wireview: %v", err)
	}
	if *scale < 1 {
		*scale = 1
	}

	fb := newFramebuffer(s.Width, s.Height)
	fb.fill(background)
	wireframe.DrawLines(wireframe.NewDeviceSurface(fb), s.Edges(), lineColor)
	tinyfont.WriteLine(fb, &proggy.TinySZ8pt7b, 2, 10, *sceneID, textColor)

	g := &viewer{fb: fb}
	ebiten.SetWindowTitle("wireview: " + *sceneID)
	ebiten.SetWindowSize(s.Width*(*scale), s.Height*(*scale))
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("wireview: %v", err)
	}
}

// framebuffer is an in-memory drivers.Displayer.
type framebuffer struct {
	img *image.RGBA
}

func newFramebuffer(width, height int) *framebuffer {
	return &framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (fb *framebuffer) Size() (x, y int16) {
	b := fb.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (fb *framebuffer) SetPixel(x, y int16, c color.RGBA) {
	fb.img.SetRGBA(int(x), int(y), c)
}

func (fb *framebuffer) Display() error {
	return nil
}

func (fb *framebuffer) fill(c color.RGBA) {
	for i := 0; i < len(fb.img.Pix); i += 4 {
		fb.img.Pix[i+0] = c.R
		fb.img.Pix[i+1] = c.G
		fb.img.Pix[i+2] = c.B
		fb.img.Pix[i+3] = c.A
	}
}

type viewer struct {
	fb    *framebuffer
	fbImg *ebiten.Image
}

func (v *viewer) Update() error {
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.fbImg == nil {
		b := v.fb.img.Bounds()
		v.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
		v.fbImg.WritePixels(v.fb.img.Pix)
	}
	screen.DrawImage(v.fbImg, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := v.fb.img.Bounds()
	return b.Dx(), b.Dy()
}
