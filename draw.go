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

package wireframe

import "image/color"

// Plotter is a pixel surface which can set individual pixels.
// Every [draw.Image], for example [image.RGBA], is a Plotter.
//
// The line drawing functions do not clip; a Plotter must ignore (or
// otherwise handle) coordinates outside its area.
type Plotter interface {
	Set(x, y int, c color.Color)
}

// octant identifies one of the four cases of the line algorithm.
// Lines are always drawn with x0 <= x1, so the other four octants do
// not occur.
type octant int

const (
	shallowUp   octant = iota // octant 1: |dy| <= dx, dy > 0
	shallowDown               // octant 8: |dy| <= dx, dy <= 0
	steepUp                   // octant 2: |dy| > dx, dy > 0
	steepDown                 // octant 7: |dy| > dx, dy < 0
)

func (o octant) String() string {
	switch o {
	case shallowUp:
		return "octant 1"
	case shallowDown:
		return "octant 8"
	case steepUp:
		return "octant 2"
	case steepDown:
		return "octant 7"
	default:
		return "invalid octant"
	}
}

// classify returns the octant of the line from (x0, y0) to (x1, y1).
// The caller must ensure x0 <= x1.
func classify(x0, y0, x1, y1 int) octant {
	dx := x1 - x0
	dy := y1 - y0
	if dx >= abs(dy) {
		if dy > 0 {
			return shallowUp
		}
		return shallowDown
	}
	if dy > 0 {
		return steepUp
	}
	return steepDown
}

// DrawLine draws the line from (x0, y0) to (x1, y1) using the midpoint
// (Bresenham) algorithm. Every pixel of the line is set exactly once,
// both end points included, and consecutive pixels are 8-connected.
// A line with identical end points sets a single pixel.
func DrawLine(dst Plotter, x0, y0, x1, y1 int, c color.Color) {
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	switch classify(x0, y0, x1, y1) {
	case shallowUp:
		drawShallowUp(dst, x0, y0, x1, y1, c)
	case shallowDown:
		drawShallowDown(dst, x0, y0, x1, y1, c)
	case steepUp:
		drawSteepUp(dst, x0, y0, x1, y1, c)
	case steepDown:
		drawSteepDown(dst, x0, y0, x1, y1, c)
	}
	dst.Set(x1, y1, c)
}

// The four functions below set all pixels of the line except for the end
// point (x1, y1). With a = 2·dy and b = -2·dx, the decision variable d
// tracks the signed distance of the next midpoint from the line, scaled
// to integers.

func drawShallowUp(dst Plotter, x0, y0, x1, y1 int, c color.Color) {
	a := 2 * (y1 - y0)
	b := -2 * (x1 - x0)
	d := a + b/2
	x, y := x0, y0
	for x < x1 {
		dst.Set(x, y, c)
		if d > 0 {
			y++
			d += b
		}
		x++
		d += a
	}
}

func drawShallowDown(dst Plotter, x0, y0, x1, y1 int, c color.Color) {
	a := 2 * (y1 - y0)
	b := -2 * (x1 - x0)
	d := a - b/2
	x, y := x0, y0
	for x < x1 {
		dst.Set(x, y, c)
		if d < 0 {
			y--
			d -= b
		}
		x++
		d += a
	}
}

func drawSteepUp(dst Plotter, x0, y0, x1, y1 int, c color.Color) {
	a := 2 * (y1 - y0)
	b := -2 * (x1 - x0)
	d := a/2 + b
	x, y := x0, y0
	for y < y1 {
		dst.Set(x, y, c)
		if d < 0 {
			x++
			d += a
		}
		y++
		d += b
	}
}

func drawSteepDown(dst Plotter, x0, y0, x1, y1 int, c color.Color) {
	a := 2 * (y1 - y0)
	b := -2 * (x1 - x0)
	d := a/2 - b
	x, y := x0, y0
	for y > y1 {
		dst.Set(x, y, c)
		if d > 0 {
			x++
			d += a
		}
		y--
		d -= b
	}
}

// DrawLines draws all edges of e. The coordinates of every point are
// truncated towards zero to obtain pixel positions; z and w are ignored.
// A trailing point which does not form a complete edge is skipped.
//
// If e has fewer than two points, nothing is drawn and a warning is
// written to the package logger, see [SetLogger].
func DrawLines(dst Plotter, e *EdgeList, c color.Color) {
	if e.Len() < 2 {
		Logger().Warn("need at least 2 points to draw", "points", e.Len())
		return
	}

	for start, end := range e.Edges() {
		DrawLine(dst,
			int(start.X()), int(start.Y()),
			int(end.X()), int(end.Y()),
			c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
