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

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

// recorder is a Plotter which remembers the order of all Set calls.
type recorder struct {
	pix []image.Point
}

func (r *recorder) Set(x, y int, _ color.Color) {
	r.pix = append(r.pix, image.Pt(x, y))
}

func pts(xy ...int) []image.Point {
	res := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, image.Pt(xy[i], xy[i+1]))
	}
	return res
}

func TestDrawLineExact(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{"horizontal", 0, 0, 5, 0, pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0)},
		{"vertical", 0, 0, 0, 5, pts(0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5)},
		{"vertical_up", 0, 5, 0, 0, pts(0, 5, 0, 4, 0, 3, 0, 2, 0, 1, 0, 0)},
		{"diagonal", 0, 0, 5, 5, pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5)},
		{"anti_diagonal", 0, 0, 5, -5, pts(0, 0, 1, -1, 2, -2, 3, -3, 4, -4, 5, -5)},
		{"octant_1", 0, 0, 5, 2, pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2)},
		{"octant_8", 0, 0, 5, -2, pts(0, 0, 1, 0, 2, -1, 3, -1, 4, -2, 5, -2)},
		{"octant_2", 0, 0, 1, 5, pts(0, 0, 0, 1, 0, 2, 1, 3, 1, 4, 1, 5)},
		{"octant_7", 0, 0, 1, -5, pts(0, 0, 0, -1, 0, -2, 1, -3, 1, -4, 1, -5)},
		{"right_to_left", 5, 0, 0, 0, pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0)},
		{"point", 3, 4, 3, 4, pts(3, 4)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &recorder{}
			DrawLine(r, c.x0, c.y0, c.x1, c.y1, color.White)
			if !slices.Equal(r.pix, c.want) {
				t.Errorf("got %v, want %v", r.pix, c.want)
			}
		})
	}
}

// TestDrawLineConnected checks all lines between points of a small grid.
func TestDrawLineConnected(t *testing.T) {
	const n = 6
	for x0 := -n; x0 <= n; x0++ {
		for y0 := -n; y0 <= n; y0++ {
			for x1 := -n; x1 <= n; x1++ {
				for y1 := -n; y1 <= n; y1++ {
					checkLine(t, x0, y0, x1, y1)
				}
			}
		}
	}
}

func checkLine(t *testing.T, x0, y0, x1, y1 int) {
	t.Helper()

	r := &recorder{}
	DrawLine(r, x0, y0, x1, y1, color.White)

	// lines are always drawn from left to right
	start, end := image.Pt(x0, y0), image.Pt(x1, y1)
	if x0 > x1 {
		start, end = end, start
	}

	wantLen := max(abs(x1-x0), abs(y1-y0)) + 1
	if len(r.pix) != wantLen {
		t.Fatalf("(%d,%d)-(%d,%d): %d pixels, want %d",
			x0, y0, x1, y1, len(r.pix), wantLen)
	}
	if r.pix[0] != start || r.pix[len(r.pix)-1] != end {
		t.Fatalf("(%d,%d)-(%d,%d): path runs from %v to %v",
			x0, y0, x1, y1, r.pix[0], r.pix[len(r.pix)-1])
	}
	for i := 1; i < len(r.pix); i++ {
		d := r.pix[i].Sub(r.pix[i-1])
		if abs(d.X) > 1 || abs(d.Y) > 1 || d == (image.Point{}) {
			t.Fatalf("(%d,%d)-(%d,%d): step %v -> %v",
				x0, y0, x1, y1, r.pix[i-1], r.pix[i])
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		x1, y1 int
		want   octant
	}{
		{5, 2, shallowUp},
		{5, 5, shallowUp},
		{5, 0, shallowDown},
		{5, -2, shallowDown},
		{5, -5, shallowDown},
		{0, 0, shallowDown},
		{2, 5, steepUp},
		{0, 5, steepUp},
		{2, -5, steepDown},
		{0, -5, steepDown},
	}
	for _, c := range cases {
		got := classify(0, 0, c.x1, c.y1)
		if got != c.want {
			t.Errorf("classify(0, 0, %d, %d) = %v, want %v", c.x1, c.y1, got, c.want)
		}
	}
}

// TestOctantCasesOmitEndPoint checks the per-octant functions in isolation:
// each one sets every pixel except for the final end point.
func TestOctantCasesOmitEndPoint(t *testing.T) {
	cases := []struct {
		name string
		draw func(Plotter, int, int, int, int, color.Color)
		x1   int
		y1   int
		want []image.Point
	}{
		{"shallow_up", drawShallowUp, 4, 1, pts(0, 0, 1, 0, 2, 0, 3, 1)},
		{"shallow_down", drawShallowDown, 4, -1, pts(0, 0, 1, 0, 2, 0, 3, -1)},
		{"steep_up", drawSteepUp, 1, 4, pts(0, 0, 0, 1, 0, 2, 1, 3)},
		{"steep_down", drawSteepDown, 1, -4, pts(0, 0, 0, -1, 0, -2, 1, -3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &recorder{}
			c.draw(r, 0, 0, c.x1, c.y1, color.White)
			if !slices.Equal(r.pix, c.want) {
				t.Errorf("got %v, want %v", r.pix, c.want)
			}
		})
	}
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return buf
}

func TestDrawLinesTooFewPoints(t *testing.T) {
	for _, n := range []int{0, 1} {
		buf := captureLog(t)

		e := &EdgeList{}
		for i := range n {
			e.AddPoint(float64(i), 0, 0)
		}
		r := &recorder{}
		DrawLines(r, e, color.White)

		if len(r.pix) != 0 {
			t.Errorf("%d points: %d pixels drawn", n, len(r.pix))
		}
		out := buf.String()
		if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "need at least 2 points") {
			t.Errorf("%d points: missing warning, log is %q", n, out)
		}
	}
}

func TestDrawLinesPairs(t *testing.T) {
	buf := captureLog(t)

	e := &EdgeList{}
	e.AddEdge(0, 0, 0, 2, 0, 0)
	e.AddEdge(0, 5, 7, 0, 6, -3)
	e.AddPoint(9, 9, 0) // unpaired

	r := &recorder{}
	DrawLines(r, e, color.White)

	want := pts(0, 0, 1, 0, 2, 0, 0, 5, 0, 6)
	if !slices.Equal(r.pix, want) {
		t.Errorf("got %v, want %v", r.pix, want)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

func TestDrawLinesTruncates(t *testing.T) {
	e := &EdgeList{}
	e.AddEdge(1.9, 2.99, 0, 3.5, 2.01, 0)
	e.AddEdge(-0.7, 0.7, 0, -0.2, 0.2, 0)

	r := &recorder{}
	DrawLines(r, e, color.White)

	want := pts(1, 2, 2, 2, 3, 2, 0, 0)
	if !slices.Equal(r.pix, want) {
		t.Errorf("got %v, want %v", r.pix, want)
	}
}

func TestDrawLinesImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	e := &EdgeList{}
	e.AddBox(1, 6, 0, 5, 5, 0)

	red := color.RGBA{R: 255, A: 255}
	DrawLines(img, e, red)

	for y := range 8 {
		for x := range 8 {
			onBorder := (x == 1 || x == 6) && y >= 1 && y <= 6 ||
				(y == 1 || y == 6) && x >= 1 && x <= 6
			got := img.RGBAAt(x, y)
			if onBorder && got != red {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, red)
			} else if !onBorder && got != (color.RGBA{}) {
				t.Errorf("pixel (%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}
}
