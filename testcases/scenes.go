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

package testcases

import "seehuhn.de/go/wireframe"

var boxScenes = []Scene{
	{
		Name:   "cube",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddBox(10, 50, 0, 40, 40, 40)
		},
	},
	{
		Name:   "flat",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddBox(5, 40, 0, 54, 10, 0) // zero depth, front and back coincide
		},
	},
	{
		Name:   "mirrored",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddBox(50, 10, 0, -40, -40, 10) // negative width and height
		},
	},
	{
		Name:   "nested",
		Width:  128,
		Height: 128,
		Build: func(e *wireframe.EdgeList) {
			for i := range 5 {
				d := float64(10 * i)
				e.AddBox(10+d, 118-d, 0, 108-2*d, 108-2*d, 0)
			}
		},
	},
}

var sphereScenes = []Scene{
	{
		Name:   "coarse",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddSphere(32, 32, 0, 25, 0.125)
		},
	},
	{
		Name:   "fine",
		Width:  128,
		Height: 128,
		Build: func(e *wireframe.EdgeList) {
			e.AddSphere(64, 64, 0, 50, 0.02)
		},
	},
	{
		Name:   "uneven_step",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddSphere(32, 32, 0, 25, 0.3) // 0.3 does not divide 1
		},
	},
}

var torusScenes = []Scene{
	{
		Name:   "ring",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddTorus(32, 32, 0, 6, 20, 0.05)
		},
	},
	{
		Name:   "fat",
		Width:  128,
		Height: 128,
		Build: func(e *wireframe.EdgeList) {
			e.AddTorus(64, 64, 0, 25, 30, 0.02)
		},
	},
}

var circleScenes = []Scene{
	{
		Name:   "square",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddCircle(32, 32, 0, 25, 4)
		},
	},
	{
		Name:   "smooth",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddCircle(32, 32, 0, 25, 100)
		},
	},
	{
		Name:   "concentric",
		Width:  128,
		Height: 128,
		Build: func(e *wireframe.EdgeList) {
			for r := 5.0; r < 64; r += 8 {
				e.AddCircle(64, 64, 0, r, 64)
			}
		},
	},
}

var curveScenes = []Scene{
	{
		Name:   "hermite",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddCurve(10, 50, 54, 50, 0, -60, 0, 60, 50, wireframe.Hermite)
		},
	},
	{
		Name:   "bezier",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddCurve(10, 50, 20, 10, 44, 10, 54, 50, 50, wireframe.Bezier)
		},
	},
	{
		Name:   "bezier_scurve",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddCurve(10, 50, 10, 10, 54, 54, 54, 14, 50, wireframe.Bezier)
		},
	},
	{
		Name:   "bezier_loop",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddCurve(10, 32, 60, 5, 4, 59, 54, 32, 100, wireframe.Bezier)
		},
	},
	{
		Name:   "few_segments",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			e.AddCurve(10, 50, 20, 10, 44, 10, 54, 50, 3, wireframe.Bezier)
		},
	},
}

var lineScenes = []Scene{
	{
		Name:   "octants",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			// 16 spokes through all octants, including the axis and
			// diagonal directions
			ends := [][2]float64{
				{62, 32}, {62, 20}, {62, 2}, {50, 2},
				{32, 2}, {14, 2}, {2, 2}, {2, 20},
				{2, 32}, {2, 44}, {2, 62}, {14, 62},
				{32, 62}, {50, 62}, {62, 62}, {62, 44},
			}
			for _, p := range ends {
				e.AddEdge(32, 32, 0, p[0], p[1], 0)
			}
		},
	},
	{
		Name:   "reversed",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			// same spokes, drawn towards the centre
			ends := [][2]float64{
				{62, 32}, {62, 20}, {62, 2}, {50, 2},
				{32, 2}, {14, 2}, {2, 2}, {2, 20},
				{2, 32}, {2, 44}, {2, 62}, {14, 62},
				{32, 62}, {50, 62}, {62, 62}, {62, 44},
			}
			for _, p := range ends {
				e.AddEdge(p[0], p[1], 0, 32, 32, 0)
			}
		},
	},
	{
		Name:   "fractional",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			// coordinates are truncated before drawing
			e.AddEdge(2.9, 2.9, 0, 61.9, 30.5, 0)
			e.AddEdge(2.1, 61.99, 0, 30.5, 2.5, 0)
		},
	},
	{
		Name:   "points",
		Width:  64,
		Height: 64,
		Build: func(e *wireframe.EdgeList) {
			for i := range 8 {
				x := float64(4 + 8*i)
				e.AddEdge(x, x, 0, x, x, 0)
			}
			e.AddPoint2D(60, 4) // unpaired, not drawn
		},
	},
}

var complexScenes = []Scene{
	{
		Name:   "mixed",
		Width:  256,
		Height: 256,
		Build: func(e *wireframe.EdgeList) {
			e.AddBox(10, 110, 0, 100, 100, 100)
			e.AddBox(150, 60, 0, 40, 50, 20)
			e.AddSphere(190, 190, 0, 50, 0.05)
			e.AddTorus(70, 190, 0, 10, 40, 0.05)
			e.AddCircle(190, 60, 0, 20, 40)
			e.AddCurve(10, 245, 245, 245, 0, -300, 0, 300, 60, wireframe.Hermite)
			e.AddCurve(120, 10, 160, 120, 200, 5, 245, 120, 60, wireframe.Bezier)
		},
	},
}
