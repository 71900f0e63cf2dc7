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
	"math"
	"slices"
)

// AddBox appends the 12 edges of a rectangular box.
//
// The corner (x, y, z) is the left-top-front corner of the box. The box
// extends to x+width, y-height and z-depth. Negative dimensions give the
// mirrored box.
func (e *EdgeList) AddBox(x, y, z, width, height, depth float64) {
	x1 := x + width
	y1 := y - height
	z1 := z - depth

	e.pts = slices.Grow(e.pts, 24)

	// front face
	e.AddEdge(x, y, z, x1, y, z)
	e.AddEdge(x, y, z, x, y1, z)
	e.AddEdge(x1, y, z, x1, y1, z)
	e.AddEdge(x, y1, z, x1, y1, z)

	// front to back
	e.AddEdge(x, y, z, x, y, z1)
	e.AddEdge(x1, y, z, x1, y, z1)
	e.AddEdge(x, y1, z, x, y1, z1)
	e.AddEdge(x1, y1, z, x1, y1, z1)

	// back face
	e.AddEdge(x, y, z1, x1, y, z1)
	e.AddEdge(x, y, z1, x, y1, z1)
	e.AddEdge(x1, y1, z1, x, y1, z1)
	e.AddEdge(x1, y1, z1, x1, y, z1)
}

// GenerateSphere samples the surface of the sphere with centre (cx, cy, cz)
// and radius r.
//
// The rotation parameter (outer loop) and the half circle parameter (inner
// loop) both run from 0 while they are <= 1, in increments of step. Both
// ends are included when step divides 1 exactly; otherwise the last sample
// falls short of 1. With step = 1 the result has four points.
//
// The loops do not terminate if step <= 0.
func GenerateSphere(cx, cy, cz, r, step float64) *PointCloud {
	c := &PointCloud{}
	for rot := 0.0; rot <= 1; rot += step {
		sinRot, cosRot := math.Sincos(2 * math.Pi * rot)
		for cir := 0.0; cir <= 1; cir += step {
			sinCir, cosCir := math.Sincos(math.Pi * cir)
			c.Add(
				r*cosCir+cx,
				r*sinCir*cosRot+cy,
				r*sinCir*sinRot+cz,
			)
		}
	}
	return c
}

// AddSphere appends the dashes for the points of GenerateSphere.
func (e *EdgeList) AddSphere(cx, cy, cz, r, step float64) {
	GenerateSphere(cx, cy, cz, r, step).AppendDashes(e)
}

// GenerateTorus samples the surface of a torus with centre (cx, cy, cz).
// The radius of the tube is r0, and r1 is the distance from the centre of
// the torus to the centre of the tube. The torus lies in the x-z plane.
//
// The loop structure is the same as for [GenerateSphere].
func GenerateTorus(cx, cy, cz, r0, r1, step float64) *PointCloud {
	c := &PointCloud{}
	for phi := 0.0; phi <= 1; phi += step {
		sinPhi, cosPhi := math.Sincos(2 * math.Pi * phi)
		for theta := 0.0; theta <= 1; theta += step {
			sinTheta, cosTheta := math.Sincos(2 * math.Pi * theta)
			ring := r0*cosTheta + r1
			c.Add(
				cosPhi*ring+cx,
				r0*sinTheta+cy,
				-sinPhi*ring+cz,
			)
		}
	}
	return c
}

// AddTorus appends the dashes for the points of GenerateTorus.
func (e *EdgeList) AddTorus(cx, cy, cz, r0, r1, step float64) {
	GenerateTorus(cx, cy, cz, r0, r1, step).AppendDashes(e)
}

// AddCircle appends a circle with centre (cx, cy, cz) and radius r in the
// plane z = cz, approximated by steps edges. The first edge starts at
// (cx+r, cy). Nothing is added if steps < 1.
func (e *EdgeList) AddCircle(cx, cy, cz, r float64, steps int) {
	x0 := cx + r
	y0 := cy
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		sin, cos := math.Sincos(2 * math.Pi * t)
		x1 := r*cos + cx
		y1 := r*sin + cy
		e.AddEdge(x0, y0, cz, x1, y1, cz)
		x0, y0 = x1, y1
	}
}

// AddCurve appends a cubic curve in the plane z = 0, approximated by steps
// edges. The meaning of the four control points depends on typ, see
// [CurveType]. The curve starts at (x0, y0).
func (e *EdgeList) AddCurve(x0, y0, x1, y1, x2, y2, x3, y3 float64, steps int, typ CurveType) {
	xc := CurveCoefficients(x0, x1, x2, x3, typ)
	yc := CurveCoefficients(y0, y1, y2, y3, typ)

	prevX, prevY := x0, y0
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := xc.Eval(t)
		y := yc.Eval(t)
		e.AddEdge(prevX, prevY, 0, x, y, 0)
		prevX, prevY = x, y
	}
}
