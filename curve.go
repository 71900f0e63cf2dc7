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

import "github.com/go-gl/mathgl/mgl64"

// CurveType selects how the four control values of a cubic curve are
// interpreted.
type CurveType int

const (
	// Hermite curves are given by the two end points P0 and P1, followed by
	// the tangent vectors R0 at P0 and R1 at P1.
	Hermite CurveType = iota

	// Bezier curves are given by the four control points P0, P1, P2, P3.
	Bezier
)

func (t CurveType) String() string {
	switch t {
	case Hermite:
		return "hermite"
	case Bezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// Basis matrices, mapping control values to polynomial coefficients.
// mgl64 matrices are stored in column-major order, so every line below
// is one column.
var (
	hermiteBasis = mgl64.Mat4{
		2, -3, 0, 1,
		-2, 3, 0, 0,
		1, -2, 1, 0,
		1, -1, 0, 0,
	}
	bezierBasis = mgl64.Mat4{
		-1, 3, -3, 1,
		3, -6, 3, 0,
		-3, 3, 0, 0,
		1, 0, 0, 0,
	}
)

// Coefficients holds the coefficients (a, b, c, d) of the cubic
// polynomial a·t³ + b·t² + c·t + d for one coordinate axis.
type Coefficients [4]float64

// Eval evaluates the polynomial at t.
func (c Coefficients) Eval(t float64) float64 {
	return t*(t*(c[0]*t+c[1])+c[2]) + c[3]
}

// CurveCoefficients converts the control values v0, v1, v2, v3 of one axis
// into polynomial coefficients. For every curve type, the resulting
// polynomial evaluates to v0 at t = 0.
//
// For an unknown curve type, the zero polynomial is returned.
func CurveCoefficients(v0, v1, v2, v3 float64, typ CurveType) Coefficients {
	var basis mgl64.Mat4
	switch typ {
	case Hermite:
		basis = hermiteBasis
	case Bezier:
		basis = bezierBasis
	default:
		return Coefficients{}
	}
	return Coefficients(basis.Mul4x1(mgl64.Vec4{v0, v1, v2, v3}))
}
