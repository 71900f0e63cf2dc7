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

// Package wireframe generates 3D wireframe geometry and draws it with an
// integer line algorithm.
//
// Shape generators append edges to an [EdgeList]: each consecutive pair of
// homogeneous points is one line segment. Curved surfaces are sampled into a
// [PointCloud] first, which is turned into edges by an explicit conversion.
// [DrawLines] rasterises an EdgeList onto any [Plotter], for example an
// [image.RGBA].
//
// All coordinates are used as given. Nothing in this package validates
// radii, step sizes or dimensions; degenerate arguments produce degenerate
// (or no) geometry.
package wireframe

import "github.com/go-gl/mathgl/mgl64"

// Point is a homogeneous point (x, y, z, w).
// All points created by this package have w = 1. The w component is carried
// along for transform matrices applied outside this package and is never
// modified here.
type Point = mgl64.Vec4

// NewPoint returns the homogeneous point (x, y, z, 1).
func NewPoint(x, y, z float64) Point {
	return Point{x, y, z, 1}
}
