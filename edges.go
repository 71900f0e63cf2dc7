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
	"iter"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// dashLength is the x-extent of the edge drawn for every point of a
// PointCloud.
const dashLength = 1

// EdgeList is an ordered sequence of points which are read two at a time.
// Points 2i and 2i+1 form the start and end of edge i. If the number of
// points is odd, the last point does not belong to any edge.
//
// The zero value is an empty list, ready to use.
// An EdgeList is not safe for concurrent use.
type EdgeList struct {
	pts []Point
}

// AddPoint appends the single point (x, y, z, 1).
// Use AddEdge to append complete edges.
func (e *EdgeList) AddPoint(x, y, z float64) {
	e.pts = append(e.pts, NewPoint(x, y, z))
}

// AddPoint2D appends the point (x, y, 0, 1).
func (e *EdgeList) AddPoint2D(x, y float64) {
	e.AddPoint(x, y, 0)
}

// AddEdge appends the edge from (x0, y0, z0) to (x1, y1, z1).
func (e *EdgeList) AddEdge(x0, y0, z0, x1, y1, z1 float64) {
	e.AddPoint(x0, y0, z0)
	e.AddPoint(x1, y1, z1)
}

// Append adds all points of other to e.
func (e *EdgeList) Append(other *EdgeList) {
	e.pts = append(e.pts, other.pts...)
}

// Len returns the number of points in the list.
func (e *EdgeList) Len() int {
	return len(e.pts)
}

// NumEdges returns the number of complete edges in the list.
func (e *EdgeList) NumEdges() int {
	return len(e.pts) / 2
}

// Points returns the points of the list.
// The returned slice is only valid until the next modification of e.
func (e *EdgeList) Points() []Point {
	return e.pts
}

// Reset removes all points but keeps the allocated storage.
func (e *EdgeList) Reset() {
	e.pts = e.pts[:0]
}

// Edges iterates over the start and end points of all complete edges.
func (e *EdgeList) Edges() iter.Seq2[Point, Point] {
	return func(yield func(Point, Point) bool) {
		for i := 0; i+1 < len(e.pts); i += 2 {
			if !yield(e.pts[i], e.pts[i+1]) {
				return
			}
		}
	}
}

// Bounds returns the smallest rectangle which contains the x and y
// coordinates of all points in the list, including a trailing unpaired
// point. The z coordinates are ignored. For an empty list the zero rectangle
// is returned.
func (e *EdgeList) Bounds() rect.Rect {
	if len(e.pts) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: e.pts[0].X(),
		LLy: e.pts[0].Y(),
		URx: e.pts[0].X(),
		URy: e.pts[0].Y(),
	}
	for _, p := range e.pts[1:] {
		b.LLx = min(b.LLx, p.X())
		b.LLy = min(b.LLy, p.Y())
		b.URx = max(b.URx, p.X())
		b.URy = max(b.URy, p.Y())
	}
	return b
}

// Path converts the edge list into a path with one open subpath per edge.
// Only the x and y coordinates are used.
func (e *EdgeList) Path() *path.Data {
	p := &path.Data{}
	for start, end := range e.Edges() {
		p = p.MoveTo(vec.Vec2{X: start.X(), Y: start.Y()}).
			LineTo(vec.Vec2{X: end.X(), Y: end.Y()})
	}
	return p
}

// PointCloud is an ordered sequence of surface points which are not joined
// into edges. Use [PointCloud.Dashes] or [PointCloud.AppendDashes] to turn
// the points into drawable edges.
//
// The zero value is an empty cloud, ready to use.
type PointCloud struct {
	pts []Point
}

// Add appends the point (x, y, z, 1).
func (c *PointCloud) Add(x, y, z float64) {
	c.pts = append(c.pts, NewPoint(x, y, z))
}

// Len returns the number of points in the cloud.
func (c *PointCloud) Len() int {
	return len(c.pts)
}

// Points returns the points of the cloud.
// The returned slice is only valid until the next modification of c.
func (c *PointCloud) Points() []Point {
	return c.pts
}

// AppendDashes adds one short horizontal edge per point to e.
// The edge for point p runs from p to p + (1, 0, 0), so that after
// rasterisation every point shows up as a two pixel dash. This is how
// spheres and tori are drawn: as a field of dashes, not as a connected mesh.
func (c *PointCloud) AppendDashes(e *EdgeList) {
	e.pts = slices.Grow(e.pts, 2*len(c.pts))
	for _, p := range c.pts {
		x, y, z := p.X(), p.Y(), p.Z()
		e.AddEdge(x, y, z, x+dashLength, y, z)
	}
}

// Dashes returns a new EdgeList containing the dashes for all points.
// See [PointCloud.AppendDashes].
func (c *PointCloud) Dashes() *EdgeList {
	e := &EdgeList{}
	c.AppendDashes(e)
	return e
}
