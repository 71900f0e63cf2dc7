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
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

// DeviceSurface makes a display driver usable as a [Plotter].
// Pixels outside the display, as reported by Size, are dropped.
// The caller is responsible for calling Display on the underlying driver
// once drawing is complete.
type DeviceSurface struct {
	D drivers.Displayer
}

// NewDeviceSurface returns a Plotter which draws onto d.
func NewDeviceSurface(d drivers.Displayer) *DeviceSurface {
	return &DeviceSurface{D: d}
}

// Set implements the [Plotter] interface.
func (s *DeviceSurface) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x > math.MaxInt16 || y > math.MaxInt16 {
		return
	}
	w, h := s.D.Size()
	if x >= int(w) || y >= int(h) {
		return
	}
	s.D.SetPixel(int16(x), int16(y), color.RGBAModel.Convert(c).(color.RGBA))
}
