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

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"seehuhn.de/go/wireframe"
)

// Scene defines a single drawing test.
type Scene struct {
	Name   string                      // lowercase a-z, 0-9 and _ only
	Width  int                         // canvas width in pixels
	Height int                         // canvas height in pixels
	Build  func(e *wireframe.EdgeList) // appends the geometry of the scene
}

// Edges returns a new edge list with the geometry of the scene.
func (s Scene) Edges() *wireframe.EdgeList {
	e := &wireframe.EdgeList{}
	s.Build(e)
	return e
}

// IDs returns the identifiers "category_name" of all scenes, in sorted
// order.
func IDs() []string {
	var ids []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			ids = append(ids, category+"_"+s.Name)
		}
	}
	return ids
}

// Lookup returns the scene with the given identifier "category_name".
func Lookup(id string) (Scene, error) {
	for category, scenes := range All {
		name, ok := strings.CutPrefix(id, category+"_")
		if !ok {
			continue
		}
		for _, s := range scenes {
			if s.Name == name {
				return s, nil
			}
		}
	}
	return Scene{}, fmt.Errorf("unknown scene %q (available: %s)",
		id, strings.Join(IDs(), ", "))
}
