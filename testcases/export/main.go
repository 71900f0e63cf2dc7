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

// Export writes the geometry of all scenes to testdata/scenes.json, so that
// other implementations can be checked against the same input.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/wireframe"
	"seehuhn.de/go/wireframe/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, s))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name   string         `json:"name"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Edges  [][2][]float64 `json:"edges"`
}

func toJSON(category string, s testcases.Scene) jsonScene {
	js := jsonScene{
		Name:   category + "_" + s.Name,
		Width:  s.Width,
		Height: s.Height,
		Edges:  [][2][]float64{},
	}
	for start, end := range s.Edges().Edges() {
		js.Edges = append(js.Edges, [2][]float64{xyz(start), xyz(end)})
	}
	return js
}

func xyz(p wireframe.Point) []float64 {
	return []float64{p.X(), p.Y(), p.Z()}
}
