// Copyright 2026 The Planetaria Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package coords

import (
	"fmt"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/planetaria/planetaria/precision"
)

// Mesh is an immutable triangle mesh inscribed in the unit sphere. Faces are
// wound counter-clockwise when seen from outside the sphere.
type Mesh struct {
	Vertices []s2.Point
	Faces    [][3]int
}

// NumFaces returns the number of triangles in the mesh.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// Triangle returns the three vertices of face i.
func (m *Mesh) Triangle(i int) (a, b, c s2.Point) {
	f := m.Faces[i]
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

var (
	octahedronOnce sync.Once
	octahedron     *Mesh
)

// Octahedron returns the canonical octahedron whose vertices are the six
// coordinate axes. Face i covers the octant numbered i, where bit 0 is set
// for x < 0, bit 1 for y < 0 and bit 2 for z < 0.
//
// The mesh is built on first use and must not be modified by callers.
func Octahedron() *Mesh {
	octahedronOnce.Do(func() {
		octahedron = buildOctahedron()
	})
	return octahedron
}

func buildOctahedron() *Mesh {
	axes := []r3.Vector{
		{X: 1}, {Y: 1}, {Z: 1},
		{X: -1}, {Y: -1}, {Z: -1},
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(axes, true, true, precision.MinAngle)
	if len(ch.Indices) != 8*3 {
		panic(fmt.Sprintf("coords: octahedron hull has %d indices, want 24", len(ch.Indices)))
	}

	m := &Mesh{
		Vertices: make([]s2.Point, len(axes)),
		Faces:    make([][3]int, 8),
	}
	for i, v := range axes {
		m.Vertices[i] = s2.Point{Vector: v}
	}
	for i := 0; i < len(ch.Indices); i += 3 {
		f := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		p0, p1, p2 := axes[f[0]], axes[f[1]], axes[f[2]]
		if p1.Sub(p0).Cross(p2.Sub(p0)).Dot(p0) < 0 {
			f[1], f[2] = f[2], f[1]
		}
		m.Faces[octant(p0.Add(p1).Add(p2))] = f
	}
	return m
}
