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
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"

	"github.com/planetaria/planetaria/precision"
)

// Octahedral is the octahedral square encoding of a direction: the sphere is
// projected onto the octahedron |x|+|y|+|z| = 1 and the lower half is folded
// over the corners of the upper half, giving a single [0, 1)² texture.
type Octahedral struct {
	UV r2.Point
}

// OctahedralFromPoint encodes p.
func OctahedralFromPoint(p s2.Point) Octahedral {
	l1 := math.Abs(p.X) + math.Abs(p.Y) + math.Abs(p.Z)
	x, y := p.X/l1, p.Y/l1
	if p.Z < 0 {
		x, y = (1-math.Abs(y))*signNotZero(x), (1-math.Abs(x))*signNotZero(y)
	}
	return Octahedral{UV: r2.Point{X: nudge(0.5*x + 0.5), Y: nudge(0.5*y + 0.5)}}
}

// PointFromOctahedral decodes o.
func PointFromOctahedral(o Octahedral) s2.Point {
	x := 2*nudge(o.UV.X) - 1
	y := 2*nudge(o.UV.Y) - 1
	z := 1 - math.Abs(x) - math.Abs(y)
	if z < 0 {
		x, y = (1-math.Abs(y))*signNotZero(x), (1-math.Abs(x))*signNotZero(y)
	}
	return s2.Point{Vector: r3.Vector{X: x, Y: y, Z: z}.Normalize()}
}

func signNotZero(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// OctahedronUV addresses a point by a face of the canonical octahedron mesh
// and barycentric coordinates (UV.X weights the face's second vertex, UV.Y
// its third) of the gnomonic projection of the point onto that face.
type OctahedronUV struct {
	Face int
	UV   r2.Point
}

// OctahedronUVFromPoint returns the face of Octahedron() that p projects onto
// together with the barycentric coordinates of the projection.
func OctahedronUVFromPoint(p s2.Point) OctahedronUV {
	mesh := Octahedron()
	face := octant(p.Vector)
	a, b, c := mesh.Triangle(face)

	wa := p.Dot(b.Cross(c.Vector))
	wb := p.Dot(c.Cross(a.Vector))
	wc := p.Dot(a.Cross(b.Vector))
	sum := wa + wb + wc
	if precision.ApproxZero(sum) {
		return OctahedronUV{Face: face}
	}
	return OctahedronUV{Face: face, UV: r2.Point{X: wb / sum, Y: wc / sum}}
}

// PointFromOctahedronUV maps o back onto the sphere.
func PointFromOctahedronUV(o OctahedronUV) s2.Point {
	a, b, c := Octahedron().Triangle(precision.Wrap(o.Face, 8))
	wa := 1 - o.UV.X - o.UV.Y
	v := a.Mul(wa).Add(b.Mul(o.UV.X)).Add(c.Mul(o.UV.Y))
	return s2.Point{Vector: v.Normalize()}
}

// octant numbers the eight sign combinations of v: bit 0 is set for x < 0,
// bit 1 for y < 0 and bit 2 for z < 0.
func octant(v r3.Vector) int {
	o := 0
	if v.X < 0 {
		o |= 1
	}
	if v.Y < 0 {
		o |= 2
	}
	if v.Z < 0 {
		o |= 4
	}
	return o
}
