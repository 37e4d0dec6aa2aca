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

// Cube is a position on one face of the unit cube circumscribing the sphere.
// Faces are numbered as in S2: 0..5 are +X, +Y, +Z, -X, -Y, -Z. UV holds the
// face-local texture coordinates in [0, 1), after the quadratic transform that
// keeps texel areas roughly uniform.
type Cube struct {
	Face int
	UV   r2.Point
}

// CubeFromPoint projects p onto the cube face it points at.
func CubeFromPoint(p s2.Point) Cube {
	face := faceOf(p.Vector)
	u, v := faceXYZToUV(face, p.Vector)
	return Cube{
		Face: face,
		UV:   r2.Point{X: nudge(uvToST(u)), Y: nudge(uvToST(v))},
	}
}

// PointFromCube returns the unit vector for c.
func PointFromCube(c Cube) s2.Point {
	face := precision.Wrap(c.Face, 6)
	u := stToUV(nudge(c.UV.X))
	v := stToUV(nudge(c.UV.Y))
	return s2.Point{Vector: faceUVToXYZ(face, u, v).Normalize()}
}

// PointsFromCubes converts a batch of cube coordinates. The ST to UV
// transform runs through the vectorised kernel.
func PointsFromCubes(cs []Cube) []s2.Point {
	n := len(cs)
	s := make([]float64, 2*n)
	for i, c := range cs {
		s[i] = nudge(c.UV.X)
		s[n+i] = nudge(c.UV.Y)
	}
	uv := make([]float64, 2*n)
	BaseSTtoUVBatch(s, uv)

	out := make([]s2.Point, n)
	for i, c := range cs {
		out[i] = s2.Point{Vector: faceUVToXYZ(precision.Wrap(c.Face, 6), uv[i], uv[n+i]).Normalize()}
	}
	return out
}

func faceOf(v r3.Vector) int {
	face := int(v.LargestComponent())
	var c float64
	switch face {
	case 0:
		c = v.X
	case 1:
		c = v.Y
	default:
		c = v.Z
	}
	if c < 0 {
		face += 3
	}
	return face
}

func faceXYZToUV(face int, v r3.Vector) (u, w float64) {
	switch face {
	case 0:
		return v.Y / v.X, v.Z / v.X
	case 1:
		return -v.X / v.Y, v.Z / v.Y
	case 2:
		return -v.X / v.Z, -v.Y / v.Z
	case 3:
		return v.Z / v.X, v.Y / v.X
	case 4:
		return v.Z / v.Y, -v.X / v.Y
	}
	return -v.Y / v.Z, -v.X / v.Z
}

func faceUVToXYZ(face int, u, v float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: 1, Y: u, Z: v}
	case 1:
		return r3.Vector{X: -u, Y: 1, Z: v}
	case 2:
		return r3.Vector{X: -u, Y: -v, Z: 1}
	case 3:
		return r3.Vector{X: -1, Y: -v, Z: -u}
	case 4:
		return r3.Vector{X: v, Y: -1, Z: -u}
	}
	return r3.Vector{X: v, Y: u, Z: -1}
}

// stToUV is the scalar form of BaseSTtoUVBatch.
func stToUV(s float64) float64 {
	if s >= 0.5 {
		return (1 / 3.) * (4*s*s - 1)
	}
	return (1 / 3.) * (1 - 4*(1-s)*(1-s))
}

func uvToST(u float64) float64 {
	if u >= 0 {
		return 0.5 * math.Sqrt(1+3*u)
	}
	return 1 - 0.5*math.Sqrt(1-3*u)
}

// nudge clamps x into [0, 1] and moves the exact seams 0 and 1 inwards so that
// texture lookups never sample the neighbouring face.
func nudge(x float64) float64 {
	x = precision.Clamp(x, 0, 1)
	switch x {
	case 0:
		return precision.MinAngle
	case 1:
		return 1 - precision.MinAngle
	}
	return x
}
