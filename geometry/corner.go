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

package geometry

import (
	"math"

	"github.com/planetaria/planetaria/precision"
)

// Corner returns the arc joining the end of left to the beginning of right.
//
// At zero extrusion a corner has no length: it only turns the normal from
// left's end normal to right's begin normal about the shared vertex. When
// the normals agree the corner is straight. When right turns away from the
// solid side the corner is convex, and extruding above the surface rounds it
// off. Otherwise it is concave, and the two neighbouring edges overlap when
// extruded above the surface.
func Corner(left, right Arc) Arc {
	vertex := left.End(0)
	nL := left.EndNormal(0).Vector
	nR := right.BeginNormal(0).Vector
	tL := left.Tangent(left.Angle())

	switch {
	case nL.Dot(nR) > 1-precision.Tolerance:
		return newArc(vertex.Vector, nL, precision.MinAngle, 0, StraightCorner)
	case nR.Dot(tL) > 0:
		sweep := math.Atan2(nR.Dot(tL), nR.Dot(nL))
		return newArc(nL, vertex.Mul(-1), sweep, -math.Pi/2, ConvexCorner)
	}
	sweep := math.Atan2(-nR.Dot(tL), nR.Dot(nL))
	return newArc(nL.Mul(-1), vertex.Vector, sweep, math.Pi/2, ConcaveCorner)
}

// ConcaveAt reports whether a corner of this kind folds inwards at the
// given extrusion, so that the edges on either side of it overlap and it
// must not be walked over.
func (k Kind) ConcaveAt(extrusion float64) bool {
	switch k {
	case ConvexCorner:
		return extrusion < -precision.Tolerance
	case ConcaveCorner:
		return extrusion > precision.Tolerance
	}
	return false
}
