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

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"

	"github.com/planetaria/planetaria/precision"
)

// CircleCircleIntersection returns the points lying at angular distance
// radiusA from centerA and radiusB from centerB. It returns nothing when
// the circles are disjoint, two coincident points when they are tangent,
// and two points when they cross.
//
// Concentric and antipodal centers are special: if both describe the same
// circle, two antipodal points of that circle are returned, otherwise
// nothing.
func CircleCircleIntersection(centerA, centerB s2.Point, radiusA, radiusB float64) []s2.Point {
	return circleIntersection(centerA.Vector, centerB.Vector, math.Cos(radiusA), math.Cos(radiusB))
}

// circleIntersection intersects the circles {p : p·ca = a} and
// {p : p·cb = b}. Solutions are written as α·ca + β·cb ± γ·(ca × cb).
func circleIntersection(ca, cb r3.Vector, a, b float64) []s2.Point {
	d := ca.Dot(cb)
	if math.Abs(d) > 1-precision.Tolerance {
		if (d > 0 && precision.ApproxEqual(a, b)) || (d < 0 && precision.ApproxEqual(a, -b)) {
			o := planeDirection(ca)
			s := math.Sqrt(math.Max(0, 1-a*a))
			return []s2.Point{
				{Vector: ca.Mul(a).Add(o.Mul(s)).Normalize()},
				{Vector: ca.Mul(a).Sub(o.Mul(s)).Normalize()},
			}
		}
		return nil
	}

	det := 1 - d*d
	alpha := (a - b*d) / det
	beta := (b - a*d) / det
	gamma2 := 1 - (alpha*alpha + beta*beta + 2*alpha*beta*d)
	if gamma2 < -precision.Tolerance {
		return nil
	}
	gamma := math.Sqrt(math.Max(gamma2, 0))
	n := ca.Cross(cb).Normalize()
	base := ca.Mul(alpha).Add(cb.Mul(beta))
	return []s2.Point{
		{Vector: base.Add(n.Mul(gamma)).Normalize()},
		{Vector: base.Sub(n.Mul(gamma)).Normalize()},
	}
}

// planeDirection returns a unit vector orthogonal to c: +X projected off c,
// or +Y when c lies along X.
func planeDirection(c r3.Vector) r3.Vector {
	ref := r3.Vector{X: 1}
	if math.Abs(c.X) > 1-precision.Tolerance {
		ref = r3.Vector{Y: 1}
	}
	return ref.Sub(c.Mul(c.Dot(ref))).Normalize()
}

// ArcArcIntersection returns the point where a and b cross when both are
// offset by extrusion. Only points inside both arcs' angular domains are
// considered. When there are two, the one nearer a's midpoint wins.
func ArcArcIntersection(a, b Arc, extrusion float64) (s2.Point, bool) {
	return arcArcIntersectionNear(a, b, extrusion, a.Position(a.halfAngle, extrusion))
}

func arcArcIntersectionNear(a, b Arc, extrusion float64, ref s2.Point) (s2.Point, bool) {
	candidates := circleIntersection(a.Center().Vector, b.Center().Vector,
		a.circleDot(extrusion), b.circleDot(extrusion))
	if sameCircle(a, b, extrusion) {
		// Overlapping arcs of one circle meet at an endpoint of either.
		candidates = append(candidates,
			a.Begin(extrusion), a.End(extrusion), b.Begin(extrusion), b.End(extrusion))
	}
	return nearestContained(candidates, ref, a, b)
}

// sameCircle reports whether a and b, offset by extrusion, lie on one
// circle, traversed in either direction.
func sameCircle(a, b Arc, extrusion float64) bool {
	d := a.Center().Dot(b.Center().Vector)
	da, db := a.circleDot(extrusion), b.circleDot(extrusion)
	return (d > 1-precision.Tolerance && precision.ApproxEqual(da, db)) ||
		(d < -1+precision.Tolerance && precision.ApproxEqual(da, -db))
}

// ArcPathIntersection returns the first point at which the great circle path
// from begin to end meets arc offset by extrusion. Of two crossings the one
// nearer begin wins. A path whose ends coincide never intersects anything.
func ArcPathIntersection(arc Arc, begin, end s2.Point, extrusion float64) (s2.Point, bool) {
	if begin.Distance(end).Radians() <= precision.MinAngle {
		return s2.Point{}, false
	}
	path := Line(begin, end)
	candidates := circleIntersection(arc.Center().Vector, path.Center().Vector,
		arc.circleDot(extrusion), 0)
	return nearestContained(candidates, begin, arc, path)
}

func nearestContained(candidates []s2.Point, ref s2.Point, arcs ...Arc) (s2.Point, bool) {
	var (
		best  s2.Point
		found bool
	)
	for _, p := range candidates {
		inside := true
		for _, a := range arcs {
			if !a.Contains(p) {
				inside = false
				break
			}
		}
		if !inside {
			continue
		}
		if !found || p.Dot(ref.Vector) > best.Dot(ref.Vector) {
			best, found = p, true
		}
	}
	return best, found
}
