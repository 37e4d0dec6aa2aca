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
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"go.uber.org/zap"

	"github.com/planetaria/planetaria/precision"
)

// Arc is a piece of a circle on the unit sphere.
//
// The arc is stored as an orthonormal frame plus two angles. The frame's
// forward axis points at the arc's midpoint projected onto the circle's
// equatorial plane, right points along the direction of travel at the
// midpoint, and center is the circle's pole. The circle is the set of
// points p with p·center = sin(latitude). Latitude is zero for great
// circles, negative for convex arcs (the circle bulges away from center)
// and positive for concave ones.
//
// Angles along an arc run from 0 at its beginning to Angle() at its end.
// Arc values are immutable and safe to share.
type Arc struct {
	// orientation maps X to forward, Y to right and Z to center.
	orientation mgl64.Quat
	halfAngle   float64
	latitude    float64
	kind        Kind
}

// Curve returns the arc that starts at from, leaves it heading along slope,
// and ends at to. The tangent is slope projected onto the tangent plane at
// from. When slope has no component in that plane a default heading is
// used instead. When from and to coincide the arc is degenerate and spans
// MinAngle.
func Curve(from s2.Point, slope r3.Vector, to s2.Point) Arc {
	tangent := slope.Sub(from.Mul(from.Dot(slope)))
	if tangent.Norm() <= precision.Tolerance {
		Logger().Debug("arc tangent is parallel to its start point, using default heading",
			zap.Stringer("from", from))
		tangent = defaultTangent(from)
	}
	tangent = tangent.Normalize()

	binormal := from.Cross(tangent)
	latitude := math.Atan2(binormal.Dot(to.Vector), 1-from.Dot(to.Vector))
	sinL, cosL := math.Sincos(latitude)
	center := binormal.Mul(cosL).Add(from.Mul(sinL)).Normalize()

	// u is the equatorial direction of from, v the direction of travel.
	u := tangent.Cross(center).Normalize()
	v := center.Cross(u)
	w := to.Sub(center.Mul(center.Dot(to.Vector)))
	sweep := precision.EuclideanMod(math.Atan2(w.Dot(v), w.Dot(u)), 2*math.Pi)
	if from.Distance(to).Radians() <= precision.MinAngle {
		Logger().Debug("zero-length arc", zap.Stringer("at", from))
		sweep = precision.MinAngle
	}
	return newArc(u, center, sweep, latitude, edgeKind(latitude))
}

// Line returns the great circle arc from one point to another.
func Line(from, to s2.Point) Arc {
	return Curve(from, to.Vector, to)
}

// defaultTangent picks a heading at from when the requested one is
// degenerate: towards +Y where possible, otherwise any orthogonal direction.
func defaultTangent(from s2.Point) r3.Vector {
	up := r3.Vector{Y: 1}
	t := up.Sub(from.Mul(from.Dot(up)))
	if t.Norm() <= precision.Tolerance {
		return from.Ortho()
	}
	return t
}

func edgeKind(latitude float64) Kind {
	switch {
	case precision.ApproxZero(latitude):
		return StraightEdge
	case latitude < 0:
		return ConvexEdge
	}
	return ConcaveEdge
}

// newArc builds an arc around center whose beginning projects onto the
// equatorial direction u and which sweeps the given angle counterclockwise
// about center.
func newArc(u, center r3.Vector, sweep, latitude float64, kind Kind) Arc {
	half := precision.Clamp(sweep/2, precision.MinAngle/2, math.Pi)
	sinH, cosH := math.Sincos(half)
	forward := u.Mul(cosH).Add(center.Cross(u).Mul(sinH)).Normalize()
	right := center.Cross(forward).Normalize()
	return Arc{
		orientation: quatFromBasis(forward, right, center),
		halfAngle:   half,
		latitude:    latitude,
		kind:        kind,
	}
}

// Forward returns the equatorial direction of the arc's midpoint.
func (a Arc) Forward() r3.Vector {
	return vector(a.orientation.Rotate(unitX))
}

// Right returns the direction of travel at the arc's midpoint.
func (a Arc) Right() r3.Vector {
	return vector(a.orientation.Rotate(unitY))
}

// Center returns the pole of the arc's circle.
func (a Arc) Center() s2.Point {
	return s2.Point{Vector: vector(a.orientation.Rotate(unitZ)).Normalize()}
}

// Orientation returns the rotation from the reference frame to the arc's
// frame.
func (a Arc) Orientation() mgl64.Quat {
	return a.orientation
}

// Angle returns the angle the arc subtends about its center, in (0, 2π].
func (a Arc) Angle() float64 { return 2 * a.halfAngle }

// HalfAngle returns half of Angle.
func (a Arc) HalfAngle() float64 { return a.halfAngle }

// Latitude returns the angle between the arc's circle and the great circle
// with the same center.
func (a Arc) Latitude() float64 { return a.latitude }

// Kind returns the arc's classification.
func (a Arc) Kind() Kind { return a.kind }

// IsEdge reports whether the arc is an edge rather than a corner.
func (a Arc) IsEdge() bool { return a.kind.IsEdge() }

// Position returns the point at angle along the arc, offset by extrusion
// along the normal. Angle is not clamped to [0, Angle()].
func (a Arc) Position(angle, extrusion float64) s2.Point {
	sinT, cosT := math.Sincos(angle - a.halfAngle)
	sinP, cosP := math.Sincos(a.latitude + extrusion)
	v := a.Forward().Mul(cosT * cosP).
		Add(a.Right().Mul(sinT * cosP)).
		Add(a.Center().Mul(sinP))
	return s2.Point{Vector: v.Normalize()}
}

// Normal returns the unit normal at angle along the arc, evaluated on the
// circle offset by extrusion. It points away from the solid side.
func (a Arc) Normal(angle, extrusion float64) s2.Point {
	return a.Position(angle, extrusion+math.Pi/2)
}

// Tangent returns the unit direction of travel at angle along the arc.
func (a Arc) Tangent(angle float64) r3.Vector {
	sinT, cosT := math.Sincos(angle - a.halfAngle)
	return a.Forward().Mul(-sinT).Add(a.Right().Mul(cosT)).Normalize()
}

// Length returns the arc's surface length when offset by extrusion.
func (a Arc) Length(extrusion float64) float64 {
	return math.Abs(a.Angle() * math.Cos(a.latitude+extrusion))
}

// Begin returns the arc's first point at the given extrusion.
func (a Arc) Begin(extrusion float64) s2.Point { return a.Position(0, extrusion) }

// End returns the arc's last point at the given extrusion.
func (a Arc) End(extrusion float64) s2.Point { return a.Position(a.Angle(), extrusion) }

// BeginNormal returns the normal at the arc's first point.
func (a Arc) BeginNormal(extrusion float64) s2.Point { return a.Normal(0, extrusion) }

// EndNormal returns the normal at the arc's last point.
func (a Arc) EndNormal(extrusion float64) s2.Point { return a.Normal(a.Angle(), extrusion) }

// PositionToAngle returns the angle about the arc's center at which p lies,
// in [0, 2π). Values above Angle() are outside the arc. For points on the
// arc's axis, where every angle is equally close, it returns Angle().
func (a Arc) PositionToAngle(p s2.Point) float64 {
	x := p.Dot(a.Forward())
	y := p.Dot(a.Right())
	if math.Hypot(x, y) < precision.MinAngle || math.IsNaN(x+y) {
		return a.Angle()
	}
	return precision.EuclideanMod(math.Atan2(y, x)+a.halfAngle, 2*math.Pi)
}

// Contains reports whether p lies within the arc's angular domain. The
// distance of p from the circle is ignored.
func (a Arc) Contains(p s2.Point) bool {
	angle := a.PositionToAngle(p)
	return angle <= a.Angle()+precision.Tolerance || angle >= 2*math.Pi-precision.Tolerance
}

// ClampedAngle returns the angle of p snapped into [0, Angle()]. Points
// outside the domain snap to whichever end is angularly closer.
func (a Arc) ClampedAngle(p s2.Point) float64 {
	angle := a.PositionToAngle(p)
	if angle <= a.Angle() {
		return angle
	}
	if angle-a.Angle() < 2*math.Pi-angle {
		return a.Angle()
	}
	return 0
}

// Rotated returns the arc rotated by q.
func (a Arc) Rotated(q mgl64.Quat) Arc {
	a.orientation = q.Mul(a.orientation).Normalize()
	return a
}

// circleDot returns the dot product every point of the arc's circle at the
// given extrusion has with Center().
func (a Arc) circleDot(extrusion float64) float64 {
	return math.Sin(a.latitude + extrusion)
}

func (a Arc) String() string {
	return fmt.Sprintf("%v{center=%v lat=%.6f angle=%.6f}", a.kind, a.Center(), a.latitude, a.Angle())
}
