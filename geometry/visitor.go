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

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/s2"

	"github.com/planetaria/planetaria/precision"
)

// Visitor is a cursor on a Shape: an arc index, an angle along that arc, and
// the extrusion of the object riding on it.
//
// Visitors are values. Move returns the moved visitor and leaves the
// receiver untouched, so callers can try a move and discard it.
//
// At positive extrusion the edges either side of a concave corner overlap
// (and likewise for convex corners at negative extrusion). The visitor
// skips such corners and limits the neighbouring edges to the stretch
// between the overlap points, so an object never walks into the surface.
type Visitor struct {
	shape     *Shape
	index     int
	angle     float64
	extrusion float64
	left      float64
	right     float64
	rotation  mgl64.Quat
	position  s2.Point
	normal    s2.Point
}

// NewVisitor places a visitor on arc index of shape at the given angle and
// extrusion. The angle is clamped to the arc's walkable stretch. A shape
// with no arcs yields a visitor that never moves.
func NewVisitor(shape *Shape, index int, angle, extrusion float64) Visitor {
	v := Visitor{
		shape:     shape,
		extrusion: math.NaN(),
		rotation:  mgl64.QuatIdent(),
	}
	if v.empty() {
		v.extrusion = extrusion
		return v
	}
	v.index = precision.Wrap(index, shape.Len())
	v.angle = angle
	v.setExtrusion(extrusion)
	v.refresh()
	return v
}

func (v *Visitor) empty() bool {
	return v.shape == nil || v.shape.Len() == 0
}

// Shape returns the shape being walked.
func (v Visitor) Shape() *Shape { return v.shape }

// Index returns the current arc index.
func (v Visitor) Index() int { return v.index }

// Arc returns the current arc.
func (v Visitor) Arc() Arc { return v.shape.Arc(v.index) }

// Angle returns the angle along the current arc.
func (v Visitor) Angle() float64 { return v.angle }

// Extrusion returns the extrusion the visitor was last evaluated at.
func (v Visitor) Extrusion() float64 { return v.extrusion }

// Bounds returns the walkable stretch [left, right] of the current arc.
func (v Visitor) Bounds() (left, right float64) { return v.left, v.right }

// Rotation returns the rotation applied to positions and normals.
func (v Visitor) Rotation() mgl64.Quat { return v.rotation }

// Position returns the current point, rotated into world space.
func (v Visitor) Position() s2.Point { return v.position }

// Normal returns the current normal, rotated into world space.
func (v Visitor) Normal() s2.Point { return v.normal }

// WithRotation returns the visitor reporting positions rotated by q. It is
// used for shapes attached to moving blocks.
func (v Visitor) WithRotation(q mgl64.Quat) Visitor {
	v.rotation = q.Normalize()
	v.refresh()
	return v
}

// Contains reports whether the world space point p lies on the current arc,
// offset by the visitor's extrusion, within its walkable stretch.
func (v Visitor) Contains(p s2.Point) bool {
	if v.empty() {
		return false
	}
	arc := v.Arc()
	local := RotatePoint(v.rotation.Inverse(), p)
	if math.Abs(local.Dot(arc.Center().Vector)-arc.circleDot(v.extrusion)) > precision.Tolerance {
		return false
	}
	angle := arc.PositionToAngle(local)
	if angle > arc.Angle()+precision.Tolerance && angle >= 2*math.Pi-precision.Tolerance {
		angle = 0
	}
	return angle >= v.left-precision.Tolerance && angle <= v.right+precision.Tolerance
}

// Move walks delta units of surface length along the shape (negative delta
// walks backwards) with the rider at the given extrusion. Closed shapes
// wrap around; open shapes stop at their ends. Zero-length arcs are crossed
// without using up any distance.
func (v Visitor) Move(delta, extrusion float64) Visitor {
	if v.empty() {
		v.extrusion = extrusion
		return v
	}
	v.setExtrusion(extrusion)

	limit := 4*v.shape.Len() + 8
	reduced := false
	for budget := limit; delta != 0; budget-- {
		if budget == 0 {
			// Long moves on closed shapes: drop whole laps and go again.
			lap := v.walkablePerimeter()
			if reduced || !v.shape.Closed() || lap <= precision.MinAngle {
				break
			}
			delta = math.Mod(delta, lap)
			budget, reduced = limit, true
			continue
		}

		arc := v.Arc()
		scale := arc.Length(v.extrusion) / arc.Angle()
		if scale <= precision.MinAngle || v.right-v.left <= precision.MinAngle && arc.Kind().IsCorner() {
			next, ok := v.neighbor(direction(delta))
			if !ok {
				break
			}
			v = next
			continue
		}

		target := v.angle + delta/scale
		switch {
		case target > v.right:
			delta = (target - v.right) * scale
			next, ok := v.neighbor(1)
			if !ok {
				v.angle, delta = v.right, 0
				break
			}
			v = next
		case target < v.left:
			delta = (target - v.left) * scale
			next, ok := v.neighbor(-1)
			if !ok {
				v.angle, delta = v.left, 0
				break
			}
			v = next
		default:
			v.angle, delta = target, 0
		}
	}
	v.refresh()
	return v
}

func direction(delta float64) int {
	if delta < 0 {
		return -1
	}
	return 1
}

// setExtrusion recomputes the walkable stretch when the extrusion changes.
// The NaN extrusion of a fresh visitor never compares equal, so the first
// call always computes.
func (v *Visitor) setExtrusion(extrusion float64) {
	if extrusion == v.extrusion {
		return
	}
	v.extrusion = extrusion
	if v.shape.ConcaveAt(v.index, extrusion) {
		if i, ok := v.step(v.index, 1); ok {
			v.index, v.angle = i, 0
		}
	}
	v.left, v.right = v.boundsAt(v.index)
	v.angle = precision.Clamp(v.angle, v.left, v.right)
}

// step returns the index dir arcs away from i, or false past the end of an
// open shape.
func (v *Visitor) step(i, dir int) (int, bool) {
	j := i + dir
	n := v.shape.Len()
	if !v.shape.Closed() && (j < 0 || j >= n) {
		return 0, false
	}
	return precision.Wrap(j, n), true
}

// neighbor returns the visitor moved onto the next arc in direction dir,
// skipping a corner that folds inwards at the current extrusion. It enters
// at the near end of the new arc's walkable stretch.
func (v Visitor) neighbor(dir int) (Visitor, bool) {
	i, ok := v.step(v.index, dir)
	if ok && v.shape.ConcaveAt(i, v.extrusion) {
		i, ok = v.step(i, dir)
	}
	if !ok {
		return v, false
	}
	v.index = i
	v.left, v.right = v.boundsAt(i)
	if dir > 0 {
		v.angle = v.left
	} else {
		v.angle = v.right
	}
	return v, true
}

// boundsAt returns the walkable stretch of arc i at the current extrusion.
// An edge next to a folded corner ends where it meets the edge on the far
// side of that corner. If the two ends cross, the stretch collapses to
// their midpoint.
func (v *Visitor) boundsAt(i int) (left, right float64) {
	arc := v.shape.Arc(i)
	left, right = 0, arc.Angle()
	if !arc.IsEdge() {
		return left, right
	}
	e := v.extrusion
	if p, ok := v.overlap(i, -1, arc.Begin(e)); ok {
		left = arc.ClampedAngle(p)
	}
	if p, ok := v.overlap(i, 1, arc.End(e)); ok {
		right = arc.ClampedAngle(p)
	}
	if left > right {
		mid := (left + right) / 2
		left, right = mid, mid
	}
	return left, right
}

// overlap finds where edge i meets the edge beyond its neighbouring corner
// in direction dir, when that corner folds inwards.
func (v *Visitor) overlap(i, dir int, ref s2.Point) (s2.Point, bool) {
	corner, ok := v.step(i, dir)
	if !ok || !v.shape.ConcaveAt(corner, v.extrusion) {
		return s2.Point{}, false
	}
	far, ok := v.step(corner, dir)
	if !ok || far == i {
		return s2.Point{}, false
	}
	return arcArcIntersectionNear(v.shape.Arc(i), v.shape.Arc(far), v.extrusion, ref)
}

// walkablePerimeter returns the length of one lap at the current extrusion.
func (v *Visitor) walkablePerimeter() float64 {
	var total float64
	for i := 0; i < v.shape.Len(); i++ {
		if v.shape.ConcaveAt(i, v.extrusion) {
			continue
		}
		arc := v.shape.Arc(i)
		left, right := v.boundsAt(i)
		total += (right - left) * arc.Length(v.extrusion) / arc.Angle()
	}
	return total
}

func (v *Visitor) refresh() {
	arc := v.Arc()
	v.position = RotatePoint(v.rotation, arc.Position(v.angle, v.extrusion))
	v.normal = RotatePoint(v.rotation, arc.Normal(v.angle, v.extrusion))
}
