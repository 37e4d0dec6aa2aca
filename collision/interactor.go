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

package collision

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/s2"

	"github.com/planetaria/planetaria/geometry"
	"github.com/planetaria/planetaria/precision"
)

// Collision is the first point at which a path met a block.
type Collision struct {
	Block *Block
	// Shape is the snapshot Index refers to.
	Shape      *geometry.Shape
	Generation uint64
	Index      int
	Angle      float64
	Rotation   mgl64.Quat

	// Point and Normal are in world space.
	Point  s2.Point
	Normal s2.Point
}

// Arc returns the arc that was hit.
func (c Collision) Arc() geometry.Arc {
	return c.Shape.Arc(c.Index)
}

// Visitor returns a visitor standing at the collision point for an object
// of the given radius.
func (c Collision) Visitor(radius float64) geometry.Visitor {
	return geometry.NewVisitor(c.Shape, c.Index, c.Angle, radius).WithRotation(c.Rotation)
}

// Interactor resolves paths against one block.
type Interactor struct {
	block *Block
}

// Resolve intersects the path from prev to cur, for an object of the given
// radius, with the arcs within two of hint. It is used when the object was
// last seen on arc hint, so only its neighbourhood needs checking.
func (in Interactor) Resolve(hint int, prev, cur s2.Point, radius float64) (Collision, bool) {
	shape := in.block.Shape()
	if shape.Len() == 0 {
		return Collision{}, false
	}
	return in.scan(shape, window(shape, hint), prev, cur, radius)
}

// Raycast intersects the path from prev to cur with every arc of the block.
func (in Interactor) Raycast(prev, cur s2.Point, radius float64) (Collision, bool) {
	shape := in.block.Shape()
	idx := make([]int, shape.Len())
	for i := range idx {
		idx[i] = i
	}
	return in.scan(shape, idx, prev, cur, radius)
}

// window returns the distinct arc indices within two of hint, wrapping for
// closed shapes and clipping for open ones.
func window(shape *geometry.Shape, hint int) []int {
	n := shape.Len()
	idx := make([]int, 0, 5)
	for d := -2; d <= 2; d++ {
		i := hint + d
		if shape.Closed() {
			i = precision.Wrap(i, n)
		} else if i < 0 || i >= n {
			continue
		}
		dup := false
		for _, j := range idx {
			dup = dup || j == i
		}
		if !dup {
			idx = append(idx, i)
		}
	}
	return idx
}

func (in Interactor) scan(shape *geometry.Shape, indices []int, prev, cur s2.Point, radius float64) (Collision, bool) {
	q := in.block.Rotation()
	inv := q.Inverse()
	lp, lc := geometry.RotatePoint(inv, prev), geometry.RotatePoint(inv, cur)
	motion := lc.Sub(lp.Vector)

	var (
		hits    geometry.PointBatch
		hitArcs []int
	)
	for _, i := range indices {
		if shape.ConcaveAt(i, radius) {
			continue
		}
		arc := shape.Arc(i)
		p, ok := geometry.ArcPathIntersection(arc, lp, lc, radius)
		if !ok {
			continue
		}
		// Platforms only stop objects moving into them.
		if in.block.Platform && motion.Dot(arc.Normal(arc.ClampedAngle(p), radius).Vector) >= 0 {
			continue
		}
		hits.Add(p)
		hitArcs = append(hitArcs, i)
	}

	best := hits.Nearest(lp)
	if best < 0 {
		return Collision{}, false
	}
	i := hitArcs[best]
	arc := shape.Arc(i)
	angle := arc.ClampedAngle(hits.At(best))
	return Collision{
		Block:      in.block,
		Shape:      shape,
		Generation: in.block.Generation(),
		Index:      i,
		Angle:      angle,
		Rotation:   q,
		Point:      geometry.RotatePoint(q, hits.At(best)),
		Normal:     geometry.RotatePoint(q, arc.Normal(angle, radius)),
	}, true
}
