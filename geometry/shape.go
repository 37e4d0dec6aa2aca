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
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/planetaria/planetaria/precision"
)

// CurvePoint describes where an edge starts and which way it leaves. The
// edge ends at the next CurvePoint in the chain.
type CurvePoint struct {
	Point   s2.Point
	Tangent r3.Vector
}

// Polygon returns curve points joining the vertices with great circle edges.
// The vertices of a solid block should be listed clockwise as seen from
// outside the sphere.
func Polygon(vertices []s2.Point, closed bool) []CurvePoint {
	curves := make([]CurvePoint, len(vertices))
	for i, v := range vertices {
		next := v
		switch {
		case i+1 < len(vertices):
			next = vertices[i+1]
		case closed && len(vertices) > 1:
			next = vertices[0]
		}
		curves[i] = CurvePoint{Point: v, Tangent: next.Vector}
	}
	return curves
}

// Shape is an immutable chain of arcs generated from curve points.
//
// With corners, arcs alternate edge, corner, edge, ... so edge i is arc 2i.
// A closed chain ends with the corner joining the last edge to the first.
type Shape struct {
	curves  []CurvePoint
	closed  bool
	corners bool
	arcs    []Arc
	bound   s2.Cap
}

// NewShape builds the arcs for curves. The curve points are copied.
func NewShape(curves []CurvePoint, closed, corners bool) *Shape {
	s := &Shape{
		curves:  append([]CurvePoint(nil), curves...),
		closed:  closed,
		corners: corners,
	}
	s.arcs = GenerateArcs(s.curves, closed, corners)
	s.bound = computeBound(s.arcs)
	return s
}

// GenerateArcs turns curve points into arcs. A closed chain of n points has
// n edges, an open one n-1. With corners, a corner arc follows every edge
// except the last edge of an open chain. GenerateArcs is deterministic.
func GenerateArcs(curves []CurvePoint, closed, corners bool) []Arc {
	edges := generateEdges(curves, closed)
	if !corners {
		return edges
	}
	arcs := make([]Arc, 0, 2*len(edges))
	for i, e := range edges {
		arcs = append(arcs, e)
		if i+1 < len(edges) {
			arcs = append(arcs, Corner(e, edges[i+1]))
		} else if closed {
			arcs = append(arcs, Corner(e, edges[0]))
		}
	}
	return arcs
}

func generateEdges(curves []CurvePoint, closed bool) []Arc {
	n := len(curves)
	count := n - 1
	if closed {
		count = n
	}
	if count <= 0 {
		return nil
	}
	edges := make([]Arc, count)
	for i := range edges {
		c := curves[i]
		edges[i] = Curve(c.Point, c.Tangent, curves[(i+1)%n].Point)
	}
	return edges
}

// Len returns the number of arcs.
func (s *Shape) Len() int { return len(s.arcs) }

// Arc returns the i-th arc. Indices wrap. An empty shape returns the zero
// Arc, which has no geometry.
func (s *Shape) Arc(i int) Arc {
	if len(s.arcs) == 0 {
		return Arc{}
	}
	return s.arcs[precision.Wrap(i, len(s.arcs))]
}

// Arcs returns a copy of the arcs.
func (s *Shape) Arcs() []Arc { return append([]Arc(nil), s.arcs...) }

// Curves returns a copy of the curve points the shape was built from.
func (s *Shape) Curves() []CurvePoint { return append([]CurvePoint(nil), s.curves...) }

// Closed reports whether the last arc joins back to the first.
func (s *Shape) Closed() bool { return s.closed }

// HasCorners reports whether corner arcs were generated.
func (s *Shape) HasCorners() bool { return s.corners }

// Bound returns a cap containing every point of the shape at zero
// extrusion.
func (s *Shape) Bound() s2.Cap { return s.bound }

// ConcaveAt reports whether arc i is a corner that folds inwards at the
// given extrusion.
func (s *Shape) ConcaveAt(i int, extrusion float64) bool {
	return s.Arc(i).Kind().ConcaveAt(extrusion)
}

// Edges returns the indices of the edge arcs.
func (s *Shape) Edges() []int {
	var idx []int
	for i, a := range s.arcs {
		if a.IsEdge() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Perimeter returns the summed length of every arc at the given extrusion.
func (s *Shape) Perimeter(extrusion float64) float64 {
	var total float64
	for _, a := range s.arcs {
		total += a.Length(extrusion)
	}
	return total
}

// SelfIntersecting reports whether any two non-adjacent edges cross. Edges
// sharing a vertex are not compared.
func (s *Shape) SelfIntersecting() bool {
	edges := s.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if s.closed && i == 0 && j == n-1 {
				continue
			}
			if _, ok := ArcArcIntersection(s.arcs[edges[i]], s.arcs[edges[j]], 0); ok {
				return true
			}
		}
	}
	return false
}

// IsConvexHull reports whether the shape, closed up if necessary, bounds a
// convex region: no edge is concave and no junction between edges is. An
// open chain is closed with a great circle from its last point to its first.
func (s *Shape) IsConvexHull() bool {
	edges := generateEdges(s.curves, s.closed)
	if n := len(s.curves); !s.closed && n > 1 {
		edges = append(edges, Line(s.curves[n-1].Point, s.curves[0].Point))
	}
	if len(edges) < 2 {
		return false
	}
	for i, e := range edges {
		if e.Kind() == ConcaveEdge {
			return false
		}
		if Corner(e, edges[(i+1)%len(edges)]).Kind() == ConcaveCorner {
			return false
		}
	}
	return true
}

// Contains reports whether p lies on the solid side of every edge. It is
// exact for shapes where IsConvexHull holds.
func (s *Shape) Contains(p s2.Point) bool {
	if !s.closed || !s.bound.ContainsPoint(p) {
		return false
	}
	for _, i := range s.Edges() {
		a := s.arcs[i]
		if p.Dot(a.Center().Vector) > a.circleDot(0)+precision.Tolerance {
			return false
		}
	}
	return true
}

// Rotated returns a copy of the shape rotated by q.
func (s *Shape) Rotated(q mgl64.Quat) *Shape {
	r := &Shape{
		curves:  make([]CurvePoint, len(s.curves)),
		closed:  s.closed,
		corners: s.corners,
		arcs:    make([]Arc, len(s.arcs)),
	}
	for i, c := range s.curves {
		r.curves[i] = CurvePoint{Point: RotatePoint(q, c.Point), Tangent: RotateVector(q, c.Tangent)}
	}
	for i, a := range s.arcs {
		r.arcs[i] = a.Rotated(q)
	}
	if s.bound.IsEmpty() {
		r.bound = s.bound
	} else {
		r.bound = s2.CapFromCenterAngle(RotatePoint(q, s.bound.Center()), s.bound.Radius())
	}
	return r
}

// BlockCollision returns the indices of other's edges that cross one of
// this shape's edges. rel maps other's local frame into this one.
func (s *Shape) BlockCollision(other *Shape, rel mgl64.Quat) []int {
	o := other.Rotated(rel)
	if !s.bound.Intersects(o.bound) {
		return nil
	}
	mine := s.Edges()
	var hits []int
	for _, j := range o.Edges() {
		for _, i := range mine {
			if _, ok := ArcArcIntersection(s.arcs[i], o.arcs[j], 0); ok {
				hits = append(hits, j)
				break
			}
		}
	}
	return hits
}

// FieldCollision reports whether other overlaps this shape, either because
// their edges cross or because one lies entirely inside the other. rel maps
// other's local frame into this one.
func (s *Shape) FieldCollision(other *Shape, rel mgl64.Quat) bool {
	o := other.Rotated(rel)
	if !s.bound.Intersects(o.bound) {
		return false
	}
	if len(s.BlockCollision(o, mgl64.QuatIdent())) > 0 {
		return true
	}
	if len(o.curves) > 0 && s.Contains(o.curves[0].Point) {
		return true
	}
	return len(s.curves) > 0 && o.Contains(s.curves[0].Point)
}

const boundSamples = 8

// computeBound samples every edge, centers a cap on the samples' mean
// direction and pads its radius by half the largest sample spacing so the
// unsampled stretches stay inside.
func computeBound(arcs []Arc) s2.Cap {
	var (
		batch PointBatch
		pad   float64
	)
	for _, a := range arcs {
		if !a.IsEdge() {
			continue
		}
		for k := 0; k < boundSamples; k++ {
			batch.Add(a.Position(a.Angle()*float64(k)/(boundSamples-1), 0))
		}
		pad = math.Max(pad, a.Length(0)/(2*(boundSamples-1)))
	}
	if batch.Len() == 0 {
		return s2.EmptyCap()
	}
	center := batch.Sum()
	if center.Norm() <= precision.Tolerance {
		center = batch.At(0).Vector
	}
	center = center.Normalize()
	lo, _ := BaseBatchMinMax(batch.Dots(center))
	radius := precision.SafeAcos(lo) + pad + precision.Tolerance
	return s2.CapFromCenterAngle(s2.Point{Vector: center}, s1.Angle(math.Min(radius, math.Pi)))
}
