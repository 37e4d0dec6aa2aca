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
	"github.com/pkg/errors"

	"github.com/planetaria/planetaria/geometry"
)

// Field is a convex closed region that reports overlaps but never blocks
// movement.
type Field struct {
	ID       ColliderID
	Active   bool
	shape    *geometry.Shape
	rotation mgl64.Quat
}

// NewField builds a field from curves. The outline must be convex.
func NewField(id ColliderID, curves []geometry.CurvePoint) (*Field, error) {
	s := geometry.NewShape(curves, true, false)
	if !s.IsConvexHull() {
		return nil, errors.Errorf("field %d: outline of %d curves is not convex", id, len(curves))
	}
	return &Field{ID: id, Active: true, shape: s, rotation: mgl64.QuatIdent()}, nil
}

// Shape returns the field's outline in its local frame.
func (f *Field) Shape() *geometry.Shape { return f.shape }

// Rotation returns the rotation from the field's local frame to the world.
func (f *Field) Rotation() mgl64.Quat { return f.rotation }

// SetRotation orients the field. It must not be called while the field is
// being queried.
func (f *Field) SetRotation(q mgl64.Quat) { f.rotation = q.Normalize() }

// Bound returns the field's bounding cap in world space.
func (f *Field) Bound() s2.Cap { return worldBound(f.shape.Bound(), f.rotation) }

// Contains reports whether the world space point p lies inside the field.
func (f *Field) Contains(p s2.Point) bool {
	return f.shape.Contains(geometry.RotatePoint(f.rotation.Inverse(), p))
}

// Overlaps reports whether the block's current shape overlaps the field.
func (f *Field) Overlaps(b *Block) bool {
	rel := geometry.RelativeRotation(f.rotation, b.Rotation())
	return f.shape.FieldCollision(b.Shape(), rel)
}
