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

// Package collision resolves moving objects against the blocks of a world
// and tests them for overlap with fields.
//
// Blocks are solid outlines that objects stand on. Their shapes may be
// regenerated at runtime; readers always see either the old or the new
// shape, never a partial one. Fields are convex regions used only for
// overlap tests.
package collision

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/s2"

	"github.com/planetaria/planetaria/geometry"
)

// ColliderID identifies a block or field within a World.
type ColliderID uint64

// Material describes how a block's surface reacts to contact.
type Material struct {
	Name       string
	Friction   float64
	Elasticity float64
}

// Block is a solid outline. The exported flags are configured before the
// block is added to a World. The shape and rotation may change afterwards
// and are safe to read concurrently.
type Block struct {
	ID       ColliderID
	Active   bool
	Dynamic  bool
	Platform bool
	Material Material

	shape      atomic.Pointer[geometry.Shape]
	rotation   atomic.Pointer[mgl64.Quat]
	generation atomic.Uint64
}

// NewBlock returns an active block built from curves with corners.
func NewBlock(id ColliderID, curves []geometry.CurvePoint, closed bool) *Block {
	b := &Block{ID: id, Active: true}
	b.SetRotation(mgl64.QuatIdent())
	b.SetCurves(curves, closed)
	return b
}

// SetCurves regenerates the block's shape and publishes it in one step.
func (b *Block) SetCurves(curves []geometry.CurvePoint, closed bool) {
	b.shape.Store(geometry.NewShape(curves, closed, true))
	b.generation.Add(1)
}

// Shape returns the current shape snapshot in the block's local frame.
func (b *Block) Shape() *geometry.Shape {
	return b.shape.Load()
}

// Generation counts shape regenerations. A changed value tells a caller
// holding arc indices that they refer to an older shape.
func (b *Block) Generation() uint64 {
	return b.generation.Load()
}

// Rotation returns the rotation from the block's local frame to the world.
func (b *Block) Rotation() mgl64.Quat {
	return *b.rotation.Load()
}

// SetRotation orients a dynamic block.
func (b *Block) SetRotation(q mgl64.Quat) {
	q = q.Normalize()
	b.rotation.Store(&q)
}

// Bound returns the block's bounding cap in world space.
func (b *Block) Bound() s2.Cap {
	return worldBound(b.Shape().Bound(), b.Rotation())
}

// Interactor returns an interactor resolving paths against this block.
func (b *Block) Interactor() Interactor {
	return Interactor{block: b}
}

func worldBound(c s2.Cap, q mgl64.Quat) s2.Cap {
	if c.IsEmpty() {
		return c
	}
	return s2.CapFromCenterAngle(geometry.RotatePoint(q, c.Center()), c.Radius())
}
