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
	"math"
	"sort"
	"sync"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/planetaria/planetaria/geometry"
)

// World is a registry of blocks and fields. It is safe for concurrent use.
type World struct {
	mu     sync.RWMutex
	blocks map[ColliderID]*Block
	fields map[ColliderID]*Field
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{
		blocks: make(map[ColliderID]*Block),
		fields: make(map[ColliderID]*Field),
	}
}

// AddBlock registers b. IDs are shared between blocks and fields.
func (w *World) AddBlock(b *Block) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.taken(b.ID) {
		return errors.Errorf("collider %d already registered", b.ID)
	}
	w.blocks[b.ID] = b
	return nil
}

// AddField registers f.
func (w *World) AddField(f *Field) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.taken(f.ID) {
		return errors.Errorf("collider %d already registered", f.ID)
	}
	w.fields[f.ID] = f
	return nil
}

func (w *World) taken(id ColliderID) bool {
	_, b := w.blocks[id]
	_, f := w.fields[id]
	return b || f
}

// Remove unregisters the block or field with the given id.
func (w *World) Remove(id ColliderID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.taken(id) {
		return false
	}
	delete(w.blocks, id)
	delete(w.fields, id)
	return true
}

// Block returns the block registered under id.
func (w *World) Block(id ColliderID) (*Block, bool) {
	w.mu.RLock()
	b, ok := w.blocks[id]
	w.mu.RUnlock()
	if !ok {
		geometry.Logger().Error("block lookup missed", zap.Uint64("collider", uint64(id)))
	}
	return b, ok
}

// Field returns the field registered under id.
func (w *World) Field(id ColliderID) (*Field, bool) {
	w.mu.RLock()
	f, ok := w.fields[id]
	w.mu.RUnlock()
	if !ok {
		geometry.Logger().Error("field lookup missed", zap.Uint64("collider", uint64(id)))
	}
	return f, ok
}

// Blocks returns every block ordered by ID.
func (w *World) Blocks() []*Block {
	w.mu.RLock()
	out := make([]*Block, 0, len(w.blocks))
	for _, b := range w.blocks {
		out = append(out, b)
	}
	w.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Fields returns every field ordered by ID.
func (w *World) Fields() []*Field {
	w.mu.RLock()
	out := make([]*Field, 0, len(w.fields))
	for _, f := range w.fields {
		out = append(out, f)
	}
	w.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve looks up block id and resolves the path near arc hint.
func (w *World) Resolve(id ColliderID, hint int, prev, cur s2.Point, radius float64) (Collision, bool) {
	b, ok := w.Block(id)
	if !ok || !b.Active {
		return Collision{}, false
	}
	return b.Interactor().Resolve(hint, prev, cur, radius)
}

// Raycast returns the first collision along the path from prev to cur
// against any active block.
func (w *World) Raycast(prev, cur s2.Point, radius float64) (Collision, bool) {
	path := pathBound(prev, cur).Expanded(s1.Angle(math.Abs(radius)))
	var (
		best  Collision
		found bool
	)
	for _, b := range w.Blocks() {
		if !b.Active || !b.Bound().Intersects(path) {
			continue
		}
		c, ok := b.Interactor().Raycast(prev, cur, radius)
		if !ok {
			continue
		}
		if !found || c.Point.Dot(prev.Vector) > best.Point.Dot(prev.Vector) {
			best, found = c, true
		}
	}
	return best, found
}

// pathBound returns a cap around the great circle path from a to b.
func pathBound(a, b s2.Point) s2.Cap {
	mid := a.Add(b.Vector)
	if mid.Norm() == 0 {
		return s2.FullCap()
	}
	return s2.CapFromCenterAngle(s2.Point{Vector: mid.Normalize()}, a.Distance(b)/2)
}

// Overlaps returns the active blocks overlapping field id.
func (w *World) Overlaps(id ColliderID) []*Block {
	f, ok := w.Field(id)
	if !ok || !f.Active {
		return nil
	}
	var out []*Block
	for _, b := range w.Blocks() {
		if b.Active && f.Bound().Intersects(b.Bound()) && f.Overlaps(b) {
			out = append(out, b)
		}
	}
	return out
}

// Contacts returns, for every other active block touching block id, the
// indices of that block's edges crossing block id's outline.
func (w *World) Contacts(id ColliderID) map[ColliderID][]int {
	b, ok := w.Block(id)
	if !ok {
		return nil
	}
	out := make(map[ColliderID][]int)
	for _, other := range w.Blocks() {
		if other.ID == id || !other.Active {
			continue
		}
		rel := geometry.RelativeRotation(b.Rotation(), other.Rotation())
		if hits := b.Shape().BlockCollision(other.Shape(), rel); len(hits) > 0 {
			out[other.ID] = hits
		}
	}
	return out
}
