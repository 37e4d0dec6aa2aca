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
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// PointBatch accumulates points in SoA layout for the batch kernels.
type PointBatch struct {
	X, Y, Z []float64
}

// Add appends p to the batch.
func (b *PointBatch) Add(p s2.Point) {
	b.X = append(b.X, p.X)
	b.Y = append(b.Y, p.Y)
	b.Z = append(b.Z, p.Z)
}

// Len returns the number of points in the batch.
func (b *PointBatch) Len() int {
	return len(b.X)
}

// At returns the i-th point.
func (b *PointBatch) At(i int) s2.Point {
	return s2.Point{Vector: r3.Vector{X: b.X[i], Y: b.Y[i], Z: b.Z[i]}}
}

// Dots returns the dot product of v with every point in the batch.
func (b *PointBatch) Dots(v r3.Vector) []float64 {
	dst := make([]float64, b.Len())
	BaseDotProductConstBatch(v.X, v.Y, v.Z, b.X, b.Y, b.Z, dst)
	return dst
}

// Sum returns the vector sum of the batch.
func (b *PointBatch) Sum() r3.Vector {
	x, y, z := BaseSumPoints(b.X, b.Y, b.Z)
	return r3.Vector{X: x, Y: y, Z: z}
}

// Nearest returns the index of the point closest to p, or -1 for an empty
// batch.
func (b *PointBatch) Nearest(p s2.Point) int {
	if b.Len() == 0 {
		return -1
	}
	dots := b.Dots(p.Vector)
	_, hi := BaseBatchMinMax(dots)
	for i, d := range dots {
		if d == hi {
			return i
		}
	}
	return 0
}
