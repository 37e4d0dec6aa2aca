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

// Kind classifies an arc by its role in a chain and by its curvature.
type Kind int

// The six kinds of arc. Edges are walkable surfaces; corners join two edges.
const (
	StraightEdge Kind = iota
	ConvexEdge
	ConcaveEdge
	StraightCorner
	ConvexCorner
	ConcaveCorner
)

// IsEdge reports whether k is one of the three edge kinds.
func (k Kind) IsEdge() bool {
	return k <= ConcaveEdge
}

// IsCorner reports whether k is one of the three corner kinds.
func (k Kind) IsCorner() bool {
	return k >= StraightCorner && k <= ConcaveCorner
}

func (k Kind) String() string {
	switch k {
	case StraightEdge:
		return "StraightEdge"
	case ConvexEdge:
		return "ConvexEdge"
	case ConcaveEdge:
		return "ConcaveEdge"
	case StraightCorner:
		return "StraightCorner"
	case ConvexCorner:
		return "ConvexCorner"
	case ConcaveCorner:
		return "ConcaveCorner"
	}
	return "Kind(?)"
}
