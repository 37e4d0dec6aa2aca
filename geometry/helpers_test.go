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
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

const epsilon = 1e-9

func ll(lat, lng float64) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng))
}

func randomPoint(rng *rand.Rand) s2.Point {
	return s2.PointFromCoords(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
}

func randomVector(rng *rand.Rand) r3.Vector {
	return r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
}

func near(a, b s2.Point, eps float64) bool {
	return a.Distance(b).Radians() <= eps
}

// angleDiff is the distance between two angles modulo 2π.
func angleDiff(a, b float64) float64 {
	return math.Abs(math.Remainder(a-b, 2*math.Pi))
}

// polarSquare returns four vertices at the given latitude around the north
// pole, clockwise as seen from outside unless reversed.
func polarSquare(lat float64, reversed bool) []s2.Point {
	lngs := []float64{45, -45, -135, 135}
	if reversed {
		lngs = []float64{45, 135, -135, -45}
	}
	pts := make([]s2.Point, len(lngs))
	for i, lng := range lngs {
		pts[i] = ll(lat, lng)
	}
	return pts
}

func squareShape(lat float64, reversed bool) *Shape {
	return NewShape(Polygon(polarSquare(lat, reversed), true), true, true)
}
