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

// Package precision holds the numeric tolerances shared by every geometric
// comparison in this module. No other package declares its own epsilon.
package precision

import "math"

const (
	// Tolerance is the threshold for approximate comparisons of unit vectors,
	// dot products and angles.
	Tolerance = 1e-5

	// MinAngle is the smallest positive angle an arc may span. Zero-length
	// corners use it so that length/angle ratios stay finite.
	MinAngle = 1e-7
)

// ApproxEqual reports whether a and b differ by no more than Tolerance.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// ApproxZero reports whether |x| <= Tolerance.
func ApproxZero(x float64) bool {
	return math.Abs(x) <= Tolerance
}

// Clamp limits x to [lo, hi]. NaN is mapped to hi.
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return hi
	}
	return math.Max(lo, math.Min(hi, x))
}

// EuclideanMod returns x modulo m in the range [0, m) for m > 0, unlike
// math.Mod which keeps the sign of x.
func EuclideanMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}

// Wrap returns i modulo n in the range [0, n). It is used for cyclic indexing
// of arc chains.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// SafeAcos is math.Acos with its argument clamped to [-1, 1].
func SafeAcos(x float64) float64 {
	return math.Acos(Clamp(x, -1, 1))
}
