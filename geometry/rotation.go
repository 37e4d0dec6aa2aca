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
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

func vec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func vector(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// RotatePoint applies q to p and renormalizes the result.
func RotatePoint(q mgl64.Quat, p s2.Point) s2.Point {
	return s2.Point{Vector: vector(q.Rotate(vec3(p.Vector))).Normalize()}
}

// RotateVector applies q to v.
func RotateVector(q mgl64.Quat, v r3.Vector) r3.Vector {
	return vector(q.Rotate(vec3(v)))
}

// RelativeRotation returns the rotation that maps coordinates local to a
// frame oriented by other into coordinates local to a frame oriented by this.
func RelativeRotation(this, other mgl64.Quat) mgl64.Quat {
	return this.Inverse().Mul(other).Normalize()
}

// quatFromBasis returns the rotation taking the X, Y and Z axes to the
// right-handed orthonormal basis (x, y, z).
func quatFromBasis(x, y, z r3.Vector) mgl64.Quat {
	m := mgl64.Mat3FromCols(vec3(x), vec3(y), vec3(z))
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

var (
	unitX = mgl64.Vec3{1, 0, 0}
	unitY = mgl64.Vec3{0, 1, 0}
	unitZ = mgl64.Vec3{0, 0, 1}
)
