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
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

func TestCurveEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		from, to := randomPoint(rng), randomPoint(rng)
		arc := Curve(from, randomVector(rng), to)
		if got := arc.Begin(0); !near(got, from, epsilon) {
			t.Errorf("%v.Begin(0) = %v, want %v", arc, got, from)
		}
		if got := arc.End(0); !near(got, to, 1e-8) {
			t.Errorf("%v.End(0) = %v, want %v", arc, got, to)
		}
	}
}

func TestCurveTangent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		from, to := randomPoint(rng), randomPoint(rng)
		slope := randomVector(rng)
		want := slope.Sub(from.Mul(from.Dot(slope))).Normalize()
		arc := Curve(from, slope, to)
		if got := arc.Tangent(0); got.Sub(want).Norm() > 1e-8 {
			t.Errorf("Curve(%v, %v, %v).Tangent(0) = %v, want %v", from, slope, to, got, want)
		}
	}
}

func TestCurveDegenerate(t *testing.T) {
	from := s2.PointFromCoords(1, 0, 0)
	to := s2.PointFromCoords(0, 0, 1)

	// A slope along from has no tangential part: a default heading is used.
	arc := Curve(from, from.Vector, to)
	if math.IsNaN(arc.Angle()) || math.IsNaN(arc.Latitude()) {
		t.Fatalf("Curve with parallel slope = %v, want finite arc", arc)
	}
	if got := arc.End(0); !near(got, to, 1e-8) {
		t.Errorf("Curve with parallel slope ends at %v, want %v", got, to)
	}

	// Coinciding endpoints give a zero-length arc.
	arc = Curve(from, r3.Vector{Y: 1}, from)
	if got := arc.Length(0); got > 1e-6 {
		t.Errorf("Curve(p, _, p).Length(0) = %v, want ~0", got)
	}
}

func TestArcKind(t *testing.T) {
	x := s2.PointFromCoords(1, 0, 0)
	y := s2.PointFromCoords(0, 1, 0)
	tests := []struct {
		slope r3.Vector
		want  Kind
	}{
		{r3.Vector{Y: 1}, StraightEdge},
		// Curving away from the normal side.
		{r3.Vector{Y: 1, Z: 0.3}, ConvexEdge},
		// Curving towards it.
		{r3.Vector{Y: 1, Z: -0.3}, ConcaveEdge},
	}
	for _, test := range tests {
		arc := Curve(x, test.slope, y)
		if got := arc.Kind(); got != test.want {
			t.Errorf("Curve(x, %v, y).Kind() = %v, want %v", test.slope, got, test.want)
		}
		if !arc.IsEdge() {
			t.Errorf("Curve(x, %v, y).IsEdge() = false", test.slope)
		}
	}

	line := Line(x, y)
	if got := line.Latitude(); math.Abs(got) > epsilon {
		t.Errorf("Line(x, y).Latitude() = %v, want 0", got)
	}
	if got := line.Center(); !near(got, s2.PointFromCoords(0, 0, 1), epsilon) {
		t.Errorf("Line(x, y).Center() = %v, want (0, 0, 1)", got)
	}
	if got := line.Angle(); math.Abs(got-math.Pi/2) > epsilon {
		t.Errorf("Line(x, y).Angle() = %v, want π/2", got)
	}
}

func TestArcDomainRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		arc := Curve(randomPoint(rng), randomVector(rng), randomPoint(rng))
		for _, e := range []float64{0, 0.1, -0.1} {
			if math.Cos(arc.Latitude()+e) < 0.05 {
				continue
			}
			for k := 0; k <= 16; k++ {
				angle := arc.Angle() * float64(k) / 16
				got := arc.PositionToAngle(arc.Position(angle, e))
				if angleDiff(got, angle) > 1e-8 {
					t.Errorf("%v.PositionToAngle(Position(%v, %v)) = %v", arc, angle, e, got)
				}
				if !arc.Contains(arc.Position(angle, e)) {
					t.Errorf("%v.Contains(Position(%v, %v)) = false", arc, angle, e)
				}
			}
		}
	}
}

func TestArcPositionToAngleAxis(t *testing.T) {
	arc := Line(s2.PointFromCoords(1, 0, 0), s2.PointFromCoords(0, 1, 0))
	if got := arc.PositionToAngle(arc.Center()); got != arc.Angle() {
		t.Errorf("PositionToAngle(center) = %v, want %v", got, arc.Angle())
	}
	if arc.Contains(s2.PointFromCoords(-1, -1, 0)) {
		t.Errorf("Contains((-1, -1, 0)) = true, want false")
	}
}

func TestArcLength(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	const steps = 2000
	for i := 0; i < 50; i++ {
		arc := Curve(randomPoint(rng), randomVector(rng), randomPoint(rng))
		for _, e := range []float64{0, 0.05, -0.05} {
			var sum float64
			prev := arc.Position(0, e)
			for k := 1; k <= steps; k++ {
				p := arc.Position(arc.Angle()*float64(k)/steps, e)
				sum += prev.Distance(p).Radians()
				prev = p
			}
			if got := arc.Length(e); math.Abs(got-sum) > 1e-5 {
				t.Errorf("%v.Length(%v) = %v, want %v", arc, e, got, sum)
			}
		}
	}
}

func TestArcNormal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		arc := Curve(randomPoint(rng), randomVector(rng), randomPoint(rng))
		angle := arc.Angle() * rng.Float64()
		p := arc.Position(angle, 0)
		n := arc.Normal(angle, 0)
		if d := p.Dot(n.Vector); math.Abs(d) > epsilon {
			t.Errorf("Position·Normal = %v, want 0", d)
		}
		if d := arc.Tangent(angle).Dot(n.Vector); math.Abs(d) > epsilon {
			t.Errorf("Tangent·Normal = %v, want 0", d)
		}
		// Extruding moves the position along the normal.
		h := 0.01
		want := s2.Point{Vector: p.Mul(math.Cos(h)).Add(n.Mul(math.Sin(h)))}
		if got := arc.Position(angle, h); !near(got, want, epsilon) {
			t.Errorf("Position(%v, %v) = %v, want %v", angle, h, got, want)
		}
	}
}

func TestArcRotated(t *testing.T) {
	q := mgl64.QuatRotate(0.7, mgl64.Vec3{1, 2, 3}.Normalize())
	arc := Curve(ll(10, 20), r3.Vector{Z: 1}, ll(30, 25))
	rotated := arc.Rotated(q)
	for k := 0; k <= 4; k++ {
		angle := arc.Angle() * float64(k) / 4
		want := RotatePoint(q, arc.Position(angle, 0.1))
		if got := rotated.Position(angle, 0.1); !near(got, want, epsilon) {
			t.Errorf("Rotated.Position(%v) = %v, want %v", angle, got, want)
		}
	}
	if rotated.Kind() != arc.Kind() || rotated.Angle() != arc.Angle() {
		t.Errorf("Rotated changed kind or angle: %v vs %v", rotated, arc)
	}
}

func TestKindString(t *testing.T) {
	for k := StraightEdge; k <= ConcaveCorner; k++ {
		if k.String() == "Kind(?)" {
			t.Errorf("Kind(%d).String() is unnamed", int(k))
		}
		if k.IsEdge() == k.IsCorner() {
			t.Errorf("Kind %v: IsEdge() == IsCorner()", k)
		}
	}
}
