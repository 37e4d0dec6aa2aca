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

	"github.com/golang/geo/s2"
)

func TestCircleCircleIntersectionRadii(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		ca, cb, p := randomPoint(rng), randomPoint(rng), randomPoint(rng)
		if math.Abs(ca.Dot(cb.Vector)) > 0.99 {
			continue
		}
		ra, rb := ca.Distance(p).Radians(), cb.Distance(p).Radians()
		got := CircleCircleIntersection(ca, cb, ra, rb)
		if len(got) != 2 {
			t.Fatalf("CircleCircleIntersection(%v, %v, %v, %v) returned %d points, want 2", ca, cb, ra, rb, len(got))
		}
		found := false
		for _, q := range got {
			if d := ca.Distance(q).Radians(); math.Abs(d-ra) > 1e-7 {
				t.Errorf("distance from centerA = %v, want %v", d, ra)
			}
			if d := cb.Distance(q).Radians(); math.Abs(d-rb) > 1e-7 {
				t.Errorf("distance from centerB = %v, want %v", d, rb)
			}
			found = found || near(q, p, 1e-6)
		}
		if !found {
			t.Errorf("CircleCircleIntersection = %v, want one of them near %v", got, p)
		}
	}
}

func TestCircleCircleIntersectionCases(t *testing.T) {
	z := s2.PointFromCoords(0, 0, 1)
	x := s2.PointFromCoords(1, 0, 0)
	negZ := s2.PointFromCoords(0, 0, -1)
	tests := []struct {
		name           string
		ca, cb         s2.Point
		ra, rb         float64
		want           int
		wantCoincident bool
	}{
		{"disjoint", z, x, 0.1, 0.1, 0, false},
		{"crossing", z, x, math.Pi / 2, math.Pi / 2, 2, false},
		{"tangent", z, x, math.Pi / 4, math.Pi / 4, 2, true},
		{"concentric equal", z, z, 0.3, 0.3, 2, false},
		{"concentric unequal", z, z, 0.3, 0.4, 0, false},
		{"concentric along x", x, x, 0.3, 0.3, 2, false},
		{"antipodal complementary", z, negZ, 0.3, math.Pi - 0.3, 2, false},
		{"antipodal disjoint", z, negZ, 0.1, 0.1, 0, false},
	}
	for _, test := range tests {
		got := CircleCircleIntersection(test.ca, test.cb, test.ra, test.rb)
		if len(got) != test.want {
			t.Errorf("%s: got %d points %v, want %d", test.name, len(got), got, test.want)
			continue
		}
		for _, q := range got {
			if d := test.ca.Distance(q).Radians(); math.Abs(d-test.ra) > 1e-6 {
				t.Errorf("%s: distance from centerA = %v, want %v", test.name, d, test.ra)
			}
		}
		if test.want == 2 {
			if coincident := near(got[0], got[1], 1e-6); coincident != test.wantCoincident {
				t.Errorf("%s: points %v coincide = %v, want %v", test.name, got, coincident, test.wantCoincident)
			}
		}
	}
}

func TestCircleCircleIntersectionHemispheres(t *testing.T) {
	north := s2.PointFromCoords(0, 0, 1)
	south := s2.PointFromCoords(0, 0, -1)
	got := CircleCircleIntersection(north, south, math.Pi/2, math.Pi/2)
	if len(got) != 2 {
		t.Fatalf("CircleCircleIntersection(north, south, π/2, π/2) returned %d points, want 2", len(got))
	}
	for _, p := range got {
		if math.Abs(p.Z) > epsilon {
			t.Errorf("point %v is not on the equator", p)
		}
	}
	if !near(got[0], s2.Point{Vector: got[1].Mul(-1)}, epsilon) {
		t.Errorf("points %v are not antipodal", got)
	}
	east, west := s2.PointFromCoords(1, 0, 0), s2.PointFromCoords(-1, 0, 0)
	if !(near(got[0], east, epsilon) && near(got[1], west, epsilon)) &&
		!(near(got[0], west, epsilon) && near(got[1], east, epsilon)) {
		t.Errorf("CircleCircleIntersection(north, south, π/2, π/2) = %v, want %v and %v", got, east, west)
	}
}

func TestArcArcIntersectionSameCircle(t *testing.T) {
	tests := []struct {
		name string
		a, b Arc
		want s2.Point
		ok   bool
	}{
		{"overlapping", Line(ll(0, 0), ll(0, 20)), Line(ll(0, 10), ll(0, 30)), ll(0, 10), true},
		{"overlapping, opposite directions", Line(ll(0, 0), ll(0, 20)), Line(ll(0, 30), ll(0, 10)), ll(0, 10), true},
		{"nested", Line(ll(0, 0), ll(0, 40)), Line(ll(0, 12), ll(0, 25)), ll(0, 25), true},
		{"disjoint", Line(ll(0, 0), ll(0, 10)), Line(ll(0, 20), ll(0, 30)), s2.Point{}, false},
	}
	for _, test := range tests {
		got, ok := ArcArcIntersection(test.a, test.b, 0)
		if ok != test.ok || ok && !near(got, test.want, 1e-6) {
			t.Errorf("%s: ArcArcIntersection() = %v, %v, want %v, %v", test.name, got, ok, test.want, test.ok)
		}
	}
}

func TestArcArcIntersection(t *testing.T) {
	equator := Line(ll(0, -10), ll(0, 10))
	meridian := Line(ll(-10, 0), ll(10, 0))
	got, ok := ArcArcIntersection(equator, meridian, 0)
	if !ok || !near(got, ll(0, 0), epsilon) {
		t.Errorf("ArcArcIntersection(equator, meridian) = %v, %v, want %v, true", got, ok, ll(0, 0))
	}

	// Same circles, but the meridian arc lies outside the equator arc.
	far := Line(ll(-10, 20), ll(10, 20))
	if got, ok := ArcArcIntersection(equator, far, 0); ok {
		t.Errorf("ArcArcIntersection(equator, far) = %v, true, want false", got)
	}

	// The equator's normal points north, so extrusion raises it.
	e := 0.01
	got, ok = ArcArcIntersection(equator, meridian, e)
	if !ok {
		t.Fatalf("ArcArcIntersection(equator, meridian, %v) found nothing", e)
	}
	if lat := s2.LatLngFromPoint(got).Lat.Radians(); math.Abs(lat-e) > epsilon {
		t.Errorf("extruded intersection latitude = %v, want %v", lat, e)
	}
}

func TestArcPathIntersection(t *testing.T) {
	arc := Line(ll(0, -10), ll(0, 10))
	tests := []struct {
		name       string
		begin, end s2.Point
		extrusion  float64
		ok         bool
		wantLat    float64
	}{
		{"crossing", ll(5, 0), ll(-5, 0), 0, true, 0},
		{"extruded", ll(5, 0), ll(-5, 0), 0.01, true, 0.01},
		{"short", ll(5, 0), ll(2, 0), 0, false, 0},
		{"beside", ll(5, 30), ll(-5, 30), 0, false, 0},
		{"stationary", ll(0, 0), ll(0, 0), 0, false, 0},
	}
	for _, test := range tests {
		got, ok := ArcPathIntersection(arc, test.begin, test.end, test.extrusion)
		if ok != test.ok {
			t.Errorf("%s: ArcPathIntersection ok = %v, want %v", test.name, ok, test.ok)
			continue
		}
		if !ok {
			continue
		}
		if lat := s2.LatLngFromPoint(got).Lat.Radians(); math.Abs(lat-test.wantLat) > epsilon {
			t.Errorf("%s: latitude = %v, want %v", test.name, lat, test.wantLat)
		}
	}
}

func TestArcPathIntersectionSmallCircle(t *testing.T) {
	// The path meets the circle twice but only once inside the arc.
	arc := Curve(ll(0, -20), ll(10, 0).Vector, ll(0, 20))
	begin, end := ll(30, 0), ll(-30, 0)
	got, ok := ArcPathIntersection(arc, begin, end, 0)
	if !ok {
		t.Fatalf("ArcPathIntersection found nothing")
	}
	if !arc.Contains(got) {
		t.Errorf("intersection %v outside the arc", got)
	}
	lat := s2.LatLngFromPoint(got).Lat.Degrees()
	if lat <= 0 {
		t.Errorf("intersection latitude = %v, want the northern crossing", lat)
	}
}
