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
	"testing"

	"github.com/golang/geo/s2"
)

func TestCornerKinds(t *testing.T) {
	tests := []struct {
		name     string
		reversed bool
		want     Kind
	}{
		{"clockwise", false, ConvexCorner},
		{"counterclockwise", true, ConcaveCorner},
	}
	for _, test := range tests {
		s := squareShape(80, test.reversed)
		if got := s.Len(); got != 8 {
			t.Fatalf("%s: Len() = %d, want 8", test.name, got)
		}
		for i := 1; i < s.Len(); i += 2 {
			c := s.Arc(i)
			if got := c.Kind(); got != test.want {
				t.Errorf("%s: Arc(%d).Kind() = %v, want %v", test.name, i, got, test.want)
			}
			// Spherical squares have interior angles above π/2.
			if c.Angle() <= 0 || c.Angle() >= math.Pi/2 {
				t.Errorf("%s: Arc(%d).Angle() = %v, want in (0, π/2)", test.name, i, c.Angle())
			}
			if got := c.Length(0); got > epsilon {
				t.Errorf("%s: Arc(%d).Length(0) = %v, want 0", test.name, i, got)
			}
		}
	}
}

func TestCornerStraight(t *testing.T) {
	s := NewShape(Polygon([]s2.Point{ll(0, 0), ll(0, 10), ll(0, 20)}, false), false, true)
	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := s.Arc(1).Kind(); got != StraightCorner {
		t.Errorf("Arc(1).Kind() = %v, want %v", got, StraightCorner)
	}
}

func TestCornerContinuity(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		s := squareShape(80, reversed)
		for i := 0; i < s.Len(); i += 2 {
			left, corner, right := s.Arc(i), s.Arc(i+1), s.Arc(i+2)
			for _, e := range []float64{0, 0.02, -0.02} {
				if got, want := corner.Begin(e), left.End(e); !near(got, want, epsilon) {
					t.Errorf("reversed=%v corner %d: Begin(%v) = %v, want %v", reversed, i+1, e, got, want)
				}
				if got, want := corner.End(e), right.Begin(e); !near(got, want, epsilon) {
					t.Errorf("reversed=%v corner %d: End(%v) = %v, want %v", reversed, i+1, e, got, want)
				}
			}
			if got, want := corner.BeginNormal(0), left.EndNormal(0); !near(got, want, epsilon) {
				t.Errorf("reversed=%v corner %d: BeginNormal = %v, want %v", reversed, i+1, got, want)
			}
			if got, want := corner.EndNormal(0), right.BeginNormal(0); !near(got, want, epsilon) {
				t.Errorf("reversed=%v corner %d: EndNormal = %v, want %v", reversed, i+1, got, want)
			}
		}
	}
}

func TestCornerRoundedLength(t *testing.T) {
	s := squareShape(80, false)
	corner := s.Arc(1)
	e := 0.01
	want := corner.Angle() * math.Sin(e)
	if got := corner.Length(e); math.Abs(got-want) > epsilon {
		t.Errorf("Length(%v) = %v, want %v", e, got, want)
	}
}

func TestKindConcaveAt(t *testing.T) {
	tests := []struct {
		kind      Kind
		extrusion float64
		want      bool
	}{
		{ConvexCorner, 0.1, false},
		{ConvexCorner, -0.1, true},
		{ConcaveCorner, 0.1, true},
		{ConcaveCorner, -0.1, false},
		{ConcaveCorner, 0, false},
		{StraightCorner, 0.1, false},
		{ConcaveEdge, 0.1, false},
	}
	for _, test := range tests {
		if got := test.kind.ConcaveAt(test.extrusion); got != test.want {
			t.Errorf("%v.ConcaveAt(%v) = %v, want %v", test.kind, test.extrusion, got, test.want)
		}
	}
}
