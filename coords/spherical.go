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

// Package coords converts points on the unit sphere between Cartesian,
// spherical, cube-map, octahedral and octahedron-face representations.
//
// Every conversion is an explicit, named function. Chaining two
// representations always goes through s2.Point, e.g.
//
//	sph := coords.SphericalFromPoint(coords.PointFromCube(c))
//
// All conversions are total: degenerate input (a pole, a face seam) produces
// an approximate but well-defined result.
package coords

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/planetaria/planetaria/precision"
)

// Spherical is a direction given by its elevation from the +Z pole, in
// [0, π], and its azimuth around Z measured from +X, in [0, 2π).
type Spherical struct {
	Elevation float64
	Azimuth   float64
}

// Normalized wraps the elevation into [0, π] and the azimuth into [0, 2π).
// Elevations past a pole continue down the opposite meridian, so the azimuth
// is flipped by π.
func (s Spherical) Normalized() Spherical {
	el := precision.EuclideanMod(s.Elevation, 2*math.Pi)
	az := s.Azimuth
	if el > math.Pi {
		el = 2*math.Pi - el
		az += math.Pi
	}
	return Spherical{Elevation: el, Azimuth: precision.EuclideanMod(az, 2*math.Pi)}
}

// SphericalFromPoint returns the spherical coordinates of p.
func SphericalFromPoint(p s2.Point) Spherical {
	return Spherical{
		Elevation: precision.SafeAcos(p.Z),
		Azimuth:   precision.EuclideanMod(math.Atan2(p.Y, p.X), 2*math.Pi),
	}
}

// PointFromSpherical returns the unit vector for s.
func PointFromSpherical(s Spherical) s2.Point {
	s = s.Normalized()
	sinEl, cosEl := math.Sincos(s.Elevation)
	sinAz, cosAz := math.Sincos(s.Azimuth)
	return s2.PointFromCoords(sinEl*cosAz, sinEl*sinAz, cosEl)
}

// LatLngFromSpherical converts s to an s2.LatLng. Latitude is measured from
// the equator, so it is π/2 minus the elevation.
func LatLngFromSpherical(s Spherical) s2.LatLng {
	s = s.Normalized()
	return s2.LatLng{
		Lat: s1.Angle(math.Pi/2 - s.Elevation),
		Lng: s1.Angle(math.Remainder(s.Azimuth, 2*math.Pi)),
	}
}

// SphericalFromLatLng converts ll to spherical coordinates.
func SphericalFromLatLng(ll s2.LatLng) Spherical {
	return Spherical{
		Elevation: math.Pi/2 - ll.Lat.Radians(),
		Azimuth:   ll.Lng.Radians(),
	}.Normalized()
}

// PointsFromLatLngs converts a batch of LatLngs to points. Level outlines are
// loaded this way, one ring at a time.
func PointsFromLatLngs(lls []s2.LatLng) []s2.Point {
	n := len(lls)
	if n == 0 {
		return nil
	}
	buf := make([]float64, 5*n)
	lats, lngs, xs, ys, zs := buf[:n], buf[n:2*n], buf[2*n:3*n], buf[3*n:4*n], buf[4*n:]
	for i, ll := range lls {
		lats[i] = ll.Lat.Radians()
		lngs[i] = ll.Lng.Radians()
	}
	BasePointsFromLatLngsBatch(lats, lngs, xs, ys, zs)

	out := make([]s2.Point, n)
	for i := range out {
		out[i] = s2.Point{Vector: r3.Vector{X: xs[i], Y: ys[i], Z: zs[i]}.Normalize()}
	}
	return out
}
