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

// Package level loads world descriptions from authoring formats and builds
// collision worlds from them.
//
// Three formats are understood:
//   - YAML curve lists (.yaml, .yml), the native format.
//   - GeoJSON feature collections (.geojson, .json) of Polygon and
//     LineString outlines.
//   - WKT (.wkt), one POLYGON or LINESTRING per line.
//
// Longitude/latitude outlines follow the GeoJSON convention of exterior
// rings wound counterclockwise. They are reversed on import because solid
// blocks are wound clockwise.
package level

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/planetaria/planetaria/collision"
	"github.com/planetaria/planetaria/coords"
	"github.com/planetaria/planetaria/geometry"
)

// Level is a parsed world description.
type Level struct {
	Blocks []Block `yaml:"blocks"`
	Fields []Field `yaml:"fields,omitempty"`
}

// Block describes one solid outline.
type Block struct {
	ID       uint64   `yaml:"id"`
	Open     bool     `yaml:"open,omitempty"`
	Platform bool     `yaml:"platform,omitempty"`
	Dynamic  bool     `yaml:"dynamic,omitempty"`
	Material Material `yaml:"material,omitempty"`
	Curves   []Curve  `yaml:"curves"`
}

// Field describes one convex overlap region.
type Field struct {
	ID     uint64  `yaml:"id"`
	Curves []Curve `yaml:"curves"`
}

// Material mirrors collision.Material.
type Material struct {
	Name       string  `yaml:"name,omitempty"`
	Friction   float64 `yaml:"friction,omitempty"`
	Elasticity float64 `yaml:"elasticity,omitempty"`
}

// Curve is one curve point. Exactly one of Point (x, y, z) and LatLng
// (degrees) is set. Without a Tangent the edge is a great circle to the
// next curve point.
type Curve struct {
	Point   []float64 `yaml:"point,omitempty,flow"`
	LatLng  []float64 `yaml:"latlng,omitempty,flow"`
	Tangent []float64 `yaml:"tangent,omitempty,flow"`
}

// LoadFile reads a level, choosing the format by file extension.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "while reading level %s", path)
	}
	var l *Level
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		l, err = ParseYAML(data)
	case ".geojson", ".json":
		l, err = ParseGeoJSON(data)
	case ".wkt":
		l, err = ParseWKT(string(data))
	default:
		return nil, errors.Errorf("level %s: unknown format %q", path, ext)
	}
	return l, errors.Wrapf(err, "while parsing level %s", path)
}

// ParseYAML decodes a YAML level. Unknown keys are rejected.
func ParseYAML(data []byte) (*Level, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var l Level
	if err := dec.Decode(&l); err != nil {
		return nil, errors.Wrap(err, "while decoding YAML")
	}
	return &l, nil
}

// Encode writes the level in the native YAML format.
func (l *Level) Encode() ([]byte, error) {
	out, err := yaml.Marshal(l)
	return out, errors.Wrap(err, "while encoding YAML")
}

func (c Curve) point() (s2.Point, error) {
	if len(c.Point) != 3 || len(c.LatLng) != 0 {
		return s2.Point{}, errors.Errorf("curve needs either point [x, y, z] or latlng [lat, lng], got %+v", c)
	}
	v := r3.Vector{X: c.Point[0], Y: c.Point[1], Z: c.Point[2]}
	if v.Norm() == 0 {
		return s2.Point{}, errors.New("point is the zero vector")
	}
	return s2.Point{Vector: v.Normalize()}, nil
}

// latLng reports the curve's position when it is given in degrees.
func (c Curve) latLng() (s2.LatLng, bool, error) {
	if len(c.LatLng) != 2 || len(c.Point) != 0 {
		return s2.LatLng{}, false, nil
	}
	lat, lng := c.LatLng[0], c.LatLng[1]
	if math.Abs(lat) > 90 {
		return s2.LatLng{}, false, errors.Errorf("latitude %v out of range", lat)
	}
	return s2.LatLngFromDegrees(lat, lng), true, nil
}

// CurvePoints converts curves to geometry curve points. closed controls
// where the last curve's default tangent points.
func CurvePoints(curves []Curve, closed bool) ([]geometry.CurvePoint, error) {
	pts := make([]s2.Point, len(curves))
	var lls []s2.LatLng
	var at []int
	for i, c := range curves {
		ll, ok, err := c.latLng()
		if err != nil {
			return nil, errors.Wrapf(err, "curve %d", i)
		}
		if ok {
			lls = append(lls, ll)
			at = append(at, i)
			continue
		}
		p, err := c.point()
		if err != nil {
			return nil, errors.Wrapf(err, "curve %d", i)
		}
		pts[i] = p
	}
	for k, p := range coords.PointsFromLatLngs(lls) {
		pts[at[k]] = p
	}
	out := geometry.Polygon(pts, closed)
	for i, c := range curves {
		if c.Tangent == nil {
			continue
		}
		if len(c.Tangent) != 3 {
			return nil, errors.Errorf("curve %d: tangent needs 3 components, got %d", i, len(c.Tangent))
		}
		out[i].Tangent = r3.Vector{X: c.Tangent[0], Y: c.Tangent[1], Z: c.Tangent[2]}
	}
	return out, nil
}

// Build creates a collision world holding every block and field.
func (l *Level) Build() (*collision.World, error) {
	w := collision.NewWorld()
	for _, desc := range l.Blocks {
		b, err := desc.Build()
		if err != nil {
			return nil, err
		}
		if err := w.AddBlock(b); err != nil {
			return nil, err
		}
	}
	for _, desc := range l.Fields {
		curves, err := CurvePoints(desc.Curves, true)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", desc.ID)
		}
		f, err := collision.NewField(collision.ColliderID(desc.ID), curves)
		if err != nil {
			return nil, err
		}
		if err := w.AddField(f); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Build creates the collision block described by b.
func (b Block) Build() (*collision.Block, error) {
	if len(b.Curves) < 2 {
		return nil, errors.Errorf("block %d: need at least 2 curves, got %d", b.ID, len(b.Curves))
	}
	curves, err := CurvePoints(b.Curves, !b.Open)
	if err != nil {
		return nil, errors.Wrapf(err, "block %d", b.ID)
	}
	out := collision.NewBlock(collision.ColliderID(b.ID), curves, !b.Open)
	out.Platform = b.Platform
	out.Dynamic = b.Dynamic
	out.Material = collision.Material(b.Material)
	return out, nil
}

// nextID returns one more than the largest ID in use.
func (l *Level) nextID() uint64 {
	var id uint64
	for _, b := range l.Blocks {
		id = max(id, b.ID)
	}
	for _, f := range l.Fields {
		id = max(id, f.ID)
	}
	return id + 1
}

// lngLatCurves converts a [lng, lat] degree ring to curves, dropping a
// repeated closing vertex and optionally reversing the winding.
func lngLatCurves(ring [][]float64, reverse bool) ([]Curve, error) {
	if n := len(ring); n > 1 && equalCoords(ring[0], ring[n-1]) {
		ring = ring[:n-1]
	}
	curves := make([]Curve, len(ring))
	for i, c := range ring {
		if len(c) < 2 {
			return nil, errors.Errorf("coordinate %d has %d components, want at least 2", i, len(c))
		}
		j := i
		if reverse {
			j = len(ring) - 1 - i
		}
		curves[j] = Curve{LatLng: []float64{c[1], c[0]}}
	}
	return curves, nil
}

func equalCoords(a, b []float64) bool {
	if len(a) < 2 || len(b) < 2 {
		return false
	}
	return a[0] == b[0] && a[1] == b[1]
}
