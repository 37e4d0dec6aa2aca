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

package level

import (
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

const (
	kindBlock = "block"
	kindField = "field"
)

// ParseGeoJSON reads a feature collection. Each feature is a Polygon
// (closed outline, exterior ring only) or a LineString (open outline).
// Recognised properties are "kind" ("block" or "field"), "id", "platform",
// "dynamic", "material", "friction" and "elasticity".
func ParseGeoJSON(data []byte) (*Level, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "while decoding GeoJSON")
	}
	l := &Level{}
	for i, f := range fc.Features {
		if err := l.addFeature(f); err != nil {
			return nil, errors.Wrapf(err, "feature %d", i)
		}
	}
	l.assignIDs()
	return l, nil
}

func (l *Level) addFeature(f *geojson.Feature) error {
	if f.Geometry == nil {
		return errors.New("feature has no geometry")
	}
	var (
		ring   [][]float64
		closed bool
	)
	switch {
	case f.Geometry.IsPolygon():
		if len(f.Geometry.Polygon) == 0 {
			return errors.New("polygon has no rings")
		}
		ring, closed = f.Geometry.Polygon[0], true
	case f.Geometry.IsLineString():
		ring = f.Geometry.LineString
	default:
		return errors.Errorf("unsupported geometry type %s", f.Geometry.Type)
	}
	block := Block{
		ID:       uint64(f.PropertyMustInt("id", 0)),
		Platform: f.PropertyMustBool("platform", false),
		Dynamic:  f.PropertyMustBool("dynamic", false),
		Material: Material{
			Name:       f.PropertyMustString("material", ""),
			Friction:   f.PropertyMustFloat64("friction", 0),
			Elasticity: f.PropertyMustFloat64("elasticity", 0),
		},
	}
	return l.addOutline(f.PropertyMustString("kind", kindBlock), ring, closed, block)
}

// ParseWKT reads one POLYGON or LINESTRING per line, in longitude/latitude
// degrees. A line may be prefixed with "field" to declare a field. Blank
// lines and lines starting with # are skipped.
func ParseWKT(text string) (*Level, error) {
	l := &Level{}
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		kind := kindBlock
		if first, rest, ok := strings.Cut(line, " "); ok && strings.EqualFold(first, kindField) {
			kind, line = kindField, strings.TrimSpace(rest)
		}
		g, err := wkt.Unmarshal(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n+1)
		}
		var (
			coords []geom.Coord
			closed bool
		)
		switch g := g.(type) {
		case *geom.Polygon:
			if g.NumLinearRings() == 0 {
				return nil, errors.Errorf("line %d: polygon has no rings", n+1)
			}
			coords, closed = g.LinearRing(0).Coords(), true
		case *geom.LineString:
			coords = g.Coords()
		default:
			return nil, errors.Errorf("line %d: unsupported geometry %T", n+1, g)
		}
		ring := make([][]float64, len(coords))
		for i, c := range coords {
			ring[i] = []float64(c)
		}
		if err := l.addOutline(kind, ring, closed, Block{}); err != nil {
			return nil, errors.Wrapf(err, "line %d", n+1)
		}
	}
	l.assignIDs()
	return l, nil
}

// addOutline appends a block or field built from a [lng, lat] ring.
// Closed rings are reversed from the GeoJSON winding to the block winding.
func (l *Level) addOutline(kind string, ring [][]float64, closed bool, block Block) error {
	curves, err := lngLatCurves(ring, closed)
	if err != nil {
		return err
	}
	switch kind {
	case kindBlock:
		block.Open = !closed
		block.Curves = curves
		l.Blocks = append(l.Blocks, block)
	case kindField:
		if !closed {
			return errors.New("field outline must be a polygon")
		}
		l.Fields = append(l.Fields, Field{ID: block.ID, Curves: curves})
	default:
		return errors.Errorf("unknown kind %q", kind)
	}
	return nil
}

// assignIDs numbers outlines that were given no ID.
func (l *Level) assignIDs() {
	for i := range l.Blocks {
		if l.Blocks[i].ID == 0 {
			l.Blocks[i].ID = l.nextID()
		}
	}
	for i := range l.Fields {
		if l.Fields[i].ID == 0 {
			l.Fields[i].ID = l.nextID()
		}
	}
}
