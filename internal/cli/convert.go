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

package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/planetaria/planetaria/coords"
	"github.com/planetaria/planetaria/level"
)

// Convert is the sub-command invoked when running "planetaria convert".
var Convert SubCommand

func initConvert() {
	Convert.Cmd = &cobra.Command{
		Use:   "convert",
		Short: "Convert points and level files between representations",
		Long: `
Convert prints a point in every coordinate system planetaria knows about, or
re-encodes a GeoJSON, WKT or YAML level file as YAML.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := Convert.Conf
			if path := c.GetString("level"); path != "" {
				return convertLevel(cmd.OutOrStdout(), path)
			}
			p, err := parsePoint(c.GetString("point"), c.GetString("latlng"))
			if err != nil {
				return err
			}
			return convertPoint(cmd.OutOrStdout(), p, c.GetString("format"))
		},
	}
	Convert.EnvPrefix = "PLANETARIA_CONVERT"

	flag := Convert.Cmd.Flags()
	flag.String("point", "", "Point as \"x,y,z\". Normalized before conversion.")
	flag.String("latlng", "", "Point as \"lat,lng\" in degrees.")
	flag.String("format", "text", "Output format, one of [text, yaml].")
	flag.String("level", "", "Level file to re-encode as YAML.")
}

// conversion lists the representations of a single point.
type conversion struct {
	Point      []float64 `yaml:"point,flow"`
	LatLng     []float64 `yaml:"latlng,flow"`
	Spherical  []float64 `yaml:"spherical,flow"`
	Cube       cubeOut   `yaml:"cube"`
	Octahedral []float64 `yaml:"octahedral,flow"`
	Octahedron cubeOut   `yaml:"octahedron"`
}

type cubeOut struct {
	Face int       `yaml:"face"`
	UV   []float64 `yaml:"uv,flow"`
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.Errorf("%q: want %d comma separated numbers", s, n)
	}
	out := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%q", s)
		}
		out[i] = f
	}
	return out, nil
}

func parsePoint(point, latlng string) (s2.Point, error) {
	switch {
	case point != "" && latlng != "":
		return s2.Point{}, errors.New("only one of --point and --latlng may be set")
	case point != "":
		v, err := parseFloats(point, 3)
		if err != nil {
			return s2.Point{}, err
		}
		vec := r3.Vector{X: v[0], Y: v[1], Z: v[2]}
		if vec.Norm() == 0 {
			return s2.Point{}, errors.New("--point must not be the zero vector")
		}
		return s2.Point{Vector: vec.Normalize()}, nil
	case latlng != "":
		v, err := parseFloats(latlng, 2)
		if err != nil {
			return s2.Point{}, err
		}
		return s2.PointFromLatLng(s2.LatLngFromDegrees(v[0], v[1])), nil
	}
	return s2.Point{}, errors.New("one of --point, --latlng or --level is required")
}

func convertPoint(w io.Writer, p s2.Point, format string) error {
	ll := s2.LatLngFromPoint(p)
	sph := coords.SphericalFromPoint(p)
	cube := coords.CubeFromPoint(p)
	oct := coords.OctahedralFromPoint(p)
	ouv := coords.OctahedronUVFromPoint(p)
	c := conversion{
		Point:      []float64{p.X, p.Y, p.Z},
		LatLng:     []float64{ll.Lat.Degrees(), ll.Lng.Degrees()},
		Spherical:  []float64{degrees(sph.Elevation), degrees(sph.Azimuth)},
		Cube:       cubeOut{Face: cube.Face, UV: []float64{cube.UV.X, cube.UV.Y}},
		Octahedral: []float64{oct.UV.X, oct.UV.Y},
		Octahedron: cubeOut{Face: ouv.Face, UV: []float64{ouv.UV.X, ouv.UV.Y}},
	}

	switch format {
	case "yaml":
		out, err := yaml.Marshal(c)
		if err != nil {
			return errors.Wrap(err, "while encoding conversion")
		}
		_, err = w.Write(out)
		return err
	case "text":
		fmt.Fprintf(w, "point       %.9f %.9f %.9f\n", c.Point[0], c.Point[1], c.Point[2])
		fmt.Fprintf(w, "latlng      %.6f° %.6f°\n", c.LatLng[0], c.LatLng[1])
		fmt.Fprintf(w, "spherical   elevation=%.6f° azimuth=%.6f°\n", c.Spherical[0], c.Spherical[1])
		fmt.Fprintf(w, "cube        face=%d uv=(%.6f, %.6f)\n", c.Cube.Face, c.Cube.UV[0], c.Cube.UV[1])
		fmt.Fprintf(w, "octahedral  uv=(%.6f, %.6f)\n", c.Octahedral[0], c.Octahedral[1])
		fmt.Fprintf(w, "octahedron  face=%d uv=(%.6f, %.6f)\n", c.Octahedron.Face, c.Octahedron.UV[0], c.Octahedron.UV[1])
		return nil
	}
	return errors.Errorf("unknown format %q", format)
}

func convertLevel(w io.Writer, path string) error {
	l, err := level.LoadFile(path)
	if err != nil {
		return err
	}
	out, err := l.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
