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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const squareLevel = `
blocks:
  - id: 1
    curves:
      - latlng: [80, 45]
      - latlng: [80, -45]
      - latlng: [80, -135]
      - latlng: [80, 135]
fields:
  - id: 10
    curves:
      - latlng: [70, 45]
      - latlng: [70, -45]
      - latlng: [70, -135]
      - latlng: [70, 135]
`

const bowtieLevel = `
blocks:
  - id: 3
    curves:
      - latlng: [5, -5]
      - latlng: [5, 5]
      - latlng: [-5, -5]
      - latlng: [-5, 5]
`

func writeLevel(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "level.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runValidate(&buf, writeLevel(t, squareLevel), true))

	out := buf.String()
	require.Contains(t, out, "block 1: 8 arcs, closed=true, convex=true, self-intersecting=false")
	require.Contains(t, out, "  StraightEdge: 4\n")
	require.Contains(t, out, "  ConvexCorner: 4\n")
	require.Contains(t, out, "field 10: 4 arcs")
	require.True(t, strings.HasSuffix(out, ": ok\n"))
}

func TestValidateStrict(t *testing.T) {
	path := writeLevel(t, bowtieLevel)

	var buf bytes.Buffer
	require.NoError(t, runValidate(&buf, path, false))
	require.Contains(t, buf.String(), "self-intersecting=true")

	buf.Reset()
	err := runValidate(&buf, path, true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 self-intersecting blocks")
}

func TestValidateMissingFile(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, runValidate(&buf, filepath.Join(t.TempDir(), "nope.yaml"), false))
}

func TestWalk(t *testing.T) {
	path := writeLevel(t, squareLevel)

	var buf bytes.Buffer
	require.NoError(t, runWalk(&buf, path, walkOptions{speed: 0.01, steps: 3}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "0 arc=0"))
	require.True(t, strings.HasPrefix(strings.TrimSpace(lines[3]), "3 arc="))

	buf.Reset()
	err := runWalk(&buf, path, walkOptions{block: 42, steps: 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no block with id 42")

	require.Error(t, runWalk(&buf, path, walkOptions{steps: -1}))
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("0, 0, 2", "")
	require.NoError(t, err)
	require.InDelta(t, 1, p.Z, 1e-12)

	p, err = parsePoint("", "0,90")
	require.NoError(t, err)
	require.True(t, p.ApproxEqual(s2.PointFromCoords(0, 1, 0)))

	for _, bad := range [][2]string{
		{"", ""},
		{"1,0,0", "0,0"},
		{"1,0", ""},
		{"0,0,0", ""},
		{"", "north,0"},
	} {
		_, err := parsePoint(bad[0], bad[1])
		require.Error(t, err, "point=%q latlng=%q", bad[0], bad[1])
	}
}

func TestConvertPoint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, convertPoint(&buf, s2.PointFromCoords(0, 0, 1), "text"))
	require.Contains(t, buf.String(), "cube        face=2")

	require.Error(t, convertPoint(&buf, s2.PointFromCoords(0, 0, 1), "xml"))
}

func TestConvertCommand(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"convert", "--latlng", "0,90", "--format", "yaml"})
	require.NoError(t, RootCmd.Execute())

	var got conversion
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, 1, got.Cube.Face)
	require.InDelta(t, 0, got.LatLng[0], 1e-9)
	require.InDelta(t, 90, got.LatLng[1], 1e-9)
	require.InDelta(t, 90, got.Spherical[0], 1e-9)
	require.InDelta(t, 90, got.Spherical[1], 1e-9)
}

func TestValidateCommand(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"validate", "--strict", writeLevel(t, bowtieLevel)})
	require.Error(t, RootCmd.Execute())
}
