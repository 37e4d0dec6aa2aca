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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/planetaria/planetaria/collision"
	"github.com/planetaria/planetaria/coords"
	"github.com/planetaria/planetaria/geometry"
	"github.com/planetaria/planetaria/level"
)

// Walk is the sub-command invoked when running "planetaria walk".
var Walk SubCommand

func initWalk() {
	Walk.Cmd = &cobra.Command{
		Use:   "walk <level>",
		Short: "Move an object along the surface of a block",
		Long: `
Walk places an object of the given radius at the beginning of a block's
outline and moves it forward a fixed distance per step, printing where it
ends up after each step.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(cmd.OutOrStdout(), args[0], walkOptions{
				block:  Walk.Conf.GetUint64("block"),
				radius: Walk.Conf.GetFloat64("radius"),
				speed:  Walk.Conf.GetFloat64("speed"),
				steps:  Walk.Conf.GetInt("steps"),
			})
		},
	}
	Walk.EnvPrefix = "PLANETARIA_WALK"

	flag := Walk.Cmd.Flags()
	flag.Uint64("block", 0, "ID of the block to walk on. Zero picks the lowest ID.")
	flag.Float64("radius", 0, "Radius of the walking object in radians.")
	flag.Float64("speed", 0.01, "Distance travelled per step in radians. Negative walks backwards.")
	flag.Int("steps", 10, "Number of steps.")
}

type walkOptions struct {
	block  uint64
	radius float64
	speed  float64
	steps  int
}

func runWalk(w io.Writer, path string, opt walkOptions) error {
	if opt.steps < 0 {
		return errors.Errorf("steps must not be negative, got %d", opt.steps)
	}
	l, err := level.LoadFile(path)
	if err != nil {
		return err
	}
	world, err := l.Build()
	if err != nil {
		return err
	}
	b, err := pickBlock(world, collision.ColliderID(opt.block))
	if err != nil {
		return err
	}

	v := geometry.NewVisitor(b.Shape(), 0, 0, opt.radius).WithRotation(b.Rotation())
	printStep(w, 0, v)
	for i := 1; i <= opt.steps; i++ {
		v = v.Move(opt.speed, opt.radius)
		printStep(w, i, v)
	}
	return nil
}

func pickBlock(world *collision.World, id collision.ColliderID) (*collision.Block, error) {
	if id != 0 {
		b, ok := world.Block(id)
		if !ok {
			return nil, errors.Errorf("no block with id %d", id)
		}
		return b, nil
	}
	blocks := world.Blocks()
	if len(blocks) == 0 {
		return nil, errors.New("level has no blocks")
	}
	return blocks[0], nil
}

func printStep(w io.Writer, i int, v geometry.Visitor) {
	s := coords.SphericalFromPoint(v.Position())
	fmt.Fprintf(w, "%4d arc=%d (%v) angle=%.6f elevation=%.4f° azimuth=%.4f°\n",
		i, v.Index(), v.Arc().Kind(), v.Angle(), degrees(s.Elevation), degrees(s.Azimuth))
}
