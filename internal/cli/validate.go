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

	"github.com/planetaria/planetaria/geometry"
	"github.com/planetaria/planetaria/level"
)

// Validate is the sub-command invoked when running "planetaria validate".
var Validate SubCommand

func initValidate() {
	Validate.Cmd = &cobra.Command{
		Use:   "validate <level>",
		Short: "Check the outlines of a level file",
		Long: `
Validate loads a level, reports for every block whether its outline is
convex and whether it crosses itself, and checks that every field is convex.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0], Validate.Conf.GetBool("strict"))
		},
	}
	Validate.EnvPrefix = "PLANETARIA_VALIDATE"

	flag := Validate.Cmd.Flags()
	flag.Bool("strict", false, "Fail if any block outline crosses itself.")
}

func runValidate(w io.Writer, path string, strict bool) error {
	l, err := level.LoadFile(path)
	if err != nil {
		return err
	}
	world, err := l.Build()
	if err != nil {
		return err
	}

	problems := 0
	for _, b := range world.Blocks() {
		s := b.Shape()
		crossing := s.SelfIntersecting()
		if crossing {
			problems++
		}
		fmt.Fprintf(w, "block %d: %d arcs, closed=%v, convex=%v, self-intersecting=%v, perimeter=%.6f, bound=%.3f°\n",
			b.ID, s.Len(), s.Closed(), s.IsConvexHull(), crossing, s.Perimeter(0), s.Bound().Radius().Degrees())
		kinds := make(map[geometry.Kind]int)
		for _, a := range s.Arcs() {
			kinds[a.Kind()]++
		}
		for k := geometry.StraightEdge; k <= geometry.ConcaveCorner; k++ {
			if kinds[k] > 0 {
				fmt.Fprintf(w, "  %v: %d\n", k, kinds[k])
			}
		}
	}
	for _, f := range world.Fields() {
		fmt.Fprintf(w, "field %d: %d arcs, bound=%.3f°\n", f.ID, f.Shape().Len(), f.Bound().Radius().Degrees())
	}
	if strict && problems > 0 {
		return errors.Errorf("%s: %d self-intersecting blocks", path, problems)
	}
	fmt.Fprintf(w, "%s: ok\n", path)
	return nil
}
