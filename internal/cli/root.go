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

// Package cli implements the planetaria command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/planetaria/planetaria/geometry"
)

// SubCommand couples a cobra command with the viper configuration that
// resolves its flags from the config file, environment and command line.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// RootCmd is the planetaria command.
var RootCmd = &cobra.Command{
	Use:   "planetaria",
	Short: "Planetaria: tools for spherical 2D worlds",
	Long: `
Planetaria inspects the level files of games played on the surface of a
sphere. It validates block and field outlines, walks objects along them and
converts points between coordinate systems.
`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

var rootConf = viper.New()

var subcommands = []*SubCommand{&Validate, &Walk, &Convert}

func init() {
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by values set with environment variables and flags.")
	RootCmd.PersistentFlags().String("log_level", "warn",
		"Log level, one of [debug, info, warn, error].")
	bindFlags(rootConf, "PLANETARIA", RootCmd.PersistentFlags())

	initValidate()
	initWalk()
	initConvert()
	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		bindFlags(sc.Conf, sc.EnvPrefix, sc.Cmd.Flags(), RootCmd.PersistentFlags())
	}
}

// bindFlags makes conf resolve every flag in sets, with environment
// variables named PREFIX_FLAG taking precedence over flag defaults.
func bindFlags(conf *viper.Viper, prefix string, sets ...*pflag.FlagSet) {
	for _, set := range sets {
		if err := conf.BindPFlags(set); err != nil {
			panic(err)
		}
	}
	conf.SetEnvPrefix(prefix)
	conf.AutomaticEnv()
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger reads the config file, if any, and installs a console logger
// at the configured level.
func setupLogger(cmd *cobra.Command, args []string) error {
	if cfg := rootConf.GetString("config"); cfg != "" {
		rootConf.SetConfigFile(cfg)
		if err := rootConf.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "while reading config %s", cfg)
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "while reading config %s", cfg)
			}
		}
	}

	level, err := zapcore.ParseLevel(rootConf.GetString("log_level"))
	if err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "while building logger")
	}
	geometry.SetLogger(logger)
	return nil
}
