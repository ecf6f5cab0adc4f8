// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/nullnet/config"
	"github.com/katalvlaran/nullnet/runner"
)

// permuteFlags mirrors config.Config; only flags the user set override the
// configuration file.
type permuteFlags struct {
	configPath    string
	input         string
	output        string
	seed          int64
	q             float64
	unconstrained bool
	maxAttempts   int
	batchFloor    int
	profileDir    string
	profileKind   string
	verbose       bool
	logLevel      string
	logFormat     string
}

func (f *permuteFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file (default: $NULLNET_CONFIG, then $XDG_CONFIG_HOME/nullnet/config.yaml)")
	fs.StringVarP(&f.input, "input", "i", "", "edge list to permute")
	fs.StringVarP(&f.output, "output", "o", "", "where to write the permuted edge list")
	fs.Int64VarP(&f.seed, "seed", "s", 0, "random seed (default: derived from the clock and logged)")
	fs.Float64VarP(&f.q, "q", "q", config.DefaultQ, "perform at least ceil(Q*|E|) swaps")
	fs.BoolVar(&f.unconstrained, "unconstrained", false, "skip the connectivity check and do exactly ceil(Q*|E|) attempts")
	fs.IntVar(&f.maxAttempts, "max-attempts", 0, "per-batch ceiling on edge-pair draws (default 2^30)")
	fs.IntVar(&f.batchFloor, "batch-floor", 0, "minimum swaps per batch (default 100)")
	fs.StringVar(&f.profileDir, "profile-dir", "", "turn profiling on and write profiles to this directory")
	fs.StringVar(&f.profileKind, "profile", "cpu", "resource to profile (cpu, mem, mutex, block)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (default info)")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json (default text)")
}

// apply overlays the flags the user set onto cfg.
func (f *permuteFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if fs.Changed("q") {
		cfg.Q = f.q
	}
	if fs.Changed("unconstrained") {
		if f.unconstrained {
			cfg.Mode = "unconstrained"
		} else {
			cfg.Mode = "connected"
		}
	}
	if fs.Changed("max-attempts") {
		cfg.MaxAttempts = f.maxAttempts
	}
	if fs.Changed("batch-floor") {
		cfg.BatchFloor = f.batchFloor
	}
	if fs.Changed("profile-dir") {
		cfg.Profile.Dir = f.profileDir
		if cfg.Profile.Kind == "" || fs.Changed("profile") {
			cfg.Profile.Kind = f.profileKind
		}
	} else if fs.Changed("profile") {
		cfg.Profile.Kind = f.profileKind
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
}

func newPermuteCmd(ctx context.Context) *cobra.Command {
	f := &permuteFlags{}
	cmd := &cobra.Command{
		Use:   "permute",
		Short: "Randomize a network while preserving every node degree.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd.Flags(), cfg)
			if err = cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format, f.verbose)
			if err != nil {
				return err
			}
			defer startProfiling(cfg.Profile).Stop()

			rep, err := runner.New(logger).Run(ctx, cfg)
			if err != nil {
				return err
			}
			if cfg.Seed == nil {
				logger.WithField("seed", rep.Seed).Info("rerun with --seed to reproduce this output")
			}

			return nil
		},
	}
	f.register(cmd.Flags())

	return cmd
}
