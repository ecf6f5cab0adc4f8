// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/profile"

	"github.com/katalvlaran/nullnet/config"
)

type stopper interface {
	Stop()
}

type nopStop struct{}

func (nopStop) Stop() {}

// startProfiling starts the profile selected by cfg, or nothing when no
// directory or kind is set.
func startProfiling(cfg config.ProfileConfig) stopper {
	if cfg.Dir == "" || cfg.Kind == "" {
		return nopStop{}
	}

	opts := []func(*profile.Profile){profile.ProfilePath(cfg.Dir), profile.Quiet, profile.NoShutdownHook}
	switch cfg.Kind {
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	case "mutex":
		opts = append(opts, profile.MutexProfile)
	case "block":
		opts = append(opts, profile.BlockProfile)
	}

	return profile.Start(opts...)
}
