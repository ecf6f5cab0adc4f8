// SPDX-License-Identifier: MIT
// Package: nullnet/config

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// EnvConfigPath names the environment variable holding a config path.
	EnvConfigPath = "NULLNET_CONFIG"
	// ConfigDirName is the directory under the XDG config dirs.
	ConfigDirName = "nullnet"
	// ConfigFileName is the file name inside ConfigDirName.
	ConfigFileName = "config.yaml"
)

// FindConfigPath returns the config file to load, or "" when none applies.
//
// Priority:
//  1. explicit (the --config flag); must exist
//  2. $NULLNET_CONFIG; must exist
//  3. $XDG_CONFIG_HOME/nullnet/config.yaml, then each $XDG_CONFIG_DIRS entry
func FindConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return existing(explicit)
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return existing(path)
	}
	if path, err := xdg.SearchConfigFile(filepath.Join(ConfigDirName, ConfigFileName)); err == nil {
		return path, nil
	}

	return "", nil
}

func existing(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("config file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidConfig, path)
	}

	return path, nil
}
