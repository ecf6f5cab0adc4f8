// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// newLogger builds a logrus logger for the given level and format
// ("text" or "json"). verbose forces debug level.
func newLogger(out io.Writer, level, format string, verbose bool) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(out)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}

	return logger, nil
}
