// SPDX-License-Identifier: MIT
// Package: nullnet/edgelist
//
// file.go — path-based helpers.

package edgelist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/nullnet/core"
)

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]core.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open: %w", err)
	}
	defer f.Close()

	pairs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pairs, nil
}

// WriteFile writes edges to path atomically: the data goes to a temporary
// file in the same directory which is renamed over path on success. On
// failure path is left as it was.
func WriteFile(path string, edges []core.Edge) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("edgelist: create temp: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, edges); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("edgelist: close temp: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("edgelist: chmod: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("edgelist: rename: %w", err)
	}

	return nil
}
