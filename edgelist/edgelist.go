// SPDX-License-Identifier: MIT
// Package: nullnet/edgelist
//
// edgelist.go — streaming reader and writer.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/nullnet/core"
)

// ErrMalformedEdge indicates a non-comment, non-blank line that does not
// start with two integer node IDs. The wrapped error carries the 1-based
// line number and the offending text.
var ErrMalformedEdge = errors.New("edgelist: malformed edge")

const (
	commentPrefix = "#"
	// maxLineBytes bounds a single input line.
	maxLineBytes = 1 << 20
)

// Read parses an edge list from r into raw pairs, in input order.
//
// Errors:
//   - ErrMalformedEdge (wrapped with line number) on a bad line.
//   - I/O errors from r, wrapped.
//
// Complexity: O(input size).
func Read(r io.Reader) ([]core.Pair, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		out    []core.Pair
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrMalformedEdge, lineNo, line, err)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read after line %d: %w", lineNo, err)
	}

	return out, nil
}

func parseLine(line string) (core.Pair, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return core.Pair{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	i, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return core.Pair{}, err
	}
	j, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return core.Pair{}, err
	}

	return core.Pair{I: core.NodeID(i), J: core.NodeID(j)}, nil
}

// Write emits edges as "U\tV" lines joined by '\n', without a trailing
// newline. An empty slice writes nothing.
func Write(w io.Writer, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 48)
	for i, e := range edges {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = strconv.AppendInt(buf, int64(e.U), 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(e.V), 10)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("edgelist: write edge %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: flush: %w", err)
	}

	return nil
}
