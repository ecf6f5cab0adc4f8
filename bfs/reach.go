// SPDX-License-Identifier: MIT
// Package: nullnet/bfs
//
// reach.go — buffer-reusing s–t reachability.

package bfs

import "github.com/katalvlaran/nullnet/core"

// Searcher answers repeated s–t reachability queries on one graph while
// reusing its frontier and visited buffers between calls.
//
// A Searcher observes the graph live, so queries see every mutation made
// since the previous call. It is not safe for concurrent use.
type Searcher struct {
	graph   *core.Graph
	queue   []core.NodeID
	visited map[core.NodeID]struct{}
}

// NewSearcher returns a Searcher bound to g.
func NewSearcher(g *core.Graph) *Searcher {
	return &Searcher{
		graph:   g,
		queue:   make([]core.NodeID, 0, 64),
		visited: make(map[core.NodeID]struct{}, 64),
	}
}

// Reachable reports whether dst can be reached from src.
// A node reaches itself; unknown nodes reach nothing.
//
// Complexity: O(V + E) worst case, typically far less thanks to the early exit.
func (s *Searcher) Reachable(src, dst core.NodeID) bool {
	if !s.graph.HasNode(src) || !s.graph.HasNode(dst) {
		return false
	}
	if src == dst {
		return true
	}

	clear(s.visited)
	s.queue = append(s.queue[:0], src)
	s.visited[src] = struct{}{}

	found := false
	for qi := 0; qi < len(s.queue) && !found; qi++ {
		s.graph.ForEachNeighbor(s.queue[qi], func(nbr core.NodeID) bool {
			if nbr == dst {
				found = true
				return false
			}
			if _, ok := s.visited[nbr]; !ok {
				s.visited[nbr] = struct{}{}
				s.queue = append(s.queue, nbr)
			}
			return true
		})
	}

	return found
}
