// Package bfs answers breadth-first reachability queries on a core.Graph.
//
// Searcher is built for hot loops such as the connectivity check after every
// tentative edge swap: it keeps its frontier and visited buffers between
// calls and stops as soon as it meets the target.
//
// Determinism
//
//	core.Graph iterates neighbors in adjacency order and Searcher enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) worst case per query.
//   - Memory: O(V) for the queue and visited set, retained across queries.
//
// Usage
//
//	s := bfs.NewSearcher(g)
//	ok := s.Reachable(a, b)
package bfs
