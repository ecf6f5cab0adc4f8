// Package edgelist reads and writes networks as plain-text edge lists.
//
// Format:
//
//	# comment lines start with '#'
//	1	2
//	2 3 0.75   <- fields beyond the second are ignored
//
// One edge per line, two whitespace-separated integer node IDs. Blank and
// comment lines are skipped. Output is "i<TAB>j" per edge, lines joined by
// '\n' with no trailing newline.
//
// Read does not canonicalize, deduplicate or drop self-loops; that is the
// job of core.FromPairs, which reports what it folded.
package edgelist
