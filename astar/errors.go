package astar

import "errors"

// ErrVertexNotFound is returned when start is absent from the graph's
// adjacency structure. finish absent is not an error: it is indistinguishable
// from finish being unreachable, and Search returns an empty path for both.
var ErrVertexNotFound = errors.New("astar: start vertex not found in graph")
