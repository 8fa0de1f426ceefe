package spatial

import (
	"errors"
	"fmt"
)

// ErrEmptyPointSet indicates an operation was given zero points where at
// least one was required. No function in this package returns it; hull and
// kmeans report empty or too-small inputs with their own errors.
var ErrEmptyPointSet = errors.New("spatial: empty point set")

// ErrShortSegment indicates a Segment's declared length is shorter than the
// Euclidean distance between its endpoints, violating the chord-is-a-lower-
// bound invariant that A*'s admissible heuristic depends on.
var ErrShortSegment = errors.New("spatial: segment length shorter than euclidean distance")

// ErrEmptyCluster indicates Cluster.Center was called on a cluster with no
// points; a geometric center is undefined in that case.
var ErrEmptyCluster = errors.New("spatial: geometric center of empty cluster")

// ErrSameEndpoints indicates a Segment was constructed with start == finish;
// Segments connect two distinct points.
var ErrSameEndpoints = errors.New("spatial: segment endpoints must be distinct")

// LimitExceededError is returned when Graph.AddEdge is called on a graph
// that has already reached its configured edge limit.
type LimitExceededError struct {
	// Limit names the configured bound that was exceeded.
	Limit string
	// Max is the configured maximum.
	Max int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("spatial: limit exceeded: %s (max %d)", e.Limit, e.Max)
}
