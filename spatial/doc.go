// Package spatial defines the planar geometric primitives shared by every
// routing engine in this module: Point, Segment, Cluster, and Graph.
//
// All coordinate arithmetic is built on gonum.org/v1/gonum/spatial/r2.Vec,
// so distance and turn-direction calculations reuse a maintained, tested
// vector type instead of hand-rolled float pairs.
//
// Points are rounded to a fixed decimal precision at construction time
// (PRECISION, default 6 places) so that repeated derivation — centroids,
// midpoints, rounded distances — produces stable, comparable values:
// two Points within PRECISION decimals of each other compare equal and
// hash identically.
//
// Graph is a directed, weighted adjacency-list graph keyed by Point
// identity (not by any external ID scheme). AddEdge mirrors an edge into
// both endpoints' adjacency lists, so the structure is walked
// bidirectionally even though Segment itself records an ordered
// (start, finish) pair. Edge count is bounded by a configurable limit;
// insertion past that limit fails with LimitExceededError.
//
// Errors:
//
//	ErrEmptyPointSet     - an operation required at least one point.
//	ErrShortSegment      - Segment's declared length is below the Euclidean
//	                       chord between its endpoints.
//	ErrEmptyCluster      - Cluster.Center called on a cluster with no points.
//	LimitExceededError   - Graph.AddEdge exceeded its configured edge limit.
package spatial
