// Package astar implements A* shortest-path search over a spatial.Graph,
// lifting an ordered point sequence into an edge-level route.
//
// The heuristic h(v) = euclidean distance from v to the target is
// admissible because every spatial.Segment's length is constrained to be at
// least the chord distance between its endpoints (spatial.NewSegment
// enforces this), so no composite path can ever be shorter than a straight
// line. Given an admissible, consistent heuristic, the first time a vertex
// is reached is already optimal — the search never needs to relax an
// already-recorded vertex, unlike plain Dijkstra's repeated decrease-key.
//
// Complexity: O(E log V), bounded by heap operations over the graph's edges.
package astar
