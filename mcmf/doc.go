// Package mcmf implements successive-shortest-paths minimum-cost maximum-flow
// over an explicit arc list, keyed by opaque integer node IDs rather than a
// general-purpose graph type. kmeans is the sole caller: it builds a
// source→points→centroids→sink network, solves it, and decodes the flow into
// a cluster assignment.
//
// Solver is exported as an interface so an assignment step can be swapped for
// an alternative implementation without touching kmeans; SSPSolver is the
// only implementation shipped here.
//
// Algorithm: successive shortest augmenting paths. Each iteration finds a
// minimum-cost path from source to sink in the residual network using SPFA
// (a queue-based Bellman-Ford), then saturates it by its bottleneck capacity.
// SPFA tolerates the negative-cost reverse arcs that appear in the residual
// network; a plain Dijkstra would not without a potential-reweighting scheme.
// The loop stops once Network.Supply units have been routed, with minimum
// total cost among flows of that value; if no augmenting path remains before
// that, Solve returns ErrNoFeasibleFlow.
//
// Complexity: O(F * V * E) in the worst case: each SPFA search costs
// O(V * E), and F, the number of augmentations, is bounded by total supply;
// acceptable at the point and centroid counts kmeans operates on.
package mcmf
