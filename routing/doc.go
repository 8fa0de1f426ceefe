// Package routing is the MTSP pipeline orchestrator: given a point set, a
// desired cluster count k, and a graph to route on, it validates the input,
// balances the points into k clusters (kmeans), orders each cluster with a
// genetic TSP (tsp), and threads each ordering onto the graph as an
// edge-level route (astar). TSP and A* run one job per cluster, in parallel,
// with results collected back into cluster-index order so output stays
// deterministic regardless of completion order.
//
// Worker granularity stops at the cluster boundary: a single TSP run or A*
// search is never itself parallelized, since the k clusters already expose
// as much parallelism as the pipeline needs.
package routing
