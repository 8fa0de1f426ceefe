// Package kmeans implements balanced K-Means clustering of planar points:
// equal-size clusters (up to the remainder of n/k) assigned by solving a
// min-cost-max-flow network rather than nearest-centroid lookup, so cluster
// sizes stay balanced even when the input is lopsided.
//
// Seeding picks the first two centroids as the farthest-apart pair on the
// convex hull (hull.ConvexHull), then greedily adds the point farthest from
// the current centroid set until k centroids are chosen. Refinement
// alternates a flow-based assignment (mcmf.Solver) with centroid recompute,
// stopping early once centroids stop moving or after MaxIterations rounds.
package kmeans
