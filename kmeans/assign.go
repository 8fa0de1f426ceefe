package kmeans

import (
	"context"
	"math"

	"github.com/bkarpov/mtsp-routing-core/mcmf"
	"github.com/bkarpov/mtsp-routing-core/spatial"
)

// assign partitions points into k clusters of balanced size by solving a
// min-cost-max-flow network: source -> each point (cap 1, cost 0) -> each
// centroid (cap 1, cost = scaled distance) -> sink (cap floor(n/k) or
// ceil(n/k), cost 0). Node numbering: source=0, points=1..n,
// centroids=n+1..n+k, sink=n+k+1.
func assign(ctx context.Context, points []spatial.Point, centroids []spatial.Point, solver mcmf.Solver) ([][]spatial.Point, error) {
	n, k := len(points), len(centroids)
	source := 0
	sink := n + k + 1

	base := n / k
	remainder := n % k

	var arcs []mcmf.Arc
	for i, p := range points {
		pointNode := i + 1
		arcs = append(arcs, mcmf.Arc{From: source, To: pointNode, Cap: 1, Cost: 0})
		for c, centroid := range centroids {
			centroidNode := n + c + 1
			cost := math.Floor(p.Distance(centroid) * math.Pow(10, float64(spatial.DefaultPrecision)))
			arcs = append(arcs, mcmf.Arc{From: pointNode, To: centroidNode, Cap: 1, Cost: cost})
		}
	}

	for c := 0; c < k; c++ {
		centroidNode := n + c + 1
		sinkCap := base
		if c < remainder {
			sinkCap++
		}
		arcs = append(arcs, mcmf.Arc{From: centroidNode, To: sink, Cap: sinkCap, Cost: 0})
	}

	net := mcmf.Network{
		NumNodes: n + k + 2,
		Arcs:     arcs,
		Source:   source,
		Sink:     sink,
		Supply:   n,
	}

	result, err := solver.Solve(ctx, net)
	if err != nil {
		return nil, &KMeansError{Cause: err}
	}

	clusters := make([][]spatial.Point, k)
	for i, p := range points {
		pointNode := i + 1
		for c := range centroids {
			centroidNode := n + c + 1
			arcIdx := pointToCentroidArcIndex(i, c, k)
			if arcs[arcIdx].From != pointNode || arcs[arcIdx].To != centroidNode {
				continue
			}
			if result.ArcFlow[arcIdx] > 0 {
				clusters[c] = append(clusters[c], p)
			}
		}
	}

	return clusters, nil
}

// pointToCentroidArcIndex returns the index within the arcs slice built by
// assign for the (point i, centroid c) pair, given k centroids: each point
// contributes one source arc followed by k point->centroid arcs.
func pointToCentroidArcIndex(i, c, k int) int {
	return i*(k+1) + 1 + c
}
