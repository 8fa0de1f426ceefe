package routing

import (
	"context"
	"errors"
	"iter"
	"sync"
	"time"

	"github.com/bkarpov/mtsp-routing-core/astar"
	"github.com/bkarpov/mtsp-routing-core/kmeans"
	"github.com/bkarpov/mtsp-routing-core/spatial"
	"github.com/bkarpov/mtsp-routing-core/tsp"
)

// BuildRoutes validates (points, k, graph), balances points into k clusters,
// orders each cluster with a genetic TSP, and threads each ordering onto
// graph as a closed edge-level route. The TSP phase and the A*-mapping
// phase each run one job per cluster, in parallel; both phases collect
// results back into cluster-index order, so the returned sequence is
// deterministic regardless of which job finishes first.
//
// The returned iterator ranges over already-computed results: BuildRoutes
// fails fast and returns a non-nil error (with a nil sequence) if
// validation, clustering, or any per-cluster job fails — there are no
// partial results on failure, matching the "no partial results" policy.
func BuildRoutes(ctx context.Context, points []spatial.Point, k int, graph *spatial.Graph, opts Options) (iter.Seq[RoutePair], error) {
	if err := validateInput(points, k, graph, opts.Limits); err != nil {
		return nil, err
	}

	clusters, err := kmeans.Cluster(ctx, points, k, kmeans.NewOptions())
	if err != nil {
		var kerr *kmeans.KMeansError
		if errors.As(err, &kerr) {
			return nil, &KMeansError{Cause: kerr}
		}

		return nil, err
	}

	ordered, err := runTSPPhase(ctx, clusters, opts)
	if err != nil {
		return nil, err
	}

	routes, err := runRoutingPhase(ctx, ordered, graph, opts)
	if err != nil {
		return nil, err
	}

	pairs := make([]RoutePair, len(ordered))
	for i, cluster := range ordered {
		pairs[i] = RoutePair{Cluster: spatial.NewCluster(cluster), Route: routes[i]}
	}

	return func(yield func(RoutePair) bool) {
		for _, pair := range pairs {
			if !yield(pair) {
				return
			}
		}
	}, nil
}

// runTSPPhase orders each cluster's points in parallel, one goroutine per
// cluster, collecting results back into cluster-index order.
func runTSPPhase(ctx context.Context, clusters []spatial.Cluster, opts Options) ([][]spatial.Point, error) {
	results := make([][]spatial.Point, len(clusters))
	errs := make([]error, len(clusters))

	var wg sync.WaitGroup
	for i, cluster := range clusters {
		wg.Add(1)
		go func(i int, cluster spatial.Cluster) {
			defer wg.Done()

			done := make(chan struct{})
			var ordered []spatial.Point
			var jobErr error

			go func() {
				ordered, jobErr = tsp.Solve(cluster.Points, tsp.Options{
					TimeLimit: opts.TSPTimeLimit,
					Seed:      deriveClusterSeed(opts.Seed, i),
				})
				close(done)
			}()

			timeout := time.After(opts.TSPTimeLimit + time.Second)
			select {
			case <-done:
				results[i], errs[i] = ordered, jobErr
			case <-timeout:
				errs[i] = &TimeoutError{Cluster: i, Phase: "tsp"}
			case <-ctx.Done():
				errs[i] = ctx.Err()
			}
		}(i, cluster)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// runRoutingPhase threads each cluster's ordered points onto graph in
// parallel, one goroutine per cluster, collecting results back into
// cluster-index order. A job exceeding opts.RoutingTimeLimit fails with
// TimeoutError rather than blocking the orchestrator indefinitely.
func runRoutingPhase(ctx context.Context, ordered [][]spatial.Point, graph *spatial.Graph, opts Options) ([][]spatial.Segment, error) {
	results := make([][]spatial.Segment, len(ordered))
	errs := make([]error, len(ordered))

	var wg sync.WaitGroup
	for i, points := range ordered {
		wg.Add(1)
		go func(i int, points []spatial.Point) {
			defer wg.Done()

			done := make(chan struct{})
			var route []spatial.Segment
			var jobErr error

			go func() {
				route, jobErr = mapRouteOnGraph(points, graph)
				close(done)
			}()

			timeout := time.After(opts.RoutingTimeLimit)
			select {
			case <-done:
				if jobErr != nil {
					errs[i] = &RoutingError{Cluster: i, Cause: jobErr}
				} else {
					results[i] = route
				}
			case <-timeout:
				errs[i] = &TimeoutError{Cluster: i, Phase: "routing"}
			case <-ctx.Done():
				errs[i] = ctx.Err()
			}
		}(i, points)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// mapRouteOnGraph threads an ordered cluster onto graph: it runs A* between
// each consecutive pair of points (wrapping the last back to the first) and
// concatenates the resulting edge sequences into one closed route.
func mapRouteOnGraph(ordered []spatial.Point, graph *spatial.Graph) ([]spatial.Segment, error) {
	var route []spatial.Segment

	for i, start := range ordered {
		finish := ordered[(i+1)%len(ordered)]

		segment, err := astar.Search(graph, start, finish)
		if err != nil {
			return nil, err
		}
		route = append(route, segment...)
	}

	return route, nil
}

// deriveClusterSeed mixes a base seed with a cluster index so every
// cluster's genetic TSP run draws from an independent deterministic stream
// even though they execute concurrently.
func deriveClusterSeed(base int64, cluster int) int64 {
	x := uint64(base) ^ (uint64(cluster) + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
