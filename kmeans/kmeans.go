package kmeans

import (
	"context"

	"github.com/bkarpov/mtsp-routing-core/spatial"
)

// Cluster partitions points into k balanced clusters. k == 1 returns a
// single cluster containing every point; k >= len(points) returns one
// singleton cluster per point. Otherwise it seeds k centroids on the convex
// hull, then alternates flow-based assignment with centroid recompute for
// up to MaxIterations rounds, stopping early once the centroid set stops
// moving.
func Cluster(ctx context.Context, points []spatial.Point, k int, opts Options) ([]spatial.Cluster, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPointSet
	}
	if k <= 0 {
		return nil, ErrInvalidK
	}

	if k == 1 {
		return []spatial.Cluster{spatial.NewCluster(points)}, nil
	}

	if k >= len(points) {
		clusters := make([]spatial.Cluster, len(points))
		for i, p := range points {
			clusters[i] = spatial.NewCluster([]spatial.Point{p})
		}

		return clusters, nil
	}

	if opts.Solver == nil || opts.RNG == nil {
		defaults := NewOptions()
		if opts.Solver == nil {
			opts.Solver = defaults.Solver
		}
		if opts.RNG == nil {
			opts.RNG = defaults.RNG
		}
	}

	centroids, err := seedCentroids(points, k)
	if err != nil {
		return nil, err
	}

	var grouped [][]spatial.Point

	for iter := 0; iter < MaxIterations; iter++ {
		grouped, err = assign(ctx, points, centroids, opts.Solver)
		if err != nil {
			return nil, err
		}

		next := make([]spatial.Point, k)
		for c, members := range grouped {
			if len(members) == 0 {
				next[c] = points[opts.RNG.Intn(len(points))]
				continue
			}

			center, cerr := spatial.NewCluster(members).Center()
			if cerr != nil {
				return nil, cerr
			}
			next[c] = center
		}

		stable := true
		for c := range centroids {
			if centroids[c] != next[c] {
				stable = false
				break
			}
		}

		centroids = next
		if stable {
			break
		}
	}

	clusters := make([]spatial.Cluster, k)
	for c, members := range grouped {
		clusters[c] = spatial.NewCluster(members)
	}

	return clusters, nil
}
