package routing

import (
	"time"

	"github.com/bkarpov/mtsp-routing-core/spatial"
)

// Limits bounds the sizes BuildRoutes will accept, mirroring the
// configurable constants of the original system: POINTS_AMOUNT,
// CLUSTERS_AMOUNT, and POINTS_PER_CLUSTER. EDGES_AMOUNT is enforced by
// spatial.Graph itself at edge-insertion time, not here.
type Limits struct {
	PointsAmount     int
	ClustersAmount   int
	PointsPerCluster int
}

// DefaultLimits returns generous bounds suitable for interactive use.
func DefaultLimits() Limits {
	return Limits{
		PointsAmount:     100_000,
		ClustersAmount:   1_000,
		PointsPerCluster: 100_000,
	}
}

// Options configures BuildRoutes.
type Options struct {
	Limits Limits
	// TSPTimeLimit bounds each cluster's genetic-TSP ordering job.
	TSPTimeLimit time.Duration
	// RoutingTimeLimit bounds each cluster's A*-mapping job.
	RoutingTimeLimit time.Duration
	// Seed drives the genetic TSP's RNG; each cluster derives its own
	// independent stream from it so clusters don't share RNG state
	// across goroutines.
	Seed int64
}

// DefaultOptions returns Options with generous limits and the budgets the
// original system used: 30s per-cluster TSP, 10s per-cluster routing.
func DefaultOptions() Options {
	return Options{
		Limits:           DefaultLimits(),
		TSPTimeLimit:     30 * time.Second,
		RoutingTimeLimit: 10 * time.Second,
	}
}

// RoutePair is one cluster's ordered points paired with the edge-level route
// that visits them in that order and returns to the first point.
type RoutePair struct {
	Cluster spatial.Cluster
	Route   []spatial.Segment
}
