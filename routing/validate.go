package routing

import "github.com/bkarpov/mtsp-routing-core/spatial"

// validateInput runs BuildRoutes' pre-checks: non-empty points, positive k,
// all configured limits, and mutual reachability of every point on graph.
func validateInput(points []spatial.Point, k int, graph *spatial.Graph, limits Limits) error {
	if len(points) == 0 {
		return ErrEmptyPoints
	}
	if k <= 0 {
		return ErrNonPositiveK
	}
	if len(points) > limits.PointsAmount {
		return &LimitExceededError{Limit: "POINTS_AMOUNT", Max: limits.PointsAmount}
	}
	if k > limits.ClustersAmount {
		return &LimitExceededError{Limit: "CLUSTERS_AMOUNT", Max: limits.ClustersAmount}
	}
	if perCluster := len(points) / k; perCluster > limits.PointsPerCluster {
		return &LimitExceededError{Limit: "POINTS_PER_CLUSTER", Max: limits.PointsPerCluster}
	}

	if unreachable := findUnreachablePoints(points, graph); len(unreachable) > 0 {
		return newUnreachableError(unreachable)
	}

	return nil
}

// findUnreachablePoints returns every point in points that either has no
// adjacency entry in graph at all, or is not reachable via graph edges from
// the first point that has one. The walk passes through every graph vertex,
// including vertices that are not in points. Returns nil when every point is
// mutually reachable.
func findUnreachablePoints(points []spatial.Point, graph *spatial.Graph) []spatial.Point {
	var present []spatial.Point
	var isolated []spatial.Point

	for _, p := range points {
		if graph.HasVertex(p) {
			present = append(present, p)
		} else {
			isolated = append(isolated, p)
		}
	}

	if len(present) == 0 {
		return isolated
	}

	visited := make(map[spatial.Point]bool, len(present))
	stack := []spatial.Point{present[0]}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[p] {
			continue
		}
		visited[p] = true

		for _, edge := range graph.Neighbors(p) {
			stack = append(stack, edge.OtherEndpoint(p))
		}
	}

	var unreached []spatial.Point
	for _, p := range present {
		if !visited[p] {
			unreached = append(unreached, p)
		}
	}

	return append(isolated, unreached...)
}
