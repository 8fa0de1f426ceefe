package routing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkarpov/mtsp-routing-core/routing"
	"github.com/bkarpov/mtsp-routing-core/spatial"
)

func mustSegment(t *testing.T, start, finish spatial.Point, length float64) spatial.Segment {
	t.Helper()
	seg, err := spatial.NewSegment(start, finish, length)
	require.NoError(t, err)

	return seg
}

func testOptions() routing.Options {
	opts := routing.DefaultOptions()
	opts.TSPTimeLimit = 100 * time.Millisecond
	opts.RoutingTimeLimit = 2 * time.Second

	return opts
}

func TestBuildRoutes_RejectsUnreachablePoints(t *testing.T) {
	points := []spatial.Point{
		spatial.NewPoint(1, 2), spatial.NewPoint(2, 3), spatial.NewPoint(2, 1), spatial.NewPoint(4, 1),
		spatial.NewPoint(4, 3), spatial.NewPoint(5, 2),
	}

	g := spatial.NewGraph()
	for _, e := range []spatial.Segment{
		mustSegment(t, spatial.NewPoint(1, 2), spatial.NewPoint(2, 3), 0),
		mustSegment(t, spatial.NewPoint(2, 1), spatial.NewPoint(3, 2), 0),
		mustSegment(t, spatial.NewPoint(2, 3), spatial.NewPoint(3, 2), 0),
		mustSegment(t, spatial.NewPoint(3, 2), spatial.NewPoint(4, 1), 0),
		mustSegment(t, spatial.NewPoint(4, 3), spatial.NewPoint(5, 2), 0),
	} {
		require.NoError(t, g.AddEdge(e))
	}

	_, err := routing.BuildRoutes(context.Background(), points, 2, g, testOptions())
	require.Error(t, err)

	var validationErr *routing.InputValidationError
	assert.ErrorAs(t, err, &validationErr)

	require.NoError(t, g.AddEdge(mustSegment(t, spatial.NewPoint(2, 3), spatial.NewPoint(4, 3), 0)))

	_, err = routing.BuildRoutes(context.Background(), points, 2, g, testOptions())
	assert.NoError(t, err)
}

func TestBuildRoutes_TwoBridgedHexagons(t *testing.T) {
	figure1 := []spatial.Point{
		spatial.NewPoint(1, 1), spatial.NewPoint(1, 2),
		spatial.NewPoint(2, 3), spatial.NewPoint(3, 3),
		spatial.NewPoint(3, 2), spatial.NewPoint(2, 1),
	}
	figure2 := []spatial.Point{
		spatial.NewPoint(7, 6), spatial.NewPoint(7, 7),
		spatial.NewPoint(8, 8), spatial.NewPoint(9, 8),
		spatial.NewPoint(10, 7), spatial.NewPoint(10, 6),
	}
	points := append(append([]spatial.Point{}, figure1...), figure2...)

	contour1 := []spatial.Segment{
		mustSegment(t, spatial.NewPoint(1, 1), spatial.NewPoint(1, 2), 0),
		mustSegment(t, spatial.NewPoint(1, 2), spatial.NewPoint(2, 3), 0),
		mustSegment(t, spatial.NewPoint(2, 3), spatial.NewPoint(3, 3), 0),
		mustSegment(t, spatial.NewPoint(3, 3), spatial.NewPoint(3, 2), 0),
		mustSegment(t, spatial.NewPoint(3, 2), spatial.NewPoint(2, 1), 0),
		mustSegment(t, spatial.NewPoint(2, 1), spatial.NewPoint(1, 1), 0),
	}
	interior1 := []spatial.Segment{
		mustSegment(t, spatial.NewPoint(1, 1), spatial.NewPoint(2, 2), 0),
		mustSegment(t, spatial.NewPoint(2, 2), spatial.NewPoint(3, 3), 0),
		mustSegment(t, spatial.NewPoint(1, 2), spatial.NewPoint(2, 1), 0),
		mustSegment(t, spatial.NewPoint(2, 3), spatial.NewPoint(3, 2), 0),
		mustSegment(t, spatial.NewPoint(2, 3), spatial.NewPoint(2, 2), 0),
		mustSegment(t, spatial.NewPoint(2, 2), spatial.NewPoint(2, 1), 0),
		mustSegment(t, spatial.NewPoint(1, 2), spatial.NewPoint(2, 2), 0),
		mustSegment(t, spatial.NewPoint(2, 2), spatial.NewPoint(3, 2), 0),
	}
	contour2 := []spatial.Segment{
		mustSegment(t, spatial.NewPoint(7, 6), spatial.NewPoint(7, 7), 0),
		mustSegment(t, spatial.NewPoint(7, 7), spatial.NewPoint(8, 8), 0),
		mustSegment(t, spatial.NewPoint(8, 8), spatial.NewPoint(9, 8), 0),
		mustSegment(t, spatial.NewPoint(9, 8), spatial.NewPoint(10, 7), 0),
		mustSegment(t, spatial.NewPoint(10, 7), spatial.NewPoint(10, 6), 0),
		mustSegment(t, spatial.NewPoint(10, 6), spatial.NewPoint(7, 6), 0),
	}
	interior2 := []spatial.Segment{
		mustSegment(t, spatial.NewPoint(7, 7), spatial.NewPoint(8, 7), 0),
		mustSegment(t, spatial.NewPoint(8, 7), spatial.NewPoint(9, 7), 0),
		mustSegment(t, spatial.NewPoint(9, 7), spatial.NewPoint(10, 7), 0),
		mustSegment(t, spatial.NewPoint(8, 8), spatial.NewPoint(8, 7), 0),
		mustSegment(t, spatial.NewPoint(8, 7), spatial.NewPoint(8, 6), 0),
		mustSegment(t, spatial.NewPoint(9, 8), spatial.NewPoint(9, 7), 0),
		mustSegment(t, spatial.NewPoint(9, 7), spatial.NewPoint(9, 6), 0),
	}
	bridge := mustSegment(t, spatial.NewPoint(3, 3), spatial.NewPoint(7, 6), 0)

	g := spatial.NewGraph()
	var allEdges []spatial.Segment
	allEdges = append(allEdges, contour1...)
	allEdges = append(allEdges, interior1...)
	allEdges = append(allEdges, contour2...)
	allEdges = append(allEdges, interior2...)
	allEdges = append(allEdges, bridge)
	for _, e := range allEdges {
		require.NoError(t, g.AddEdge(e))
	}

	seq, err := routing.BuildRoutes(context.Background(), points, 2, g, testOptions())
	require.NoError(t, err)

	var results []routing.RoutePair
	for pair := range seq {
		results = append(results, pair)
	}
	require.Len(t, results, 2)

	figure1Set := toSet(figure1)
	figure2Set := toSet(figure2)
	contour1Set := toSegmentSet(contour1)
	contour2Set := toSegmentSet(contour2)

	var found1, found2 bool
	for _, pair := range results {
		clusterSet := toSet(pair.Cluster.Points)
		routeSet := toSegmentSet(pair.Route)

		switch {
		case setsEqual(clusterSet, figure1Set):
			assert.True(t, setsEqual(routeSet, contour1Set))
			found1 = true
		case setsEqual(clusterSet, figure2Set):
			assert.True(t, setsEqual(routeSet, contour2Set))
			found2 = true
		}
	}
	assert.True(t, found1)
	assert.True(t, found2)
}

func TestBuildRoutes_EmptyPoints(t *testing.T) {
	_, err := routing.BuildRoutes(context.Background(), nil, 1, spatial.NewGraph(), testOptions())
	assert.ErrorIs(t, err, routing.ErrEmptyPoints)
}

func TestBuildRoutes_NonPositiveK(t *testing.T) {
	points := []spatial.Point{spatial.NewPoint(0, 0)}
	_, err := routing.BuildRoutes(context.Background(), points, 0, spatial.NewGraph(), testOptions())
	assert.ErrorIs(t, err, routing.ErrNonPositiveK)
}

func toSet(points []spatial.Point) map[spatial.Point]bool {
	set := make(map[spatial.Point]bool, len(points))
	for _, p := range points {
		set[p] = true
	}

	return set
}

func toSegmentSet(segments []spatial.Segment) map[spatial.Segment]bool {
	set := make(map[spatial.Segment]bool, len(segments))
	for _, s := range segments {
		set[s] = true
	}

	return set
}

func setsEqual[T comparable](a, b map[T]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}

	return true
}
