package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkarpov/mtsp-routing-core/astar"
	"github.com/bkarpov/mtsp-routing-core/spatial"
)

func mustSegment(t *testing.T, start, finish spatial.Point, length float64) spatial.Segment {
	t.Helper()
	seg, err := spatial.NewSegment(start, finish, length)
	require.NoError(t, err)

	return seg
}

func TestSearch_GridPath(t *testing.T) {
	points := []spatial.Point{
		spatial.NewPoint(3, 4), spatial.NewPoint(1, 3), spatial.NewPoint(2, 3), spatial.NewPoint(3, 3),
		spatial.NewPoint(1, 2), spatial.NewPoint(3, 2), spatial.NewPoint(1, 1), spatial.NewPoint(2, 1),
		spatial.NewPoint(3, 1),
	}

	edges := []spatial.Segment{
		mustSegment(t, points[6], points[4], 1),
		mustSegment(t, points[6], points[7], 1),
		mustSegment(t, points[4], points[2], 1.5),
		mustSegment(t, points[4], points[1], 1),
		mustSegment(t, points[1], points[2], 1),
		mustSegment(t, points[7], points[8], 1),
		mustSegment(t, points[7], points[5], 1.6),
		mustSegment(t, points[2], points[3], 1),
		mustSegment(t, points[3], points[0], 1),
	}

	g := spatial.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}

	result, err := astar.Search(g, points[6], points[0])
	require.NoError(t, err)
	assert.Equal(t, []spatial.Segment{edges[0], edges[2], edges[7], edges[8]}, result)
}

func TestSearch_UnreachableFinish(t *testing.T) {
	a, b, c := spatial.NewPoint(0, 0), spatial.NewPoint(1, 0), spatial.NewPoint(10, 10)

	g := spatial.NewGraph()
	require.NoError(t, g.AddEdge(mustSegment(t, a, b, 0)))
	require.NoError(t, g.AddEdge(mustSegment(t, c, spatial.NewPoint(11, 10), 0)))

	result, err := astar.Search(g, a, c)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSearch_StartNotInGraph(t *testing.T) {
	g := spatial.NewGraph()
	_, err := astar.Search(g, spatial.NewPoint(0, 0), spatial.NewPoint(1, 1))
	assert.ErrorIs(t, err, astar.ErrVertexNotFound)
}

func TestSearch_OnTree_MatchesUniqueSimplePath(t *testing.T) {
	root := spatial.NewPoint(0, 0)
	a := spatial.NewPoint(1, 0)
	b := spatial.NewPoint(2, 0)
	c := spatial.NewPoint(1, 1)

	g := spatial.NewGraph()
	e1 := mustSegment(t, root, a, 0)
	e2 := mustSegment(t, a, b, 0)
	e3 := mustSegment(t, a, c, 0)
	require.NoError(t, g.AddEdge(e1))
	require.NoError(t, g.AddEdge(e2))
	require.NoError(t, g.AddEdge(e3))

	result, err := astar.Search(g, root, b)
	require.NoError(t, err)
	assert.Equal(t, []spatial.Segment{e1, e2}, result)
}
