package astar

import (
	"container/heap"

	"github.com/bkarpov/mtsp-routing-core/spatial"
)

// record holds the search state for one vertex: the best known distance
// from start, its parent on that path, and the edge used to reach it. The
// start vertex has a nil edge.
type record struct {
	distance float64
	parent   spatial.Point
	edge     *spatial.Segment
}

// Search returns the shortest-by-summed-length path of Segments from start
// to finish. Returns an empty (nil) path if finish is unreachable from
// start. Returns ErrVertexNotFound if start has no adjacency entry in g.
//
// Complexity: O(E log V).
func Search(g *spatial.Graph, start, finish spatial.Point) ([]spatial.Segment, error) {
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}

	data := map[spatial.Point]record{start: {distance: 0}}

	pq := make(nodePQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{point: start, priority: 0})

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*nodeItem).point

		if current == finish {
			return reconstruct(data, current), nil
		}

		currentRecord := data[current]
		for _, edge := range g.Neighbors(current) {
			adjacent := edge.OtherEndpoint(current)
			if _, seen := data[adjacent]; seen {
				continue
			}

			e := edge
			data[adjacent] = record{
				distance: currentRecord.distance + edge.Length,
				parent:   current,
				edge:     &e,
			}
			heap.Push(&pq, &nodeItem{
				point:    adjacent,
				priority: currentRecord.distance + edge.Length + adjacent.Distance(finish),
			})
		}
	}

	return nil, nil
}

// reconstruct walks the parent chain from current back to start, collecting
// the traversed edges, then reverses them into start->finish order.
func reconstruct(data map[spatial.Point]record, current spatial.Point) []spatial.Segment {
	var path []spatial.Segment
	for data[current].edge != nil {
		rec := data[current]
		path = append(path, *rec.edge)
		current = rec.parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a (vertex, priority) pair ordered by ascending priority
// (g-distance plus heuristic). Less compares priority only and
// container/heap is not stable, so items of equal priority pop in an order
// set by the heap's internal layout, not by insertion order.
type nodeItem struct {
	point    spatial.Point
	priority float64
	index    int
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
