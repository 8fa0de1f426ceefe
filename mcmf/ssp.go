package mcmf

import (
	"context"
	"math"
)

// residualArc is one direction of a residual-network edge. Every caller arc
// contributes a forward residualArc (capacity Cap, cost Cost) and a reverse
// residualArc (capacity 0, cost -Cost); augmenting a path increases the flow
// of each arc on the path and decreases its mirror's flow by the same amount,
// exactly as in a plain max-flow residual graph, with cost carried alongside
// capacity. rev is the
// index of this arc's mirror within g[to]'s adjacency list, fixed at
// construction time since forward/reverse pairs are appended in lockstep.
type residualArc struct {
	to       int
	cap      int
	cost     float64
	flow     int
	rev      int
	arcIndex int // index into the caller's Arcs slice, or -1 for a reverse arc
}

// SSPSolver computes min-cost max-flow via successive shortest augmenting
// paths, using SPFA to find each shortest path in the residual network.
//
// Complexity: O(F * V * E) worst case, where F is the number of
// augmentations; acceptable at kmeans' scale (points and centroids, not
// general large-scale flow).
type SSPSolver struct{}

// NewSSPSolver returns the default successive-shortest-paths solver.
func NewSSPSolver() *SSPSolver { return &SSPSolver{} }

// arcRef locates a residualArc as (node owning the adjacency slice, index
// within it), used to walk an augmenting path back from sink to source.
type arcRef struct {
	from int
	idx  int
}

func (s *SSPSolver) Solve(ctx context.Context, net Network) (FlowResult, error) {
	if err := validateNetwork(net); err != nil {
		return FlowResult{}, err
	}

	g := buildResidual(net)

	var totalFlow int
	var totalCost float64

	for totalFlow < net.Supply {
		select {
		case <-ctx.Done():
			return FlowResult{}, ctx.Err()
		default:
		}

		dist, prev, found := spfaShortestPath(g, net.Source, net.Sink, net.NumNodes)
		if !found {
			break
		}

		bottleneck := net.Supply - totalFlow
		for v := net.Sink; v != net.Source; {
			ref := prev[v]
			arc := &g[ref.from][ref.idx]
			if remaining := arc.cap - arc.flow; remaining < bottleneck {
				bottleneck = remaining
			}
			v = ref.from
		}

		for v := net.Sink; v != net.Source; {
			ref := prev[v]
			arc := &g[ref.from][ref.idx]
			arc.flow += bottleneck
			g[arc.to][arc.rev].flow -= bottleneck
			v = ref.from
		}

		totalFlow += bottleneck
		totalCost += float64(bottleneck) * dist[net.Sink]
	}

	if totalFlow < net.Supply {
		return FlowResult{}, ErrNoFeasibleFlow
	}

	arcFlow := make([]int, len(net.Arcs))
	for _, arcs := range g {
		for _, a := range arcs {
			if a.arcIndex >= 0 {
				arcFlow[a.arcIndex] = a.flow
			}
		}
	}

	return FlowResult{ArcFlow: arcFlow, TotalFlow: totalFlow, TotalCost: totalCost}, nil
}

func validateNetwork(net Network) error {
	if net.Source == net.Sink {
		return ErrSourceNotFound
	}
	if net.Source < 0 || net.Source >= net.NumNodes {
		return ErrSourceNotFound
	}
	if net.Sink < 0 || net.Sink >= net.NumNodes {
		return ErrSinkNotFound
	}
	for _, a := range net.Arcs {
		if a.Cap < 0 || a.Cost < 0 {
			return &ArcError{From: a.From, To: a.To, Cap: a.Cap, Cost: a.Cost}
		}
	}

	return nil
}

// buildResidual lays out an adjacency list indexed by node ID, with a
// forward and reverse residualArc pair per caller arc, linked via rev so
// augmentation can update both sides without a search.
func buildResidual(net Network) [][]residualArc {
	g := make([][]residualArc, net.NumNodes)
	for i, a := range net.Arcs {
		fi := len(g[a.From])
		ti := len(g[a.To])
		g[a.From] = append(g[a.From], residualArc{to: a.To, cap: a.Cap, cost: a.Cost, rev: ti, arcIndex: i})
		g[a.To] = append(g[a.To], residualArc{to: a.From, cap: 0, cost: -a.Cost, rev: fi, arcIndex: -1})
	}

	return g
}

// spfaShortestPath finds the minimum-cost path from source to sink in the
// residual network g using SPFA (queue-based Bellman-Ford): it tolerates the
// negative-cost reverse arcs that appear once any flow has been pushed,
// which a plain Dijkstra cannot handle without potential reweighting.
//
// Returns the distance array, a predecessor map keyed by node ID (recording
// which arcRef led to it), and whether sink was reached.
func spfaShortestPath(g [][]residualArc, source, sink, numNodes int) ([]float64, map[int]arcRef, bool) {
	dist := make([]float64, numNodes)
	inQueue := make([]bool, numNodes)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	prev := make(map[int]arcRef, numNodes)

	queue := []int{source}
	inQueue[source] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		for i := range g[u] {
			arc := &g[u][i]
			if arc.cap-arc.flow <= 0 {
				continue
			}
			v := arc.to
			nd := dist[u] + arc.cost
			if nd < dist[v]-1e-12 {
				dist[v] = nd
				prev[v] = arcRef{from: u, idx: i}
				if !inQueue[v] {
					queue = append(queue, v)
					inQueue[v] = true
				}
			}
		}
	}

	if math.IsInf(dist[sink], 1) {
		return dist, prev, false
	}

	return dist, prev, true
}
