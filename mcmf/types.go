package mcmf

import "context"

// Arc is a directed caller-supplied edge from From to To with an integer
// capacity and a per-unit-flow cost. Node IDs are opaque non-negative
// integers assigned by the caller; mcmf does not interpret them.
type Arc struct {
	From, To int
	Cap      int
	Cost     float64
}

// Network describes a min-cost-max-flow instance: the arc list plus the
// distinguished Source and Sink node IDs and the total Supply the caller
// wants routed. NumNodes must be at least one greater than the largest node
// ID referenced by Arcs, Source, or Sink.
type Network struct {
	NumNodes int
	Arcs     []Arc
	Source   int
	Sink     int
	Supply   int
}

// FlowResult is the outcome of solving a Network: the flow actually carried
// on each supplied arc (parallel to Network.Arcs, same index), the total
// flow value, and its total cost.
type FlowResult struct {
	ArcFlow   []int
	TotalFlow int
	TotalCost float64
}

// Solver computes a minimum-cost flow of Network.Supply units on a Network,
// returning an error (SSPSolver: ErrNoFeasibleFlow) when the network cannot
// carry that much. Implementations must be safe to call with a canceled ctx only
// between augmentations; they should return ctx.Err() promptly once
// cancellation is observed.
type Solver interface {
	Solve(ctx context.Context, net Network) (FlowResult, error)
}
