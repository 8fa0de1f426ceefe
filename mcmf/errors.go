package mcmf

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when Network.Source lies outside
// [0, Network.NumNodes) or equals Network.Sink.
var ErrSourceNotFound = errors.New("mcmf: source node not found in network")

// ErrSinkNotFound is returned when Network.Sink lies outside
// [0, Network.NumNodes).
var ErrSinkNotFound = errors.New("mcmf: sink node not found in network")

// ErrNoFeasibleFlow is returned when the requested supply cannot be routed
// from source to sink at all, i.e. the maximum flow is strictly less than
// Network.Supply.
var ErrNoFeasibleFlow = errors.New("mcmf: network cannot satisfy requested supply")

// ArcError is returned when an arc specifies a negative capacity or a
// negative base cost; negative costs are only meaningful internally on
// residual reverse arcs, never on caller-supplied arcs.
type ArcError struct {
	From, To int
	Cap      int
	Cost     float64
}

func (e *ArcError) Error() string {
	return fmt.Sprintf("mcmf: invalid arc %d->%d (cap=%d cost=%g)", e.From, e.To, e.Cap, e.Cost)
}
