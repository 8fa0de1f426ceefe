package kmeans

import (
	"math/rand"

	"github.com/bkarpov/mtsp-routing-core/mcmf"
)

// MaxIterations bounds the refinement loop; the original implementation
// hard-codes the same constant.
const MaxIterations = 10

// Options configures Cluster. Nil fields are filled from NewOptions, so the
// zero value is usable.
type Options struct {
	// Solver computes the per-iteration balanced assignment. Defaults to
	// mcmf.NewSSPSolver() when nil.
	Solver mcmf.Solver
	// RNG drives the empty-cluster recentering fallback. Defaults to a
	// new rand.Rand seeded from a fixed default seed when nil, so callers
	// who care about determinism should always supply their own.
	RNG *rand.Rand
}

// NewOptions returns Options with a default SSPSolver and a default RNG.
func NewOptions() Options {
	return Options{
		Solver: mcmf.NewSSPSolver(),
		RNG:    rand.New(rand.NewSource(1)),
	}
}
