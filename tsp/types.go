package tsp

import "time"

// Population/generation tuning constants; the genetic loop's mix of
// crossover, mutation, and fresh infusion per generation is fixed at these
// proportions.
const (
	PopulationSize = 50
	CrossoverSize  = 30
	MutationSize   = 15
	InfusedSize    = 5
)

// Options configures Solve.
type Options struct {
	// TimeLimit bounds wall-clock search time. The loop checks the
	// deadline between generations, never mid-generation.
	TimeLimit time.Duration
	// Seed drives every random draw in the run; Seed==0 uses a fixed
	// default so behavior stays deterministic even when callers forget
	// to set it explicitly.
	Seed int64
}

// DefaultOptions returns Options with a 2-second time limit and seed 0.
func DefaultOptions() Options {
	return Options{TimeLimit: 2 * time.Second}
}
