// Package tsp implements a time-bounded genetic-algorithm heuristic for the
// Euclidean travelling salesman problem: given a set of points, find a
// cyclic ordering that approximately minimizes total round-trip length.
//
// A chromosome is a permutation of the input points. Each generation produces
// CrossoverSize offspring (ordered crossover of two random parents),
// MutationSize mutants (a random contiguous block rotated to the front of a
// random parent), and InfusedSize fresh random permutations; the combined
// pool is sorted by fitness (total cyclic length) and trimmed back to
// PopulationSize survivors. The best chromosome ever seen is returned when
// the deadline passes.
//
// Inputs of three or fewer points are returned unmodified — a fixed
// permutation is already optimal.
package tsp
