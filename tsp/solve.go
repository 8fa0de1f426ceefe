package tsp

import (
	"math/rand"
	"sort"
	"time"

	"github.com/bkarpov/mtsp-routing-core/spatial"
)

// chromosome is a candidate cyclic route: a permutation of the input points.
type chromosome []spatial.Point

// fitness is the chromosome's total cyclic length: the sum of consecutive
// distances, wrapping from the last point back to the first.
func fitness(c chromosome) float64 {
	var total float64
	for i := range c {
		prev := c[(i-1+len(c))%len(c)]
		total += prev.Distance(c[i])
	}

	return total
}

// Solve returns a heuristic cyclic ordering of points whose total round-trip
// length approximates the minimum found within opts.TimeLimit. Inputs of
// three or fewer points are returned as a copy immediately, since any fixed
// order is already optimal.
func Solve(points []spatial.Point, opts Options) ([]spatial.Point, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	if len(points) <= 3 {
		out := make([]spatial.Point, len(points))
		copy(out, points)

		return out, nil
	}

	rng := rngFromSeed(opts.Seed)

	population := make([]chromosome, PopulationSize)
	for i := range population {
		population[i] = chromosome(shuffledCopy(points, rng))
	}
	sortByFitness(population)

	best := cloneChromosome(population[0])
	bestFitness := fitness(best)

	deadline := time.Now().Add(opts.TimeLimit)

	for time.Now().Before(deadline) {
		var generated []chromosome

		for j := 0; j < CrossoverSize; j++ {
			parents := sampleDistinct(len(population), 2, rng)
			generated = append(generated, crossover(population[parents[0]], population[parents[1]]))
		}

		mutationParents := sampleDistinct(len(population), MutationSize, rng)
		for _, idx := range mutationParents {
			generated = append(generated, mutate(population[idx], rng))
		}

		for j := 0; j < InfusedSize; j++ {
			generated = append(generated, chromosome(shuffledCopy(points, rng)))
		}

		population = append(population, generated...)
		sortByFitness(population)

		if f := fitness(population[0]); f < bestFitness {
			bestFitness = f
			best = cloneChromosome(population[0])
		}

		population = population[:PopulationSize]
	}

	return best, nil
}

func sortByFitness(population []chromosome) {
	sort.SliceStable(population, func(i, j int) bool {
		return fitness(population[i]) < fitness(population[j])
	})
}

func cloneChromosome(c chromosome) chromosome {
	out := make(chromosome, len(c))
	copy(out, c)

	return out
}

// crossover cuts first at len(second)/2, takes its tail as a block, and
// prepends second's genes with that block's members removed (order
// preserved), so the child is (second minus the block) followed by the
// block.
func crossover(first, second chromosome) chromosome {
	cut := len(second) / 2
	block := first[cut:]

	inBlock := make(map[spatial.Point]bool, len(block))
	for _, p := range block {
		inBlock[p] = true
	}

	child := make(chromosome, 0, len(second))
	for _, p := range second {
		if !inBlock[p] {
			child = append(child, p)
		}
	}
	child = append(child, block...)

	return child
}

// mutate rotates a random contiguous sub-range of parent to the front:
// result is sub + prefix + suffix, where sub = parent[start:end].
func mutate(parent chromosome, rng *rand.Rand) chromosome {
	n := len(parent)
	subLen := 1 + rng.Intn(n-1)
	start := rng.Intn(n - subLen + 1)
	end := start + subLen

	child := make(chromosome, 0, n)
	child = append(child, parent[start:end]...)
	child = append(child, parent[:start]...)
	child = append(child, parent[end:]...)

	return child
}
