package hull

import (
	"math"
	"sort"

	"github.com/bkarpov/mtsp-routing-core/spatial"
)

// ConvexHull returns the convex hull of points as a sequence of Points in
// counterclockwise order, starting at the pivot (the point with minimum Y,
// ties broken by minimum X). Returns ErrTooFewPoints if len(points) < 3.
//
// Complexity: O(n log n).
func ConvexHull(points []spatial.Point) ([]spatial.Point, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	pivot := points[0]
	for _, p := range points {
		if p.Y() < pivot.Y() || (p.Y() == pivot.Y() && p.X() < pivot.X()) {
			pivot = p
		}
	}

	sorted := make([]spatial.Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return polarKey(pivot, sorted[i]) < polarKey(pivot, sorted[j])
	})

	stack := []spatial.Point{pivot}
	for _, candidate := range sorted {
		for len(stack) > 1 && !IsCCW(stack[len(stack)-2], stack[len(stack)-1], candidate) {
			stack = stack[:len(stack)-1]
		}
		if candidate != pivot {
			stack = append(stack, candidate)
		}
	}

	return stack, nil
}

// polarKey orders points by polar angle around pivot, in [0, 2*pi). The
// pivot itself sorts last (a +Inf sentinel) so the scan's final edge gets
// validated against it, matching the reference algorithm.
func polarKey(pivot, p spatial.Point) float64 {
	if p == pivot {
		return math.Inf(1)
	}

	angle := math.Atan2(p.Y()-pivot.Y(), p.X()-pivot.X())
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return angle
}

// IsCCW reports whether the turn from segment (a, b) to point c is a
// counterclockwise turn, i.e. the cross product (b-a) x (c-a) is strictly
// positive. Collinear or clockwise turns return false.
//
// Complexity: O(1).
func IsCCW(a, b, c spatial.Point) bool {
	first := b.Vec().Sub(a.Vec())
	second := c.Vec().Sub(a.Vec())

	return first.Cross(second) > 0
}
