package spatial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultPrecision is the number of decimal places Point rounds its
// coordinates to when no explicit precision is given. It matches the
// PRECISION constant of spec §3 and §6.
const DefaultPrecision = 6

// Point is an immutable 2D coordinate, rounded at construction to a fixed
// decimal precision so that equality, hashing (via Go's built-in struct
// comparison, usable directly as a map key), and downstream derivations
// (centroids, midpoints) are stable under repeated computation.
type Point struct {
	vec r2.Vec
}

// NewPoint returns a Point rounded to DefaultPrecision decimal places.
//
// Complexity: O(1).
func NewPoint(x, y float64) Point {
	return NewPointPrecision(x, y, DefaultPrecision)
}

// NewPointPrecision returns a Point rounded to the given number of decimal
// places. Negative precision is treated as zero (integer rounding).
//
// Complexity: O(1).
func NewPointPrecision(x, y float64, precision int) Point {
	return Point{vec: r2.Vec{X: roundTo(x, precision), Y: roundTo(y, precision)}}
}

// X returns the point's rounded x coordinate.
func (p Point) X() float64 { return p.vec.X }

// Y returns the point's rounded y coordinate.
func (p Point) Y() float64 { return p.vec.Y }

// Vec exposes the underlying gonum r2.Vec for callers that want to compose
// vector arithmetic (Add/Sub/Scale/Cross) without re-deriving it.
func (p Point) Vec() r2.Vec { return p.vec }

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.vec.X, p.vec.Y)
}

// Less implements the partial order of spec §3: p < q holds when
// p.x <= q.x AND p.y <= q.y AND p != q. It is NOT a total order — two
// points that differ only diagonally (one coordinate greater, the other
// smaller) compare neither Less(q) nor q.Less(p).
//
// Complexity: O(1).
func (p Point) Less(q Point) bool {
	if p == q {
		return false
	}

	return p.vec.X <= q.vec.X && p.vec.Y <= q.vec.Y
}

// Distance returns the rounded Euclidean distance between p and q, using
// the same precision p was constructed with is NOT tracked per-point, so
// Distance always rounds to DefaultPrecision. Use DistancePrecision for a
// caller-chosen rounding.
//
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	return p.DistancePrecision(q, DefaultPrecision)
}

// DistancePrecision returns the Euclidean distance between p and q rounded
// to the given number of decimal places.
//
// Complexity: O(1).
func (p Point) DistancePrecision(q Point, precision int) float64 {
	return roundTo(r2.Norm(p.vec.Sub(q.vec)), precision)
}

// roundTo rounds x to the given number of decimal places. Negative
// precision is clamped to zero.
func roundTo(x float64, precision int) float64 {
	if precision < 0 {
		precision = 0
	}
	scale := math.Pow(10, float64(precision))

	return math.Round(x*scale) / scale
}
