package spatial

// Segment is an undirected, weighted edge connecting two distinct Points.
// Length defaults to the exact Euclidean distance between its endpoints but
// may be set larger to represent a polyline or curve that the straight
// chord only approximates; it may never be shorter than the chord, since
// A*'s heuristic assumes the chord is a lower bound on any path length.
//
// Equality and hashing (Segment is comparable and usable as a map key)
// depend on the ordered (Start, Finish) pair as stored; a caller that adds
// the same two endpoints in reverse order gets a distinct Segment value,
// even though Graph.AddEdge files it into both endpoints' adjacency lists.
type Segment struct {
	Start  Point
	Finish Point
	Length float64
}

// NewSegment constructs a Segment between two distinct points. If length is
// zero, it defaults to the exact Euclidean distance between start and
// finish. A non-zero length shorter than that distance is rejected with
// ErrShortSegment.
//
// Complexity: O(1).
func NewSegment(start, finish Point, length float64) (Segment, error) {
	if start == finish {
		return Segment{}, ErrSameEndpoints
	}

	chord := start.Distance(finish)
	if length == 0 {
		length = chord
	} else if length < chord {
		return Segment{}, ErrShortSegment
	}

	return Segment{Start: start, Finish: finish, Length: roundTo(length, DefaultPrecision)}, nil
}

// OtherEndpoint returns the endpoint of s opposite p: it returns Start iff
// p != Start, and Finish otherwise. This mirrors spec §3's contract
// literally, so passing a point that is neither endpoint returns Start.
//
// Complexity: O(1).
func (s Segment) OtherEndpoint(p Point) Point {
	if p != s.Start {
		return s.Start
	}

	return s.Finish
}
