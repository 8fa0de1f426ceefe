package spatial

// Cluster is an ordered sequence of Points. It may be empty; K-Means
// produces Clusters that exclusively own their Points (the Points
// themselves are immutable and freely shared).
type Cluster struct {
	Points []Point
}

// NewCluster wraps points in a Cluster without copying the backing array.
// Callers that need an independent Cluster should pass a fresh slice.
func NewCluster(points []Point) Cluster {
	return Cluster{Points: points}
}

// Len returns the number of points in the cluster.
func (c Cluster) Len() int { return len(c.Points) }

// Center computes the geometric center (arithmetic mean of coordinates) of
// the cluster's points, rounded to DefaultPrecision. A singleton cluster
// returns its sole point; an empty cluster returns ErrEmptyCluster.
//
// Complexity: O(n).
func (c Cluster) Center() (Point, error) {
	switch len(c.Points) {
	case 0:
		return Point{}, ErrEmptyCluster
	case 1:
		return c.Points[0], nil
	}

	var sumX, sumY float64
	for _, p := range c.Points {
		sumX += p.X()
		sumY += p.Y()
	}
	n := float64(len(c.Points))

	return NewPoint(sumX/n, sumY/n), nil
}
