package kmeans

import (
	"math"

	"github.com/bkarpov/mtsp-routing-core/hull"
	"github.com/bkarpov/mtsp-routing-core/spatial"
)

// seedCentroids picks k initial centroids from points: the first two are the
// farthest-apart pair on the convex hull (ties broken in favour of the pair
// met first when walking the hull's counterclockwise order, via a strict ">"
// comparison), and each subsequent centroid is the point whose
// minimum distance to the already-chosen set is maximum, ties broken by
// smallest index. Maintains a running min-distance-to-centroids vector so
// the whole pass costs O(nk).
func seedCentroids(points []spatial.Point, k int) ([]spatial.Point, error) {
	hullPoints, err := hull.ConvexHull(points)
	if err != nil {
		return nil, err
	}

	var first, second spatial.Point
	maxDist := -1.0
	for i := 0; i < len(hullPoints); i++ {
		for j := i + 1; j < len(hullPoints); j++ {
			d := hullPoints[i].Distance(hullPoints[j])
			if d > maxDist {
				maxDist = d
				first, second = hullPoints[i], hullPoints[j]
			}
		}
	}

	firstIdx, secondIdx := indexOf(points, first), indexOf(points, second)

	minDist := make([]float64, len(points))
	for i := range minDist {
		minDist[i] = points[i].Distance(first)
	}
	minDist[firstIdx] = 0
	minDist[secondIdx] = 0

	centroidIdx := []int{firstIdx, secondIdx}

	for c := 2; c < k; c++ {
		last := points[centroidIdx[len(centroidIdx)-1]]

		bestIdx := -1
		bestDist := math.Inf(-1)
		for j, cur := range minDist {
			if cur == 0 {
				continue
			}
			if d := points[j].Distance(last); d < cur {
				minDist[j] = d
			}
			if minDist[j] > bestDist {
				bestDist = minDist[j]
				bestIdx = j
			}
		}

		centroidIdx = append(centroidIdx, bestIdx)
		minDist[bestIdx] = 0
	}

	centroids := make([]spatial.Point, k)
	for i, idx := range centroidIdx {
		centroids[i] = points[idx]
	}

	return centroids, nil
}

func indexOf(points []spatial.Point, p spatial.Point) int {
	for i, q := range points {
		if q == p {
			return i
		}
	}

	return -1
}
