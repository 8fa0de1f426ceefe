package hull

import "errors"

// ErrTooFewPoints indicates ConvexHull was called with fewer than 3 points;
// a convex hull is undefined below that.
var ErrTooFewPoints = errors.New("hull: need at least 3 points")
