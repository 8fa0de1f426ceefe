// Package hull implements the Graham scan convex-hull algorithm over
// spatial.Point sets, used by kmeans to seed its initial centroids on the
// farthest-apart pair of extreme points.
//
// Algorithm (see ConvexHull for the full contract):
//  1. Select the pivot: the point with minimum Y, ties broken by minimum X.
//  2. Sort the remaining points by polar angle around the pivot, with the
//     pivot placed last as a sentinel so the closing edge gets validated.
//  3. Walk the sorted points maintaining a stack seeded with the pivot,
//     popping while the last three points on the stack-plus-candidate do
//     not form a counterclockwise turn.
//
// Complexity: O(n log n), dominated by the polar-angle sort.
package hull
