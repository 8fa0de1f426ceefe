package routing

import (
	"errors"
	"fmt"

	"github.com/bkarpov/mtsp-routing-core/spatial"
)

// InputValidationError indicates caller-provided arguments violate a
// structural precondition: an empty point list, a non-positive k, or points
// unreachable from one another on the supplied graph. Fatal at the
// orchestrator boundary; never retried.
type InputValidationError struct {
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("routing: invalid input: %s", e.Reason)
}

// ErrEmptyPoints and ErrNonPositiveK are the two fixed InputValidationError
// reasons that don't need per-call context; unreachable-point failures
// attach their own reason string via newUnreachableError.
var (
	ErrEmptyPoints  = &InputValidationError{Reason: "point list is empty"}
	ErrNonPositiveK = &InputValidationError{Reason: "clusters amount must be positive"}
)

func newUnreachableError(points []spatial.Point) *InputValidationError {
	return &InputValidationError{Reason: fmt.Sprintf("unreachable points found: %v", points)}
}

// LimitExceededError indicates a caller exceeded a configured numeric bound
// (points amount, clusters amount, points per cluster). Fatal at the
// boundary, distinct from spatial.LimitExceededError (which guards edge
// insertion into a Graph directly).
type LimitExceededError struct {
	Limit string
	Max   int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("routing: limit exceeded: %s (max %d)", e.Limit, e.Max)
}

// KMeansError wraps a failure from the clustering assignment solver,
// indicating infeasible inputs; should not occur when size preconditions
// hold. Fatal, never retried.
type KMeansError struct {
	Cause error
}

func (e *KMeansError) Error() string {
	return fmt.Sprintf("routing: k-means assignment failed: %v", e.Cause)
}

func (e *KMeansError) Unwrap() error { return e.Cause }

// RoutingError is returned when an A*-phase job fails, e.g. an unexpected
// disconnection discovered after the upfront reachability check.
type RoutingError struct {
	Cluster int
	Cause   error
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("routing: cluster %d: routing failed: %v", e.Cluster, e.Cause)
}

func (e *RoutingError) Unwrap() error { return e.Cause }

// TimeoutError indicates a per-cluster TSP or A* job exceeded its wall-clock
// budget. Surfaced to the caller, never recovered internally.
type TimeoutError struct {
	Cluster int
	Phase   string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("routing: cluster %d: %s phase timed out", e.Cluster, e.Phase)
}

// ErrIsTimeout reports whether err is (or wraps) a TimeoutError.
func ErrIsTimeout(err error) bool {
	var t *TimeoutError

	return errors.As(err, &t)
}
