package tsp

import "errors"

// ErrEmptyInput is returned when Solve is called with no points.
var ErrEmptyInput = errors.New("tsp: point set is empty")
