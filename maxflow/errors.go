package maxflow

import "errors"

// ErrSourceNotFound indicates a source index outside [0, NumNodes()).
var ErrSourceNotFound = errors.New("maxflow: source node out of range")

// ErrSinkNotFound indicates a sink index outside [0, NumNodes()).
var ErrSinkNotFound = errors.New("maxflow: sink node out of range")

// ErrNegativeCapacity indicates AddEdge was called with capacity < 0.
var ErrNegativeCapacity = errors.New("maxflow: negative capacity")
