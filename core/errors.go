package core

import "errors"

// Sentinel errors for core graph operations. Callers should branch with
// errors.Is rather than string comparison.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier was supplied.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints are identical; self-loops
	// are rejected unconditionally per the input contract (§3, §6).
	ErrSelfLoop = errors.New("core: self-loops are not permitted")

	// ErrBadWeight indicates a non-zero weight was given to an unweighted graph.
	ErrBadWeight = errors.New("core: non-zero weight on unweighted graph")
)
