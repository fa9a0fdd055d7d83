// Package core defines the undirected input graph G used throughout densub:
// vertices with opaque string identifiers, simple (loop-free, multi-edge-free)
// edges, and a dense integer index assigned to every vertex at insertion time.
//
// Unlike a general-purpose graph library, core intentionally supports exactly
// the shape the specification calls for (§3, §9): an undirected simple graph
// whose vertices are interned into 0..N-1 so that downstream packages
// (triangle, maxflow, reduction) can use index-keyed slices instead of
// hash maps. AddEdge takes a weight argument (non-zero only on a graph built
// WithWeighted) but does not store it: the graph keeps no edge weights, so a
// weighted edge list cannot be read back out of it, and no algorithm in this
// module consults edge weights.
//
// All mutation happens through AddVertex/AddEdge; there is no RemoveVertex or
// RemoveEdge because the lifecycle (§3 "Lifecycle") states G is built once and
// never mutated afterward.
package core
