// Package metrics reports two summary density figures of a graph: edge
// density m / C(n,2) and triangle density t / C(n,3), alongside the vertex
// count they're measured over. These are not the clique-weight densities
// ρ_k that the densest package maximises.
package metrics
