// Package densest drives the binary search over the density threshold λ
// that ρ_k-maximisation reduces to: it builds the clique-weight table once
// (via triangle) and the parametric flow network (via reduction), then
// repeatedly solves the same topology across bisection steps with
// maxflow, tightening [lo, hi] until the gap falls below the exact-
// optimality tolerance 1/(|V|·(|V|-1)).
//
// Solve returns the vertex-induced subgraph G[S*] at that optimum.
package densest
