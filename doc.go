// Package densub extracts the densest subgraph of an undirected graph
// under a triangle-weighted density objective (Maximum Weighted Triangle
// Density) and its edge-weighted analogue (Maximum Weighted Edge Density).
//
// 🚀 What is densub?
//
//	A reduction of ρ_k-maximisation to a sequence of parametric s-t
//	minimum cuts, driven by binary search on a density threshold λ:
//
//	  • core      — the input graph: interned vertices, simple undirected edges
//	  • triangle  — forward-algorithm triangle enumerator + clique weights
//	  • maxflow   — Edmonds-Karp, Dinic, and push-relabel (FIFO/HLPP) engines
//	  • reduction — the parametric flow network N(λ) and its update step
//	  • densest   — the binary-search driver that returns G[S*]
//
// ✨ Guarantees
//
//   - Exact: S* is optimal to within 1/(|V|·(|V|-1)), which is provably
//     smaller than the gap between any two distinct achievable densities.
//   - Single-threaded: no goroutines in the algorithmic core.
//   - Pure Go: no cgo.
//
// Quick example: for K_4 (the complete graph on 4 vertices) with k=3, every
// triangle has weight 1, and densest.Solve returns all four vertices with
// ρ_3 = 1.
//
// See builder for deterministic fixture graphs, reader/metrics for the
// external edge-list and density-reporting collaborators, and cmd/densest
// for a CLI driver over a directory of datasets.
package densub
