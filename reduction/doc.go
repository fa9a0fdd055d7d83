// Package reduction builds and maintains the parametric flow network N(λ)
// that the densest-subgraph driver solves at each binary-search step.
//
// N(λ) has node layout [s, cliques..., vertices..., t] and edges:
//
//   - s → c with capacity w(c), for every clique c with w(c) > 0;
//   - c → v with a sentinel +∞ capacity, for every vertex v in clique c;
//   - v → t with capacity λ, for every vertex v.
//
// Only the v → t capacities depend on λ. Construct builds N(λ) once;
// Update retargets just the v → t forward capacities to a new λ in
// O(|V|), leaving the s→c and c→v topology (the expensive part to build)
// untouched across binary-search iterations.
package reduction
