// Package triangle enumerates triangles (3-cliques) of a *core.Graph and
// computes the clique-weight tables that feed the densest-subgraph driver.
//
// The key algorithm is the forward algorithm (Chiba-Nishizeki style):
//
//   - Method: order vertices by decreasing degree, sweep once, intersecting
//     a per-vertex "seen-as-neighbour-of-earlier-vertex" set at each step.
//   - Time:   O(|E|^1.5) on sparse graphs.
//   - Memory: O(|V| + |E|) for the per-vertex sets.
//
// Two clique-weight tables are supported, selected by k:
//
//   - k = 3 (triangle weights): w(t) is the number of 4-cliques containing
//     triangle t, derived from the set of vertices that complete a triangle
//     with each of t's three edges.
//   - k = 2 (edge weights): w((u,v)) = |N(u) ∩ N(v)|, a direct neighbourhood
//     intersection with no triangle enumeration required.
//
// All functions operate on dense vertex indices (core.Graph.Index), not
// string identifiers, and are pure: no mutation of the input graph.
package triangle
