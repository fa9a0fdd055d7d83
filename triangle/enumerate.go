package triangle

import (
	"sort"

	"github.com/avawg/densub/core"
)

// Enumerate lists every triangle of g exactly once, using the forward
// algorithm: vertices are processed in decreasing-degree order (ties
// broken by ascending index, for determinism), and each vertex u inserts
// itself into A(v) for every not-yet-visited neighbour v.
//
// Complexity: O(|E|^1.5) on sparse graphs. Pure: g is never mutated.
func Enumerate(g *core.Graph) []Triangle {
	n := g.NumVertices()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	degree := make([]int, n)
	for i := 0; i < n; i++ {
		degree[i] = g.Degree(i)
	}
	sort.Slice(order, func(i, j int) bool {
		oi, oj := order[i], order[j]
		if degree[oi] != degree[oj] {
			return degree[oi] > degree[oj]
		}
		return oi < oj
	})

	a := make([]map[int]struct{}, n)
	for i := range a {
		a[i] = make(map[int]struct{})
	}
	visited := make([]bool, n)

	var triangles []Triangle
	for _, v := range order {
		for _, u := range g.NeighborIndices(v) {
			if visited[u] {
				continue
			}
			for w := range a[u] {
				if _, ok := a[v][w]; ok {
					triangles = append(triangles, newTriangle(v, u, w))
				}
			}
			a[u][v] = struct{}{}
		}
		visited[v] = true
	}

	return triangles
}
