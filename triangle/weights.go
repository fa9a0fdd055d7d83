package triangle

import "github.com/avawg/densub/core"

// Weights3 computes the k=3 clique weight table: w(t) for each triangle t
// is the number of 4-cliques in g that contain t, i.e. the number of
// vertices adjacent to all three of t's edges simultaneously.
//
// Grounded on the two-pass construction of edge_adj_nodes followed by a
// triple intersection per triangle (original_source/triangle_util.py).
//
// Complexity: O(|T| + Σ_t |edgeAdjNodes|) — one pass to build the edge→
// adjacent-vertex map, one pass per triangle to intersect three sets.
func Weights3(g *core.Graph, triangles []Triangle) map[Triangle]int64 {
	edgeAdjNodes := make(map[EdgeKey]map[int]struct{})
	addAdj := func(u, v, w int) {
		k := newEdgeKey(u, v)
		set, ok := edgeAdjNodes[k]
		if !ok {
			set = make(map[int]struct{})
			edgeAdjNodes[k] = set
		}
		set[w] = struct{}{}
	}
	for _, t := range triangles {
		addAdj(t.A, t.B, t.C)
		addAdj(t.A, t.C, t.B)
		addAdj(t.B, t.C, t.A)
	}

	weights := make(map[Triangle]int64, len(triangles))
	for _, t := range triangles {
		ab := edgeAdjNodes[newEdgeKey(t.A, t.B)]
		ac := edgeAdjNodes[newEdgeKey(t.A, t.C)]
		bc := edgeAdjNodes[newEdgeKey(t.B, t.C)]

		var count int64
		for w := range ab {
			if _, ok := ac[w]; !ok {
				continue
			}
			if _, ok := bc[w]; !ok {
				continue
			}
			count++
		}
		weights[t] = count
	}

	return weights
}

// NodeWeights3 aggregates, per vertex, the sum of w(t) over every triangle
// the vertex participates in as a 4-clique-completing member (i.e. over
// every triangle t whose 4-clique extension includes the vertex). Part of
// the contract but not consulted by the densest-subgraph driver.
func NodeWeights3(g *core.Graph, triangles []Triangle, weights map[Triangle]int64) map[int]int64 {
	nodeWeights := make(map[int]int64, g.NumVertices())
	edgeAdjNodes := make(map[EdgeKey]map[int]struct{})
	addAdj := func(u, v, w int) {
		k := newEdgeKey(u, v)
		set, ok := edgeAdjNodes[k]
		if !ok {
			set = make(map[int]struct{})
			edgeAdjNodes[k] = set
		}
		set[w] = struct{}{}
	}
	for _, t := range triangles {
		addAdj(t.A, t.B, t.C)
		addAdj(t.A, t.C, t.B)
		addAdj(t.B, t.C, t.A)
	}

	for _, t := range triangles {
		ab := edgeAdjNodes[newEdgeKey(t.A, t.B)]
		ac := edgeAdjNodes[newEdgeKey(t.A, t.C)]
		bc := edgeAdjNodes[newEdgeKey(t.B, t.C)]
		w := weights[t]

		for node := range ab {
			if _, ok := ac[node]; !ok {
				continue
			}
			if _, ok := bc[node]; !ok {
				continue
			}
			nodeWeights[node] += w
		}
	}

	return nodeWeights
}

// Weights2 computes the k=2 clique weight table: w((u,v)) = |N(u) ∩ N(v)|
// for every edge (u,v), a direct neighbourhood intersection requiring no
// triangle enumeration.
//
// Complexity: O(Σ_{(u,v)∈E} (deg(u) + deg(v))).
func Weights2(g *core.Graph) map[EdgeKey]int64 {
	weights := make(map[EdgeKey]int64)
	n := g.NumVertices()
	for u := 0; u < n; u++ {
		for _, v := range g.NeighborIndices(u) {
			if v <= u {
				continue
			}
			k := newEdgeKey(u, v)
			if _, done := weights[k]; done {
				continue
			}
			weights[k] = int64(commonNeighbors(g, u, v))
		}
	}
	return weights
}

func commonNeighbors(g *core.Graph, u, v int) int {
	nu := g.NeighborIndices(u)
	nvSet := make(map[int]struct{}, g.Degree(v))
	for _, w := range g.NeighborIndices(v) {
		nvSet[w] = struct{}{}
	}
	count := 0
	for _, w := range nu {
		if _, ok := nvSet[w]; ok {
			count++
		}
	}
	return count
}
