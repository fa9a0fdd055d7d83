package reduction

import "github.com/avawg/densub/maxflow"

// Graph is the parametric flow network N(λ): a maxflow.Network plus the
// bookkeeping Update needs to retarget only the v→t edges.
type Graph struct {
	Net *maxflow.Network
	S   int
	T   int

	vertexNode []int // dense vertex index -> its node index in Net
	vertexToT  []int // dense vertex index -> its v→t forward edge index
}

// Construct builds N(λ) from scratch over numVertices vertices and the
// given clique-weight table, with node layout [s, cliques..., vertices...,
// t]. Zero-weight cliques are elided: no s→c or c→v edges are added for
// them, though each still occupies a node index so clique positions stay
// stable across calls with the same cliques slice.
//
// Complexity: O(Σ_c |c.Members|) for the clique fan-out, O(numVertices)
// for the v→t edges.
func Construct(numVertices int, cliques []Clique, lambda float64) *Graph {
	numCliques := len(cliques)
	s := 0
	t := 1 + numCliques + numVertices
	net := maxflow.NewNetwork(t + 1)

	vertexNode := func(v int) int { return 1 + numCliques + v }
	sentinel := float64(TotalWeight(cliques)) + 1

	for ci, c := range cliques {
		if c.Weight <= 0 {
			continue
		}
		cliqueNode := 1 + ci
		_, _ = net.AddEdge(s, cliqueNode, float64(c.Weight))
		for _, v := range c.Members {
			_, _ = net.AddEdge(cliqueNode, vertexNode(v), sentinel)
		}
	}

	nodeOfVertex := make([]int, numVertices)
	vertexToT := make([]int, numVertices)
	for v := 0; v < numVertices; v++ {
		nodeOfVertex[v] = vertexNode(v)
		e, _ := net.AddEdge(nodeOfVertex[v], t, lambda)
		vertexToT[v] = e
	}

	return &Graph{Net: net, S: s, T: t, vertexNode: nodeOfVertex, vertexToT: vertexToT}
}

// Update retargets every v→t forward capacity to the new λ, leaving
// topology and every s→c/c→v capacity untouched.
//
// Complexity: O(numVertices).
func Update(g *Graph, lambda float64) {
	for _, e := range g.vertexToT {
		g.Net.SetForwardCapacity(e, lambda)
	}
}

// VertexInSourceSide reports, given the sourceSide reachability returned
// by a maxflow engine, whether dense vertex index v landed on the source
// side of the cut.
func (g *Graph) VertexInSourceSide(sourceSide []bool, v int) bool {
	return sourceSide[g.vertexNode[v]]
}

// TotalWeight returns Σ_c w(c): the driver's initial hi bound (spec.md
// §4.7 step 2) and the basis of the +∞ sentinel capacity.
func TotalWeight(cliques []Clique) int64 {
	var total int64
	for _, c := range cliques {
		total += c.Weight
	}
	return total
}
