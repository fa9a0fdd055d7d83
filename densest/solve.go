package densest

import (
	"sort"

	"github.com/avawg/densub/core"
	"github.com/avawg/densub/maxflow"
	"github.com/avawg/densub/reduction"
	"github.com/avawg/densub/triangle"
)

// DefaultSolver is the maxflow engine Solve uses: push-relabel HLPP,
// spec.md §4.5's recommended choice for the dense source-side fan-out
// this reduction produces.
var DefaultSolver = maxflow.PushRelabelHLPPSolver

// Solve returns the densest subgraph of g under the k-clique density
// objective (k=2: edge density MWED; k=3: triangle density MWTD), exact
// to within 1/(|V|·(|V|-1)).
func Solve(g *core.Graph, k int) (*core.Graph, error) {
	return SolveWith(g, k, DefaultSolver)
}

// SolveWith is Solve parameterised by which maxflow engine backs each
// binary-search iteration.
func SolveWith(g *core.Graph, k int, solver maxflow.Solver) (*core.Graph, error) {
	if k != 2 && k != 3 {
		return nil, ErrInvalidK
	}

	cliques := buildCliques(g, k)
	if len(cliques) == 0 {
		return g.Induced(nil), nil
	}

	solve, err := solver.Func()
	if err != nil {
		return nil, err
	}

	n := g.NumVertices()
	lo := 0.0
	hi := float64(reduction.TotalWeight(cliques))

	if hi == 0 {
		// No clique carries any weight: every achievable density is 0,
		// so lo=hi trivially and the documented tie-break returns all of V.
		return g.Induced(allIDs(g)), nil
	}

	lambda := (lo + hi) / 2
	net := reduction.Construct(n, cliques, lambda)

	tolerance := 1 / float64(n*(n-1))
	var best []int

	for hi-lo >= tolerance {
		_, sourceSide := solve(net.Net, net.S, net.T)

		var candidate []int
		for v := 0; v < n; v++ {
			if net.VertexInSourceSide(sourceSide, v) {
				candidate = append(candidate, v)
			}
		}

		if len(candidate) == 0 {
			hi = lambda
		} else {
			lo = lambda
			best = candidate
		}
		lambda = (lo + hi) / 2

		reduction.Update(net, lambda)
		net.Net.ResetFlow()
	}

	return g.Induced(idsOf(g, best)), nil
}

func idsOf(g *core.Graph, indices []int) []string {
	ids := make([]string, len(indices))
	for i, v := range indices {
		ids[i] = g.VertexAt(v).ID
	}
	return ids
}

func allIDs(g *core.Graph) []string {
	vertices := g.Vertices()
	ids := make([]string, len(vertices))
	for i, v := range vertices {
		ids[i] = v.ID
	}
	return ids
}

func buildCliques(g *core.Graph, k int) []reduction.Clique {
	if k == 3 {
		triangles := triangle.Enumerate(g)
		weights := triangle.Weights3(g, triangles)
		cliques := make([]reduction.Clique, len(triangles))
		for i, tri := range triangles {
			cliques[i] = reduction.Clique{
				Members: []int{tri.A, tri.B, tri.C},
				Weight:  weights[tri],
			}
		}
		return cliques
	}

	weights := triangle.Weights2(g)
	edges := make([]triangle.EdgeKey, 0, len(weights))
	for edge := range weights {
		edges = append(edges, edge)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})

	cliques := make([]reduction.Clique, len(edges))
	for i, edge := range edges {
		cliques[i] = reduction.Clique{
			Members: []int{edge.U, edge.V},
			Weight:  weights[edge],
		}
	}
	return cliques
}
