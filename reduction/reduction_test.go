package reduction_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/avawg/densub/maxflow"
	"github.com/avawg/densub/reduction"
)

type ReductionSuite struct {
	suite.Suite
}

func TestReductionSuite(t *testing.T) {
	suite.Run(t, new(ReductionSuite))
}

// k4Cliques mirrors K4's four triangles, each weight 1 (spec.md §8
// scenario 1).
func k4Cliques() []reduction.Clique {
	return []reduction.Clique{
		{Members: []int{0, 1, 2}, Weight: 1},
		{Members: []int{0, 1, 3}, Weight: 1},
		{Members: []int{0, 2, 3}, Weight: 1},
		{Members: []int{1, 2, 3}, Weight: 1},
	}
}

func (s *ReductionSuite) TestTotalWeight() {
	require.Equal(s.T(), int64(4), reduction.TotalWeight(k4Cliques()))
}

// At λ=0, every v→t edge has zero capacity, so the min s-t cut is the set
// of those zero-capacity v→t edges, i.e. the full vertex set stays on the
// source side (cut value is 0, matching spec.md §8's "For λ=0" case).
func (s *ReductionSuite) TestLambdaZeroCutIsZero() {
	g := reduction.Construct(4, k4Cliques(), 0)
	value, sourceSide := maxflow.PushRelabelHLPP(g.Net, g.S, g.T)
	require.Equal(s.T(), 0.0, value)
	for v := 0; v < 4; v++ {
		require.True(s.T(), g.VertexInSourceSide(sourceSide, v))
	}
}

// At λ greater than the total weight, every vertex's v→t capacity exceeds
// anything it can receive, so the cheapest cut severs every s→c edge
// instead: cut value equals Σ w(c), and S = ∅ (no vertex reachable from
// s through a saturated clique fan-out).
func (s *ReductionSuite) TestLambdaAboveMaxDensitySeversSource() {
	g := reduction.Construct(4, k4Cliques(), 10)
	value, sourceSide := maxflow.PushRelabelHLPP(g.Net, g.S, g.T)
	require.Equal(s.T(), 4.0, value)
	for v := 0; v < 4; v++ {
		require.False(s.T(), g.VertexInSourceSide(sourceSide, v))
	}
}

func (s *ReductionSuite) TestUpdateRetargetsOnlyVToT() {
	g := reduction.Construct(4, k4Cliques(), 0)
	_, _ = maxflow.PushRelabelHLPP(g.Net, g.S, g.T)

	reduction.Update(g, 10)
	g.Net.ResetFlow()

	value, sourceSide := maxflow.EdmondsKarp(g.Net, g.S, g.T)
	require.Equal(s.T(), 4.0, value)
	for v := 0; v < 4; v++ {
		require.False(s.T(), g.VertexInSourceSide(sourceSide, v))
	}
}

// Zero-weight cliques contribute no edges, so a clique set whose every
// weight is zero (k=2 on a path with no common neighbours) yields a
// network with only v→t edges:
// the max flow is always 0 regardless of λ.
func (s *ReductionSuite) TestZeroWeightCliquesElided() {
	cliques := []reduction.Clique{{Members: []int{0, 1}, Weight: 0}}
	g := reduction.Construct(2, cliques, 5)
	value, _ := maxflow.PushRelabelHLPP(g.Net, g.S, g.T)
	require.Equal(s.T(), 0.0, value)
}
