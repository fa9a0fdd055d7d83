package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/avawg/densub/core"
)

type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddEdgeMirrorsUndirected() {
	g := core.NewGraph()
	added, err := g.AddEdge("a", "b", 0)
	require.NoError(s.T(), err)
	require.True(s.T(), added)

	ai, _ := g.Index("a")
	bi, _ := g.Index("b")
	require.True(s.T(), g.HasEdgeIdx(ai, bi))
	require.True(s.T(), g.HasEdgeIdx(bi, ai))
	require.Equal(s.T(), 1, g.NumEdges())
}

func (s *GraphSuite) TestSelfLoopRejected() {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "a", 0)
	require.ErrorIs(s.T(), err, core.ErrSelfLoop)
	require.Equal(s.T(), 0, g.NumVertices())
}

func (s *GraphSuite) TestParallelEdgesCoalesce() {
	g := core.NewGraph()
	added1, err := g.AddEdge("a", "b", 0)
	require.NoError(s.T(), err)
	require.True(s.T(), added1)

	added2, err := g.AddEdge("b", "a", 0)
	require.NoError(s.T(), err)
	require.False(s.T(), added2, "reversed duplicate must coalesce, not double-count")
	require.Equal(s.T(), 1, g.NumEdges())
}

func (s *GraphSuite) TestUnweightedRejectsNonZeroWeight() {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 5)
	require.ErrorIs(s.T(), err, core.ErrBadWeight)
}

func (s *GraphSuite) TestDenseIndexAssignedInInsertionOrder() {
	g := core.NewGraph()
	_, _ = g.AddEdge("x", "y", 0)
	_, _ = g.AddEdge("y", "z", 0)

	xi, _ := g.Index("x")
	yi, _ := g.Index("y")
	zi, _ := g.Index("z")
	require.Equal(s.T(), 0, xi)
	require.Equal(s.T(), 1, yi)
	require.Equal(s.T(), 2, zi)
	require.Equal(s.T(), 3, g.NumVertices())
}

func (s *GraphSuite) TestInducedSubgraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	_, _ = g.AddEdge("a", "c", 0)
	_, _ = g.AddEdge("c", "d", 0)

	sub := g.Induced([]string{"a", "b", "c"})
	require.Equal(s.T(), 3, sub.NumVertices())
	require.Equal(s.T(), 3, sub.NumEdges())
	require.False(s.T(), sub.HasVertex("d"))
}
