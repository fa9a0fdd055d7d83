package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/avawg/densub/builder"
)

type BuilderSuite struct {
	suite.Suite
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func (s *BuilderSuite) TestCompleteHasAllPairs() {
	g, err := builder.Complete(4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, g.NumVertices())
	require.Equal(s.T(), 6, g.NumEdges())
	for _, id := range []string{"0", "1", "2", "3"} {
		require.True(s.T(), g.HasVertex(id))
	}
}

func (s *BuilderSuite) TestCompleteRejectsTooFew() {
	_, err := builder.Complete(0)
	require.ErrorIs(s.T(), err, builder.ErrTooFewVertices)
}

func (s *BuilderSuite) TestCycleClosesTheRing() {
	g, err := builder.Cycle(5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, g.NumVertices())
	require.Equal(s.T(), 5, g.NumEdges())

	zero, _ := g.Index("0")
	four, _ := g.Index("4")
	require.True(s.T(), g.HasEdgeIdx(zero, four))
}

func (s *BuilderSuite) TestCycleRejectsTooFew() {
	_, err := builder.Cycle(2)
	require.ErrorIs(s.T(), err, builder.ErrTooFewVertices)
}

func (s *BuilderSuite) TestPathHasNoWraparoundEdge() {
	g, err := builder.Path(4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, g.NumVertices())
	require.Equal(s.T(), 3, g.NumEdges())

	zero, _ := g.Index("0")
	three, _ := g.Index("3")
	require.False(s.T(), g.HasEdgeIdx(zero, three))
}

func (s *BuilderSuite) TestPathRejectsTooFew() {
	_, err := builder.Path(1)
	require.ErrorIs(s.T(), err, builder.ErrTooFewVertices)
}

func (s *BuilderSuite) TestGraphsAreUnweighted() {
	g, err := builder.Complete(3)
	require.NoError(s.T(), err)
	require.False(s.T(), g.Weighted())
}
