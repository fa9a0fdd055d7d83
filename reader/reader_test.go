package reader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/avawg/densub/reader"
)

func writeString(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

type ReaderSuite struct {
	suite.Suite
}

func TestReaderSuite(t *testing.T) {
	suite.Run(t, new(ReaderSuite))
}

func (s *ReaderSuite) writeFile(name, contents string) string {
	path := filepath.Join(s.T().TempDir(), name)
	require.NoError(s.T(), writeString(path, contents))
	return path
}

func (s *ReaderSuite) TestBasicTriangle() {
	path := s.writeFile("triangle.tsv", "a\tb\nb\tc\na\tc\n")

	g, err := reader.ReadEdgeList(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, g.NumVertices())
	require.Equal(s.T(), 3, g.NumEdges())
}

func (s *ReaderSuite) TestBlankAndCommentLinesSkipped() {
	path := s.writeFile("commented.tsv", "# header\n\na\tb\n   \n# trailing\nb\tc\n")

	g, err := reader.ReadEdgeList(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, g.NumVertices())
	require.Equal(s.T(), 2, g.NumEdges())
}

func (s *ReaderSuite) TestWeightColumnParsedButDiscarded() {
	path := s.writeFile("weighted.tsv", "a\tb\t7\nb\tc\t3\n")

	g, err := reader.ReadEdgeList(path)
	require.NoError(s.T(), err)
	require.False(s.T(), g.Weighted())
	require.Equal(s.T(), 2, g.NumEdges())
}

func (s *ReaderSuite) TestMalformedWeightColumnRejected() {
	path := s.writeFile("bad_weight.tsv", "a\tb\tnotanumber\n")

	_, err := reader.ReadEdgeList(path)
	require.ErrorIs(s.T(), err, reader.ErrMalformedLine)
}

func (s *ReaderSuite) TestSingleColumnLineRejected() {
	path := s.writeFile("bad_columns.tsv", "a\n")

	_, err := reader.ReadEdgeList(path)
	require.ErrorIs(s.T(), err, reader.ErrMalformedLine)
}

func (s *ReaderSuite) TestSelfLoopDropped() {
	path := s.writeFile("selfloop.tsv", "a\tb\na\ta\nb\tc\n")

	g, err := reader.ReadEdgeList(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, g.NumVertices())
	require.Equal(s.T(), 2, g.NumEdges())
}

func (s *ReaderSuite) TestCustomSeparator() {
	path := s.writeFile("commas.csv", "a,b\nb,c\n")

	g, err := reader.ReadEdgeListSeparator(path, ",")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, g.NumEdges())
}

func (s *ReaderSuite) TestMissingFileReturnsError() {
	_, err := reader.ReadEdgeList(filepath.Join(s.T().TempDir(), "absent.tsv"))
	require.Error(s.T(), err)
}
