package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dsviz/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		s.Require().NoError(s.g.AddNode(id))
	}
}

func (s *GraphSuite) TestAddNode() {
	require := require.New(s.T())

	require.ErrorIs(s.g.AddNode("A"), core.ErrDuplicateNode)
	require.ErrorIs(s.g.AddNode(""), core.ErrEmptyNodeID)
	require.Equal([]string{"A", "B", "C", "D"}, s.g.Nodes(), "insertion order is preserved")
	require.Equal(4, s.g.NodeCount())
}

func (s *GraphSuite) TestAddEdge() {
	require := require.New(s.T())

	added, err := s.g.AddEdge("A", "B")
	require.NoError(err)
	require.True(added)
	w, ok := s.g.Weight("A", "B")
	require.True(ok)
	require.Equal(core.DefaultWeight, w, "unspecified weight defaults to 1")

	// Idempotent: the second add keeps the first weight.
	added, err = s.g.AddEdge("A", "B", core.WithWeight(9))
	require.NoError(err)
	require.False(added)
	w, _ = s.g.Weight("A", "B")
	require.Equal(1.0, w)

	_, err = s.g.AddEdge("A", "C", core.WithWeight(4))
	require.NoError(err)
	nbrs, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Equal([]string{"B", "C"}, nbrs)
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdge_UnknownEndpoint() {
	require := require.New(s.T())

	_, err := s.g.AddEdge("A", "Z")
	require.ErrorIs(err, core.ErrNodeNotFound)
	_, err = s.g.AddEdge("Z", "A")
	require.ErrorIs(err, core.ErrNodeNotFound)
	require.Zero(s.g.EdgeCount(), "failed adds must not mutate")
	nbrs, _ := s.g.Neighbors("A")
	require.Empty(nbrs)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())

	_, _ = s.g.AddEdge("A", "B")
	_, _ = s.g.AddEdge("A", "C")
	_, _ = s.g.AddEdge("A", "D")

	require.True(s.g.RemoveEdge("A", "C"))
	require.False(s.g.HasEdge("A", "C"))
	_, ok := s.g.Weight("A", "C")
	require.False(ok)
	nbrs, _ := s.g.Neighbors("A")
	require.Equal([]string{"B", "D"}, nbrs)

	require.False(s.g.RemoveEdge("A", "C"), "missing edge is a no-op")
	require.False(s.g.RemoveEdge("Z", "A"), "unknown source is a no-op")
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestRemoveNode_Cascades() {
	require := require.New(s.T())

	_, _ = s.g.AddEdge("A", "B", core.WithWeight(2))
	_, _ = s.g.AddEdge("B", "C", core.WithWeight(3))
	_, _ = s.g.AddEdge("C", "B", core.WithWeight(4))
	_, _ = s.g.AddEdge("D", "B", core.WithWeight(5))
	_, _ = s.g.AddEdge("D", "A", core.WithWeight(6))

	require.NoError(s.g.RemoveNode("B"))
	require.False(s.g.HasNode("B"))
	require.Equal([]string{"A", "C", "D"}, s.g.Nodes())
	require.Equal([]core.Edge{{From: "D", To: "A", Weight: 6}}, s.g.Edges())
	require.Equal(1, s.g.EdgeCount())
	for _, from := range []string{"A", "C", "D"} {
		_, ok := s.g.Weight(from, "B")
		require.False(ok, "weight %s→B must be gone", from)
	}

	require.ErrorIs(s.g.RemoveNode("B"), core.ErrNodeNotFound)

	// Re-adding the node starts from a clean slate.
	require.NoError(s.g.AddNode("B"))
	nbrs, _ := s.g.Neighbors("B")
	require.Empty(nbrs)
	require.False(s.g.HasEdge("A", "B"))
}

func (s *GraphSuite) TestOutEdgesAndClear() {
	require := require.New(s.T())

	_, _ = s.g.AddEdge("C", "A", core.WithWeight(0.5))
	_, _ = s.g.AddEdge("C", "D")
	out, err := s.g.OutEdges("C")
	require.NoError(err)
	require.Equal([]core.Edge{{From: "C", To: "A", Weight: 0.5}, {From: "C", To: "D", Weight: 1}}, out)

	_, err = s.g.OutEdges("nope")
	require.ErrorIs(err, core.ErrNodeNotFound)

	s.g.Clear()
	require.Zero(s.g.NodeCount())
	require.Zero(s.g.EdgeCount())
	require.Empty(s.g.Edges())
	require.False(s.g.HasEdge("C", "A"))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
