package bfs_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/bfs"
	"github.com/katalvlaran/dsviz/core"
	"github.com/katalvlaran/dsviz/step"
)

// build creates a graph with the given nodes and unit-weight edges.
func build(t *testing.T, nodes []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range nodes {
		require.NoError(t, g.AddNode(id))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.Walk(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	require.NoError(t, g.AddNode("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_VisitOrder checks A→B, A→C, B→D: A, then B and C in edge order, then D.
func TestBFS_VisitOrder(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D", "E"}, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Len(t, res.Depth, 4, "visited set equals the reachable node count")
	assert.Equal(t, 2, res.Depth["D"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)
	_, err = res.PathTo("E")
	assert.Error(t, err)
}

func TestWalk_StepSequence(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})

	w, err := bfs.Walk(g, "A")
	require.NoError(t, err)
	steps, err := step.Collect(w)
	require.NoError(t, err)

	assert.Equal(t, []step.Kind{
		step.Visiting, step.EdgeDiscovered, step.EdgeDiscovered, // A → B, C
		step.Visiting, step.EdgeDiscovered, // B → D
		step.Visiting, // C (D already discovered)
		step.Visiting, // D
		step.Completed,
	}, step.Kinds(steps))

	assert.Equal(t, "A", steps[0].Node)
	assert.Empty(t, steps[0].Frontier)
	assert.Equal(t, step.Step{Kind: step.EdgeDiscovered, From: "A", To: "C", Weight: 1, Frontier: []string{"B", "C"}}, steps[2])
	assert.Equal(t, []string{"C"}, steps[3].Frontier, "B dequeued, C pending")
	assert.Equal(t, "D", steps[6].Node)
}

func TestWalk_PullPacing(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	w, err := bfs.Walk(g, "A")
	require.NoError(t, err)

	next, stop := iter.Pull(w.Steps())
	defer stop()

	s, ok := next()
	require.True(t, ok)
	assert.Equal(t, step.Visiting, s.Kind)
	assert.Equal(t, []string{"A"}, w.Result().Order, "only the first step has run")

	for _, ok = next(); ok; _, ok = next() {
	}
	assert.Equal(t, []string{"A", "B", "C"}, w.Result().Order)
	assert.NoError(t, w.Err())
}

func TestWalk_CancelIsSafe(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"A", "C"}})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := bfs.Walk(g, "A", bfs.WithContext(ctx))
	require.NoError(t, err)

	for range w.Steps() {
		cancel()
	}
	assert.ErrorIs(t, w.Err(), context.Canceled)
	assert.Equal(t, 2, g.EdgeCount(), "traversal never mutates the graph")
}

func TestBFS_MaxDepth(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_OnStepError(t *testing.T) {
	g := build(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	stop := errors.New("stop")
	res, err := bfs.BFS(g, "A", bfs.WithOnStep(func(s step.Step) error {
		if s.Kind == step.EdgeDiscovered {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestWalk_NodeRemovedMidRun(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	w, err := bfs.Walk(g, "A")
	require.NoError(t, err)

	var kinds []step.Kind
	for s := range w.Steps() {
		kinds = append(kinds, s.Kind)
		if s.Kind == step.EdgeDiscovered && s.To == "B" {
			require.NoError(t, g.RemoveNode("B"))
		}
	}
	assert.Equal(t, []step.Kind{step.Visiting, step.EdgeDiscovered, step.Visiting, step.Completed}, kinds)
}
