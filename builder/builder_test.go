package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/builder"
	"github.com/katalvlaran/dsviz/core"
)

func TestExcelColumnIDFn(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for idx, want := range cases {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx), "idx %d", idx)
	}
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Equal(t, "N7", builder.PrefixIDFn("N")(7))
	assert.Equal(t, "42", builder.DecimalIDFn(42))
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.IntWeightFn(5, 2) })
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	}, g.Edges())
}

func TestCycle_Symmetric(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSymmetric(),
		builder.WithWeightFn(builder.ConstantWeightFn(2.5)),
		builder.WithIDScheme(builder.DecimalIDFn),
	}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	w, ok := g.Weight("2", "0")
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
	w, ok = g.Weight("0", "2")
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
}

func TestCounts(t *testing.T) {
	cases := []struct {
		name  string
		cons  builder.Constructor
		nodes int
		edges int
	}{
		{"star", builder.Star(5), 5, 4},
		{"wheel", builder.Wheel(5), 5, 8},
		{"complete", builder.Complete(5), 5, 10},
		{"complete1", builder.Complete(1), 1, 0},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"sparse-none", builder.RandomSparse(6, 0), 6, 0},
		{"sparse-all", builder.RandomSparse(6, 1), 6, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"path", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle", builder.Cycle(2), builder.ErrTooFewVertices},
		{"star", builder.Star(1), builder.ErrTooFewVertices},
		{"wheel", builder.Wheel(3), builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"grid", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"p-low", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"p-high", builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"no-rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestCompose(t *testing.T) {
	// A star and a path over the same first nodes share them.
	g, err := builder.BuildGraph(nil, builder.Star(3), builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())
	assert.Equal(t, 3, g.EdgeCount()) // A→B shared, A→C, B→C
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(7),
			builder.WithWeightFn(builder.IntWeightFn(1, 9)),
		}
	}
	g1, err := builder.BuildGraph(opts(), builder.RandomSparse(10, 0.3))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(opts(), builder.RandomSparse(10, 0.3))
	require.NoError(t, err)
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())

	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
		assert.Equal(t, e.Weight, float64(int(e.Weight)))
	}
}

func TestIntWeightFn_NilRand(t *testing.T) {
	assert.Equal(t, 3.0, builder.IntWeightFn(3, 8)(nil))
	assert.Equal(t, 4.0, builder.IntWeightFn(4, 4)(rand.New(rand.NewSource(1))))
}
