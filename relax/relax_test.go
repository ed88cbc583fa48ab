// SPDX-License-Identifier: MIT

package relax_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onepass/builder"
	"github.com/katalvlaran/onepass/core"
	"github.com/katalvlaran/onepass/relax"
	"github.com/katalvlaran/onepass/table"
)

// edge is a compact fixture literal.
type edge struct {
	u, v string
	w    int64
}

func build(t *testing.T, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// want is the expected (previous, distance) of a row; dist < 0 means Infinity.
type want struct {
	prev string
	dist int64
}

func assertRows(t *testing.T, res *relax.Result, expected map[string]want) {
	t.Helper()
	require.Equal(t, len(expected), res.Table.Len(), "row count")
	for key, w := range expected {
		row, err := res.Row(key)
		require.NoError(t, err, key)
		assert.Equal(t, w.prev, row.Previous, "previous of %s", key)
		if w.dist < 0 {
			assert.True(t, row.FromStart.IsInf(), "distance of %s should be Infinity, got %s", key, row.FromStart)
			continue
		}
		assert.Equal(t, table.Finite(w.dist), row.FromStart, "distance of %s", key)
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := relax.ShortestPaths(nil)
	assert.ErrorIs(t, err, relax.ErrNilGraph)
}

func TestShortestPaths_EmptyGraph(t *testing.T) {
	_, err := relax.ShortestPaths(core.NewGraph())
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestRun_Validation(t *testing.T) {
	g := build(t, edge{"a", "b", 1})
	tbl, src, err := table.Initialize(g)
	require.NoError(t, err)

	assert.ErrorIs(t, relax.Run(nil, tbl, src), relax.ErrNilGraph)
	assert.ErrorIs(t, relax.Run(g, nil, src), relax.ErrNilTable)
	assert.ErrorIs(t, relax.Run(g, tbl, ""), relax.ErrEmptySource)
}

func TestRun_UnknownVertex(t *testing.T) {
	g := build(t, edge{"a", "b", 1})
	tbl := table.New(1)
	tbl.Insert("a")

	err := relax.Run(g, tbl, "a")
	assert.ErrorIs(t, err, table.ErrUnknownVertex)
}

func TestNegativeWeight_RejectedBeforeTable(t *testing.T) {
	g := build(t, edge{"a", "b", 1})
	require.ErrorIs(t, g.AddEdge("b", "c", -2), core.ErrNegativeWeight)

	res, err := relax.ShortestPaths(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Table.Len())
	assert.False(t, res.Table.Has("c"))
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestScenario_LoopLowersBThroughSweep(t *testing.T) {
	g := build(t,
		edge{"a", "b", 12},
		edge{"b", "c", 3},
		edge{"b", "d", 5},
		edge{"d", "c", 1},
		edge{"c", "a", 2},
	)

	res, err := relax.ShortestPaths(g)
	require.NoError(t, err)
	assert.Equal(t, "a", res.Source)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"b": {"c", 5},
		"c": {"a", 2},
		"d": {"c", 3},
	})

	// the original edge keeps its weight
	assert.Equal(t, int64(12), g.Edges()[0].Weight)
}

func TestScenario_TwoDirectEdges(t *testing.T) {
	res, err := relax.ShortestPaths(build(t, edge{"a", "b", 1}, edge{"a", "c", 2}))
	require.NoError(t, err)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"b": {"a", 1},
		"c": {"a", 2},
	})
}

func TestScenario_EquidistantReturnEdge(t *testing.T) {
	g := build(t,
		edge{"a", "b", 1},
		edge{"a", "c", 1},
		edge{"b", "d", 1},
		edge{"b", "e", 1},
		edge{"c", "f", 1},
		edge{"c", "g", 1},
		edge{"d", "h", 1},
		edge{"d", "i", 1},
		edge{"d", "a", 1},
	)

	res, err := relax.ShortestPaths(g)
	require.NoError(t, err)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"b": {"a", 1},
		"c": {"a", 1},
		"d": {"a", 1},
		"e": {"b", 2},
		"f": {"c", 2},
		"g": {"c", 2},
		// not revisited after d was lowered: single pass
		"h": {"d", 3},
		"i": {"d", 3},
	})
}

func TestScenario_WideLoop(t *testing.T) {
	g := build(t,
		edge{"a", "b", 3},
		edge{"b", "c", 44},
		edge{"c", "d", 1},
		edge{"d", "d1", 2},
		edge{"d1", "d2", 15},
		edge{"d2", "a", 1},
		edge{"c", "c1", 11},
		edge{"c1", "c2", 2},
	)

	res, err := relax.ShortestPaths(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d", "d1", "d2", "c1", "c2"}, res.Table.Keys())
	assertRows(t, res, map[string]want{
		"a":  {"", -1},
		"b":  {"a", 3},
		"c":  {"b", 47},
		"d":  {"c", 48},
		"d1": {"d2", 16},
		"d2": {"a", 1},
		"c1": {"c", 58},
		"c2": {"c1", 60},
	})
}

func TestBoundary_SingleEdge(t *testing.T) {
	g := build(t, edge{"a", "b", 1})

	res, err := relax.ShortestPaths(g)
	require.NoError(t, err)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"b": {"a", 1},
	})
	_, ok := g.Vertex("b")
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 3. Rule-level behavior
// ------------------------------------------------------------------------

func TestRules_UpdateSequence(t *testing.T) {
	g := build(t,
		edge{"a", "b", 12},
		edge{"b", "c", 3},
		edge{"b", "d", 5},
		edge{"d", "c", 1},
		edge{"c", "a", 2},
	)

	var got []string
	_, err := relax.ShortestPaths(g, relax.WithOnUpdate(func(u relax.Update) {
		got = append(got, fmt.Sprintf("%s:%s", u.Rule, u.Row.Key))
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"from-source:b",
		"forward:c",
		"forward:d",
		"return-edge:c",
		"sweep:b",
		"sweep:d",
	}, got)
}

func TestRedirect_ImprovesThroughCurrent(t *testing.T) {
	res, err := relax.ShortestPaths(build(t,
		edge{"a", "b", 5},
		edge{"a", "c", 1},
		edge{"c", "b", 1},
	))
	require.NoError(t, err)

	row, err := res.Row("b")
	require.NoError(t, err)
	assert.Equal(t, "c", row.Previous)
	assert.Equal(t, table.Finite(2), row.FromStart)
	assert.Equal(t, table.Finite(1), row.FromPrevious)
}

func TestRedirect_RepointsWithoutImprovement(t *testing.T) {
	res, err := relax.ShortestPaths(build(t,
		edge{"a", "b", 1},
		edge{"a", "c", 5},
		edge{"c", "b", 1},
	))
	require.NoError(t, err)

	// b keeps distance 1 (direct from a) but now names c as previous.
	row, err := res.Row("b")
	require.NoError(t, err)
	assert.Equal(t, "c", row.Previous)
	assert.Equal(t, table.Finite(1), row.FromStart)
	assert.Equal(t, table.Finite(1), row.FromPrevious)
}

func TestRedirect_InfiniteCurrentLeavesRow(t *testing.T) {
	res, err := relax.ShortestPaths(build(t,
		edge{"a", "b", 1},
		edge{"x", "b", 1},
	))
	require.NoError(t, err)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"b": {"a", 1},
		"x": {"", -1},
	})
}

func TestForward_InfiniteCurrentNeverRelaxes(t *testing.T) {
	// x is visited before y gives it a distance, so z is never reached
	res, err := relax.ShortestPaths(build(t,
		edge{"a", "y", 4},
		edge{"x", "z", 1},
		edge{"y", "x", 1},
	))
	require.NoError(t, err)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"y": {"a", 4},
		"x": {"y", 5},
		"z": {"", -1},
	})
}

func TestReturnEdge_NotCheaperIsIgnored(t *testing.T) {
	res, err := relax.ShortestPaths(build(t,
		edge{"a", "b", 1},
		edge{"b", "a", 7},
	))
	require.NoError(t, err)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"b": {"a", 1},
	})
}

func TestSourceRow_NeverWritten(t *testing.T) {
	// self-loop on the source, and a sweep that would otherwise reach it
	res, err := relax.ShortestPaths(build(t,
		edge{"a", "a", 0},
		edge{"a", "b", 1},
		edge{"b", "a", 0},
	))
	require.NoError(t, err)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"b": {"a", 0},
	})
}

func TestSourceRow_ReturnEdgeDoesNotReachSource(t *testing.T) {
	res, err := relax.ShortestPaths(build(t,
		edge{"a", "c", 5},
		edge{"c", "a", 1},
	))
	require.NoError(t, err)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"c": {"a", 1},
	})
}

func TestForward_OverflowingTotalStaysInfinity(t *testing.T) {
	res, err := relax.ShortestPaths(build(t,
		edge{"a", "b", math.MaxInt64},
		edge{"b", "c", 1},
	))
	require.NoError(t, err)

	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"b": {"a", math.MaxInt64},
		"c": {"", -1},
	})
}

func TestShortestPaths_RepeatableOnSameGraph(t *testing.T) {
	g := build(t,
		edge{"a", "b", 12},
		edge{"b", "c", 3},
		edge{"b", "d", 5},
		edge{"d", "c", 1},
		edge{"c", "a", 2},
	)

	first, err := relax.ShortestPaths(g)
	require.NoError(t, err)
	second, err := relax.ShortestPaths(g)
	require.NoError(t, err)

	assert.Equal(t, first.Table.Rows(), second.Table.Rows())
}

func TestCycle_SweepIsOneLevelDeep(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)

	res, err := relax.ShortestPaths(g)
	require.NoError(t, err)

	// e→a lowers e to 1, the sweep lowers d to 2; c is a grandparent and
	// keeps its forward distance.
	assertRows(t, res, map[string]want{
		"a": {"", -1},
		"b": {"a", 1},
		"c": {"b", 2},
		"d": {"e", 2},
		"e": {"a", 1},
	})
}

// ------------------------------------------------------------------------
// 4. Invariants over seeded random graphs
// ------------------------------------------------------------------------

func TestInvariants_RandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		g := core.NewGraph()
		n := 2 + r.Intn(10)
		m := 1 + r.Intn(3*n)
		for i := 0; i < m; i++ {
			u := fmt.Sprintf("v%d", r.Intn(n))
			v := fmt.Sprintf("v%d", r.Intn(n))
			require.NoError(t, g.AddEdge(u, v, int64(r.Intn(20))))
		}

		res, err := relax.ShortestPaths(g)
		require.NoError(t, err, "round %d", round)

		assert.Equal(t, g.Keys(), res.Table.Keys(), "round %d: one row per key", round)

		src, err := res.Row(res.Source)
		require.NoError(t, err)
		assert.Empty(t, src.Previous, "round %d: source previous", round)
		assert.True(t, src.FromStart.IsInf(), "round %d: source distance", round)
	}
}

func TestInvariants_RandomSparse(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(func(r *rand.Rand) int64 { return int64(r.Intn(9)) }),
		}, builder.RandomSparse(8, 0.3))
		require.NoError(t, err)
		if g.EdgeCount() == 0 {
			continue
		}

		first, err := relax.ShortestPaths(g)
		require.NoError(t, err)
		second, err := relax.ShortestPaths(g)
		require.NoError(t, err)

		assert.Equal(t, g.VertexCount(), first.Table.Len(), "seed %d", seed)
		assert.Equal(t, first.Table.Rows(), second.Table.Rows(), "seed %d", seed)
	}
}
