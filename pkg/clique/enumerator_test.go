package clique_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/clique"
	"github.com/mrlab-ai/groundcore/pkg/graph"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

// twoPartitionGraph builds a static graph with parameters 0 and 1 each
// offering two candidate objects, fully connected (every pair of
// candidates across the two partitions is statically consistent), so the
// only cliques are the four (v0, v1) combinations.
func twoPartitionGraph(t *testing.T) (*graph.Static, map[[2]int32]int32) {
	t.Helper()
	g := graph.NewStatic(2)
	verts := make(map[[2]int32]int32)
	for p := int32(0); p < 2; p++ {
		for o := int32(0); o < 2; o++ {
			v := g.AddVertex(p, model.ObjectID(o))
			verts[[2]int32{p, o}] = v
		}
	}
	for o0 := int32(0); o0 < 2; o0++ {
		for o1 := int32(0); o1 < 2; o1++ {
			g.AddEdge(verts[[2]int32{0, o0}], verts[[2]int32{1, o1}])
		}
	}
	return g, verts
}

func collectCliques(e *clique.Enumerator, onlyNew bool) [][]int32 {
	var got [][]int32
	visit := func(c []int32) bool {
		cp := append([]int32(nil), c...)
		got = append(got, cp)
		return true
	}
	if onlyNew {
		e.ForEachNewRuleClique(visit)
	} else {
		e.ForEachRuleClique(visit)
	}
	return got
}

func TestForEachRuleCliqueEnumeratesEveryCombinationInAFullyConnectedGraph(t *testing.T) {
	g, _ := twoPartitionGraph(t)
	e := clique.NewEnumerator(g)

	got := collectCliques(e, false)
	require.Len(t, got, 4)
}

func TestForEachNewRuleCliqueOnlyReturnsCliquesUsingThisRoundsDeltaEdge(t *testing.T) {
	// Build a graph with no static edges at all, so every clique must come
	// from a dynamically-added edge.
	g := graph.NewStatic(2)
	a0 := g.AddVertex(0, model.ObjectID(0))
	a1 := g.AddVertex(0, model.ObjectID(1))
	b0 := g.AddVertex(1, model.ObjectID(0))
	b1 := g.AddVertex(1, model.ObjectID(1))

	e := clique.NewEnumerator(g)

	// Round 0 contributes one edge; a0-b0 is now a clique.
	e.Rank().AddEdge(a0, b0)
	got := collectCliques(e, true)
	require.Len(t, got, 1)
	require.Equal(t, []int32{a0, b0}, got[0])
	e.Rank().Advance()

	// Round 1 adds a second edge. ForEachNewRuleClique must report only the
	// clique seeded by this round's edge (a1-b1) — a0-b0 was already
	// emitted as new in round 0 and must not be re-emitted just because it
	// is still a valid (now "old") dynamic clique.
	e.Rank().AddEdge(a1, b1)
	got = collectCliques(e, true)
	require.Len(t, got, 1)
	require.Equal(t, []int32{a1, b1}, got[0])
	e.Rank().Advance()

	// The full (non-incremental) enumeration still reports both.
	var all [][]int32
	e.ForEachRuleClique(func(c []int32) bool {
		all = append(all, append([]int32(nil), c...))
		return true
	})
	require.Len(t, all, 2)
}

func TestForEachHeadCliqueRestrictsToTheAnchoredPartition(t *testing.T) {
	g, verts := twoPartitionGraph(t)
	e := clique.NewEnumerator(g)

	anchor := []int32{verts[[2]int32{0, 0}], -1}
	got := collectAnchored(e, anchor)

	require.Len(t, got, 2)
	for _, c := range got {
		require.Equal(t, verts[[2]int32{0, 0}], c[0])
	}
}

func collectAnchored(e *clique.Enumerator, anchor []int32) [][]int32 {
	var got [][]int32
	e.ForEachHeadClique(anchor, func(c []int32) bool {
		got = append(got, append([]int32(nil), c...))
		return true
	})
	sort.Slice(got, func(i, j int) bool { return got[i][1] < got[j][1] })
	return got
}

func TestVisitReturningFalseStopsEnumerationEarly(t *testing.T) {
	g, _ := twoPartitionGraph(t)
	e := clique.NewEnumerator(g)

	count := 0
	e.ForEachRuleClique(func(c []int32) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}

func TestZeroParameterRuleVisitsOnceWithAnEmptyClique(t *testing.T) {
	g := graph.NewStatic(0)
	e := clique.NewEnumerator(g)

	count := 0
	e.ForEachRuleClique(func(c []int32) bool {
		count++
		require.Nil(t, c)
		return true
	})
	require.Equal(t, 1, count)
}
