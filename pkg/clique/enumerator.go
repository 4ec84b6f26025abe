// Package clique implements the delta k-partite clique enumerator: the
// algorithmic core of semi-naive grounding. Given a rule's static
// consistency graph plus the edges contributed by the fluent/derived
// atoms that hold in the current round, it enumerates every k-clique
// (one vertex per parameter partition, pairwise consistent) that
// corresponds to a legal binding of the rule's parameters.
//
// The "new" entry points restrict enumeration to cliques that use at
// least one edge added since the previous round (the delta), which is
// what makes semi-naive evaluation sub-quadratic in the number of rounds:
// a clique already emitted once is never re-emitted just because an
// unrelated edge appeared later.
package clique

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/mrlab-ai/groundcore/pkg/graph"
)

// Rank orders an edge by the round in which it was first added. Static
// edges (present from round zero) have rank 0; an edge contributed by a
// fluent/derived atom that first held in round r has rank r+1. A clique
// is "new" in round r iff the maximum rank among its edges equals the
// rank of the edge that seeded it (the anchor) — every other edge in the
// clique has rank <= the anchor's rank, and the anchor itself was added
// this round.
type Rank struct {
	static *graph.Static
	// dynamic[v] maps neighbor index -> round it was added, for edges not
	// present in the static graph.
	dynamic []map[int32]int32
	round   int32
}

// NewRank allocates a Rank tracker over a fixed static graph.
func NewRank(static *graph.Static) *Rank {
	return &Rank{
		static:  static,
		dynamic: make([]map[int32]int32, static.NumVertices()),
	}
}

// AddEdge records a dynamic (fluent/derived) edge as added in the current
// round. Static edges never need to be added here — they exist from
// construction and are implicitly rank 0.
func (r *Rank) AddEdge(from, to int32) {
	if r.dynamic[from] == nil {
		r.dynamic[from] = make(map[int32]int32)
	}
	if r.dynamic[to] == nil {
		r.dynamic[to] = make(map[int32]int32)
	}
	r.dynamic[from][to] = r.round
	r.dynamic[to][from] = r.round
}

// Advance moves to the next round. Call once per semi-naive iteration,
// after AddEdge has recorded every edge discovered in the round just
// finished.
func (r *Rank) Advance() { r.round++ }

// Round returns the current round number.
func (r *Rank) Round() int32 { return r.round }

// edgeRank returns an edge's rank: the round it was recorded by AddEdge
// plus one (even where the static graph also has the edge), 0 for an edge
// only the static graph has, or -1 if v and w are not adjacent at all.
func (r *Rank) edgeRank(v, w int32) int32 {
	if m := r.dynamic[v]; m != nil {
		if round, ok := m[w]; ok {
			return round + 1
		}
	}
	if r.static.Adjacent(v, w) {
		return 0
	}
	return -1
}

func (r *Rank) adjacent(v, w int32) bool { return r.edgeRank(v, w) >= 0 }

// addedThisRound reports whether the edge between v and w was recorded
// since the last Advance call — as opposed to edgeRank(v,w) > 0, which
// would also match edges discovered in any earlier round. Delta
// enumeration's sub-quadratic guarantee depends on only this round's
// edges counting as "new"; a clique that already used an older dynamic
// edge was already emitted when that edge first appeared.
func (r *Rank) addedThisRound(v, w int32) bool { return r.edgeRank(v, w) == r.round+1 }

// Enumerator finds k-cliques (one vertex per parameter partition) in a
// rule's consistency graph, optionally restricted to cliques that use at
// least one edge from the current round's delta.
type Enumerator struct {
	static *graph.Static
	rank   *Rank
}

// NewEnumerator builds an enumerator over a rule's static graph. The
// caller drives rounds by calling Rank().AddEdge for every fluent/derived
// edge discovered, then one of the ForEach* methods, then Rank().Advance.
func NewEnumerator(static *graph.Static) *Enumerator {
	return &Enumerator{static: static, rank: NewRank(static)}
}

// Rank exposes the enumerator's round/edge-rank tracker so the caller can
// feed it dynamic edges between rounds.
func (e *Enumerator) Rank() *Rank { return e.rank }

// Visit receives one satisfying clique as a slice of vertex indices, one
// per parameter position in partition order (index p of the returned
// slice is the vertex chosen for partition p, not enumeration order).
// The slice is only valid for the duration of the call; a caller that
// needs to retain a binding must copy it. Returning false stops
// enumeration early.
type Visit func(clique []int32) bool

// ForEachRuleClique enumerates every k-clique across all NumParameters
// partitions, regardless of which round contributed its edges. This is
// the full (non-incremental) enumeration, used once to ground the
// initial round of a task before any delta exists.
func (e *Enumerator) ForEachRuleClique(visit Visit) {
	e.search(nil, visit, false)
}

// ForEachNewRuleClique enumerates only cliques that contain at least one
// edge added in the most recent round. This is the semi-naive entry
// point used for every round after the first.
func (e *Enumerator) ForEachNewRuleClique(visit Visit) {
	e.search(nil, visit, true)
}

// ForEachHeadClique enumerates k-cliques consistent with a fixed partial
// assignment (anchor) — typically the binding forced by a single head
// atom's arguments, used when joining a rule body against one specific
// candidate ground atom instead of searching the whole graph unseeded.
// anchor[p] gives the forced vertex index for partition p, or -1 if
// partition p is unconstrained. anchor may be nil, equivalent to
// ForEachRuleClique.
func (e *Enumerator) ForEachHeadClique(anchor []int32, visit Visit) {
	e.search(anchor, visit, false)
}

// ForEachNewHeadClique is ForEachHeadClique restricted to cliques using
// at least one edge from the most recent round.
func (e *Enumerator) ForEachNewHeadClique(anchor []int32, visit Visit) {
	e.search(anchor, visit, true)
}

// search is the shared driver behind all four entry points.
func (e *Enumerator) search(anchor []int32, visit Visit, newOnly bool) {
	n := int(e.static.NumParameters)
	if n == 0 {
		visit(nil)
		return
	}

	w := newWorkspace(e.static, anchor)
	chosen := make([]int32, n)
	usedNewEdge := false

	var recurse func(depth int) bool
	recurse = func(depth int) bool {
		if depth == len(w.order) {
			if newOnly && !usedNewEdge {
				return true
			}
			return visit(chosen)
		}
		part := w.order[depth]
		cands := w.candidatesAt(depth)
		for v, ok := cands.NextSet(0); ok; v, ok = cands.NextSet(v + 1) {
			vi := int32(v)
			if !w.compatibleWithChosen(chosen, vi, e.rank, depth) {
				continue
			}
			newEdgeHere := false
			for d := 0; d < depth; d++ {
				if e.rank.addedThisRound(chosen[w.order[d]], vi) {
					newEdgeHere = true
					break
				}
			}
			prevUsedNew := usedNewEdge
			if newEdgeHere {
				usedNewEdge = true
			}
			chosen[part] = vi
			if !recurse(depth + 1) {
				return false
			}
			usedNewEdge = prevUsedNew
		}
		return true
	}
	recurse(0)
}

// workspace fixes a visiting order over partitions (most-constrained
// first) and exposes, for each depth, the candidate vertex set for that
// depth's partition intersected with the anchor restriction if any.
type workspace struct {
	static *graph.Static
	order  []int32 // order[depth] = partition index visited at that depth
	base   []*bitset.BitSet // base[partition] = candidate set before adjacency pruning
}

func newWorkspace(static *graph.Static, anchor []int32) *workspace {
	numV := uint(static.NumVertices())
	numP := len(static.Partition)
	base := make([]*bitset.BitSet, numP)
	for p, verts := range static.Partition {
		s := bitset.New(numV)
		if anchor != nil && anchor[p] >= 0 {
			s.Set(uint(anchor[p]))
		} else {
			for _, v := range verts {
				s.Set(uint(v))
			}
		}
		base[p] = s
	}

	order := make([]int32, numP)
	for p := range order {
		order[p] = int32(p)
	}
	// choose_best_partition: sort ascending by candidate-set cardinality,
	// forced (anchor) partitions first since they cost nothing to fix and
	// immediately tighten every later partition.
	forced := func(p int32) bool { return anchor != nil && anchor[p] >= 0 }
	for i := 0; i < len(order); i++ {
		best := i
		for j := i + 1; j < len(order); j++ {
			if better(order[j], order[best], base, forced) {
				best = j
			}
		}
		order[i], order[best] = order[best], order[i]
	}

	return &workspace{static: static, order: order, base: base}
}

func better(a, b int32, base []*bitset.BitSet, forced func(int32) bool) bool {
	fa, fb := forced(a), forced(b)
	if fa != fb {
		return fa
	}
	return base[a].Count() < base[b].Count()
}

// candidatesAt returns the candidate vertex set for the partition visited
// at depth, before per-call adjacency filtering against chosen vertices
// (that filtering happens inline in search, since it also needs the rank
// of each edge to track delta usage).
func (w *workspace) candidatesAt(depth int) *bitset.BitSet {
	return w.base[w.order[depth]].Clone()
}

// compatibleWithChosen reports whether candidate vi is adjacent to every
// vertex already chosen at shallower depths. chosen is indexed by
// partition, not by depth; w.order[d] maps depth d back to its partition.
func (w *workspace) compatibleWithChosen(chosen []int32, vi int32, rank *Rank, depth int) bool {
	for d := 0; d < depth; d++ {
		if !rank.adjacent(chosen[w.order[d]], vi) {
			return false
		}
	}
	return true
}
