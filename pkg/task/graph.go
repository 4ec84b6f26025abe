package task

import (
	"github.com/mrlab-ai/groundcore/pkg/graph"
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

// pairKey canonically orders a pair of distinct parameter positions so two
// literals mentioning the same pair in either order land in the same
// bucket.
type pairKey struct{ p, q int32 }

func newPairKey(a, b int32) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{p: a, q: b}
}

// dynamicEdge is one positive, exactly-two-parameter fluent or derived
// literal: a candidate source of a graph edge that can only appear once
// grounding discovers the matching ground atom is true. Negated dynamic
// literals and ones mentioning more or fewer than two parameters are
// never used to prune the graph — see buildRuleGraph's doc comment — they
// are instead verified directly, alongside everything else, by
// verifyBinding.
type dynamicEdge struct {
	p, q      int32
	predicate model.PredicateID
	terms     []model.Term
}

// ruleGraph bundles a rule's fixed static consistency graph with the
// bookkeeping needed to extend it incrementally: the vertex index (so a
// newly discovered ground atom's objects can be mapped back to graph
// vertex indices) and the list of dynamic literals that can contribute an
// edge.
type ruleGraph struct {
	static  *graph.Static
	vidx    []map[model.ObjectID]int32 // vidx[p][object] = vertex index
	dynamic []dynamicEdge
}

// buildRuleGraph builds the static consistency graph for one rule body,
// per spec's §4.3: partition p's candidates are the objects consistent
// with every *static* literal mentioning only p; edges connect candidate
// pairs consistent with every *static* literal mentioning exactly two
// parameters.
//
// A full k-clique requires an edge between *every* pair of chosen
// vertices, including pairs of parameters no literal ever mentions
// together. Such pairs would otherwise never be graph-adjacent and the
// clique could never be completed at all, so any (p, q) pair not
// governed by some exactly-two-parameter literal gets a default edge
// between every pair of distinct objects — unconstrained parameters
// impose no restriction, and it is verifyBinding, not the graph, that
// enforces the literals that do apply. Nullary literals, unary
// fluent/derived literals, negated fluent/derived literals, and literals
// mentioning three or more parameters are likewise never represented as
// restrictions in the graph: the graph is purely a pruning aid for the
// enumerator, never the sole arbiter of a binding's validity. This keeps
// the graph construction simple while remaining exact: the graph can
// only ever under-prune (emit a superset of valid bindings), never
// over-prune.
func buildRuleGraph(repo *model.Repository, numParams int32, cond model.ConjunctiveCondition, holds map[model.GroundAtomID]bool) *ruleGraph {
	g := graph.NewStatic(numParams)
	vidx := make([]map[model.ObjectID]int32, numParams)
	for p := range vidx {
		vidx[p] = make(map[model.ObjectID]int32)
	}

	unary := make([][]model.LiteralID, numParams)
	pairwiseStatic := make(map[pairKey][]model.LiteralID)
	for _, litID := range cond.StaticLiterals {
		lit := repo.Literals.Get(intern.ID(litID))
		atom := repo.Atoms.Get(lit.Atom)
		switch ps := distinctParams(atom.Terms); len(ps) {
		case 1:
			unary[ps[0]] = append(unary[ps[0]], litID)
		case 2:
			key := newPairKey(ps[0], ps[1])
			pairwiseStatic[key] = append(pairwiseStatic[key], litID)
		}
	}

	objects := allObjects(repo)
	for p := int32(0); p < numParams; p++ {
		for _, o := range objects {
			if allLiteralsHold(repo, unary[p], binding{p: o}, holds) {
				v := g.AddVertex(p, o)
				vidx[p][o] = v
			}
		}
	}

	for key, lits := range pairwiseStatic {
		for o1, v := range vidx[key.p] {
			for o2, w := range vidx[key.q] {
				if o1 == o2 {
					continue
				}
				b := binding{key.p: o1, key.q: o2}
				if allLiteralsHold(repo, lits, b, holds) {
					g.AddEdge(v, w)
				}
			}
		}
	}

	var dynamic []dynamicEdge
	dynamicKeys := make(map[pairKey]bool)
	for _, litID := range append(append([]model.LiteralID{}, cond.FluentLiterals...), cond.DerivedLiterals...) {
		lit := repo.Literals.Get(intern.ID(litID))
		atom := repo.Atoms.Get(lit.Atom)
		ps := distinctParams(atom.Terms)
		if len(ps) != 2 {
			continue
		}
		if !lit.Negated {
			dynamic = append(dynamic, dynamicEdge{p: ps[0], q: ps[1], predicate: lit.Predicate, terms: atom.Terms})
			dynamicKeys[newPairKey(ps[0], ps[1])] = true
		}
	}

	for p := int32(0); p < numParams; p++ {
		for q := p + 1; q < numParams; q++ {
			key := newPairKey(p, q)
			if pairwiseStatic[key] != nil || dynamicKeys[key] {
				continue
			}
			for o1, v := range vidx[p] {
				for o2, w := range vidx[q] {
					if o1 != o2 {
						g.AddEdge(v, w)
					}
				}
			}
		}
	}

	return &ruleGraph{static: g, vidx: vidx, dynamic: dynamic}
}

// observe matches one newly-true ground atom against the rule's dynamic
// literals and returns an edge for every one it structurally matches; the
// static graph itself is left unchanged, and the caller records each edge
// in the rule's clique.Rank. It returns nothing if the atom's predicate
// does not appear among the rule's dynamic literals, or if one of the two
// objects never qualified as a static-consistent vertex.
func (rg *ruleGraph) observe(atom model.GroundAtom) []edge {
	var added []edge
	for _, d := range rg.dynamic {
		if d.predicate != atom.Predicate {
			continue
		}
		b, ok := matchAtomPattern(d.terms, atom.Objects)
		if !ok || len(b) != 2 {
			continue
		}
		op, okp := b[d.p]
		oq, okq := b[d.q]
		if !okp || !okq {
			continue
		}
		v, okv := rg.vidx[d.p][op]
		w, okw := rg.vidx[d.q][oq]
		if !okv || !okw || v == w {
			continue
		}
		added = append(added, edge{from: v, to: w})
	}
	return added
}

type edge struct{ from, to int32 }

func allObjects(repo *model.Repository) []model.ObjectID {
	objects := make([]model.ObjectID, repo.Objects.Len())
	for i := range objects {
		objects[i] = model.ObjectID(i)
	}
	return objects
}
