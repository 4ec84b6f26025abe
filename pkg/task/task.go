// Package task implements semi-naive grounding: driving pkg/clique's
// delta enumerator, round by round, over every rule in a prepared task
// until no round discovers a new ground atom.
//
// The algorithm is the standard Datalog semi-naive fixpoint (the reason
// this module's teacher is a Datalog engine): action preconditions and
// axiom bodies are rule bodies, action add-effects and axiom heads are
// rule heads, and "ground everything reachable" is bottom-up evaluation
// to a fixed point. What is specific to planning is only the shape of a
// rule body (partitioned literals plus numeric constraints) and the fact
// that a body's satisfying bindings are found via k-clique enumeration
// over a consistency graph rather than via relational joins.
package task

import (
	"github.com/mrlab-ai/groundcore/pkg/clique"
	"github.com/mrlab-ai/groundcore/pkg/ground"
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
	"github.com/mrlab-ai/groundcore/pkg/prepare"
)

// ruleState is the per-rule bookkeeping a GroundTaskBuilder keeps across
// rounds: the lifted rule itself, its consistency graph and enumerator,
// and the nullary gate (see Advance's doc comment).
type ruleState struct {
	rule model.RuleID
	cond model.ConjunctiveCondition

	graph *ruleGraph
	enum  *clique.Enumerator

	// nullaryOK is whether every nullary literal in the rule's body held
	// as of the end of the previous round. A rule whose nullary gate
	// flips false->true this round must run a full (not delta)
	// enumeration, since bindings that were always graph-valid were
	// never emitted while the gate was closed.
	nullaryOK bool
}

// Stats summarizes one Advance call: how much new ground content that
// round discovered. A round that finds nothing (every field zero) means
// the fixed point has been reached.
type Stats struct {
	Round      int32
	NewActions int
	NewAxioms  int
	NewAtoms   int
}

// IsEmpty reports whether a round produced no new ground content at all.
func (s Stats) IsEmpty() bool {
	return s.NewActions == 0 && s.NewAxioms == 0 && s.NewAtoms == 0
}

// Snapshot is the current ground content of a task, as of the most
// recent Advance (or Seed, before any round has run).
type Snapshot struct {
	GroundAtoms   []model.GroundAtomID
	GroundActions []model.GroundActionID
	GroundAxioms  []model.GroundAxiomID
}

// GroundTaskBuilder drives semi-naive grounding over a prepared task: the
// type the external interface (SPEC_FULL.md §6) names.
type GroundTaskBuilder struct {
	repo     *model.Repository
	task     *prepare.Task
	grounder *ground.Grounder

	rules []*ruleState
	holds map[model.GroundAtomID]bool

	round  int32
	seeded bool

	actions    []model.GroundActionID
	axioms     []model.GroundAxiomID
	actionSeen map[model.GroundActionID]bool
	axiomSeen  map[model.GroundAxiomID]bool
	newAtoms   []model.GroundAtomID // ground atoms discovered since the last Advance, this round's delta
}

// New returns a GroundTaskBuilder over a repository and task already
// produced by pkg/prepare. Call Seed once, then Advance repeatedly until
// it returns an empty Stats.
func New(repo *model.Repository, t *prepare.Task) *GroundTaskBuilder {
	return &GroundTaskBuilder{
		repo:       repo,
		task:       t,
		grounder:   ground.New(repo),
		holds:      make(map[model.GroundAtomID]bool),
		actionSeen: make(map[model.GroundActionID]bool),
		axiomSeen:  make(map[model.GroundAxiomID]bool),
	}
}

// Seed initializes the holds set from the task's initial ground atoms and
// builds each rule's static consistency graph against that seeded state.
// Must be called exactly once, before the first Advance.
func (b *GroundTaskBuilder) Seed() error {
	for _, id := range b.task.InitialGroundAtoms {
		b.holds[id] = true
	}

	for _, ruleID := range b.task.Rules {
		rule := b.repo.Rules.Get(intern.ID(ruleID))
		cond := b.repo.ConjunctiveConditions.Get(intern.ID(rule.Body))

		rg := buildRuleGraph(b.repo, rule.NumParameters, cond, b.holds)
		rs := &ruleState{
			rule:      ruleID,
			cond:      cond,
			graph:     rg,
			enum:      clique.NewEnumerator(rg.static),
			nullaryOK: allLiteralsHold(b.repo, cond.NullaryLiterals, nil, b.holds),
		}
		b.rules = append(b.rules, rs)
	}

	// Dynamic edges are only ever discovered by observing a ground atom
	// become true (see applyDynamicEdges); the initial facts become true
	// "before round zero" and so must be observed here, or a fluent
	// literal's pair would never connect its vertices in time for round
	// zero's own enumeration.
	b.applyDynamicEdges(b.task.InitialGroundAtoms)

	b.seeded = true
	return nil
}

// applyDynamicEdges feeds every rule's dynamic-literal patterns with the
// objects of each newly (or initially) true ground atom in atoms, adding
// a graph edge — and recording it in that rule's Rank — wherever a
// pattern matches.
func (b *GroundTaskBuilder) applyDynamicEdges(atoms []model.GroundAtomID) {
	for _, atom := range atoms {
		ga := b.repo.GroundAtoms.Get(atom)
		for _, rs := range b.rules {
			for _, e := range rs.graph.observe(ga) {
				rs.enum.Rank().AddEdge(e.from, e.to)
			}
		}
	}
}

// Advance runs one semi-naive round: the ground atoms discovered by the
// previous round are first turned into this round's dynamic graph edges,
// then every rule is enumerated (fully, the first round or whenever its
// nullary gate just opened; incrementally, against the edges just added,
// otherwise), every candidate clique is rechecked against the rule's
// body literals, and every accepted binding is instantiated via
// pkg/ground. Returns the Stats for the round just run; an empty Stats
// means grounding has reached its fixed point and further Advance calls
// are no-ops.
func (b *GroundTaskBuilder) Advance() (Stats, error) {
	if !b.seeded {
		return Stats{}, &perrors.InvariantViolation{
			Component: "task",
			Message:   "Advance called before Seed",
		}
	}
	stats := Stats{Round: b.round}
	b.applyDynamicEdges(b.newAtoms)
	b.newAtoms = nil

	for _, rs := range b.rules {
		wasOK := rs.nullaryOK
		rs.nullaryOK = allLiteralsHold(b.repo, rs.cond.NullaryLiterals, nil, b.holds)
		if !rs.nullaryOK {
			continue
		}
		full := b.round == 0 || !wasOK

		var visitErr error
		visit := func(vertices []int32) bool {
			objects := make([]model.ObjectID, len(vertices))
			for p, v := range vertices {
				objects[p] = rs.graph.static.Vertices[v].Object
			}
			bnd := make(binding, len(objects))
			for p, o := range objects {
				bnd[int32(p)] = o
			}
			if !b.verifyBinding(rs.cond, bnd) {
				return true
			}

			result, err := b.grounder.Instantiate(rs.rule, objects)
			if err != nil {
				visitErr = err
				return false
			}
			if result.Action != nil {
				if b.recordAction(*result.Action) {
					stats.NewActions++
				}
			}
			if result.Axiom != nil {
				if b.recordAxiom(*result.Axiom) {
					stats.NewAxioms++
				}
			}
			return true
		}

		if full {
			rs.enum.ForEachRuleClique(visit)
		} else {
			rs.enum.ForEachNewRuleClique(visit)
		}
		if visitErr != nil {
			return Stats{}, visitErr
		}
		rs.enum.Rank().Advance()
	}

	stats.NewAtoms = len(b.newAtoms)
	b.round++
	return stats, nil
}

// verifyBinding is the final authoritative check: the graph only
// guarantees consistency of static literals and positive two-parameter
// dynamic literals, so every candidate clique must still be rechecked
// against every static, fluent and derived body literal (every arity,
// every polarity) before it is accepted as a genuine ground action or
// axiom. Nullary literals are gated in Advance; numeric constraints are
// not evaluated.
func (b *GroundTaskBuilder) verifyBinding(cond model.ConjunctiveCondition, bnd binding) bool {
	return allLiteralsHold(b.repo, cond.StaticLiterals, bnd, b.holds) &&
		allLiteralsHold(b.repo, cond.FluentLiterals, bnd, b.holds) &&
		allLiteralsHold(b.repo, cond.DerivedLiterals, bnd, b.holds)
}

// recordAction grows holds with the action's unconditionally-added atoms
// (delete-relaxed reachability: a conditional effect's own condition is
// ignored when deciding which atoms become reachable, matching standard
// grounding-time relaxed reachability analysis) and reports whether this
// action id is new.
func (b *GroundTaskBuilder) recordAction(id model.GroundActionID) bool {
	if b.actionSeen[id] {
		return false
	}
	b.actionSeen[id] = true
	b.actions = append(b.actions, id)

	ga := b.repo.GroundActions.Get(intern.ID(id))
	for _, eff := range ga.GroundEffects {
		for _, add := range eff.Add {
			b.addHolds(add)
		}
	}
	return true
}

// recordAxiom grows holds with the axiom's head atom and reports whether
// this axiom id is new.
func (b *GroundTaskBuilder) recordAxiom(id model.GroundAxiomID) bool {
	if b.axiomSeen[id] {
		return false
	}
	b.axiomSeen[id] = true
	b.axioms = append(b.axioms, id)

	axiom := b.repo.GroundAxioms.Get(intern.ID(id))
	b.addHolds(axiom.Head)
	return true
}

// addHolds records atom as newly true, if it was not already, and queues
// it as part of this round's delta for the dynamic-edge update pass at
// the start of the next Advance call.
func (b *GroundTaskBuilder) addHolds(atom model.GroundAtomID) {
	if b.holds[atom] {
		return
	}
	b.holds[atom] = true
	b.newAtoms = append(b.newAtoms, atom)
}

// Snapshot returns the ground content accumulated so far.
func (b *GroundTaskBuilder) Snapshot() Snapshot {
	atoms := make([]model.GroundAtomID, 0, len(b.holds))
	for atom, present := range b.holds {
		if present {
			atoms = append(atoms, atom)
		}
	}
	return Snapshot{
		GroundAtoms:   atoms,
		GroundActions: append([]model.GroundActionID{}, b.actions...),
		GroundAxioms:  append([]model.GroundAxiomID{}, b.axioms...),
	}
}
