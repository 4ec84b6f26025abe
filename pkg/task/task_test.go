package task_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
	"github.com/mrlab-ai/groundcore/pkg/prepare"
	"github.com/mrlab-ai/groundcore/pkg/task"
)

type fixedDescription struct {
	domain  *plinput.Domain
	problem *plinput.Problem
}

func (f fixedDescription) Domain() *plinput.Domain   { return f.domain }
func (f fixedDescription) Problem() *plinput.Problem { return f.problem }

// roadChainDomain is a one-action logistics fixture with a three-hop road
// network: driving is only reachable one hop at a time, so grounding
// every reachable "drive" action requires more than one semi-naive round
// — drive(truck1, loc-b, loc-c) only becomes groundable once
// drive(truck1, loc-a, loc-b) has added at(truck1, loc-b) to the holds
// set.
func roadChainDomain() fixedDescription {
	domain := &plinput.Domain{
		Name: "road-chain",
		Predicates: []plinput.PredicateDecl{
			{Name: "at", Arity: 2},
			{Name: "road", Arity: 2},
		},
		Actions: []plinput.ActionDef{
			{
				Name:       "drive",
				Parameters: []string{"?t", "?from", "?to"},
				Precondition: plinput.ConditionExpr{
					Literals: []plinput.LiteralExpr{
						{Atom: plinput.AtomExpr{Predicate: "at", Terms: []plinput.TermExpr{
							{IsParameter: true, Name: "?t"}, {IsParameter: true, Name: "?from"},
						}}},
						{Atom: plinput.AtomExpr{Predicate: "road", Terms: []plinput.TermExpr{
							{IsParameter: true, Name: "?from"}, {IsParameter: true, Name: "?to"},
						}}},
					},
				},
				Effects: []plinput.EffectExpr{
					{
						AddLiterals: []plinput.AtomExpr{
							{Predicate: "at", Terms: []plinput.TermExpr{
								{IsParameter: true, Name: "?t"}, {IsParameter: true, Name: "?to"},
							}},
						},
						DeleteLiterals: []plinput.AtomExpr{
							{Predicate: "at", Terms: []plinput.TermExpr{
								{IsParameter: true, Name: "?t"}, {IsParameter: true, Name: "?from"},
							}},
						},
					},
				},
			},
		},
	}

	problem := &plinput.Problem{
		Name:    "road-chain-p1",
		Objects: []string{"truck1", "loc-a", "loc-b", "loc-c"},
		InitialAtoms: []plinput.AtomExpr{
			{Predicate: "at", Terms: []plinput.TermExpr{{Name: "truck1"}, {Name: "loc-a"}}},
			{Predicate: "road", Terms: []plinput.TermExpr{{Name: "loc-a"}, {Name: "loc-b"}}},
			{Predicate: "road", Terms: []plinput.TermExpr{{Name: "loc-b"}, {Name: "loc-c"}}},
		},
		Goal: plinput.ConditionExpr{},
	}

	return fixedDescription{domain: domain, problem: problem}
}

func objectName(repo *model.Repository, id model.ObjectID) string {
	return repo.Objects.Get(intern.ID(id)).Name
}

// runToFixedPoint drives Advance until a round produces nothing new,
// returning the number of rounds it took (including the empty one).
func runToFixedPoint(t *testing.T, b *task.GroundTaskBuilder) int {
	t.Helper()
	require.NoError(t, b.Seed())
	for rounds := 1; ; rounds++ {
		stats, err := b.Advance()
		require.NoError(t, err)
		if stats.IsEmpty() {
			return rounds
		}
	}
}

func TestGroundTaskBuilderReachesFixedPointOverARoadChain(t *testing.T) {
	desc := roadChainDomain()
	repo, prepared, err := prepare.New().Prepare(desc)
	require.NoError(t, err)
	require.Len(t, prepared.Rules, 1)

	b := task.New(repo, prepared)
	rounds := runToFixedPoint(t, b)
	require.GreaterOrEqual(t, rounds, 2, "the second hop should only become groundable after a later round")

	snap := b.Snapshot()
	require.Len(t, snap.GroundActions, 2, "drive(a,b) and drive(b,c) should both be grounded, and no others")

	var destinations []string
	for _, id := range snap.GroundActions {
		action := repo.GroundActions.Get(intern.ID(id))
		binding := repo.Bindings.Get(intern.ID(action.Binding))
		destinations = append(destinations, objectName(repo, binding.At(2)))
	}
	require.ElementsMatch(t, []string{"loc-b", "loc-c"}, destinations)
}

func TestAdvanceAfterFixedPointIsANoOp(t *testing.T) {
	desc := roadChainDomain()
	repo, prepared, err := prepare.New().Prepare(desc)
	require.NoError(t, err)

	b := task.New(repo, prepared)
	runToFixedPoint(t, b)
	before := b.Snapshot()

	stats, err := b.Advance()
	require.NoError(t, err)
	require.True(t, stats.IsEmpty())

	after := b.Snapshot()
	require.ElementsMatch(t, before.GroundActions, after.GroundActions)
	require.ElementsMatch(t, before.GroundAtoms, after.GroundAtoms)
}

func TestAdvanceBeforeSeedReportsAnError(t *testing.T) {
	desc := roadChainDomain()
	repo, prepared, err := prepare.New().Prepare(desc)
	require.NoError(t, err)

	b := task.New(repo, prepared)
	_, err = b.Advance()
	require.Error(t, err)
}
