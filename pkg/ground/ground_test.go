package ground_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/ground"
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
	"github.com/mrlab-ai/groundcore/pkg/prepare"
)

type fixedDescription struct {
	domain  *plinput.Domain
	problem *plinput.Problem
}

func (f fixedDescription) Domain() *plinput.Domain   { return f.domain }
func (f fixedDescription) Problem() *plinput.Problem { return f.problem }

// driveDomain is the tiny one-action, two-predicate logistics fixture
// shared with pkg/prepare's tests: "drive" moves a truck across a road
// edge, deleting its old location and adding the new one.
func driveDomain() fixedDescription {
	domain := &plinput.Domain{
		Name: "tiny-logistics",
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
		Name:    "tiny-logistics-p1",
		Objects: []string{"truck1", "loc-a", "loc-b"},
		InitialAtoms: []plinput.AtomExpr{
			{Predicate: "at", Terms: []plinput.TermExpr{{Name: "truck1"}, {Name: "loc-a"}}},
			{Predicate: "road", Terms: []plinput.TermExpr{{Name: "loc-a"}, {Name: "loc-b"}}},
		},
		Goal: plinput.ConditionExpr{},
	}

	return fixedDescription{domain: domain, problem: problem}
}

func objects(repo *model.Repository, names ...string) []model.ObjectID {
	ids := make([]model.ObjectID, len(names))
	for i, n := range names {
		for j := 0; j < repo.Objects.Len(); j++ {
			if repo.Objects.Get(intern.ID(j)).Name == n {
				ids[i] = model.ObjectID(j)
			}
		}
	}
	return ids
}

func TestInstantiateGroundsActionAddAndDelete(t *testing.T) {
	desc := driveDomain()
	repo, task, err := prepare.New().Prepare(desc)
	require.NoError(t, err)
	require.Len(t, task.Rules, 1)

	g := ground.New(repo)
	binding := objects(repo, "truck1", "loc-a", "loc-b")
	result, err := g.Instantiate(task.Rules[0], binding)
	require.NoError(t, err)
	require.NotNil(t, result.Action)

	action := repo.GroundActions.Get(intern.ID(*result.Action))
	require.Len(t, action.GroundPrecondition, 2)
	require.Len(t, action.GroundEffects, 1)
	require.Len(t, action.GroundEffects[0].Add, 1)
	require.Len(t, action.GroundEffects[0].Delete, 1)
}

func TestInstantiateRejectsWrongArityBinding(t *testing.T) {
	desc := driveDomain()
	repo, task, err := prepare.New().Prepare(desc)
	require.NoError(t, err)

	g := ground.New(repo)
	_, err = g.Instantiate(task.Rules[0], objects(repo, "truck1", "loc-a"))
	require.Error(t, err)
}

func TestInstantiateIsIdempotentForTheSameBinding(t *testing.T) {
	desc := driveDomain()
	repo, task, err := prepare.New().Prepare(desc)
	require.NoError(t, err)

	g := ground.New(repo)
	binding := objects(repo, "truck1", "loc-a", "loc-b")
	first, err := g.Instantiate(task.Rules[0], binding)
	require.NoError(t, err)
	second, err := g.Instantiate(task.Rules[0], binding)
	require.NoError(t, err)
	require.Equal(t, first.GroundRule, second.GroundRule)
	require.Equal(t, *first.Action, *second.Action)
}
