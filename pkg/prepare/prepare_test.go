package prepare_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
	"github.com/mrlab-ai/groundcore/pkg/prepare"
)

// fixedDescription is a hand-built plinput.Description standing in for a
// parsed tiny logistics-flavored domain: one "drive" action moving a
// truck between locations, one static "road" predicate, one fluent "at"
// predicate.
type fixedDescription struct {
	domain  *plinput.Domain
	problem *plinput.Problem
}

func (f fixedDescription) Domain() *plinput.Domain   { return f.domain }
func (f fixedDescription) Problem() *plinput.Problem { return f.problem }

func tinyLogistics() fixedDescription {
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
			{Predicate: "road", Terms: []plinput.TermExpr{{Name: "loc-b"}, {Name: "loc-a"}}},
		},
		Goal: plinput.ConditionExpr{
			Literals: []plinput.LiteralExpr{
				{Atom: plinput.AtomExpr{Predicate: "at", Terms: []plinput.TermExpr{{Name: "truck1"}, {Name: "loc-b"}}}},
			},
		},
	}

	return fixedDescription{domain: domain, problem: problem}
}

func TestPrepareClassifiesPredicateKinds(t *testing.T) {
	repo, task, err := prepare.New().Prepare(tinyLogistics())
	require.NoError(t, err)
	require.Len(t, task.Rules, 1)

	atID, ok := findPredicate(repo, "at")
	require.True(t, ok)
	require.Equal(t, model.KindFluent, repo.PredicateKind(atID))

	roadID, ok := findPredicate(repo, "road")
	require.True(t, ok)
	require.Equal(t, model.KindStatic, repo.PredicateKind(roadID))
}

func TestPrepareInternsInitialFactsAsGroundAtoms(t *testing.T) {
	_, task, err := prepare.New().Prepare(tinyLogistics())
	require.NoError(t, err)
	require.Len(t, task.InitialGroundAtoms, 3)
	require.Len(t, task.GoalLiterals, 1)
}

func TestPrepareIsIdempotentAcrossRuns(t *testing.T) {
	_, taskA, err := prepare.New().Prepare(tinyLogistics())
	require.NoError(t, err)
	_, taskB, err := prepare.New().Prepare(tinyLogistics())
	require.NoError(t, err)
	require.Equal(t, len(taskA.Rules), len(taskB.Rules))
	require.Equal(t, len(taskA.InitialGroundAtoms), len(taskB.InitialGroundAtoms))
}

func TestPrepareRejectsUnknownPredicateInPrecondition(t *testing.T) {
	desc := tinyLogistics()
	desc.domain.Actions[0].Precondition.Literals[0].Atom.Predicate = "nonexistent"
	_, _, err := prepare.New().Prepare(desc)
	require.Error(t, err)
}

func TestPrepareRejectsUnknownParameterReference(t *testing.T) {
	desc := tinyLogistics()
	desc.domain.Actions[0].Precondition.Literals[0].Atom.Terms[0].Name = "?unbound"
	_, _, err := prepare.New().Prepare(desc)
	require.Error(t, err)
}

func TestPrepareRejectsNonDerivedAxiomHead(t *testing.T) {
	desc := tinyLogistics()
	desc.domain.Axioms = []plinput.AxiomDef{
		{
			HeadPredicate: "at", // "at" is fluent, not derived: must be rejected
			HeadTerms:     []plinput.TermExpr{{IsParameter: true, Name: "?t"}, {IsParameter: true, Name: "?l"}},
			Parameters:    []string{"?t", "?l"},
		},
	}
	_, _, err := prepare.New().Prepare(desc)
	require.Error(t, err)
}

func TestPrepareRejectsAMultiOperandComparisonOperator(t *testing.T) {
	desc := tinyLogistics()
	desc.domain.Actions[0].Precondition.Numeric = []plinput.NumericConstraintExpr{
		{
			Operator: plinput.OpExprLessEqual,
			Lhs: plinput.FunctionExpr{
				Tag:      plinput.NumExprOperator,
				Operator: plinput.OpExprEqual, // "=" is commutative but not {+, *}
				Operands: []plinput.FunctionExpr{
					{Tag: plinput.NumExprConstant, Constant: 1},
					{Tag: plinput.NumExprConstant, Constant: 1},
					{Tag: plinput.NumExprConstant, Constant: 1},
				},
			},
			Rhs: plinput.FunctionExpr{Tag: plinput.NumExprConstant, Constant: 0},
		},
	}
	_, _, err := prepare.New().Prepare(desc)
	require.Error(t, err)
}

func findPredicate(repo *model.Repository, name string) (model.PredicateID, bool) {
	for i := 0; i < repo.Predicates.Len(); i++ {
		p := repo.Predicates.Get(intern.ID(i))
		if p.Name == name {
			return model.PredicateID(i), true
		}
	}
	return 0, false
}
