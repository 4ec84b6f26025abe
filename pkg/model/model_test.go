package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

func TestRepositoryInternsPredicatesByContent(t *testing.T) {
	repo := model.NewRepository()

	p1, inserted1, err := repo.Predicates.GetOrCreate(model.Predicate{Kind: model.KindStatic, Name: "on", Arity: 2})
	require.NoError(t, err)
	require.True(t, inserted1)

	p2, inserted2, err := repo.Predicates.GetOrCreate(model.Predicate{Kind: model.KindStatic, Name: "on", Arity: 2})
	require.NoError(t, err)
	require.False(t, inserted2)
	require.Equal(t, p1, p2)

	p3, _, err := repo.Predicates.GetOrCreate(model.Predicate{Kind: model.KindFluent, Name: "on", Arity: 2})
	require.NoError(t, err)
	require.NotEqual(t, p1, p3, "different kind must not collapse into the same predicate")
}

func TestAtomsAreDenseWithinPredicateGroup(t *testing.T) {
	repo := model.NewRepository()
	pred, _, err := repo.Predicates.GetOrCreate(model.Predicate{Kind: model.KindFluent, Name: "at", Arity: 2})
	require.NoError(t, err)

	obj1, _, _ := repo.Objects.GetOrCreate(model.Object{Name: "truck1"})
	obj2, _, _ := repo.Objects.GetOrCreate(model.Object{Name: "depot"})

	a1, _, err := repo.Atoms.GetOrCreate(pred, model.Atom{
		Predicate: model.PredicateID(pred),
		Terms:     []model.Term{model.ObjectTerm(model.ObjectID(obj1)), model.ObjectTerm(model.ObjectID(obj2))},
	})
	require.NoError(t, err)
	require.Equal(t, intern.ID(0), a1.Local)

	other, _, _ := repo.Predicates.GetOrCreate(model.Predicate{Kind: model.KindFluent, Name: "in", Arity: 1})
	a2, _, err := repo.Atoms.GetOrCreate(other, model.Atom{
		Predicate: model.PredicateID(other),
		Terms:     []model.Term{model.ObjectTerm(model.ObjectID(obj1))},
	})
	require.NoError(t, err)
	require.Equal(t, intern.ID(0), a2.Local, "a different group restarts its dense local index at 0")
}

func TestBinaryOperatorCanonicalizationRejectsUnsortedCommutativeOperands(t *testing.T) {
	repo := model.NewRepository()
	lhs, _, _ := repo.FunctionExpressions.GetOrCreate(model.FunctionExpression{Tag: model.ExprConstant, Constant: 1})
	rhs, _, _ := repo.FunctionExpressions.GetOrCreate(model.FunctionExpression{Tag: model.ExprConstant, Constant: 2})

	// lhs < rhs by construction order (lhs interned first), so the larger
	// identifier given as the left operand of a commutative op is rejected.
	_, _, err := repo.BinaryOperators.GetOrCreate(model.BinaryOperator{
		Kind: model.OpAdd,
		Lhs:  model.FunctionExpressionID(rhs),
		Rhs:  model.FunctionExpressionID(lhs),
	})
	require.Error(t, err)

	canonLhs, canonRhs := model.CanonicalBinaryOperator(model.OpAdd, model.FunctionExpressionID(rhs), model.FunctionExpressionID(lhs))
	_, inserted, err := repo.BinaryOperators.GetOrCreate(model.BinaryOperator{Kind: model.OpAdd, Lhs: canonLhs, Rhs: canonRhs})
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestCanonicalMultiOperandsSortsCommutativeOnly(t *testing.T) {
	a := model.FunctionExpressionID(3)
	b := model.FunctionExpressionID(1)
	c := model.FunctionExpressionID(2)

	sorted := model.CanonicalMultiOperands(model.OpAdd, []model.FunctionExpressionID{a, b, c})
	require.Equal(t, []model.FunctionExpressionID{b, c, a}, sorted)

	unchanged := model.CanonicalMultiOperands(model.OpSub, []model.FunctionExpressionID{a, b, c})
	require.Equal(t, []model.FunctionExpressionID{a, b, c}, unchanged)
}

func TestMultiOperatorIsCanonicalRejectsEveryKindButAddAndMul(t *testing.T) {
	a := model.FunctionExpressionID(1)
	b := model.FunctionExpressionID(2)

	require.True(t, model.MultiOperator{Kind: model.OpAdd, Operands: []model.FunctionExpressionID{a, b}}.IsCanonical())
	require.True(t, model.MultiOperator{Kind: model.OpMul, Operands: []model.FunctionExpressionID{a, b}}.IsCanonical())

	// OpEqual/OpNotEqual are commutative but spec.md §3 restricts
	// MultiOperator to {+, x}; a 3-operand "=" must never be canonical,
	// even with sorted operands.
	require.False(t, model.MultiOperator{Kind: model.OpEqual, Operands: []model.FunctionExpressionID{a, b}}.IsCanonical())
	require.False(t, model.MultiOperator{Kind: model.OpNotEqual, Operands: []model.FunctionExpressionID{a, b}}.IsCanonical())
	require.False(t, model.MultiOperator{Kind: model.OpSub, Operands: []model.FunctionExpressionID{a, b}}.IsCanonical())
}
