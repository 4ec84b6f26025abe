package prepare

import (
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
)

// buildCondition interns a ConjunctiveCondition for the current scope.
// The condition's own Parameters field (if any) is assumed already
// pushed by the caller — a precondition/axiom body shares its enclosing
// action/axiom's scope rather than introducing a nested one.
func (b *Builder) buildCondition(cond plinput.ConditionExpr) (model.ConjunctiveConditionID, error) {
	var static, fluent, derived, nullary []model.LiteralID

	for _, lit := range cond.Literals {
		id, err := b.buildLiteral(lit)
		if err != nil {
			return 0, err
		}
		pred, err := b.predicate(lit.Atom.Predicate)
		if err != nil {
			return 0, err
		}
		if len(lit.Atom.Terms) == 0 {
			nullary = append(nullary, id)
			continue
		}
		switch b.repo.PredicateKind(pred) {
		case model.KindStatic:
			static = append(static, id)
		case model.KindFluent:
			fluent = append(fluent, id)
		case model.KindDerived:
			derived = append(derived, id)
		}
	}

	numeric := make([]model.NumericConstraint, 0, len(cond.Numeric))
	for _, nc := range cond.Numeric {
		lhs, err := b.buildFunctionExpr(nc.Lhs)
		if err != nil {
			return 0, err
		}
		rhs, err := b.buildFunctionExpr(nc.Rhs)
		if err != nil {
			return 0, err
		}
		numeric = append(numeric, model.NumericConstraint{Kind: opKind(nc.Operator), Lhs: lhs, Rhs: rhs})
	}

	id, _, err := b.repo.ConjunctiveConditions.GetOrCreate(model.ConjunctiveCondition{
		NumParameters:      b.scope.len(),
		StaticLiterals:     model.SortLiteralIDs(static),
		FluentLiterals:     model.SortLiteralIDs(fluent),
		DerivedLiterals:    model.SortLiteralIDs(derived),
		NullaryLiterals:    model.SortLiteralIDs(nullary),
		NumericConstraints: numeric,
	})
	return model.ConjunctiveConditionID(id), err
}
