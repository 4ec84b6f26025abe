package prepare

import (
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
)

func (b *Builder) buildActionRule(action plinput.ActionDef) (model.RuleID, error) {
	b.scope.push(action.Parameters)
	defer b.scope.pop(len(action.Parameters))

	precond, err := b.buildCondition(action.Precondition)
	if err != nil {
		return 0, err
	}

	effectIDs := make([]model.ConditionalEffectID, 0, len(action.Effects))
	for _, eff := range action.Effects {
		id, err := b.buildConditionalEffect(eff)
		if err != nil {
			return 0, err
		}
		effectIDs = append(effectIDs, id)
	}

	actionID, _, err := b.repo.Actions.GetOrCreate(model.Action{
		Name:          action.Name,
		NumParameters: int32(len(action.Parameters)),
		Precondition:  precond,
		Effects:       effectIDs,
	})
	if err != nil {
		return 0, err
	}

	ruleID, _, err := b.repo.Rules.GetOrCreate(model.Rule{
		NumParameters: int32(len(action.Parameters)),
		Body:          precond,
		Origin:        model.RuleFromAction,
		Action:        model.ActionID(actionID),
	})
	return model.RuleID(ruleID), err
}

// buildConditionalEffect builds one (possibly forall/when-guarded) effect
// tail. The forall parameters are pushed onto the scope for the duration
// of building the guard and the tail, then popped, per the scope-stack
// discipline: a conditional effect's own parameters are appended after
// whatever scope the enclosing action already established.
func (b *Builder) buildConditionalEffect(eff plinput.EffectExpr) (model.ConditionalEffectID, error) {
	b.scope.push(eff.ForallParameters)
	defer b.scope.pop(len(eff.ForallParameters))

	var condID model.ConjunctiveConditionID
	if eff.When != nil {
		id, err := b.buildCondition(*eff.When)
		if err != nil {
			return 0, err
		}
		condID = id
	} else {
		id, err := b.buildCondition(plinput.ConditionExpr{})
		if err != nil {
			return 0, err
		}
		condID = id
	}

	tail, err := b.buildEffectTail(eff)
	if err != nil {
		return 0, err
	}

	id, _, err := b.repo.ConditionalEffects.GetOrCreate(model.ConditionalEffect{
		NumExtraParameters: int32(len(eff.ForallParameters)),
		Condition:          condID,
		Effect:             tail,
	})
	return model.ConditionalEffectID(id), err
}

func (b *Builder) buildEffectTail(eff plinput.EffectExpr) (model.ConjunctiveEffectID, error) {
	add := make([]model.AtomID, 0, len(eff.AddLiterals))
	for _, a := range eff.AddLiterals {
		atom, err := b.buildAtom(a)
		if err != nil {
			return 0, err
		}
		add = append(add, atom)
	}
	del := make([]model.AtomID, 0, len(eff.DeleteLiterals))
	for _, a := range eff.DeleteLiterals {
		atom, err := b.buildAtom(a)
		if err != nil {
			return 0, err
		}
		del = append(del, atom)
	}
	numeric := make([]model.NumericEffect, 0, len(eff.NumericEffects))
	for _, ne := range eff.NumericEffects {
		target, err := b.buildFunctionTerm(ne.Target)
		if err != nil {
			return 0, err
		}
		expr, err := b.buildFunctionExpr(ne.Expr)
		if err != nil {
			return 0, err
		}
		numeric = append(numeric, model.NumericEffect{Kind: opKind(ne.Operator), Term: target, Expr: expr})
	}

	id, _, err := b.repo.ConjunctiveEffects.GetOrCreate(model.ConjunctiveEffect{
		NumParameters:  b.scope.len(),
		AddLiterals:    model.SortAtomIDs(add),
		DeleteLiterals: model.SortAtomIDs(del),
		NumericEffects: numeric,
	})
	return model.ConjunctiveEffectID(id), err
}
